// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dsa/search"
	"github.com/katalvlaran/dsa/sorting"
)

const (
	algoBubble = "bubble"
	algoMerge  = "merge"
	algoQuick  = "quick"
)

var sorters = map[string]func([]int) []int{
	algoBubble: sorting.BubbleSort[int],
	algoMerge:  sorting.MergeSort[int],
	algoQuick:  sorting.QuickSort[int],
}

func sortCommand() *cobra.Command {
	var algo string

	cmd := &cobra.Command{
		Use:   "sort N...",
		Short: "Sort integers",
		Example: `  dsa sort 5 2 9 1
  dsa sort --algo quick 3 3 1`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			nums, err := parseInts(args)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("algo") {
				algo = configFromContext(ctx).Sort.Algorithm
			}
			fn, ok := sorters[algo]
			if !ok {
				return fmt.Errorf("%w: unknown algorithm %q", ErrInput, algo)
			}

			logger.Debug("sorting", "algorithm", algo, "n", len(nums))
			prog := newProgress(logger)
			sorted := fn(nums)
			prog.done("sorted")

			fmt.Fprintln(cmd.OutOrStdout(), joinInts(sorted))
			return nil
		},
	}
	cmd.Flags().StringVar(&algo, "algo", algoMerge, "algorithm: bubble, merge or quick")

	return cmd
}

func searchCommand() *cobra.Command {
	var target int

	cmd := &cobra.Command{
		Use:     "search N...",
		Short:   "Binary-search a sorted list of integers",
		Example: `  dsa search --target 7 1 3 7 7 9`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseInts(args)
			if err != nil {
				return err
			}
			if !slices.IsSorted(nums) {
				return fmt.Errorf("%w: input is not sorted", ErrInput)
			}
			loggerFromContext(cmd.Context()).Debug("searching", "target", target, "n", len(nums))

			w := cmd.OutOrStdout()
			rng := search.SearchRange(nums, target)
			printField(w, "index", search.BinarySearch(nums, target))
			printField(w, "range", fmt.Sprintf("[%d %d]", rng[0], rng[1]))
			return nil
		},
	}
	cmd.Flags().IntVar(&target, "target", 0, "value to find")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func joinInts(nums []int) string {
	b := make([]byte, 0, len(nums)*3)
	for i, n := range nums {
		if i > 0 {
			b = append(b, ' ')
		}
		b = strconv.AppendInt(b, int64(n), 10)
	}

	return string(b)
}
