// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dsa/dp"
	"github.com/katalvlaran/dsa/huffman"
	"github.com/katalvlaran/dsa/strmatch"
)

func kmpCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "kmp TEXT PATTERN",
		Short:   "Find every occurrence of PATTERN in TEXT",
		Example: `  dsa kmp abababab abab`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, pattern := args[0], args[1]
			prog := newProgress(loggerFromContext(cmd.Context()))
			matches := strmatch.KMP(text, pattern)
			prog.done("matched")

			w := cmd.OutOrStdout()
			printField(w, "matches", len(matches))
			if len(matches) > 0 {
				printField(w, "positions", joinInts(matches))
			}
			return nil
		},
	}
}

func huffmanCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "huffman TEXT",
		Short:   "Huffman-code TEXT and report the compression ratio",
		Example: `  dsa huffman aaabbc`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog := newProgress(loggerFromContext(cmd.Context()))
			res, err := huffman.Compress(args[0])
			if err != nil {
				return err
			}
			prog.done("encoded")

			w := cmd.OutOrStdout()
			printTitle(w, "Huffman codes")
			chars := make([]rune, 0, len(res.Codes))
			for r := range res.Codes {
				chars = append(chars, r)
			}
			slices.Sort(chars)
			for _, r := range chars {
				printField(w, fmt.Sprintf("%q", r), res.Codes[r])
			}
			printField(w, "encoded", res.Encoded)
			printField(w, "ratio", fmt.Sprintf("%.3f", res.Ratio))
			return nil
		},
	}
}

func lcsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "lcs A B",
		Short:   "Length of the longest common subsequence of A and B",
		Example: `  dsa lcs abcde ace`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), dp.LongestCommonSubsequence(args[0], args[1]))
			return nil
		},
	}
}

func editCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "edit A B",
		Short:   "Levenshtein distance between A and B",
		Example: `  dsa edit horse ros`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), dp.EditDistance(args[0], args[1]))
			return nil
		},
	}
}
