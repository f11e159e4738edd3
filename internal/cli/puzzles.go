// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dsa/backtrack"
	"github.com/katalvlaran/dsa/grid"
)

func islandsCommand() *cobra.Command {
	var conn int

	cmd := &cobra.Command{
		Use:   "islands ROW...",
		Short: "Count islands in a grid of 0/1 rows",
		Example: `  dsa islands 11000 11000 00100 00011
  dsa islands --conn 8 100 010 001`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if !cmd.Flags().Changed("conn") {
				conn = configFromContext(ctx).Islands.Connectivity
			}
			var c grid.Connectivity
			switch conn {
			case 4:
				c = grid.Conn4
			case 8:
				c = grid.Conn8
			default:
				return fmt.Errorf("%w: connectivity %d, want 4 or 8", ErrInput, conn)
			}

			comps, err := grid.Components(grid.FromStrings(args...), grid.WithConnectivity(c))
			if err != nil {
				return err
			}
			loggerFromContext(ctx).Debug("islands", "rows", len(args), "conn", conn)

			w := cmd.OutOrStdout()
			printField(w, "islands", len(comps))
			for i, comp := range comps {
				printField(w, "  size #"+strconv.Itoa(i), len(comp))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&conn, "conn", 4, "connectivity: 4 or 8")

	return cmd
}

func nqueensCommand() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:     "nqueens N",
		Short:   "Solve the N-Queens puzzle",
		Example: `  dsa nqueens 6 --all`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 0 {
				return fmt.Errorf("%w: N must be a non-negative integer, got %q", ErrInput, args[0])
			}
			prog := newProgress(loggerFromContext(cmd.Context()))
			boards := backtrack.NQueens(n)
			prog.done("solved")

			w := cmd.OutOrStdout()
			printField(w, "solutions", len(boards))
			if !all && len(boards) > 1 {
				boards = boards[:1]
			}
			for _, b := range boards {
				fmt.Fprintln(w, renderBoard(b))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "print every solution instead of the first")

	return cmd
}
