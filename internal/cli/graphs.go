// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dsa/graph"
	"github.com/katalvlaran/dsa/mst"
)

func topoCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "topo EDGE...",
		Short:   "Topologically sort a DAG given as FROM>TO edges",
		Example: `  dsa topo shirt>tie tie>jacket pants>shoes`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g := graph.New(graph.WithDirected())
			for _, a := range args {
				from, to, err := parseArc(a)
				if err != nil {
					return err
				}
				if err := g.AddEdge(from, to); err != nil {
					return err
				}
			}
			loggerFromContext(cmd.Context()).Debug("graph", "vertices", g.VertexCount(), "edges", g.EdgeCount())

			order, ok, err := graph.TopologicalSort(g)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: graph has a cycle", ErrInput)
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(order, " "))
			return nil
		},
	}
}

func mstCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "mst EDGE...",
		Short:   "Minimum spanning forest of A-B:WEIGHT edges (Kruskal)",
		Example: `  dsa mst a-b:4 b-c:1 a-c:3`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				edges    = make([]mst.Edge, 0, len(args))
				vertices []string
				seen     = make(map[string]bool)
			)
			for _, a := range args {
				e, err := parseWeightedEdge(a)
				if err != nil {
					return err
				}
				edges = append(edges, e)
				for _, v := range []string{e.U, e.V} {
					if !seen[v] {
						seen[v] = true
						vertices = append(vertices, v)
					}
				}
			}

			prog := newProgress(loggerFromContext(cmd.Context()))
			res, err := mst.Kruskal(vertices, edges)
			if err != nil {
				return err
			}
			prog.done("spanning tree built")

			w := cmd.OutOrStdout()
			for _, e := range res.Edges {
				printField(w, e.U+"-"+e.V, e.Weight)
			}
			printField(w, "total", res.TotalWeight)
			if !res.Spanning(len(vertices)) {
				printField(w, "note", "graph is disconnected, result is a forest")
			}
			return nil
		},
	}
}
