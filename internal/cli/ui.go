// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorGray  = lipgloss.Color("245")
)

var (
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleLabel = lipgloss.NewStyle().Foreground(colorGray)
	styleQueen = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	styleBoard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGray).
			Padding(0, 1)
)

func printTitle(w io.Writer, title string) {
	fmt.Fprintln(w, styleTitle.Render(title))
}

func printField(w io.Writer, label string, value any) {
	fmt.Fprintf(w, "%s %v\n", styleLabel.Render(label+":"), value)
}

// renderBoard boxes N-Queens rows, highlighting the queens.
func renderBoard(rows []string) string {
	lines := make([]string, len(rows))
	for i, row := range rows {
		cells := make([]string, 0, len(row))
		for _, ch := range row {
			if ch == 'Q' {
				cells = append(cells, styleQueen.Render("Q"))
			} else {
				cells = append(cells, "·")
			}
		}
		lines[i] = strings.Join(cells, " ")
	}

	return styleBoard.Render(strings.Join(lines, "\n"))
}
