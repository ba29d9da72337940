package main

import (
	"bufio"
	"fmt"
	"image/png"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/katalvlaran/markerdict/dictionary"
	"github.com/katalvlaran/markerdict/render"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	indexStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	markerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
)

// consoleView frames each marker with its index and lays them out perRow
// to a line under a count header.
func consoleView(d *dictionary.Dictionary, perRow int) string {
	lines := []string{headerStyle.Render(fmt.Sprintf("The number of markers in dictionary = %d", d.Count()))}
	var row []string
	flush := func() {
		if len(row) > 0 {
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	for i, m := range d.Markers() {
		block := lipgloss.JoinVertical(lipgloss.Center,
			indexStyle.Render(fmt.Sprintf("#%d", i)),
			markerStyle.Render(m.String()),
		)
		row = append(row, block)
		if len(row) == perRow {
			flush()
		}
	}
	flush()

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// writeImage encodes img to path as PGM or PNG.
func writeImage(path string, img *render.Image, format string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	switch format {
	case "png":
		bw := bufio.NewWriter(f)
		if err = png.Encode(bw, img.Gray()); err != nil {
			return fmt.Errorf("failed to encode %s: %w", path, err)
		}

		return bw.Flush()
	default:
		return render.EncodePGM(f, img)
	}
}
