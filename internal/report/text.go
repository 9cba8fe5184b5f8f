package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/bryan-cox/ganttscale/internal/model"
)

// Section headers for text output.
const (
	TextHeaderPrimary   = "\nPrimary headers"
	TextHeaderSecondary = "\nSecondary headers"
	TextHeaderGrid      = "\nGrid lines"
	TextHeaderVisible   = "\nBars inside the range"
	TextHeaderClipped   = "\nBars crossing a range edge"
	TextHeaderOutside   = "\nBars outside the range"
)

// PrintSummary prints the scale and overall extent.
func PrintSummary(out io.Writer, layout model.Layout) {
	fmt.Fprintf(out, "Timeline (%s mode, %dpx/day)\n", layout.Mode, layout.PixelsPerDay)
	fmt.Fprintf(out, "Total: %d days, %dpx\n", layout.TotalDays, layout.TotalWidth)
}

// PrintHeaders prints both header tiers. Empty tiers are skipped.
func PrintHeaders(out io.Writer, headers model.Headers) {
	printBands(out, TextHeaderPrimary, headers.Primary)
	printBands(out, TextHeaderSecondary, headers.Secondary)
}

func printBands(out io.Writer, title string, bands []model.HeaderBand) {
	if len(bands) == 0 {
		return
	}
	fmt.Fprintln(out, title)
	for _, b := range bands {
		fmt.Fprintf(out, "    • %-14s %-12s left=%d width=%d\n", b.Key, b.Label, b.Left, b.Width)
	}
}

// PrintGridLines prints one line per grid position.
func PrintGridLines(out io.Writer, lines []model.GridLine) {
	if len(lines) == 0 {
		return
	}
	fmt.Fprintln(out, TextHeaderGrid)
	for _, l := range lines {
		fmt.Fprintf(out, "    • %-14s left=%d\n", l.Key, l.Left)
	}
}

// PrintBars prints bars grouped into visible, clipped and outside sections.
func PrintBars(out io.Writer, bars model.CategorizedBars) {
	printBarSection(out, TextHeaderVisible, bars.Visible)
	printBarSection(out, TextHeaderClipped, bars.Clipped)
	printBarSection(out, TextHeaderOutside, bars.Outside)
}

func printBarSection(out io.Writer, title string, bars []model.Bar) {
	if len(bars) == 0 {
		return
	}
	fmt.Fprintln(out, title)
	for _, bar := range bars {
		name := bar.TaskID
		if bar.Content != "" {
			name = fmt.Sprintf("%s: %s", bar.TaskID, bar.Content)
		}
		fmt.Fprintf(out, "    • %s\n", name)
		fmt.Fprintf(out, "        ◦ left: %s width: %s\n", bar.Style.Left, bar.Style.Width)
	}
}

// PrintLayout prints the full text report for a layout.
func PrintLayout(out io.Writer, layout model.Layout) {
	PrintSummary(out, layout)
	PrintHeaders(out, layout.Headers)
	PrintGridLines(out, layout.GridLines)
	PrintBars(out, CategorizeBars(layout))
}

// Encode writes v as YAML or JSON.
func Encode(out io.Writer, format string, v any) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
