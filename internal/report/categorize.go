// Package report provides bar categorization and layout output.
package report

import (
	"github.com/bryan-cox/ganttscale/internal/model"
)

// IsOutside returns true if a bar has no pixels inside [0, totalWidth].
// A bar of zero or negative width is outside unless it sits on the range.
func IsOutside(g model.BarGeometry, totalWidth int) bool {
	left, right := g.Left, g.Right()
	if right < left {
		left, right = right, left
	}
	return right < 0 || left > totalWidth
}

// IsClipped returns true if a bar crosses either edge of the range.
func IsClipped(g model.BarGeometry, totalWidth int) bool {
	if IsOutside(g, totalWidth) {
		return false
	}
	left, right := g.Left, g.Right()
	if right < left {
		left, right = right, left
	}
	return left < 0 || right > totalWidth
}

// CategorizeBars groups a layout's bars by how they sit against the visible range.
// Bars keep their input order within each group.
func CategorizeBars(layout model.Layout) model.CategorizedBars {
	var out model.CategorizedBars
	for _, bar := range layout.Bars {
		switch {
		case IsOutside(bar.Geometry, layout.TotalWidth):
			out.Outside = append(out.Outside, bar)
		case IsClipped(bar.Geometry, layout.TotalWidth):
			out.Clipped = append(out.Clipped, bar)
		default:
			out.Visible = append(out.Visible, bar)
		}
	}
	return out
}
