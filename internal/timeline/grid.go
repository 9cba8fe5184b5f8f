package timeline

import "github.com/bryan-cox/ganttscale/internal/model"

// GridLines returns one vertical line per secondary header band.
func (e *Engine) GridLines() []model.GridLine {
	return gridLines(e.Headers().Secondary)
}

func gridLines(bands []model.HeaderBand) []model.GridLine {
	lines := make([]model.GridLine, 0, len(bands))
	for _, b := range bands {
		lines = append(lines, model.GridLine{Key: b.Key, Left: b.Left})
	}
	return lines
}
