// Package timeline computes Gantt layout geometry: task bar positions,
// two-tier header bands and grid lines for a date range at a given scale.
//
// All outputs are recomputed from the current range, scale and mode on every
// call. Nothing is cached, so reads after ZoomIn, ZoomOut or SetMode always
// reflect the new state. An Engine is not safe for concurrent mutation.
package timeline

import (
	"github.com/bryan-cox/ganttscale/internal/model"
)

// Scale constants.
const (
	DefaultPixelsPerDay = 20
	DefaultMode         = model.ModeWeek

	// ZoomStep is the pixels-per-day change applied by one zoom operation.
	ZoomStep = 8

	// ZoomIn only increments while the scale is below zoomInLimit, and ZoomOut
	// only decrements while it is above zoomOutLimit. The checks run before the
	// change, so the result may land past either limit.
	zoomInLimit  = 100
	zoomOutLimit = 8
)

// Scale is the mutable display state of an engine.
type Scale struct {
	PixelsPerDay int
	Mode         model.Mode
}

// DefaultScale returns the scale a new timeline starts with.
func DefaultScale() Scale {
	return Scale{PixelsPerDay: DefaultPixelsPerDay, Mode: DefaultMode}
}

// Engine derives layout geometry for a fixed time range.
type Engine struct {
	rng       model.TimeRange
	scale     Scale
	observers []func(Scale)
}

// New creates an engine for the given range starting at the given scale.
func New(rng model.TimeRange, scale Scale) *Engine {
	return &Engine{rng: rng, scale: scale}
}

// Range returns the engine's time range.
func (e *Engine) Range() model.TimeRange {
	return e.rng
}

// Scale returns a copy of the current scale.
func (e *Engine) Scale() Scale {
	return e.scale
}

// PixelsPerDay returns the current horizontal scale factor.
func (e *Engine) PixelsPerDay() int {
	return e.scale.PixelsPerDay
}

// Mode returns the current granularity.
func (e *Engine) Mode() model.Mode {
	return e.scale.Mode
}

// TotalDays returns the number of days spanned by the range, rounding partial
// days up. Inverted ranges are measured by absolute value.
func (e *Engine) TotalDays() int {
	d := e.rng.End.Sub(e.rng.Start)
	if d < 0 {
		d = -d
	}
	return ceilDays(d)
}

// TotalWidth returns the pixel width of the whole range.
func (e *Engine) TotalWidth() int {
	return e.TotalDays() * e.scale.PixelsPerDay
}

// BarGeometry maps a span onto the timeline. Results are not clamped to the
// range, and a finish before the start yields a negative width.
func (e *Engine) BarGeometry(s model.Span) model.BarGeometry {
	start, finish := s.Bounds()
	offset := floorDays(start.Sub(e.rng.Start))
	duration := ceilDays(finish.Sub(start))
	return model.BarGeometry{
		Left:  offset * e.scale.PixelsPerDay,
		Width: duration * e.scale.PixelsPerDay,
	}
}

// BarStyle is BarGeometry expressed as CSS lengths.
func (e *Engine) BarStyle(s model.Span) model.BarStyle {
	return e.BarGeometry(s).Style()
}

// Layout computes a complete snapshot for the current state, including a bar
// for each task in input order.
func (e *Engine) Layout(tasks []model.Task) model.Layout {
	headers := e.Headers()
	bars := make([]model.Bar, 0, len(tasks))
	for _, task := range tasks {
		geom := e.BarGeometry(task)
		bars = append(bars, model.Bar{
			TaskID:   task.ID,
			Content:  task.Content,
			Geometry: geom,
			Style:    geom.Style(),
		})
	}
	return model.Layout{
		Mode:         e.scale.Mode,
		PixelsPerDay: e.scale.PixelsPerDay,
		TotalDays:    e.TotalDays(),
		TotalWidth:   e.TotalWidth(),
		Headers:      headers,
		GridLines:    gridLines(headers.Secondary),
		Bars:         bars,
	}
}

// ZoomIn widens each day by ZoomStep pixels while the scale is below 100.
func (e *Engine) ZoomIn() {
	if e.scale.PixelsPerDay < zoomInLimit {
		e.scale.PixelsPerDay += ZoomStep
		e.notify()
	}
}

// ZoomOut narrows each day by ZoomStep pixels while the scale is above 8.
func (e *Engine) ZoomOut() {
	if e.scale.PixelsPerDay > zoomOutLimit {
		e.scale.PixelsPerDay -= ZoomStep
		e.notify()
	}
}

// SetMode switches the granularity. Unrecognized modes are accepted and
// produce empty headers.
func (e *Engine) SetMode(m model.Mode) {
	if e.scale.Mode == m {
		return
	}
	e.scale.Mode = m
	e.notify()
}

// OnChange registers fn to be called with the new scale after every zoom or
// mode change that alters state.
func (e *Engine) OnChange(fn func(Scale)) {
	e.observers = append(e.observers, fn)
}

func (e *Engine) notify() {
	for _, fn := range e.observers {
		fn(e.scale)
	}
}
