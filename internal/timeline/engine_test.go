package timeline

import (
	"testing"
	"time"

	"github.com/bryan-cox/ganttscale/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newEngine(start, end time.Time, ppd int, mode model.Mode) *Engine {
	return New(model.TimeRange{Start: start, End: end}, Scale{PixelsPerDay: ppd, Mode: mode})
}

func TestTotalDays(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"january", date(2024, 1, 1), date(2024, 1, 31), 30},
		{"inverted range uses absolute value", date(2024, 1, 31), date(2024, 1, 1), 30},
		{"partial day rounds up", date(2024, 1, 1), date(2024, 1, 1).Add(12 * time.Hour), 1},
		{"empty range", date(2024, 1, 1), date(2024, 1, 1), 0},
		{"leap year", date(2024, 1, 1), date(2025, 1, 1), 366},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, mode := range model.Modes {
				e := newEngine(tt.start, tt.end, 20, mode)
				if got := e.TotalDays(); got != tt.want {
					t.Errorf("TotalDays(%s): got %d, want %d", mode, got, tt.want)
				}
				if got := e.TotalWidth(); got != tt.want*20 {
					t.Errorf("TotalWidth(%s): got %d, want %d", mode, got, tt.want*20)
				}
			}
		})
	}
}

func TestBarGeometry(t *testing.T) {
	e := newEngine(date(2024, 1, 1), date(2024, 1, 31), 20, model.ModeWeek)

	tests := []struct {
		name   string
		start  time.Time
		finish time.Time
		want   model.BarGeometry
	}{
		{"inside range", date(2024, 1, 3), date(2024, 1, 5), model.BarGeometry{Left: 40, Width: 40}},
		{"partial duration rounds up", date(2024, 1, 3), date(2024, 1, 4).Add(time.Hour), model.BarGeometry{Left: 40, Width: 40}},
		{"start offset floors", date(2024, 1, 3).Add(23 * time.Hour), date(2024, 1, 5), model.BarGeometry{Left: 40, Width: 40}},
		{"before range is not clamped", date(2023, 12, 30).Add(12 * time.Hour), date(2024, 1, 2), model.BarGeometry{Left: -40, Width: 60}},
		{"zero duration", date(2024, 1, 10), date(2024, 1, 10), model.BarGeometry{Left: 180, Width: 0}},
		{"finish before start", date(2024, 1, 5), date(2024, 1, 3), model.BarGeometry{Left: 80, Width: -40}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := model.Task{StartTime: tt.start, FinishTime: tt.finish}
			if got := e.BarGeometry(task); got != tt.want {
				t.Errorf("BarGeometry: got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBarStyle(t *testing.T) {
	e := newEngine(date(2024, 1, 1), date(2024, 1, 31), 20, model.ModeWeek)
	task := model.Task{StartTime: date(2024, 1, 3), FinishTime: date(2024, 1, 5)}

	got := e.BarStyle(task)
	if got.Left != "40px" || got.Width != "40px" {
		t.Errorf("BarStyle: got %+v, want left=40px width=40px", got)
	}
}

func TestZoom(t *testing.T) {
	t.Run("zoom in stops once at or above 100", func(t *testing.T) {
		e := newEngine(date(2024, 1, 1), date(2024, 1, 31), 20, model.ModeWeek)
		for i := 0; i < 10; i++ {
			e.ZoomIn()
		}
		if got := e.PixelsPerDay(); got != 100 {
			t.Errorf("PixelsPerDay after 10 zoom-ins: got %d, want 100", got)
		}
		e.ZoomIn()
		if got := e.PixelsPerDay(); got != 100 {
			t.Errorf("PixelsPerDay after extra zoom-in: got %d, want 100", got)
		}
	})

	t.Run("zoom in checks before incrementing", func(t *testing.T) {
		e := newEngine(date(2024, 1, 1), date(2024, 1, 31), 99, model.ModeWeek)
		e.ZoomIn()
		if got := e.PixelsPerDay(); got != 107 {
			t.Errorf("PixelsPerDay: got %d, want 107", got)
		}
	})

	t.Run("zoom out checks before decrementing", func(t *testing.T) {
		e := newEngine(date(2024, 1, 1), date(2024, 1, 31), 20, model.ModeWeek)
		e.ZoomOut()
		if got := e.PixelsPerDay(); got != 12 {
			t.Errorf("PixelsPerDay after one zoom-out: got %d, want 12", got)
		}
		e.ZoomOut()
		if got := e.PixelsPerDay(); got != 4 {
			t.Errorf("PixelsPerDay after two zoom-outs: got %d, want 4", got)
		}
		e.ZoomOut()
		if got := e.PixelsPerDay(); got != 4 {
			t.Errorf("PixelsPerDay after three zoom-outs: got %d, want 4", got)
		}
	})
}

func TestOnChange(t *testing.T) {
	e := newEngine(date(2024, 1, 1), date(2024, 1, 31), 96, model.ModeWeek)

	var seen []Scale
	e.OnChange(func(s Scale) { seen = append(seen, s) })

	e.ZoomIn()                 // 96 -> 104
	e.ZoomIn()                 // no-op
	e.SetMode(model.ModeWeek)  // unchanged
	e.SetMode(model.ModeMonth) // changed
	e.ZoomOut()                // 104 -> 96

	want := []Scale{
		{PixelsPerDay: 104, Mode: model.ModeWeek},
		{PixelsPerDay: 104, Mode: model.ModeMonth},
		{PixelsPerDay: 96, Mode: model.ModeMonth},
	}
	if len(seen) != len(want) {
		t.Fatalf("notifications: got %d, want %d (%+v)", len(seen), len(want), seen)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("notification %d: got %+v, want %+v", i, seen[i], want[i])
		}
	}
}

func TestSetModeRecomputesHeaders(t *testing.T) {
	e := newEngine(date(2024, 1, 1), date(2024, 1, 31), 20, model.ModeWeek)
	if got := e.Headers().Primary[0].Label; got != "Jan" {
		t.Fatalf("week mode primary label: got %q, want Jan", got)
	}

	e.SetMode(model.ModeMonth)
	if got := e.Headers().Primary[0].Label; got != "2024" {
		t.Errorf("month mode primary label: got %q, want 2024", got)
	}
	if got := e.Mode(); got != model.ModeMonth {
		t.Errorf("Mode: got %q, want month", got)
	}
}

func TestLayout(t *testing.T) {
	e := newEngine(date(2024, 1, 1), date(2024, 1, 31), 20, model.ModeDay)
	tasks := []model.Task{
		{ID: "T1", Content: "Design", StartTime: date(2024, 1, 3), FinishTime: date(2024, 1, 5)},
		{ID: "T2", Content: "Build", StartTime: date(2024, 1, 5), FinishTime: date(2024, 1, 12)},
	}

	layout := e.Layout(tasks)

	if layout.TotalDays != 30 || layout.TotalWidth != 600 {
		t.Errorf("totals: got days=%d width=%d, want 30 and 600", layout.TotalDays, layout.TotalWidth)
	}
	if layout.Mode != model.ModeDay || layout.PixelsPerDay != 20 {
		t.Errorf("scale: got %s/%d, want day/20", layout.Mode, layout.PixelsPerDay)
	}
	if len(layout.GridLines) != len(layout.Headers.Secondary) {
		t.Errorf("grid lines: got %d, want %d", len(layout.GridLines), len(layout.Headers.Secondary))
	}
	if len(layout.Bars) != 2 {
		t.Fatalf("bars: got %d, want 2", len(layout.Bars))
	}
	if b := layout.Bars[1]; b.TaskID != "T2" || b.Geometry.Left != 80 || b.Style.Width != "140px" {
		t.Errorf("second bar: got %+v", b)
	}
}
