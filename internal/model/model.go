// Package model defines the core data structures for ganttscale.
package model

import (
	"fmt"
	"strings"
	"time"
)

// Mode is the timeline granularity. It selects which two header tiers are produced.
type Mode string

// Granularity modes.
const (
	ModeDay   Mode = "day"
	ModeWeek  Mode = "week"
	ModeMonth Mode = "month"
	ModeYear  Mode = "year"
)

// Modes lists the recognized granularities from finest to coarsest.
var Modes = []Mode{ModeDay, ModeWeek, ModeMonth, ModeYear}

// ParseMode converts a case-insensitive name into a Mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Modes {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown mode %q, use one of day, week, month, year", s)
}

// TimeRange is the visible date span. Start is the coordinate origin (day 0).
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// HeaderBand is one cell of a header tier.
type HeaderBand struct {
	Key   string `json:"key" yaml:"key"`
	Left  int    `json:"left" yaml:"left"`
	Width int    `json:"width" yaml:"width"`
	Label string `json:"label" yaml:"label"`
}

// Headers holds the coarse (primary) and fine (secondary) header tiers.
type Headers struct {
	Primary   []HeaderBand `json:"primary" yaml:"primary"`
	Secondary []HeaderBand `json:"secondary" yaml:"secondary"`
}

// GridLine is a vertical line at a secondary band boundary.
type GridLine struct {
	Key  string `json:"key" yaml:"key"`
	Left int    `json:"left" yaml:"left"`
}

// BarGeometry is a task bar's position and extent in pixels.
type BarGeometry struct {
	Left  int `json:"left" yaml:"left"`
	Width int `json:"width" yaml:"width"`
}

// Right returns the pixel offset of the bar's trailing edge.
func (b BarGeometry) Right() int {
	return b.Left + b.Width
}

// Style converts the geometry into CSS length strings.
func (b BarGeometry) Style() BarStyle {
	return BarStyle{
		Left:  fmt.Sprintf("%dpx", b.Left),
		Width: fmt.Sprintf("%dpx", b.Width),
	}
}

// BarStyle is a bar's geometry as CSS lengths, e.g. "40px".
type BarStyle struct {
	Left  string `json:"left" yaml:"left"`
	Width string `json:"width" yaml:"width"`
}

// Span is anything with a start and finish instant that can be drawn as a bar.
type Span interface {
	Bounds() (start, finish time.Time)
}

// Task represents a single scheduled work item.
type Task struct {
	ID          string   `yaml:"id"`
	Content     string   `yaml:"content"`
	Start       string   `yaml:"start"`
	Finish      string   `yaml:"finish"`
	Progress    int      `yaml:"progress"`
	Assignees   []string `yaml:"assignees"`
	Color       string   `yaml:"color"`
	IsMilestone bool     `yaml:"milestone"`
	IsGroup     bool     `yaml:"group"`
	ParentID    string   `yaml:"parent_id"`
	Indentation int      `yaml:"indentation"`

	// Parsed forms of Start and Finish, filled in by the loader.
	StartTime  time.Time `yaml:"-"`
	FinishTime time.Time `yaml:"-"`
}

// Bounds implements Span.
func (t Task) Bounds() (time.Time, time.Time) {
	return t.StartTime, t.FinishTime
}

// RangeSpec is the raw visible range from the project file.
type RangeSpec struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// Project is the top-level structure of a project YAML file.
type Project struct {
	Range RangeSpec `yaml:"range"`
	Tasks []Task    `yaml:"tasks"`
}

// Bar is a task together with its computed geometry.
type Bar struct {
	TaskID   string      `json:"task_id" yaml:"task_id"`
	Content  string      `json:"content" yaml:"content"`
	Geometry BarGeometry `json:"geometry" yaml:"geometry"`
	Style    BarStyle    `json:"style" yaml:"style"`
}

// Layout is a full snapshot of everything the engine exposes for one read.
type Layout struct {
	Mode         Mode       `json:"mode" yaml:"mode"`
	PixelsPerDay int        `json:"pixels_per_day" yaml:"pixels_per_day"`
	TotalDays    int        `json:"total_days" yaml:"total_days"`
	TotalWidth   int        `json:"total_width" yaml:"total_width"`
	Headers      Headers    `json:"headers" yaml:"headers"`
	GridLines    []GridLine `json:"grid_lines" yaml:"grid_lines"`
	Bars         []Bar      `json:"bars" yaml:"bars"`
}

// CategorizedBars holds bars organized by how they sit against the visible range.
type CategorizedBars struct {
	Visible []Bar // fully inside [0, totalWidth]
	Clipped []Bar // crosses an edge of the range
	Outside []Bar // no overlap with the range
}
