// Package project loads project YAML files into a time range and task list.
package project

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/bryan-cox/ganttscale/internal/model"
)

// dateLayouts are tried in order when parsing dates.
var dateLayouts = []string{time.DateOnly, time.RFC3339, "2006-01-02 15:04"}

// ParseDate parses a YYYY-MM-DD, RFC 3339 or "YYYY-MM-DD HH:MM" value in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q, use YYYY-MM-DD", s)
}

// Load reads and parses the project file at filePath.
func Load(filePath string, loc *time.Location) (model.Project, model.TimeRange, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return model.Project{}, model.TimeRange{}, fmt.Errorf("could not read file '%s': %w", filePath, err)
	}
	return Parse(data, filePath, loc)
}

// Parse decodes project YAML. Tasks with unparseable dates are logged and
// dropped; a bad range is an error.
func Parse(data []byte, name string, loc *time.Location) (model.Project, model.TimeRange, error) {
	var p model.Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		safeData, _ := json.Marshal(string(data))
		return p, model.TimeRange{}, fmt.Errorf("could not parse YAML from '%s': %w. Content: %s", name, err, safeData)
	}

	start, err := ParseDate(p.Range.Start, loc)
	if err != nil {
		return p, model.TimeRange{}, fmt.Errorf("invalid range start: %w", err)
	}
	end, err := ParseDate(p.Range.End, loc)
	if err != nil {
		return p, model.TimeRange{}, fmt.Errorf("invalid range end: %w", err)
	}
	if end.Before(start) {
		slog.Warn("range end is before start, geometry will be degenerate", "start", p.Range.Start, "end", p.Range.End)
	}

	tasks := make([]model.Task, 0, len(p.Tasks))
	for _, task := range p.Tasks {
		s, err1 := ParseDate(task.Start, loc)
		f, err2 := ParseDate(task.Finish, loc)
		if err1 != nil || err2 != nil {
			slog.Warn("could not parse task dates, skipping", "task", task.ID, "start", task.Start, "finish", task.Finish)
			continue
		}
		if f.Before(s) {
			slog.Warn("task finishes before it starts", "task", task.ID)
		}
		task.StartTime, task.FinishTime = s, f
		tasks = append(tasks, task)
	}
	p.Tasks = tasks

	return p, model.TimeRange{Start: start, End: end}, nil
}
