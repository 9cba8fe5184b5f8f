package timeline

import (
	"fmt"
	"strconv"
	"time"

	"github.com/bryan-cox/ganttscale/internal/model"
)

// Headers generates the primary and secondary header tiers for the current mode:
//
//	day:   weeks over days
//	week:  months over weeks
//	month: years over months
//	year:  years over quarters
//
// Unit positions before the range start are clamped to 0 but their widths are
// left whole, so the first band may overshoot its neighbor.
func (e *Engine) Headers() model.Headers {
	switch e.scale.Mode {
	case model.ModeDay:
		return e.dayHeaders()
	case model.ModeWeek:
		return e.weekHeaders()
	case model.ModeMonth:
		return e.monthHeaders()
	case model.ModeYear:
		return e.yearHeaders()
	default:
		return model.Headers{}
	}
}

func (e *Engine) dayHeaders() model.Headers {
	var h model.Headers
	ppd := e.scale.PixelsPerDay
	total := e.TotalDays()
	start := e.rng.Start
	currentWeek := weekStart(start)
	weekIndex := 0

	for d := 0; d < total; d++ {
		date := start.AddDate(0, 0, d)

		if d == 0 || !date.Before(currentWeek.Add(7*day)) {
			currentWeek = weekStart(date)
			// Labels use raw day-of-month numbers and may wrap, e.g. "Week 29 - 4".
			h.Primary = append(h.Primary, model.HeaderBand{
				Key:   fmt.Sprintf("week-%d", weekIndex),
				Left:  d * ppd,
				Width: min(7, total-d) * ppd,
				Label: fmt.Sprintf("Week %d - %d", date.Day(), date.Add(6*day).Day()),
			})
			weekIndex++
		}

		h.Secondary = append(h.Secondary, model.HeaderBand{
			Key:   fmt.Sprintf("day-%d", d),
			Left:  d * ppd,
			Width: ppd,
			Label: strconv.Itoa(date.Day()),
		})
	}
	return h
}

func (e *Engine) weekHeaders() model.Headers {
	var h model.Headers
	ppd := e.scale.PixelsPerDay
	total := e.TotalDays()
	start := e.rng.Start
	currentMonth := firstOfMonth(start)
	monthIndex, weekIndex := 0, 0

	for d := 0; d < total; d += 7 {
		date := start.AddDate(0, 0, d)

		if d == 0 || date.Month() != currentMonth.Month() {
			currentMonth = firstOfMonth(date)

			days := 0
			for c := currentMonth; c.Month() == currentMonth.Month() && !c.After(e.rng.End); c = c.AddDate(0, 0, 1) {
				days++
			}

			h.Primary = append(h.Primary, model.HeaderBand{
				Key:   fmt.Sprintf("month-%d", monthIndex),
				Left:  d * ppd,
				Width: days * ppd,
				Label: shortMonth(date.Month()),
			})
			monthIndex++
		}

		h.Secondary = append(h.Secondary, model.HeaderBand{
			Key:   fmt.Sprintf("week-%d", weekIndex),
			Left:  d * ppd,
			Width: min(7, total-d) * ppd,
			Label: fmt.Sprintf("W%d", WeekNumber(date)),
		})
		weekIndex++
	}
	return h
}

func (e *Engine) monthHeaders() model.Headers {
	var h model.Headers
	ppd := e.scale.PixelsPerDay
	start := e.rng.Start
	loc := start.Location()
	cursor := firstOfMonth(start)
	currentYear := cursor.Year()

	for i := 0; !cursor.After(e.rng.End); i++ {
		year, month := cursor.Year(), cursor.Month()

		if i == 0 || year != currentYear {
			currentYear = year

			// Remaining days of the year counted from this month, not the range.
			remaining := 0
			for m := month; m <= time.December; m++ {
				remaining += daysInMonth(year, m)
			}

			yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
			h.Primary = append(h.Primary, model.HeaderBand{
				Key:   fmt.Sprintf("year-%d", year),
				Left:  max(0, floorDays(yearStart.Sub(start))) * ppd,
				Width: remaining * ppd,
				Label: strconv.Itoa(year),
			})
		}

		h.Secondary = append(h.Secondary, model.HeaderBand{
			Key:   fmt.Sprintf("month-%d", i),
			Left:  max(0, floorDays(cursor.Sub(start))) * ppd,
			Width: daysInMonth(year, month) * ppd,
			Label: shortMonth(month),
		})

		cursor = cursor.AddDate(0, 1, 0)
	}
	return h
}

func (e *Engine) yearHeaders() model.Headers {
	var h model.Headers
	ppd := e.scale.PixelsPerDay
	start := e.rng.Start
	loc := start.Location()

	for i, year := 0, start.Year(); ; i, year = i+1, year+1 {
		yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
		if yearStart.After(e.rng.End) {
			break
		}
		yearEnd := time.Date(year, time.December, 31, 0, 0, 0, 0, loc)

		h.Primary = append(h.Primary, model.HeaderBand{
			Key:   fmt.Sprintf("year-%d", year),
			Left:  max(0, floorDays(yearStart.Sub(start))) * ppd,
			Width: inclusiveDays(yearStart, yearEnd) * ppd,
			Label: strconv.Itoa(year),
		})

		for q := 0; q < 4; q++ {
			quarterStart := time.Date(year, time.Month(q*3+1), 1, 0, 0, 0, 0, loc)
			quarterEnd := time.Date(year, time.Month(q*3+4), 0, 0, 0, 0, 0, loc)

			h.Secondary = append(h.Secondary, model.HeaderBand{
				Key:   fmt.Sprintf("quarter-%d-%d", i, q),
				Left:  max(0, floorDays(quarterStart.Sub(start))) * ppd,
				Width: inclusiveDays(quarterStart, quarterEnd) * ppd,
				Label: fmt.Sprintf("Q%d", q+1),
			})
		}
	}
	return h
}
