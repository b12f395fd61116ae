// Package calendar generates month grids and buckets tasks onto calendar
// days. Grid generation is stateless: month navigation is a matter of
// calling MonthGrid again with a new anchor date.
package calendar

import (
	"iter"
	"math"
	"time"

	"github.com/taskdeck/backend/domain"
	"github.com/taskdeck/backend/pkg/dates"
)

// MonthGrid yields the calendar days shown for the month containing anchor:
// from the Sunday on or before the 1st through the Saturday on or after the
// last day, so the grid is always a whole number of 7-day weeks. The
// sequence is finite and restartable.
func MonthGrid(anchor time.Time) iter.Seq[time.Time] {
	start := dates.StartOfWeek(dates.StartOfMonth(anchor))
	end := dates.EndOfWeek(dates.EndOfMonth(anchor))

	return func(yield func(time.Time) bool) {
		for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
			if !yield(day) {
				return
			}
		}
	}
}

// GridDays materializes MonthGrid into a slice.
func GridDays(anchor time.Time) []time.Time {
	var days []time.Time
	for day := range MonthGrid(anchor) {
		days = append(days, day)
	}
	return days
}

// Bucket maps each grid day to the tasks due that calendar day. Time of day
// is ignored; tasks without a due date appear in no bucket.
func Bucket(tasks []domain.Task, grid iter.Seq[time.Time]) map[time.Time][]domain.Task {
	buckets := make(map[time.Time][]domain.Task)
	for day := range grid {
		key := dates.StartOfDay(day)
		buckets[key] = TasksOn(tasks, day)
	}
	return buckets
}

// TasksOn returns the tasks due on the same calendar day as date.
func TasksOn(tasks []domain.Task, date time.Time) []domain.Task {
	out := make([]domain.Task, 0)
	for _, t := range tasks {
		if t.DueDate != nil && dates.SameDay(*t.DueDate, date) {
			out = append(out, t)
		}
	}
	return out
}

// HasTasks reports whether any task is due on the given calendar day.
func HasTasks(tasks []domain.Task, date time.Time) bool {
	for _, t := range tasks {
		if t.DueDate != nil && dates.SameDay(*t.DueDate, date) {
			return true
		}
	}
	return false
}

// InRange returns tasks whose due date falls within [start, end].
func InRange(tasks []domain.Task, start, end time.Time) []domain.Task {
	out := make([]domain.Task, 0)
	for _, t := range tasks {
		if t.DueDate == nil {
			continue
		}
		due := *t.DueDate
		if !due.Before(start) && !due.After(end) {
			out = append(out, t)
		}
	}
	return out
}

// GroupByDay groups tasks by due date under YYYY-MM-DD keys. Tasks without
// a due date are skipped.
func GroupByDay(tasks []domain.Task) map[string][]domain.Task {
	grouped := make(map[string][]domain.Task)
	for _, t := range tasks {
		if t.DueDate == nil {
			continue
		}
		key := dates.DayKey(*t.DueDate)
		grouped[key] = append(grouped[key], t)
	}
	return grouped
}

// ByPriorityOn groups the tasks due on a calendar day by priority, with all
// four priority keys always present.
func ByPriorityOn(tasks []domain.Task, date time.Time) map[domain.Priority][]domain.Task {
	dayTasks := TasksOn(tasks, date)
	grouped := make(map[domain.Priority][]domain.Task, len(domain.Priorities()))
	for _, p := range domain.Priorities() {
		grouped[p] = []domain.Task{}
	}
	for _, t := range dayTasks {
		if t.Priority.Valid() {
			grouped[t.Priority] = append(grouped[t.Priority], t)
		}
	}
	return grouped
}

// MonthStats summarizes the tasks due within the anchor month.
type MonthStats struct {
	TotalTasks     int     `json:"total_tasks"`
	CompletedTasks int     `json:"completed_tasks"`
	OverdueTasks   int     `json:"overdue_tasks"`
	UpcomingTasks  int     `json:"upcoming_tasks"`
	CompletionRate float64 `json:"completion_rate"`
}

// StatsForMonth computes due-date statistics for the month containing
// anchor, evaluated as of now.
func StatsForMonth(tasks []domain.Task, anchor, now time.Time) MonthStats {
	monthStart := dates.StartOfMonth(anchor)
	monthEnd := dates.StartOfDay(dates.EndOfMonth(anchor)).AddDate(0, 0, 1).Add(-time.Nanosecond)
	monthTasks := InRange(tasks, monthStart, monthEnd)

	stats := MonthStats{TotalTasks: len(monthTasks)}
	for _, t := range monthTasks {
		switch {
		case t.IsCompleted():
			stats.CompletedTasks++
		case t.Status == domain.StatusArchived:
			// archived tasks count toward the total only
		case t.DueDate.Before(now):
			stats.OverdueTasks++
		default:
			stats.UpcomingTasks++
		}
	}
	if stats.TotalTasks > 0 {
		rate := float64(stats.CompletedTasks) / float64(stats.TotalTasks) * 100
		stats.CompletionRate = math.Round(rate*100) / 100
	}
	return stats
}
