// Package dashboard aggregates a task/project snapshot into the summary
// figures shown on the overview screen. Functions are pure and recompute
// from the snapshot on every call.
package dashboard

import (
	"math"
	"time"

	"github.com/montanaflynn/stats"

	"github.com/taskdeck/backend/domain"
	"github.com/taskdeck/backend/pkg/dates"
	"github.com/taskdeck/backend/query"
)

// CompletionRate returns the percentage of completed tasks, rounded to the
// nearest integer. An empty snapshot is 0, never NaN.
func CompletionRate(tasks []domain.Task) int {
	if len(tasks) == 0 {
		return 0
	}
	completed := 0
	for _, t := range tasks {
		if t.IsCompleted() {
			completed++
		}
	}
	return int(math.Round(float64(completed) / float64(len(tasks)) * 100))
}

// CountsByStatus counts tasks per active status. Archived tasks are
// deliberately left out of this view; the kanban board shows them, the
// dashboard does not.
func CountsByStatus(tasks []domain.Task) map[domain.Status]int {
	counts := map[domain.Status]int{
		domain.StatusTodo:       0,
		domain.StatusInProgress: 0,
		domain.StatusCompleted:  0,
	}
	for _, t := range tasks {
		if _, ok := counts[t.Status]; ok {
			counts[t.Status]++
		}
	}
	return counts
}

// CountsByPriority counts tasks per priority with every key pre-zeroed.
// Unknown priorities are excluded.
func CountsByPriority(tasks []domain.Task) map[domain.Priority]int {
	counts := make(map[domain.Priority]int, len(domain.Priorities()))
	for _, p := range domain.Priorities() {
		counts[p] = 0
	}
	for _, t := range tasks {
		if _, ok := counts[t.Priority]; ok {
			counts[t.Priority]++
		}
	}
	return counts
}

// ProjectProgress describes one project's completion state.
type ProjectProgress struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Color          string `json:"color"`
	Progress       int    `json:"progress"`
	TotalTasks     int    `json:"total_tasks"`
	CompletedTasks int    `json:"completed_tasks"`
}

// ProjectProgressAll computes per-project completion aligned to the input
// project order.
func ProjectProgressAll(tasks []domain.Task, projects []domain.Project) []ProjectProgress {
	out := make([]ProjectProgress, 0, len(projects))
	for _, p := range projects {
		projectTasks := query.FilterByProject(tasks, p.ID)
		completed := 0
		for _, t := range projectTasks {
			if t.IsCompleted() {
				completed++
			}
		}
		out = append(out, ProjectProgress{
			ID:             p.ID,
			Name:           p.Name,
			Color:          p.Color,
			Progress:       query.ProjectProgress(tasks, p.ID),
			TotalTasks:     len(projectTasks),
			CompletedTasks: completed,
		})
	}
	return out
}

// DailyEntry is one day of the productivity series.
type DailyEntry struct {
	Day            string  `json:"day"`
	CompletedCount int     `json:"completed_count"`
	TimeSpent      float64 `json:"time_spent"`
}

// DailyProductivity reports, for each of the last days calendar days ending
// today, how many tasks were completed that day and how much time they
// logged. Oldest day first. Completion day is the task's UpdatedAt.
func DailyProductivity(tasks []domain.Task, now time.Time, days int) []DailyEntry {
	if days <= 0 {
		days = 7
	}
	out := make([]DailyEntry, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := dates.StartOfDay(now).AddDate(0, 0, -i)
		entry := DailyEntry{Day: day.Weekday().String()[:3]}
		for _, t := range tasks {
			if t.IsCompleted() && dates.SameDay(t.UpdatedAt, day) {
				entry.CompletedCount++
				entry.TimeSpent += t.TimeSpent
			}
		}
		out = append(out, entry)
	}
	return out
}

// TotalTimeSpent sums logged hours over the snapshot.
func TotalTimeSpent(tasks []domain.Task) float64 {
	if len(tasks) == 0 {
		return 0
	}
	hours := make([]float64, 0, len(tasks))
	for _, t := range tasks {
		hours = append(hours, t.TimeSpent)
	}
	total, err := stats.Sum(hours)
	if err != nil {
		return 0
	}
	return total
}

// AverageTaskTime returns the mean hours logged across completed tasks with
// nonzero time, rounded to one decimal. 0 when no task qualifies.
func AverageTaskTime(tasks []domain.Task) float64 {
	hours := make([]float64, 0, len(tasks))
	for _, t := range tasks {
		if t.IsCompleted() && t.TimeSpent > 0 {
			hours = append(hours, t.TimeSpent)
		}
	}
	if len(hours) == 0 {
		return 0
	}
	mean, err := stats.Mean(hours)
	if err != nil {
		return 0
	}
	rounded, err := stats.Round(mean, 1)
	if err != nil {
		return 0
	}
	return rounded
}

// Insights is the aggregate productivity summary.
type Insights struct {
	TotalTasks      int     `json:"total_tasks"`
	CompletedTasks  int     `json:"completed_tasks"`
	InProgressTasks int     `json:"in_progress_tasks"`
	OverdueTasks    int     `json:"overdue_tasks"`
	CompletionRate  int     `json:"completion_rate"`
	TotalTimeSpent  float64 `json:"total_time_spent"`
	AverageTaskTime float64 `json:"average_task_time"`
}

// ProductivityInsights aggregates the snapshot as of now.
func ProductivityInsights(tasks []domain.Task, now time.Time) Insights {
	ins := Insights{TotalTasks: len(tasks)}
	for _, t := range tasks {
		switch {
		case t.IsCompleted():
			ins.CompletedTasks++
		case t.Status == domain.StatusInProgress:
			ins.InProgressTasks++
		}
		if t.IsOverdue(now) {
			ins.OverdueTasks++
		}
	}
	ins.CompletionRate = CompletionRate(tasks)
	ins.TotalTimeSpent = TotalTimeSpent(tasks)
	ins.AverageTaskTime = AverageTaskTime(tasks)
	return ins
}
