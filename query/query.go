// Package query computes filtered, sorted and grouped views of a task
// snapshot. Every function is pure: inputs are never mutated and results are
// recomputed from scratch on each call.
package query

import (
	"math"
	"slices"
	"time"

	"github.com/taskdeck/backend/domain"
	"github.com/taskdeck/backend/pkg/dates"
	"github.com/taskdeck/backend/repository"
)

// FilterByProject returns the tasks belonging to projectID, preserving input
// order. The sentinel "all" (or an empty id) returns the snapshot unchanged.
func FilterByProject(tasks []domain.Task, projectID string) []domain.Task {
	if projectID == "" || projectID == repository.AllProjects {
		return tasks
	}
	out := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	return out
}

// GroupByStatus partitions tasks into ordered lists keyed by status.
// Unrecognized status values are kept under their own key rather than
// dropped.
func GroupByStatus(tasks []domain.Task) map[domain.Status][]domain.Task {
	groups := make(map[domain.Status][]domain.Task)
	for _, t := range tasks {
		groups[t.Status] = append(groups[t.Status], t)
	}
	return groups
}

// SortByPriority returns a new slice ordered by descending priority rank.
// The sort is stable: tasks of equal priority keep their input order.
func SortByPriority(tasks []domain.Task) []domain.Task {
	out := slices.Clone(tasks)
	slices.SortStableFunc(out, func(a, b domain.Task) int {
		return b.Priority.Rank() - a.Priority.Rank()
	})
	return out
}

// Overdue returns tasks whose due date has passed as of now. Completed and
// archived tasks are exempt, as are tasks without a due date.
func Overdue(tasks []domain.Task, now time.Time) []domain.Task {
	out := make([]domain.Task, 0)
	for _, t := range tasks {
		if t.IsOverdue(now) {
			out = append(out, t)
		}
	}
	return out
}

// DueOn returns tasks due on the same calendar day as date, regardless of
// time of day. Tasks without a due date never match.
func DueOn(tasks []domain.Task, date time.Time) []domain.Task {
	out := make([]domain.Task, 0)
	for _, t := range tasks {
		if t.DueDate != nil && dates.SameDay(*t.DueDate, date) {
			out = append(out, t)
		}
	}
	return out
}

// ProjectProgress returns the percentage of completed tasks among the
// project's tasks, rounded to the nearest integer. A project with no tasks
// is 0% complete, never NaN.
func ProjectProgress(tasks []domain.Task, projectID string) int {
	projectTasks := FilterByProject(tasks, projectID)
	if len(projectTasks) == 0 {
		return 0
	}
	completed := 0
	for _, t := range projectTasks {
		if t.IsCompleted() {
			completed++
		}
	}
	return int(math.Round(float64(completed) / float64(len(projectTasks)) * 100))
}

// DateStatus classifies a due date relative to now for display purposes.
type DateStatus string

const (
	DateStatusNone        DateStatus = ""
	DateStatusDueToday    DateStatus = "due-today"
	DateStatusOverdue     DateStatus = "overdue"
	DateStatusDueTomorrow DateStatus = "due-tomorrow"
	DateStatusUpcoming    DateStatus = "upcoming"
)

// DueDateStatus reports how a due date relates to now at day granularity.
// A nil due date yields DateStatusNone.
func DueDateStatus(dueDate *time.Time, now time.Time) DateStatus {
	if dueDate == nil {
		return DateStatusNone
	}
	due := dates.StartOfDay(*dueDate)
	today := dates.StartOfDay(now)
	switch {
	case due.Equal(today):
		return DateStatusDueToday
	case due.Before(today):
		return DateStatusOverdue
	case due.Equal(today.AddDate(0, 0, 1)):
		return DateStatusDueTomorrow
	default:
		return DateStatusUpcoming
	}
}
