// Package board assembles the derived read models consumed by the kanban
// board, dashboard and calendar views. Every view is recomputed from the
// current store snapshot on each call; nothing is cached.
package board

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/taskdeck/backend/calendar"
	"github.com/taskdeck/backend/dashboard"
	"github.com/taskdeck/backend/domain"
	"github.com/taskdeck/backend/pkg/dates"
	"github.com/taskdeck/backend/query"
	"github.com/taskdeck/backend/repository"
)

type UseCase struct {
	tasks    repository.TaskRepository
	projects repository.ProjectRepository
	logger   *zap.Logger
	now      func() time.Time
}

func New(tasks repository.TaskRepository, projects repository.ProjectRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:    tasks,
		projects: projects,
		logger:   logger,
		now:      time.Now,
	}
}

// WithClock overrides the view clock. Intended for tests.
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	if now != nil {
		uc.now = now
	}
	return uc
}

// Card is a task annotated with the due-date presentation the board shows.
type Card struct {
	domain.Task
	DueLabel  string           `json:"due_label,omitempty"`
	DueStatus query.DateStatus `json:"due_status,omitempty"`
}

// Column is one kanban lane.
type Column struct {
	Status domain.Status `json:"status"`
	Label  string        `json:"label"`
	Tasks  []Card        `json:"tasks"`
}

// BoardView is the kanban read model: one column per known status plus any
// unrecognized statuses found in the data, which are kept rather than
// dropped.
type BoardView struct {
	ProjectID string   `json:"project_id"`
	Columns   []Column `json:"columns"`
}

func (uc *UseCase) Board(ctx context.Context, projectID string) (*BoardView, error) {
	tasks, err := uc.tasks.List(ctx, repository.TaskFilter{ProjectID: projectID})
	if err != nil {
		return nil, err
	}

	now := uc.now()
	groups := query.GroupByStatus(tasks)
	view := &BoardView{ProjectID: projectID}
	for _, status := range domain.Statuses() {
		view.Columns = append(view.Columns, Column{
			Status: status,
			Label:  status.Label(),
			Tasks:  cards(groups[status], now),
		})
		delete(groups, status)
	}
	for status, rest := range groups {
		view.Columns = append(view.Columns, Column{Status: status, Label: status.Label(), Tasks: cards(rest, now)})
	}
	return view, nil
}

func cards(tasks []domain.Task, now time.Time) []Card {
	out := make([]Card, 0, len(tasks))
	for _, t := range tasks {
		card := Card{Task: t, DueStatus: query.DueDateStatus(t.DueDate, now)}
		if t.DueDate != nil {
			card.DueLabel = dates.RelativeLabel(*t.DueDate, now)
		}
		out = append(out, card)
	}
	return out
}

// DashboardView bundles every aggregate the overview screen renders.
type DashboardView struct {
	StatusCounts   map[domain.Status]int       `json:"status_counts"`
	PriorityCounts map[domain.Priority]int     `json:"priority_counts"`
	CompletionRate int                         `json:"completion_rate"`
	Projects       []dashboard.ProjectProgress `json:"projects"`
	Daily          []dashboard.DailyEntry      `json:"daily_productivity"`
	Insights       dashboard.Insights          `json:"insights"`
	Overdue        []domain.Task               `json:"overdue_tasks"`
}

func (uc *UseCase) Dashboard(ctx context.Context, projectID string) (*DashboardView, error) {
	tasks, err := uc.tasks.List(ctx, repository.TaskFilter{ProjectID: projectID})
	if err != nil {
		return nil, err
	}
	projects, err := uc.projects.List(ctx)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	return &DashboardView{
		StatusCounts:   dashboard.CountsByStatus(tasks),
		PriorityCounts: dashboard.CountsByPriority(tasks),
		CompletionRate: dashboard.CompletionRate(tasks),
		Projects:       dashboard.ProjectProgressAll(tasks, projects),
		Daily:          dashboard.DailyProductivity(tasks, now, 7),
		Insights:       dashboard.ProductivityInsights(tasks, now),
		Overdue:        query.Overdue(tasks, now),
	}, nil
}

// MonthDay is one cell of the calendar grid.
type MonthDay struct {
	Date    string        `json:"date"`
	InMonth bool          `json:"in_month"`
	Today   bool          `json:"today"`
	Tasks   []domain.Task `json:"tasks"`
}

// MonthView is the calendar read model for one anchor month.
type MonthView struct {
	Anchor string              `json:"anchor"`
	Days   []MonthDay          `json:"days"`
	Stats  calendar.MonthStats `json:"stats"`
}

func (uc *UseCase) Month(ctx context.Context, anchor time.Time, projectID string) (*MonthView, error) {
	tasks, err := uc.tasks.List(ctx, repository.TaskFilter{ProjectID: projectID})
	if err != nil {
		return nil, err
	}

	now := uc.now()
	view := &MonthView{
		Anchor: anchor.Format("2006-01"),
		Stats:  calendar.StatsForMonth(tasks, anchor, now),
	}
	for day := range calendar.MonthGrid(anchor) {
		view.Days = append(view.Days, MonthDay{
			Date:    dates.DayKey(day),
			InMonth: day.Month() == anchor.Month(),
			Today:   dates.SameDay(day, now),
			Tasks:   calendar.TasksOn(tasks, day),
		})
	}
	return view, nil
}
