// Package seed preloads the in-memory stores with the demo workspace shown
// on first run: two projects and a handful of tasks spread around the
// current date.
package seed

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/taskdeck/backend/domain"
	"github.com/taskdeck/backend/repository"
)

// Load inserts the demo projects and tasks. Due dates are offsets from now
// so the dashboard and calendar views have something to show whenever the
// server boots.
func Load(ctx context.Context, tasks repository.TaskRepository, projects repository.ProjectRepository, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	now := time.Now()

	demoProjects := []domain.Project{
		{
			ID:          "1",
			Name:        "Personal Tasks",
			Description: "Personal productivity and life tasks",
			Color:       "#3b82f6",
			OwnerID:     "user1",
			Members:     []string{"user1"},
		},
		{
			ID:          "2",
			Name:        "Work Projects",
			Description: "Professional development and work-related tasks",
			Color:       "#10b981",
			OwnerID:     "user1",
			Members:     []string{"user1"},
		},
	}

	due := func(days int) *time.Time {
		d := now.AddDate(0, 0, days)
		return &d
	}

	demoTasks := []domain.Task{
		{
			ID:          "1",
			Title:       "Design new landing page",
			Description: "Create wireframes and mockups for the new company landing page",
			Priority:    domain.PriorityHigh,
			Status:      domain.StatusInProgress,
			DueDate:     due(7),
			ProjectID:   "2",
			AssignedTo:  "user1",
			TimeSpent:   5.5,
			Tags:        []string{"design", "ui/ux", "frontend"},
		},
		{
			ID:          "2",
			Title:       "Review quarterly reports",
			Description: "Analyze Q3 performance metrics and prepare summary for stakeholders",
			Priority:    domain.PriorityMedium,
			Status:      domain.StatusTodo,
			DueDate:     due(3),
			ProjectID:   "2",
			AssignedTo:  "user1",
			Tags:        []string{"reports", "analysis"},
		},
		{
			ID:          "3",
			Title:       "Weekly grocery shopping",
			Description: "Buy fresh vegetables, fruits, and pantry essentials for the week",
			Priority:    domain.PriorityLow,
			Status:      domain.StatusTodo,
			DueDate:     due(2),
			ProjectID:   "1",
			AssignedTo:  "user1",
			Tags:        []string{"personal", "shopping"},
		},
		{
			ID:          "4",
			Title:       "Update project documentation",
			Description: "Revise API documentation and add new endpoint specifications",
			Priority:    domain.PriorityUrgent,
			Status:      domain.StatusCompleted,
			DueDate:     due(-1),
			ProjectID:   "2",
			AssignedTo:  "user1",
			TimeSpent:   3.2,
			Tags:        []string{"documentation", "api"},
		},
	}

	for i := range demoProjects {
		if _, err := projects.Create(ctx, &demoProjects[i]); err != nil {
			return err
		}
	}
	for i := range demoTasks {
		if _, err := tasks.Create(ctx, &demoTasks[i]); err != nil {
			return err
		}
	}

	logger.Info("demo data seeded",
		zap.Int("projects", len(demoProjects)),
		zap.Int("tasks", len(demoTasks)))
	return nil
}
