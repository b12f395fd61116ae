package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/backend/domain"
)

func datePtr(t time.Time) *time.Time { return &t }

func TestCompletionRate(t *testing.T) {
	tasks := []domain.Task{
		{ID: "1", Status: domain.StatusCompleted, Priority: domain.PriorityHigh},
		{ID: "2", Status: domain.StatusTodo, Priority: domain.PriorityUrgent},
		{ID: "3", Status: domain.StatusInProgress, Priority: domain.PriorityLow},
	}

	assert.Equal(t, 33, CompletionRate(tasks), "33.33 rounds to 33")
	assert.Equal(t, 0, CompletionRate(nil), "empty snapshot is 0, never NaN")

	rate := CompletionRate(tasks)
	assert.GreaterOrEqual(t, rate, 0)
	assert.LessOrEqual(t, rate, 100)
}

func TestCountsByStatus(t *testing.T) {
	tasks := []domain.Task{
		{ID: "1", Status: domain.StatusCompleted},
		{ID: "2", Status: domain.StatusTodo},
		{ID: "3", Status: domain.StatusInProgress},
		{ID: "4", Status: domain.StatusArchived},
		{ID: "5", Status: domain.Status("blocked")},
	}

	counts := CountsByStatus(tasks)
	assert.Equal(t, map[domain.Status]int{
		domain.StatusTodo:       1,
		domain.StatusInProgress: 1,
		domain.StatusCompleted:  1,
	}, counts, "archived and unknown statuses stay out of this view")
}

func TestCountsByPriority_AllKeysPreZeroed(t *testing.T) {
	counts := CountsByPriority([]domain.Task{
		{ID: "1", Priority: domain.PriorityUrgent},
		{ID: "2", Priority: domain.PriorityUrgent},
		{ID: "3", Priority: domain.Priority("unknown")},
	})

	assert.Equal(t, map[domain.Priority]int{
		domain.PriorityLow:    0,
		domain.PriorityMedium: 0,
		domain.PriorityHigh:   0,
		domain.PriorityUrgent: 2,
	}, counts)
}

func TestProjectProgressAll_AlignedToProjectOrder(t *testing.T) {
	projects := []domain.Project{
		{ID: "p1", Name: "Personal", Color: "#3b82f6"},
		{ID: "p2", Name: "Work", Color: "#10b981"},
		{ID: "p3", Name: "Empty", Color: "#ef4444"},
	}
	tasks := []domain.Task{
		{ID: "1", ProjectID: "p1", Status: domain.StatusCompleted},
		{ID: "2", ProjectID: "p1", Status: domain.StatusTodo},
		{ID: "3", ProjectID: "p2", Status: domain.StatusCompleted},
	}

	got := ProjectProgressAll(tasks, projects)
	require.Len(t, got, 3)

	assert.Equal(t, ProjectProgress{ID: "p1", Name: "Personal", Color: "#3b82f6", Progress: 50, TotalTasks: 2, CompletedTasks: 1}, got[0])
	assert.Equal(t, 100, got[1].Progress)
	assert.Equal(t, ProjectProgress{ID: "p3", Name: "Empty", Color: "#ef4444"}, got[2], "zero tasks yields 0 progress")
}

func TestDailyProductivity(t *testing.T) {
	now := time.Date(2026, 7, 10, 15, 0, 0, 0, time.Local) // a Friday

	tasks := []domain.Task{
		{ID: "1", Status: domain.StatusCompleted, TimeSpent: 2.5, UpdatedAt: time.Date(2026, 7, 10, 9, 0, 0, 0, time.Local)},
		{ID: "2", Status: domain.StatusCompleted, TimeSpent: 1.5, UpdatedAt: time.Date(2026, 7, 10, 18, 0, 0, 0, time.Local)},
		{ID: "3", Status: domain.StatusCompleted, TimeSpent: 4, UpdatedAt: time.Date(2026, 7, 8, 12, 0, 0, 0, time.Local)},
		{ID: "4", Status: domain.StatusTodo, UpdatedAt: time.Date(2026, 7, 10, 9, 0, 0, 0, time.Local)},
		{ID: "5", Status: domain.StatusCompleted, TimeSpent: 9, UpdatedAt: time.Date(2026, 7, 1, 9, 0, 0, 0, time.Local)},
	}

	series := DailyProductivity(tasks, now, 7)
	require.Len(t, series, 7)

	assert.Equal(t, "Sat", series[0].Day, "oldest day first")
	assert.Equal(t, "Fri", series[6].Day)

	today := series[6]
	assert.Equal(t, 2, today.CompletedCount)
	assert.Equal(t, 4.0, today.TimeSpent)

	wednesday := series[4]
	assert.Equal(t, 1, wednesday.CompletedCount)
	assert.Equal(t, 4.0, wednesday.TimeSpent)

	// incomplete and out-of-window tasks contribute nothing
	assert.Equal(t, 0, series[5].CompletedCount)
}

func TestDailyProductivity_EmptySnapshot(t *testing.T) {
	series := DailyProductivity(nil, time.Now(), 7)
	require.Len(t, series, 7)
	for _, entry := range series {
		assert.Zero(t, entry.CompletedCount)
		assert.Zero(t, entry.TimeSpent)
	}
}

func TestAverageTaskTime(t *testing.T) {
	tasks := []domain.Task{
		{ID: "1", Status: domain.StatusCompleted, TimeSpent: 3},
		{ID: "2", Status: domain.StatusCompleted, TimeSpent: 4.5},
		{ID: "3", Status: domain.StatusCompleted}, // zero time excluded
		{ID: "4", Status: domain.StatusTodo, TimeSpent: 10},
	}

	assert.Equal(t, 3.8, AverageTaskTime(tasks), "mean of 3 and 4.5, one decimal")
	assert.Equal(t, 0.0, AverageTaskTime(nil))
	assert.Equal(t, 0.0, AverageTaskTime([]domain.Task{{ID: "1", Status: domain.StatusCompleted}}))
}

func TestProductivityInsights(t *testing.T) {
	now := time.Date(2026, 7, 10, 12, 0, 0, 0, time.Local)
	yesterday := now.AddDate(0, 0, -1)

	tasks := []domain.Task{
		{ID: "1", Status: domain.StatusCompleted, TimeSpent: 3.2},
		{ID: "2", Status: domain.StatusInProgress, TimeSpent: 1},
		{ID: "3", Status: domain.StatusTodo, DueDate: datePtr(yesterday)},
		{ID: "4", Status: domain.StatusArchived, DueDate: datePtr(yesterday)},
	}

	ins := ProductivityInsights(tasks, now)
	assert.Equal(t, 4, ins.TotalTasks)
	assert.Equal(t, 1, ins.CompletedTasks)
	assert.Equal(t, 1, ins.InProgressTasks)
	assert.Equal(t, 1, ins.OverdueTasks, "archived is exempt from overdue")
	assert.Equal(t, 25, ins.CompletionRate)
	assert.InDelta(t, 4.2, ins.TotalTimeSpent, 1e-9)
	assert.Equal(t, 3.2, ins.AverageTaskTime)
}
