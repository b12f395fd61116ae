package domain

import (
	"slices"
	"time"
)

// Status is a task lifecycle stage.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusArchived   Status = "archived"
)

// Statuses returns every known status in board-column order.
func Statuses() []Status {
	return []Status{StatusTodo, StatusInProgress, StatusCompleted, StatusArchived}
}

func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusCompleted, StatusArchived:
		return true
	}
	return false
}

func (s Status) Label() string {
	switch s {
	case StatusTodo:
		return "To Do"
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	case StatusArchived:
		return "Archived"
	}
	return string(s)
}

// Priority is a task urgency ranking.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Priorities returns every known priority, least urgent first.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}
}

func (p Priority) Valid() bool {
	return p.Rank() > 0
}

// Rank maps a priority to its sort weight. Unknown priorities rank 0 and
// therefore sort after every recognized value.
func (p Priority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

func (p Priority) Label() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	case PriorityUrgent:
		return "Urgent"
	}
	return string(p)
}

// Color returns the display color token for the priority badge.
func (p Priority) Color() string {
	switch p {
	case PriorityLow:
		return "#10b981"
	case PriorityMedium:
		return "#f59e0b"
	case PriorityHigh:
		return "#f97316"
	case PriorityUrgent:
		return "#ef4444"
	}
	return "#6b7280"
}

// Task represents a unit of work with priority, status, optional due date
// and time tracking.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Priority    Priority   `json:"priority"`
	Status      Status     `json:"status"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	ProjectID   string     `json:"project_id,omitempty"`
	AssignedTo  string     `json:"assigned_to,omitempty"`
	TimeSpent   float64    `json:"time_spent"`
	Tags        []string   `json:"tags,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (t *Task) IsCompleted() bool {
	return t != nil && t.Status == StatusCompleted
}

// IsOverdue reports whether the task's due date has passed. Tasks without a
// due date are never overdue; completed and archived tasks are exempt.
func (t *Task) IsOverdue(now time.Time) bool {
	if t == nil || t.DueDate == nil {
		return false
	}
	if t.Status == StatusCompleted || t.Status == StatusArchived {
		return false
	}
	return t.DueDate.Before(now)
}

// AddTag appends a tag, preserving insertion order and rejecting duplicates.
func (t *Task) AddTag(tag string) {
	if tag == "" || slices.Contains(t.Tags, tag) {
		return
	}
	t.Tags = append(t.Tags, tag)
}

func (t *Task) Touch(now time.Time) {
	if t == nil {
		return
	}
	t.UpdatedAt = now
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
}

// TaskPatch is a partial task update. Nil fields leave the corresponding
// task field untouched.
type TaskPatch struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Priority    *Priority  `json:"priority,omitempty"`
	Status      *Status    `json:"status,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	ClearDue    bool       `json:"clear_due,omitempty"`
	ProjectID   *string    `json:"project_id,omitempty"`
	AssignedTo  *string    `json:"assigned_to,omitempty"`
	TimeSpent   *float64   `json:"time_spent,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
}

// Apply merges the patch into the task and refreshes UpdatedAt.
func (p TaskPatch) Apply(t *Task, now time.Time) {
	if t == nil {
		return
	}
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.DueDate != nil {
		due := *p.DueDate
		t.DueDate = &due
	} else if p.ClearDue {
		t.DueDate = nil
	}
	if p.ProjectID != nil {
		t.ProjectID = *p.ProjectID
	}
	if p.AssignedTo != nil {
		t.AssignedTo = *p.AssignedTo
	}
	if p.TimeSpent != nil && *p.TimeSpent >= 0 {
		t.TimeSpent = *p.TimeSpent
	}
	if p.Tags != nil {
		t.Tags = nil
		for _, tag := range p.Tags {
			t.AddTag(tag)
		}
	}
	t.Touch(now)
}
