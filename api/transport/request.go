package transport

import (
	"time"

	"github.com/taskdeck/backend/domain"
)

// TaskRequest is the create-task payload. Empty status and priority fall
// back to their defaults in the usecase.
type TaskRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    string   `json:"priority"`
	Status      string   `json:"status"`
	DueDate     string   `json:"due_date"`
	ProjectID   string   `json:"project_id"`
	AssignedTo  string   `json:"assigned_to"`
	TimeSpent   float64  `json:"time_spent"`
	Tags        []string `json:"tags"`
}

// Task converts the request into a domain task. An unparseable due date is
// treated as absent.
func (r TaskRequest) Task() *domain.Task {
	return &domain.Task{
		Title:       r.Title,
		Description: r.Description,
		Priority:    domain.Priority(r.Priority),
		Status:      domain.Status(r.Status),
		DueDate:     ParseDue(r.DueDate),
		ProjectID:   r.ProjectID,
		AssignedTo:  r.AssignedTo,
		TimeSpent:   r.TimeSpent,
		Tags:        r.Tags,
	}
}

// TaskPatchRequest is the update-task payload; absent fields are left
// untouched.
type TaskPatchRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Priority    *string  `json:"priority"`
	Status      *string  `json:"status"`
	DueDate     *string  `json:"due_date"`
	ProjectID   *string  `json:"project_id"`
	AssignedTo  *string  `json:"assigned_to"`
	TimeSpent   *float64 `json:"time_spent"`
	Tags        []string `json:"tags"`
}

// Patch converts the request into a domain patch. An explicit empty due
// date string clears the task's due date.
func (r TaskPatchRequest) Patch() domain.TaskPatch {
	patch := domain.TaskPatch{
		Title:       r.Title,
		Description: r.Description,
		ProjectID:   r.ProjectID,
		AssignedTo:  r.AssignedTo,
		TimeSpent:   r.TimeSpent,
		Tags:        r.Tags,
	}
	if r.Priority != nil {
		p := domain.Priority(*r.Priority)
		patch.Priority = &p
	}
	if r.Status != nil {
		s := domain.Status(*r.Status)
		patch.Status = &s
	}
	if r.DueDate != nil {
		if *r.DueDate == "" {
			patch.ClearDue = true
		} else {
			patch.DueDate = ParseDue(*r.DueDate)
		}
	}
	return patch
}

// MoveRequest carries a drag-and-drop target status.
type MoveRequest struct {
	Status string `json:"status"`
}

// ProjectRequest is the create-project payload.
type ProjectRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Color       string   `json:"color"`
	OwnerID     string   `json:"owner_id"`
	Members     []string `json:"members"`
}

func (r ProjectRequest) Project() *domain.Project {
	return &domain.Project{
		Name:        r.Name,
		Description: r.Description,
		Color:       r.Color,
		OwnerID:     r.OwnerID,
		Members:     r.Members,
	}
}

// ProjectPatchRequest is the update-project payload.
type ProjectPatchRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Color       *string  `json:"color"`
	OwnerID     *string  `json:"owner_id"`
	Members     []string `json:"members"`
	IsArchived  *bool    `json:"is_archived"`
}

func (r ProjectPatchRequest) Patch() domain.ProjectPatch {
	return domain.ProjectPatch{
		Name:        r.Name,
		Description: r.Description,
		Color:       r.Color,
		OwnerID:     r.OwnerID,
		Members:     r.Members,
		IsArchived:  r.IsArchived,
	}
}

// ParseDue parses an RFC 3339 timestamp, falling back to a bare date.
// Malformed values yield nil, which the rest of the system treats as "no
// due date".
func ParseDue(value string) *time.Time {
	if value == "" {
		return nil
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return &parsed
	}
	if parsed, err := time.ParseInLocation("2006-01-02", value, time.Local); err == nil {
		return &parsed
	}
	return nil
}
