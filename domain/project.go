package domain

import (
	"slices"
	"time"
)

// ProjectColors is the fixed palette available for project display colors.
var ProjectColors = []string{
	"#3b82f6", // blue
	"#10b981", // green
	"#f59e0b", // yellow
	"#ef4444", // red
	"#8b5cf6", // purple
	"#06b6d4", // cyan
	"#f97316", // orange
	"#84cc16", // lime
	"#ec4899", // pink
	"#6b7280", // gray
}

// DefaultProjectColor is the palette head, used when a project is created
// without an explicit color.
func DefaultProjectColor() string {
	return ProjectColors[0]
}

// ValidProjectColor reports whether the token belongs to the palette.
func ValidProjectColor(color string) bool {
	return slices.Contains(ProjectColors, color)
}

// Project is a named grouping for tasks with a display color.
type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Color       string    `json:"color"`
	OwnerID     string    `json:"owner_id,omitempty"`
	Members     []string  `json:"members,omitempty"`
	IsArchived  bool      `json:"is_archived"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AddMember appends a member id, preserving order and rejecting duplicates.
func (p *Project) AddMember(id string) {
	if id == "" || slices.Contains(p.Members, id) {
		return
	}
	p.Members = append(p.Members, id)
}

func (p *Project) Touch(now time.Time) {
	if p == nil {
		return
	}
	p.UpdatedAt = now
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
}

// ProjectPatch is a partial project update. Nil fields are left untouched.
type ProjectPatch struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Color       *string  `json:"color,omitempty"`
	OwnerID     *string  `json:"owner_id,omitempty"`
	Members     []string `json:"members,omitempty"`
	IsArchived  *bool    `json:"is_archived,omitempty"`
}

// Apply merges the patch into the project and refreshes UpdatedAt.
func (p ProjectPatch) Apply(project *Project, now time.Time) {
	if project == nil {
		return
	}
	if p.Name != nil {
		project.Name = *p.Name
	}
	if p.Description != nil {
		project.Description = *p.Description
	}
	if p.Color != nil {
		project.Color = *p.Color
	}
	if p.OwnerID != nil {
		project.OwnerID = *p.OwnerID
	}
	if p.Members != nil {
		project.Members = nil
		for _, id := range p.Members {
			project.AddMember(id)
		}
	}
	if p.IsArchived != nil {
		project.IsArchived = *p.IsArchived
	}
	project.Touch(now)
}
