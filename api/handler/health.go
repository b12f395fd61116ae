package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/taskdeck/backend/pkg/httpcontext"
	"github.com/taskdeck/backend/repository"
)

type HealthHandler struct {
	baseHandler
	tasks    repository.TaskRepository
	projects repository.ProjectRepository
	started  time.Time
}

func NewHealthHandler(tasks repository.TaskRepository, projects repository.ProjectRepository, adapter *httpcontext.Adapter, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		baseHandler: newBaseHandler(adapter, logger),
		tasks:       tasks,
		projects:    projects,
		started:     time.Now(),
	}
}

// @Summary Health check
// @Tags health
// @Router /health [get]
func (h *HealthHandler) Check(ctx *fasthttp.RequestCtx) {
	taskCount := 0
	projectCount := 0
	if tasks, err := h.tasks.List(context.Background(), repository.TaskFilter{}); err == nil {
		taskCount = len(tasks)
	}
	if projects, err := h.projects.List(context.Background()); err == nil {
		projectCount = len(projects)
	}

	h.respondSuccess(ctx, http.StatusOK, map[string]interface{}{
		"timestamp": time.Now().UTC(),
		"uptime":    time.Since(h.started).String(),
		"stores": map[string]int{
			"tasks":    taskCount,
			"projects": projectCount,
		},
	})
}
