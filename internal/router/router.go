package router

import (
	"github.com/fasthttp/router"

	apiHandler "github.com/taskdeck/backend/api/handler"
)

type Handlers struct {
	Task    *apiHandler.TaskHandler
	Project *apiHandler.ProjectHandler
	View    *apiHandler.ViewHandler
	Health  *apiHandler.HealthHandler
}

func New(handlers Handlers) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Store mutations and reads
	r.GET("/api/v1/tasks", handlers.Task.GetTasks)
	r.POST("/api/v1/tasks", handlers.Task.CreateTask)
	r.GET("/api/v1/tasks/{id}", handlers.Task.GetTask)
	r.PATCH("/api/v1/tasks/{id}", handlers.Task.UpdateTask)
	r.DELETE("/api/v1/tasks/{id}", handlers.Task.DeleteTask)
	r.POST("/api/v1/tasks/{id}/move", handlers.Task.MoveTask)

	r.GET("/api/v1/projects", handlers.Project.GetProjects)
	r.POST("/api/v1/projects", handlers.Project.CreateProject)
	r.GET("/api/v1/projects/{id}", handlers.Project.GetProject)
	r.PATCH("/api/v1/projects/{id}", handlers.Project.UpdateProject)
	r.DELETE("/api/v1/projects/{id}", handlers.Project.DeleteProject)

	// Derived views
	r.GET("/api/v1/board", handlers.View.GetBoard)
	r.GET("/api/v1/dashboard", handlers.View.GetDashboard)
	r.GET("/api/v1/calendar", handlers.View.GetCalendar)

	return r
}
