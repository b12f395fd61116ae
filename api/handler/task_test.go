package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/taskdeck/backend/api/transport"
	"github.com/taskdeck/backend/domain"
	"github.com/taskdeck/backend/repository"
	"github.com/taskdeck/backend/repository/memory"
	boardUC "github.com/taskdeck/backend/usecase/board"
	taskUC "github.com/taskdeck/backend/usecase/task"
)

func newTaskHandler(t *testing.T) (*TaskHandler, *memory.TaskRepository) {
	t.Helper()
	repo := memory.NewTaskRepository()
	return NewTaskHandler(taskUC.New(repo, nil), nil, nil), repo
}

func postCtx(body string) *fasthttp.RequestCtx {
	var ctx fasthttp.RequestCtx
	ctx.Request.Header.SetMethod(fasthttp.MethodPost)
	ctx.Request.SetBodyString(body)
	return &ctx
}

func decodeEnvelope(t *testing.T, ctx *fasthttp.RequestCtx) transport.Envelope {
	t.Helper()
	var envelope transport.Envelope
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &envelope))
	return envelope
}

func TestTaskHandler_CreateTask(t *testing.T) {
	h, repo := newTaskHandler(t)

	ctx := postCtx(`{"title":"ship it","priority":"high","due_date":"2026-07-10T00:00:00Z"}`)
	h.CreateTask(ctx)

	assert.Equal(t, http.StatusCreated, ctx.Response.StatusCode())
	envelope := decodeEnvelope(t, ctx)
	assert.Equal(t, "success", envelope.Status)

	tasks, err := repo.List(context.Background(), repository.TaskFilter{})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "ship it", tasks[0].Title)
	assert.Equal(t, domain.PriorityHigh, tasks[0].Priority)
	require.NotNil(t, tasks[0].DueDate)
}

func TestTaskHandler_CreateTask_EmptyTitleRejected(t *testing.T) {
	h, _ := newTaskHandler(t)

	ctx := postCtx(`{"title":"  "}`)
	h.CreateTask(ctx)

	assert.Equal(t, http.StatusBadRequest, ctx.Response.StatusCode())
	envelope := decodeEnvelope(t, ctx)
	assert.Equal(t, string(domain.ErrCodeInvalid), envelope.Code)
}

func TestTaskHandler_CreateTask_MalformedBody(t *testing.T) {
	h, _ := newTaskHandler(t)

	ctx := postCtx(`{not json`)
	h.CreateTask(ctx)

	assert.Equal(t, http.StatusBadRequest, ctx.Response.StatusCode())
}

func TestTaskHandler_UpdateTask_MergesPartially(t *testing.T) {
	h, repo := newTaskHandler(t)

	created, err := repo.Create(context.Background(), &domain.Task{ID: "t1", Title: "keep me", Priority: domain.PriorityLow})
	require.NoError(t, err)

	ctx := postCtx(`{"priority":"urgent"}`)
	ctx.SetUserValue("id", created.ID)
	h.UpdateTask(ctx)

	assert.Equal(t, http.StatusOK, ctx.Response.StatusCode())

	got, err := repo.GetByID(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, "keep me", got.Title)
	assert.Equal(t, domain.PriorityUrgent, got.Priority)
}

func TestTaskHandler_MoveTask(t *testing.T) {
	h, repo := newTaskHandler(t)

	_, err := repo.Create(context.Background(), &domain.Task{ID: "t1", Title: "drag", Status: domain.StatusTodo})
	require.NoError(t, err)

	ctx := postCtx(`{"status":"in-progress"}`)
	ctx.SetUserValue("id", "t1")
	h.MoveTask(ctx)

	assert.Equal(t, http.StatusOK, ctx.Response.StatusCode())

	got, err := repo.GetByID(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, got.Status)
}

func TestTaskHandler_MoveTask_NotFound(t *testing.T) {
	h, _ := newTaskHandler(t)

	ctx := postCtx(`{"status":"todo"}`)
	ctx.SetUserValue("id", "ghost")
	h.MoveTask(ctx)

	assert.Equal(t, http.StatusNotFound, ctx.Response.StatusCode())
	envelope := decodeEnvelope(t, ctx)
	assert.Equal(t, string(domain.ErrCodeNotFound), envelope.Code)
}

func TestViewHandler_Dashboard(t *testing.T) {
	taskRepo := memory.NewTaskRepository()
	projectRepo := memory.NewProjectRepository()

	_, err := taskRepo.Create(context.Background(), &domain.Task{ID: "t1", Title: "done", Status: domain.StatusCompleted})
	require.NoError(t, err)

	h := NewViewHandler(boardUC.New(taskRepo, projectRepo, nil), nil, nil)

	var ctx fasthttp.RequestCtx
	ctx.Request.Header.SetMethod(fasthttp.MethodGet)
	ctx.Request.SetRequestURI("/api/v1/dashboard")
	h.GetDashboard(&ctx)

	assert.Equal(t, http.StatusOK, ctx.Response.StatusCode())
	envelope := decodeEnvelope(t, &ctx)
	assert.Equal(t, "success", envelope.Status)

	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(100), data["completion_rate"])
}

func TestViewHandler_CalendarRejectsBadMonth(t *testing.T) {
	h := NewViewHandler(boardUC.New(memory.NewTaskRepository(), memory.NewProjectRepository(), nil), nil, nil)

	var ctx fasthttp.RequestCtx
	ctx.Request.Header.SetMethod(fasthttp.MethodGet)
	ctx.Request.SetRequestURI("/api/v1/calendar?month=July")
	h.GetCalendar(&ctx)

	assert.Equal(t, http.StatusBadRequest, ctx.Response.StatusCode())
}
