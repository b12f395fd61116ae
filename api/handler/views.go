package handler

import (
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/taskdeck/backend/api/transport"
	"github.com/taskdeck/backend/domain"
	"github.com/taskdeck/backend/pkg/httpcontext"
	boardUC "github.com/taskdeck/backend/usecase/board"
)

// ViewHandler serves the derived read models: kanban board, dashboard
// aggregates and the calendar month grid.
type ViewHandler struct {
	baseHandler
	uc *boardUC.UseCase
}

func NewViewHandler(uc *boardUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *ViewHandler {
	return &ViewHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Kanban board view
// @Tags views
// @Router /api/v1/board [get]
func (h *ViewHandler) GetBoard(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	view, err := h.uc.Board(stdCtx, string(ctx.QueryArgs().Peek("project_id")))
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, view)
}

// @Summary Dashboard aggregates
// @Tags views
// @Router /api/v1/dashboard [get]
func (h *ViewHandler) GetDashboard(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	view, err := h.uc.Dashboard(stdCtx, string(ctx.QueryArgs().Peek("project_id")))
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, view)
}

// @Summary Calendar month view
// @Tags views
// @Router /api/v1/calendar [get]
func (h *ViewHandler) GetCalendar(ctx *fasthttp.RequestCtx) {
	anchor := time.Now()
	if month := string(ctx.QueryArgs().Peek("month")); month != "" {
		parsed, err := time.ParseInLocation("2006-01", month, time.Local)
		if err != nil {
			h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "month must be formatted YYYY-MM"))
			return
		}
		anchor = parsed
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	view, err := h.uc.Month(stdCtx, anchor, string(ctx.QueryArgs().Peek("project_id")))
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, view)
}
