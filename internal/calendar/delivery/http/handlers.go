package http

import (
	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/calendar"
	"calendar-assistant/internal/middleware"
	"calendar-assistant/pkg/response"
)

// ListMonth godoc
// @Summary     List calendar events
// @Description Returns the caller's events for a month, or everything upcoming when no month is given.
// @Tags        Calendar
// @Produce     json
// @Security    BearerAuth
// @Param       month query string false "Month in YYYY-MM form"
// @Success     200 {object} listMonthResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     502 {object} response.Resp "Upstream Failure"
// @Router      /api/v1/calendar/events [GET]
func (h *handler) ListMonth(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req listMonthReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ListMonth(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListMonth: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListMonthResp(output))
}

// ListYear godoc
// @Summary     List a year's event titles
// @Description Returns event titles for a whole year, grouped by month name.
// @Tags        Calendar
// @Produce     json
// @Security    BearerAuth
// @Param       year query string true "Year in YYYY form"
// @Success     200 {object} listYearResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     502 {object} response.Resp "Upstream Failure"
// @Router      /api/v1/calendar/year [GET]
func (h *handler) ListYear(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req listYearReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ListYear(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListYear: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListYearResp(output))
}

// BuildContext godoc
// @Summary     Render the month as assistant context
// @Description Returns a plain-text snapshot of a month's events, suitable as the calendarData field of a chat request.
// @Tags        Calendar
// @Produce     json
// @Security    BearerAuth
// @Param       month query string false "Month in YYYY-MM form"
// @Success     200 {object} contextResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     502 {object} response.Resp "Upstream Failure"
// @Router      /api/v1/calendar/context [GET]
func (h *handler) BuildContext(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req listMonthReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.BuildContext(ctx, sc, calendar.BuildContextInput{Month: req.Month})
	if err != nil {
		h.l.Errorf(ctx, "uc.BuildContext: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newContextResp(output))
}
