package handlers

import (
	"net/http"
	"strconv"
	"time"

	"duty-assignment-backend/internal/apperrors"
	"duty-assignment-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler handles HTTP requests for the duty roster and rotation list
type ScheduleHandler struct {
	scheduleService *service.ScheduleService
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(scheduleService *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleService: scheduleService,
	}
}

// SetDayRequest is the body of a manual roster day edit
type SetDayRequest struct {
	UserIDs []int64 `json:"user_ids"`
}

// GenerateMonthRequest controls roster generation from the rotation list
type GenerateMonthRequest struct {
	StartOffset int `json:"start_offset"`
}

// ReplaceDefaultUsersRequest replaces the rotation list; list order becomes
// rotation order
type ReplaceDefaultUsersRequest struct {
	UserIDs []int64 `json:"user_ids"`
}

// GetMonth handles GET /schedule/:year/:month
// @Summary Get the duty roster of a month
// @Description Get every roster day of the month with the users on duty. Days without duty are omitted.
// @Tags schedule
// @Accept json
// @Produce json
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Success 200 {object} service.MonthScheduleResponse "Roster retrieved"
// @Failure 400 {object} ErrorResponse "Invalid year or month"
// @Router /schedule/{year}/{month} [get]
func (h *ScheduleHandler) GetMonth(c *gin.Context) {
	year, month, ok := h.yearMonth(c)
	if !ok {
		return
	}

	resp, err := h.scheduleService.GetMonth(year, month)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetDay handles GET /schedule/days/:date
// @Summary Get one roster day
// @Description Get the users on duty for one date
// @Tags schedule
// @Accept json
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} service.DayResponse "Day retrieved"
// @Failure 400 {object} ErrorResponse "Invalid date"
// @Failure 404 {object} ErrorResponse "No duty on that date"
// @Router /schedule/days/{date} [get]
func (h *ScheduleHandler) GetDay(c *gin.Context) {
	date, ok := h.date(c)
	if !ok {
		return
	}

	resp, err := h.scheduleService.GetDay(date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SetDay handles PUT /schedule/days/:date
// @Summary Edit one roster day
// @Description Replace the duty set of one date. An empty user list removes the day.
// @Tags schedule
// @Accept json
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param request body SetDayRequest true "Users on duty"
// @Success 200 {object} service.DayResponse "Day updated"
// @Success 204 "Day removed"
// @Failure 400 {object} ErrorResponse "Invalid date or users"
// @Router /schedule/days/{date} [put]
func (h *ScheduleHandler) SetDay(c *gin.Context) {
	date, ok := h.date(c)
	if !ok {
		return
	}

	var req SetDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	resp, err := h.scheduleService.SetDay(date, req.UserIDs)
	if err != nil {
		respondError(c, err)
		return
	}
	if resp == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GenerateMonth handles POST /schedule/:year/:month/generate
// @Summary Generate a month's roster from the rotation list
// @Description Destructively regenerate the month, assigning one rotation user per day. Manual edits inside the month are discarded.
// @Tags schedule
// @Accept json
// @Produce json
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Param request body GenerateMonthRequest false "Rotation start offset"
// @Success 200 {object} service.MonthScheduleResponse "Roster generated"
// @Failure 400 {object} ErrorResponse "Invalid year or month"
// @Failure 409 {object} ErrorResponse "Rotation list is empty"
// @Router /schedule/{year}/{month}/generate [post]
func (h *ScheduleHandler) GenerateMonth(c *gin.Context) {
	year, month, ok := h.yearMonth(c)
	if !ok {
		return
	}

	var req GenerateMonthRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
			return
		}
	}

	resp, err := h.scheduleService.GenerateMonth(year, month, req.StartOffset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListDefaultUsers handles GET /schedule/default-users
// @Summary Get the rotation list
// @Description Get the default duty rotation in rotation order
// @Tags schedule
// @Accept json
// @Produce json
// @Success 200 {array} service.DefaultUserResponse "Rotation list retrieved"
// @Router /schedule/default-users [get]
func (h *ScheduleHandler) ListDefaultUsers(c *gin.Context) {
	resp, err := h.scheduleService.ListDefaultUsers()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ReplaceDefaultUsers handles PUT /schedule/default-users
// @Summary Replace the rotation list
// @Description Atomically replace the default duty rotation; list order becomes rotation order
// @Tags schedule
// @Accept json
// @Produce json
// @Param request body ReplaceDefaultUsersRequest true "Rotation users in order"
// @Success 200 {array} service.DefaultUserResponse "Rotation list replaced"
// @Failure 400 {object} ErrorResponse "Invalid users"
// @Router /schedule/default-users [put]
func (h *ScheduleHandler) ReplaceDefaultUsers(c *gin.Context) {
	var req ReplaceDefaultUsersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	resp, err := h.scheduleService.ReplaceDefaultUsers(req.UserIDs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ScheduleHandler) yearMonth(c *gin.Context) (int, int, bool) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 2000 || year > 2200 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid year"})
		return 0, 0, false
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid month"})
		return 0, 0, false
	}
	return year, month, true
}

func (h *ScheduleHandler) date(c *gin.Context) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", c.Param("date"))
	if err != nil {
		respondError(c, apperrors.NewValidationError("date", "date must be YYYY-MM-DD"))
		return time.Time{}, false
	}
	return date, true
}
