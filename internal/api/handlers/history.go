package handlers

import (
	"net/http"
	"strconv"
	"time"

	"duty-assignment-backend/internal/apperrors"
	"duty-assignment-backend/internal/database/models"
	"duty-assignment-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HistoryHandler handles HTTP requests for the assignment audit trail
type HistoryHandler struct {
	historyService *service.HistoryService
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(historyService *service.HistoryService) *HistoryHandler {
	return &HistoryHandler{
		historyService: historyService,
	}
}

// ListHistory handles GET /history
// @Summary List assignment history
// @Description Get ownership changes newest first, optionally filtered by entity, owner, source, rule or period
// @Tags history
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(50)
// @Param entity_type query string false "Entity type (deal, contact, company, lead)"
// @Param entity_id query int false "Entity ID"
// @Param new_owner_id query int false "Receiving user ID"
// @Param source query string false "Change source (webhook, scheduled, manual)"
// @Param rule_id query string false "Rule ID"
// @Param from query string false "Period start (YYYY-MM-DD)"
// @Param to query string false "Period end (YYYY-MM-DD)"
// @Success 200 {object} service.HistoryListResponse "History retrieved"
// @Failure 400 {object} ErrorResponse "Invalid filters"
// @Router /history [get]
func (h *HistoryHandler) ListHistory(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))

	q := service.ListQuery{
		EntityType: models.EntityType(c.Query("entity_type")),
		Source:     models.AssignmentSource(c.Query("source")),
	}
	if raw := c.Query("entity_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondError(c, apperrors.NewValidationError("entityId", "entity id must be an integer"))
			return
		}
		q.EntityID = id
	}
	if raw := c.Query("new_owner_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondError(c, apperrors.NewValidationError("newOwnerId", "owner id must be an integer"))
			return
		}
		q.NewOwnerID = id
	}
	if raw := c.Query("rule_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			respondError(c, apperrors.NewValidationError("ruleId", "rule id must be a UUID"))
			return
		}
		q.RuleID = id
	}
	if raw := c.Query("from"); raw != "" {
		from, ok := h.parseDate(c, "from", raw)
		if !ok {
			return
		}
		q.From = from
	}
	if raw := c.Query("to"); raw != "" {
		to, ok := h.parseDate(c, "to", raw)
		if !ok {
			return
		}
		// Make the end date inclusive
		q.To = to.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}

	resp, err := h.historyService.List(q, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HistoryStats handles GET /history/stats
// @Summary Assignment counts per user
// @Description Aggregate how many records each user received in a period
// @Tags history
// @Accept json
// @Produce json
// @Param from query string true "Period start (YYYY-MM-DD)"
// @Param to query string true "Period end (YYYY-MM-DD)"
// @Success 200 {object} service.HistoryStatsResponse "Stats retrieved"
// @Failure 400 {object} ErrorResponse "Invalid period"
// @Router /history/stats [get]
func (h *HistoryHandler) HistoryStats(c *gin.Context) {
	from, ok := h.parseDate(c, "from", c.Query("from"))
	if !ok {
		return
	}
	to, ok := h.parseDate(c, "to", c.Query("to"))
	if !ok {
		return
	}

	resp, err := h.historyService.Stats(from, to.AddDate(0, 0, 1).Add(-time.Nanosecond))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *HistoryHandler) parseDate(c *gin.Context, field, raw string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		respondError(c, apperrors.NewValidationError(field, field+" must be YYYY-MM-DD"))
		return time.Time{}, false
	}
	return date, true
}
