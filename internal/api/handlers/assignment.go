package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"duty-assignment-backend/internal/apperrors"
	"duty-assignment-backend/internal/database/models"
	"duty-assignment-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AssignmentHandler handles HTTP requests for assignment runs and CRM webhooks
type AssignmentHandler struct {
	assignmentService *service.AssignmentService
}

// NewAssignmentHandler creates a new assignment handler
func NewAssignmentHandler(assignmentService *service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentService: assignmentService,
	}
}

// Run handles POST /assignments/run
// @Summary Run the assignment engine
// @Description Start a batch run over all enabled rules and stream its progress as server-sent events. With dry_run=true nothing is written back to the CRM.
// @Tags assignments
// @Accept json
// @Produce text/event-stream
// @Param date query string false "Run date (YYYY-MM-DD), defaults to today"
// @Param dry_run query bool false "Compute without applying" default(false)
// @Success 200 {string} string "SSE stream of progress events"
// @Failure 400 {object} ErrorResponse "Invalid date"
// @Router /assignments/run [post]
func (h *AssignmentHandler) Run(c *gin.Context) {
	date, err := h.assignmentService.ParseRunDate(c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	dryRun := c.Query("dry_run") == "true"

	// The run is server-owned: a client disconnect must not abort it, so it
	// is detached from the request context. The stream below stops forwarding
	// on disconnect and the drain keeps consuming until the run completes.
	events := h.assignmentService.Run(context.WithoutCancel(c.Request.Context()), date, dryRun)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Writer.WriteHeader(http.StatusOK)
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		event, ok := <-events
		if !ok {
			return false
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return false
		}
		fmt.Fprintf(w, "data: %s\n\n", payload)
		return true
	})

	for range events {
	}
}

// Preview handles GET /assignments/preview
// @Summary Preview an assignment run
// @Description List the ownership changes a run on the date would apply, without applying them
// @Tags assignments
// @Accept json
// @Produce json
// @Param date query string false "Run date (YYYY-MM-DD), defaults to today"
// @Success 200 {array} engine.PreviewEntry "Would-be changes"
// @Failure 400 {object} ErrorResponse "Invalid date"
// @Failure 409 {object} ErrorResponse "No duty roster for the date"
// @Router /assignments/preview [get]
func (h *AssignmentHandler) Preview(c *gin.Context) {
	date, err := h.assignmentService.ParseRunDate(c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}

	entries, err := h.assignmentService.Preview(c.Request.Context(), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Webhook handles POST /webhooks/crm
// @Summary CRM change webhook
// @Description Reassign one record in response to a CRM create/update event. The CRM posts form-encoded events like ONCRMDEALADD with the record id in data[FIELDS][ID].
// @Tags webhooks
// @Accept x-www-form-urlencoded
// @Produce json
// @Param event formData string true "CRM event name"
// @Param data[FIELDS][ID] formData string true "Record ID"
// @Success 200 {object} engine.SingleResult "Assignment outcome"
// @Failure 400 {object} ErrorResponse "Unsupported event or bad record id"
// @Router /webhooks/crm [post]
func (h *AssignmentHandler) Webhook(c *gin.Context) {
	event := c.PostForm("event")
	entityType, ok := webhookEntityType(event)
	if !ok {
		respondError(c, apperrors.NewValidationError("event", fmt.Sprintf("unsupported CRM event %q", event)))
		return
	}

	rawID := c.PostForm("data[FIELDS][ID]")
	recordID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		respondError(c, apperrors.NewValidationError("recordId", fmt.Sprintf("bad record id %q", rawID)))
		return
	}

	result, err := h.assignmentService.HandleWebhookEvent(c.Request.Context(), entityType, recordID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// webhookEntityType maps a CRM event name like ONCRMDEALADD onto the entity
// type the event concerns
func webhookEntityType(event string) (models.EntityType, bool) {
	event = strings.ToUpper(event)
	switch {
	case strings.HasPrefix(event, "ONCRMDEAL"):
		return models.EntityTypeDeal, true
	case strings.HasPrefix(event, "ONCRMLEAD"):
		return models.EntityTypeLead, true
	case strings.HasPrefix(event, "ONCRMCONTACT"):
		return models.EntityTypeContact, true
	case strings.HasPrefix(event, "ONCRMCOMPANY"):
		return models.EntityTypeCompany, true
	}
	return "", false
}
