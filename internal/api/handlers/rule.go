package handlers

import (
	"net/http"
	"strconv"

	"duty-assignment-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RuleHandler handles HTTP requests for assignment rule operations
type RuleHandler struct {
	ruleService *service.RuleService
}

// NewRuleHandler creates a new rule handler
func NewRuleHandler(ruleService *service.RuleService) *RuleHandler {
	return &RuleHandler{
		ruleService: ruleService,
	}
}

// SetEnabledRequest toggles a rule on or off
type SetEnabledRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// ListRules handles GET /rules
// @Summary List assignment rules
// @Description Get assignment rules in priority order with pagination
// @Tags rules
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(50)
// @Success 200 {object} service.RuleListResponse "Rules retrieved"
// @Failure 400 {object} ErrorResponse "Invalid pagination"
// @Router /rules [get]
func (h *RuleHandler) ListRules(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))

	resp, err := h.ruleService.List(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateRule handles POST /rules
// @Summary Create an assignment rule
// @Description Create a rule with its condition, schedule and weighted user distribution
// @Tags rules
// @Accept json
// @Produce json
// @Param request body service.CreateRuleRequest true "Rule definition"
// @Success 201 {object} service.RuleResponse "Rule created"
// @Failure 400 {object} ErrorResponse "Invalid rule definition"
// @Router /rules [post]
func (h *RuleHandler) CreateRule(c *gin.Context) {
	var req service.CreateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	resp, err := h.ruleService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetRule handles GET /rules/:id
// @Summary Get an assignment rule
// @Description Get one rule with its distributions
// @Tags rules
// @Accept json
// @Produce json
// @Param id path string true "Rule ID"
// @Success 200 {object} service.RuleResponse "Rule retrieved"
// @Failure 400 {object} ErrorResponse "Invalid rule ID"
// @Failure 404 {object} ErrorResponse "Rule not found"
// @Router /rules/{id} [get]
func (h *RuleHandler) GetRule(c *gin.Context) {
	id, ok := h.ruleID(c)
	if !ok {
		return
	}

	resp, err := h.ruleService.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateRule handles PUT /rules/:id
// @Summary Update an assignment rule
// @Description Replace a rule's definition. The entity type and rule kind are fixed at creation.
// @Tags rules
// @Accept json
// @Produce json
// @Param id path string true "Rule ID"
// @Param request body service.UpdateRuleRequest true "Rule definition"
// @Success 200 {object} service.RuleResponse "Rule updated"
// @Failure 400 {object} ErrorResponse "Invalid rule definition"
// @Failure 404 {object} ErrorResponse "Rule not found"
// @Router /rules/{id} [put]
func (h *RuleHandler) UpdateRule(c *gin.Context) {
	id, ok := h.ruleID(c)
	if !ok {
		return
	}

	var req service.UpdateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	resp, err := h.ruleService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SetRuleEnabled handles PATCH /rules/:id/enabled
// @Summary Enable or disable a rule
// @Description Toggle a rule without touching its definition
// @Tags rules
// @Accept json
// @Produce json
// @Param id path string true "Rule ID"
// @Param request body SetEnabledRequest true "Enabled flag"
// @Success 200 {object} service.RuleResponse "Rule updated"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Rule not found"
// @Router /rules/{id}/enabled [patch]
func (h *RuleHandler) SetRuleEnabled(c *gin.Context) {
	id, ok := h.ruleID(c)
	if !ok {
		return
	}

	var req SetEnabledRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	resp, err := h.ruleService.SetEnabled(id, *req.Enabled)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteRule handles DELETE /rules/:id
// @Summary Delete an assignment rule
// @Description Remove a rule and its distributions. History entries referencing it are kept.
// @Tags rules
// @Accept json
// @Produce json
// @Param id path string true "Rule ID"
// @Success 204 "Rule deleted"
// @Failure 400 {object} ErrorResponse "Invalid rule ID"
// @Failure 404 {object} ErrorResponse "Rule not found"
// @Router /rules/{id} [delete]
func (h *RuleHandler) DeleteRule(c *gin.Context) {
	id, ok := h.ruleID(c)
	if !ok {
		return
	}

	if err := h.ruleService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RuleHandler) ruleID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid rule ID"})
		return uuid.Nil, false
	}
	return id, true
}
