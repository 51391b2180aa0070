package handlers

import (
	"net/http"
	"strconv"

	"duty-assignment-backend/internal/database/models"
	"duty-assignment-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// FieldHandler handles HTTP requests for CRM field metadata used by the rule
// editor
type FieldHandler struct {
	fieldService *service.FieldService
}

// NewFieldHandler creates a new field handler
func NewFieldHandler(fieldService *service.FieldService) *FieldHandler {
	return &FieldHandler{
		fieldService: fieldService,
	}
}

// ListFields handles GET /fields/:entityType
// @Summary List condition-capable fields
// @Description Get the fields of a CRM entity that rule conditions can target
// @Tags fields
// @Accept json
// @Produce json
// @Param entityType path string true "Entity type (deal, contact, company, lead)"
// @Success 200 {array} service.FieldResponse "Fields retrieved"
// @Failure 400 {object} ErrorResponse "Invalid entity type"
// @Router /fields/{entityType} [get]
func (h *FieldHandler) ListFields(c *gin.Context) {
	resp, err := h.fieldService.ListFields(c.Request.Context(), models.EntityType(c.Param("entityType")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListFieldValues handles GET /fields/:entityType/:fieldId/values
// @Summary List field values
// @Description Get the allowed values of a status-backed field
// @Tags fields
// @Accept json
// @Produce json
// @Param entityType path string true "Entity type"
// @Param fieldId path string true "Field ID"
// @Success 200 {array} service.FieldValueResponse "Values retrieved"
// @Failure 400 {object} ErrorResponse "Invalid entity type or field"
// @Router /fields/{entityType}/{fieldId}/values [get]
func (h *FieldHandler) ListFieldValues(c *gin.Context) {
	resp, err := h.fieldService.ListFieldValues(c.Request.Context(), models.EntityType(c.Param("entityType")), c.Param("fieldId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListCategoryStages handles GET /fields/:entityType/:fieldId/categories/:categoryId/stages
// @Summary List category stages
// @Description Get the stages of one pipeline category
// @Tags fields
// @Accept json
// @Produce json
// @Param entityType path string true "Entity type"
// @Param fieldId path string true "Field ID"
// @Param categoryId path int true "Category ID"
// @Success 200 {array} service.FieldValueResponse "Stages retrieved"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Router /fields/{entityType}/{fieldId}/categories/{categoryId}/stages [get]
func (h *FieldHandler) ListCategoryStages(c *gin.Context) {
	categoryID, err := strconv.Atoi(c.Param("categoryId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid category ID"})
		return
	}

	resp, err := h.fieldService.ListCategoryStages(c.Request.Context(), models.EntityType(c.Param("entityType")), c.Param("fieldId"), categoryID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
