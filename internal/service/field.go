package service

import (
	"context"
	"fmt"
	"time"

	"duty-assignment-backend/internal/apperrors"
	"duty-assignment-backend/internal/crm"
	"duty-assignment-backend/internal/database/models"
	"duty-assignment-backend/internal/logger"
	"duty-assignment-backend/internal/repository"
)

// fieldCacheTTL is how long cached CRM field metadata stays fresh
const fieldCacheTTL = 24 * time.Hour

// FieldService serves CRM field metadata for the rule editor, cached locally so
// the form does not hit the CRM on every render
type FieldService struct {
	crm  crm.Client
	repo repository.FieldMappingRepositoryInterface
	log  *logger.Logger
}

// NewFieldService creates a new field metadata service
func NewFieldService(crmClient crm.Client, repo repository.FieldMappingRepositoryInterface) *FieldService {
	return &FieldService{
		crm:  crmClient,
		repo: repo,
		log:  logger.WithComponent("fields"),
	}
}

// FieldResponse is one field of a CRM entity usable in rule conditions
type FieldResponse struct {
	FieldID   string `json:"field_id"`
	FieldName string `json:"field_name"`
	FieldType string `json:"field_type"`
}

// FieldValueResponse is one allowed value of a status-backed field
type FieldValueResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ListFields returns the entity's condition-capable fields, refreshing the
// cache from the CRM when stale
func (s *FieldService) ListFields(ctx context.Context, entityType models.EntityType) ([]FieldResponse, error) {
	if !entityType.IsValid() {
		return nil, apperrors.NewValidationError("entityType", fmt.Sprintf("unknown entity type %q", entityType))
	}

	cached, err := s.repo.GetByEntity(entityType)
	if err != nil {
		return nil, fmt.Errorf("failed to load field cache: %w", err)
	}
	if len(cached) > 0 && time.Since(cached[0].CachedAt) < fieldCacheTTL {
		return fieldResponses(cached), nil
	}

	refreshed, err := s.refresh(ctx, entityType)
	if err != nil {
		// A stale cache is better than an error when the CRM is unreachable
		if len(cached) > 0 {
			s.log.WithError(err).Warn("field refresh failed, serving stale cache")
			return fieldResponses(cached), nil
		}
		return nil, err
	}
	return fieldResponses(refreshed), nil
}

// ListFieldValues returns the allowed values of a status-backed field
func (s *FieldService) ListFieldValues(ctx context.Context, entityType models.EntityType, fieldID string) ([]FieldValueResponse, error) {
	if !entityType.IsValid() {
		return nil, apperrors.NewValidationError("entityType", fmt.Sprintf("unknown entity type %q", entityType))
	}
	if fieldID == "" {
		return nil, apperrors.NewValidationError("fieldId", "field id is required")
	}

	values, err := s.crm.GetFieldValues(ctx, string(entityType), fieldID)
	if err != nil {
		return nil, err
	}
	resp := make([]FieldValueResponse, 0, len(values))
	for _, v := range values {
		resp = append(resp, FieldValueResponse{ID: v.ID, Name: v.Name})
	}
	return resp, nil
}

// ListCategoryStages returns the stages of one category of a pipeline field
func (s *FieldService) ListCategoryStages(ctx context.Context, entityType models.EntityType, fieldID string, categoryID int) ([]FieldValueResponse, error) {
	if !entityType.IsValid() {
		return nil, apperrors.NewValidationError("entityType", fmt.Sprintf("unknown entity type %q", entityType))
	}

	stages, err := s.crm.GetCategoryStages(ctx, string(entityType), fieldID, categoryID)
	if err != nil {
		return nil, err
	}
	resp := make([]FieldValueResponse, 0, len(stages))
	for _, st := range stages {
		resp = append(resp, FieldValueResponse{ID: st.ID, Name: st.Name})
	}
	return resp, nil
}

// refresh fetches the entity's field metadata from the CRM and stores the
// condition-capable subset
func (s *FieldService) refresh(ctx context.Context, entityType models.EntityType) ([]models.FieldMapping, error) {
	meta, err := s.crm.GetFieldMetadata(ctx, string(entityType))
	if err != nil {
		return nil, err
	}

	now := time.Now()
	mappings := make([]models.FieldMapping, 0, len(meta))
	for fieldID, m := range meta {
		fieldType := conditionFieldType(fieldID, m)
		if fieldType == "" {
			continue
		}
		name := m.Label
		if name == "" {
			name = fieldID
		}
		mappings = append(mappings, models.FieldMapping{
			EntityType: entityType,
			FieldID:    fieldID,
			FieldName:  name,
			FieldType:  fieldType,
			CachedAt:   now,
		})
	}
	if err := s.repo.ReplaceForEntity(entityType, mappings); err != nil {
		return nil, fmt.Errorf("failed to store field cache: %w", err)
	}
	return mappings, nil
}

// conditionFieldType maps raw CRM field metadata to the semantic types rule
// conditions understand; fields of other types cannot carry a condition.
func conditionFieldType(fieldID string, m crm.FieldMeta) string {
	if fieldID == crm.FieldCategory {
		return "crm_category"
	}
	switch m.Type {
	case "crm_category":
		return "crm_category"
	case "crm_status", "status":
		return "crm_status"
	case "enumeration":
		return "crm_status"
	}
	return ""
}

func fieldResponses(mappings []models.FieldMapping) []FieldResponse {
	resp := make([]FieldResponse, 0, len(mappings))
	for _, m := range mappings {
		resp = append(resp, FieldResponse{
			FieldID:   m.FieldID,
			FieldName: m.FieldName,
			FieldType: m.FieldType,
		})
	}
	return resp
}
