package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"duty-assignment-backend/internal/apperrors"
	"duty-assignment-backend/internal/database/models"
	"duty-assignment-backend/internal/engine"
	"duty-assignment-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RuleService handles business logic for assignment rules
type RuleService struct {
	repo         repository.RuleRepositoryInterface
	crmUsers     repository.CrmUserRepositoryInterface
	validator    *validator.Validate
	experimental bool
}

// NewRuleService creates a new rule service. experimental enables the
// by_current_owner and combined rule kinds.
func NewRuleService(repo repository.RuleRepositoryInterface, crmUsers repository.CrmUserRepositoryInterface, validator *validator.Validate, experimental bool) *RuleService {
	return &RuleService{
		repo:         repo,
		crmUsers:     crmUsers,
		validator:    validator,
		experimental: experimental,
	}
}

// DistributionInput is one weighted user in a rule request
type DistributionInput struct {
	UserID     int64 `json:"user_id" validate:"required,gt=0"`
	Percentage int   `json:"percentage" validate:"required,min=1,max=100"`
}

// CreateRuleRequest represents the request to create an assignment rule
type CreateRuleRequest struct {
	Name               string              `json:"name" validate:"required,min=1,max=100"`
	EntityType         models.EntityType   `json:"entity_type" validate:"required"`
	RuleKind           models.RuleKind     `json:"rule_kind" validate:"required"`
	ConditionConfig    json.RawMessage     `json:"condition_config" validate:"required" swaggertype:"object"`
	Priority           int                 `json:"priority"`
	Enabled            *bool               `json:"enabled,omitempty"`
	ScheduleTime       string              `json:"schedule_time" validate:"required"`
	ScheduleDays       []int               `json:"schedule_days,omitempty"`
	PropagateToRelated bool                `json:"propagate_to_related"`
	Distributions      []DistributionInput `json:"distributions" validate:"required,min=1,dive"`
}

// UpdateRuleRequest represents the request to update an assignment rule
type UpdateRuleRequest struct {
	Name               string              `json:"name" validate:"required,min=1,max=100"`
	ConditionConfig    json.RawMessage     `json:"condition_config" validate:"required" swaggertype:"object"`
	Priority           int                 `json:"priority"`
	Enabled            *bool               `json:"enabled,omitempty"`
	ScheduleTime       string              `json:"schedule_time" validate:"required"`
	ScheduleDays       []int               `json:"schedule_days,omitempty"`
	PropagateToRelated bool                `json:"propagate_to_related"`
	Distributions      []DistributionInput `json:"distributions" validate:"required,min=1,dive"`
}

// RuleResponse represents the response for rule operations
type RuleResponse struct {
	ID                 uuid.UUID            `json:"id"`
	Name               string               `json:"name"`
	EntityType         models.EntityType    `json:"entity_type"`
	RuleKind           models.RuleKind      `json:"rule_kind"`
	ConditionConfig    json.RawMessage      `json:"condition_config" swaggertype:"object"`
	Priority           int                  `json:"priority"`
	Enabled            bool                 `json:"enabled"`
	ScheduleTime       string               `json:"schedule_time"`
	ScheduleDays       []int                `json:"schedule_days,omitempty"`
	PropagateToRelated bool                 `json:"propagate_to_related"`
	Distributions      []DistributionOutput `json:"distributions"`
	CreatedAt          string               `json:"created_at"`
	UpdatedAt          string               `json:"updated_at"`
}

// DistributionOutput is one weighted user in rule responses
type DistributionOutput struct {
	UserID     int64  `json:"user_id"`
	UserName   string `json:"user_name,omitempty"`
	Percentage int    `json:"percentage"`
}

// RuleListResponse represents a paginated list of rules
type RuleListResponse struct {
	Rules    []RuleResponse `json:"rules"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

func ruleResponse(rule *models.AssignmentRule) RuleResponse {
	resp := RuleResponse{
		ID:                 rule.ID,
		Name:               rule.Name,
		EntityType:         rule.EntityType,
		RuleKind:           rule.RuleKind,
		ConditionConfig:    rule.ConditionConfig,
		Priority:           rule.Priority,
		Enabled:            rule.Enabled,
		ScheduleTime:       rule.ScheduleTime,
		ScheduleDays:       rule.ScheduleDaysList(),
		PropagateToRelated: rule.PropagateToRelated,
		CreatedAt:          rule.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          rule.UpdatedAt.Format(time.RFC3339),
	}
	for _, d := range rule.Distributions {
		out := DistributionOutput{UserID: d.UserID, Percentage: d.Percentage}
		if d.User.ID != 0 {
			out.UserName = d.User.DisplayName()
		}
		resp.Distributions = append(resp.Distributions, out)
	}
	return resp
}

// Create creates a new assignment rule
func (s *RuleService) Create(req *CreateRuleRequest) (*RuleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if !req.EntityType.IsValid() {
		return nil, apperrors.NewValidationError("entityType", fmt.Sprintf("unknown entity type %q", req.EntityType))
	}
	if !req.RuleKind.IsValid() {
		return nil, apperrors.NewValidationError("ruleKind", fmt.Sprintf("unknown rule kind %q", req.RuleKind))
	}
	if req.RuleKind.IsExperimental() && !s.experimental {
		return nil, apperrors.NewValidationError("ruleKind", fmt.Sprintf("rule kind %q requires ENABLE_EXPERIMENTAL_RULE_KINDS", req.RuleKind))
	}
	if _, err := engine.ParseCondition(req.RuleKind, req.ConditionConfig); err != nil {
		return nil, err
	}
	if err := s.validateSchedule(req.ScheduleTime, req.ScheduleDays); err != nil {
		return nil, err
	}
	if err := s.validateDistributions(req.Distributions); err != nil {
		return nil, err
	}

	rule := &models.AssignmentRule{
		Name:               req.Name,
		EntityType:         req.EntityType,
		RuleKind:           req.RuleKind,
		ConditionConfig:    req.ConditionConfig,
		Priority:           req.Priority,
		Enabled:            req.Enabled == nil || *req.Enabled,
		ScheduleTime:       req.ScheduleTime,
		ScheduleDays:       encodeScheduleDays(req.ScheduleDays),
		PropagateToRelated: req.PropagateToRelated,
	}
	for _, d := range req.Distributions {
		rule.Distributions = append(rule.Distributions, models.RuleDistribution{
			UserID:     d.UserID,
			Percentage: d.Percentage,
		})
	}

	if err := s.repo.Create(rule); err != nil {
		return nil, fmt.Errorf("failed to create rule: %w", err)
	}
	return s.Get(rule.ID)
}

// Get retrieves one rule
func (s *RuleService) Get(id uuid.UUID) (*RuleResponse, error) {
	rule, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRuleNotFound
		}
		return nil, fmt.Errorf("failed to load rule: %w", err)
	}
	resp := ruleResponse(rule)
	return &resp, nil
}

// List retrieves rules in priority order with pagination
func (s *RuleService) List(page, pageSize int) (*RuleListResponse, error) {
	if page < 1 || pageSize < 1 || pageSize > 200 {
		return nil, apperrors.ErrInvalidPaginationParams
	}

	rules, total, err := s.repo.GetAll(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list rules: %w", err)
	}

	resp := &RuleListResponse{Total: total, Page: page, PageSize: pageSize, Rules: make([]RuleResponse, 0, len(rules))}
	for i := range rules {
		resp.Rules = append(resp.Rules, ruleResponse(&rules[i]))
	}
	return resp, nil
}

// Update replaces a rule's definition. The entity type and rule kind are fixed
// at creation.
func (s *RuleService) Update(id uuid.UUID, req *UpdateRuleRequest) (*RuleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	rule, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRuleNotFound
		}
		return nil, fmt.Errorf("failed to load rule: %w", err)
	}

	if _, err := engine.ParseCondition(rule.RuleKind, req.ConditionConfig); err != nil {
		return nil, err
	}
	if err := s.validateSchedule(req.ScheduleTime, req.ScheduleDays); err != nil {
		return nil, err
	}
	if err := s.validateDistributions(req.Distributions); err != nil {
		return nil, err
	}

	rule.Name = req.Name
	rule.ConditionConfig = req.ConditionConfig
	rule.Priority = req.Priority
	if req.Enabled != nil {
		rule.Enabled = *req.Enabled
	}
	rule.ScheduleTime = req.ScheduleTime
	rule.ScheduleDays = encodeScheduleDays(req.ScheduleDays)
	rule.PropagateToRelated = req.PropagateToRelated

	if err := s.repo.Update(rule); err != nil {
		return nil, fmt.Errorf("failed to update rule: %w", err)
	}

	distributions := make([]models.RuleDistribution, 0, len(req.Distributions))
	for _, d := range req.Distributions {
		distributions = append(distributions, models.RuleDistribution{
			UserID:     d.UserID,
			Percentage: d.Percentage,
		})
	}
	if err := s.repo.ReplaceDistributions(id, distributions); err != nil {
		return nil, fmt.Errorf("failed to update distributions: %w", err)
	}
	return s.Get(id)
}

// SetEnabled toggles a rule without touching its definition
func (s *RuleService) SetEnabled(id uuid.UUID, enabled bool) (*RuleResponse, error) {
	rule, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRuleNotFound
		}
		return nil, fmt.Errorf("failed to load rule: %w", err)
	}
	rule.Enabled = enabled
	if err := s.repo.Update(rule); err != nil {
		return nil, fmt.Errorf("failed to update rule: %w", err)
	}
	return s.Get(id)
}

// Delete removes a rule and its distributions
func (s *RuleService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRuleNotFound
		}
		return fmt.Errorf("failed to load rule: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete rule: %w", err)
	}
	return nil
}

// EnabledRules lists the enabled rules for the assignment engine
func (s *RuleService) EnabledRules(_ context.Context) ([]models.AssignmentRule, error) {
	return s.repo.GetEnabled()
}

func (s *RuleService) validateSchedule(scheduleTime string, scheduleDays []int) error {
	if _, err := time.Parse("15:04", scheduleTime); err != nil {
		return apperrors.NewValidationError("scheduleTime", "schedule time must be HH:MM")
	}
	for _, day := range scheduleDays {
		if day < 1 || day > 7 {
			return apperrors.NewValidationError("scheduleDays", "days must be ISO weekdays 1-7")
		}
	}
	return nil
}

// validateDistributions enforces the weight invariants: at least one user,
// unique users known to the CRM cache, each weight in 1..100, and the sum not
// above 100.
func (s *RuleService) validateDistributions(distributions []DistributionInput) error {
	if len(distributions) == 0 {
		return apperrors.NewValidationError("distributions", "at least one weighted user is required")
	}

	sum := 0
	seen := make(map[int64]bool, len(distributions))
	ids := make([]int64, 0, len(distributions))
	for _, d := range distributions {
		if seen[d.UserID] {
			return apperrors.NewValidationError("distributions", fmt.Sprintf("duplicate user id %d", d.UserID))
		}
		seen[d.UserID] = true
		ids = append(ids, d.UserID)
		if d.Percentage < 1 || d.Percentage > 100 {
			return apperrors.NewValidationError("distributions", "percentages must be between 1 and 100")
		}
		sum += d.Percentage
	}
	if sum > 100 {
		return apperrors.NewValidationError("distributions", fmt.Sprintf("percentages sum to %d, must not exceed 100", sum))
	}

	known, err := s.crmUsers.GetByIDs(ids)
	if err != nil {
		return fmt.Errorf("failed to verify users: %w", err)
	}
	knownSet := make(map[int64]bool, len(known))
	for _, u := range known {
		knownSet[u.ID] = true
	}
	for _, id := range ids {
		if !knownSet[id] {
			return apperrors.NewValidationError("distributions", fmt.Sprintf("unknown CRM user %d", id))
		}
	}
	return nil
}

func encodeScheduleDays(days []int) json.RawMessage {
	if len(days) == 0 {
		return nil
	}
	encoded, _ := json.Marshal(days)
	return encoded
}
