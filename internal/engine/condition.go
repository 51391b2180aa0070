package engine

import (
	"encoding/json"
	"fmt"
	"strconv"

	"duty-assignment-backend/internal/apperrors"
	"duty-assignment-backend/internal/crm"
	"duty-assignment-backend/internal/database/models"
)

// Field semantic types a ByField condition can target
const (
	FieldTypeCategory = "crm_category"
	FieldTypeStatus   = "crm_status"
)

// Owner-condition operators
const (
	OperatorEquals    = "equals"
	OperatorIn        = "in"
	OperatorNotEquals = "not_equals"
	OperatorNotIn     = "not_in"
)

// Condition is the typed form of a rule's stored condition config. Each rule
// kind parses to exactly one variant, so the matcher can switch exhaustively
// instead of probing an untyped map.
type Condition interface {
	// RequiredFields lists the CRM fields a record listing must select for the
	// condition to be evaluable.
	RequiredFields() []string
}

// CategoryCondition matches pipeline records by category, optionally narrowed
// to a stage set. An empty StageIDs means all stages of the selected
// categories.
type CategoryCondition struct {
	FieldID     string
	CategoryIDs []int
	StageIDs    []string
}

func (c CategoryCondition) RequiredFields() []string {
	return []string{c.FieldID, crm.FieldStage}
}

// StatusCondition matches records whose status-backed field equals StatusID
type StatusCondition struct {
	FieldID  string
	StatusID string
}

func (c StatusCondition) RequiredFields() []string {
	return []string{c.FieldID}
}

// OwnerCondition matches on the record's current owner. Experimental.
type OwnerCondition struct {
	Operator string
	UserIDs  []int64
}

func (c OwnerCondition) RequiredFields() []string {
	return []string{crm.FieldOwner}
}

// CombinedCondition requires all sub-conditions to hold. No OR combinator is
// supported. Experimental.
type CombinedCondition struct {
	Conditions []Condition
}

func (c CombinedCondition) RequiredFields() []string {
	seen := make(map[string]bool)
	var fields []string
	for _, sub := range c.Conditions {
		for _, f := range sub.RequiredFields() {
			if !seen[f] {
				seen[f] = true
				fields = append(fields, f)
			}
		}
	}
	return fields
}

type rawCondition struct {
	FieldID   string   `json:"field_id"`
	FieldType string   `json:"field_type"`
	// category_id is the legacy single-category form of category_ids
	CategoryID  *int     `json:"category_id"`
	CategoryIDs []int    `json:"category_ids"`
	StageIDs    []string `json:"stage_ids"`
	StatusID    string   `json:"status_id"`

	Operator string  `json:"operator"`
	UserIDs  []int64 `json:"user_ids"`

	Logic      string         `json:"logic"`
	Conditions []subCondition `json:"conditions"`
}

type subCondition struct {
	Type string `json:"type"`
	rawCondition
}

// ParseCondition decodes and validates a rule's stored condition config into
// its typed variant. Shape violations surface as ValidationError so they are
// rejected at configuration time and never reach a run.
func ParseCondition(kind models.RuleKind, config json.RawMessage) (Condition, error) {
	if len(config) == 0 {
		return nil, apperrors.NewValidationError("conditionConfig", "condition config is required")
	}

	var raw rawCondition
	if err := json.Unmarshal(config, &raw); err != nil {
		return nil, apperrors.NewValidationError("conditionConfig", fmt.Sprintf("invalid JSON: %v", err))
	}

	switch kind {
	case models.RuleKindByField:
		return parseFieldCondition(raw)
	case models.RuleKindByCurrentOwner:
		return parseOwnerCondition(raw)
	case models.RuleKindCombined:
		return parseCombinedCondition(raw)
	default:
		return nil, apperrors.NewValidationError("ruleKind", fmt.Sprintf("unknown rule kind %q", kind))
	}
}

func parseFieldCondition(raw rawCondition) (Condition, error) {
	if raw.FieldID == "" {
		return nil, apperrors.NewValidationError("fieldId", "field id is required")
	}

	categoryIDs := raw.CategoryIDs
	if len(categoryIDs) == 0 && raw.CategoryID != nil {
		categoryIDs = []int{*raw.CategoryID}
	}

	fieldType := raw.FieldType
	if fieldType == "" {
		// Older configs carry no explicit field type; the populated keys
		// disambiguate.
		switch {
		case len(categoryIDs) > 0:
			fieldType = FieldTypeCategory
		case raw.StatusID != "":
			fieldType = FieldTypeStatus
		default:
			return nil, apperrors.NewValidationError("conditionConfig", "neither category_ids nor status_id is set")
		}
	}

	switch fieldType {
	case FieldTypeCategory:
		if len(categoryIDs) == 0 {
			return nil, apperrors.NewValidationError("categoryIds", "at least one category is required")
		}
		if raw.StageIDs != nil && len(raw.StageIDs) == 0 {
			return nil, apperrors.NewValidationError("stageIds", "stage list must be omitted or non-empty")
		}
		return CategoryCondition{
			FieldID:     raw.FieldID,
			CategoryIDs: categoryIDs,
			StageIDs:    raw.StageIDs,
		}, nil
	case FieldTypeStatus:
		if raw.StatusID == "" {
			return nil, apperrors.NewValidationError("statusId", "status id is required")
		}
		return StatusCondition{FieldID: raw.FieldID, StatusID: raw.StatusID}, nil
	default:
		return nil, apperrors.NewValidationError("fieldType", fmt.Sprintf("unknown field type %q", fieldType))
	}
}

func parseOwnerCondition(raw rawCondition) (Condition, error) {
	operator := raw.Operator
	if operator == "" {
		operator = OperatorIn
	}
	switch operator {
	case OperatorEquals, OperatorIn, OperatorNotEquals, OperatorNotIn:
	default:
		return nil, apperrors.NewValidationError("operator", fmt.Sprintf("unknown operator %q", operator))
	}
	if len(raw.UserIDs) == 0 {
		return nil, apperrors.NewValidationError("userIds", "at least one user id is required")
	}
	return OwnerCondition{Operator: operator, UserIDs: raw.UserIDs}, nil
}

func parseCombinedCondition(raw rawCondition) (Condition, error) {
	if raw.Logic != "" && raw.Logic != "AND" {
		return nil, apperrors.NewValidationError("logic", "only AND combination is supported")
	}
	if len(raw.Conditions) == 0 {
		return nil, apperrors.NewValidationError("conditions", "at least one sub-condition is required")
	}

	combined := CombinedCondition{Conditions: make([]Condition, 0, len(raw.Conditions))}
	for i, sub := range raw.Conditions {
		var kind models.RuleKind
		switch sub.Type {
		case "by_field", "field_condition":
			kind = models.RuleKindByField
		case "by_current_owner", "assigned_by_condition":
			kind = models.RuleKindByCurrentOwner
		default:
			return nil, apperrors.NewValidationError("conditions", fmt.Sprintf("sub-condition %d has unknown type %q", i, sub.Type))
		}

		encoded, err := json.Marshal(sub.rawCondition)
		if err != nil {
			return nil, apperrors.NewValidationError("conditions", fmt.Sprintf("sub-condition %d: %v", i, err))
		}
		parsed, err := ParseCondition(kind, encoded)
		if err != nil {
			return nil, apperrors.NewValidationError("conditions", fmt.Sprintf("sub-condition %d: %v", i, err))
		}
		combined.Conditions = append(combined.Conditions, parsed)
	}
	return combined, nil
}

// categoryMatches reports whether a record's category string is in the set
func categoryMatches(categoryIDs []int, value string) bool {
	for _, id := range categoryIDs {
		if strconv.Itoa(id) == value {
			return true
		}
	}
	return false
}
