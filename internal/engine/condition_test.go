package engine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"duty-assignment-backend/internal/apperrors"
	"duty-assignment-backend/internal/crm"
	"duty-assignment-backend/internal/database/models"
)

func TestParseCondition_CategoryVariant(t *testing.T) {
	cond, err := ParseCondition(models.RuleKindByField, json.RawMessage(`{
		"field_id": "CATEGORY_ID",
		"category_ids": [1, 7],
		"stage_ids": ["C1:NEW", "C1:PREPARATION"]
	}`))
	require.NoError(t, err)

	cat, ok := cond.(CategoryCondition)
	require.True(t, ok)
	assert.Equal(t, "CATEGORY_ID", cat.FieldID)
	assert.Equal(t, []int{1, 7}, cat.CategoryIDs)
	assert.Equal(t, []string{"C1:NEW", "C1:PREPARATION"}, cat.StageIDs)
	assert.ElementsMatch(t, []string{"CATEGORY_ID", "STAGE_ID"}, cat.RequiredFields())
}

func TestParseCondition_LegacySingleCategory(t *testing.T) {
	cond, err := ParseCondition(models.RuleKindByField, json.RawMessage(`{
		"field_id": "CATEGORY_ID",
		"category_id": 3
	}`))
	require.NoError(t, err)

	cat, ok := cond.(CategoryCondition)
	require.True(t, ok)
	assert.Equal(t, []int{3}, cat.CategoryIDs)
	assert.Nil(t, cat.StageIDs)
}

func TestParseCondition_StatusVariant(t *testing.T) {
	cond, err := ParseCondition(models.RuleKindByField, json.RawMessage(`{
		"field_id": "UF_CRM_REGION",
		"field_type": "crm_status",
		"status_id": "MSK"
	}`))
	require.NoError(t, err)

	status, ok := cond.(StatusCondition)
	require.True(t, ok)
	assert.Equal(t, "UF_CRM_REGION", status.FieldID)
	assert.Equal(t, "MSK", status.StatusID)
	assert.Equal(t, []string{"UF_CRM_REGION"}, status.RequiredFields())
}

func TestParseCondition_OwnerVariant(t *testing.T) {
	cond, err := ParseCondition(models.RuleKindByCurrentOwner, json.RawMessage(`{
		"operator": "not_in",
		"user_ids": [10, 20]
	}`))
	require.NoError(t, err)

	owner, ok := cond.(OwnerCondition)
	require.True(t, ok)
	assert.Equal(t, OperatorNotIn, owner.Operator)
	assert.Equal(t, []int64{10, 20}, owner.UserIDs)
	assert.Equal(t, []string{crm.FieldOwner}, owner.RequiredFields())
}

func TestParseCondition_OwnerDefaultsToIn(t *testing.T) {
	cond, err := ParseCondition(models.RuleKindByCurrentOwner, json.RawMessage(`{"user_ids": [5]}`))
	require.NoError(t, err)
	assert.Equal(t, OperatorIn, cond.(OwnerCondition).Operator)
}

func TestParseCondition_Combined(t *testing.T) {
	cond, err := ParseCondition(models.RuleKindCombined, json.RawMessage(`{
		"logic": "AND",
		"conditions": [
			{"type": "by_field", "field_id": "CATEGORY_ID", "category_ids": [1]},
			{"type": "by_current_owner", "operator": "equals", "user_ids": [42]}
		]
	}`))
	require.NoError(t, err)

	combined, ok := cond.(CombinedCondition)
	require.True(t, ok)
	require.Len(t, combined.Conditions, 2)
	assert.ElementsMatch(t, []string{"CATEGORY_ID", "STAGE_ID", "ASSIGNED_BY_ID"}, combined.RequiredFields())
}

func TestParseCondition_CombinedRejectsOr(t *testing.T) {
	_, err := ParseCondition(models.RuleKindCombined, json.RawMessage(`{
		"logic": "OR",
		"conditions": [
			{"type": "by_field", "field_id": "CATEGORY_ID", "category_ids": [1]}
		]
	}`))
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Contains(t, err.Error(), "only AND")
}

func TestParseCondition_InvalidShapes(t *testing.T) {
	tests := []struct {
		name   string
		kind   models.RuleKind
		config string
	}{
		{"empty config", models.RuleKindByField, ``},
		{"not json", models.RuleKindByField, `{`},
		{"field without target", models.RuleKindByField, `{"field_id": "CATEGORY_ID"}`},
		{"missing field id", models.RuleKindByField, `{"category_ids": [1]}`},
		{"empty category list", models.RuleKindByField, `{"field_id": "CATEGORY_ID", "field_type": "crm_category", "category_ids": []}`},
		{"empty stage list", models.RuleKindByField, `{"field_id": "CATEGORY_ID", "category_ids": [1], "stage_ids": []}`},
		{"unknown field type", models.RuleKindByField, `{"field_id": "X", "field_type": "crm_money", "status_id": "A"}`},
		{"owner without users", models.RuleKindByCurrentOwner, `{"operator": "in", "user_ids": []}`},
		{"owner bad operator", models.RuleKindByCurrentOwner, `{"operator": "between", "user_ids": [1]}`},
		{"combined without conditions", models.RuleKindCombined, `{"conditions": []}`},
		{"combined unknown sub type", models.RuleKindCombined, `{"conditions": [{"type": "by_moon_phase"}]}`},
		{"combined invalid sub shape", models.RuleKindCombined, `{"conditions": [{"type": "by_field", "field_id": "X"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCondition(tt.kind, json.RawMessage(tt.config))
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err), "expected ValidationError, got %T", err)
		})
	}
}
