package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// AssignmentRule decides new ownership for matching CRM records on a schedule.
// ConditionConfig is stored as JSON whose shape depends on RuleKind; the engine
// parses it into a typed condition before matching.
type AssignmentRule struct {
	BaseModel
	Name               string          `json:"name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	EntityType         EntityType      `json:"entity_type" gorm:"type:varchar(20);not null;index" validate:"required"`
	RuleKind           RuleKind        `json:"rule_kind" gorm:"type:varchar(30);not null" validate:"required"`
	ConditionConfig    json.RawMessage `json:"condition_config" gorm:"type:jsonb;not null"`
	Priority           int             `json:"priority" gorm:"not null;default:0;index"`
	Enabled            bool            `json:"enabled" gorm:"default:true"`
	ScheduleTime       string          `json:"schedule_time" gorm:"type:varchar(5);not null"` // "15:04"
	ScheduleDays       json.RawMessage `json:"schedule_days" gorm:"type:jsonb"`               // [1..7] ISO weekdays, null = every day
	PropagateToRelated bool            `json:"propagate_to_related" gorm:"default:false"`

	// Relationships
	Distributions []RuleDistribution `json:"distributions,omitempty" gorm:"foreignKey:RuleID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for AssignmentRule
func (AssignmentRule) TableName() string {
	return "assignment_rules"
}

// ScheduleDaysList decodes ScheduleDays; nil means the rule runs every day
func (r *AssignmentRule) ScheduleDaysList() []int {
	if len(r.ScheduleDays) == 0 {
		return nil
	}
	var days []int
	if err := json.Unmarshal(r.ScheduleDays, &days); err != nil {
		return nil
	}
	if len(days) == 0 {
		return nil
	}
	return days
}

// DistributionUserIDs returns the user ids configured on the rule
func (r *AssignmentRule) DistributionUserIDs() []int64 {
	ids := make([]int64, 0, len(r.Distributions))
	for _, d := range r.Distributions {
		ids = append(ids, d.UserID)
	}
	return ids
}

// RuleDistribution is one (user, percentage) weight on a rule. The sum of
// percentages across a rule never exceeds 100.
type RuleDistribution struct {
	BaseModel
	RuleID     uuid.UUID `json:"rule_id" gorm:"type:uuid;not null;index;uniqueIndex:uq_rule_distribution_user"`
	UserID     int64     `json:"user_id" gorm:"not null;uniqueIndex:uq_rule_distribution_user"`
	Percentage int       `json:"percentage" gorm:"not null" validate:"required,min=1,max=100"`

	// Relationships
	User CrmUser `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for RuleDistribution
func (RuleDistribution) TableName() string {
	return "rule_distributions"
}
