package testutils

import (
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"duty-assignment-backend/internal/database/models"

	"github.com/google/uuid"
)

var crmUserSeq int64 = 1000

// CrmUserFactory provides methods to create test CrmUser data
type CrmUserFactory struct{}

// NewCrmUserFactory creates a new CrmUserFactory
func NewCrmUserFactory() *CrmUserFactory {
	return &CrmUserFactory{}
}

// Create creates a test CrmUser with a unique CRM id
func (f *CrmUserFactory) Create() *models.CrmUser {
	id := atomic.AddInt64(&crmUserSeq, 1)
	return &models.CrmUser{
		ID:       id,
		Name:     "Test",
		LastName: fmt.Sprintf("User%d", id),
		Email:    fmt.Sprintf("user%d@test.com", id),
		Active:   true,
	}
}

// WithID sets a fixed CRM user id
func (f *CrmUserFactory) WithID(id int64) *models.CrmUser {
	user := f.Create()
	user.ID = id
	user.LastName = fmt.Sprintf("User%d", id)
	user.Email = fmt.Sprintf("user%d@test.com", id)
	return user
}

// DefaultUserFactory provides methods to create test rotation entries
type DefaultUserFactory struct{}

// NewDefaultUserFactory creates a new DefaultUserFactory
func NewDefaultUserFactory() *DefaultUserFactory {
	return &DefaultUserFactory{}
}

// Create creates a rotation entry for a CRM user at a position
func (f *DefaultUserFactory) Create(userID int64, position int) *models.DefaultUser {
	return &models.DefaultUser{
		UserID:   userID,
		Position: position,
	}
}

// RuleFactory provides methods to create test AssignmentRule data
type RuleFactory struct{}

// NewRuleFactory creates a new RuleFactory
func NewRuleFactory() *RuleFactory {
	return &RuleFactory{}
}

// Create creates an enabled category rule for deals
func (f *RuleFactory) Create() *models.AssignmentRule {
	return &models.AssignmentRule{
		BaseModel:       models.BaseModel{ID: uuid.New()},
		Name:            "Test rule",
		EntityType:      models.EntityTypeDeal,
		RuleKind:        models.RuleKindByField,
		ConditionConfig: json.RawMessage(`{"field_id": "CATEGORY_ID", "category_ids": [1]}`),
		Priority:        0,
		Enabled:         true,
		ScheduleTime:    "09:00",
	}
}

// WithDistribution adds one weighted user to the rule
func (f *RuleFactory) WithDistribution(rule *models.AssignmentRule, userID int64, percentage int) *models.AssignmentRule {
	rule.Distributions = append(rule.Distributions, models.RuleDistribution{
		RuleID:     rule.ID,
		UserID:     userID,
		Percentage: percentage,
	})
	return rule
}

// DutyDayFactory provides methods to create test DutyDay data
type DutyDayFactory struct{}

// NewDutyDayFactory creates a new DutyDayFactory
func NewDutyDayFactory() *DutyDayFactory {
	return &DutyDayFactory{}
}

// Create creates a duty day with the given users
func (f *DutyDayFactory) Create(date time.Time, userIDs ...int64) *models.DutyDay {
	day := &models.DutyDay{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Date:      time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
	}
	for _, id := range userIDs {
		day.Users = append(day.Users, models.DutyDayUser{DutyDayID: day.ID, UserID: id})
	}
	return day
}

// HistoryFactory provides methods to create test AssignmentHistory data
type HistoryFactory struct{}

// NewHistoryFactory creates a new HistoryFactory
func NewHistoryFactory() *HistoryFactory {
	return &HistoryFactory{}
}

// Create creates a history entry for a deal reassignment
func (f *HistoryFactory) Create(entityID, newOwnerID int64) *models.AssignmentHistory {
	oldOwner := int64(1)
	return &models.AssignmentHistory{
		EntityType: models.EntityTypeDeal,
		EntityID:   entityID,
		OldOwnerID: &oldOwner,
		NewOwnerID: newOwnerID,
		Source:     models.SourceManual,
	}
}

// FactorySet bundles all factories for convenient access in tests
type FactorySet struct {
	CrmUser     *CrmUserFactory
	DefaultUser *DefaultUserFactory
	Rule        *RuleFactory
	DutyDay     *DutyDayFactory
	History     *HistoryFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		CrmUser:     NewCrmUserFactory(),
		DefaultUser: NewDefaultUserFactory(),
		Rule:        NewRuleFactory(),
		DutyDay:     NewDutyDayFactory(),
		History:     NewHistoryFactory(),
	}
}
