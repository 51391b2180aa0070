package repository

import (
	"time"

	"duty-assignment-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// DefaultUserRepositoryInterface defines the interface for rotation list operations
type DefaultUserRepositoryInterface interface {
	Create(user *models.DefaultUser) error
	GetAll() ([]models.DefaultUser, error)
	GetByUserID(userID int64) (*models.DefaultUser, error)
	Update(user *models.DefaultUser) error
	Delete(id uuid.UUID) error
	ReplaceAll(users []models.DefaultUser) error
}

// DutyDayRepositoryInterface defines the interface for duty roster operations
type DutyDayRepositoryInterface interface {
	GetByDate(date time.Time) (*models.DutyDay, error)
	GetRange(from, to time.Time) ([]models.DutyDay, error)
	SetUsersForDate(date time.Time, userIDs []int64) (*models.DutyDay, error)
	ReplaceRange(from, to time.Time, days []models.DutyDay) error
	DeleteByDate(date time.Time) error
}

// RuleRepositoryInterface defines the interface for assignment rule operations
type RuleRepositoryInterface interface {
	Create(rule *models.AssignmentRule) error
	GetByID(id uuid.UUID) (*models.AssignmentRule, error)
	GetAll(limit, offset int) ([]models.AssignmentRule, int64, error)
	GetEnabled() ([]models.AssignmentRule, error)
	Update(rule *models.AssignmentRule) error
	ReplaceDistributions(ruleID uuid.UUID, distributions []models.RuleDistribution) error
	Delete(id uuid.UUID) error
}

// HistoryRepositoryInterface defines the interface for assignment history operations
type HistoryRepositoryInterface interface {
	Create(entry *models.AssignmentHistory) error
	List(filter HistoryFilter, limit, offset int) ([]models.AssignmentHistory, int64, error)
	CountByNewOwner(from, to time.Time) ([]OwnerCount, error)
}

// CrmUserRepositoryInterface defines the interface for cached CRM user operations
type CrmUserRepositoryInterface interface {
	UpsertAll(users []models.CrmUser) error
	GetAll(activeOnly bool) ([]models.CrmUser, error)
	GetByID(id int64) (*models.CrmUser, error)
	GetByIDs(ids []int64) ([]models.CrmUser, error)
}

// FieldMappingRepositoryInterface defines the interface for cached field metadata operations
type FieldMappingRepositoryInterface interface {
	GetByEntity(entityType models.EntityType) ([]models.FieldMapping, error)
	ReplaceForEntity(entityType models.EntityType, mappings []models.FieldMapping) error
}
