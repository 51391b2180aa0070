package repository

import (
	"time"

	"duty-assignment-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HistoryFilter narrows a history listing. Zero values mean "no filter".
type HistoryFilter struct {
	EntityType models.EntityType
	EntityID   int64
	NewOwnerID int64
	Source     models.AssignmentSource
	RuleID     uuid.UUID
	From       time.Time
	To         time.Time
}

// OwnerCount is the number of assignments one user received in a period
type OwnerCount struct {
	UserID int64 `json:"user_id"`
	Count  int64 `json:"count"`
}

// HistoryRepository handles database operations for assignment history
type HistoryRepository struct {
	db *gorm.DB
}

// NewHistoryRepository creates a new assignment history repository
func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Create appends one history entry
func (r *HistoryRepository) Create(entry *models.AssignmentHistory) error {
	return r.db.Create(entry).Error
}

// List retrieves history entries newest first. The (created_at, id) ordering is
// stable, so pages do not shift between requests while new rows are appended.
func (r *HistoryRepository) List(filter HistoryFilter, limit, offset int) ([]models.AssignmentHistory, int64, error) {
	query := r.applyFilter(r.db.Model(&models.AssignmentHistory{}), filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entries []models.AssignmentHistory
	err := r.applyFilter(r.db, filter).
		Order("created_at DESC, id DESC").
		Limit(limit).Offset(offset).
		Find(&entries).Error
	return entries, total, err
}

// CountByNewOwner aggregates how many assignments each user received in [from, to]
func (r *HistoryRepository) CountByNewOwner(from, to time.Time) ([]OwnerCount, error) {
	var counts []OwnerCount
	err := r.db.Model(&models.AssignmentHistory{}).
		Select("new_owner_id AS user_id, COUNT(*) AS count").
		Where("created_at >= ? AND created_at <= ?", from, to).
		Group("new_owner_id").
		Order("count DESC").
		Scan(&counts).Error
	return counts, err
}

func (r *HistoryRepository) applyFilter(query *gorm.DB, filter HistoryFilter) *gorm.DB {
	if filter.EntityType != "" {
		query = query.Where("entity_type = ?", filter.EntityType)
	}
	if filter.EntityID != 0 {
		query = query.Where("entity_id = ?", filter.EntityID)
	}
	if filter.NewOwnerID != 0 {
		query = query.Where("new_owner_id = ?", filter.NewOwnerID)
	}
	if filter.Source != "" {
		query = query.Where("source = ?", filter.Source)
	}
	if filter.RuleID != uuid.Nil {
		query = query.Where("rule_id = ?", filter.RuleID)
	}
	if !filter.From.IsZero() {
		query = query.Where("created_at >= ?", filter.From)
	}
	if !filter.To.IsZero() {
		query = query.Where("created_at <= ?", filter.To)
	}
	return query
}
