package repository

import (
	"duty-assignment-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CrmUserRepository handles database operations for the cached CRM staff list
type CrmUserRepository struct {
	db *gorm.DB
}

// NewCrmUserRepository creates a new CRM user repository
func NewCrmUserRepository(db *gorm.DB) *CrmUserRepository {
	return &CrmUserRepository{db: db}
}

// UpsertAll inserts or refreshes cached CRM users by their CRM id
func (r *CrmUserRepository) UpsertAll(users []models.CrmUser) error {
	if len(users) == 0 {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "last_name", "email", "active", "updated_at"}),
	}).Create(&users).Error
}

// GetAll retrieves cached CRM users, optionally only active ones
func (r *CrmUserRepository) GetAll(activeOnly bool) ([]models.CrmUser, error) {
	var users []models.CrmUser
	query := r.db.Order("last_name ASC, name ASC")
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	err := query.Find(&users).Error
	return users, err
}

// GetByID retrieves one cached CRM user
func (r *CrmUserRepository) GetByID(id int64) (*models.CrmUser, error) {
	var user models.CrmUser
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByIDs retrieves the cached CRM users among the given ids
func (r *CrmUserRepository) GetByIDs(ids []int64) ([]models.CrmUser, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []models.CrmUser
	err := r.db.Where("id IN ?", ids).Find(&users).Error
	return users, err
}
