package repository

import (
	"duty-assignment-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultUserRepository handles database operations for the rotation list
type DefaultUserRepository struct {
	db *gorm.DB
}

// NewDefaultUserRepository creates a new rotation list repository
func NewDefaultUserRepository(db *gorm.DB) *DefaultUserRepository {
	return &DefaultUserRepository{db: db}
}

// Create adds one user to the rotation list
func (r *DefaultUserRepository) Create(user *models.DefaultUser) error {
	return r.db.Create(user).Error
}

// GetAll retrieves the rotation list in rotation order
func (r *DefaultUserRepository) GetAll() ([]models.DefaultUser, error) {
	var users []models.DefaultUser
	err := r.db.Preload("User").Order("position ASC, user_id ASC").Find(&users).Error
	return users, err
}

// GetByUserID retrieves a rotation entry by CRM user id
func (r *DefaultUserRepository) GetByUserID(userID int64) (*models.DefaultUser, error) {
	var user models.DefaultUser
	err := r.db.First(&user, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Update updates a rotation entry
func (r *DefaultUserRepository) Update(user *models.DefaultUser) error {
	return r.db.Save(user).Error
}

// Delete removes a rotation entry
func (r *DefaultUserRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.DefaultUser{}, "id = ?", id).Error
}

// ReplaceAll atomically replaces the whole rotation list
func (r *DefaultUserRepository) ReplaceAll(users []models.DefaultUser) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.DefaultUser{}).Error; err != nil {
			return err
		}
		if len(users) == 0 {
			return nil
		}
		return tx.Create(&users).Error
	})
}
