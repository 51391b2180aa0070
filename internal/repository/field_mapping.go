package repository

import (
	"duty-assignment-backend/internal/database/models"

	"gorm.io/gorm"
)

// FieldMappingRepository handles database operations for cached CRM field metadata
type FieldMappingRepository struct {
	db *gorm.DB
}

// NewFieldMappingRepository creates a new field metadata cache repository
func NewFieldMappingRepository(db *gorm.DB) *FieldMappingRepository {
	return &FieldMappingRepository{db: db}
}

// GetByEntity retrieves the cached field metadata of one entity type
func (r *FieldMappingRepository) GetByEntity(entityType models.EntityType) ([]models.FieldMapping, error) {
	var mappings []models.FieldMapping
	err := r.db.Where("entity_type = ?", entityType).Order("field_id ASC").Find(&mappings).Error
	return mappings, err
}

// ReplaceForEntity refreshes the cached metadata of one entity type
func (r *FieldMappingRepository) ReplaceForEntity(entityType models.EntityType, mappings []models.FieldMapping) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("entity_type = ?", entityType).Delete(&models.FieldMapping{}).Error; err != nil {
			return err
		}
		if len(mappings) == 0 {
			return nil
		}
		return tx.Create(&mappings).Error
	})
}
