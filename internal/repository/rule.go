package repository

import (
	"duty-assignment-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RuleRepository handles database operations for assignment rules
type RuleRepository struct {
	db *gorm.DB
}

// NewRuleRepository creates a new assignment rule repository
func NewRuleRepository(db *gorm.DB) *RuleRepository {
	return &RuleRepository{db: db}
}

// Create creates a rule together with its distributions
func (r *RuleRepository) Create(rule *models.AssignmentRule) error {
	return r.db.Create(rule).Error
}

// GetByID retrieves a rule with its distributions and their users
func (r *RuleRepository) GetByID(id uuid.UUID) (*models.AssignmentRule, error) {
	var rule models.AssignmentRule
	err := r.db.Preload("Distributions").Preload("Distributions.User").
		First(&rule, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

// GetAll retrieves rules ordered by priority with pagination
func (r *RuleRepository) GetAll(limit, offset int) ([]models.AssignmentRule, int64, error) {
	var rules []models.AssignmentRule
	var total int64

	if err := r.db.Model(&models.AssignmentRule{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("Distributions").Preload("Distributions.User").
		Order("priority ASC, id ASC").
		Limit(limit).Offset(offset).
		Find(&rules).Error
	return rules, total, err
}

// GetEnabled retrieves the enabled rules with distributions, in priority order
func (r *RuleRepository) GetEnabled() ([]models.AssignmentRule, error) {
	var rules []models.AssignmentRule
	err := r.db.Preload("Distributions").
		Where("enabled = ?", true).
		Order("priority ASC, id ASC").
		Find(&rules).Error
	return rules, err
}

// Update updates a rule's own columns; distributions are replaced separately
func (r *RuleRepository) Update(rule *models.AssignmentRule) error {
	return r.db.Omit("Distributions").Save(rule).Error
}

// ReplaceDistributions atomically replaces a rule's weighted distribution
func (r *RuleRepository) ReplaceDistributions(ruleID uuid.UUID, distributions []models.RuleDistribution) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("rule_id = ?", ruleID).Delete(&models.RuleDistribution{}).Error; err != nil {
			return err
		}
		if len(distributions) == 0 {
			return nil
		}
		for i := range distributions {
			distributions[i].RuleID = ruleID
		}
		return tx.Create(&distributions).Error
	})
}

// Delete removes a rule; distributions cascade
func (r *RuleRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("rule_id = ?", id).Delete(&models.RuleDistribution{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.AssignmentRule{}, "id = ?", id).Error
	})
}
