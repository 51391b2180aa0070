package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentHistory is one applied ownership change. Append-only: rows are
// created exactly once per change and never mutated.
type AssignmentHistory struct {
	ID                uuid.UUID        `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	EntityType        EntityType       `json:"entity_type" gorm:"type:varchar(20);not null;index"`
	EntityID          int64            `json:"entity_id" gorm:"not null;index"`
	OldOwnerID        *int64           `json:"old_owner_id"`
	NewOwnerID        int64            `json:"new_owner_id" gorm:"not null;index"`
	Source            AssignmentSource `json:"source" gorm:"type:varchar(20);not null;index"`
	RuleID            *uuid.UUID       `json:"rule_id" gorm:"type:uuid"`
	RelatedEntityType *EntityType      `json:"related_entity_type" gorm:"type:varchar(20)"`
	RelatedEntityID   *int64           `json:"related_entity_id"`
	CreatedAt         time.Time        `json:"created_at" gorm:"index"`
}

// TableName returns the table name for AssignmentHistory
func (AssignmentHistory) TableName() string {
	return "assignment_history"
}

// BeforeCreate sets the UUID if not already set
func (h *AssignmentHistory) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}
