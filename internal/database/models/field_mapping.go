package models

import "time"

// FieldMapping caches CRM field metadata so the rule form does not hit the CRM
// on every render
type FieldMapping struct {
	BaseModel
	EntityType EntityType `json:"entity_type" gorm:"type:varchar(20);not null;index;uniqueIndex:uq_field_mapping"`
	FieldID    string     `json:"field_id" gorm:"size:100;not null;uniqueIndex:uq_field_mapping"`
	FieldName  string     `json:"field_name" gorm:"size:200;not null"`
	FieldType  string     `json:"field_type" gorm:"size:50;not null"` // crm_category, crm_status, user, string, ...
	CachedAt   time.Time  `json:"cached_at"`
}

// TableName returns the table name for FieldMapping
func (FieldMapping) TableName() string {
	return "field_mappings"
}
