package models

// DefaultUser is one entry of the ordered rotation list the roster generator
// cycles through. Position defines rotation order.
type DefaultUser struct {
	BaseModel
	UserID   int64 `json:"user_id" gorm:"uniqueIndex;not null" validate:"required"`
	Position int   `json:"position" gorm:"not null;default:0"`

	// Relationships
	User CrmUser `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for DefaultUser
func (DefaultUser) TableName() string {
	return "default_users"
}
