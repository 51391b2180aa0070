package models

import (
	"time"

	"github.com/google/uuid"
)

// DutyDay holds the set of staff on call for one calendar date. One row per
// date; deleted when its user set becomes empty.
type DutyDay struct {
	BaseModel
	Date time.Time `json:"date" gorm:"type:date;not null;uniqueIndex"`

	// Relationships
	Users []DutyDayUser `json:"users,omitempty" gorm:"foreignKey:DutyDayID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for DutyDay
func (DutyDay) TableName() string {
	return "duty_days"
}

// UserIDs returns the duty user ids for the day
func (d *DutyDay) UserIDs() []int64 {
	ids := make([]int64, 0, len(d.Users))
	for _, u := range d.Users {
		ids = append(ids, u.UserID)
	}
	return ids
}

// DutyDayUser links a duty day to one CRM user
type DutyDayUser struct {
	BaseModel
	DutyDayID uuid.UUID `json:"duty_day_id" gorm:"type:uuid;not null;index;uniqueIndex:uq_duty_day_user"`
	UserID    int64     `json:"user_id" gorm:"not null;uniqueIndex:uq_duty_day_user"`

	// Relationships
	User CrmUser `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for DutyDayUser
func (DutyDayUser) TableName() string {
	return "duty_day_users"
}
