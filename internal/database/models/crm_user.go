package models

import (
	"strings"
	"time"
)

// CrmUser is a cached copy of a CRM staff user. The primary key is the CRM's
// own numeric user id, not a generated UUID, so duty and rule rows can
// reference CRM users directly.
type CrmUser struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name      string    `json:"name" gorm:"size:100"`
	LastName  string    `json:"last_name" gorm:"size:100"`
	Email     string    `json:"email" gorm:"size:200"`
	Active    bool      `json:"active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for CrmUser
func (CrmUser) TableName() string {
	return "crm_users"
}

// DisplayName returns "Name LastName", falling back to email
func (u *CrmUser) DisplayName() string {
	full := strings.TrimSpace(u.Name + " " + u.LastName)
	if full != "" {
		return full
	}
	return u.Email
}
