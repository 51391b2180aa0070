package repository

import (
	"time"

	"duty-assignment-backend/internal/database/models"

	"gorm.io/gorm"
)

// DutyDayRepository handles database operations for the duty roster
type DutyDayRepository struct {
	db *gorm.DB
}

// NewDutyDayRepository creates a new duty roster repository
func NewDutyDayRepository(db *gorm.DB) *DutyDayRepository {
	return &DutyDayRepository{db: db}
}

// GetByDate retrieves the duty day for one calendar date with its users
func (r *DutyDayRepository) GetByDate(date time.Time) (*models.DutyDay, error) {
	var day models.DutyDay
	err := r.db.Preload("Users").Preload("Users.User").
		First(&day, "date = ?", dateOnly(date)).Error
	if err != nil {
		return nil, err
	}
	return &day, nil
}

// GetRange retrieves duty days within [from, to] ordered by date
func (r *DutyDayRepository) GetRange(from, to time.Time) ([]models.DutyDay, error) {
	var days []models.DutyDay
	err := r.db.Preload("Users").Preload("Users.User").
		Where("date >= ? AND date <= ?", dateOnly(from), dateOnly(to)).
		Order("date ASC").
		Find(&days).Error
	return days, err
}

// SetUsersForDate replaces the duty set of one date. An empty user set deletes
// the day entirely so the roster never holds empty days.
func (r *DutyDayRepository) SetUsersForDate(date time.Time, userIDs []int64) (*models.DutyDay, error) {
	date = dateOnly(date)

	if len(userIDs) == 0 {
		if err := r.DeleteByDate(date); err != nil {
			return nil, err
		}
		return nil, nil
	}

	var day models.DutyDay
	err := r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.First(&day, "date = ?", date).Error
		if err == gorm.ErrRecordNotFound {
			day = models.DutyDay{Date: date}
			if err := tx.Create(&day).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		if err := tx.Where("duty_day_id = ?", day.ID).Delete(&models.DutyDayUser{}).Error; err != nil {
			return err
		}
		users := make([]models.DutyDayUser, 0, len(userIDs))
		for _, id := range userIDs {
			users = append(users, models.DutyDayUser{DutyDayID: day.ID, UserID: id})
		}
		return tx.Create(&users).Error
	})
	if err != nil {
		return nil, err
	}
	return r.GetByDate(date)
}

// ReplaceRange deletes every duty day within [from, to] and inserts the given
// days in their place. Used by destructive month regeneration.
func (r *DutyDayRepository) ReplaceRange(from, to time.Time, days []models.DutyDay) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing []models.DutyDay
		if err := tx.Where("date >= ? AND date <= ?", dateOnly(from), dateOnly(to)).Find(&existing).Error; err != nil {
			return err
		}
		for _, day := range existing {
			if err := tx.Where("duty_day_id = ?", day.ID).Delete(&models.DutyDayUser{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("date >= ? AND date <= ?", dateOnly(from), dateOnly(to)).Delete(&models.DutyDay{}).Error; err != nil {
			return err
		}
		if len(days) == 0 {
			return nil
		}
		return tx.Create(&days).Error
	})
}

// DeleteByDate removes one duty day and its users
func (r *DutyDayRepository) DeleteByDate(date time.Time) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var day models.DutyDay
		err := tx.First(&day, "date = ?", dateOnly(date)).Error
		if err == gorm.ErrRecordNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		if err := tx.Where("duty_day_id = ?", day.ID).Delete(&models.DutyDayUser{}).Error; err != nil {
			return err
		}
		return tx.Delete(&day).Error
	})
}

// dateOnly strips the time-of-day so date columns compare by calendar date
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
