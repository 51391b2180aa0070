package engine

import (
	"sort"
	"time"

	"duty-assignment-backend/internal/apperrors"
	"duty-assignment-backend/internal/database/models"
)

// RosterUserForDay returns the rotation member on duty for one day of a month.
// Members cycle in Position order; startOffset shifts where the cycle begins so
// consecutive months can continue the rotation instead of restarting it. day is
// 1-based.
func RosterUserForDay(users []models.DefaultUser, startOffset, day int) (models.DefaultUser, error) {
	if len(users) == 0 {
		return models.DefaultUser{}, apperrors.ErrNoDefaultUsers
	}
	ordered := sortedByPosition(users)
	idx := (startOffset + day - 1) % len(ordered)
	if idx < 0 {
		idx += len(ordered)
	}
	return ordered[idx], nil
}

// MonthRoster computes the full rotation for a month: element i is the user on
// duty on day i+1. Pure; persisting the result is the schedule service's job.
func MonthRoster(year int, month time.Month, users []models.DefaultUser, startOffset int) ([]models.DefaultUser, error) {
	if len(users) == 0 {
		return nil, apperrors.ErrNoDefaultUsers
	}
	ordered := sortedByPosition(users)
	days := DaysInMonth(year, month)

	roster := make([]models.DefaultUser, days)
	for day := 1; day <= days; day++ {
		idx := (startOffset + day - 1) % len(ordered)
		if idx < 0 {
			idx += len(ordered)
		}
		roster[day-1] = ordered[idx]
	}
	return roster, nil
}

// DaysInMonth returns the number of calendar days in a month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func sortedByPosition(users []models.DefaultUser) []models.DefaultUser {
	ordered := make([]models.DefaultUser, len(users))
	copy(ordered, users)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].Position != ordered[j].Position {
			return ordered[i].Position < ordered[j].Position
		}
		return ordered[i].UserID < ordered[j].UserID
	})
	return ordered
}
