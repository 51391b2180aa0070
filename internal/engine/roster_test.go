package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"duty-assignment-backend/internal/apperrors"
	"duty-assignment-backend/internal/database/models"
)

func rotationUsers(ids ...int64) []models.DefaultUser {
	users := make([]models.DefaultUser, 0, len(ids))
	for i, id := range ids {
		users = append(users, models.DefaultUser{UserID: id, Position: i})
	}
	return users
}

func TestMonthRoster_AlternatesTwoUsers(t *testing.T) {
	users := rotationUsers(101, 202)

	roster, err := MonthRoster(2024, time.June, users, 0)
	require.NoError(t, err)
	require.Len(t, roster, 30)

	for day := 1; day <= 30; day++ {
		want := int64(101)
		if day%2 == 0 {
			want = 202
		}
		assert.Equal(t, want, roster[day-1].UserID, "day %d", day)
	}
}

func TestMonthRoster_OffsetContinuesRotation(t *testing.T) {
	users := rotationUsers(1, 2, 3)

	// June has 30 days; a rotation that starts June at offset 0 ends June 30 on
	// user 3 (30 mod 3 == 0), so July continues at offset 30.
	june, err := MonthRoster(2024, time.June, users, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), june[29].UserID)

	july, err := MonthRoster(2024, time.July, users, 30)
	require.NoError(t, err)
	assert.Equal(t, int64(1), july[0].UserID)
	assert.Equal(t, int64(2), july[1].UserID)
}

func TestMonthRoster_OrdersByPosition(t *testing.T) {
	users := []models.DefaultUser{
		{UserID: 300, Position: 2},
		{UserID: 100, Position: 0},
		{UserID: 200, Position: 1},
	}

	roster, err := MonthRoster(2024, time.June, users, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(100), roster[0].UserID)
	assert.Equal(t, int64(200), roster[1].UserID)
	assert.Equal(t, int64(300), roster[2].UserID)
	assert.Equal(t, int64(100), roster[3].UserID)
}

func TestMonthRoster_EmptyRotation(t *testing.T) {
	_, err := MonthRoster(2024, time.June, nil, 0)
	require.Error(t, err)
	assert.True(t, apperrors.IsConfiguration(err))
	assert.ErrorIs(t, err, apperrors.ErrNoDefaultUsers)
}

func TestRosterUserForDay(t *testing.T) {
	users := rotationUsers(1, 2, 3)

	u, err := RosterUserForDay(users, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.UserID)

	u, err = RosterUserForDay(users, 0, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.UserID)

	u, err = RosterUserForDay(users, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), u.UserID)

	_, err = RosterUserForDay(nil, 0, 1)
	assert.Error(t, err)
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(2024, time.January))
	assert.Equal(t, 29, DaysInMonth(2024, time.February))
	assert.Equal(t, 28, DaysInMonth(2025, time.February))
	assert.Equal(t, 30, DaysInMonth(2024, time.June))
	assert.Equal(t, 31, DaysInMonth(2024, time.December))
}
