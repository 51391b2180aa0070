package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"duty-assignment-backend/internal/apperrors"
	"duty-assignment-backend/internal/database/models"
	"duty-assignment-backend/internal/engine"
	"duty-assignment-backend/internal/repository"

	"gorm.io/gorm"
)

// ScheduleService handles business logic for the duty roster and the rotation list
type ScheduleService struct {
	dutyDays     repository.DutyDayRepositoryInterface
	defaultUsers repository.DefaultUserRepositoryInterface
	crmUsers     repository.CrmUserRepositoryInterface
	loc          *time.Location
}

// NewScheduleService creates a new schedule service
func NewScheduleService(
	dutyDays repository.DutyDayRepositoryInterface,
	defaultUsers repository.DefaultUserRepositoryInterface,
	crmUsers repository.CrmUserRepositoryInterface,
	loc *time.Location,
) *ScheduleService {
	if loc == nil {
		loc = time.UTC
	}
	return &ScheduleService{
		dutyDays:     dutyDays,
		defaultUsers: defaultUsers,
		crmUsers:     crmUsers,
		loc:          loc,
	}
}

// DayResponse is one roster day with its users
type DayResponse struct {
	Date  string         `json:"date"`
	Users []UserResponse `json:"users"`
}

// UserResponse is one CRM user in API responses
type UserResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	Active bool   `json:"active"`
}

// MonthScheduleResponse is the roster of one calendar month
type MonthScheduleResponse struct {
	Year  int           `json:"year"`
	Month int           `json:"month"`
	Days  []DayResponse `json:"days"`
}

// DefaultUserResponse is one rotation list entry
type DefaultUserResponse struct {
	UserID   int64  `json:"user_id"`
	Position int    `json:"position"`
	Name     string `json:"name"`
}

func userResponse(u models.CrmUser) UserResponse {
	return UserResponse{
		ID:     u.ID,
		Name:   u.DisplayName(),
		Email:  u.Email,
		Active: u.Active,
	}
}

func dayResponse(day models.DutyDay) DayResponse {
	resp := DayResponse{Date: day.Date.Format("2006-01-02")}
	for _, du := range day.Users {
		resp.Users = append(resp.Users, userResponse(du.User))
	}
	return resp
}

// GetMonth retrieves the roster of one month. Days without duty are omitted.
func (s *ScheduleService) GetMonth(year, month int) (*MonthScheduleResponse, error) {
	if month < 1 || month > 12 {
		return nil, apperrors.NewValidationError("month", "month must be between 1 and 12")
	}
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	days, err := s.dutyDays.GetRange(from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}

	resp := &MonthScheduleResponse{Year: year, Month: month, Days: make([]DayResponse, 0, len(days))}
	for _, day := range days {
		resp.Days = append(resp.Days, dayResponse(day))
	}
	return resp, nil
}

// GetDay retrieves one roster day
func (s *ScheduleService) GetDay(date time.Time) (*DayResponse, error) {
	day, err := s.dutyDays.GetByDate(date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDutyDayNotFound
		}
		return nil, fmt.Errorf("failed to load duty day: %w", err)
	}
	resp := dayResponse(*day)
	return &resp, nil
}

// SetDay manually edits the duty set of one date. Every user must exist in the
// cached CRM staff list. An empty set removes the day.
func (s *ScheduleService) SetDay(date time.Time, userIDs []int64) (*DayResponse, error) {
	if err := s.validateUserIDs(userIDs); err != nil {
		return nil, err
	}

	day, err := s.dutyDays.SetUsersForDate(date, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to update duty day: %w", err)
	}
	if day == nil {
		return nil, nil
	}
	resp := dayResponse(*day)
	return &resp, nil
}

// GenerateMonth destructively regenerates a month's roster from the rotation
// list. Manual edits inside the month are discarded. startOffset shifts where
// the rotation begins so consecutive months can continue it.
func (s *ScheduleService) GenerateMonth(year, month, startOffset int) (*MonthScheduleResponse, error) {
	if month < 1 || month > 12 {
		return nil, apperrors.NewValidationError("month", "month must be between 1 and 12")
	}

	rotation, err := s.defaultUsers.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load rotation list: %w", err)
	}

	roster, err := engine.MonthRoster(year, time.Month(month), rotation, startOffset)
	if err != nil {
		return nil, err
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	days := make([]models.DutyDay, 0, len(roster))
	for i, user := range roster {
		days = append(days, models.DutyDay{
			Date:  from.AddDate(0, 0, i),
			Users: []models.DutyDayUser{{UserID: user.UserID}},
		})
	}
	if err := s.dutyDays.ReplaceRange(from, to, days); err != nil {
		return nil, fmt.Errorf("failed to store roster: %w", err)
	}
	return s.GetMonth(year, month)
}

// DutyUserIDs resolves who is on duty for a date. Missing days resolve to an
// empty set, which callers treat as "no roster".
func (s *ScheduleService) DutyUserIDs(_ context.Context, date time.Time) ([]int64, error) {
	day, err := s.dutyDays.GetByDate(date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load duty day: %w", err)
	}
	return day.UserIDs(), nil
}

// ListDefaultUsers retrieves the rotation list in rotation order
func (s *ScheduleService) ListDefaultUsers() ([]DefaultUserResponse, error) {
	rotation, err := s.defaultUsers.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load rotation list: %w", err)
	}
	resp := make([]DefaultUserResponse, 0, len(rotation))
	for _, entry := range rotation {
		resp = append(resp, DefaultUserResponse{
			UserID:   entry.UserID,
			Position: entry.Position,
			Name:     entry.User.DisplayName(),
		})
	}
	return resp, nil
}

// ReplaceDefaultUsers atomically replaces the rotation list; list order becomes
// rotation order.
func (s *ScheduleService) ReplaceDefaultUsers(userIDs []int64) ([]DefaultUserResponse, error) {
	if err := s.validateUserIDs(userIDs); err != nil {
		return nil, err
	}

	entries := make([]models.DefaultUser, 0, len(userIDs))
	for i, id := range userIDs {
		entries = append(entries, models.DefaultUser{UserID: id, Position: i})
	}
	if err := s.defaultUsers.ReplaceAll(entries); err != nil {
		return nil, fmt.Errorf("failed to replace rotation list: %w", err)
	}
	return s.ListDefaultUsers()
}

func (s *ScheduleService) validateUserIDs(userIDs []int64) error {
	if len(userIDs) == 0 {
		return nil
	}
	seen := make(map[int64]bool, len(userIDs))
	for _, id := range userIDs {
		if id <= 0 {
			return apperrors.NewValidationError("userIds", "user ids must be positive")
		}
		if seen[id] {
			return apperrors.NewValidationError("userIds", fmt.Sprintf("duplicate user id %d", id))
		}
		seen[id] = true
	}

	known, err := s.crmUsers.GetByIDs(userIDs)
	if err != nil {
		return fmt.Errorf("failed to verify users: %w", err)
	}
	if len(known) != len(userIDs) {
		knownSet := make(map[int64]bool, len(known))
		for _, u := range known {
			knownSet[u.ID] = true
		}
		for _, id := range userIDs {
			if !knownSet[id] {
				return apperrors.NewValidationError("userIds", fmt.Sprintf("unknown CRM user %d", id))
			}
		}
	}
	return nil
}
