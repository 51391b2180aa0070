package service

import (
	"context"
	"errors"
	"fmt"

	"duty-assignment-backend/internal/apperrors"
	"duty-assignment-backend/internal/crm"
	"duty-assignment-backend/internal/database/models"
	"duty-assignment-backend/internal/logger"
	"duty-assignment-backend/internal/repository"

	"gorm.io/gorm"
)

// UserService keeps the local CRM staff cache in sync and resolves user names
type UserService struct {
	crm  crm.Client
	repo repository.CrmUserRepositoryInterface
	log  *logger.Logger
}

// NewUserService creates a new user service
func NewUserService(crmClient crm.Client, repo repository.CrmUserRepositoryInterface) *UserService {
	return &UserService{
		crm:  crmClient,
		repo: repo,
		log:  logger.WithComponent("users"),
	}
}

// Sync refreshes the cached staff list from the CRM and returns how many users
// were stored
func (s *UserService) Sync(ctx context.Context) (int, error) {
	crmUsers, err := s.crm.GetUsers(ctx)
	if err != nil {
		return 0, err
	}

	users := make([]models.CrmUser, 0, len(crmUsers))
	for _, u := range crmUsers {
		users = append(users, models.CrmUser{
			ID:       u.ID,
			Name:     u.Name,
			LastName: u.LastName,
			Email:    u.Email,
			Active:   u.Active,
		})
	}
	if err := s.repo.UpsertAll(users); err != nil {
		return 0, fmt.Errorf("failed to store users: %w", err)
	}

	s.log.WithField("count", len(users)).Info("synced CRM users")
	return len(users), nil
}

// List retrieves cached CRM users
func (s *UserService) List(activeOnly bool) ([]UserResponse, error) {
	users, err := s.repo.GetAll(activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	resp := make([]UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, userResponse(u))
	}
	return resp, nil
}

// Get retrieves one cached CRM user
func (s *UserService) Get(id int64) (*UserResponse, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCrmUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	resp := userResponse(*user)
	return &resp, nil
}

// DisplayNames resolves CRM user ids to display names for the assignment
// engine. Unknown ids are simply absent from the result.
func (s *UserService) DisplayNames(_ context.Context, ids []int64) map[int64]string {
	names := make(map[int64]string, len(ids))
	users, err := s.repo.GetByIDs(ids)
	if err != nil {
		s.log.WithError(err).Warn("failed to resolve user names")
		return names
	}
	for i := range users {
		names[users[i].ID] = users[i].DisplayName()
	}
	return names
}
