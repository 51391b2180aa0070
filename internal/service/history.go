package service

import (
	"context"
	"fmt"
	"time"

	"duty-assignment-backend/internal/apperrors"
	"duty-assignment-backend/internal/database/models"
	"duty-assignment-backend/internal/repository"

	"github.com/google/uuid"
)

// HistoryService handles business logic for the assignment audit trail
type HistoryService struct {
	repo     repository.HistoryRepositoryInterface
	crmUsers repository.CrmUserRepositoryInterface
}

// NewHistoryService creates a new history service
func NewHistoryService(repo repository.HistoryRepositoryInterface, crmUsers repository.CrmUserRepositoryInterface) *HistoryService {
	return &HistoryService{repo: repo, crmUsers: crmUsers}
}

// HistoryEntryResponse is one assignment change in API responses
type HistoryEntryResponse struct {
	ID                uuid.UUID               `json:"id"`
	EntityType        models.EntityType       `json:"entity_type"`
	EntityID          int64                   `json:"entity_id"`
	OldOwnerID        *int64                  `json:"old_owner_id,omitempty"`
	OldOwnerName      string                  `json:"old_owner_name,omitempty"`
	NewOwnerID        int64                   `json:"new_owner_id"`
	NewOwnerName      string                  `json:"new_owner_name,omitempty"`
	Source            models.AssignmentSource `json:"source"`
	RuleID            *uuid.UUID              `json:"rule_id,omitempty"`
	RelatedEntityType *models.EntityType      `json:"related_entity_type,omitempty"`
	RelatedEntityID   *int64                  `json:"related_entity_id,omitempty"`
	CreatedAt         string                  `json:"created_at"`
}

// HistoryListResponse represents a paginated history listing
type HistoryListResponse struct {
	Entries  []HistoryEntryResponse `json:"entries"`
	Total    int64                  `json:"total"`
	Page     int                    `json:"page"`
	PageSize int                    `json:"page_size"`
}

// HistoryStatsResponse aggregates assignments per receiving user
type HistoryStatsResponse struct {
	From   string                  `json:"from"`
	To     string                  `json:"to"`
	Counts []repository.OwnerCount `json:"counts"`
}

// ListQuery narrows a history listing request
type ListQuery struct {
	EntityType models.EntityType
	EntityID   int64
	NewOwnerID int64
	Source     models.AssignmentSource
	RuleID     uuid.UUID
	From       time.Time
	To         time.Time
}

// List retrieves history entries newest first with owner names resolved
func (s *HistoryService) List(q ListQuery, page, pageSize int) (*HistoryListResponse, error) {
	if page < 1 || pageSize < 1 || pageSize > 200 {
		return nil, apperrors.ErrInvalidPaginationParams
	}
	if q.EntityType != "" && !q.EntityType.IsValid() {
		return nil, apperrors.NewValidationError("entityType", fmt.Sprintf("unknown entity type %q", q.EntityType))
	}
	if q.Source != "" && !q.Source.IsValid() {
		return nil, apperrors.NewValidationError("source", fmt.Sprintf("unknown source %q", q.Source))
	}

	filter := repository.HistoryFilter{
		EntityType: q.EntityType,
		EntityID:   q.EntityID,
		NewOwnerID: q.NewOwnerID,
		Source:     q.Source,
		RuleID:     q.RuleID,
		From:       q.From,
		To:         q.To,
	}
	entries, total, err := s.repo.List(filter, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	names := s.ownerNames(entries)
	resp := &HistoryListResponse{Total: total, Page: page, PageSize: pageSize, Entries: make([]HistoryEntryResponse, 0, len(entries))}
	for _, e := range entries {
		out := HistoryEntryResponse{
			ID:                e.ID,
			EntityType:        e.EntityType,
			EntityID:          e.EntityID,
			OldOwnerID:        e.OldOwnerID,
			NewOwnerID:        e.NewOwnerID,
			NewOwnerName:      names[e.NewOwnerID],
			Source:            e.Source,
			RuleID:            e.RuleID,
			RelatedEntityType: e.RelatedEntityType,
			RelatedEntityID:   e.RelatedEntityID,
			CreatedAt:         e.CreatedAt.Format(time.RFC3339),
		}
		if e.OldOwnerID != nil {
			out.OldOwnerName = names[*e.OldOwnerID]
		}
		resp.Entries = append(resp.Entries, out)
	}
	return resp, nil
}

// Stats aggregates how many records each user received in [from, to]
func (s *HistoryService) Stats(from, to time.Time) (*HistoryStatsResponse, error) {
	if to.Before(from) {
		return nil, apperrors.NewValidationError("to", "end of period is before its start")
	}
	counts, err := s.repo.CountByNewOwner(from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate history: %w", err)
	}
	return &HistoryStatsResponse{
		From:   from.Format("2006-01-02"),
		To:     to.Format("2006-01-02"),
		Counts: counts,
	}, nil
}

// Append records one applied ownership change for the assignment engine
func (s *HistoryService) Append(_ context.Context, entry *models.AssignmentHistory) error {
	return s.repo.Create(entry)
}

func (s *HistoryService) ownerNames(entries []models.AssignmentHistory) map[int64]string {
	idSet := make(map[int64]bool)
	for _, e := range entries {
		idSet[e.NewOwnerID] = true
		if e.OldOwnerID != nil {
			idSet[*e.OldOwnerID] = true
		}
	}
	ids := make([]int64, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	names := make(map[int64]string, len(ids))
	users, err := s.crmUsers.GetByIDs(ids)
	if err != nil {
		return names
	}
	for i := range users {
		names[users[i].ID] = users[i].DisplayName()
	}
	return names
}
