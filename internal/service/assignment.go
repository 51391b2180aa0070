package service

import (
	"context"
	"fmt"
	"time"

	"duty-assignment-backend/internal/apperrors"
	"duty-assignment-backend/internal/database/models"
	"duty-assignment-backend/internal/engine"
	"duty-assignment-backend/internal/logger"
)

// AssignmentService fronts the assignment engine for the API and the scheduler
type AssignmentService struct {
	orchestrator *engine.Orchestrator
	gate         *engine.ScheduleGate
	loc          *time.Location
	log          *logger.Logger
}

// NewAssignmentService creates a new assignment service
func NewAssignmentService(orchestrator *engine.Orchestrator, loc *time.Location) *AssignmentService {
	if loc == nil {
		loc = time.UTC
	}
	return &AssignmentService{
		orchestrator: orchestrator,
		gate:         engine.NewScheduleGate(loc),
		loc:          loc,
		log:          logger.WithComponent("assignments"),
	}
}

// ParseRunDate parses an optional YYYY-MM-DD date; empty means today in the
// configured timezone.
func (s *AssignmentService) ParseRunDate(raw string) (time.Time, error) {
	if raw == "" {
		return s.gate.Today(time.Now()), nil
	}
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError("date", "date must be YYYY-MM-DD")
	}
	return date, nil
}

// Run starts a manual batch run and streams its progress events
func (s *AssignmentService) Run(ctx context.Context, date time.Time, dryRun bool) <-chan engine.ProgressEvent {
	mode := engine.ModeApply
	if dryRun {
		mode = engine.ModeDryRun
	}
	return s.orchestrator.Run(ctx, engine.RunOptions{
		Date:   date,
		Mode:   mode,
		Source: models.SourceManual,
	})
}

// RunScheduled executes one scheduled batch run synchronously, honoring every
// rule's schedule gate. since is the previous scheduler tick; rules already due
// then are not fired again.
func (s *AssignmentService) RunScheduled(ctx context.Context, since, now time.Time) (*engine.RunSummary, error) {
	return s.orchestrator.RunSync(ctx, engine.RunOptions{
		Date:        s.gate.Today(now),
		Mode:        engine.ModeApply,
		Source:      models.SourceScheduled,
		EnforceGate: true,
		Now:         now,
		Since:       since,
	})
}

// Preview lists the changes a run on the date would apply, without applying them
func (s *AssignmentService) Preview(ctx context.Context, date time.Time) ([]engine.PreviewEntry, error) {
	return s.orchestrator.Preview(ctx, date)
}

// HandleWebhookEvent reassigns one record in response to a CRM change event
func (s *AssignmentService) HandleWebhookEvent(ctx context.Context, entityType models.EntityType, recordID int64) (*engine.SingleResult, error) {
	if !entityType.IsValid() {
		return nil, apperrors.NewValidationError("entityType", fmt.Sprintf("unknown entity type %q", entityType))
	}
	if recordID <= 0 {
		return nil, apperrors.NewValidationError("recordId", "record id must be positive")
	}

	result, err := s.orchestrator.AssignRecord(ctx, entityType, recordID, time.Now(), models.SourceWebhook)
	if err != nil {
		return nil, err
	}
	s.log.WithFields(map[string]interface{}{
		"entity_type": entityType,
		"entity_id":   recordID,
		"assigned":    result.Assigned,
	}).Info("processed webhook event")
	return result, nil
}
