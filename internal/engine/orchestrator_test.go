package engine

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"duty-assignment-backend/internal/crm"
	"duty-assignment-backend/internal/crm/crmmock"
	"duty-assignment-backend/internal/database/models"
)

type fakeDuty struct {
	ids []int64
}

func (f *fakeDuty) DutyUserIDs(_ context.Context, _ time.Time) ([]int64, error) {
	return f.ids, nil
}

type fakeRules struct {
	rules []models.AssignmentRule
}

func (f *fakeRules) EnabledRules(_ context.Context) ([]models.AssignmentRule, error) {
	return f.rules, nil
}

type fakeHistory struct {
	mu      sync.Mutex
	entries []models.AssignmentHistory
}

func (f *fakeHistory) Append(_ context.Context, entry *models.AssignmentHistory) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeHistory) all() []models.AssignmentHistory {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.AssignmentHistory, len(f.entries))
	copy(out, f.entries)
	return out
}

func dealRecord(id int64, owner int64, category string) crm.Record {
	return crm.ParseRecord(map[string]any{
		"ID":             strconv.FormatInt(id, 10),
		"ASSIGNED_BY_ID": strconv.FormatInt(owner, 10),
		"CATEGORY_ID":    category,
		"STAGE_ID":       "C1:NEW",
	})
}

func categoryRule(userID int64) models.AssignmentRule {
	id := uuid.New()
	return models.AssignmentRule{
		BaseModel:       models.BaseModel{ID: id},
		Name:            "deals of pipeline 1",
		EntityType:      models.EntityTypeDeal,
		RuleKind:        models.RuleKindByField,
		ConditionConfig: json.RawMessage(`{"field_id": "CATEGORY_ID", "category_ids": [1]}`),
		Enabled:         true,
		ScheduleTime:    "00:00",
		Distributions: []models.RuleDistribution{
			{RuleID: id, UserID: userID, Percentage: 100},
		},
	}
}

func newTestOrchestrator(t *testing.T, client crm.Client, duty *fakeDuty, rules *fakeRules, history *fakeHistory) *Orchestrator {
	t.Helper()
	return NewOrchestrator(Options{
		Crm:     client,
		Duty:    duty,
		Rules:   rules,
		History: history,
		Gate:    NewScheduleGate(time.UTC),
		Rng:     NewLockedRNG(1),
		Workers: 2,
	})
}

func drain(events <-chan ProgressEvent) []ProgressEvent {
	var out []ProgressEvent
	for ev := range events {
		out = append(out, ev)
	}
	return out
}

func TestRun_AppliesMatchingRecordsAndRecordsHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := crmmock.NewMockClient(ctrl)

	rule := categoryRule(500)
	duty := &fakeDuty{ids: []int64{500}}
	history := &fakeHistory{}

	client.EXPECT().
		QueryRecords(gomock.Any(), "deal", gomock.Any()).
		Return([]crm.Record{
			dealRecord(1, 7, "1"),
			dealRecord(2, 8, "1"),
			dealRecord(3, 7, "2"), // wrong category, never touched
		}, nil)
	client.EXPECT().SetOwner(gomock.Any(), "deal", int64(1), int64(500)).Return(nil)
	client.EXPECT().SetOwner(gomock.Any(), "deal", int64(2), int64(500)).Return(nil)

	o := newTestOrchestrator(t, client, duty, &fakeRules{rules: []models.AssignmentRule{rule}}, history)
	events := drain(o.Run(context.Background(), RunOptions{
		Date:   time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		Mode:   ModeApply,
		Source: models.SourceManual,
	}))

	require.NotEmpty(t, events)
	assert.Equal(t, EventStart, events[0].Type)
	assert.Equal(t, 1, events[0].TotalRules)
	assert.Equal(t, []int64{500}, events[0].DutyUserIDs)

	last := events[len(events)-1]
	assert.Equal(t, EventComplete, last.Type)
	assert.Equal(t, 2, last.UpdatedEntities)
	assert.Empty(t, last.Errors)

	entries := history.all()
	require.Len(t, entries, 2)
	sort.Slice(entries, func(i, j int) bool { return entries[i].EntityID < entries[j].EntityID })
	assert.Equal(t, models.EntityTypeDeal, entries[0].EntityType)
	assert.Equal(t, int64(1), entries[0].EntityID)
	require.NotNil(t, entries[0].OldOwnerID)
	assert.Equal(t, int64(7), *entries[0].OldOwnerID)
	assert.Equal(t, int64(500), entries[0].NewOwnerID)
	assert.Equal(t, models.SourceManual, entries[0].Source)
	require.NotNil(t, entries[0].RuleID)
	assert.Equal(t, rule.ID, *entries[0].RuleID)
}

func TestRun_DryRunNeverWrites(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := crmmock.NewMockClient(ctrl)

	rule := categoryRule(500)
	history := &fakeHistory{}

	// No SetOwner expectation: any write fails the test.
	client.EXPECT().
		QueryRecords(gomock.Any(), "deal", gomock.Any()).
		Return([]crm.Record{dealRecord(1, 7, "1")}, nil)

	o := newTestOrchestrator(t, client, &fakeDuty{ids: []int64{500}}, &fakeRules{rules: []models.AssignmentRule{rule}}, history)
	events := drain(o.Run(context.Background(), RunOptions{
		Date: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		Mode: ModeDryRun,
	}))

	last := events[len(events)-1]
	assert.Equal(t, EventComplete, last.Type)
	assert.Equal(t, 1, last.UpdatedEntities)
	assert.Empty(t, history.all())
}

func TestRun_SkipsRuleWithNobodyOnDuty(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := crmmock.NewMockClient(ctrl)

	rule := categoryRule(500)

	// Duty roster exists but holds none of the rule's users, so the CRM is
	// never queried for this rule.
	o := newTestOrchestrator(t, client, &fakeDuty{ids: []int64{900}}, &fakeRules{rules: []models.AssignmentRule{rule}}, &fakeHistory{})
	events := drain(o.Run(context.Background(), RunOptions{
		Date: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		Mode: ModeApply,
	}))

	var skipped *ProgressEvent
	for i := range events {
		if events[i].Status == RuleSkipped {
			skipped = &events[i]
		}
	}
	require.NotNil(t, skipped)
	assert.Contains(t, skipped.Reason, "on duty")

	last := events[len(events)-1]
	assert.Equal(t, EventComplete, last.Type)
	assert.Equal(t, 0, last.UpdatedEntities)
}

func TestRun_EmptyDutyRosterIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := crmmock.NewMockClient(ctrl)

	o := newTestOrchestrator(t, client, &fakeDuty{}, &fakeRules{}, &fakeHistory{})
	events := drain(o.Run(context.Background(), RunOptions{
		Date: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
	}))

	require.Len(t, events, 1)
	assert.Equal(t, EventError, events[0].Type)
	assert.Contains(t, events[0].Error, "no duty roster")
}

func TestRun_ExperimentalKindsSkippedWhenDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := crmmock.NewMockClient(ctrl)

	id := uuid.New()
	rule := models.AssignmentRule{
		BaseModel:       models.BaseModel{ID: id},
		Name:            "steal from managers",
		EntityType:      models.EntityTypeDeal,
		RuleKind:        models.RuleKindByCurrentOwner,
		ConditionConfig: json.RawMessage(`{"operator": "in", "user_ids": [7]}`),
		Enabled:         true,
		ScheduleTime:    "00:00",
		Distributions:   []models.RuleDistribution{{RuleID: id, UserID: 500, Percentage: 100}},
	}

	o := newTestOrchestrator(t, client, &fakeDuty{ids: []int64{500}}, &fakeRules{rules: []models.AssignmentRule{rule}}, &fakeHistory{})
	events := drain(o.Run(context.Background(), RunOptions{
		Date: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		Mode: ModeApply,
	}))

	var skipped bool
	for _, ev := range events {
		if ev.Status == RuleSkipped {
			skipped = true
			assert.Contains(t, ev.Reason, "experimental")
		}
	}
	assert.True(t, skipped)
}

func TestRun_RecordErrorDoesNotAbortRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := crmmock.NewMockClient(ctrl)

	rule := categoryRule(500)
	history := &fakeHistory{}

	client.EXPECT().
		QueryRecords(gomock.Any(), "deal", gomock.Any()).
		Return([]crm.Record{
			dealRecord(1, 7, "1"),
			dealRecord(2, 8, "1"),
		}, nil)
	client.EXPECT().SetOwner(gomock.Any(), "deal", int64(1), int64(500)).
		Return(assert.AnError)
	client.EXPECT().SetOwner(gomock.Any(), "deal", int64(2), int64(500)).Return(nil)

	o := newTestOrchestrator(t, client, &fakeDuty{ids: []int64{500}}, &fakeRules{rules: []models.AssignmentRule{rule}}, history)
	events := drain(o.Run(context.Background(), RunOptions{
		Date: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		Mode: ModeApply,
	}))

	last := events[len(events)-1]
	assert.Equal(t, EventComplete, last.Type)
	assert.Equal(t, 1, last.UpdatedEntities)
	require.Len(t, last.Errors, 1)
	assert.Contains(t, last.Errors[0], "deal 1")
	assert.Len(t, history.all(), 1)
}

func TestRun_PropagatesToRelatedRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := crmmock.NewMockClient(ctrl)

	rule := categoryRule(500)
	rule.PropagateToRelated = true
	history := &fakeHistory{}

	rec := crm.ParseRecord(map[string]any{
		"ID":             "1",
		"ASSIGNED_BY_ID": "7",
		"CATEGORY_ID":    "1",
		"STAGE_ID":       "C1:NEW",
		"COMPANY_ID":     "33",
	})

	client.EXPECT().
		QueryRecords(gomock.Any(), "deal", gomock.Any()).
		Return([]crm.Record{rec}, nil)
	client.EXPECT().SetOwner(gomock.Any(), "deal", int64(1), int64(500)).Return(nil)
	client.EXPECT().GetDealContacts(gomock.Any(), int64(1)).Return([]int64{21}, nil)
	client.EXPECT().GetOwner(gomock.Any(), "contact", int64(21)).Return(int64(7), nil)
	client.EXPECT().SetOwner(gomock.Any(), "contact", int64(21), int64(500)).Return(nil)
	// Company already owned by the new owner: read but not written.
	client.EXPECT().GetOwner(gomock.Any(), "company", int64(33)).Return(int64(500), nil)

	o := newTestOrchestrator(t, client, &fakeDuty{ids: []int64{500}}, &fakeRules{rules: []models.AssignmentRule{rule}}, history)
	events := drain(o.Run(context.Background(), RunOptions{
		Date:   time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		Mode:   ModeApply,
		Source: models.SourceManual,
	}))

	last := events[len(events)-1]
	assert.Equal(t, EventComplete, last.Type)

	entries := history.all()
	require.Len(t, entries, 2)
	sort.Slice(entries, func(i, j int) bool { return entries[i].EntityType < entries[j].EntityType })

	contact := entries[0]
	assert.Equal(t, models.EntityTypeContact, contact.EntityType)
	assert.Equal(t, int64(21), contact.EntityID)
	// The related-record entry carries the triggering run's source, not a
	// fixed one.
	assert.Equal(t, models.SourceManual, contact.Source)
	require.NotNil(t, contact.RelatedEntityType)
	assert.Equal(t, models.EntityTypeDeal, *contact.RelatedEntityType)
	require.NotNil(t, contact.RelatedEntityID)
	assert.Equal(t, int64(1), *contact.RelatedEntityID)

	assert.Equal(t, models.EntityTypeDeal, entries[1].EntityType)
	assert.Equal(t, models.SourceManual, entries[1].Source)
}

func TestAssignRecord_WebhookPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := crmmock.NewMockClient(ctrl)

	rule := categoryRule(500)
	history := &fakeHistory{}

	client.EXPECT().
		GetRecord(gomock.Any(), "deal", int64(9), gomock.Any()).
		Return(dealRecord(9, 7, "1"), nil)
	client.EXPECT().SetOwner(gomock.Any(), "deal", int64(9), int64(500)).Return(nil)

	o := newTestOrchestrator(t, client, &fakeDuty{ids: []int64{500}}, &fakeRules{rules: []models.AssignmentRule{rule}}, history)
	res, err := o.AssignRecord(context.Background(),
		models.EntityTypeDeal, 9, time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC), models.SourceWebhook)
	require.NoError(t, err)

	assert.True(t, res.Assigned)
	assert.Equal(t, rule.ID.String(), res.RuleID)
	assert.Equal(t, int64(7), res.OldOwnerID)
	assert.Equal(t, int64(500), res.NewOwnerID)

	entries := history.all()
	require.Len(t, entries, 1)
	assert.Equal(t, models.SourceWebhook, entries[0].Source)
}

func TestAssignRecord_NoMatchingRule(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := crmmock.NewMockClient(ctrl)

	rule := categoryRule(500)

	client.EXPECT().
		GetRecord(gomock.Any(), "deal", int64(9), gomock.Any()).
		Return(dealRecord(9, 7, "2"), nil)

	o := newTestOrchestrator(t, client, &fakeDuty{ids: []int64{500}}, &fakeRules{rules: []models.AssignmentRule{rule}}, &fakeHistory{})
	res, err := o.AssignRecord(context.Background(),
		models.EntityTypeDeal, 9, time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC), models.SourceWebhook)
	require.NoError(t, err)

	assert.False(t, res.Assigned)
	assert.Equal(t, "no matching rule", res.Reason)
}

func TestAssignRecord_AlreadyOwnedBySelectedUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := crmmock.NewMockClient(ctrl)

	rule := categoryRule(500)

	client.EXPECT().
		GetRecord(gomock.Any(), "deal", int64(9), gomock.Any()).
		Return(dealRecord(9, 500, "1"), nil)

	o := newTestOrchestrator(t, client, &fakeDuty{ids: []int64{500}}, &fakeRules{rules: []models.AssignmentRule{rule}}, &fakeHistory{})
	res, err := o.AssignRecord(context.Background(),
		models.EntityTypeDeal, 9, time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC), models.SourceWebhook)
	require.NoError(t, err)

	assert.False(t, res.Assigned)
	assert.Contains(t, res.Reason, "already owned")
}

func TestPreview_ReportsWouldBeChanges(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := crmmock.NewMockClient(ctrl)

	rule := categoryRule(500)

	client.EXPECT().
		QueryRecords(gomock.Any(), "deal", gomock.Any()).
		Return([]crm.Record{
			dealRecord(1, 7, "1"),
			dealRecord(2, 500, "1"), // already owned, not reported
		}, nil)

	o := newTestOrchestrator(t, client, &fakeDuty{ids: []int64{500}}, &fakeRules{rules: []models.AssignmentRule{rule}}, &fakeHistory{})
	entries, err := o.Preview(context.Background(), time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, int64(1), entries[0].EntityID)
	assert.Equal(t, int64(7), entries[0].OldOwnerID)
	assert.Equal(t, int64(500), entries[0].NewOwnerID)
	assert.Equal(t, rule.ID.String(), entries[0].RuleID)
	assert.Empty(t, entries[0].Related)
}

func TestPreview_ListsPropagationTargets(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := crmmock.NewMockClient(ctrl)

	rule := categoryRule(500)
	rule.PropagateToRelated = true

	rec := crm.ParseRecord(map[string]any{
		"ID":             "1",
		"ASSIGNED_BY_ID": "7",
		"CATEGORY_ID":    "1",
		"STAGE_ID":       "C1:NEW",
		"COMPANY_ID":     "33",
	})

	client.EXPECT().
		QueryRecords(gomock.Any(), "deal", gomock.Any()).
		Return([]crm.Record{rec}, nil)
	client.EXPECT().GetDealContacts(gomock.Any(), int64(1)).Return([]int64{21, 22}, nil)

	o := newTestOrchestrator(t, client, &fakeDuty{ids: []int64{500}}, &fakeRules{rules: []models.AssignmentRule{rule}}, &fakeHistory{})
	entries, err := o.Preview(context.Background(), time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, []PreviewRelated{
		{EntityType: "contact", EntityID: 21},
		{EntityType: "contact", EntityID: 22},
		{EntityType: "company", EntityID: 33},
	}, entries[0].Related)
}

func TestRunSync_Summarizes(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := crmmock.NewMockClient(ctrl)

	rule := categoryRule(500)

	client.EXPECT().
		QueryRecords(gomock.Any(), "deal", gomock.Any()).
		Return([]crm.Record{dealRecord(1, 7, "1")}, nil)
	client.EXPECT().SetOwner(gomock.Any(), "deal", int64(1), int64(500)).Return(nil)

	o := newTestOrchestrator(t, client, &fakeDuty{ids: []int64{500}}, &fakeRules{rules: []models.AssignmentRule{rule}}, &fakeHistory{})
	summary, err := o.RunSync(context.Background(), RunOptions{
		Date:   time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		Mode:   ModeApply,
		Source: models.SourceScheduled,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.TotalRules)
	assert.Equal(t, 1, summary.ProcessedRules)
	assert.Equal(t, 1, summary.UpdatedEntities)
	assert.Empty(t, summary.Errors)
}
