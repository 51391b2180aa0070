package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"duty-assignment-backend/internal/api/handlers"
	"duty-assignment-backend/internal/crm"
	"duty-assignment-backend/internal/crm/crmmock"
	"duty-assignment-backend/internal/database/models"
	"duty-assignment-backend/internal/engine"
	"duty-assignment-backend/internal/service"
	"duty-assignment-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type stubDuty struct {
	ids []int64
}

func (s stubDuty) DutyUserIDs(context.Context, time.Time) ([]int64, error) {
	return s.ids, nil
}

type stubRules struct {
	rules []models.AssignmentRule
}

func (s stubRules) EnabledRules(context.Context) ([]models.AssignmentRule, error) {
	return s.rules, nil
}

type stubHistory struct {
	entries []*models.AssignmentHistory
}

func (s *stubHistory) Append(_ context.Context, entry *models.AssignmentHistory) error {
	s.entries = append(s.entries, entry)
	return nil
}

type stubNames struct{}

func (stubNames) DisplayNames(context.Context, []int64) map[int64]string {
	return map[int64]string{}
}

// AssignmentHandlerTestSuite exercises the webhook path end to end through the
// HTTP layer, with only the CRM client mocked.
type AssignmentHandlerTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	crm     *crmmock.MockClient
	history *stubHistory
	rule    models.AssignmentRule
	http    *testutils.HTTPTestSuite
}

func (suite *AssignmentHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.crm = crmmock.NewMockClient(suite.ctrl)
	suite.history = &stubHistory{}

	suite.rule = models.AssignmentRule{
		BaseModel:       models.BaseModel{ID: uuid.New()},
		Name:            "New deals",
		EntityType:      models.EntityTypeDeal,
		RuleKind:        models.RuleKindByField,
		ConditionConfig: json.RawMessage(`{"field_id": "CATEGORY_ID", "category_ids": [1]}`),
		Enabled:         true,
		ScheduleTime:    "00:00",
		Distributions: []models.RuleDistribution{
			{UserID: 10, Percentage: 100},
		},
	}

	orchestrator := engine.NewOrchestrator(engine.Options{
		Crm:     suite.crm,
		Duty:    stubDuty{ids: []int64{10}},
		Rules:   stubRules{rules: []models.AssignmentRule{suite.rule}},
		History: suite.history,
		Names:   stubNames{},
		Gate:    engine.NewScheduleGate(time.UTC),
		Rng:     engine.NewLockedRNG(1),
		Workers: 1,
	})
	handler := handlers.NewAssignmentHandler(service.NewAssignmentService(orchestrator, time.UTC))

	suite.http = testutils.SetupHTTPTest()
	suite.http.Router.POST("/webhooks/crm", handler.Webhook)
}

func (suite *AssignmentHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func webhookForm(event string, recordID string) string {
	form := url.Values{}
	form.Set("event", event)
	form.Set("data[FIELDS][ID]", recordID)
	return form.Encode()
}

func (suite *AssignmentHandlerTestSuite) TestWebhookAssignsRecord() {
	suite.crm.EXPECT().
		GetRecord(gomock.Any(), "deal", int64(77), gomock.Any()).
		Return(crm.Record{
			ID:      77,
			OwnerID: 5,
			Fields:  map[string]string{"ID": "77", "ASSIGNED_BY_ID": "5", "CATEGORY_ID": "1"},
		}, nil)
	suite.crm.EXPECT().SetOwner(gomock.Any(), "deal", int64(77), int64(10)).Return(nil)

	w := suite.http.MakeFormRequest("/webhooks/crm", webhookForm("ONCRMDEALADD", "77"))

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got engine.SingleResult
	assert.NoError(suite.T(), testutils.DecodeJSON(w, &got))
	assert.True(suite.T(), got.Assigned)
	assert.Equal(suite.T(), int64(5), got.OldOwnerID)
	assert.Equal(suite.T(), int64(10), got.NewOwnerID)
	assert.Equal(suite.T(), suite.rule.ID.String(), got.RuleID)

	assert.Len(suite.T(), suite.history.entries, 1)
	assert.Equal(suite.T(), models.SourceWebhook, suite.history.entries[0].Source)
	assert.Equal(suite.T(), int64(77), suite.history.entries[0].EntityID)
}

func (suite *AssignmentHandlerTestSuite) TestWebhookNoMatchingRule() {
	suite.crm.EXPECT().
		GetRecord(gomock.Any(), "deal", int64(78), gomock.Any()).
		Return(crm.Record{
			ID:      78,
			OwnerID: 5,
			Fields:  map[string]string{"ID": "78", "ASSIGNED_BY_ID": "5", "CATEGORY_ID": "99"},
		}, nil)

	w := suite.http.MakeFormRequest("/webhooks/crm", webhookForm("ONCRMDEALUPDATE", "78"))

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got engine.SingleResult
	assert.NoError(suite.T(), testutils.DecodeJSON(w, &got))
	assert.False(suite.T(), got.Assigned)
	assert.Equal(suite.T(), "no matching rule", got.Reason)
	assert.Empty(suite.T(), suite.history.entries)
}

func (suite *AssignmentHandlerTestSuite) TestWebhookUnsupportedEvent() {
	w := suite.http.MakeFormRequest("/webhooks/crm", webhookForm("ONTASKADD", "77"))

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "unsupported CRM event")
}

func (suite *AssignmentHandlerTestSuite) TestWebhookBadRecordID() {
	w := suite.http.MakeFormRequest("/webhooks/crm", webhookForm("ONCRMDEALADD", "abc"))

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func TestAssignmentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentHandlerTestSuite))
}

// signalHistory records appends and signals each one, for tests that observe
// writes made by the engine's run goroutine.
type signalHistory struct {
	mu      sync.Mutex
	entries []*models.AssignmentHistory
	added   chan struct{}
}

func (s *signalHistory) Append(_ context.Context, entry *models.AssignmentHistory) error {
	s.mu.Lock()
	s.entries = append(s.entries, entry)
	s.mu.Unlock()
	s.added <- struct{}{}
	return nil
}

func (s *signalHistory) all() []*models.AssignmentHistory {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*models.AssignmentHistory(nil), s.entries...)
}

// A client dropping the SSE connection mid-run must not abort the run: the
// engine keeps applying changes and recording history server-side. Needs a
// real server because gin's stream helper watches the connection state.
func TestRun_SurvivesClientDisconnect(t *testing.T) {
	ctrl := gomock.NewController(t)
	crmClient := crmmock.NewMockClient(ctrl)
	history := &signalHistory{added: make(chan struct{}, 4)}

	rule := models.AssignmentRule{
		BaseModel:       models.BaseModel{ID: uuid.New()},
		Name:            "New deals",
		EntityType:      models.EntityTypeDeal,
		RuleKind:        models.RuleKindByField,
		ConditionConfig: json.RawMessage(`{"field_id": "CATEGORY_ID", "category_ids": [1]}`),
		Enabled:         true,
		ScheduleTime:    "00:00",
		Distributions: []models.RuleDistribution{
			{UserID: 10, Percentage: 100},
		},
	}

	orchestrator := engine.NewOrchestrator(engine.Options{
		Crm:     crmClient,
		Duty:    stubDuty{ids: []int64{10}},
		Rules:   stubRules{rules: []models.AssignmentRule{rule}},
		History: history,
		Names:   stubNames{},
		Gate:    engine.NewScheduleGate(time.UTC),
		Rng:     engine.NewLockedRNG(1),
		Workers: 1,
	})
	handler := handlers.NewAssignmentHandler(service.NewAssignmentService(orchestrator, time.UTC))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/assignments/run", handler.Run)
	srv := httptest.NewServer(router)
	defer srv.Close()

	queried := make(chan struct{})
	release := make(chan struct{})
	crmClient.EXPECT().
		QueryRecords(gomock.Any(), "deal", gomock.Any()).
		DoAndReturn(func(context.Context, string, crm.Query) ([]crm.Record, error) {
			close(queried)
			<-release
			return []crm.Record{{
				ID:      77,
				OwnerID: 5,
				Fields:  map[string]string{"ID": "77", "ASSIGNED_BY_ID": "5", "CATEGORY_ID": "1"},
			}}, nil
		})
	crmClient.EXPECT().SetOwner(gomock.Any(), "deal", int64(77), int64(10)).Return(nil)

	reqCtx, cancelReq := context.WithCancel(context.Background())
	defer cancelReq()
	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, srv.URL+"/assignments/run?date=2025-06-02", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	select {
	case <-queried:
	case <-time.After(2 * time.Second):
		t.Fatal("run never reached the record listing")
	}

	// Drop the connection while the engine is still listing records.
	cancelReq()
	resp.Body.Close()
	close(release)

	select {
	case <-history.added:
	case <-time.After(2 * time.Second):
		t.Fatal("run did not record the change after the client disconnected")
	}

	entries := history.all()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(77), entries[0].EntityID)
	assert.Equal(t, int64(10), entries[0].NewOwnerID)
	assert.Equal(t, models.SourceManual, entries[0].Source)
}
