package handlers_test

import (
	"net/http"
	"testing"

	"duty-assignment-backend/internal/api/handlers"
	"duty-assignment-backend/internal/database/models"
	"duty-assignment-backend/internal/mocks"
	"duty-assignment-backend/internal/service"
	"duty-assignment-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// RuleHandlerTestSuite defines the test suite for RuleHandler
type RuleHandlerTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	repo     *mocks.MockRuleRepositoryInterface
	crmUsers *mocks.MockCrmUserRepositoryInterface
	http     *testutils.HTTPTestSuite
}

func (suite *RuleHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.repo = mocks.NewMockRuleRepositoryInterface(suite.ctrl)
	suite.crmUsers = mocks.NewMockCrmUserRepositoryInterface(suite.ctrl)

	ruleService := service.NewRuleService(suite.repo, suite.crmUsers, validator.New(), false)
	handler := handlers.NewRuleHandler(ruleService)

	suite.http = testutils.SetupHTTPTest()
	suite.http.Router.GET("/rules", handler.ListRules)
	suite.http.Router.POST("/rules", handler.CreateRule)
	suite.http.Router.GET("/rules/:id", handler.GetRule)
	suite.http.Router.DELETE("/rules/:id", handler.DeleteRule)
}

func (suite *RuleHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *RuleHandlerTestSuite) TestListRules() {
	suite.repo.EXPECT().GetAll(50, 0).Return([]models.AssignmentRule{
		{
			BaseModel:  models.BaseModel{ID: uuid.New()},
			Name:       "New deals",
			EntityType: models.EntityTypeDeal,
			RuleKind:   models.RuleKindByField,
			Enabled:    true,
		},
	}, int64(1), nil)

	w := suite.http.MakeRequest(http.MethodGet, "/rules", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.RuleListResponse
	assert.NoError(suite.T(), testutils.DecodeJSON(w, &got))
	assert.Equal(suite.T(), int64(1), got.Total)
	assert.Len(suite.T(), got.Rules, 1)
	assert.Equal(suite.T(), "New deals", got.Rules[0].Name)
}

func (suite *RuleHandlerTestSuite) TestListRulesBadPagination() {
	w := suite.http.MakeRequest(http.MethodGet, "/rules?page=0", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *RuleHandlerTestSuite) TestCreateRuleInvalidDistribution() {
	body := map[string]interface{}{
		"name":             "Overweight",
		"entity_type":      "deal",
		"rule_kind":        "by_field",
		"condition_config": map[string]interface{}{"field_id": "CATEGORY_ID", "category_ids": []int{1}},
		"schedule_time":    "09:00",
		"distributions": []map[string]interface{}{
			{"user_id": 10, "percentage": 60},
			{"user_id": 20, "percentage": 50},
		},
	}

	w := suite.http.MakeRequest(http.MethodPost, "/rules", body)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "exceed 100")
}

func (suite *RuleHandlerTestSuite) TestGetRuleInvalidID() {
	w := suite.http.MakeRequest(http.MethodGet, "/rules/not-a-uuid", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *RuleHandlerTestSuite) TestGetRuleNotFound() {
	id := uuid.New()
	suite.repo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	w := suite.http.MakeRequest(http.MethodGet, "/rules/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *RuleHandlerTestSuite) TestDeleteRule() {
	id := uuid.New()
	suite.repo.EXPECT().GetByID(id).Return(&models.AssignmentRule{
		BaseModel: models.BaseModel{ID: id},
	}, nil)
	suite.repo.EXPECT().Delete(id).Return(nil)

	w := suite.http.MakeRequest(http.MethodDelete, "/rules/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func TestRuleHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RuleHandlerTestSuite))
}
