package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"duty-assignment-backend/internal/api/handlers"
	"duty-assignment-backend/internal/database/models"
	"duty-assignment-backend/internal/mocks"
	"duty-assignment-backend/internal/service"
	"duty-assignment-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ScheduleHandlerTestSuite defines the test suite for ScheduleHandler
type ScheduleHandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	dutyDays     *mocks.MockDutyDayRepositoryInterface
	defaultUsers *mocks.MockDefaultUserRepositoryInterface
	crmUsers     *mocks.MockCrmUserRepositoryInterface
	http         *testutils.HTTPTestSuite
}

func (suite *ScheduleHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.dutyDays = mocks.NewMockDutyDayRepositoryInterface(suite.ctrl)
	suite.defaultUsers = mocks.NewMockDefaultUserRepositoryInterface(suite.ctrl)
	suite.crmUsers = mocks.NewMockCrmUserRepositoryInterface(suite.ctrl)

	scheduleService := service.NewScheduleService(suite.dutyDays, suite.defaultUsers, suite.crmUsers, time.UTC)
	handler := handlers.NewScheduleHandler(scheduleService)

	suite.http = testutils.SetupHTTPTest()
	suite.http.Router.GET("/schedule/:year/:month", handler.GetMonth)
	suite.http.Router.PUT("/schedule/days/:date", handler.SetDay)
	suite.http.Router.GET("/schedule/days/:date", handler.GetDay)
}

func (suite *ScheduleHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ScheduleHandlerTestSuite) TestGetMonth() {
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	suite.dutyDays.EXPECT().GetRange(gomock.Any(), gomock.Any()).Return([]models.DutyDay{
		{
			Date: date,
			Users: []models.DutyDayUser{
				{UserID: 10, User: models.CrmUser{ID: 10, Name: "Anna", LastName: "Ivanova", Active: true}},
			},
		},
	}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/schedule/2025/6", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.MonthScheduleResponse
	assert.NoError(suite.T(), testutils.DecodeJSON(w, &got))
	assert.Equal(suite.T(), 2025, got.Year)
	assert.Len(suite.T(), got.Days, 1)
	assert.Equal(suite.T(), "2025-06-02", got.Days[0].Date)
	assert.Equal(suite.T(), "Anna Ivanova", got.Days[0].Users[0].Name)
}

func (suite *ScheduleHandlerTestSuite) TestGetMonthInvalid() {
	w := suite.http.MakeRequest(http.MethodGet, "/schedule/2025/13", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ScheduleHandlerTestSuite) TestSetDayEmptyRemovesDay() {
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	suite.dutyDays.EXPECT().SetUsersForDate(date, gomock.Nil()).Return(nil, nil)

	w := suite.http.MakeRequest(http.MethodPut, "/schedule/days/2025-06-02", handlers.SetDayRequest{})

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func (suite *ScheduleHandlerTestSuite) TestSetDayBadDate() {
	w := suite.http.MakeRequest(http.MethodPut, "/schedule/days/junk", handlers.SetDayRequest{UserIDs: []int64{10}})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func TestScheduleHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ScheduleHandlerTestSuite))
}
