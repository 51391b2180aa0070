//go:build integration
// +build integration

package repository

import (
	"testing"

	"duty-assignment-backend/internal/database/models"
	"duty-assignment-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// RuleRepositoryTestSuite tests the RuleRepository
type RuleRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *RuleRepository
	users         *CrmUserRepository
	factories     *testutils.FactorySet
}

func (suite *RuleRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewRuleRepository(suite.baseTestSuite.DB)
	suite.users = NewCrmUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *RuleRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *RuleRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.NoError(suite.users.UpsertAll([]models.CrmUser{
		*suite.factories.CrmUser.WithID(10),
		*suite.factories.CrmUser.WithID(20),
		*suite.factories.CrmUser.WithID(30),
	}))
}

func (suite *RuleRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *RuleRepositoryTestSuite) TestCreateAndGetByID() {
	rule := suite.factories.Rule.Create()
	suite.factories.Rule.WithDistribution(rule, 10, 60)
	suite.factories.Rule.WithDistribution(rule, 20, 40)

	suite.NoError(suite.repo.Create(rule))

	got, err := suite.repo.GetByID(rule.ID)
	suite.NoError(err)
	suite.Equal(rule.Name, got.Name)
	suite.Len(got.Distributions, 2)
	suite.ElementsMatch([]int64{10, 20}, got.DistributionUserIDs())
}

func (suite *RuleRepositoryTestSuite) TestGetEnabledSkipsDisabled() {
	enabled := suite.factories.Rule.Create()
	suite.factories.Rule.WithDistribution(enabled, 10, 100)
	suite.NoError(suite.repo.Create(enabled))

	disabled := suite.factories.Rule.Create()
	disabled.Enabled = false
	suite.factories.Rule.WithDistribution(disabled, 20, 100)
	suite.NoError(suite.repo.Create(disabled))

	rules, err := suite.repo.GetEnabled()
	suite.NoError(err)
	suite.Len(rules, 1)
	suite.Equal(enabled.ID, rules[0].ID)
	suite.Len(rules[0].Distributions, 1)
}

func (suite *RuleRepositoryTestSuite) TestGetAllOrdersByPriority() {
	second := suite.factories.Rule.Create()
	second.Priority = 5
	suite.NoError(suite.repo.Create(second))

	first := suite.factories.Rule.Create()
	first.Priority = 1
	suite.NoError(suite.repo.Create(first))

	rules, total, err := suite.repo.GetAll(10, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Equal(first.ID, rules[0].ID)
	suite.Equal(second.ID, rules[1].ID)
}

func (suite *RuleRepositoryTestSuite) TestReplaceDistributions() {
	rule := suite.factories.Rule.Create()
	suite.factories.Rule.WithDistribution(rule, 10, 100)
	suite.NoError(suite.repo.Create(rule))

	suite.NoError(suite.repo.ReplaceDistributions(rule.ID, []models.RuleDistribution{
		{UserID: 20, Percentage: 70},
		{UserID: 30, Percentage: 30},
	}))

	got, err := suite.repo.GetByID(rule.ID)
	suite.NoError(err)
	suite.ElementsMatch([]int64{20, 30}, got.DistributionUserIDs())
}

func (suite *RuleRepositoryTestSuite) TestDeleteCascadesDistributions() {
	rule := suite.factories.Rule.Create()
	suite.factories.Rule.WithDistribution(rule, 10, 100)
	suite.NoError(suite.repo.Create(rule))

	suite.NoError(suite.repo.Delete(rule.ID))

	_, err := suite.repo.GetByID(rule.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	var count int64
	suite.NoError(suite.baseTestSuite.DB.
		Model(&models.RuleDistribution{}).
		Where("rule_id = ?", rule.ID).
		Count(&count).Error)
	suite.Zero(count)
}

func (suite *RuleRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestRuleRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RuleRepositoryTestSuite))
}
