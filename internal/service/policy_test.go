package service_test

import (
	"errors"
	"testing"

	"expense-portal-backend/internal/database/models"
	apperrors "expense-portal-backend/internal/errors"
	"expense-portal-backend/internal/mocks"
	"expense-portal-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type PolicyServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockPolicyRepo     *mocks.MockPolicyRepositoryInterface
	mockCategoryRepo   *mocks.MockCategoryRepositoryInterface
	mockMembershipRepo *mocks.MockMembershipRepositoryInterface
	policyService      *service.PolicyService
	validator          *validator.Validate

	orgID      uuid.UUID
	adminID    uuid.UUID
	categoryID uuid.UUID
}

func (suite *PolicyServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPolicyRepo = mocks.NewMockPolicyRepositoryInterface(suite.ctrl)
	suite.mockCategoryRepo = mocks.NewMockCategoryRepositoryInterface(suite.ctrl)
	suite.mockMembershipRepo = mocks.NewMockMembershipRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.policyService = service.NewPolicyService(
		suite.mockPolicyRepo,
		suite.mockCategoryRepo,
		suite.mockMembershipRepo,
		suite.validator,
	)

	suite.orgID = uuid.New()
	suite.adminID = uuid.New()
	suite.categoryID = uuid.New()
}

func (suite *PolicyServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PolicyServiceTestSuite) expectRole(userID uuid.UUID, role models.MembershipRole) {
	suite.mockMembershipRepo.EXPECT().
		GetByOrgAndUser(suite.orgID, userID).
		Return(&models.OrganizationMembership{
			OrganizationID: suite.orgID,
			UserID:         userID,
			Role:           role,
		}, nil)
}

func (suite *PolicyServiceTestSuite) category() *models.ExpenseCategory {
	return &models.ExpenseCategory{
		BaseModel:      models.BaseModel{ID: suite.categoryID},
		OrganizationID: suite.orgID,
		Name:           "Travel",
	}
}

func (suite *PolicyServiceTestSuite) createRequest() *service.CreatePolicyRequest {
	return &service.CreatePolicyRequest{
		OrganizationID: suite.orgID,
		CategoryID:     suite.categoryID,
		MaxAmount:      50000,
		Period:         models.PolicyPeriodMonthly,
		AutoApprove:    true,
	}
}

func (suite *PolicyServiceTestSuite) TestCreate_OrgWide_Success() {
	suite.expectRole(suite.adminID, models.MembershipRoleAdmin)
	suite.mockCategoryRepo.EXPECT().GetByID(suite.categoryID).Return(suite.category(), nil)
	suite.mockPolicyRepo.EXPECT().
		FindOrganizationPolicy(suite.orgID, suite.categoryID).
		Return(nil, gorm.ErrRecordNotFound)
	suite.mockPolicyRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(p *models.Policy) error {
			p.ID = uuid.New()
			return nil
		})

	resp, err := suite.policyService.Create(suite.adminID, suite.createRequest())

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
	assert.Nil(suite.T(), resp.UserID)
	assert.Equal(suite.T(), int64(50000), resp.MaxAmount)
	assert.True(suite.T(), resp.AutoApprove)
}

func (suite *PolicyServiceTestSuite) TestCreate_UserSpecific_Success() {
	targetID := uuid.New()
	req := suite.createRequest()
	req.UserID = &targetID

	suite.expectRole(suite.adminID, models.MembershipRoleAdmin)
	suite.mockCategoryRepo.EXPECT().GetByID(suite.categoryID).Return(suite.category(), nil)
	suite.mockPolicyRepo.EXPECT().
		FindUserPolicy(suite.orgID, targetID, suite.categoryID).
		Return(nil, gorm.ErrRecordNotFound)
	suite.mockPolicyRepo.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.policyService.Create(suite.adminID, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp.UserID)
	assert.Equal(suite.T(), targetID, *resp.UserID)
}

func (suite *PolicyServiceTestSuite) TestCreate_NotAdmin() {
	memberID := uuid.New()
	suite.expectRole(memberID, models.MembershipRoleMember)

	resp, err := suite.policyService.Create(memberID, suite.createRequest())

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsAuthorization(err))
	assert.Equal(suite.T(), "Only admins can create policies", err.Error())
}

func (suite *PolicyServiceTestSuite) TestCreate_DuplicateScope() {
	suite.expectRole(suite.adminID, models.MembershipRoleAdmin)
	suite.mockCategoryRepo.EXPECT().GetByID(suite.categoryID).Return(suite.category(), nil)
	suite.mockPolicyRepo.EXPECT().
		FindOrganizationPolicy(suite.orgID, suite.categoryID).
		Return(&models.Policy{BaseModel: models.BaseModel{ID: uuid.New()}}, nil)

	resp, err := suite.policyService.Create(suite.adminID, suite.createRequest())

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrPolicyExists)
}

func (suite *PolicyServiceTestSuite) TestCreate_CategoryFromOtherOrganization() {
	suite.expectRole(suite.adminID, models.MembershipRoleAdmin)
	foreign := suite.category()
	foreign.OrganizationID = uuid.New()
	suite.mockCategoryRepo.EXPECT().GetByID(suite.categoryID).Return(foreign, nil)

	resp, err := suite.policyService.Create(suite.adminID, suite.createRequest())

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrCategoryNotInOrganization)
}

func (suite *PolicyServiceTestSuite) TestCreate_InvalidPeriod() {
	req := suite.createRequest()
	req.Period = "WEEKLY"

	resp, err := suite.policyService.Create(suite.adminID, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *PolicyServiceTestSuite) TestUpdate_Success() {
	policyID := uuid.New()
	existing := &models.Policy{
		BaseModel:      models.BaseModel{ID: policyID},
		OrganizationID: suite.orgID,
		CategoryID:     suite.categoryID,
		MaxAmount:      50000,
		Period:         models.PolicyPeriodMonthly,
	}
	updated := *existing
	updated.MaxAmount = 75000
	updated.Period = models.PolicyPeriodYearly
	updated.AutoApprove = true

	suite.mockPolicyRepo.EXPECT().GetByID(policyID).Return(existing, nil)
	suite.expectRole(suite.adminID, models.MembershipRoleAdmin)
	suite.mockPolicyRepo.EXPECT().Update(policyID, map[string]interface{}{
		"max_amount":   int64(75000),
		"period":       models.PolicyPeriodYearly,
		"auto_approve": true,
	}).Return(nil)
	suite.mockPolicyRepo.EXPECT().GetByID(policyID).Return(&updated, nil)

	resp, err := suite.policyService.Update(suite.adminID, policyID, &service.UpdatePolicyRequest{
		MaxAmount:   75000,
		Period:      models.PolicyPeriodYearly,
		AutoApprove: true,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(75000), resp.MaxAmount)
	assert.Equal(suite.T(), models.PolicyPeriodYearly, resp.Period)
}

func (suite *PolicyServiceTestSuite) TestUpdate_NotFound() {
	policyID := uuid.New()
	suite.mockPolicyRepo.EXPECT().GetByID(policyID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.policyService.Update(suite.adminID, policyID, &service.UpdatePolicyRequest{
		MaxAmount: 100,
		Period:    models.PolicyPeriodMonthly,
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrPolicyNotFound)
}

func (suite *PolicyServiceTestSuite) TestDelete_Success() {
	policyID := uuid.New()
	suite.mockPolicyRepo.EXPECT().GetByID(policyID).Return(&models.Policy{
		BaseModel:      models.BaseModel{ID: policyID},
		OrganizationID: suite.orgID,
	}, nil)
	suite.expectRole(suite.adminID, models.MembershipRoleAdmin)
	suite.mockPolicyRepo.EXPECT().Delete(policyID).Return(nil)

	err := suite.policyService.Delete(suite.adminID, policyID)

	assert.NoError(suite.T(), err)
}

func (suite *PolicyServiceTestSuite) TestDelete_NotAdmin() {
	policyID := uuid.New()
	memberID := uuid.New()
	suite.mockPolicyRepo.EXPECT().GetByID(policyID).Return(&models.Policy{
		BaseModel:      models.BaseModel{ID: policyID},
		OrganizationID: suite.orgID,
	}, nil)
	suite.expectRole(memberID, models.MembershipRoleMember)

	err := suite.policyService.Delete(memberID, policyID)

	assert.Error(suite.T(), err)
	assert.Equal(suite.T(), "Only admins can delete policies", err.Error())
}

func (suite *PolicyServiceTestSuite) TestList_Success() {
	memberID := uuid.New()
	suite.expectRole(memberID, models.MembershipRoleMember)
	suite.mockPolicyRepo.EXPECT().ListByOrganizationID(suite.orgID).Return([]models.Policy{
		{BaseModel: models.BaseModel{ID: uuid.New()}, OrganizationID: suite.orgID, MaxAmount: 100},
		{BaseModel: models.BaseModel{ID: uuid.New()}, OrganizationID: suite.orgID, MaxAmount: 200},
	}, nil)

	resp, err := suite.policyService.List(memberID, suite.orgID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp, 2)
}

func (suite *PolicyServiceTestSuite) TestList_RepositoryError() {
	memberID := uuid.New()
	suite.expectRole(memberID, models.MembershipRoleMember)
	suite.mockPolicyRepo.EXPECT().ListByOrganizationID(suite.orgID).Return(nil, errors.New("db failed"))

	resp, err := suite.policyService.List(memberID, suite.orgID)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.Contains(suite.T(), err.Error(), "failed to list policies")
}

func (suite *PolicyServiceTestSuite) TestDebug_UserPolicySelected() {
	memberID := uuid.New()
	targetID := uuid.New()
	userPolicy := &models.Policy{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: suite.orgID,
		CategoryID:     suite.categoryID,
		UserID:         &targetID,
		MaxAmount:      10000,
	}
	orgPolicy := &models.Policy{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: suite.orgID,
		CategoryID:     suite.categoryID,
		MaxAmount:      50000,
	}

	suite.expectRole(memberID, models.MembershipRoleMember)
	suite.mockCategoryRepo.EXPECT().GetByID(suite.categoryID).Return(suite.category(), nil)
	suite.mockPolicyRepo.EXPECT().
		FindUserPolicy(suite.orgID, targetID, suite.categoryID).
		Return(userPolicy, nil)
	suite.mockPolicyRepo.EXPECT().
		FindOrganizationPolicy(suite.orgID, suite.categoryID).
		Return(orgPolicy, nil)

	resp, err := suite.policyService.Debug(memberID, suite.orgID, targetID, suite.categoryID)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp.UserSpecificPolicy)
	assert.NotNil(suite.T(), resp.OrganizationPolicy)
	assert.Equal(suite.T(), userPolicy.ID, resp.SelectedPolicy.ID)
}

func (suite *PolicyServiceTestSuite) TestDebug_FallsBackToOrgPolicy() {
	memberID := uuid.New()
	targetID := uuid.New()
	orgPolicy := &models.Policy{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: suite.orgID,
		CategoryID:     suite.categoryID,
		MaxAmount:      50000,
	}

	suite.expectRole(memberID, models.MembershipRoleMember)
	suite.mockCategoryRepo.EXPECT().GetByID(suite.categoryID).Return(suite.category(), nil)
	suite.mockPolicyRepo.EXPECT().
		FindUserPolicy(suite.orgID, targetID, suite.categoryID).
		Return(nil, gorm.ErrRecordNotFound)
	suite.mockPolicyRepo.EXPECT().
		FindOrganizationPolicy(suite.orgID, suite.categoryID).
		Return(orgPolicy, nil)

	resp, err := suite.policyService.Debug(memberID, suite.orgID, targetID, suite.categoryID)

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), resp.UserSpecificPolicy)
	assert.Equal(suite.T(), orgPolicy.ID, resp.SelectedPolicy.ID)
}

func (suite *PolicyServiceTestSuite) TestDebug_NoPolicies() {
	memberID := uuid.New()
	targetID := uuid.New()

	suite.expectRole(memberID, models.MembershipRoleMember)
	suite.mockCategoryRepo.EXPECT().GetByID(suite.categoryID).Return(suite.category(), nil)
	suite.mockPolicyRepo.EXPECT().
		FindUserPolicy(suite.orgID, targetID, suite.categoryID).
		Return(nil, gorm.ErrRecordNotFound)
	suite.mockPolicyRepo.EXPECT().
		FindOrganizationPolicy(suite.orgID, suite.categoryID).
		Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.policyService.Debug(memberID, suite.orgID, targetID, suite.categoryID)

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), resp.UserSpecificPolicy)
	assert.Nil(suite.T(), resp.OrganizationPolicy)
	assert.Nil(suite.T(), resp.SelectedPolicy)
}

func TestPolicyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PolicyServiceTestSuite))
}
