package service_test

import (
	"errors"
	"testing"
	"time"

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

type ExpenseServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockExpenseRepo    *mocks.MockExpenseRepositoryInterface
	mockCategoryRepo   *mocks.MockCategoryRepositoryInterface
	mockPolicyRepo     *mocks.MockPolicyRepositoryInterface
	mockMembershipRepo *mocks.MockMembershipRepositoryInterface
	expenseService     *service.ExpenseService
	validator          *validator.Validate

	orgID      uuid.UUID
	userID     uuid.UUID
	categoryID uuid.UUID
}

func (suite *ExpenseServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockExpenseRepo = mocks.NewMockExpenseRepositoryInterface(suite.ctrl)
	suite.mockCategoryRepo = mocks.NewMockCategoryRepositoryInterface(suite.ctrl)
	suite.mockPolicyRepo = mocks.NewMockPolicyRepositoryInterface(suite.ctrl)
	suite.mockMembershipRepo = mocks.NewMockMembershipRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.expenseService = service.NewExpenseService(
		suite.mockExpenseRepo,
		suite.mockCategoryRepo,
		suite.mockPolicyRepo,
		suite.mockMembershipRepo,
		suite.validator,
	)

	suite.orgID = uuid.New()
	suite.userID = uuid.New()
	suite.categoryID = uuid.New()
}

func (suite *ExpenseServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ExpenseServiceTestSuite) submitRequest(amount int64) *service.SubmitExpenseRequest {
	return &service.SubmitExpenseRequest{
		OrganizationID: suite.orgID,
		CategoryID:     suite.categoryID,
		Amount:         amount,
		Date:           time.Now().Add(-24 * time.Hour),
		Description:    "Team lunch",
	}
}

func (suite *ExpenseServiceTestSuite) membership(role models.MembershipRole) *models.OrganizationMembership {
	return &models.OrganizationMembership{
		OrganizationID: suite.orgID,
		UserID:         suite.userID,
		Role:           role,
	}
}

func (suite *ExpenseServiceTestSuite) category() *models.ExpenseCategory {
	return &models.ExpenseCategory{
		BaseModel:      models.BaseModel{ID: suite.categoryID},
		OrganizationID: suite.orgID,
		Name:           "Meals",
	}
}

func (suite *ExpenseServiceTestSuite) orgPolicy(maxAmount int64, autoApprove bool) *models.Policy {
	return &models.Policy{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: suite.orgID,
		CategoryID:     suite.categoryID,
		UserID:         nil,
		MaxAmount:      maxAmount,
		Period:         models.PolicyPeriodMonthly,
		AutoApprove:    autoApprove,
	}
}

func (suite *ExpenseServiceTestSuite) userPolicy(maxAmount int64, autoApprove bool) *models.Policy {
	userID := suite.userID
	policy := suite.orgPolicy(maxAmount, autoApprove)
	policy.UserID = &userID
	return policy
}

// expectSubmitGuards wires the membership and category checks every successful
// submission passes through.
func (suite *ExpenseServiceTestSuite) expectSubmitGuards() {
	suite.mockMembershipRepo.EXPECT().
		GetByOrgAndUser(suite.orgID, suite.userID).
		Return(suite.membership(models.MembershipRoleMember), nil)
	suite.mockCategoryRepo.EXPECT().
		GetByID(suite.categoryID).
		Return(suite.category(), nil)
}

// captureWrite records the expense and review handed to the repository so the
// test can assert on the adjudication outcome.
func (suite *ExpenseServiceTestSuite) captureWrite(expense **models.Expense, review **models.ExpenseReview) {
	suite.mockExpenseRepo.EXPECT().
		CreateWithReview(gomock.Any(), gomock.Any()).
		DoAndReturn(func(e *models.Expense, r *models.ExpenseReview) error {
			*expense = e
			*review = r
			return nil
		})
}

func (suite *ExpenseServiceTestSuite) TestSubmit_NoPolicy_Submitted() {
	suite.expectSubmitGuards()
	suite.mockPolicyRepo.EXPECT().
		FindUserPolicy(suite.orgID, suite.userID, suite.categoryID).
		Return(nil, gorm.ErrRecordNotFound)
	suite.mockPolicyRepo.EXPECT().
		FindOrganizationPolicy(suite.orgID, suite.categoryID).
		Return(nil, gorm.ErrRecordNotFound)

	var expense *models.Expense
	var review *models.ExpenseReview
	suite.captureWrite(&expense, &review)

	resp, err := suite.expenseService.Submit(suite.userID, suite.submitRequest(10000))

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
	assert.Equal(suite.T(), models.ExpenseStatusSubmitted, resp.Expense.Status)
	assert.Equal(suite.T(), "Expense submitted for review (no policy found)", resp.Message)
	assert.Equal(suite.T(), models.ExpenseStatusSubmitted, review.Status)
	assert.Equal(suite.T(), "No policy found - defaulting to manual review", review.Comment)
	assert.Equal(suite.T(), suite.userID, review.ReviewerID)
}

func (suite *ExpenseServiceTestSuite) TestSubmit_WithinLimitAutoApprove_Approved() {
	suite.expectSubmitGuards()
	suite.mockPolicyRepo.EXPECT().
		FindUserPolicy(suite.orgID, suite.userID, suite.categoryID).
		Return(nil, gorm.ErrRecordNotFound)
	suite.mockPolicyRepo.EXPECT().
		FindOrganizationPolicy(suite.orgID, suite.categoryID).
		Return(suite.orgPolicy(50000, true), nil)

	var expense *models.Expense
	var review *models.ExpenseReview
	suite.captureWrite(&expense, &review)

	resp, err := suite.expenseService.Submit(suite.userID, suite.submitRequest(30000))

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ExpenseStatusApproved, resp.Expense.Status)
	assert.Equal(suite.T(), "Expense auto-approved", resp.Message)
	assert.Equal(suite.T(), "Auto-approved by policy", review.Comment)
}

func (suite *ExpenseServiceTestSuite) TestSubmit_WithinLimitNoAutoApprove_Submitted() {
	suite.expectSubmitGuards()
	suite.mockPolicyRepo.EXPECT().
		FindUserPolicy(suite.orgID, suite.userID, suite.categoryID).
		Return(nil, gorm.ErrRecordNotFound)
	suite.mockPolicyRepo.EXPECT().
		FindOrganizationPolicy(suite.orgID, suite.categoryID).
		Return(suite.orgPolicy(50000, false), nil)

	var expense *models.Expense
	var review *models.ExpenseReview
	suite.captureWrite(&expense, &review)

	resp, err := suite.expenseService.Submit(suite.userID, suite.submitRequest(30000))

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ExpenseStatusSubmitted, resp.Expense.Status)
	assert.Equal(suite.T(), "Expense submitted for review", resp.Message)
	assert.Equal(suite.T(), "Awaiting manual review", review.Comment)
}

func (suite *ExpenseServiceTestSuite) TestSubmit_OverLimit_RejectedEvenWithAutoApprove() {
	// Rejection takes precedence over the auto-approve flag
	suite.expectSubmitGuards()
	suite.mockPolicyRepo.EXPECT().
		FindUserPolicy(suite.orgID, suite.userID, suite.categoryID).
		Return(nil, gorm.ErrRecordNotFound)
	suite.mockPolicyRepo.EXPECT().
		FindOrganizationPolicy(suite.orgID, suite.categoryID).
		Return(suite.orgPolicy(50000, true), nil)

	var expense *models.Expense
	var review *models.ExpenseReview
	suite.captureWrite(&expense, &review)

	resp, err := suite.expenseService.Submit(suite.userID, suite.submitRequest(50001))

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ExpenseStatusRejected, resp.Expense.Status)
	assert.Equal(suite.T(), "Expense auto-rejected: amount exceeds limit of 50000", resp.Message)
	assert.Equal(suite.T(), "Amount exceeds policy limit of 50000", review.Comment)
}

func (suite *ExpenseServiceTestSuite) TestSubmit_ExactlyAtLimit_NotRejected() {
	// The limit is inclusive: amount == max_amount is within policy
	suite.expectSubmitGuards()
	suite.mockPolicyRepo.EXPECT().
		FindUserPolicy(suite.orgID, suite.userID, suite.categoryID).
		Return(nil, gorm.ErrRecordNotFound)
	suite.mockPolicyRepo.EXPECT().
		FindOrganizationPolicy(suite.orgID, suite.categoryID).
		Return(suite.orgPolicy(50000, true), nil)

	var expense *models.Expense
	var review *models.ExpenseReview
	suite.captureWrite(&expense, &review)

	resp, err := suite.expenseService.Submit(suite.userID, suite.submitRequest(50000))

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ExpenseStatusApproved, resp.Expense.Status)
}

func (suite *ExpenseServiceTestSuite) TestSubmit_UserPolicyOverridesOrgPolicy() {
	// Org-wide policy would approve, but the stricter user-specific policy
	// wins unconditionally and rejects.
	suite.expectSubmitGuards()
	suite.mockPolicyRepo.EXPECT().
		FindUserPolicy(suite.orgID, suite.userID, suite.categoryID).
		Return(suite.userPolicy(10000, false), nil)
	suite.mockPolicyRepo.EXPECT().
		FindOrganizationPolicy(suite.orgID, suite.categoryID).
		Return(suite.orgPolicy(100000, true), nil)

	var expense *models.Expense
	var review *models.ExpenseReview
	suite.captureWrite(&expense, &review)

	resp, err := suite.expenseService.Submit(suite.userID, suite.submitRequest(30000))

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ExpenseStatusRejected, resp.Expense.Status)
	assert.Equal(suite.T(), "Amount exceeds policy limit of 10000", review.Comment)
}

func (suite *ExpenseServiceTestSuite) TestSubmit_UserPolicyLooserThanOrgPolicy() {
	// Precedence is absolute, not most-restrictive: a looser user policy also wins
	suite.expectSubmitGuards()
	suite.mockPolicyRepo.EXPECT().
		FindUserPolicy(suite.orgID, suite.userID, suite.categoryID).
		Return(suite.userPolicy(100000, true), nil)
	suite.mockPolicyRepo.EXPECT().
		FindOrganizationPolicy(suite.orgID, suite.categoryID).
		Return(suite.orgPolicy(10000, false), nil)

	var expense *models.Expense
	var review *models.ExpenseReview
	suite.captureWrite(&expense, &review)

	resp, err := suite.expenseService.Submit(suite.userID, suite.submitRequest(30000))

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ExpenseStatusApproved, resp.Expense.Status)
}

func (suite *ExpenseServiceTestSuite) TestSubmit_StatusPersistedAtomically() {
	suite.expectSubmitGuards()
	suite.mockPolicyRepo.EXPECT().
		FindUserPolicy(suite.orgID, suite.userID, suite.categoryID).
		Return(nil, gorm.ErrRecordNotFound)
	suite.mockPolicyRepo.EXPECT().
		FindOrganizationPolicy(suite.orgID, suite.categoryID).
		Return(suite.orgPolicy(50000, true), nil)

	var expense *models.Expense
	var review *models.ExpenseReview
	suite.captureWrite(&expense, &review)

	_, err := suite.expenseService.Submit(suite.userID, suite.submitRequest(30000))

	assert.NoError(suite.T(), err)
	// The expense row and its audit entry carry the same decided status
	assert.Equal(suite.T(), expense.Status, review.Status)
	assert.Equal(suite.T(), suite.orgID, expense.OrganizationID)
	assert.Equal(suite.T(), suite.userID, expense.UserID)
	assert.Equal(suite.T(), int64(30000), expense.Amount)
}

func (suite *ExpenseServiceTestSuite) TestSubmit_NotMember() {
	suite.mockMembershipRepo.EXPECT().
		GetByOrgAndUser(suite.orgID, suite.userID).
		Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.expenseService.Submit(suite.userID, suite.submitRequest(10000))

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotOrganizationMember)
}

func (suite *ExpenseServiceTestSuite) TestSubmit_CategoryFromOtherOrganization() {
	suite.mockMembershipRepo.EXPECT().
		GetByOrgAndUser(suite.orgID, suite.userID).
		Return(suite.membership(models.MembershipRoleMember), nil)

	foreign := suite.category()
	foreign.OrganizationID = uuid.New()
	suite.mockCategoryRepo.EXPECT().GetByID(suite.categoryID).Return(foreign, nil)

	resp, err := suite.expenseService.Submit(suite.userID, suite.submitRequest(10000))

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	// Cross-tenant references surface as not-found, never as forbidden
	assert.ErrorIs(suite.T(), err, apperrors.ErrCategoryNotInOrganization)
}

func (suite *ExpenseServiceTestSuite) TestSubmit_CategoryMissing() {
	suite.mockMembershipRepo.EXPECT().
		GetByOrgAndUser(suite.orgID, suite.userID).
		Return(suite.membership(models.MembershipRoleMember), nil)
	suite.mockCategoryRepo.EXPECT().
		GetByID(suite.categoryID).
		Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.expenseService.Submit(suite.userID, suite.submitRequest(10000))

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrCategoryNotInOrganization)
}

func (suite *ExpenseServiceTestSuite) TestSubmit_FutureDate() {
	req := suite.submitRequest(10000)
	req.Date = time.Now().Add(48 * time.Hour)

	resp, err := suite.expenseService.Submit(suite.userID, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrExpenseDateInFuture)
}

func (suite *ExpenseServiceTestSuite) TestSubmit_NonPositiveAmount() {
	req := suite.submitRequest(10000)
	req.Amount = 0

	resp, err := suite.expenseService.Submit(suite.userID, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

func (suite *ExpenseServiceTestSuite) TestSubmit_RepositoryError() {
	suite.expectSubmitGuards()
	suite.mockPolicyRepo.EXPECT().
		FindUserPolicy(suite.orgID, suite.userID, suite.categoryID).
		Return(nil, gorm.ErrRecordNotFound)
	suite.mockPolicyRepo.EXPECT().
		FindOrganizationPolicy(suite.orgID, suite.categoryID).
		Return(nil, gorm.ErrRecordNotFound)
	suite.mockExpenseRepo.EXPECT().
		CreateWithReview(gomock.Any(), gomock.Any()).
		Return(errors.New("db failed"))

	resp, err := suite.expenseService.Submit(suite.userID, suite.submitRequest(10000))

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.Contains(suite.T(), err.Error(), "failed to create expense")
}

func (suite *ExpenseServiceTestSuite) TestList_Success() {
	suite.mockMembershipRepo.EXPECT().
		GetByOrgAndUser(suite.orgID, suite.userID).
		Return(suite.membership(models.MembershipRoleMember), nil)

	expenses := []models.Expense{
		{
			BaseModel:      models.BaseModel{ID: uuid.New()},
			OrganizationID: suite.orgID,
			UserID:         suite.userID,
			CategoryID:     suite.categoryID,
			Amount:         12500,
			Description:    "Team lunch",
			Status:         models.ExpenseStatusApproved,
		},
	}
	suite.mockExpenseRepo.EXPECT().
		ListByOrganizationID(suite.orgID, (*uuid.UUID)(nil)).
		Return(expenses, nil)

	resp, err := suite.expenseService.List(suite.userID, suite.orgID, nil)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp, 1)
	assert.Equal(suite.T(), int64(12500), resp[0].Amount)
	assert.Equal(suite.T(), models.ExpenseStatusApproved, resp[0].Status)
}

func (suite *ExpenseServiceTestSuite) TestList_FilteredBySubmitter() {
	filterID := uuid.New()
	suite.mockMembershipRepo.EXPECT().
		GetByOrgAndUser(suite.orgID, suite.userID).
		Return(suite.membership(models.MembershipRoleMember), nil)
	suite.mockExpenseRepo.EXPECT().
		ListByOrganizationID(suite.orgID, &filterID).
		Return([]models.Expense{}, nil)

	resp, err := suite.expenseService.List(suite.userID, suite.orgID, &filterID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp, 0)
}

func (suite *ExpenseServiceTestSuite) TestList_NotMember() {
	suite.mockMembershipRepo.EXPECT().
		GetByOrgAndUser(suite.orgID, suite.userID).
		Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.expenseService.List(suite.userID, suite.orgID, nil)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotOrganizationMember)
}

func (suite *ExpenseServiceTestSuite) TestListForReview_Success() {
	suite.mockMembershipRepo.EXPECT().
		GetByOrgAndUser(suite.orgID, suite.userID).
		Return(suite.membership(models.MembershipRoleMember), nil)

	expenses := []models.Expense{
		{
			BaseModel:      models.BaseModel{ID: uuid.New()},
			OrganizationID: suite.orgID,
			Status:         models.ExpenseStatusSubmitted,
		},
		{
			BaseModel:      models.BaseModel{ID: uuid.New()},
			OrganizationID: suite.orgID,
			Status:         models.ExpenseStatusSubmitted,
		},
	}
	suite.mockExpenseRepo.EXPECT().ListSubmitted(suite.orgID).Return(expenses, nil)

	resp, err := suite.expenseService.ListForReview(suite.userID, suite.orgID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp, 2)
	assert.Equal(suite.T(), models.ExpenseStatusSubmitted, resp[0].Status)
}

func (suite *ExpenseServiceTestSuite) TestGetByID_Success() {
	expenseID := uuid.New()
	expense := &models.Expense{
		BaseModel:      models.BaseModel{ID: expenseID},
		OrganizationID: suite.orgID,
		UserID:         suite.userID,
		CategoryID:     suite.categoryID,
		Amount:         9900,
		Status:         models.ExpenseStatusRejected,
		Reviews: []models.ExpenseReview{
			{
				BaseModel:  models.BaseModel{ID: uuid.New()},
				ExpenseID:  expenseID,
				ReviewerID: suite.userID,
				Status:     models.ExpenseStatusRejected,
				Comment:    "Amount exceeds policy limit of 5000",
			},
		},
	}
	suite.mockExpenseRepo.EXPECT().GetWithReviews(expenseID).Return(expense, nil)
	suite.mockMembershipRepo.EXPECT().
		GetByOrgAndUser(suite.orgID, suite.userID).
		Return(suite.membership(models.MembershipRoleMember), nil)

	resp, err := suite.expenseService.GetByID(suite.userID, expenseID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), expenseID, resp.Expense.ID)
	assert.Len(suite.T(), resp.Reviews, 1)
	assert.Equal(suite.T(), "Amount exceeds policy limit of 5000", resp.Reviews[0].Comment)
}

func (suite *ExpenseServiceTestSuite) TestGetByID_NotFound() {
	expenseID := uuid.New()
	suite.mockExpenseRepo.EXPECT().GetWithReviews(expenseID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.expenseService.GetByID(suite.userID, expenseID)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrExpenseNotFound)
}

func (suite *ExpenseServiceTestSuite) TestGetByID_CallerNotMemberOfOwningOrg() {
	expenseID := uuid.New()
	expense := &models.Expense{
		BaseModel:      models.BaseModel{ID: expenseID},
		OrganizationID: suite.orgID,
	}
	suite.mockExpenseRepo.EXPECT().GetWithReviews(expenseID).Return(expense, nil)
	suite.mockMembershipRepo.EXPECT().
		GetByOrgAndUser(suite.orgID, suite.userID).
		Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.expenseService.GetByID(suite.userID, expenseID)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotOrganizationMember)
}

func TestExpenseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}
