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

type CategoryServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockCategoryRepo   *mocks.MockCategoryRepositoryInterface
	mockMembershipRepo *mocks.MockMembershipRepositoryInterface
	categoryService    *service.CategoryService
	validator          *validator.Validate

	orgID   uuid.UUID
	adminID uuid.UUID
}

func (suite *CategoryServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockCategoryRepo = mocks.NewMockCategoryRepositoryInterface(suite.ctrl)
	suite.mockMembershipRepo = mocks.NewMockMembershipRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.categoryService = service.NewCategoryService(
		suite.mockCategoryRepo,
		suite.mockMembershipRepo,
		suite.validator,
	)

	suite.orgID = uuid.New()
	suite.adminID = uuid.New()
}

func (suite *CategoryServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CategoryServiceTestSuite) expectRole(userID uuid.UUID, role models.MembershipRole) {
	suite.mockMembershipRepo.EXPECT().
		GetByOrgAndUser(suite.orgID, userID).
		Return(&models.OrganizationMembership{
			OrganizationID: suite.orgID,
			UserID:         userID,
			Role:           role,
		}, nil)
}

func (suite *CategoryServiceTestSuite) category(id uuid.UUID, name string) *models.ExpenseCategory {
	return &models.ExpenseCategory{
		BaseModel:      models.BaseModel{ID: id},
		OrganizationID: suite.orgID,
		Name:           name,
	}
}

func (suite *CategoryServiceTestSuite) TestCreate_Success() {
	suite.expectRole(suite.adminID, models.MembershipRoleAdmin)
	suite.mockCategoryRepo.EXPECT().
		GetByName(suite.orgID, "Travel").
		Return(nil, gorm.ErrRecordNotFound)
	suite.mockCategoryRepo.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.categoryService.Create(suite.adminID, &service.CreateCategoryRequest{
		OrganizationID: suite.orgID,
		Name:           "Travel",
		Description:    "Flights and hotels",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Travel", resp.Name)
	assert.Equal(suite.T(), suite.orgID, resp.OrganizationID)
}

func (suite *CategoryServiceTestSuite) TestCreate_DuplicateName() {
	suite.expectRole(suite.adminID, models.MembershipRoleAdmin)
	suite.mockCategoryRepo.EXPECT().
		GetByName(suite.orgID, "Travel").
		Return(suite.category(uuid.New(), "Travel"), nil)

	resp, err := suite.categoryService.Create(suite.adminID, &service.CreateCategoryRequest{
		OrganizationID: suite.orgID,
		Name:           "Travel",
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrCategoryExists)
}

func (suite *CategoryServiceTestSuite) TestCreate_NotAdmin() {
	memberID := uuid.New()
	suite.expectRole(memberID, models.MembershipRoleMember)

	resp, err := suite.categoryService.Create(memberID, &service.CreateCategoryRequest{
		OrganizationID: suite.orgID,
		Name:           "Travel",
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsAuthorization(err))
	assert.Equal(suite.T(), "Only admins can create categories", err.Error())
}

func (suite *CategoryServiceTestSuite) TestGetByID_NotFound() {
	categoryID := uuid.New()
	suite.mockCategoryRepo.EXPECT().GetByID(categoryID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.categoryService.GetByID(suite.adminID, categoryID)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrCategoryNotFound)
}

func (suite *CategoryServiceTestSuite) TestList_Success() {
	memberID := uuid.New()
	suite.expectRole(memberID, models.MembershipRoleMember)
	suite.mockCategoryRepo.EXPECT().ListByOrganizationID(suite.orgID).Return([]models.ExpenseCategory{
		*suite.category(uuid.New(), "Meals"),
		*suite.category(uuid.New(), "Travel"),
	}, nil)

	resp, err := suite.categoryService.List(memberID, suite.orgID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp, 2)
	assert.Equal(suite.T(), "Meals", resp[0].Name)
}

func (suite *CategoryServiceTestSuite) TestUpdate_RenameToExistingName() {
	categoryID := uuid.New()
	otherID := uuid.New()

	suite.mockCategoryRepo.EXPECT().GetByID(categoryID).Return(suite.category(categoryID, "Meals"), nil)
	suite.expectRole(suite.adminID, models.MembershipRoleAdmin)
	suite.mockCategoryRepo.EXPECT().
		GetByName(suite.orgID, "Travel").
		Return(suite.category(otherID, "Travel"), nil)

	resp, err := suite.categoryService.Update(suite.adminID, categoryID, &service.UpdateCategoryRequest{
		Name: "Travel",
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrCategoryExists)
}

func (suite *CategoryServiceTestSuite) TestUpdate_SameNameAllowed() {
	// Renaming a category to its own current name is not a conflict
	categoryID := uuid.New()
	existing := suite.category(categoryID, "Meals")

	suite.mockCategoryRepo.EXPECT().GetByID(categoryID).Return(existing, nil)
	suite.expectRole(suite.adminID, models.MembershipRoleAdmin)
	suite.mockCategoryRepo.EXPECT().GetByName(suite.orgID, "Meals").Return(existing, nil)
	suite.mockCategoryRepo.EXPECT().Update(categoryID, map[string]interface{}{
		"name":        "Meals",
		"description": "Updated description",
	}).Return(nil)
	suite.mockCategoryRepo.EXPECT().GetByID(categoryID).Return(existing, nil)

	resp, err := suite.categoryService.Update(suite.adminID, categoryID, &service.UpdateCategoryRequest{
		Name:        "Meals",
		Description: "Updated description",
	})

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
}

func (suite *CategoryServiceTestSuite) TestDelete_Success() {
	categoryID := uuid.New()
	suite.mockCategoryRepo.EXPECT().GetByID(categoryID).Return(suite.category(categoryID, "Meals"), nil)
	suite.expectRole(suite.adminID, models.MembershipRoleAdmin)
	suite.mockCategoryRepo.EXPECT().CountReferences(categoryID).Return(int64(0), nil)
	suite.mockCategoryRepo.EXPECT().Delete(categoryID).Return(nil)

	err := suite.categoryService.Delete(suite.adminID, categoryID)

	assert.NoError(suite.T(), err)
}

func (suite *CategoryServiceTestSuite) TestDelete_RestrictedWhileReferenced() {
	categoryID := uuid.New()
	suite.mockCategoryRepo.EXPECT().GetByID(categoryID).Return(suite.category(categoryID, "Meals"), nil)
	suite.expectRole(suite.adminID, models.MembershipRoleAdmin)
	suite.mockCategoryRepo.EXPECT().CountReferences(categoryID).Return(int64(3), nil)

	err := suite.categoryService.Delete(suite.adminID, categoryID)

	assert.Error(suite.T(), err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrCategoryInUse)
}

func (suite *CategoryServiceTestSuite) TestDelete_RepositoryError() {
	categoryID := uuid.New()
	suite.mockCategoryRepo.EXPECT().GetByID(categoryID).Return(suite.category(categoryID, "Meals"), nil)
	suite.expectRole(suite.adminID, models.MembershipRoleAdmin)
	suite.mockCategoryRepo.EXPECT().CountReferences(categoryID).Return(int64(0), errors.New("db failed"))

	err := suite.categoryService.Delete(suite.adminID, categoryID)

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "failed to count category references")
}

func TestCategoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}
