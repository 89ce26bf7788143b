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

type OrganizationServiceTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockOrgRepo         *mocks.MockOrganizationRepositoryInterface
	mockUserRepo        *mocks.MockUserRepositoryInterface
	mockMembershipRepo  *mocks.MockMembershipRepositoryInterface
	organizationService *service.OrganizationService
	validator           *validator.Validate

	orgID   uuid.UUID
	adminID uuid.UUID
}

func (suite *OrganizationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockOrgRepo = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockMembershipRepo = mocks.NewMockMembershipRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.organizationService = service.NewOrganizationService(
		suite.mockOrgRepo,
		suite.mockUserRepo,
		suite.mockMembershipRepo,
		suite.validator,
	)

	suite.orgID = uuid.New()
	suite.adminID = uuid.New()
}

func (suite *OrganizationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *OrganizationServiceTestSuite) expectRole(userID uuid.UUID, role models.MembershipRole) {
	suite.mockMembershipRepo.EXPECT().
		GetByOrgAndUser(suite.orgID, userID).
		Return(&models.OrganizationMembership{
			OrganizationID: suite.orgID,
			UserID:         userID,
			Role:           role,
		}, nil)
}

func (suite *OrganizationServiceTestSuite) TestCreate_CreatorBecomesAdmin() {
	suite.mockOrgRepo.EXPECT().
		CreateWithAdmin(gomock.Any(), suite.adminID).
		DoAndReturn(func(org *models.Organization, creatorID uuid.UUID) error {
			org.ID = suite.orgID
			return nil
		})

	resp, err := suite.organizationService.Create(suite.adminID, &service.CreateOrganizationRequest{
		Name: "Acme Corp",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Acme Corp", resp.Name)
	assert.NotNil(suite.T(), resp.CurrentUserRole)
	assert.Equal(suite.T(), models.MembershipRoleAdmin, *resp.CurrentUserRole)
}

func (suite *OrganizationServiceTestSuite) TestCreate_EmptyName() {
	resp, err := suite.organizationService.Create(suite.adminID, &service.CreateOrganizationRequest{})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

func (suite *OrganizationServiceTestSuite) TestList_OnlyCallerMemberships() {
	suite.mockOrgRepo.EXPECT().ListByUserID(suite.adminID).Return([]models.Organization{
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Acme Corp"},
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Globex"},
	}, nil)

	resp, err := suite.organizationService.List(suite.adminID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp, 2)
	assert.Equal(suite.T(), "Acme Corp", resp[0].Name)
}

func (suite *OrganizationServiceTestSuite) TestGetByID_IncludesCallerRole() {
	memberID := uuid.New()
	suite.expectRole(memberID, models.MembershipRoleMember)
	suite.mockOrgRepo.EXPECT().GetByID(suite.orgID).Return(&models.Organization{
		BaseModel: models.BaseModel{ID: suite.orgID},
		Name:      "Acme Corp",
	}, nil)

	resp, err := suite.organizationService.GetByID(memberID, suite.orgID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), suite.orgID, resp.ID)
	assert.Equal(suite.T(), models.MembershipRoleMember, *resp.CurrentUserRole)
}

func (suite *OrganizationServiceTestSuite) TestGetByID_NotMember() {
	outsiderID := uuid.New()
	suite.mockMembershipRepo.EXPECT().
		GetByOrgAndUser(suite.orgID, outsiderID).
		Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.organizationService.GetByID(outsiderID, suite.orgID)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotOrganizationMember)
	assert.Equal(suite.T(), "You are not a member of this organization", err.Error())
}

func (suite *OrganizationServiceTestSuite) TestUpdate_AdminOnly() {
	memberID := uuid.New()
	suite.expectRole(memberID, models.MembershipRoleMember)

	resp, err := suite.organizationService.Update(memberID, suite.orgID, &service.UpdateOrganizationRequest{
		Name: "New Name",
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsAuthorization(err))
	assert.Equal(suite.T(), "Only admins can update the organization", err.Error())
}

func (suite *OrganizationServiceTestSuite) TestUpdate_Success() {
	suite.expectRole(suite.adminID, models.MembershipRoleAdmin)
	suite.mockOrgRepo.EXPECT().
		Update(suite.orgID, map[string]interface{}{"name": "New Name"}).
		Return(nil)
	suite.mockOrgRepo.EXPECT().GetByID(suite.orgID).Return(&models.Organization{
		BaseModel: models.BaseModel{ID: suite.orgID},
		Name:      "New Name",
	}, nil)

	resp, err := suite.organizationService.Update(suite.adminID, suite.orgID, &service.UpdateOrganizationRequest{
		Name: "New Name",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "New Name", resp.Name)
}

func (suite *OrganizationServiceTestSuite) TestListMembers_Success() {
	memberID := uuid.New()
	suite.expectRole(memberID, models.MembershipRoleMember)
	suite.mockMembershipRepo.EXPECT().ListByOrganizationID(suite.orgID).Return([]models.OrganizationMembership{
		{
			OrganizationID: suite.orgID,
			UserID:         suite.adminID,
			Role:           models.MembershipRoleAdmin,
			User:           models.User{Name: "Admin User", Email: "admin@acme.com"},
		},
		{
			OrganizationID: suite.orgID,
			UserID:         memberID,
			Role:           models.MembershipRoleMember,
			User:           models.User{Name: "Member User", Email: "member@acme.com"},
		},
	}, nil)

	resp, err := suite.organizationService.ListMembers(memberID, suite.orgID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp, 2)
	assert.Equal(suite.T(), "admin@acme.com", resp[0].Email)
	assert.Equal(suite.T(), models.MembershipRoleAdmin, resp[0].Role)
}

func (suite *OrganizationServiceTestSuite) TestInviteUser_Success() {
	invitee := &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "New Hire",
		Email:     "hire@acme.com",
	}
	suite.expectRole(suite.adminID, models.MembershipRoleAdmin)
	suite.mockUserRepo.EXPECT().GetByEmail("hire@acme.com").Return(invitee, nil)
	suite.mockMembershipRepo.EXPECT().
		GetByOrgAndUser(suite.orgID, invitee.ID).
		Return(nil, gorm.ErrRecordNotFound)
	suite.mockMembershipRepo.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.organizationService.InviteUser(suite.adminID, suite.orgID, &service.InviteUserRequest{
		Email: "hire@acme.com",
		Role:  models.MembershipRoleMember,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), invitee.ID, resp.UserID)
	assert.Equal(suite.T(), models.MembershipRoleMember, resp.Role)
}

func (suite *OrganizationServiceTestSuite) TestInviteUser_UnknownEmail() {
	suite.expectRole(suite.adminID, models.MembershipRoleAdmin)
	suite.mockUserRepo.EXPECT().GetByEmail("ghost@acme.com").Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.organizationService.InviteUser(suite.adminID, suite.orgID, &service.InviteUserRequest{
		Email: "ghost@acme.com",
		Role:  models.MembershipRoleMember,
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)
}

func (suite *OrganizationServiceTestSuite) TestInviteUser_AlreadyMember() {
	invitee := &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "hire@acme.com",
	}
	suite.expectRole(suite.adminID, models.MembershipRoleAdmin)
	suite.mockUserRepo.EXPECT().GetByEmail("hire@acme.com").Return(invitee, nil)
	suite.mockMembershipRepo.EXPECT().
		GetByOrgAndUser(suite.orgID, invitee.ID).
		Return(&models.OrganizationMembership{UserID: invitee.ID}, nil)

	resp, err := suite.organizationService.InviteUser(suite.adminID, suite.orgID, &service.InviteUserRequest{
		Email: "hire@acme.com",
		Role:  models.MembershipRoleMember,
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrMembershipExists)
}

func (suite *OrganizationServiceTestSuite) TestInviteUser_NotAdmin() {
	memberID := uuid.New()
	suite.expectRole(memberID, models.MembershipRoleMember)

	resp, err := suite.organizationService.InviteUser(memberID, suite.orgID, &service.InviteUserRequest{
		Email: "hire@acme.com",
		Role:  models.MembershipRoleMember,
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.Equal(suite.T(), "Only admins can invite users", err.Error())
}

func (suite *OrganizationServiceTestSuite) TestInviteUser_InvalidRole() {
	resp, err := suite.organizationService.InviteUser(suite.adminID, suite.orgID, &service.InviteUserRequest{
		Email: "hire@acme.com",
		Role:  "OWNER",
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *OrganizationServiceTestSuite) TestUpdateMemberRole_Success() {
	memberID := uuid.New()
	suite.expectRole(suite.adminID, models.MembershipRoleAdmin)
	suite.mockMembershipRepo.EXPECT().
		UpdateRole(suite.orgID, memberID, models.MembershipRoleAdmin).
		Return(nil)

	err := suite.organizationService.UpdateMemberRole(suite.adminID, suite.orgID, memberID, &service.UpdateMemberRoleRequest{
		Role: models.MembershipRoleAdmin,
	})

	assert.NoError(suite.T(), err)
}

func (suite *OrganizationServiceTestSuite) TestUpdateMemberRole_MembershipNotFound() {
	memberID := uuid.New()
	suite.expectRole(suite.adminID, models.MembershipRoleAdmin)
	suite.mockMembershipRepo.EXPECT().
		UpdateRole(suite.orgID, memberID, models.MembershipRoleAdmin).
		Return(gorm.ErrRecordNotFound)

	err := suite.organizationService.UpdateMemberRole(suite.adminID, suite.orgID, memberID, &service.UpdateMemberRoleRequest{
		Role: models.MembershipRoleAdmin,
	})

	assert.Error(suite.T(), err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrMembershipNotFound)
}

func (suite *OrganizationServiceTestSuite) TestRemoveMember_Success() {
	memberID := uuid.New()
	suite.expectRole(suite.adminID, models.MembershipRoleAdmin)
	suite.mockMembershipRepo.EXPECT().Delete(suite.orgID, memberID).Return(nil)

	err := suite.organizationService.RemoveMember(suite.adminID, suite.orgID, memberID)

	assert.NoError(suite.T(), err)
}

func (suite *OrganizationServiceTestSuite) TestRemoveMember_SelfRemovalRejected() {
	suite.expectRole(suite.adminID, models.MembershipRoleAdmin)

	err := suite.organizationService.RemoveMember(suite.adminID, suite.orgID, suite.adminID)

	assert.Error(suite.T(), err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrSelfRemoval)
}

func (suite *OrganizationServiceTestSuite) TestRemoveMember_RepositoryError() {
	memberID := uuid.New()
	suite.expectRole(suite.adminID, models.MembershipRoleAdmin)
	suite.mockMembershipRepo.EXPECT().Delete(suite.orgID, memberID).Return(errors.New("db failed"))

	err := suite.organizationService.RemoveMember(suite.adminID, suite.orgID, memberID)

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "failed to remove member")
}

func TestOrganizationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationServiceTestSuite))
}
