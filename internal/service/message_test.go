package service_test

import (
	"strings"
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

type MessageServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockMessageRepo    *mocks.MockMessageRepositoryInterface
	mockMembershipRepo *mocks.MockMembershipRepositoryInterface
	messageService     *service.MessageService
	validator          *validator.Validate

	orgID  uuid.UUID
	userID uuid.UUID
}

func (suite *MessageServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockMessageRepo = mocks.NewMockMessageRepositoryInterface(suite.ctrl)
	suite.mockMembershipRepo = mocks.NewMockMembershipRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.messageService = service.NewMessageService(
		suite.mockMessageRepo,
		suite.mockMembershipRepo,
		suite.validator,
	)

	suite.orgID = uuid.New()
	suite.userID = uuid.New()
}

func (suite *MessageServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MessageServiceTestSuite) expectMember() {
	suite.mockMembershipRepo.EXPECT().
		GetByOrgAndUser(suite.orgID, suite.userID).
		Return(&models.OrganizationMembership{
			OrganizationID: suite.orgID,
			UserID:         suite.userID,
			Role:           models.MembershipRoleMember,
		}, nil)
}

func (suite *MessageServiceTestSuite) TestCreate_Success() {
	suite.expectMember()
	suite.mockMessageRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(m *models.Message) error {
			m.ID = uuid.New()
			return nil
		})

	resp, err := suite.messageService.Create(suite.userID, &service.CreateMessageRequest{
		OrganizationID: suite.orgID,
		Content:        "Reminder: submit expenses before month end",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), suite.userID, resp.AuthorID)
	assert.Equal(suite.T(), "Reminder: submit expenses before month end", resp.Content)
}

func (suite *MessageServiceTestSuite) TestCreate_NotMember() {
	suite.mockMembershipRepo.EXPECT().
		GetByOrgAndUser(suite.orgID, suite.userID).
		Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.messageService.Create(suite.userID, &service.CreateMessageRequest{
		OrganizationID: suite.orgID,
		Content:        "hello",
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotOrganizationMember)
}

func (suite *MessageServiceTestSuite) TestCreate_EmptyContent() {
	resp, err := suite.messageService.Create(suite.userID, &service.CreateMessageRequest{
		OrganizationID: suite.orgID,
		Content:        "",
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

func (suite *MessageServiceTestSuite) TestCreate_ContentTooLong() {
	resp, err := suite.messageService.Create(suite.userID, &service.CreateMessageRequest{
		OrganizationID: suite.orgID,
		Content:        strings.Repeat("a", 1001),
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

func (suite *MessageServiceTestSuite) TestList_Success() {
	suite.expectMember()
	suite.mockMessageRepo.EXPECT().ListByOrganizationID(suite.orgID).Return([]models.Message{
		{
			BaseModel:      models.BaseModel{ID: uuid.New()},
			OrganizationID: suite.orgID,
			UserID:         suite.userID,
			Content:        "newest",
			Author:         models.User{Name: "Poster"},
		},
		{
			BaseModel:      models.BaseModel{ID: uuid.New()},
			OrganizationID: suite.orgID,
			UserID:         suite.userID,
			Content:        "oldest",
			Author:         models.User{Name: "Poster"},
		},
	}, nil)

	resp, err := suite.messageService.List(suite.userID, suite.orgID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp, 2)
	assert.Equal(suite.T(), "newest", resp[0].Content)
	assert.Equal(suite.T(), "Poster", resp[0].AuthorName)
}

func (suite *MessageServiceTestSuite) TestList_NotMember() {
	suite.mockMembershipRepo.EXPECT().
		GetByOrgAndUser(suite.orgID, suite.userID).
		Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.messageService.List(suite.userID, suite.orgID)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotOrganizationMember)
}

func TestMessageServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MessageServiceTestSuite))
}
