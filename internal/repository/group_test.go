package repository

import (
	"testing"

	"expense-portal-backend/internal/database/models"
	"expense-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// GroupRepositoryTestSuite tests the GroupRepository against Postgres
type GroupRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *GroupRepository
	factories     *testutils.FactorySet

	org    *models.Organization
	admin  *models.User
	member *models.User
}

func (suite *GroupRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewGroupRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *GroupRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *GroupRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	org, admin, member, _ := suite.factories.CreateOrganizationFixture()
	suite.org, suite.admin, suite.member = org, admin, member
	suite.NoError(suite.baseTestSuite.DB.Create(suite.org).Error)
	suite.NoError(suite.baseTestSuite.DB.Create(suite.admin).Error)
	suite.NoError(suite.baseTestSuite.DB.Create(suite.member).Error)
}

func (suite *GroupRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *GroupRepositoryTestSuite) createGroup(name string, parentID *uuid.UUID) *models.Group {
	group := suite.factories.Group.WithOrganization(suite.org.ID)
	group.Name = name
	group.ParentGroupID = parentID
	suite.NoError(suite.repo.Create(group))
	return group
}

func (suite *GroupRepositoryTestSuite) TestCreateAndGetByID() {
	group := suite.createGroup("Engineering", nil)

	retrieved, err := suite.repo.GetByID(group.ID)
	suite.NoError(err)
	suite.Equal("Engineering", retrieved.Name)
	suite.Nil(retrieved.ParentGroupID)
}

func (suite *GroupRepositoryTestSuite) TestListByOrganizationIDOrderedByName() {
	suite.createGroup("Platform", nil)
	suite.createGroup("Backend", nil)
	suite.createGroup("Frontend", nil)

	groups, err := suite.repo.ListByOrganizationID(suite.org.ID)
	suite.NoError(err)
	suite.Len(groups, 3)
	suite.Equal("Backend", groups[0].Name)
	suite.Equal("Frontend", groups[1].Name)
	suite.Equal("Platform", groups[2].Name)
}

func (suite *GroupRepositoryTestSuite) TestUpdateReParent() {
	parent := suite.createGroup("Engineering", nil)
	child := suite.createGroup("Backend", nil)

	err := suite.repo.Update(child.ID, map[string]interface{}{
		"parent_group_id": parent.ID,
	})
	suite.NoError(err)

	updated, err := suite.repo.GetByID(child.ID)
	suite.NoError(err)
	suite.NotNil(updated.ParentGroupID)
	suite.Equal(parent.ID, *updated.ParentGroupID)
}

func (suite *GroupRepositoryTestSuite) TestDeleteAndReRootChildren() {
	parent := suite.createGroup("Engineering", nil)
	childA := suite.createGroup("Backend", &parent.ID)
	childB := suite.createGroup("Frontend", &parent.ID)
	grandchild := suite.createGroup("API", &childA.ID)

	suite.NoError(suite.repo.DeleteAndReRootChildren(parent.ID))

	_, err := suite.repo.GetByID(parent.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	// Direct children become roots; deeper descendants keep their parent
	reloadedA, err := suite.repo.GetByID(childA.ID)
	suite.NoError(err)
	suite.Nil(reloadedA.ParentGroupID)

	reloadedB, err := suite.repo.GetByID(childB.ID)
	suite.NoError(err)
	suite.Nil(reloadedB.ParentGroupID)

	reloadedGrandchild, err := suite.repo.GetByID(grandchild.ID)
	suite.NoError(err)
	suite.NotNil(reloadedGrandchild.ParentGroupID)
	suite.Equal(childA.ID, *reloadedGrandchild.ParentGroupID)
}

func (suite *GroupRepositoryTestSuite) TestAddAndGetMembership() {
	group := suite.createGroup("Engineering", nil)

	membership := &models.GroupMembership{GroupID: group.ID, UserID: suite.member.ID}
	suite.NoError(suite.repo.AddMember(membership))

	found, err := suite.repo.GetMembership(group.ID, suite.member.ID)
	suite.NoError(err)
	suite.Equal(suite.member.ID, found.UserID)
}

func (suite *GroupRepositoryTestSuite) TestAddMemberTwiceRejected() {
	group := suite.createGroup("Engineering", nil)

	suite.NoError(suite.repo.AddMember(&models.GroupMembership{GroupID: group.ID, UserID: suite.member.ID}))
	suite.Error(suite.repo.AddMember(&models.GroupMembership{GroupID: group.ID, UserID: suite.member.ID}))
}

func (suite *GroupRepositoryTestSuite) TestGetWithMembers() {
	group := suite.createGroup("Engineering", nil)
	suite.NoError(suite.repo.AddMember(&models.GroupMembership{GroupID: group.ID, UserID: suite.member.ID}))
	suite.NoError(suite.repo.AddMember(&models.GroupMembership{GroupID: group.ID, UserID: suite.admin.ID}))

	retrieved, err := suite.repo.GetWithMembers(group.ID)
	suite.NoError(err)
	suite.Len(retrieved.Members, 2)
	suite.NotEmpty(retrieved.Members[0].User.Email)
}

func (suite *GroupRepositoryTestSuite) TestRemoveMember() {
	group := suite.createGroup("Engineering", nil)
	suite.NoError(suite.repo.AddMember(&models.GroupMembership{GroupID: group.ID, UserID: suite.member.ID}))

	suite.NoError(suite.repo.RemoveMember(group.ID, suite.member.ID))

	_, err := suite.repo.GetMembership(group.ID, suite.member.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *GroupRepositoryTestSuite) TestRemoveMemberNotInGroup() {
	group := suite.createGroup("Engineering", nil)

	err := suite.repo.RemoveMember(group.ID, suite.member.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestGroupRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(GroupRepositoryTestSuite))
}
