package testutils

import (
	"fmt"
	"time"

	"expense-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name: "Test User",
		// unique per call to avoid tripping the email unique index
		Email: fmt.Sprintf("user-%s@test.com", id.String()[:8]),
	}
}

// WithName sets a custom name for the user
func (f *UserFactory) WithName(name string) *models.User {
	user := f.Create()
	user.Name = name
	return user
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name: "Test Organization",
	}
}

// WithName sets a custom name for the organization
func (f *OrganizationFactory) WithName(name string) *models.Organization {
	org := f.Create()
	org.Name = name
	return org
}

// MembershipFactory provides methods to create test OrganizationMembership data
type MembershipFactory struct{}

// NewMembershipFactory creates a new MembershipFactory
func NewMembershipFactory() *MembershipFactory {
	return &MembershipFactory{}
}

// Create creates a test membership with default values
func (f *MembershipFactory) Create() *models.OrganizationMembership {
	return &models.OrganizationMembership{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: uuid.New(),
		UserID:         uuid.New(),
		Role:           models.MembershipRoleMember,
	}
}

// For creates a membership binding the given user to the given organization
func (f *MembershipFactory) For(orgID, userID uuid.UUID) *models.OrganizationMembership {
	membership := f.Create()
	membership.OrganizationID = orgID
	membership.UserID = userID
	return membership
}

// AdminFor creates an ADMIN membership binding the given user to the given organization
func (f *MembershipFactory) AdminFor(orgID, userID uuid.UUID) *models.OrganizationMembership {
	membership := f.For(orgID, userID)
	membership.Role = models.MembershipRoleAdmin
	return membership
}

// CategoryFactory provides methods to create test ExpenseCategory data
type CategoryFactory struct{}

// NewCategoryFactory creates a new CategoryFactory
func NewCategoryFactory() *CategoryFactory {
	return &CategoryFactory{}
}

// Create creates a test ExpenseCategory with default values
func (f *CategoryFactory) Create() *models.ExpenseCategory {
	id := uuid.New()
	return &models.ExpenseCategory{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: uuid.New(),
		Name:           fmt.Sprintf("category-%s", id.String()[:8]),
		Description:    "A test expense category",
	}
}

// WithOrganization sets the organization ID for the category
func (f *CategoryFactory) WithOrganization(orgID uuid.UUID) *models.ExpenseCategory {
	category := f.Create()
	category.OrganizationID = orgID
	return category
}

// WithName sets a custom name for the category
func (f *CategoryFactory) WithName(name string) *models.ExpenseCategory {
	category := f.Create()
	category.Name = name
	return category
}

// PolicyFactory provides methods to create test Policy data
type PolicyFactory struct{}

// NewPolicyFactory creates a new PolicyFactory
func NewPolicyFactory() *PolicyFactory {
	return &PolicyFactory{}
}

// Create creates an organization-wide test Policy with default values
func (f *PolicyFactory) Create() *models.Policy {
	return &models.Policy{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: uuid.New(),
		CategoryID:     uuid.New(),
		UserID:         nil,
		MaxAmount:      50000,
		Period:         models.PolicyPeriodMonthly,
		AutoApprove:    false,
	}
}

// OrgWide creates an organization-wide policy for the given org and category
func (f *PolicyFactory) OrgWide(orgID, categoryID uuid.UUID) *models.Policy {
	policy := f.Create()
	policy.OrganizationID = orgID
	policy.CategoryID = categoryID
	return policy
}

// ForUser creates a user-specific policy for the given org, category and user
func (f *PolicyFactory) ForUser(orgID, categoryID, userID uuid.UUID) *models.Policy {
	policy := f.OrgWide(orgID, categoryID)
	policy.UserID = &userID
	return policy
}

// WithMaxAmount sets a custom limit on an organization-wide policy
func (f *PolicyFactory) WithMaxAmount(maxAmount int64) *models.Policy {
	policy := f.Create()
	policy.MaxAmount = maxAmount
	return policy
}

// WithAutoApprove sets the auto-approve flag on an organization-wide policy
func (f *PolicyFactory) WithAutoApprove(autoApprove bool) *models.Policy {
	policy := f.Create()
	policy.AutoApprove = autoApprove
	return policy
}

// ExpenseFactory provides methods to create test Expense data
type ExpenseFactory struct{}

// NewExpenseFactory creates a new ExpenseFactory
func NewExpenseFactory() *ExpenseFactory {
	return &ExpenseFactory{}
}

// Create creates a test Expense with default values
func (f *ExpenseFactory) Create() *models.Expense {
	return &models.Expense{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: uuid.New(),
		UserID:         uuid.New(),
		CategoryID:     uuid.New(),
		Amount:         12500,
		Date:           time.Now().Truncate(24 * time.Hour),
		Description:    "Team lunch",
		Status:         models.ExpenseStatusSubmitted,
	}
}

// For creates an expense for the given org, user and category
func (f *ExpenseFactory) For(orgID, userID, categoryID uuid.UUID) *models.Expense {
	expense := f.Create()
	expense.OrganizationID = orgID
	expense.UserID = userID
	expense.CategoryID = categoryID
	return expense
}

// WithAmount sets a custom amount for the expense
func (f *ExpenseFactory) WithAmount(amount int64) *models.Expense {
	expense := f.Create()
	expense.Amount = amount
	return expense
}

// WithStatus sets a custom status for the expense
func (f *ExpenseFactory) WithStatus(status models.ExpenseStatus) *models.Expense {
	expense := f.Create()
	expense.Status = status
	return expense
}

// ReviewFactory provides methods to create test ExpenseReview data
type ReviewFactory struct{}

// NewReviewFactory creates a new ReviewFactory
func NewReviewFactory() *ReviewFactory {
	return &ReviewFactory{}
}

// Create creates a test ExpenseReview with default values
func (f *ReviewFactory) Create() *models.ExpenseReview {
	return &models.ExpenseReview{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ExpenseID:  uuid.New(),
		ReviewerID: uuid.New(),
		Status:     models.ExpenseStatusSubmitted,
		Comment:    "Submitted for review: no applicable policy found",
	}
}

// For creates a review entry for the given expense authored by the given reviewer
func (f *ReviewFactory) For(expenseID, reviewerID uuid.UUID) *models.ExpenseReview {
	review := f.Create()
	review.ExpenseID = expenseID
	review.ReviewerID = reviewerID
	return review
}

// GroupFactory provides methods to create test Group data
type GroupFactory struct{}

// NewGroupFactory creates a new GroupFactory
func NewGroupFactory() *GroupFactory {
	return &GroupFactory{}
}

// Create creates a root-level test Group with default values
func (f *GroupFactory) Create() *models.Group {
	id := uuid.New()
	return &models.Group{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: uuid.New(),
		Name:           fmt.Sprintf("group-%s", id.String()[:8]),
		Description:    "A test group",
		ParentGroupID:  nil,
	}
}

// WithOrganization sets the organization ID for the group
func (f *GroupFactory) WithOrganization(orgID uuid.UUID) *models.Group {
	group := f.Create()
	group.OrganizationID = orgID
	return group
}

// WithParent creates a child group under the given parent in the same organization
func (f *GroupFactory) WithParent(orgID, parentID uuid.UUID) *models.Group {
	group := f.WithOrganization(orgID)
	group.ParentGroupID = &parentID
	return group
}

// WithName sets a custom name for the group
func (f *GroupFactory) WithName(name string) *models.Group {
	group := f.Create()
	group.Name = name
	return group
}

// MessageFactory provides methods to create test Message data
type MessageFactory struct{}

// NewMessageFactory creates a new MessageFactory
func NewMessageFactory() *MessageFactory {
	return &MessageFactory{}
}

// Create creates a test Message with default values
func (f *MessageFactory) Create() *models.Message {
	return &models.Message{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: uuid.New(),
		UserID:         uuid.New(),
		Content:        "Reminder: submit expenses before month end",
	}
}

// For creates a message on the given organization's board authored by the given user
func (f *MessageFactory) For(orgID, userID uuid.UUID) *models.Message {
	message := f.Create()
	message.OrganizationID = orgID
	message.UserID = userID
	return message
}

// FactorySet provides access to all factories
type FactorySet struct {
	User         *UserFactory
	Organization *OrganizationFactory
	Membership   *MembershipFactory
	Category     *CategoryFactory
	Policy       *PolicyFactory
	Expense      *ExpenseFactory
	Review       *ReviewFactory
	Group        *GroupFactory
	Message      *MessageFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:         NewUserFactory(),
		Organization: NewOrganizationFactory(),
		Membership:   NewMembershipFactory(),
		Category:     NewCategoryFactory(),
		Policy:       NewPolicyFactory(),
		Expense:      NewExpenseFactory(),
		Review:       NewReviewFactory(),
		Group:        NewGroupFactory(),
		Message:      NewMessageFactory(),
	}
}

// CreateOrganizationFixture creates an organization with an admin and a regular
// member, plus one expense category, ready for policy and expense tests.
func (fs *FactorySet) CreateOrganizationFixture() (*models.Organization, *models.User, *models.User, *models.ExpenseCategory) {
	org := fs.Organization.Create()
	admin := fs.User.WithName("Admin User")
	member := fs.User.WithName("Member User")
	category := fs.Category.WithOrganization(org.ID)
	return org, admin, member, category
}
