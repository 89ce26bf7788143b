package models

// MembershipRole represents the role of a user within an organization
type MembershipRole string

const (
	MembershipRoleAdmin  MembershipRole = "ADMIN"
	MembershipRoleMember MembershipRole = "MEMBER"
)

// IsValid checks if the MembershipRole is valid
func (r MembershipRole) IsValid() bool {
	switch r {
	case MembershipRoleAdmin, MembershipRoleMember:
		return true
	}
	return false
}

// ExpenseStatus represents the adjudicated state of an expense
type ExpenseStatus string

const (
	ExpenseStatusSubmitted ExpenseStatus = "SUBMITTED"
	ExpenseStatusApproved  ExpenseStatus = "APPROVED"
	ExpenseStatusRejected  ExpenseStatus = "REJECTED"
)

// IsValid checks if the ExpenseStatus is valid
func (s ExpenseStatus) IsValid() bool {
	switch s {
	case ExpenseStatusSubmitted, ExpenseStatusApproved, ExpenseStatusRejected:
		return true
	}
	return false
}

// PolicyPeriod represents the nominal period a spending policy covers.
// Stored for display; the adjudicator compares single submissions only.
type PolicyPeriod string

const (
	PolicyPeriodMonthly PolicyPeriod = "MONTHLY"
	PolicyPeriodYearly  PolicyPeriod = "YEARLY"
)

// IsValid checks if the PolicyPeriod is valid
func (p PolicyPeriod) IsValid() bool {
	switch p {
	case PolicyPeriodMonthly, PolicyPeriodYearly:
		return true
	}
	return false
}
