package models

import "time"

// Deposit statuses. "approved" is the only status counted in the
// global deposit total.
const (
	DepositStatusPending  = "pending"
	DepositStatusApproved = "approved"
	DepositStatusRejected = "rejected"
)

// DepositStatuses lists the valid status values
var DepositStatuses = []string{
	DepositStatusPending,
	DepositStatusApproved,
	DepositStatusRejected,
}

// ValidDepositStatus reports whether s is one of the known statuses
func ValidDepositStatus(s string) bool {
	for _, v := range DepositStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Deposit represents a cash contribution by a member
type Deposit struct {
	ID       int       `json:"id"`
	MemberID int       `json:"member_id"`
	Amount   float64   `json:"amount"`
	Date     time.Time `json:"date"`
	Status   string    `json:"status"`
	Notes    string    `json:"notes"`
	// Resolved from the members table on reads
	MemberName  string    `json:"member_name,omitempty"`
	MemberPhone string    `json:"member_phone,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateDepositRequest for creating a new deposit
type CreateDepositRequest struct {
	MemberID int        `json:"member_id"`
	Amount   float64    `json:"amount"`
	Date     *time.Time `json:"date"`
	Status   string     `json:"status"`
	Notes    string     `json:"notes"`
}

// UpdateDepositRequest for partial deposit updates; nil fields are left
// untouched. The member reference is immutable after creation and is
// deliberately absent here.
type UpdateDepositRequest struct {
	Amount *float64   `json:"amount"`
	Date   *time.Time `json:"date"`
	Status *string    `json:"status"`
	Notes  *string    `json:"notes"`
}

// DepositSummary is the derived snapshot returned by the deposit
// summary-stats endpoint
type DepositSummary struct {
	TotalDeposit        float64   `json:"total_deposit"`
	MembersWithDeposits int       `json:"members_with_deposits"`
	TotalMembers        int       `json:"total_members"`
	LatestDeposits      []Deposit `json:"latest_deposits"`
}
