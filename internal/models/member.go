package models

import "time"

// Member represents a fund member whose deposits and purchase
// participation are tracked
type Member struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phone_number"`
	IsActive    bool      `json:"is_active"`
	JoinDate    time.Time `json:"join_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MemberWithTotal is a member row with the computed sum of every
// deposit referencing it, used by the member list and the report
type MemberWithTotal struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	PhoneNumber  string    `json:"phone_number"`
	IsActive     bool      `json:"is_active"`
	JoinDate     time.Time `json:"join_date"`
	TotalDeposit float64   `json:"total_deposit"`
}

// CreateMemberRequest for creating a new member
type CreateMemberRequest struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	IsActive    *bool  `json:"is_active"`
}

// UpdateMemberRequest for partial member updates; nil fields are left untouched
type UpdateMemberRequest struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	IsActive    *bool  `json:"is_active"`
}
