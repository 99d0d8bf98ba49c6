package models

import "time"

// CowPurchase represents a pooled livestock purchase funded by a set of members
type CowPurchase struct {
	ID           int       `json:"id"`
	Date         time.Time `json:"date"`
	Amount       float64   `json:"amount"`
	Notes        string    `json:"notes"`
	ReceiptImage string    `json:"receipt_image,omitempty"` // relative path under the public uploads dir
	// Resolved from the members table on reads
	Members   []PurchaseMember `json:"members"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// PurchaseMember is the resolved identity of a participating member
type PurchaseMember struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// MemberIDs returns the ids of the participating members
func (p *CowPurchase) MemberIDs() []int {
	ids := make([]int, 0, len(p.Members))
	for _, m := range p.Members {
		ids = append(ids, m.ID)
	}
	return ids
}

// CreateCowPurchaseRequest for creating a new cow purchase. Receipt
// files arrive as a separate multipart part, not in this struct.
type CreateCowPurchaseRequest struct {
	Amount    float64    `json:"amount"`
	Date      *time.Time `json:"date"`
	MemberIDs []int      `json:"member_ids"`
	Notes     string     `json:"notes"`
}

// UpdateCowPurchaseRequest for partial cow purchase updates; nil fields
// are left untouched
type UpdateCowPurchaseRequest struct {
	Amount    *float64   `json:"amount"`
	Date      *time.Time `json:"date"`
	MemberIDs []int      `json:"member_ids"`
	Notes     *string    `json:"notes"`
}

// CowPurchaseSummary is the derived snapshot returned by the
// cow-purchase summary-stats endpoint
type CowPurchaseSummary struct {
	TotalCowPurchases int          `json:"total_cow_purchases"`
	TotalAmountSpent  float64      `json:"total_amount_spent"`
	LatestCowPurchase *CowPurchase `json:"latest_cow_purchase"`
}
