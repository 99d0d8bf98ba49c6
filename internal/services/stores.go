package services

import (
	"context"
	"io"

	"github.com/solo-mizan/goru-club/internal/models"
)

// Narrow store contracts the services depend on. The pgx repositories
// satisfy them in production; tests substitute in-memory fakes.

type MemberStore interface {
	List(ctx context.Context) ([]models.Member, error)
	Get(ctx context.Context, id int) (*models.Member, error)
	Create(ctx context.Context, m *models.Member) error
	Update(ctx context.Context, m *models.Member) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

type DepositStore interface {
	List(ctx context.Context) ([]models.Deposit, error)
	ListAll(ctx context.Context) ([]models.Deposit, error)
	ListByMember(ctx context.Context, memberID int) ([]models.Deposit, error)
	Get(ctx context.Context, id int) (*models.Deposit, error)
	Create(ctx context.Context, d *models.Deposit) error
	Update(ctx context.Context, d *models.Deposit) error
	Delete(ctx context.Context, id int) error
	CountByMember(ctx context.Context, memberID int) (int, error)
}

type CowPurchaseStore interface {
	List(ctx context.Context) ([]models.CowPurchase, error)
	ListAll(ctx context.Context) ([]models.CowPurchase, error)
	Get(ctx context.Context, id int) (*models.CowPurchase, error)
	Create(ctx context.Context, p *models.CowPurchase, memberIDs []int) error
	Update(ctx context.Context, p *models.CowPurchase, memberIDs []int) error
	Delete(ctx context.Context, id int) error
}

// ReceiptFile is an uploaded receipt before it reaches durable storage
type ReceiptFile struct {
	Content io.Reader
	// Filename is the client-supplied name; only its extension is kept
	Filename string
}

// ReceiptStore persists receipt files and reports their public path
type ReceiptStore interface {
	Save(f ReceiptFile) (string, error)
	Remove(path string) error
}
