package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/solo-mizan/goru-club/internal/models"
)

type CowPurchaseRepository struct {
	pool *pgxpool.Pool
}

func NewCowPurchaseRepository(pool *pgxpool.Pool) *CowPurchaseRepository {
	return &CowPurchaseRepository{pool: pool}
}

// List returns all cow purchases, most recent first, with
// participating member names resolved
func (r *CowPurchaseRepository) List(ctx context.Context) ([]models.CowPurchase, error) {
	return r.list(ctx, "ORDER BY date DESC, id ASC")
}

// ListAll returns every cow purchase in insertion order for the
// aggregation engine to fold over
func (r *CowPurchaseRepository) ListAll(ctx context.Context) ([]models.CowPurchase, error) {
	return r.list(ctx, "ORDER BY id ASC")
}

func (r *CowPurchaseRepository) list(ctx context.Context, orderBy string) ([]models.CowPurchase, error) {
	if r.pool == nil {
		return nil, ErrUnavailable
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, date, amount, notes, receipt_image, created_at, updated_at
		FROM cow_purchases
	`+orderBy)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var purchases []models.CowPurchase
	for rows.Next() {
		var p models.CowPurchase
		if err := rows.Scan(&p.ID, &p.Date, &p.Amount, &p.Notes, &p.ReceiptImage, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		purchases = append(purchases, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachMembers(ctx, purchases); err != nil {
		return nil, err
	}
	return purchases, nil
}

// Get returns a cow purchase by id with participating members resolved;
// pgx.ErrNoRows when the id does not resolve
func (r *CowPurchaseRepository) Get(ctx context.Context, id int) (*models.CowPurchase, error) {
	if r.pool == nil {
		return nil, ErrUnavailable
	}

	var p models.CowPurchase
	err := r.pool.QueryRow(ctx, `
		SELECT id, date, amount, notes, receipt_image, created_at, updated_at
		FROM cow_purchases
		WHERE id = $1
	`, id).Scan(&p.ID, &p.Date, &p.Amount, &p.Notes, &p.ReceiptImage, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}

	purchases := []models.CowPurchase{p}
	if err := r.attachMembers(ctx, purchases); err != nil {
		return nil, err
	}
	return &purchases[0], nil
}

// Create inserts a cow purchase and its participant rows in one transaction
func (r *CowPurchaseRepository) Create(ctx context.Context, p *models.CowPurchase, memberIDs []int) error {
	if r.pool == nil {
		return ErrUnavailable
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO cow_purchases (date, amount, notes, receipt_image)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, p.Date, p.Amount, p.Notes, p.ReceiptImage).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return err
	}

	for _, memberID := range memberIDs {
		if _, err := tx.Exec(ctx, `
			INSERT INTO cow_purchase_members (cow_purchase_id, member_id)
			VALUES ($1, $2)
		`, p.ID, memberID); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// Update writes the merged purchase row back and, when memberIDs is
// non-nil, replaces the participant set in the same transaction
func (r *CowPurchaseRepository) Update(ctx context.Context, p *models.CowPurchase, memberIDs []int) error {
	if r.pool == nil {
		return ErrUnavailable
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		UPDATE cow_purchases
		SET date = $1, amount = $2, notes = $3, receipt_image = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING updated_at
	`, p.Date, p.Amount, p.Notes, p.ReceiptImage, p.ID).Scan(&p.UpdatedAt)
	if err != nil {
		return err
	}

	if memberIDs != nil {
		if _, err := tx.Exec(ctx, "DELETE FROM cow_purchase_members WHERE cow_purchase_id = $1", p.ID); err != nil {
			return err
		}
		for _, memberID := range memberIDs {
			if _, err := tx.Exec(ctx, `
				INSERT INTO cow_purchase_members (cow_purchase_id, member_id)
				VALUES ($1, $2)
			`, p.ID, memberID); err != nil {
				return err
			}
		}
	}

	return tx.Commit(ctx)
}

// Delete removes a cow purchase; participant rows cascade
func (r *CowPurchaseRepository) Delete(ctx context.Context, id int) error {
	if r.pool == nil {
		return ErrUnavailable
	}

	_, err := r.pool.Exec(ctx, "DELETE FROM cow_purchases WHERE id = $1", id)
	return err
}

// attachMembers resolves participating member names for a batch of purchases
func (r *CowPurchaseRepository) attachMembers(ctx context.Context, purchases []models.CowPurchase) error {
	if len(purchases) == 0 {
		return nil
	}

	ids := make([]int, 0, len(purchases))
	index := make(map[int]*models.CowPurchase, len(purchases))
	for i := range purchases {
		ids = append(ids, purchases[i].ID)
		index[purchases[i].ID] = &purchases[i]
		purchases[i].Members = []models.PurchaseMember{}
	}

	rows, err := r.pool.Query(ctx, `
		SELECT pm.cow_purchase_id, m.id, m.name
		FROM cow_purchase_members pm
		JOIN members m ON m.id = pm.member_id
		WHERE pm.cow_purchase_id = ANY($1)
		ORDER BY pm.cow_purchase_id, m.name ASC
	`, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var purchaseID int
		var pm models.PurchaseMember
		if err := rows.Scan(&purchaseID, &pm.ID, &pm.Name); err != nil {
			return err
		}
		if p, ok := index[purchaseID]; ok {
			p.Members = append(p.Members, pm)
		}
	}
	return rows.Err()
}
