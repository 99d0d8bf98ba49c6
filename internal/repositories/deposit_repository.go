package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/solo-mizan/goru-club/internal/models"
)

type DepositRepository struct {
	pool *pgxpool.Pool
}

func NewDepositRepository(pool *pgxpool.Pool) *DepositRepository {
	return &DepositRepository{pool: pool}
}

const depositColumns = `
	d.id, d.member_id, d.amount, d.date, d.status, d.notes,
	d.created_at, d.updated_at,
	m.name AS member_name, m.phone_number AS member_phone
`

func scanDeposits(rows pgx.Rows) ([]models.Deposit, error) {
	var deposits []models.Deposit
	for rows.Next() {
		var d models.Deposit
		if err := rows.Scan(&d.ID, &d.MemberID, &d.Amount, &d.Date, &d.Status, &d.Notes,
			&d.CreatedAt, &d.UpdatedAt, &d.MemberName, &d.MemberPhone); err != nil {
			return nil, err
		}
		deposits = append(deposits, d)
	}
	return deposits, rows.Err()
}

// List returns all deposits, most recent first, with member identity resolved
func (r *DepositRepository) List(ctx context.Context) ([]models.Deposit, error) {
	if r.pool == nil {
		return nil, ErrUnavailable
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+depositColumns+`
		FROM deposits d
		JOIN members m ON m.id = d.member_id
		ORDER BY d.date DESC, d.id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDeposits(rows)
}

// ListAll returns every deposit in insertion order. The aggregation
// engine folds over this snapshot; insertion order is what breaks
// latest-deposit date ties.
func (r *DepositRepository) ListAll(ctx context.Context) ([]models.Deposit, error) {
	if r.pool == nil {
		return nil, ErrUnavailable
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+depositColumns+`
		FROM deposits d
		JOIN members m ON m.id = d.member_id
		ORDER BY d.id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDeposits(rows)
}

// ListByMember returns one member's deposits, most recent first
func (r *DepositRepository) ListByMember(ctx context.Context, memberID int) ([]models.Deposit, error) {
	if r.pool == nil {
		return nil, ErrUnavailable
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+depositColumns+`
		FROM deposits d
		JOIN members m ON m.id = d.member_id
		WHERE d.member_id = $1
		ORDER BY d.date DESC, d.id ASC
	`, memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDeposits(rows)
}

// Get returns a deposit by id with member identity resolved;
// pgx.ErrNoRows when the id does not resolve
func (r *DepositRepository) Get(ctx context.Context, id int) (*models.Deposit, error) {
	if r.pool == nil {
		return nil, ErrUnavailable
	}

	var d models.Deposit
	err := r.pool.QueryRow(ctx, `
		SELECT `+depositColumns+`
		FROM deposits d
		JOIN members m ON m.id = d.member_id
		WHERE d.id = $1
	`, id).Scan(&d.ID, &d.MemberID, &d.Amount, &d.Date, &d.Status, &d.Notes,
		&d.CreatedAt, &d.UpdatedAt, &d.MemberName, &d.MemberPhone)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Create inserts a new deposit and fills its generated fields
func (r *DepositRepository) Create(ctx context.Context, d *models.Deposit) error {
	if r.pool == nil {
		return ErrUnavailable
	}

	return r.pool.QueryRow(ctx, `
		INSERT INTO deposits (member_id, amount, date, status, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, d.MemberID, d.Amount, d.Date, d.Status, d.Notes).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
}

// Update writes the merged deposit row back. The member reference is
// immutable and never part of the update.
func (r *DepositRepository) Update(ctx context.Context, d *models.Deposit) error {
	if r.pool == nil {
		return ErrUnavailable
	}

	return r.pool.QueryRow(ctx, `
		UPDATE deposits
		SET amount = $1, date = $2, status = $3, notes = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING updated_at
	`, d.Amount, d.Date, d.Status, d.Notes, d.ID).Scan(&d.UpdatedAt)
}

// Delete removes a deposit unconditionally
func (r *DepositRepository) Delete(ctx context.Context, id int) error {
	if r.pool == nil {
		return ErrUnavailable
	}

	_, err := r.pool.Exec(ctx, "DELETE FROM deposits WHERE id = $1", id)
	return err
}

// CountByMember returns how many deposits reference a member, used by
// the member deletion guard
func (r *DepositRepository) CountByMember(ctx context.Context, memberID int) (int, error) {
	if r.pool == nil {
		return 0, ErrUnavailable
	}

	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM deposits WHERE member_id = $1", memberID).Scan(&count)
	return count, err
}
