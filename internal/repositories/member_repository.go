package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/solo-mizan/goru-club/internal/models"
)

// ErrUnavailable is returned when the server started without a usable
// database pool (degraded mode)
var ErrUnavailable = errors.New("database not available")

type MemberRepository struct {
	pool *pgxpool.Pool
}

func NewMemberRepository(pool *pgxpool.Pool) *MemberRepository {
	return &MemberRepository{pool: pool}
}

// List returns all members sorted by name
func (r *MemberRepository) List(ctx context.Context) ([]models.Member, error) {
	if r.pool == nil {
		return nil, ErrUnavailable
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, name, phone_number, is_active, join_date, created_at, updated_at
		FROM members
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []models.Member
	for rows.Next() {
		var m models.Member
		if err := rows.Scan(&m.ID, &m.Name, &m.PhoneNumber, &m.IsActive, &m.JoinDate, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

// Get returns a member by id; pgx.ErrNoRows when the id does not resolve
func (r *MemberRepository) Get(ctx context.Context, id int) (*models.Member, error) {
	if r.pool == nil {
		return nil, ErrUnavailable
	}

	var m models.Member
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, phone_number, is_active, join_date, created_at, updated_at
		FROM members
		WHERE id = $1
	`, id).Scan(&m.ID, &m.Name, &m.PhoneNumber, &m.IsActive, &m.JoinDate, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create inserts a new member and fills its generated fields
func (r *MemberRepository) Create(ctx context.Context, m *models.Member) error {
	if r.pool == nil {
		return ErrUnavailable
	}

	return r.pool.QueryRow(ctx, `
		INSERT INTO members (name, phone_number, is_active)
		VALUES ($1, $2, $3)
		RETURNING id, join_date, created_at, updated_at
	`, m.Name, m.PhoneNumber, m.IsActive).Scan(&m.ID, &m.JoinDate, &m.CreatedAt, &m.UpdatedAt)
}

// Update writes the merged member row back
func (r *MemberRepository) Update(ctx context.Context, m *models.Member) error {
	if r.pool == nil {
		return ErrUnavailable
	}

	return r.pool.QueryRow(ctx, `
		UPDATE members
		SET name = $1, phone_number = $2, is_active = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING updated_at
	`, m.Name, m.PhoneNumber, m.IsActive, m.ID).Scan(&m.UpdatedAt)
}

// Delete removes a member row. The referencing-deposit guard lives in
// the service; the foreign key is the backstop.
func (r *MemberRepository) Delete(ctx context.Context, id int) error {
	if r.pool == nil {
		return ErrUnavailable
	}

	_, err := r.pool.Exec(ctx, "DELETE FROM members WHERE id = $1", id)
	return err
}

// Count returns the total number of members, active or not
func (r *MemberRepository) Count(ctx context.Context) (int, error) {
	if r.pool == nil {
		return 0, ErrUnavailable
	}

	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM members").Scan(&count)
	return count, err
}
