package services

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/solo-mizan/goru-club/internal/aggregate"
	"github.com/solo-mizan/goru-club/internal/apperr"
	"github.com/solo-mizan/goru-club/internal/models"
)

type DepositService struct {
	deposits DepositStore
	members  MemberStore
}

func NewDepositService(deposits DepositStore, members MemberStore) *DepositService {
	return &DepositService{
		deposits: deposits,
		members:  members,
	}
}

// List returns all deposits, most recent first, with member identity resolved
func (s *DepositService) List(ctx context.Context) ([]models.Deposit, error) {
	deposits, err := s.deposits.List(ctx)
	if err != nil {
		return nil, apperr.StoreFault(err)
	}
	return deposits, nil
}

// ListByMember returns one member's deposits, most recent first
func (s *DepositService) ListByMember(ctx context.Context, memberID int) ([]models.Deposit, error) {
	deposits, err := s.deposits.ListByMember(ctx, memberID)
	if err != nil {
		return nil, apperr.StoreFault(err)
	}
	return deposits, nil
}

// Get returns a deposit by id
func (s *DepositService) Get(ctx context.Context, id int) (*models.Deposit, error) {
	deposit, err := s.deposits.Get(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Deposit")
		}
		return nil, apperr.StoreFault(err)
	}
	return deposit, nil
}

// Create validates and persists a new deposit. The referenced member
// must exist; amount must be at least 1.
func (s *DepositService) Create(ctx context.Context, req models.CreateDepositRequest) (*models.Deposit, error) {
	var fields []apperr.FieldError
	if req.MemberID == 0 {
		fields = append(fields, apperr.FieldError{Field: "member_id", Msg: "Member is required"})
	}
	if req.Amount < 1 {
		fields = append(fields, apperr.FieldError{Field: "amount", Msg: "Amount is required and must be a positive number"})
	}
	if req.Status != "" && !models.ValidDepositStatus(req.Status) {
		fields = append(fields, apperr.FieldError{Field: "status", Msg: "Status must be pending, approved or rejected"})
	}
	if len(fields) > 0 {
		return nil, apperr.Validation(fields...)
	}

	if _, err := s.members.Get(ctx, req.MemberID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Member")
		}
		return nil, apperr.StoreFault(err)
	}

	deposit := &models.Deposit{
		MemberID: req.MemberID,
		Amount:   req.Amount,
		Date:     time.Now(),
		Status:   models.DepositStatusApproved,
		Notes:    req.Notes,
	}
	if req.Date != nil {
		deposit.Date = *req.Date
	}
	if req.Status != "" {
		deposit.Status = req.Status
	}

	if err := s.deposits.Create(ctx, deposit); err != nil {
		return nil, apperr.StoreFault(err)
	}

	// Reload so the response carries the resolved member identity
	return s.Get(ctx, deposit.ID)
}

// Update merges the supplied fields into an existing deposit. The
// member reference is immutable after creation.
func (s *DepositService) Update(ctx context.Context, id int, req models.UpdateDepositRequest) (*models.Deposit, error) {
	deposit, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	var fields []apperr.FieldError
	if req.Amount != nil && *req.Amount < 1 {
		fields = append(fields, apperr.FieldError{Field: "amount", Msg: "Amount is required and must be a positive number"})
	}
	if req.Status != nil && !models.ValidDepositStatus(*req.Status) {
		fields = append(fields, apperr.FieldError{Field: "status", Msg: "Status must be pending, approved or rejected"})
	}
	if len(fields) > 0 {
		return nil, apperr.Validation(fields...)
	}

	if req.Amount != nil {
		deposit.Amount = *req.Amount
	}
	if req.Date != nil {
		deposit.Date = *req.Date
	}
	if req.Status != nil {
		deposit.Status = *req.Status
	}
	if req.Notes != nil {
		deposit.Notes = *req.Notes
	}

	if err := s.deposits.Update(ctx, deposit); err != nil {
		return nil, apperr.StoreFault(err)
	}
	return deposit, nil
}

// Delete removes a deposit. Unlike members, deposits carry no
// referential guard.
func (s *DepositService) Delete(ctx context.Context, id int) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	if err := s.deposits.Delete(ctx, id); err != nil {
		return apperr.StoreFault(err)
	}
	return nil
}

// Summary computes the deposit statistics from a fresh snapshot of the
// current records
func (s *DepositService) Summary(ctx context.Context) (*models.DepositSummary, error) {
	deposits, err := s.deposits.ListAll(ctx)
	if err != nil {
		return nil, apperr.StoreFault(err)
	}

	totalMembers, err := s.members.Count(ctx)
	if err != nil {
		return nil, apperr.StoreFault(err)
	}

	summary := aggregate.DepositSummary(deposits, totalMembers)
	return &summary, nil
}
