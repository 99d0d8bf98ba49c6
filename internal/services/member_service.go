package services

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/solo-mizan/goru-club/internal/aggregate"
	"github.com/solo-mizan/goru-club/internal/apperr"
	"github.com/solo-mizan/goru-club/internal/models"
)

type MemberService struct {
	members  MemberStore
	deposits DepositStore
}

func NewMemberService(members MemberStore, deposits DepositStore) *MemberService {
	return &MemberService{
		members:  members,
		deposits: deposits,
	}
}

// List returns all members sorted by name
func (s *MemberService) List(ctx context.Context) ([]models.Member, error) {
	members, err := s.members.List(ctx)
	if err != nil {
		return nil, apperr.StoreFault(err)
	}
	return members, nil
}

// ListWithTotals returns all members with each one's deposit total.
// The total sums every deposit for the member regardless of status.
func (s *MemberService) ListWithTotals(ctx context.Context) ([]models.MemberWithTotal, error) {
	members, err := s.members.List(ctx)
	if err != nil {
		return nil, apperr.StoreFault(err)
	}

	deposits, err := s.deposits.ListAll(ctx)
	if err != nil {
		return nil, apperr.StoreFault(err)
	}
	totals := aggregate.MemberTotals(deposits)

	result := make([]models.MemberWithTotal, 0, len(members))
	for _, m := range members {
		result = append(result, models.MemberWithTotal{
			ID:           m.ID,
			Name:         m.Name,
			PhoneNumber:  m.PhoneNumber,
			IsActive:     m.IsActive,
			JoinDate:     m.JoinDate,
			TotalDeposit: totals[m.ID],
		})
	}
	return result, nil
}

// Get returns a member by id
func (s *MemberService) Get(ctx context.Context, id int) (*models.Member, error) {
	member, err := s.members.Get(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Member")
		}
		return nil, apperr.StoreFault(err)
	}
	return member, nil
}

// Create validates and persists a new member
func (s *MemberService) Create(ctx context.Context, req models.CreateMemberRequest) (*models.Member, error) {
	var fields []apperr.FieldError
	if req.Name == "" {
		fields = append(fields, apperr.FieldError{Field: "name", Msg: "Name is required"})
	}
	if req.PhoneNumber == "" {
		fields = append(fields, apperr.FieldError{Field: "phone_number", Msg: "Phone number is required"})
	}
	if len(fields) > 0 {
		return nil, apperr.Validation(fields...)
	}

	member := &models.Member{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		IsActive:    true,
	}
	if req.IsActive != nil {
		member.IsActive = *req.IsActive
	}

	if err := s.members.Create(ctx, member); err != nil {
		return nil, apperr.StoreFault(err)
	}
	return member, nil
}

// Update merges the supplied fields into an existing member; fields
// absent from the request are left untouched
func (s *MemberService) Update(ctx context.Context, id int, req models.UpdateMemberRequest) (*models.Member, error) {
	member, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		member.Name = req.Name
	}
	if req.PhoneNumber != "" {
		member.PhoneNumber = req.PhoneNumber
	}
	if req.IsActive != nil {
		member.IsActive = *req.IsActive
	}

	if err := s.members.Update(ctx, member); err != nil {
		return nil, apperr.StoreFault(err)
	}
	return member, nil
}

// Delete removes a member. Members referenced by any deposit cannot be
// deleted; deactivation is the prescribed alternative.
func (s *MemberService) Delete(ctx context.Context, id int) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	count, err := s.deposits.CountByMember(ctx, id)
	if err != nil {
		return apperr.StoreFault(err)
	}
	if count > 0 {
		return apperr.Conflict("Cannot delete member with existing deposits. Deactivate instead.")
	}

	if err := s.members.Delete(ctx, id); err != nil {
		return apperr.StoreFault(err)
	}
	return nil
}
