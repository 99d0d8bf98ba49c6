package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solo-mizan/goru-club/internal/apperr"
	"github.com/solo-mizan/goru-club/internal/models"
)

func TestMemberService_CreateRequiresNameAndPhone(t *testing.T) {
	svc := NewMemberService(newFakeMemberStore(), newFakeDepositStore())

	_, err := svc.Create(context.Background(), models.CreateMemberRequest{})

	ve, ok := apperr.IsValidation(err)
	require.True(t, ok)
	assert.Len(t, ve.Errors, 2)
}

func TestMemberService_CreateDefaultsActive(t *testing.T) {
	svc := NewMemberService(newFakeMemberStore(), newFakeDepositStore())

	member, err := svc.Create(context.Background(), models.CreateMemberRequest{
		Name:        "Karim",
		PhoneNumber: "01712345678",
	})

	require.NoError(t, err)
	assert.True(t, member.IsActive)
	assert.NotZero(t, member.ID)
}

func TestMemberService_UpdateMergesOnlySuppliedFields(t *testing.T) {
	members := newFakeMemberStore()
	m := members.add("Karim", "01712345678")
	svc := NewMemberService(members, newFakeDepositStore())

	inactive := false
	updated, err := svc.Update(context.Background(), m.ID, models.UpdateMemberRequest{IsActive: &inactive})

	require.NoError(t, err)
	assert.Equal(t, "Karim", updated.Name)
	assert.Equal(t, "01712345678", updated.PhoneNumber)
	assert.False(t, updated.IsActive)
}

func TestMemberService_DeleteBlockedByDeposits(t *testing.T) {
	members := newFakeMemberStore()
	deposits := newFakeDepositStore()
	m := members.add("Karim", "01712345678")
	require.NoError(t, deposits.Create(context.Background(), &models.Deposit{
		MemberID: m.ID, Amount: 500, Status: models.DepositStatusApproved, Date: time.Now(),
	}))
	svc := NewMemberService(members, deposits)

	err := svc.Delete(context.Background(), m.ID)

	_, ok := apperr.IsConflict(err)
	assert.True(t, ok)

	// Member still exists afterwards
	_, err = svc.Get(context.Background(), m.ID)
	assert.NoError(t, err)
}

func TestMemberService_DeleteWithoutDeposits(t *testing.T) {
	members := newFakeMemberStore()
	m := members.add("Karim", "01712345678")
	svc := NewMemberService(members, newFakeDepositStore())

	require.NoError(t, svc.Delete(context.Background(), m.ID))

	_, err := svc.Get(context.Background(), m.ID)
	_, ok := apperr.IsNotFound(err)
	assert.True(t, ok)
}

func TestMemberService_GetUnknownID(t *testing.T) {
	svc := NewMemberService(newFakeMemberStore(), newFakeDepositStore())

	_, err := svc.Get(context.Background(), 42)

	nf, ok := apperr.IsNotFound(err)
	require.True(t, ok)
	assert.Equal(t, "Member", nf.Entity)
}

func TestMemberService_ListWithTotalsCountsAllStatuses(t *testing.T) {
	members := newFakeMemberStore()
	deposits := newFakeDepositStore()
	a := members.add("Karim", "01712345678")
	b := members.add("Rahim", "01898765432")
	ctx := context.Background()
	require.NoError(t, deposits.Create(ctx, &models.Deposit{MemberID: a.ID, Amount: 500, Status: models.DepositStatusApproved, Date: time.Now()}))
	require.NoError(t, deposits.Create(ctx, &models.Deposit{MemberID: a.ID, Amount: 300, Status: models.DepositStatusPending, Date: time.Now()}))
	svc := NewMemberService(members, deposits)

	totals, err := svc.ListWithTotals(ctx)

	require.NoError(t, err)
	require.Len(t, totals, 2)
	byID := map[int]float64{}
	for _, mt := range totals {
		byID[mt.ID] = mt.TotalDeposit
	}
	assert.Equal(t, 800.0, byID[a.ID])
	assert.Equal(t, 0.0, byID[b.ID])
}

func TestMemberService_StoreFaultWrapped(t *testing.T) {
	members := newFakeMemberStore()
	members.err = errStoreDown
	svc := NewMemberService(members, newFakeDepositStore())

	_, err := svc.List(context.Background())

	assert.ErrorIs(t, err, apperr.ErrStoreFault)
}
