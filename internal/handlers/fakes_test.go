package handlers

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/solo-mizan/goru-club/internal/models"
	"github.com/solo-mizan/goru-club/internal/services"
)

// In-memory stores backing the services under test. They mirror the
// repository contracts closely enough for handler-level assertions.

type memStore struct {
	members map[int]models.Member
	nextID  int
	err     error
}

func newMemStore() *memStore {
	return &memStore{members: make(map[int]models.Member), nextID: 1}
}

func (s *memStore) add(name, phone string) models.Member {
	m := models.Member{ID: s.nextID, Name: name, PhoneNumber: phone, IsActive: true, JoinDate: time.Now()}
	s.members[m.ID] = m
	s.nextID++
	return m
}

func (s *memStore) List(ctx context.Context) ([]models.Member, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []models.Member
	for _, m := range s.members {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *memStore) Get(ctx context.Context, id int) (*models.Member, error) {
	if s.err != nil {
		return nil, s.err
	}
	m, ok := s.members[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &m, nil
}

func (s *memStore) Create(ctx context.Context, m *models.Member) error {
	if s.err != nil {
		return s.err
	}
	m.ID = s.nextID
	m.JoinDate = time.Now()
	s.members[m.ID] = *m
	s.nextID++
	return nil
}

func (s *memStore) Update(ctx context.Context, m *models.Member) error {
	if s.err != nil {
		return s.err
	}
	s.members[m.ID] = *m
	return nil
}

func (s *memStore) Delete(ctx context.Context, id int) error {
	if s.err != nil {
		return s.err
	}
	delete(s.members, id)
	return nil
}

func (s *memStore) Count(ctx context.Context) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	return len(s.members), nil
}

type depStore struct {
	deposits map[int]models.Deposit
	nextID   int
	err      error
}

func newDepStore() *depStore {
	return &depStore{deposits: make(map[int]models.Deposit), nextID: 1}
}

func (s *depStore) all() []models.Deposit {
	var out []models.Deposit
	for _, d := range s.deposits {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *depStore) List(ctx context.Context) ([]models.Deposit, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := s.all()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (s *depStore) ListAll(ctx context.Context) ([]models.Deposit, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.all(), nil
}

func (s *depStore) ListByMember(ctx context.Context, memberID int) ([]models.Deposit, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []models.Deposit
	for _, d := range s.all() {
		if d.MemberID == memberID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *depStore) Get(ctx context.Context, id int) (*models.Deposit, error) {
	if s.err != nil {
		return nil, s.err
	}
	d, ok := s.deposits[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &d, nil
}

func (s *depStore) Create(ctx context.Context, d *models.Deposit) error {
	if s.err != nil {
		return s.err
	}
	d.ID = s.nextID
	s.deposits[d.ID] = *d
	s.nextID++
	return nil
}

func (s *depStore) Update(ctx context.Context, d *models.Deposit) error {
	if s.err != nil {
		return s.err
	}
	s.deposits[d.ID] = *d
	return nil
}

func (s *depStore) Delete(ctx context.Context, id int) error {
	if s.err != nil {
		return s.err
	}
	delete(s.deposits, id)
	return nil
}

func (s *depStore) CountByMember(ctx context.Context, memberID int) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	count := 0
	for _, d := range s.deposits {
		if d.MemberID == memberID {
			count++
		}
	}
	return count, nil
}

type purchaseStore struct {
	purchases map[int]models.CowPurchase
	nextID    int
	err       error
}

func newPurchaseStore() *purchaseStore {
	return &purchaseStore{purchases: make(map[int]models.CowPurchase), nextID: 1}
}

func (s *purchaseStore) all() []models.CowPurchase {
	var out []models.CowPurchase
	for _, p := range s.purchases {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *purchaseStore) List(ctx context.Context) ([]models.CowPurchase, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := s.all()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (s *purchaseStore) ListAll(ctx context.Context) ([]models.CowPurchase, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.all(), nil
}

func (s *purchaseStore) Get(ctx context.Context, id int) (*models.CowPurchase, error) {
	if s.err != nil {
		return nil, s.err
	}
	p, ok := s.purchases[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &p, nil
}

func (s *purchaseStore) Create(ctx context.Context, p *models.CowPurchase, memberIDs []int) error {
	if s.err != nil {
		return s.err
	}
	p.ID = s.nextID
	p.Members = make([]models.PurchaseMember, 0, len(memberIDs))
	for _, id := range memberIDs {
		p.Members = append(p.Members, models.PurchaseMember{ID: id})
	}
	s.purchases[p.ID] = *p
	s.nextID++
	return nil
}

func (s *purchaseStore) Update(ctx context.Context, p *models.CowPurchase, memberIDs []int) error {
	if s.err != nil {
		return s.err
	}
	if memberIDs != nil {
		p.Members = make([]models.PurchaseMember, 0, len(memberIDs))
		for _, id := range memberIDs {
			p.Members = append(p.Members, models.PurchaseMember{ID: id})
		}
	}
	s.purchases[p.ID] = *p
	return nil
}

func (s *purchaseStore) Delete(ctx context.Context, id int) error {
	if s.err != nil {
		return s.err
	}
	delete(s.purchases, id)
	return nil
}

type receiptRecorder struct {
	saved   []string
	removed []string
	nextID  int
}

func (r *receiptRecorder) Save(f services.ReceiptFile) (string, error) {
	r.nextID++
	path := fmt.Sprintf("/uploads/receipt_%d%s", r.nextID, filepath.Ext(f.Filename))
	r.saved = append(r.saved, path)
	return path, nil
}

func (r *receiptRecorder) Remove(path string) error {
	r.removed = append(r.removed, path)
	return nil
}
