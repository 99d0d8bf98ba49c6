package services

import (
	"bytes"
	"context"
	"errors"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/solo-mizan/goru-club/internal/models"
)

// -------- in-memory store fakes --------

type fakeMemberStore struct {
	members map[int]models.Member
	nextID  int
	err     error
}

func newFakeMemberStore() *fakeMemberStore {
	return &fakeMemberStore{members: make(map[int]models.Member), nextID: 1}
}

func (f *fakeMemberStore) add(name, phone string) models.Member {
	m := models.Member{ID: f.nextID, Name: name, PhoneNumber: phone, IsActive: true, JoinDate: time.Now()}
	f.members[m.ID] = m
	f.nextID++
	return m
}

func (f *fakeMemberStore) List(ctx context.Context) ([]models.Member, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Member
	for _, m := range f.members {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeMemberStore) Get(ctx context.Context, id int) (*models.Member, error) {
	if f.err != nil {
		return nil, f.err
	}
	m, ok := f.members[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &m, nil
}

func (f *fakeMemberStore) Create(ctx context.Context, m *models.Member) error {
	if f.err != nil {
		return f.err
	}
	m.ID = f.nextID
	m.JoinDate = time.Now()
	f.members[m.ID] = *m
	f.nextID++
	return nil
}

func (f *fakeMemberStore) Update(ctx context.Context, m *models.Member) error {
	if f.err != nil {
		return f.err
	}
	f.members[m.ID] = *m
	return nil
}

func (f *fakeMemberStore) Delete(ctx context.Context, id int) error {
	if f.err != nil {
		return f.err
	}
	delete(f.members, id)
	return nil
}

func (f *fakeMemberStore) Count(ctx context.Context) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return len(f.members), nil
}

type fakeDepositStore struct {
	deposits map[int]models.Deposit
	nextID   int
	err      error
}

func newFakeDepositStore() *fakeDepositStore {
	return &fakeDepositStore{deposits: make(map[int]models.Deposit), nextID: 1}
}

func (f *fakeDepositStore) all() []models.Deposit {
	var out []models.Deposit
	for _, d := range f.deposits {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *fakeDepositStore) List(ctx context.Context) ([]models.Deposit, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := f.all()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (f *fakeDepositStore) ListAll(ctx context.Context) ([]models.Deposit, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.all(), nil
}

func (f *fakeDepositStore) ListByMember(ctx context.Context, memberID int) ([]models.Deposit, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Deposit
	for _, d := range f.all() {
		if d.MemberID == memberID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDepositStore) Get(ctx context.Context, id int) (*models.Deposit, error) {
	if f.err != nil {
		return nil, f.err
	}
	d, ok := f.deposits[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &d, nil
}

func (f *fakeDepositStore) Create(ctx context.Context, d *models.Deposit) error {
	if f.err != nil {
		return f.err
	}
	d.ID = f.nextID
	f.deposits[d.ID] = *d
	f.nextID++
	return nil
}

func (f *fakeDepositStore) Update(ctx context.Context, d *models.Deposit) error {
	if f.err != nil {
		return f.err
	}
	f.deposits[d.ID] = *d
	return nil
}

func (f *fakeDepositStore) Delete(ctx context.Context, id int) error {
	if f.err != nil {
		return f.err
	}
	delete(f.deposits, id)
	return nil
}

func (f *fakeDepositStore) CountByMember(ctx context.Context, memberID int) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	count := 0
	for _, d := range f.deposits {
		if d.MemberID == memberID {
			count++
		}
	}
	return count, nil
}

type fakePurchaseStore struct {
	purchases map[int]models.CowPurchase
	members   map[int][]int
	nextID    int
	err       error
}

func newFakePurchaseStore() *fakePurchaseStore {
	return &fakePurchaseStore{
		purchases: make(map[int]models.CowPurchase),
		members:   make(map[int][]int),
		nextID:    1,
	}
}

func (f *fakePurchaseStore) all() []models.CowPurchase {
	var out []models.CowPurchase
	for _, p := range f.purchases {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *fakePurchaseStore) List(ctx context.Context) ([]models.CowPurchase, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := f.all()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (f *fakePurchaseStore) ListAll(ctx context.Context) ([]models.CowPurchase, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.all(), nil
}

func (f *fakePurchaseStore) Get(ctx context.Context, id int) (*models.CowPurchase, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.purchases[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	p.Members = make([]models.PurchaseMember, 0, len(f.members[id]))
	for _, mid := range f.members[id] {
		p.Members = append(p.Members, models.PurchaseMember{ID: mid})
	}
	return &p, nil
}

func (f *fakePurchaseStore) Create(ctx context.Context, p *models.CowPurchase, memberIDs []int) error {
	if f.err != nil {
		return f.err
	}
	p.ID = f.nextID
	f.purchases[p.ID] = *p
	f.members[p.ID] = memberIDs
	f.nextID++
	return nil
}

func (f *fakePurchaseStore) Update(ctx context.Context, p *models.CowPurchase, memberIDs []int) error {
	if f.err != nil {
		return f.err
	}
	stored := *p
	stored.Members = nil
	f.purchases[p.ID] = stored
	if memberIDs != nil {
		f.members[p.ID] = memberIDs
	}
	return nil
}

func (f *fakePurchaseStore) Delete(ctx context.Context, id int) error {
	if f.err != nil {
		return f.err
	}
	delete(f.purchases, id)
	delete(f.members, id)
	return nil
}

// fakeReceiptStore records save/remove calls instead of touching disk
type fakeReceiptStore struct {
	saved     []string
	removed   []string
	saveErr   error
	removeErr error
	nextPath  string
}

func (f *fakeReceiptStore) Save(file ReceiptFile) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	path := f.nextPath
	if path == "" {
		path = "/uploads/receipt.jpg"
	}
	f.saved = append(f.saved, path)
	return path, nil
}

func (f *fakeReceiptStore) Remove(path string) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	f.removed = append(f.removed, path)
	return nil
}

var errStoreDown = errors.New("connection refused")

func testReceipt() *ReceiptFile {
	return &ReceiptFile{Content: bytes.NewReader([]byte("img")), Filename: "receipt.jpg"}
}
