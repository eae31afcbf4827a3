package service

import (
	"context"
	"database/sql"

	"locamaq-backend/internal/domain"
)

// In-memory repository fakes backed by maps. IDs are assigned sequentially
// on create, mirroring the database's RETURNING id behavior.

type fakeUserRepo struct {
	users  map[int32]*domain.User
	nextID int32
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int32]*domain.User{}, nextID: 1}
}

func (r *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	u.ID = r.nextID
	r.nextID++
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, sql.ErrNoRows
}

type fakeClientRepo struct {
	clients map[int32]*domain.Client
	nextID  int32
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: map[int32]*domain.Client{}, nextID: 1}
}

func (r *fakeClientRepo) Create(ctx context.Context, c *domain.Client) error {
	c.ID = r.nextID
	r.nextID++
	cp := *c
	r.clients[c.ID] = &cp
	return nil
}

func (r *fakeClientRepo) GetByID(ctx context.Context, id int32) (*domain.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cp := *c
	return &cp, nil
}

func (r *fakeClientRepo) Update(ctx context.Context, c *domain.Client) error {
	if _, ok := r.clients[c.ID]; !ok {
		return sql.ErrNoRows
	}
	cp := *c
	r.clients[c.ID] = &cp
	return nil
}

func (r *fakeClientRepo) Delete(ctx context.Context, id int32) error {
	delete(r.clients, id)
	return nil
}

func (r *fakeClientRepo) List(ctx context.Context) ([]domain.Client, error) {
	out := make([]domain.Client, 0, len(r.clients))
	for _, c := range r.clients {
		out = append(out, *c)
	}
	return out, nil
}

type fakeEquipmentRepo struct {
	items  map[int32]*domain.Equipment
	nextID int32
}

func newFakeEquipmentRepo() *fakeEquipmentRepo {
	return &fakeEquipmentRepo{items: map[int32]*domain.Equipment{}, nextID: 1}
}

func (r *fakeEquipmentRepo) Create(ctx context.Context, e *domain.Equipment) error {
	e.ID = r.nextID
	r.nextID++
	cp := *e
	r.items[e.ID] = &cp
	return nil
}

func (r *fakeEquipmentRepo) GetByID(ctx context.Context, id int32) (*domain.Equipment, error) {
	e, ok := r.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cp := *e
	return &cp, nil
}

func (r *fakeEquipmentRepo) Update(ctx context.Context, e *domain.Equipment) error {
	if _, ok := r.items[e.ID]; !ok {
		return sql.ErrNoRows
	}
	cp := *e
	r.items[e.ID] = &cp
	return nil
}

func (r *fakeEquipmentRepo) Delete(ctx context.Context, id int32) error {
	delete(r.items, id)
	return nil
}

func (r *fakeEquipmentRepo) List(ctx context.Context) ([]domain.Equipment, error) {
	out := make([]domain.Equipment, 0, len(r.items))
	for _, e := range r.items {
		out = append(out, *e)
	}
	return out, nil
}

type fakeContractRepo struct {
	contracts map[int32]*domain.Contract
	lineItems map[int32][]domain.ContractEquipment
	nextID    int32
}

func newFakeContractRepo() *fakeContractRepo {
	return &fakeContractRepo{
		contracts: map[int32]*domain.Contract{},
		lineItems: map[int32][]domain.ContractEquipment{},
		nextID:    1,
	}
}

func (r *fakeContractRepo) Create(ctx context.Context, c *domain.Contract) error {
	c.ID = r.nextID
	r.nextID++
	cp := *c
	r.contracts[c.ID] = &cp
	return nil
}

func (r *fakeContractRepo) GetByID(ctx context.Context, id int32) (*domain.Contract, error) {
	c, ok := r.contracts[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cp := *c
	cp.Equipment = append([]domain.ContractEquipment(nil), r.lineItems[id]...)
	return &cp, nil
}

func (r *fakeContractRepo) Update(ctx context.Context, c *domain.Contract) error {
	if _, ok := r.contracts[c.ID]; !ok {
		return sql.ErrNoRows
	}
	cp := *c
	r.contracts[c.ID] = &cp
	return nil
}

func (r *fakeContractRepo) Delete(ctx context.Context, id int32) error {
	delete(r.contracts, id)
	delete(r.lineItems, id)
	return nil
}

func (r *fakeContractRepo) List(ctx context.Context) ([]domain.Contract, error) {
	out := make([]domain.Contract, 0, len(r.contracts))
	for _, c := range r.contracts {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeContractRepo) ListByClient(ctx context.Context, clientID int32) ([]domain.Contract, error) {
	var out []domain.Contract
	for _, c := range r.contracts {
		if c.ClientID == clientID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeContractRepo) ListDueBetween(ctx context.Context, from, to string) ([]domain.Contract, error) {
	var out []domain.Contract
	for _, c := range r.contracts {
		if c.DueDate >= from && c.DueDate < to {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeContractRepo) CreateLineItem(ctx context.Context, item *domain.ContractEquipment) error {
	item.ID = int32(len(r.lineItems[item.ContractID]) + 1)
	r.lineItems[item.ContractID] = append(r.lineItems[item.ContractID], *item)
	return nil
}

func (r *fakeContractRepo) ListLineItems(ctx context.Context, contractID int32) ([]domain.ContractEquipment, error) {
	return append([]domain.ContractEquipment(nil), r.lineItems[contractID]...), nil
}

func (r *fakeContractRepo) DeleteLineItems(ctx context.Context, contractID int32) error {
	delete(r.lineItems, contractID)
	return nil
}

func (r *fakeContractRepo) UpdateSignatureStatus(ctx context.Context, contractID int32, status domain.SignatureStatus, signedAt string) error {
	c, ok := r.contracts[contractID]
	if !ok {
		return sql.ErrNoRows
	}
	c.SignatureStatus = status
	c.SignedAt = signedAt
	return nil
}

type fakeDevolutionRepo struct {
	items  map[int32]*domain.Devolution
	nextID int32
}

func newFakeDevolutionRepo() *fakeDevolutionRepo {
	return &fakeDevolutionRepo{items: map[int32]*domain.Devolution{}, nextID: 1}
}

func (r *fakeDevolutionRepo) Create(ctx context.Context, d *domain.Devolution) error {
	d.ID = r.nextID
	r.nextID++
	cp := *d
	r.items[d.ID] = &cp
	return nil
}

func (r *fakeDevolutionRepo) GetByID(ctx context.Context, id int32) (*domain.Devolution, error) {
	d, ok := r.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cp := *d
	return &cp, nil
}

func (r *fakeDevolutionRepo) Update(ctx context.Context, d *domain.Devolution) error {
	if _, ok := r.items[d.ID]; !ok {
		return sql.ErrNoRows
	}
	cp := *d
	r.items[d.ID] = &cp
	return nil
}

func (r *fakeDevolutionRepo) Delete(ctx context.Context, id int32) error {
	delete(r.items, id)
	return nil
}

func (r *fakeDevolutionRepo) List(ctx context.Context) ([]domain.Devolution, error) {
	out := make([]domain.Devolution, 0, len(r.items))
	for _, d := range r.items {
		out = append(out, *d)
	}
	return out, nil
}

func (r *fakeDevolutionRepo) ListByContract(ctx context.Context, contractID int32) ([]domain.Devolution, error) {
	var out []domain.Devolution
	for _, d := range r.items {
		if d.ContractID == contractID {
			out = append(out, *d)
		}
	}
	return out, nil
}

type fakeSignatureRepo struct {
	items  map[int32]*domain.Signature
	nextID int32
}

func newFakeSignatureRepo() *fakeSignatureRepo {
	return &fakeSignatureRepo{items: map[int32]*domain.Signature{}, nextID: 1}
}

func (r *fakeSignatureRepo) Create(ctx context.Context, s *domain.Signature) error {
	s.ID = r.nextID
	r.nextID++
	cp := *s
	r.items[s.ID] = &cp
	return nil
}

func (r *fakeSignatureRepo) GetByID(ctx context.Context, id int32) (*domain.Signature, error) {
	s, ok := r.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSignatureRepo) GetByContract(ctx context.Context, contractID int32) (*domain.Signature, error) {
	var latest *domain.Signature
	for _, s := range r.items {
		if s.ContractID == contractID && (latest == nil || s.ID > latest.ID) {
			latest = s
		}
	}
	if latest == nil {
		return nil, sql.ErrNoRows
	}
	cp := *latest
	return &cp, nil
}

func (r *fakeSignatureRepo) Update(ctx context.Context, s *domain.Signature) error {
	if _, ok := r.items[s.ID]; !ok {
		return sql.ErrNoRows
	}
	cp := *s
	r.items[s.ID] = &cp
	return nil
}

func (r *fakeSignatureRepo) ExpirePendingBefore(ctx context.Context, cutoff string) (int64, error) {
	var n int64
	for _, s := range r.items {
		if s.Status == domain.SignaturePending && s.CreatedAt != "" && s.CreatedAt < cutoff {
			s.Status = domain.SignatureExpired
			n++
		}
	}
	return n, nil
}

type sentMail struct {
	Kind           string
	To             string
	ClientName     string
	ContractNumber string
}

// fakeEmailService records outgoing mail instead of talking to SMTP.
type fakeEmailService struct {
	sent []sentMail
}

func (f *fakeEmailService) SendDueSoonReminder(ctx context.Context, to, clientName, contractNumber, dueDate string, value float64) error {
	f.sent = append(f.sent, sentMail{Kind: "due-soon", To: to, ClientName: clientName, ContractNumber: contractNumber})
	return nil
}

func (f *fakeEmailService) SendSignatureRequest(ctx context.Context, to, clientName, contractNumber string) error {
	f.sent = append(f.sent, sentMail{Kind: "signature-request", To: to, ClientName: clientName, ContractNumber: contractNumber})
	return nil
}

func (f *fakeEmailService) SendOverdueNotice(ctx context.Context, to, clientName, contractNumber, dueDate string, value float64) error {
	f.sent = append(f.sent, sentMail{Kind: "overdue", To: to, ClientName: clientName, ContractNumber: contractNumber})
	return nil
}
