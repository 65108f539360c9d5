package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/VATSALJOSHI07/RERA-Document-Tracking-2/internal/model"

	"github.com/shopspring/decimal"
)

// memStore is an in-memory Store used by the component tests. WithTx takes a
// snapshot and restores it when fn fails, mirroring transactional rollback.
// The Fail* hooks inject persistence errors for atomicity tests.
type memStore struct {
	mu     sync.Mutex
	nextID uint

	users     map[uint]*model.User
	clients   map[uint]*model.Client
	documents map[uint]*model.Document
	payments  map[uint]*model.Payment
	tasks     map[uint]*model.Task

	FailCreateDocument error
	FailDeletePayments error
	FailSaveDocument   error
}

func newMemStore() *memStore {
	return &memStore{
		users:     map[uint]*model.User{},
		clients:   map[uint]*model.Client{},
		documents: map[uint]*model.Document{},
		payments:  map[uint]*model.Payment{},
		tasks:     map[uint]*model.Task{},
	}
}

func (s *memStore) nextIDLocked() uint {
	s.nextID++
	return s.nextID
}

func cloneDocument(d *model.Document) *model.Document {
	out := *d
	out.Documents = make(model.DocumentMap, len(d.Documents))
	for k, v := range d.Documents {
		out.Documents[k] = v
	}
	return &out
}

func clonePayment(p *model.Payment) *model.Payment {
	out := *p
	out.Transactions = append(model.TransactionList{}, p.Transactions...)
	return &out
}

func (s *memStore) snapshotLocked() *memStore {
	snap := newMemStore()
	snap.nextID = s.nextID
	for id, u := range s.users {
		copied := *u
		snap.users[id] = &copied
	}
	for id, c := range s.clients {
		copied := *c
		snap.clients[id] = &copied
	}
	for id, d := range s.documents {
		snap.documents[id] = cloneDocument(d)
	}
	for id, p := range s.payments {
		snap.payments[id] = clonePayment(p)
	}
	for id, t := range s.tasks {
		copied := *t
		snap.tasks[id] = &copied
	}
	return snap
}

func (s *memStore) restoreLocked(snap *memStore) {
	s.nextID = snap.nextID
	s.users = snap.users
	s.clients = snap.clients
	s.documents = snap.documents
	s.payments = snap.payments
	s.tasks = snap.tasks
}

func (s *memStore) WithTx(ctx context.Context, fn func(Store) error) error {
	s.mu.Lock()
	snap := s.snapshotLocked()
	s.mu.Unlock()

	if err := fn(s); err != nil {
		s.mu.Lock()
		s.restoreLocked(snap)
		s.mu.Unlock()
		return err
	}
	return nil
}

// Users

func (s *memStore) CreateUser(ctx context.Context, u *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u.ID = s.nextIDLocked()
	copied := *u
	s.users[u.ID] = &copied
	return nil
}

func (s *memStore) UserByExternalID(ctx context.Context, externalID string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.UserID == externalID {
			copied := *u
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("%w: user %q", ErrNotFound, externalID)
}

func (s *memStore) UserByID(ctx context.Context, id uint) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, id)
	}
	copied := *u
	return &copied, nil
}

// Clients

func (s *memStore) CreateClient(ctx context.Context, c *model.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.nextIDLocked()
	copied := *c
	s.clients[c.ID] = &copied
	return nil
}

func (s *memStore) ClientByID(ctx context.Context, id, ownerID uint) (*model.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.clients[id]
	if !ok || c.UserID != ownerID {
		return nil, fmt.Errorf("%w: client %d", ErrNotFound, id)
	}
	copied := *c
	return &copied, nil
}

func (s *memStore) ClientsByOwner(ctx context.Context, ownerID uint) ([]model.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Client
	for _, c := range s.clients {
		if c.UserID == ownerID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (s *memStore) SearchClients(ctx context.Context, ownerID uint, query string) ([]model.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Client
	for _, c := range s.clients {
		if c.UserID != ownerID {
			continue
		}
		if containsFold(c.Name, query) || containsFold(c.PromoterName, query) || containsFold(c.Location, query) {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (s *memStore) ClientNameLocationTaken(ctx context.Context, ownerID uint, name, location string, excludeID uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.clients {
		if c.UserID == ownerID && c.ID != excludeID && c.Name == name && c.Location == location {
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) SaveClient(ctx context.Context, c *model.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clients[c.ID]; !ok {
		return fmt.Errorf("%w: client %d", ErrNotFound, c.ID)
	}
	copied := *c
	s.clients[c.ID] = &copied
	return nil
}

func (s *memStore) DeleteClient(ctx context.Context, id, ownerID uint) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.clients[id]
	if !ok || c.UserID != ownerID {
		return 0, nil
	}
	delete(s.clients, id)
	return 1, nil
}

// Documents

func (s *memStore) CreateDocument(ctx context.Context, d *model.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailCreateDocument != nil {
		return s.FailCreateDocument
	}
	d.ID = s.nextIDLocked()
	s.documents[d.ID] = cloneDocument(d)
	return nil
}

func (s *memStore) DocumentByClient(ctx context.Context, clientID uint) (*model.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.documents {
		if d.ClientID == clientID {
			return cloneDocument(d), nil
		}
	}
	return nil, fmt.Errorf("%w: documents for client %d", ErrNotFound, clientID)
}

func (s *memStore) DocumentsByOwner(ctx context.Context, ownerID uint) ([]model.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Document
	for _, d := range s.documents {
		if d.UserID == ownerID {
			out = append(out, *cloneDocument(d))
		}
	}
	return out, nil
}

func (s *memStore) SaveDocument(ctx context.Context, d *model.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailSaveDocument != nil {
		return s.FailSaveDocument
	}
	if _, ok := s.documents[d.ID]; !ok {
		return fmt.Errorf("%w: documents %d", ErrNotFound, d.ID)
	}
	s.documents[d.ID] = cloneDocument(d)
	return nil
}

func (s *memStore) DeleteDocumentsByClient(ctx context.Context, clientID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, d := range s.documents {
		if d.ClientID == clientID {
			delete(s.documents, id)
		}
	}
	return nil
}

// Payments

func (s *memStore) CreatePayment(ctx context.Context, p *model.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.nextIDLocked()
	s.payments[p.ID] = clonePayment(p)
	return nil
}

func (s *memStore) PaymentByID(ctx context.Context, id uint) (*model.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.payments[id]
	if !ok {
		return nil, fmt.Errorf("%w: payment %d", ErrNotFound, id)
	}
	return clonePayment(p), nil
}

func (s *memStore) PaymentsByClient(ctx context.Context, clientID uint) ([]model.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Payment
	for _, p := range s.payments {
		if p.ClientID == clientID {
			out = append(out, *clonePayment(p))
		}
	}
	return out, nil
}

func (s *memStore) PaymentsByOwner(ctx context.Context, ownerID uint) ([]model.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Payment
	for _, p := range s.payments {
		if p.UserID == ownerID {
			out = append(out, *clonePayment(p))
		}
	}
	return out, nil
}

func (s *memStore) SettlePayment(ctx context.Context, id uint, observedPaid, newPaid decimal.Decimal, transactions model.TransactionList) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.payments[id]
	if !ok {
		return false, nil
	}
	if !p.PaidAmount.Equal(observedPaid) {
		return false, nil
	}
	p.PaidAmount = newPaid
	p.Transactions = append(model.TransactionList{}, transactions...)
	return true, nil
}

func (s *memStore) DeletePayment(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.payments, id)
	return nil
}

func (s *memStore) DeletePaymentsByClient(ctx context.Context, clientID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailDeletePayments != nil {
		return s.FailDeletePayments
	}
	for id, p := range s.payments {
		if p.ClientID == clientID {
			delete(s.payments, id)
		}
	}
	return nil
}

// Tasks

func (s *memStore) CreateTask(ctx context.Context, t *model.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = s.nextIDLocked()
	copied := *t
	s.tasks[t.ID] = &copied
	return nil
}

func (s *memStore) TaskByID(ctx context.Context, id, ownerID uint) (*model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	if !ok || t.UserID != ownerID {
		return nil, fmt.Errorf("%w: task %d", ErrNotFound, id)
	}
	copied := *t
	return &copied, nil
}

func (s *memStore) TasksByClient(ctx context.Context, clientID uint) ([]model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Task
	for _, t := range s.tasks {
		if t.ClientID == clientID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (s *memStore) SaveTask(ctx context.Context, t *model.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tasks[t.ID]; !ok {
		return fmt.Errorf("%w: task %d", ErrNotFound, t.ID)
	}
	copied := *t
	s.tasks[t.ID] = &copied
	return nil
}

func (s *memStore) DeleteTask(ctx context.Context, id, ownerID uint) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	if !ok || t.UserID != ownerID {
		return 0, nil
	}
	delete(s.tasks, id)
	return 1, nil
}

func (s *memStore) DeleteTasksByClient(ctx context.Context, clientID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, t := range s.tasks {
		if t.ClientID == clientID {
			delete(s.tasks, id)
		}
	}
	return nil
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
