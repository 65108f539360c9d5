package service

import (
	"context"

	"github.com/VATSALJOSHI07/RERA-Document-Tracking-2/internal/model"

	"github.com/shopspring/decimal"
)

// Store is the persistence port consumed by the core components. The gorm
// implementation lives in internal/store; tests use an in-memory fake.
//
// Lookup methods return ErrNotFound when no row matches; every other
// persistence failure is wrapped in ErrStorage.
type Store interface {
	// WithTx runs fn against a store bound to one transaction. If fn
	// returns an error the transaction is rolled back and the error is
	// returned unchanged.
	WithTx(ctx context.Context, fn func(Store) error) error

	// Users
	CreateUser(ctx context.Context, u *model.User) error
	UserByExternalID(ctx context.Context, externalID string) (*model.User, error)
	UserByID(ctx context.Context, id uint) (*model.User, error)

	// Clients
	CreateClient(ctx context.Context, c *model.Client) error
	ClientByID(ctx context.Context, id, ownerID uint) (*model.Client, error)
	ClientsByOwner(ctx context.Context, ownerID uint) ([]model.Client, error)
	SearchClients(ctx context.Context, ownerID uint, query string) ([]model.Client, error)
	ClientNameLocationTaken(ctx context.Context, ownerID uint, name, location string, excludeID uint) (bool, error)
	SaveClient(ctx context.Context, c *model.Client) error
	DeleteClient(ctx context.Context, id, ownerID uint) (int64, error)

	// Documents (checklists)
	CreateDocument(ctx context.Context, d *model.Document) error
	DocumentByClient(ctx context.Context, clientID uint) (*model.Document, error)
	DocumentsByOwner(ctx context.Context, ownerID uint) ([]model.Document, error)
	SaveDocument(ctx context.Context, d *model.Document) error
	DeleteDocumentsByClient(ctx context.Context, clientID uint) error

	// Payments
	CreatePayment(ctx context.Context, p *model.Payment) error
	PaymentByID(ctx context.Context, id uint) (*model.Payment, error)
	PaymentsByClient(ctx context.Context, clientID uint) ([]model.Payment, error)
	PaymentsByOwner(ctx context.Context, ownerID uint) ([]model.Payment, error)
	// SettlePayment advances paidAmount and the transaction log as one
	// conditional update, guarded on the observed paidAmount. Returns false
	// without error when the guard did not match (concurrent writer or
	// deleted row).
	SettlePayment(ctx context.Context, id uint, observedPaid, newPaid decimal.Decimal, transactions model.TransactionList) (bool, error)
	DeletePayment(ctx context.Context, id uint) error
	DeletePaymentsByClient(ctx context.Context, clientID uint) error

	// Tasks
	CreateTask(ctx context.Context, t *model.Task) error
	TaskByID(ctx context.Context, id, ownerID uint) (*model.Task, error)
	TasksByClient(ctx context.Context, clientID uint) ([]model.Task, error)
	SaveTask(ctx context.Context, t *model.Task) error
	DeleteTask(ctx context.Context, id, ownerID uint) (int64, error)
	DeleteTasksByClient(ctx context.Context, clientID uint) error
}
