// Package store provides the GORM/Postgres implementation of the
// persistence port consumed by the core services.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/VATSALJOSHI07/RERA-Document-Tracking-2/internal/model"
	"github.com/VATSALJOSHI07/RERA-Document-Tracking-2/internal/service"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type gormStore struct {
	db *gorm.DB
}

// New wraps a gorm handle in the persistence port.
func New(db *gorm.DB) service.Store {
	return &gormStore{db: db}
}

// wrap translates gorm errors into the port's error kinds.
func wrap(err error, what string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s", service.ErrNotFound, what)
	}
	return fmt.Errorf("%w: %s: %v", service.ErrStorage, what, err)
}

func (s *gormStore) WithTx(ctx context.Context, fn func(service.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}

// Users

func (s *gormStore) CreateUser(ctx context.Context, u *model.User) error {
	return wrap(s.db.WithContext(ctx).Create(u).Error, "create user")
}

func (s *gormStore) UserByExternalID(ctx context.Context, externalID string) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).Where("user_id = ?", externalID).First(&user).Error
	if err != nil {
		return nil, wrap(err, fmt.Sprintf("user %q", externalID))
	}
	return &user, nil
}

func (s *gormStore) UserByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		return nil, wrap(err, fmt.Sprintf("user %d", id))
	}
	return &user, nil
}

// Clients

func (s *gormStore) CreateClient(ctx context.Context, c *model.Client) error {
	return wrap(s.db.WithContext(ctx).Create(c).Error, "create client")
}

func (s *gormStore) ClientByID(ctx context.Context, id, ownerID uint) (*model.Client, error) {
	var client model.Client
	err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID).First(&client).Error
	if err != nil {
		return nil, wrap(err, fmt.Sprintf("client %d", id))
	}
	return &client, nil
}

func (s *gormStore) ClientsByOwner(ctx context.Context, ownerID uint) ([]model.Client, error) {
	var clients []model.Client
	err := s.db.WithContext(ctx).Where("user_id = ?", ownerID).Find(&clients).Error
	if err != nil {
		return nil, wrap(err, "list clients")
	}
	return clients, nil
}

func (s *gormStore) SearchClients(ctx context.Context, ownerID uint, query string) ([]model.Client, error) {
	var clients []model.Client
	pattern := "%" + query + "%"
	err := s.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Where("name ILIKE ? OR promoter_name ILIKE ? OR location ILIKE ?", pattern, pattern, pattern).
		Find(&clients).Error
	if err != nil {
		return nil, wrap(err, "search clients")
	}
	return clients, nil
}

func (s *gormStore) ClientNameLocationTaken(ctx context.Context, ownerID uint, name, location string, excludeID uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Client{}).
		Where("user_id = ? AND name = ? AND location = ? AND id <> ?", ownerID, name, location, excludeID).
		Count(&count).Error
	if err != nil {
		return false, wrap(err, "check duplicate client")
	}
	return count > 0, nil
}

func (s *gormStore) SaveClient(ctx context.Context, c *model.Client) error {
	return wrap(s.db.WithContext(ctx).Save(c).Error, fmt.Sprintf("save client %d", c.ID))
}

func (s *gormStore) DeleteClient(ctx context.Context, id, ownerID uint) (int64, error) {
	res := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID).Delete(&model.Client{})
	if res.Error != nil {
		return 0, wrap(res.Error, fmt.Sprintf("delete client %d", id))
	}
	return res.RowsAffected, nil
}

// Documents

func (s *gormStore) CreateDocument(ctx context.Context, d *model.Document) error {
	return wrap(s.db.WithContext(ctx).Create(d).Error, "create document checklist")
}

func (s *gormStore) DocumentByClient(ctx context.Context, clientID uint) (*model.Document, error) {
	var doc model.Document
	err := s.db.WithContext(ctx).Where("client_id = ?", clientID).First(&doc).Error
	if err != nil {
		return nil, wrap(err, fmt.Sprintf("documents for client %d", clientID))
	}
	return &doc, nil
}

func (s *gormStore) DocumentsByOwner(ctx context.Context, ownerID uint) ([]model.Document, error) {
	var docs []model.Document
	err := s.db.WithContext(ctx).Where("user_id = ?", ownerID).Find(&docs).Error
	if err != nil {
		return nil, wrap(err, "list document checklists")
	}
	return docs, nil
}

func (s *gormStore) SaveDocument(ctx context.Context, d *model.Document) error {
	return wrap(s.db.WithContext(ctx).Save(d).Error, fmt.Sprintf("save documents for client %d", d.ClientID))
}

func (s *gormStore) DeleteDocumentsByClient(ctx context.Context, clientID uint) error {
	return wrap(s.db.WithContext(ctx).Where("client_id = ?", clientID).Delete(&model.Document{}).Error,
		fmt.Sprintf("delete documents for client %d", clientID))
}

// Payments

func (s *gormStore) CreatePayment(ctx context.Context, p *model.Payment) error {
	return wrap(s.db.WithContext(ctx).Create(p).Error, "create payment")
}

func (s *gormStore) PaymentByID(ctx context.Context, id uint) (*model.Payment, error) {
	var payment model.Payment
	err := s.db.WithContext(ctx).First(&payment, id).Error
	if err != nil {
		return nil, wrap(err, fmt.Sprintf("payment %d", id))
	}
	return &payment, nil
}

func (s *gormStore) PaymentsByClient(ctx context.Context, clientID uint) ([]model.Payment, error) {
	var payments []model.Payment
	err := s.db.WithContext(ctx).Where("client_id = ?", clientID).Find(&payments).Error
	if err != nil {
		return nil, wrap(err, "list payments")
	}
	return payments, nil
}

func (s *gormStore) PaymentsByOwner(ctx context.Context, ownerID uint) ([]model.Payment, error) {
	var payments []model.Payment
	err := s.db.WithContext(ctx).Where("user_id = ?", ownerID).Find(&payments).Error
	if err != nil {
		return nil, wrap(err, "list payments")
	}
	return payments, nil
}

// SettlePayment advances the running total and the transaction log together,
// guarded on the previously observed paid_amount. Both columns change in one
// UPDATE so a mid-operation failure cannot leave the ledger half-written.
func (s *gormStore) SettlePayment(ctx context.Context, id uint, observedPaid, newPaid decimal.Decimal, transactions model.TransactionList) (bool, error) {
	res := s.db.WithContext(ctx).Model(&model.Payment{}).
		Where("id = ? AND paid_amount = ?", id, observedPaid).
		Updates(map[string]interface{}{
			"paid_amount":  newPaid,
			"transactions": transactions,
		})
	if res.Error != nil {
		return false, wrap(res.Error, fmt.Sprintf("settle payment %d", id))
	}
	return res.RowsAffected > 0, nil
}

func (s *gormStore) DeletePayment(ctx context.Context, id uint) error {
	return wrap(s.db.WithContext(ctx).Delete(&model.Payment{}, id).Error,
		fmt.Sprintf("delete payment %d", id))
}

func (s *gormStore) DeletePaymentsByClient(ctx context.Context, clientID uint) error {
	return wrap(s.db.WithContext(ctx).Where("client_id = ?", clientID).Delete(&model.Payment{}).Error,
		fmt.Sprintf("delete payments for client %d", clientID))
}

// Tasks

func (s *gormStore) CreateTask(ctx context.Context, t *model.Task) error {
	return wrap(s.db.WithContext(ctx).Create(t).Error, "create task")
}

func (s *gormStore) TaskByID(ctx context.Context, id, ownerID uint) (*model.Task, error) {
	var task model.Task
	err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID).First(&task).Error
	if err != nil {
		return nil, wrap(err, fmt.Sprintf("task %d", id))
	}
	return &task, nil
}

func (s *gormStore) TasksByClient(ctx context.Context, clientID uint) ([]model.Task, error) {
	var tasks []model.Task
	err := s.db.WithContext(ctx).Where("client_id = ?", clientID).Find(&tasks).Error
	if err != nil {
		return nil, wrap(err, "list tasks")
	}
	return tasks, nil
}

func (s *gormStore) SaveTask(ctx context.Context, t *model.Task) error {
	return wrap(s.db.WithContext(ctx).Save(t).Error, fmt.Sprintf("save task %d", t.ID))
}

func (s *gormStore) DeleteTask(ctx context.Context, id, ownerID uint) (int64, error) {
	res := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID).Delete(&model.Task{})
	if res.Error != nil {
		return 0, wrap(res.Error, fmt.Sprintf("delete task %d", id))
	}
	return res.RowsAffected, nil
}

func (s *gormStore) DeleteTasksByClient(ctx context.Context, clientID uint) error {
	return wrap(s.db.WithContext(ctx).Where("client_id = ?", clientID).Delete(&model.Task{}).Error,
		fmt.Sprintf("delete tasks for client %d", clientID))
}
