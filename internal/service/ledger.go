package service

import (
	"context"
	"fmt"
	"time"

	"github.com/VATSALJOSHI07/RERA-Document-Tracking-2/internal/model"

	"github.com/shopspring/decimal"
)

// settleRetries bounds the compare-and-swap loop in Record. Each retry
// re-reads the payment and re-checks the overpayment guard against the
// fresh balance.
const settleRetries = 3

// PaymentLedger owns incremental settlement, transaction history, and the
// deletion guard for a client's payments.
type PaymentLedger struct {
	store Store
}

// NewPaymentLedger constructs a PaymentLedger backed by the given store.
func NewPaymentLedger(store Store) *PaymentLedger {
	return &PaymentLedger{store: store}
}

// Create opens a new payment obligation. paidAmount starts at zero with an
// empty transaction log.
func (l *PaymentLedger) Create(ctx context.Context, ownerID, clientID uint, amount *decimal.Decimal, description string, dueDate *time.Time) (*model.Payment, error) {
	if clientID == 0 {
		return nil, fmt.Errorf("%w: clientId is required", ErrInvalidInput)
	}
	if amount == nil {
		return nil, fmt.Errorf("%w: amount is required", ErrInvalidInput)
	}
	if amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount must not be negative", ErrInvalidInput)
	}
	if description == "" {
		return nil, fmt.Errorf("%w: description is required", ErrInvalidInput)
	}

	payment := &model.Payment{
		ClientID:     clientID,
		UserID:       ownerID,
		Amount:       *amount,
		Description:  description,
		DueDate:      dueDate,
		PaidAmount:   decimal.Zero,
		Transactions: model.TransactionList{},
	}
	if err := l.store.CreatePayment(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// Record settles part of a payment. The overpayment guard compares against
// the stored paidAmount, never a re-summed transaction log. The new running
// total and the appended transaction are persisted as one conditional update
// so two concurrent recordings cannot both pass the guard on a stale balance.
func (l *PaymentLedger) Record(ctx context.Context, paymentID uint, amount decimal.Decimal, date, notes string) (*model.Payment, error) {
	if amount.Sign() <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}

	for attempt := 0; attempt < settleRetries; attempt++ {
		payment, err := l.store.PaymentByID(ctx, paymentID)
		if err != nil {
			return nil, err
		}

		remaining := payment.Remaining()
		if amount.Cmp(remaining) > 0 {
			return nil, fmt.Errorf("%w: %s remaining, %s requested",
				ErrInvalidAmount, remaining.StringFixed(2), amount.StringFixed(2))
		}

		observed := payment.PaidAmount
		newPaid := observed.Add(amount)
		transactions := append(payment.Transactions, model.Transaction{
			Amount:    amount,
			Date:      date,
			Notes:     notes,
			Timestamp: time.Now(),
		})

		swapped, err := l.store.SettlePayment(ctx, paymentID, observed, newPaid, transactions)
		if err != nil {
			return nil, err
		}
		if swapped {
			payment.PaidAmount = newPaid
			payment.Transactions = transactions
			return payment, nil
		}
		// Lost a race against another recording; re-read and retry.
	}

	return nil, fmt.Errorf("%w: payment %d settlement contention", ErrStorage, paymentID)
}

// Delete removes a payment record. Only a fully settled payment may be
// deleted.
func (l *PaymentLedger) Delete(ctx context.Context, paymentID uint) error {
	payment, err := l.store.PaymentByID(ctx, paymentID)
	if err != nil {
		return err
	}
	if !payment.Settled() {
		return fmt.Errorf("%w: payment is not fully settled", ErrConflict)
	}
	return l.store.DeletePayment(ctx, paymentID)
}

// ListForClient returns all payments recorded against one client.
func (l *PaymentLedger) ListForClient(ctx context.Context, clientID uint) ([]model.Payment, error) {
	return l.store.PaymentsByClient(ctx, clientID)
}

// ListForOwner returns all payments across an owner's clients.
func (l *PaymentLedger) ListForOwner(ctx context.Context, ownerID uint) ([]model.Payment, error) {
	return l.store.PaymentsByOwner(ctx, ownerID)
}
