package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one accepted settlement against a payment. The transaction
// list is append-only; paidAmount is the authoritative running total.
type Transaction struct {
	Amount    decimal.Decimal `json:"amount"`
	Date      string          `json:"date"`
	Notes     string          `json:"notes"`
	Timestamp time.Time       `json:"timestamp"`
}

// TransactionList is the ordered settlement history, stored as JSONB.
type TransactionList []Transaction

// Value implements driver.Valuer for JSONB storage
func (l TransactionList) Value() (driver.Value, error) {
	if l == nil {
		l = TransactionList{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner for JSONB retrieval
func (l *TransactionList) Scan(value interface{}) error {
	if value == nil {
		*l = TransactionList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return fmt.Errorf("unsupported type %T for TransactionList", value)
}

// Payment is a billable obligation against a client, settled incrementally.
// Monetary columns are fixed-point numeric(10,2); decimal arithmetic avoids
// the float drift that could make a fully-paid ledger appear unsettled.
type Payment struct {
	ID           uint            `json:"id" gorm:"primarykey"`
	ClientID     uint            `json:"clientId" gorm:"index;not null"`
	UserID       uint            `json:"userId" gorm:"index;not null"`
	Amount       decimal.Decimal `json:"amount" gorm:"type:numeric(10,2);not null"`
	Description  string          `json:"description" gorm:"type:text;not null"`
	DueDate      *time.Time      `json:"dueDate,omitempty"`
	PaidAmount   decimal.Decimal `json:"paidAmount" gorm:"type:numeric(10,2);default:0"`
	Transactions TransactionList `json:"transactions" gorm:"type:jsonb;default:'[]'"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// Remaining returns the unsettled balance.
func (p *Payment) Remaining() decimal.Decimal {
	return p.Amount.Sub(p.PaidAmount)
}

// Settled reports whether the payment is fully paid.
func (p *Payment) Settled() bool {
	return p.PaidAmount.Cmp(p.Amount) >= 0
}
