package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Checklist document statuses. SetStatus stores caller-supplied strings
// as-is for compatibility with existing data; these are the canonical values.
const (
	StatusReceived    = "received"
	StatusNotReceived = "not-received"
)

// DocumentMap maps a document label to its received/not-received status.
// Stored as a JSONB column.
type DocumentMap map[string]string

// Value implements driver.Valuer for JSONB storage
func (m DocumentMap) Value() (driver.Value, error) {
	if m == nil {
		m = DocumentMap{}
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner for JSONB retrieval
func (m *DocumentMap) Scan(value interface{}) error {
	if value == nil {
		*m = DocumentMap{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	}
	return fmt.Errorf("unsupported type %T for DocumentMap", value)
}

// Document is the per-client required-document checklist. Exactly one row
// exists per client, seeded when the client is created.
type Document struct {
	ID          uint        `json:"id" gorm:"primarykey"`
	ClientID    uint        `json:"clientId" gorm:"uniqueIndex;not null"`
	UserID      uint        `json:"userId" gorm:"index;not null"`
	Documents   DocumentMap `json:"documents" gorm:"type:jsonb;default:'{}'"`
	LastUpdated time.Time   `json:"lastUpdated"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}
