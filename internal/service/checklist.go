package service

import (
	"context"
	"fmt"
	"time"

	"github.com/VATSALJOSHI07/RERA-Document-Tracking-2/internal/model"
)

// defaultDocuments is the canonical checklist seeded for every new client.
// The labels are part of the stored contract and must match existing data
// exactly.
var defaultDocuments = []string{
	"PAN Card of the Firm/Company",
	"Udyam Aadhar / Gumasta",
	"KYC of Partners",
	"KYC of Authorized Signatory",
	"Board Resolution",
	"Commencement Certificate",
	"Approved Plan Layout",
	"RERA Carpet Area Statement",
	"Sale Deed",
	"Power of Attorney",
	"Mortgage Deed",
	"Tally Data",
	"Form 3 – CA Certificate",
	"Bifurcation of Units",
	"Bank Account Details",
	"Title Report",
	"Form 1 – Architect Certificate",
	"Letterhead",
	"Partnership Deed",
	"GST Certificate",
	"Land Ownership Documents",
	"Agreement for Sale and Deviation Reports",
	"Allotment Letter and Deviation Reports",
	"Project Name",
	"Completion Date",
	"Architect Details",
	"RCC Consultant Details",
	"CA Details",
	"Contact Person Details for MahaRERA Profile",
	"Loan and Litigation Information",
	"Phase-wise Project Details",
	"Google Map Location of the Project",
	"Address Proof of the Organization",
	"NOC if Address Proof is not in the firm's name",
	"CC Verification Email Screenshot",
	"Amenities Details",
	"SRO Membership Certificate",
}

// DefaultDocumentLabels returns a copy of the canonical seed list.
func DefaultDocumentLabels() []string {
	labels := make([]string, len(defaultDocuments))
	copy(labels, defaultDocuments)
	return labels
}

// ChecklistManager owns the document-status map lifecycle for a client.
type ChecklistManager struct {
	store Store
}

// NewChecklistManager constructs a ChecklistManager backed by the given store.
func NewChecklistManager(store Store) *ChecklistManager {
	return &ChecklistManager{store: store}
}

// Seed creates the checklist row for a freshly created client, every
// canonical label initialized to not-received. It is called inside the same
// transaction as the client insert; a seed failure rolls the client back.
func (m *ChecklistManager) Seed(ctx context.Context, clientID, ownerID uint) (*model.Document, error) {
	documents := make(model.DocumentMap, len(defaultDocuments))
	for _, label := range defaultDocuments {
		documents[label] = model.StatusNotReceived
	}

	doc := &model.Document{
		ClientID:    clientID,
		UserID:      ownerID,
		Documents:   documents,
		LastUpdated: time.Now(),
	}
	if err := m.store.CreateDocument(ctx, doc); err != nil {
		return nil, fmt.Errorf("seed checklist for client %d: %w", clientID, err)
	}
	return doc, nil
}

// Get returns the checklist for a client.
func (m *ChecklistManager) Get(ctx context.Context, clientID uint) (*model.Document, error) {
	return m.store.DocumentByClient(ctx, clientID)
}

// SetStatus replaces (or inserts) the single label -> status entry and
// refreshes the last-modified timestamp. The status string is stored as
// supplied; the canonical domain is received/not-received but historical
// data may carry other values, so no enum check is applied here.
func (m *ChecklistManager) SetStatus(ctx context.Context, clientID uint, label, status string) (*model.Document, error) {
	if label == "" {
		return nil, fmt.Errorf("%w: document name is required", ErrInvalidInput)
	}

	doc, err := m.store.DocumentByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	if doc.Documents == nil {
		doc.Documents = model.DocumentMap{}
	}
	doc.Documents[label] = status
	doc.LastUpdated = time.Now()

	if err := m.store.SaveDocument(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// AddLabel inserts a new label with status not-received. A label that is
// already a key of the map is rejected, regardless of its stored value.
func (m *ChecklistManager) AddLabel(ctx context.Context, clientID uint, label string) (*model.Document, error) {
	if label == "" {
		return nil, fmt.Errorf("%w: document name is required", ErrInvalidInput)
	}

	doc, err := m.store.DocumentByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	if _, exists := doc.Documents[label]; exists {
		return nil, fmt.Errorf("%w: document %q already exists", ErrConflict, label)
	}

	if doc.Documents == nil {
		doc.Documents = model.DocumentMap{}
	}
	doc.Documents[label] = model.StatusNotReceived
	doc.LastUpdated = time.Now()

	if err := m.store.SaveDocument(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// ClientPending pairs a client id with its still-outstanding document labels.
type ClientPending struct {
	ClientID uint     `json:"clientId"`
	Pending  []string `json:"pending"`
}

// PendingForClient lists the labels still marked not-received for one client.
func (m *ChecklistManager) PendingForClient(ctx context.Context, clientID uint) ([]string, error) {
	doc, err := m.store.DocumentByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return pendingLabels(doc.Documents), nil
}

// PendingForOwner lists outstanding labels across all of an owner's clients.
// Clients with nothing pending are omitted.
func (m *ChecklistManager) PendingForOwner(ctx context.Context, ownerID uint) ([]ClientPending, error) {
	docs, err := m.store.DocumentsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	report := make([]ClientPending, 0, len(docs))
	for _, doc := range docs {
		pending := pendingLabels(doc.Documents)
		if len(pending) == 0 {
			continue
		}
		report = append(report, ClientPending{ClientID: doc.ClientID, Pending: pending})
	}
	return report, nil
}

func pendingLabels(documents model.DocumentMap) []string {
	pending := make([]string, 0, len(documents))
	for _, label := range defaultDocuments {
		if documents[label] == model.StatusNotReceived {
			pending = append(pending, label)
		}
	}
	// Labels added after seeding are not in the canonical list; keep them
	// after the canonical ones in map order.
	canonical := make(map[string]bool, len(defaultDocuments))
	for _, label := range defaultDocuments {
		canonical[label] = true
	}
	for label, status := range documents {
		if !canonical[label] && status == model.StatusNotReceived {
			pending = append(pending, label)
		}
	}
	return pending
}
