package service

import (
	"context"
	"errors"
	"testing"

	"github.com/VATSALJOSHI07/RERA-Document-Tracking-2/internal/model"
)

func strptr(s string) *string { return &s }

func validClientFields() ClientFields {
	return ClientFields{
		Type:   strptr(model.ClientTypeDeveloper),
		Name:   strptr("Skyline Heights"),
		Mobile: strptr("9876543210"),
	}
}

func newRegistry(store *memStore) *ClientRegistry {
	return NewClientRegistry(store, NewChecklistManager(store))
}

func TestCreateClientSeedsChecklist(t *testing.T) {
	store := newMemStore()
	r := newRegistry(store)

	client, err := r.Create(context.Background(), 1, validClientFields())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if client.ID == 0 {
		t.Fatalf("client id not assigned")
	}

	doc, err := store.DocumentByClient(context.Background(), client.ID)
	if err != nil {
		t.Fatalf("checklist missing after client creation: %v", err)
	}
	if len(doc.Documents) != len(DefaultDocumentLabels()) {
		t.Fatalf("checklist has %d labels, want %d", len(doc.Documents), len(DefaultDocumentLabels()))
	}
	for label, status := range doc.Documents {
		if status != model.StatusNotReceived {
			t.Errorf("label %q seeded as %q", label, status)
		}
	}
}

func TestCreateClientValidation(t *testing.T) {
	store := newMemStore()
	r := newRegistry(store)

	cases := []struct {
		name   string
		fields ClientFields
	}{
		{"missing type", ClientFields{Name: strptr("X"), Mobile: strptr("1")}},
		{"unknown type", ClientFields{Type: strptr("Broker"), Name: strptr("X"), Mobile: strptr("1")}},
		{"missing name", ClientFields{Type: strptr(model.ClientTypeAgent), Mobile: strptr("1")}},
		{"missing mobile", ClientFields{Type: strptr(model.ClientTypeAgent), Name: strptr("X")}},
		{"unknown work status", func() ClientFields {
			f := validClientFields()
			f.WorkStatus = strptr("Paused")
			return f
		}()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := r.Create(context.Background(), 1, tc.fields); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

// A seed failure must roll the client back: client creation and checklist
// seeding are one unit of work.
func TestCreateClientRollsBackOnSeedFailure(t *testing.T) {
	store := newMemStore()
	store.FailCreateDocument = errors.New("jsonb column rejected")
	r := newRegistry(store)

	_, err := r.Create(context.Background(), 1, validClientFields())
	if err == nil {
		t.Fatalf("expected creation to fail when seeding fails")
	}

	clients, err := store.ClientsByOwner(context.Background(), 1)
	if err != nil {
		t.Fatalf("list clients: %v", err)
	}
	if len(clients) != 0 {
		t.Fatalf("orphaned client survived a failed seed: %d clients", len(clients))
	}
}

func TestUpdateClientPartial(t *testing.T) {
	store := newMemStore()
	r := newRegistry(store)

	client, err := r.Create(context.Background(), 1, validClientFields())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := r.Update(context.Background(), client.ID, 1, ClientFields{
		Location:   strptr("Pune"),
		ReraNumber: strptr("P52100012345"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Location != "Pune" || updated.ReraNumber != "P52100012345" {
		t.Errorf("changed fields not applied: %+v", updated)
	}
	if updated.Name != "Skyline Heights" || updated.Mobile != "9876543210" {
		t.Errorf("unspecified fields were touched: %+v", updated)
	}
}

func TestUpdateClientDuplicateNameLocation(t *testing.T) {
	store := newMemStore()
	r := newRegistry(store)

	first, err := r.Create(context.Background(), 1, ClientFields{
		Type: strptr(model.ClientTypeDeveloper), Name: strptr("Skyline Heights"),
		Location: strptr("Pune"), Mobile: strptr("9876543210"),
	})
	if err != nil {
		t.Fatalf("create first: %v", err)
	}
	second, err := r.Create(context.Background(), 1, ClientFields{
		Type: strptr(model.ClientTypeDeveloper), Name: strptr("Green Acres"),
		Location: strptr("Mumbai"), Mobile: strptr("9123456780"),
	})
	if err != nil {
		t.Fatalf("create second: %v", err)
	}

	_, err = r.Update(context.Background(), second.ID, 1, ClientFields{
		Name: strptr("Skyline Heights"), Location: strptr("Pune"),
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	// Both records unchanged
	got1, _ := store.ClientByID(context.Background(), first.ID, 1)
	got2, _ := store.ClientByID(context.Background(), second.ID, 1)
	if got1.Name != "Skyline Heights" || got2.Name != "Green Acres" {
		t.Errorf("failed update mutated records: %q / %q", got1.Name, got2.Name)
	}
}

func TestUpdateClientSameOwnerDifferentOwnerNoConflict(t *testing.T) {
	store := newMemStore()
	r := newRegistry(store)

	if _, err := r.Create(context.Background(), 1, ClientFields{
		Type: strptr(model.ClientTypeDeveloper), Name: strptr("Skyline Heights"),
		Location: strptr("Pune"), Mobile: strptr("9876543210"),
	}); err != nil {
		t.Fatalf("create: %v", err)
	}
	other, err := r.Create(context.Background(), 2, ClientFields{
		Type: strptr(model.ClientTypeDeveloper), Name: strptr("Green Acres"),
		Location: strptr("Mumbai"), Mobile: strptr("9123456780"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// The duplicate check is scoped per owner
	if _, err := r.Update(context.Background(), other.ID, 2, ClientFields{
		Name: strptr("Skyline Heights"), Location: strptr("Pune"),
	}); err != nil {
		t.Fatalf("cross-owner duplicate should be allowed: %v", err)
	}
}

func TestUpdateClientNotFound(t *testing.T) {
	store := newMemStore()
	r := newRegistry(store)

	client, err := r.Create(context.Background(), 1, validClientFields())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Wrong owner is indistinguishable from absent
	if _, err := r.Update(context.Background(), client.ID, 2, ClientFields{Name: strptr("X")}); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for foreign owner, got %v", err)
	}
	if _, err := r.Update(context.Background(), 999, 1, ClientFields{Name: strptr("X")}); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown id, got %v", err)
	}
}

func TestDeleteClientCascades(t *testing.T) {
	store := newMemStore()
	r := newRegistry(store)
	ledger := NewPaymentLedger(store)
	tasks := NewTaskService(store)

	client, err := r.Create(context.Background(), 1, validClientFields())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	amount := dec("75.00")
	if _, err := ledger.Create(context.Background(), 1, client.ID, &amount, "fees", nil); err != nil {
		t.Fatalf("create payment: %v", err)
	}
	if _, err := tasks.Create(context.Background(), 1, client.ID, TaskFields{Title: strptr("File Form 3")}); err != nil {
		t.Fatalf("create task: %v", err)
	}

	if err := r.Delete(context.Background(), client.ID, 1); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := store.ClientByID(context.Background(), client.ID, 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("client still present: %v", err)
	}
	if _, err := store.DocumentByClient(context.Background(), client.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("checklist survived cascade: %v", err)
	}
	payments, _ := store.PaymentsByClient(context.Background(), client.ID)
	if len(payments) != 0 {
		t.Errorf("%d payments survived cascade", len(payments))
	}
	remaining, _ := store.TasksByClient(context.Background(), client.ID)
	if len(remaining) != 0 {
		t.Errorf("%d tasks survived cascade", len(remaining))
	}
}

// A partial cascade failure surfaces an error and retains nothing half-done.
func TestDeleteClientCascadeFailureRollsBack(t *testing.T) {
	store := newMemStore()
	r := newRegistry(store)

	client, err := r.Create(context.Background(), 1, validClientFields())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	store.FailDeletePayments = errors.New("connection reset")

	if err := r.Delete(context.Background(), client.ID, 1); err == nil {
		t.Fatalf("expected cascade failure to surface")
	}

	// The client and its checklist are still intact
	if _, err := store.ClientByID(context.Background(), client.ID, 1); err != nil {
		t.Errorf("client lost in failed cascade: %v", err)
	}
	if _, err := store.DocumentByClient(context.Background(), client.ID); err != nil {
		t.Errorf("checklist lost in failed cascade: %v", err)
	}
}

func TestDeleteClientNotFound(t *testing.T) {
	store := newMemStore()
	r := newRegistry(store)

	if err := r.Delete(context.Background(), 42, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSearchClients(t *testing.T) {
	store := newMemStore()
	r := newRegistry(store)

	seed := []ClientFields{
		{Type: strptr(model.ClientTypeDeveloper), Name: strptr("Skyline Heights"), Location: strptr("Pune"), Mobile: strptr("1")},
		{Type: strptr(model.ClientTypeAgent), Name: strptr("Green Acres"), PromoterName: strptr("Skyline Promoters"), Location: strptr("Mumbai"), Mobile: strptr("2")},
		{Type: strptr(model.ClientTypeLitigation), Name: strptr("Harbor View"), Location: strptr("Thane"), Mobile: strptr("3")},
	}
	for _, f := range seed {
		if _, err := r.Create(context.Background(), 1, f); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	// Another owner's client must never match
	if _, err := r.Create(context.Background(), 2, ClientFields{
		Type: strptr(model.ClientTypeDeveloper), Name: strptr("Skyline Towers"), Mobile: strptr("4"),
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	results, err := r.Search(context.Background(), 1, "skyline")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	// Matches the name of one client and the promoter name of another
	if len(results) != 2 {
		t.Fatalf("search %q returned %d results, want 2", "skyline", len(results))
	}
	for _, c := range results {
		if c.UserID != 1 {
			t.Errorf("search leaked a foreign owner's client %d", c.ID)
		}
	}
}
