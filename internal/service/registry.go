package service

import (
	"context"
	"fmt"
	"time"

	"github.com/VATSALJOSHI07/RERA-Document-Tracking-2/internal/model"
)

// ClientFields carries a partial set of client attributes. Nil fields are
// left untouched on update; the request layer binds JSON into this closed
// set so unknown keys are never persisted.
type ClientFields struct {
	Type            *string    `json:"type"`
	Name            *string    `json:"name"`
	PromoterName    *string    `json:"promoterName"`
	Location        *string    `json:"location"`
	PlotNo          *string    `json:"plotNo"`
	PlotArea        *string    `json:"plotArea"`
	TotalUnits      *int       `json:"totalUnits"`
	BookedUnits     *int       `json:"bookedUnits"`
	WorkStatus      *string    `json:"workStatus"`
	ReraNumber      *string    `json:"reraNumber"`
	CertificateDate *time.Time `json:"certificateDate"`
	Mobile          *string    `json:"mobile"`
	OfficeNumber    *string    `json:"officeNumber"`
	Email           *string    `json:"email"`
	CaName          *string    `json:"caName"`
	EngineerName    *string    `json:"engineerName"`
	ArchitectName   *string    `json:"architectName"`
	Reference       *string    `json:"reference"`
	CompletionDate  *time.Time `json:"completionDate"`
}

// ClientRegistry owns the client record lifecycle: creation with checklist
// seeding, duplicate-guarded updates, and cascade deletion of dependents.
type ClientRegistry struct {
	store     Store
	checklist *ChecklistManager
}

// NewClientRegistry constructs a ClientRegistry. The checklist manager is
// used to seed a checklist inside the same transaction as client creation.
func NewClientRegistry(store Store, checklist *ChecklistManager) *ClientRegistry {
	return &ClientRegistry{store: store, checklist: checklist}
}

// Create validates the required fields, persists the client, and seeds its
// document checklist. The two writes run in one transaction: a seed failure
// rolls the client back so no client exists without a checklist.
func (r *ClientRegistry) Create(ctx context.Context, ownerID uint, fields ClientFields) (*model.Client, error) {
	if fields.Type == nil || *fields.Type == "" {
		return nil, fmt.Errorf("%w: type is required", ErrInvalidInput)
	}
	if !model.ValidClientType(*fields.Type) {
		return nil, fmt.Errorf("%w: unknown client type %q", ErrInvalidInput, *fields.Type)
	}
	if fields.Name == nil || *fields.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if fields.Mobile == nil || *fields.Mobile == "" {
		return nil, fmt.Errorf("%w: mobile is required", ErrInvalidInput)
	}
	if fields.WorkStatus != nil && !model.ValidWorkStatus(*fields.WorkStatus) {
		return nil, fmt.Errorf("%w: unknown work status %q", ErrInvalidInput, *fields.WorkStatus)
	}

	client := &model.Client{UserID: ownerID}
	applyClientFields(client, fields)

	err := r.store.WithTx(ctx, func(tx Store) error {
		if err := tx.CreateClient(ctx, client); err != nil {
			return err
		}
		checklist := NewChecklistManager(tx)
		if _, err := checklist.Seed(ctx, client.ID, ownerID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return client, nil
}

// Get returns one client owned by the caller.
func (r *ClientRegistry) Get(ctx context.Context, clientID, ownerID uint) (*model.Client, error) {
	return r.store.ClientByID(ctx, clientID, ownerID)
}

// List returns all clients owned by the caller.
func (r *ClientRegistry) List(ctx context.Context, ownerID uint) ([]model.Client, error) {
	return r.store.ClientsByOwner(ctx, ownerID)
}

// Search performs a case-insensitive substring match over name, promoter
// name, and location, scoped to the calling owner.
func (r *ClientRegistry) Search(ctx context.Context, ownerID uint, query string) ([]model.Client, error) {
	return r.store.SearchClients(ctx, ownerID, query)
}

// Update applies a partial update. When the name or location would change,
// the resulting (name, location) pair must not collide with another client
// of the same owner.
func (r *ClientRegistry) Update(ctx context.Context, clientID, ownerID uint, fields ClientFields) (*model.Client, error) {
	if fields.Type != nil && !model.ValidClientType(*fields.Type) {
		return nil, fmt.Errorf("%w: unknown client type %q", ErrInvalidInput, *fields.Type)
	}
	if fields.WorkStatus != nil && !model.ValidWorkStatus(*fields.WorkStatus) {
		return nil, fmt.Errorf("%w: unknown work status %q", ErrInvalidInput, *fields.WorkStatus)
	}

	client, err := r.store.ClientByID(ctx, clientID, ownerID)
	if err != nil {
		return nil, err
	}

	if fields.Name != nil || fields.Location != nil {
		name := client.Name
		if fields.Name != nil {
			name = *fields.Name
		}
		location := client.Location
		if fields.Location != nil {
			location = *fields.Location
		}
		taken, err := r.store.ClientNameLocationTaken(ctx, ownerID, name, location, clientID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, fmt.Errorf("%w: a client named %q at %q already exists", ErrConflict, name, location)
		}
	}

	applyClientFields(client, fields)
	if err := r.store.SaveClient(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// Delete removes the client and cascades to its checklist, payments, and
// tasks. The four deletes run in one transaction; a partial failure rolls
// everything back and surfaces the error.
func (r *ClientRegistry) Delete(ctx context.Context, clientID, ownerID uint) error {
	return r.store.WithTx(ctx, func(tx Store) error {
		deleted, err := tx.DeleteClient(ctx, clientID, ownerID)
		if err != nil {
			return err
		}
		if deleted == 0 {
			return fmt.Errorf("%w: client %d", ErrNotFound, clientID)
		}
		if err := tx.DeleteDocumentsByClient(ctx, clientID); err != nil {
			return fmt.Errorf("cascade delete documents for client %d: %w", clientID, err)
		}
		if err := tx.DeletePaymentsByClient(ctx, clientID); err != nil {
			return fmt.Errorf("cascade delete payments for client %d: %w", clientID, err)
		}
		if err := tx.DeleteTasksByClient(ctx, clientID); err != nil {
			return fmt.Errorf("cascade delete tasks for client %d: %w", clientID, err)
		}
		return nil
	})
}

func applyClientFields(c *model.Client, f ClientFields) {
	if f.Type != nil {
		c.Type = *f.Type
	}
	if f.Name != nil {
		c.Name = *f.Name
	}
	if f.PromoterName != nil {
		c.PromoterName = *f.PromoterName
	}
	if f.Location != nil {
		c.Location = *f.Location
	}
	if f.PlotNo != nil {
		c.PlotNo = *f.PlotNo
	}
	if f.PlotArea != nil {
		c.PlotArea = *f.PlotArea
	}
	if f.TotalUnits != nil {
		c.TotalUnits = f.TotalUnits
	}
	if f.BookedUnits != nil {
		c.BookedUnits = f.BookedUnits
	}
	if f.WorkStatus != nil {
		c.WorkStatus = f.WorkStatus
	}
	if f.ReraNumber != nil {
		c.ReraNumber = *f.ReraNumber
	}
	if f.CertificateDate != nil {
		c.CertificateDate = f.CertificateDate
	}
	if f.Mobile != nil {
		c.Mobile = *f.Mobile
	}
	if f.OfficeNumber != nil {
		c.OfficeNumber = *f.OfficeNumber
	}
	if f.Email != nil {
		c.Email = *f.Email
	}
	if f.CaName != nil {
		c.CaName = *f.CaName
	}
	if f.EngineerName != nil {
		c.EngineerName = *f.EngineerName
	}
	if f.ArchitectName != nil {
		c.ArchitectName = *f.ArchitectName
	}
	if f.Reference != nil {
		c.Reference = *f.Reference
	}
	if f.CompletionDate != nil {
		c.CompletionDate = f.CompletionDate
	}
}
