// Package catalog is the property catalog's data access layer. It wraps
// the raw store with validation, explicit authorization and cache
// invalidation. Mutations take the acting identity as a parameter; an
// unauthorized caller gets ErrUnauthorized back, which is a normal
// negative outcome and always distinguishable from a store failure.
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/bledarhoxha/prona/internal/auth"
	"github.com/bledarhoxha/prona/internal/model"
	"github.com/bledarhoxha/prona/internal/store"
)

// Sentinel errors returned by catalog operations. Anything else is a
// store failure and must be surfaced, not masked as empty data.
var (
	ErrUnauthorized = errors.New("not authorized to modify listings")
	ErrNotFound     = errors.New("property not found")
)

// Service exposes the catalog operations over a single database.
type Service struct {
	DB       *sql.DB
	Notifier *Notifier
}

// NewService creates a catalog service with its own invalidation notifier.
func NewService(db *sql.DB) *Service {
	return &Service{DB: db, Notifier: NewNotifier()}
}

// List returns every listing, newest-created first.
func (s *Service) List(ctx context.Context) ([]model.Property, error) {
	return store.ListProperties(ctx, s.DB)
}

// Get returns one listing. A missing ID yields ErrNotFound; any other
// error is a store failure.
func (s *Service) Get(ctx context.Context, id string) (*model.Property, error) {
	p, err := store.GetProperty(ctx, s.DB, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

// Featured returns up to limit promoted listings, newest first.
func (s *Service) Featured(ctx context.Context, limit int) ([]model.Property, error) {
	return store.ListFeaturedProperties(ctx, s.DB, limit)
}

// Create persists a new listing on behalf of identity.
func (s *Service) Create(ctx context.Context, identity auth.Identity, p *model.Property) (*model.Property, error) {
	if !auth.Authorized(identity) {
		return nil, ErrUnauthorized
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	created, err := store.CreateProperty(ctx, s.DB, p, identity.Email)
	if err != nil {
		return nil, err
	}

	slog.Info("property created", "id", created.ID, "title", created.Title, "by", identity.Email)
	s.invalidate()
	return created, nil
}

// Update applies a partial update on behalf of identity. Only the fields
// present in the patch change.
func (s *Service) Update(ctx context.Context, identity auth.Identity, id string, patch *model.PropertyPatch) (*model.Property, error) {
	if !auth.Authorized(identity) {
		return nil, ErrUnauthorized
	}
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	updated, err := store.UpdateProperty(ctx, s.DB, id, patch)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}

	slog.Info("property updated", "id", id, "by", identity.Email)
	s.invalidate()
	return updated, nil
}

// Delete removes a listing permanently on behalf of identity.
func (s *Service) Delete(ctx context.Context, identity auth.Identity, id string) error {
	if !auth.Authorized(identity) {
		return ErrUnauthorized
	}

	deleted, err := store.DeleteProperty(ctx, s.DB, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}

	slog.Info("property deleted", "id", id, "by", identity.Email)
	s.invalidate()
	return nil
}

// invalidate notifies subscribers of both collection keys. Every mutation
// can change the visible collection and the featured subset.
func (s *Service) invalidate() {
	s.Notifier.Invalidate(CollectionKey)
	s.Notifier.Invalidate(FeaturedKey)
}
