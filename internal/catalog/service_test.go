package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/bledarhoxha/prona/internal/auth"
	"github.com/bledarhoxha/prona/internal/db"
	"github.com/bledarhoxha/prona/internal/model"
)

var (
	adminIdentity  = auth.Identity{UserID: 1, Email: "agent@example.com", Admin: true}
	viewerIdentity = auth.Identity{UserID: 2, Email: "viewer@example.com"}
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(db.NewTestDB(t))
}

func sampleProperty() *model.Property {
	return &model.Property{
		Title:     "Lakeside Cottage",
		Location:  "Ohrid, North Macedonia",
		Price:     1500,
		Type:      model.TypeHouse,
		Status:    model.StatusRent,
		Size:      100,
		Rooms:     2,
		Bathrooms: 1,
	}
}

func TestCreateRequiresAdmin(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for _, id := range []auth.Identity{auth.Anonymous(), viewerIdentity} {
		_, err := svc.Create(ctx, id, sampleProperty())
		if !errors.Is(err, ErrUnauthorized) {
			t.Errorf("identity %+v: expected ErrUnauthorized, got %v", id, err)
		}
	}

	// The store must be untouched.
	props, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(props) != 0 {
		t.Errorf("unauthorized create mutated the store: %d listings", len(props))
	}
}

func TestCreateValidatesInput(t *testing.T) {
	svc := newTestService(t)

	p := sampleProperty()
	p.Size = 0
	_, err := svc.Create(context.Background(), adminIdentity, p)
	if !errors.Is(err, model.ErrInvalid) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestCreateRecordsCreator(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create(context.Background(), adminIdentity, sampleProperty())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.CreatedBy != adminIdentity.Email {
		t.Errorf("expected created_by %q, got %q", adminIdentity.Email, created.CreatedBy)
	}
}

func TestGetNotFoundDistinctFromError(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Get(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdatePartialKeepsOtherFields(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, adminIdentity, sampleProperty())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	price := 99000.0
	updated, err := svc.Update(ctx, adminIdentity, created.ID, &model.PropertyPatch{Price: &price})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Price != 99000 {
		t.Errorf("expected price 99000, got %v", updated.Price)
	}
	if updated.Title != created.Title || updated.Status != created.Status {
		t.Errorf("unpatched fields changed: %+v", updated)
	}

	got, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get after update: %v", err)
	}
	if got.Price != 99000 {
		t.Errorf("update not persisted, got price %v", got.Price)
	}
}

func TestUpdateUnauthorizedDoesNotMutate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, _ := svc.Create(ctx, adminIdentity, sampleProperty())

	price := 1.0
	_, err := svc.Update(ctx, viewerIdentity, created.ID, &model.PropertyPatch{Price: &price})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}

	got, _ := svc.Get(ctx, created.ID)
	if got.Price != created.Price {
		t.Errorf("unauthorized update mutated the store: %v", got.Price)
	}
}

func TestDelete(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, _ := svc.Create(ctx, adminIdentity, sampleProperty())

	if err := svc.Delete(ctx, viewerIdentity, created.ID); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}

	if err := svc.Delete(ctx, adminIdentity, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := svc.Get(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	if err := svc.Delete(ctx, adminIdentity, created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for second delete, got %v", err)
	}
}

func TestMutationsInvalidateCollections(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	var collection, featured int
	svc.Notifier.OnInvalidate(CollectionKey, func() { collection++ })
	svc.Notifier.OnInvalidate(FeaturedKey, func() { featured++ })

	created, err := svc.Create(ctx, adminIdentity, sampleProperty())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if collection != 1 || featured != 1 {
		t.Errorf("expected 1 invalidation each after create, got %d/%d", collection, featured)
	}

	title := "Renamed"
	if _, err := svc.Update(ctx, adminIdentity, created.ID, &model.PropertyPatch{Title: &title}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if err := svc.Delete(ctx, adminIdentity, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if collection != 3 || featured != 3 {
		t.Errorf("expected 3 invalidations each, got %d/%d", collection, featured)
	}

	// Failed mutations must not invalidate.
	if _, err := svc.Create(ctx, viewerIdentity, sampleProperty()); err == nil {
		t.Fatal("expected unauthorized create to fail")
	}
	if collection != 3 {
		t.Errorf("failed mutation invalidated the cache: %d", collection)
	}
}
