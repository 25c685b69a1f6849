package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/bledarhoxha/prona/internal/db"
	"github.com/bledarhoxha/prona/internal/model"
)

func testProperty(title string) *model.Property {
	return &model.Property{
		Title:     title,
		Location:  "Tirana, Albania",
		Price:     185000,
		Type:      model.TypeApartment,
		Status:    model.StatusSale,
		Size:      120,
		Rooms:     3,
		Bathrooms: 2,
		Images:    []string{"/photos/1.jpg", "/photos/2.jpg"},
	}
}

func TestCreateAndGetProperty(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	created, err := CreateProperty(ctx, database, testProperty("Modern City Apartment"), "admin@example.com")
	if err != nil {
		t.Fatalf("CreateProperty: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected assigned id")
	}
	if created.CreatedBy != "admin@example.com" {
		t.Errorf("expected created_by to be recorded, got %q", created.CreatedBy)
	}

	got, err := GetProperty(ctx, database, created.ID)
	if err != nil {
		t.Fatalf("GetProperty: %v", err)
	}
	if got == nil {
		t.Fatal("expected property, got nil")
	}
	if got.Title != "Modern City Apartment" || got.Price != 185000 {
		t.Errorf("round-trip mismatch: %+v", got)
	}
	if len(got.Images) != 2 || got.Images[0] != "/photos/1.jpg" {
		t.Errorf("expected ordered images with cover first, got %v", got.Images)
	}
}

func TestGetPropertyNotFound(t *testing.T) {
	database := db.NewTestDB(t)

	got, err := GetProperty(context.Background(), database, "no-such-id")
	if err != nil {
		t.Fatalf("GetProperty: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing id, got %+v", got)
	}
}

func TestListPropertiesNewestFirst(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := CreateProperty(ctx, database, testProperty(fmt.Sprintf("Listing %d", i)), ""); err != nil {
			t.Fatalf("CreateProperty: %v", err)
		}
	}

	props, err := ListProperties(ctx, database)
	if err != nil {
		t.Fatalf("ListProperties: %v", err)
	}
	if len(props) != 3 {
		t.Fatalf("expected 3 properties, got %d", len(props))
	}
	if props[0].Title != "Listing 2" || props[2].Title != "Listing 0" {
		t.Errorf("expected newest-first order, got %q..%q", props[0].Title, props[2].Title)
	}
}

func TestListFeaturedLimit(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	for i := 0; i < 8; i++ {
		p := testProperty(fmt.Sprintf("Featured %d", i))
		p.Featured = true
		if _, err := CreateProperty(ctx, database, p, ""); err != nil {
			t.Fatalf("CreateProperty: %v", err)
		}
	}
	plain := testProperty("Not Featured")
	CreateProperty(ctx, database, plain, "")

	featured, err := ListFeaturedProperties(ctx, database, 0)
	if err != nil {
		t.Fatalf("ListFeaturedProperties: %v", err)
	}
	if len(featured) != FeaturedLimit {
		t.Fatalf("expected %d featured, got %d", FeaturedLimit, len(featured))
	}
	// The six most recently created featured listings, newest first.
	if featured[0].Title != "Featured 7" || featured[5].Title != "Featured 2" {
		t.Errorf("expected newest 6 featured, got %q..%q", featured[0].Title, featured[5].Title)
	}
	for _, p := range featured {
		if !p.Featured {
			t.Errorf("non-featured listing in featured result: %q", p.Title)
		}
	}
}

func TestUpdatePropertyPartial(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	created, err := CreateProperty(ctx, database, testProperty("Building Land"), "")
	if err != nil {
		t.Fatalf("CreateProperty: %v", err)
	}

	price := 99000.0
	updated, err := UpdateProperty(ctx, database, created.ID, &model.PropertyPatch{Price: &price})
	if err != nil {
		t.Fatalf("UpdateProperty: %v", err)
	}
	if updated.Price != 99000 {
		t.Errorf("expected price 99000, got %v", updated.Price)
	}
	if updated.Title != created.Title || updated.Size != created.Size || updated.Rooms != created.Rooms {
		t.Errorf("unpatched fields changed: %+v", updated)
	}
	if len(updated.Images) != len(created.Images) {
		t.Errorf("images changed by unrelated patch: %v", updated.Images)
	}
}

func TestUpdatePropertyImages(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	created, _ := CreateProperty(ctx, database, testProperty("With Photos"), "")

	images := []string{"/photos/new-cover.jpg"}
	updated, err := UpdateProperty(ctx, database, created.ID, &model.PropertyPatch{Images: &images})
	if err != nil {
		t.Fatalf("UpdateProperty: %v", err)
	}
	if len(updated.Images) != 1 || updated.Images[0] != "/photos/new-cover.jpg" {
		t.Errorf("expected replaced images, got %v", updated.Images)
	}
}

func TestUpdatePropertyNotFound(t *testing.T) {
	database := db.NewTestDB(t)

	title := "New Title"
	updated, err := UpdateProperty(context.Background(), database, "missing", &model.PropertyPatch{Title: &title})
	if err != nil {
		t.Fatalf("UpdateProperty: %v", err)
	}
	if updated != nil {
		t.Errorf("expected nil for missing id, got %+v", updated)
	}
}

func TestDeleteProperty(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	created, _ := CreateProperty(ctx, database, testProperty("Delete Me"), "")

	deleted, err := DeleteProperty(ctx, database, created.ID)
	if err != nil {
		t.Fatalf("DeleteProperty: %v", err)
	}
	if !deleted {
		t.Error("expected delete to report a removed row")
	}

	got, _ := GetProperty(ctx, database, created.ID)
	if got != nil {
		t.Error("expected hard delete, property still present")
	}

	deleted, err = DeleteProperty(ctx, database, created.ID)
	if err != nil {
		t.Fatalf("DeleteProperty: %v", err)
	}
	if deleted {
		t.Error("expected second delete to report no row")
	}
}

func TestPropertyWithoutImages(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	p := testProperty("No Photos")
	p.Images = nil
	created, err := CreateProperty(ctx, database, p, "")
	if err != nil {
		t.Fatalf("CreateProperty: %v", err)
	}
	if created.Images == nil || len(created.Images) != 0 {
		t.Errorf("expected empty image slice, got %v", created.Images)
	}
}
