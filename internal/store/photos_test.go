package store

import (
	"context"
	"testing"

	"github.com/bledarhoxha/prona/internal/db"
)

func TestSaveAndGetPhoto(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	prop, err := CreateProperty(ctx, database, testProperty("Photo Listing"), "")
	if err != nil {
		t.Fatalf("CreateProperty: %v", err)
	}

	id, err := SavePhoto(ctx, database, prop.ID, []byte("fake jpeg data"), "image/jpeg")
	if err != nil {
		t.Fatalf("SavePhoto: %v", err)
	}

	data, mime, err := GetPhoto(ctx, database, id)
	if err != nil {
		t.Fatalf("GetPhoto: %v", err)
	}
	if string(data) != "fake jpeg data" {
		t.Errorf("expected photo data, got %q", string(data))
	}
	if mime != "image/jpeg" {
		t.Errorf("expected mime 'image/jpeg', got %q", mime)
	}
}

func TestGetPhotoMissing(t *testing.T) {
	database := db.NewTestDB(t)

	data, _, err := GetPhoto(context.Background(), database, 42)
	if err != nil {
		t.Fatalf("GetPhoto: %v", err)
	}
	if data != nil {
		t.Error("expected nil data for missing photo")
	}
}

func TestPhotosDeletedWithProperty(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	prop, _ := CreateProperty(ctx, database, testProperty("Doomed Listing"), "")
	id, _ := SavePhoto(ctx, database, prop.ID, []byte("data"), "image/jpeg")

	if _, err := DeleteProperty(ctx, database, prop.ID); err != nil {
		t.Fatalf("DeleteProperty: %v", err)
	}

	data, _, err := GetPhoto(ctx, database, id)
	if err != nil {
		t.Fatalf("GetPhoto: %v", err)
	}
	if data != nil {
		t.Error("expected photo to cascade-delete with its property")
	}
}
