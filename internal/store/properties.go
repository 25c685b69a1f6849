package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bledarhoxha/prona/internal/model"
)

// FeaturedLimit is the default number of promoted listings returned for
// the homepage.
const FeaturedLimit = 6

const propertyColumns = `id, title, description, location, price, type, status,
	 size, rooms, bathrooms, featured, created_at, created_by`

// CreateProperty persists a new listing and returns it with its assigned
// ID. The caller is recorded as created_by.
func CreateProperty(ctx context.Context, db *sql.DB, p *model.Property, createdBy string) (*model.Property, error) {
	id := uuid.NewString()
	now := time.Now().UTC()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("creating property: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO properties (id, title, description, location, price, type, status,
		                         size, rooms, bathrooms, featured, created_at, created_by)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, p.Title, p.Description, p.Location, p.Price, p.Type, p.Status,
		p.Size, p.Rooms, p.Bathrooms, p.Featured, now, createdBy,
	)
	if err != nil {
		return nil, fmt.Errorf("creating property: %w", err)
	}

	if err := replaceImages(ctx, tx, id, p.Images); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("creating property: %w", err)
	}

	return GetProperty(ctx, db, id)
}

// GetProperty returns a listing by ID, or (nil, nil) when no such listing
// exists. A non-nil error always means the store itself failed.
func GetProperty(ctx context.Context, db *sql.DB, id string) (*model.Property, error) {
	row := db.QueryRowContext(ctx,
		`SELECT `+propertyColumns+` FROM properties WHERE id = ?`, id,
	)
	p, err := scanProperty(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting property: %w", err)
	}

	if err := loadImages(ctx, db, p); err != nil {
		return nil, err
	}
	return p, nil
}

// ListProperties returns all listings, newest-created first.
func ListProperties(ctx context.Context, db *sql.DB) ([]model.Property, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT `+propertyColumns+` FROM properties ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing properties: %w", err)
	}
	defer rows.Close()

	return collectProperties(ctx, db, rows)
}

// ListFeaturedProperties returns up to limit promoted listings, newest
// first. A non-positive limit falls back to FeaturedLimit.
func ListFeaturedProperties(ctx context.Context, db *sql.DB, limit int) ([]model.Property, error) {
	if limit <= 0 {
		limit = FeaturedLimit
	}

	rows, err := db.QueryContext(ctx,
		`SELECT `+propertyColumns+` FROM properties
		 WHERE featured = 1 ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("listing featured properties: %w", err)
	}
	defer rows.Close()

	return collectProperties(ctx, db, rows)
}

// UpdateProperty applies a partial update. Only the fields present in the
// patch change; all others keep their stored values. Returns the updated
// listing, or (nil, nil) when the ID does not exist.
func UpdateProperty(ctx context.Context, db *sql.DB, id string, patch *model.PropertyPatch) (*model.Property, error) {
	current, err := GetProperty(ctx, db, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, nil
	}

	patch.Apply(current)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("updating property: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`UPDATE properties SET title = ?, description = ?, location = ?, price = ?,
		        type = ?, status = ?, size = ?, rooms = ?, bathrooms = ?, featured = ?
		 WHERE id = ?`,
		current.Title, current.Description, current.Location, current.Price,
		current.Type, current.Status, current.Size, current.Rooms,
		current.Bathrooms, current.Featured, id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating property: %w", err)
	}

	if patch.Images != nil {
		if err := replaceImages(ctx, tx, id, *patch.Images); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("updating property: %w", err)
	}

	return GetProperty(ctx, db, id)
}

// DeleteProperty removes a listing permanently, along with its images and
// stored photos. Reports whether a row was actually deleted.
func DeleteProperty(ctx context.Context, db *sql.DB, id string) (bool, error) {
	result, err := db.ExecContext(ctx, `DELETE FROM properties WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("deleting property: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting property: %w", err)
	}
	return n > 0, nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanProperty(s scanner) (*model.Property, error) {
	p := &model.Property{}
	var description, createdBy sql.NullString
	err := s.Scan(&p.ID, &p.Title, &description, &p.Location, &p.Price,
		&p.Type, &p.Status, &p.Size, &p.Rooms, &p.Bathrooms, &p.Featured,
		&p.CreatedAt, &createdBy)
	if err != nil {
		return nil, err
	}
	p.Description = description.String
	p.CreatedBy = createdBy.String
	if !model.ValidType(p.Type) || !model.ValidStatus(p.Status) {
		// The schema CHECKs make this unreachable through our own writes;
		// narrowing here still rejects rows edited out-of-band.
		return nil, fmt.Errorf("property %s has invalid type/status %q/%q", p.ID, p.Type, p.Status)
	}
	return p, nil
}

func collectProperties(ctx context.Context, db *sql.DB, rows *sql.Rows) ([]model.Property, error) {
	var props []model.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning property: %w", err)
		}
		props = append(props, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing properties: %w", err)
	}

	for i := range props {
		if err := loadImages(ctx, db, &props[i]); err != nil {
			return nil, err
		}
	}
	return props, nil
}

// loadImages fills the ordered image locators. A listing without images
// gets an empty (non-nil) slice so index 0 is always the cover when set.
func loadImages(ctx context.Context, db *sql.DB, p *model.Property) error {
	rows, err := db.QueryContext(ctx,
		`SELECT url FROM property_images WHERE property_id = ? ORDER BY position`, p.ID,
	)
	if err != nil {
		return fmt.Errorf("loading images: %w", err)
	}
	defer rows.Close()

	images := []string{}
	for rows.Next() {
		var url string
		if err := rows.Scan(&url); err != nil {
			return fmt.Errorf("scanning image: %w", err)
		}
		images = append(images, url)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("loading images: %w", err)
	}
	p.Images = images
	return nil
}

func replaceImages(ctx context.Context, tx *sql.Tx, id string, images []string) error {
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM property_images WHERE property_id = ?`, id,
	); err != nil {
		return fmt.Errorf("replacing images: %w", err)
	}
	for i, url := range images {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO property_images (property_id, position, url) VALUES (?, ?, ?)`,
			id, i, url,
		); err != nil {
			return fmt.Errorf("replacing images: %w", err)
		}
	}
	return nil
}
