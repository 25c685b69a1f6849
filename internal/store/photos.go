package store

import (
	"context"
	"database/sql"
	"fmt"
)

// SavePhoto stores processed photo data for a listing and returns the
// photo's ID.
func SavePhoto(ctx context.Context, db *sql.DB, propertyID string, data []byte, mime string) (int64, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO photos (property_id, data, mime) VALUES (?, ?, ?)`,
		propertyID, data, mime,
	)
	if err != nil {
		return 0, fmt.Errorf("saving photo: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting photo id: %w", err)
	}
	return id, nil
}

// GetPhoto returns a photo's data and MIME type, or (nil, "", nil) when
// the photo does not exist.
func GetPhoto(ctx context.Context, db *sql.DB, id int64) ([]byte, string, error) {
	var data []byte
	var mime string
	err := db.QueryRowContext(ctx,
		`SELECT data, mime FROM photos WHERE id = ?`, id,
	).Scan(&data, &mime)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("getting photo: %w", err)
	}
	return data, mime, nil
}

// DeletePhoto removes a stored photo.
func DeletePhoto(ctx context.Context, db *sql.DB, id int64) error {
	_, err := db.ExecContext(ctx, `DELETE FROM photos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting photo: %w", err)
	}
	return nil
}
