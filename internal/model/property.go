package model

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid marks a field-level validation failure. Callers can test for
// it with errors.Is to map the failure to a client error.
var ErrInvalid = errors.New("invalid property")

// Property represents a single real-estate listing.
type Property struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location"`
	Price       float64   `json:"price"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	Size        float64   `json:"size"`
	Rooms       int       `json:"rooms"`
	Bathrooms   int       `json:"bathrooms"`
	Images      []string  `json:"images"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"created_at"`
	CreatedBy   string    `json:"created_by,omitempty"`
}

// Property types.
const (
	TypeApartment = "apartment"
	TypeHouse     = "house"
	TypeLand      = "land"
)

// Property statuses. Price is an absolute amount for sale listings and a
// monthly amount for rentals.
const (
	StatusSale = "sale"
	StatusRent = "rent"
)

// ValidType reports whether t is a known property type.
func ValidType(t string) bool {
	return t == TypeApartment || t == TypeHouse || t == TypeLand
}

// ValidStatus reports whether s is a known property status.
func ValidStatus(s string) bool {
	return s == StatusSale || s == StatusRent
}

// CoverImage returns the first image locator, or empty if there are none.
// Index 0 is always the cover image.
func (p *Property) CoverImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// Validate checks field constraints for a listing about to be persisted.
// ID, CreatedAt and CreatedBy are assigned by the store and ignored here.
func (p *Property) Validate() error {
	if p.Title == "" {
		return fmt.Errorf("%w: title required", ErrInvalid)
	}
	if p.Location == "" {
		return fmt.Errorf("%w: location required", ErrInvalid)
	}
	if !ValidType(p.Type) {
		return fmt.Errorf("%w: unknown type %q", ErrInvalid, p.Type)
	}
	if !ValidStatus(p.Status) {
		return fmt.Errorf("%w: unknown status %q", ErrInvalid, p.Status)
	}
	if p.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalid)
	}
	if p.Size <= 0 {
		return fmt.Errorf("%w: size must be positive", ErrInvalid)
	}
	if p.Rooms < 0 || p.Bathrooms < 0 {
		return fmt.Errorf("%w: rooms and bathrooms must not be negative", ErrInvalid)
	}
	return nil
}
