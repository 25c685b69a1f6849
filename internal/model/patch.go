package model

import "fmt"

// PropertyPatch is a partial update of a listing. Nil fields are left
// unchanged; only the fields present in the patch are applied.
type PropertyPatch struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Location    *string   `json:"location,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	Type        *string   `json:"type,omitempty"`
	Status      *string   `json:"status,omitempty"`
	Size        *float64  `json:"size,omitempty"`
	Rooms       *int      `json:"rooms,omitempty"`
	Bathrooms   *int      `json:"bathrooms,omitempty"`
	Images      *[]string `json:"images,omitempty"`
	Featured    *bool     `json:"featured,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p *PropertyPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Location == nil &&
		p.Price == nil && p.Type == nil && p.Status == nil && p.Size == nil &&
		p.Rooms == nil && p.Bathrooms == nil && p.Images == nil && p.Featured == nil
}

// Validate checks the constraints of every field present in the patch.
func (p *PropertyPatch) Validate() error {
	if p.Title != nil && *p.Title == "" {
		return fmt.Errorf("%w: title must not be empty", ErrInvalid)
	}
	if p.Location != nil && *p.Location == "" {
		return fmt.Errorf("%w: location must not be empty", ErrInvalid)
	}
	if p.Type != nil && !ValidType(*p.Type) {
		return fmt.Errorf("%w: unknown type %q", ErrInvalid, *p.Type)
	}
	if p.Status != nil && !ValidStatus(*p.Status) {
		return fmt.Errorf("%w: unknown status %q", ErrInvalid, *p.Status)
	}
	if p.Price != nil && *p.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalid)
	}
	if p.Size != nil && *p.Size <= 0 {
		return fmt.Errorf("%w: size must be positive", ErrInvalid)
	}
	if p.Rooms != nil && *p.Rooms < 0 {
		return fmt.Errorf("%w: rooms must not be negative", ErrInvalid)
	}
	if p.Bathrooms != nil && *p.Bathrooms < 0 {
		return fmt.Errorf("%w: bathrooms must not be negative", ErrInvalid)
	}
	return nil
}

// Apply copies the patch's present fields onto the property.
func (p *PropertyPatch) Apply(dst *Property) {
	if p.Title != nil {
		dst.Title = *p.Title
	}
	if p.Description != nil {
		dst.Description = *p.Description
	}
	if p.Location != nil {
		dst.Location = *p.Location
	}
	if p.Price != nil {
		dst.Price = *p.Price
	}
	if p.Type != nil {
		dst.Type = *p.Type
	}
	if p.Status != nil {
		dst.Status = *p.Status
	}
	if p.Size != nil {
		dst.Size = *p.Size
	}
	if p.Rooms != nil {
		dst.Rooms = *p.Rooms
	}
	if p.Bathrooms != nil {
		dst.Bathrooms = *p.Bathrooms
	}
	if p.Images != nil {
		dst.Images = *p.Images
	}
	if p.Featured != nil {
		dst.Featured = *p.Featured
	}
}
