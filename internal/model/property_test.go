package model

import "testing"

func validProperty() Property {
	return Property{
		Title:     "Modern City Apartment",
		Location:  "Tirana, Albania",
		Price:     185000,
		Type:      TypeApartment,
		Status:    StatusSale,
		Size:      120,
		Rooms:     3,
		Bathrooms: 2,
	}
}

func TestValidateProperty(t *testing.T) {
	p := validProperty()
	if err := p.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Property)
	}{
		{"empty title", func(p *Property) { p.Title = "" }},
		{"empty location", func(p *Property) { p.Location = "" }},
		{"unknown type", func(p *Property) { p.Type = "castle" }},
		{"unknown status", func(p *Property) { p.Status = "auction" }},
		{"negative price", func(p *Property) { p.Price = -1 }},
		{"zero size", func(p *Property) { p.Size = 0 }},
		{"negative rooms", func(p *Property) { p.Rooms = -1 }},
	}
	for _, tc := range cases {
		p := validProperty()
		tc.mutate(&p)
		if err := p.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

func TestValidateZeroPriceAllowed(t *testing.T) {
	p := validProperty()
	p.Price = 0
	if err := p.Validate(); err != nil {
		t.Errorf("price 0 should be valid: %v", err)
	}
}

func TestPatchValidateAndApply(t *testing.T) {
	price := 99000.0
	patch := PropertyPatch{Price: &price}
	if err := patch.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	p := validProperty()
	patch.Apply(&p)
	if p.Price != 99000 {
		t.Errorf("expected price 99000, got %v", p.Price)
	}
	if p.Title != "Modern City Apartment" {
		t.Errorf("unpatched field changed: %q", p.Title)
	}

	badType := "castle"
	patch = PropertyPatch{Type: &badType}
	if err := patch.Validate(); err == nil {
		t.Error("expected validation error for unknown type")
	}
}

func TestPatchIsEmpty(t *testing.T) {
	var patch PropertyPatch
	if !patch.IsEmpty() {
		t.Error("zero patch should be empty")
	}
	featured := true
	patch.Featured = &featured
	if patch.IsEmpty() {
		t.Error("patch with field should not be empty")
	}
}

func TestCoverImage(t *testing.T) {
	p := validProperty()
	if p.CoverImage() != "" {
		t.Error("expected empty cover for no images")
	}
	p.Images = []string{"/photos/a.jpg", "/photos/b.jpg"}
	if p.CoverImage() != "/photos/a.jpg" {
		t.Errorf("expected first image as cover, got %q", p.CoverImage())
	}
}
