package catalog

import "testing"

func TestFormatDesignName(t *testing.T) {
	t.Parallel()

	svc := NewService(Catalog{
		UnitPrice: 20,
		Designs: []DesignOption{
			{ID: "classic-gold", Name: "Classic Gold", Description: "gold foil on ivory stock", Available: true},
		},
	})

	tests := []struct {
		name string
		id   string
		want string
	}{
		{"known design", "classic-gold", "Classic Gold (gold foil on ivory stock)"},
		{"unknown design falls back to raw id", "mystery-design", "mystery-design"},
		{"empty id", "", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := svc.FormatDesignName(tt.id); got != tt.want {
				t.Errorf("FormatDesignName(%q) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}

func TestFindDesign(t *testing.T) {
	t.Parallel()

	svc := NewService(Default())

	if _, ok := svc.FindDesign("classic-gold"); !ok {
		t.Error("expected to find classic-gold in the default catalog")
	}
	if _, ok := svc.FindDesign("nope"); ok {
		t.Error("did not expect to find an unknown design")
	}
}

func TestCatalogValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		catalog Catalog
		wantErr bool
	}{
		{"default catalog is valid", Default(), false},
		{"empty designs rejected", Catalog{UnitPrice: 20}, true},
		{"negative price rejected", Catalog{UnitPrice: -1, Designs: Default().Designs}, true},
		{
			"duplicate ids rejected",
			Catalog{UnitPrice: 20, Designs: []DesignOption{
				{ID: "a", Name: "A"},
				{ID: "a", Name: "A again"},
			}},
			true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := validate(tt.catalog)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
