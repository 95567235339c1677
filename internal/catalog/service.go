package catalog

import "fmt"

// Service provides lookups over the design catalog.
type Service interface {
	UnitPrice() float64
	OrgName() string
	Designs() []DesignOption
	FindDesign(id string) (DesignOption, bool)
	FormatDesignName(id string) string
}

type service struct {
	catalog Catalog
	byID    map[string]DesignOption
}

// NewService creates a catalog service over an injected catalog.
func NewService(c Catalog) Service {
	byID := make(map[string]DesignOption, len(c.Designs))
	for _, d := range c.Designs {
		byID[d.ID] = d
	}
	return &service{catalog: c, byID: byID}
}

func (s *service) UnitPrice() float64 {
	return s.catalog.UnitPrice
}

func (s *service) OrgName() string {
	return s.catalog.OrgName
}

func (s *service) Designs() []DesignOption {
	out := make([]DesignOption, len(s.catalog.Designs))
	copy(out, s.catalog.Designs)
	return out
}

func (s *service) FindDesign(id string) (DesignOption, bool) {
	d, ok := s.byID[id]
	return d, ok
}

// FormatDesignName renders a design as "Name (Description)" for back-office
// notes. Unknown ids degrade to the raw id rather than failing.
func (s *service) FormatDesignName(id string) string {
	d, ok := s.byID[id]
	if !ok {
		return id
	}
	return fmt.Sprintf("%s (%s)", d.Name, d.Description)
}

// Default returns the built-in demo catalog used when no catalog file is
// configured.
func Default() Catalog {
	return Catalog{
		OrgName:   "The Grand Theatre",
		UnitPrice: 20,
		Designs: []DesignOption{
			{
				ID:            "classic-gold",
				Name:          "Classic Gold",
				Description:   "gold foil on ivory stock",
				FallbackColor: "#c9a227",
				Available:     true,
			},
			{
				ID:            "marquee-night",
				Name:          "Marquee Night",
				Description:   "black with marquee lettering",
				FallbackColor: "#1b1b2f",
				Available:     true,
			},
			{
				ID:            "playbill-red",
				Name:          "Playbill Red",
				Description:   "red curtain engraving",
				FallbackColor: "#8c1c13",
				Available:     true,
			},
		},
	}
}
