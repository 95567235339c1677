package catalog

// DesignOption is a single commemorative-ticket design offered to the buyer.
// Catalog entries are static configuration, read-only at runtime.
type DesignOption struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	ImageURL      string `json:"image_url,omitempty"`
	FallbackColor string `json:"fallback_color,omitempty"`
	Available     bool   `json:"available"`
}

// Catalog is the immutable design catalog plus the pricing and branding copy
// the widget renders. It is injected at construction, never a mutable global.
type Catalog struct {
	OrgName   string         `json:"org_name"`
	UnitPrice float64        `json:"unit_price"`
	Designs   []DesignOption `json:"designs"`
}
