package domain

// Product is read-only reference data, owned by the catalog.
type Product struct {
	ID             int               `json:"id"`
	Name           string            `json:"name"`
	Price          int               `json:"price"`
	OriginalPrice  int               `json:"originalPrice,omitempty"`
	Discount       int               `json:"discount,omitempty"`
	Rating         float64           `json:"rating,omitempty"`
	ReviewCount    int               `json:"reviewCount,omitempty"`
	Description    string            `json:"description,omitempty"`
	Features       []string          `json:"features,omitempty"`
	Specifications map[string]string `json:"specifications,omitempty"`
	Images         []string          `json:"images,omitempty"`
	Sizes          []string          `json:"sizes,omitempty"`
	Colors         []string          `json:"colors,omitempty"`
}

// Image returns the primary product image, if any.
func (p Product) Image() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// HasSize reports whether size is one of the product's offered sizes.
func (p Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// HasColor reports whether color is one of the product's offered colors.
func (p Product) HasColor(color string) bool {
	for _, c := range p.Colors {
		if c == color {
			return true
		}
	}
	return false
}
