package catalog

import (
	"context"

	"luxera-storefront/internal/domain"
)

// Memory is an in-memory catalog seeded with the Luxera collection. It
// stands in for the external catalog service.
type Memory struct {
	products []domain.Product
	byID     map[int]int
}

// NewMemory builds a catalog with the default collection.
func NewMemory() *Memory {
	return NewMemoryWith(defaultProducts())
}

// NewMemoryWith builds a catalog from the given products.
func NewMemoryWith(products []domain.Product) *Memory {
	m := &Memory{
		products: products,
		byID:     make(map[int]int, len(products)),
	}
	for i, p := range products {
		m.byID[p.ID] = i
	}
	return m
}

func (m *Memory) List(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(m.products))
	copy(out, m.products)
	return out, nil
}

func (m *Memory) GetByID(_ context.Context, id int) (*domain.Product, error) {
	i, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p := m.products[i]
	return &p, nil
}

func defaultProducts() []domain.Product {
	return []domain.Product{
		{
			ID:            1,
			Name:          "Luxera Smart Elite",
			Price:         45000,
			OriginalPrice: 65000,
			Discount:      30,
			Rating:        4.8,
			ReviewCount:   127,
			Description: "Experience the pinnacle of luxury smartwatch technology with the Luxera Smart Elite. " +
				"This premium timepiece combines traditional craftsmanship with cutting-edge technology, " +
				"featuring a stunning black metal case and premium silicone band.",
			Features: []string{
				"Premium black metal case with scratch-resistant coating",
				"High-resolution AMOLED display with always-on feature",
				"Advanced health monitoring including heart rate and sleep tracking",
				"Water-resistant up to 50 meters",
				"7-day battery life with fast charging",
				"Bluetooth 5.0 connectivity",
				"Compatible with iOS and Android",
			},
			Specifications: map[string]string{
				"Case Material":    "Premium Black Metal",
				"Band Material":    "Silicone",
				"Display":          "1.4\" AMOLED",
				"Battery Life":     "7 Days",
				"Water Resistance": "50M",
				"Connectivity":     "Bluetooth 5.0",
			},
			Images: []string{
				"/assets/product-1.jpg",
				"/assets/product-detail-1.jpg",
				"/assets/product-detail-2.jpg",
				"/assets/product-detail-3.jpg",
			},
			Sizes:  []string{"42mm", "46mm"},
			Colors: []string{"Black", "Silver", "Gold"},
		},
		{
			ID:            2,
			Name:          "Premium Audio Pro",
			Price:         25000,
			OriginalPrice: 35000,
			Discount:      28,
			Rating:        4.9,
			Images:        []string{"/assets/product-2.jpg"},
		},
		{
			ID:            3,
			Name:          "Classic Gold Heritage",
			Price:         85000,
			OriginalPrice: 120000,
			Discount:      29,
			Rating:        5.0,
			Images:        []string{"/assets/product-3.jpg"},
		},
	}
}
