package catalog

import (
	"context"
	"errors"
	"testing"

	"luxera-storefront/internal/domain"
)

func TestMemoryGetByID(t *testing.T) {
	cat := NewMemory()

	p, err := cat.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "Luxera Smart Elite" {
		t.Fatalf("unexpected product: %q", p.Name)
	}
	if p.Price != 45000 {
		t.Fatalf("unexpected price: %d", p.Price)
	}
	if !p.HasSize("42mm") || p.HasSize("50mm") {
		t.Fatalf("unexpected size set: %v", p.Sizes)
	}
}

func TestMemoryGetByIDNotFound(t *testing.T) {
	cat := NewMemory()

	_, err := cat.GetByID(context.Background(), 99)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryListIsACopy(t *testing.T) {
	cat := NewMemory()

	list, err := cat.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 products, got %d", len(list))
	}

	list[0].Name = "mutated"
	again, _ := cat.List(context.Background())
	if again[0].Name == "mutated" {
		t.Fatalf("List must not expose internal storage")
	}
}

func TestMemoryWithCustomProducts(t *testing.T) {
	cat := NewMemoryWith([]domain.Product{{ID: 7, Name: "Test", Price: 100}})

	p, err := cat.GetByID(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Price != 100 {
		t.Fatalf("unexpected price: %d", p.Price)
	}
}
