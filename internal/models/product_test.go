package models

import (
	"errors"
	"testing"
)

func float(v float64) *float64 { return &v }

func TestProductInput_ToProduct(t *testing.T) {
	t.Run("defaults for optional fields", func(t *testing.T) {
		p, err := ProductInput{ID: "p1", Cost: float(100)}.ToProduct()
		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}

		if p.BasePrice != 150 {
			t.Errorf("expected base price 150, got %f", p.BasePrice)
		}
		if p.BaseDemand != 100 {
			t.Errorf("expected base demand 100, got %f", p.BaseDemand)
		}
		if p.Elasticity != 1.5 {
			t.Errorf("expected elasticity 1.5, got %f", p.Elasticity)
		}
		if p.Inventory != 100 {
			t.Errorf("expected inventory 100, got %d", p.Inventory)
		}
		if p.Name != "" {
			t.Errorf("expected empty name, got %q", p.Name)
		}
	})

	t.Run("explicit fields win", func(t *testing.T) {
		in := ProductInput{
			ID:         "p2",
			Name:       "Mug",
			Category:   "Home",
			Cost:       float(10),
			BasePrice:  float(25),
			BaseDemand: float(0),
			Elasticity: float(2),
			Inventory:  float(0),
		}
		p, err := in.ToProduct()
		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}

		want := Product{ID: "p2", Name: "Mug", Category: "Home", Cost: 10, BasePrice: 25, BaseDemand: 0, Elasticity: 2, Inventory: 0}
		if p != want {
			t.Errorf("expected %+v, got %+v", want, p)
		}
	})

	t.Run("fractional inventory truncates", func(t *testing.T) {
		for in, want := range map[float64]int{80: 80, 80.9: 80, -2.5: -2} {
			p, err := ProductInput{ID: "p3", Cost: float(1), Inventory: float(in)}.ToProduct()
			if err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}
			if p.Inventory != want {
				t.Errorf("inventory %v: expected %d, got %d", in, want, p.Inventory)
			}
		}
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := ProductInput{Cost: float(1)}.ToProduct()
		if !errors.Is(err, ErrMissingID) {
			t.Errorf("expected ErrMissingID, got %v", err)
		}
	})

	t.Run("missing cost", func(t *testing.T) {
		_, err := ProductInput{ID: "p3"}.ToProduct()
		if !errors.Is(err, ErrMissingCost) {
			t.Errorf("expected ErrMissingCost, got %v", err)
		}
	})
}

func TestProduct_Degenerate(t *testing.T) {
	tests := []struct {
		name string
		p    Product
		want bool
	}{
		{"healthy", Product{Cost: 10, BasePrice: 15, BaseDemand: 100, Elasticity: 1.5, Inventory: 10}, false},
		{"zero cost", Product{Cost: 0, BasePrice: 15, BaseDemand: 100, Elasticity: 1.5}, true},
		{"negative base price", Product{Cost: 10, BasePrice: -1, BaseDemand: 100, Elasticity: 1.5}, true},
		{"zero elasticity", Product{Cost: 10, BasePrice: 15, BaseDemand: 100, Elasticity: 0}, true},
		{"negative inventory", Product{Cost: 10, BasePrice: 15, BaseDemand: 100, Elasticity: 1.5, Inventory: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Degenerate(); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
