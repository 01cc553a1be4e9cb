package usecase

import (
	"testing"

	"storefront/internal/domain/entities"
)

func line(id string, price float64, qty int) entities.CartLine {
	return entities.CartLine{Product: entities.Product{ID: id, Title: "Product " + id, Price: price}, Quantity: qty}
}

func TestPricingRules_Totals(t *testing.T) {
	rules := DefaultPricingRules()

	t.Run("free shipping above threshold", func(t *testing.T) {
		totals := rules.Totals([]entities.CartLine{line("1", 60, 2)})
		if totals.Subtotal != 120 || totals.Shipping != 0 || totals.Tax != 9.6 {
			t.Fatalf("unexpected totals %+v", totals)
		}
		if got := totals.Total(0); got != 129.6 {
			t.Fatalf("expected 129.6, got %v", got)
		}
	})

	t.Run("threshold is inclusive", func(t *testing.T) {
		totals := rules.Totals([]entities.CartLine{line("1", 100, 1)})
		if totals.Shipping != 0 {
			t.Fatalf("expected free shipping at exactly 100, got %v", totals.Shipping)
		}
	})

	t.Run("flat fee below threshold", func(t *testing.T) {
		totals := rules.Totals([]entities.CartLine{line("1", 19.99, 1), line("2", 5.01, 2)})
		if totals.Subtotal != 30.01 || totals.Shipping != 9.99 || totals.Tax != 2.4 {
			t.Fatalf("unexpected totals %+v", totals)
		}
		if got := totals.Total(0); got != 42.4 {
			t.Fatalf("expected 42.4, got %v", got)
		}
	})

	t.Run("amounts round to cents", func(t *testing.T) {
		totals := rules.Totals([]entities.CartLine{line("1", 0.5625, 1)})
		if totals.Subtotal != 0.56 {
			t.Fatalf("expected subtotal rounded to cents, got %v", totals.Subtotal)
		}
		totals = rules.Totals([]entities.CartLine{line("1", 12.34, 1)})
		if totals.Tax != 0.99 {
			t.Fatalf("expected tax 0.99, got %v", totals.Tax)
		}
	})

	t.Run("recomputation is idempotent", func(t *testing.T) {
		lines := []entities.CartLine{line("1", 33.33, 3)}
		if rules.Totals(lines) != rules.Totals(lines) {
			t.Fatalf("totals differ between runs")
		}
	})
}

func TestTotals_DiscountAndClamp(t *testing.T) {
	totals := DefaultPricingRules().Totals([]entities.CartLine{line("1", 60, 2)})

	if got := totals.Total(50); got != 79.6 {
		t.Fatalf("expected 79.6, got %v", got)
	}
	if got := totals.DiscountFor(500); got != 129.6 {
		t.Fatalf("expected discount capped at 129.6, got %v", got)
	}
	if got := totals.DiscountFor(25); got != 25 {
		t.Fatalf("expected 25, got %v", got)
	}
	if got := totals.Total(1000); got != 0 {
		t.Fatalf("expected total clamped at 0, got %v", got)
	}
}

func TestLineTotal(t *testing.T) {
	if got := LineTotal([]entities.CartLine{line("1", 0.1, 3), line("2", 0.2, 1)}); got != 0.5 {
		t.Fatalf("expected 0.5, got %v", got)
	}
}
