package entities

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestOrderStatus_TransitionTo(t *testing.T) {
	allowed := map[OrderStatus][]OrderStatus{
		OrderStatusEmAndamento: {OrderStatusConcluida, OrderStatusCancelada},
		OrderStatusConcluida:   {OrderStatusFaturada},
	}
	all := []OrderStatus{OrderStatusEmAndamento, OrderStatusConcluida, OrderStatusCancelada, OrderStatusFaturada}

	for _, from := range all {
		for _, to := range all {
			want := false
			for _, a := range allowed[from] {
				if a == to {
					want = true
				}
			}
			_, err := from.TransitionTo(to)
			if want && err != nil {
				t.Fatalf("%s -> %s: expected allowed, got %v", from, to, err)
			}
			if !want && !errors.Is(err, ErrConflict) {
				t.Fatalf("%s -> %s: expected conflict, got %v", from, to, err)
			}
		}
	}
}

func TestOrderStatus_Terminal(t *testing.T) {
	if !OrderStatusCancelada.IsTerminal() || !OrderStatusFaturada.IsTerminal() {
		t.Fatalf("canceled and invoiced must be terminal")
	}
	if OrderStatusEmAndamento.IsTerminal() || OrderStatusConcluida.IsTerminal() {
		t.Fatalf("open and completed must not be terminal")
	}
}

func TestParseOrderStatus(t *testing.T) {
	if s, err := ParseOrderStatus("Concluída"); err != nil || s != OrderStatusConcluida {
		t.Fatalf("unexpected parse: %s %v", s, err)
	}
	if _, err := ParseOrderStatus("Concluida"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for unaccented literal, got %v", err)
	}
}

func TestServiceOrder_ApplyCosts(t *testing.T) {
	o := ServiceOrder{}
	if err := o.ApplyCosts(decimal.RequireFromString("50"), decimal.RequireFromString("200")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !o.TotalPrice.Equal(decimal.RequireFromString("250")) {
		t.Fatalf("expected total 250, got %s", o.TotalPrice)
	}

	if err := o.ApplyCosts(decimal.NewFromInt(-1), decimal.Zero); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !o.TotalPrice.Equal(decimal.RequireFromString("250")) {
		t.Fatalf("rejected update must not touch the order")
	}
}
