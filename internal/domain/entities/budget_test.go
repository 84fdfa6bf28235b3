package entities

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestComputeBudgetTotal(t *testing.T) {
	catalog := IndexServices([]Service{
		{ID: "S0001", Price: decimal.RequireFromString("100.00")},
		{ID: "S0002", Price: decimal.RequireFromString("35.50")},
	})

	t.Run("services plus parts", func(t *testing.T) {
		parts := []Part{{Name: "Filtro", Value: decimal.RequireFromString("50.00")}}
		total, err := ComputeBudgetTotal([]string{"S0001"}, parts, catalog)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !total.Equal(decimal.RequireFromString("150.00")) {
			t.Fatalf("expected 150.00, got %s", total)
		}
	})

	t.Run("repeated service counts twice", func(t *testing.T) {
		total, err := ComputeBudgetTotal([]string{"S0002", "S0002"}, nil, catalog)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !total.Equal(decimal.RequireFromString("71.00")) {
			t.Fatalf("expected 71.00, got %s", total)
		}
	})

	t.Run("empty lines", func(t *testing.T) {
		total, err := ComputeBudgetTotal(nil, nil, catalog)
		if err != nil || !total.IsZero() {
			t.Fatalf("expected zero total, got %s err=%v", total, err)
		}
	})

	t.Run("unknown service", func(t *testing.T) {
		_, err := ComputeBudgetTotal([]string{"S9999"}, nil, catalog)
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("negative part", func(t *testing.T) {
		_, err := ComputeBudgetTotal(nil, []Part{{Name: "x", Value: decimal.NewFromInt(-1)}}, catalog)
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}

func TestBudgetStatus_TransitionTo(t *testing.T) {
	cases := []struct {
		from    BudgetStatus
		to      BudgetStatus
		wantErr error
	}{
		{BudgetStatusPendente, BudgetStatusAprovado, nil},
		{BudgetStatusPendente, BudgetStatusRejeitado, nil},
		{BudgetStatusAprovado, BudgetStatusAprovado, ErrConflict},
		{BudgetStatusAprovado, BudgetStatusPendente, ErrConflict},
		{BudgetStatusRejeitado, BudgetStatusAprovado, ErrConflict},
		{BudgetStatusPendente, BudgetStatus("Cancelado"), ErrValidation},
	}
	for _, tc := range cases {
		got, err := tc.from.TransitionTo(tc.to)
		if tc.wantErr == nil {
			if err != nil || got != tc.to {
				t.Fatalf("%s -> %s: expected success, got %s err=%v", tc.from, tc.to, got, err)
			}
			continue
		}
		if !errors.Is(err, tc.wantErr) {
			t.Fatalf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.wantErr, err)
		}
		if got != tc.from {
			t.Fatalf("%s -> %s: status must stay unchanged, got %s", tc.from, tc.to, got)
		}
	}
}

func TestBudget_Seed(t *testing.T) {
	b := Budget{
		Number:     1000,
		ClientID:   "c-1",
		VehicleID:  "v-1",
		Odometer:   42000,
		ServiceIDs: []string{"S0001"},
		Parts:      []Part{{Name: "Pastilha", Value: decimal.RequireFromString("50.00")}},
		TotalValue: decimal.RequireFromString("150.00"),
		Status:     BudgetStatusAprovado,
	}

	seed, err := b.Seed()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !seed.PartsCost.Equal(decimal.RequireFromString("50")) || !seed.LaborCost.Equal(decimal.RequireFromString("100")) {
		t.Fatalf("unexpected split: parts=%s labor=%s", seed.PartsCost, seed.LaborCost)
	}
	if seed.ClientID != "c-1" || seed.VehicleID != "v-1" || seed.Odometer != 42000 || len(seed.ServiceIDs) != 1 {
		t.Fatalf("unexpected seed: %+v", seed)
	}

	seed.ServiceIDs[0] = "changed"
	if b.ServiceIDs[0] != "S0001" {
		t.Fatalf("seed must not alias budget services")
	}

	b.Status = BudgetStatusPendente
	if _, err := b.Seed(); !errors.Is(err, ErrPreconditionFailed) {
		t.Fatalf("expected precondition failure for pending budget, got %v", err)
	}
}
