package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// BudgetStatus represents the lifecycle of a budget (orçamento).
//
// Domain notes:
//   - Approval only unlocks the budget for seeding a service order; it never opens one by itself.
//   - The string values are persisted as-is and shared with existing clients.
type BudgetStatus string

const (
	BudgetStatusPendente  BudgetStatus = "Pendente"
	BudgetStatusAprovado  BudgetStatus = "Aprovado"
	BudgetStatusRejeitado BudgetStatus = "Rejeitado"
)

var budgetTransitions = map[BudgetStatus][]BudgetStatus{
	BudgetStatusPendente: {BudgetStatusAprovado, BudgetStatusRejeitado},
}

func (s BudgetStatus) String() string { return string(s) }

func (s BudgetStatus) IsValid() bool {
	switch s {
	case BudgetStatusPendente, BudgetStatusAprovado, BudgetStatusRejeitado:
		return true
	}
	return false
}

func ParseBudgetStatus(value string) (BudgetStatus, error) {
	s := BudgetStatus(value)
	if !s.IsValid() {
		return "", Validationf("invalid budget status %q", value)
	}
	return s, nil
}

// TransitionTo returns the new status or an InvalidTransitionError.
func (s BudgetStatus) TransitionTo(next BudgetStatus) (BudgetStatus, error) {
	if !next.IsValid() {
		return s, Validationf("invalid budget status %q", next)
	}
	for _, allowed := range budgetTransitions[s] {
		if allowed == next {
			return next, nil
		}
	}
	return s, &InvalidTransitionError{Entity: "budget", From: string(s), To: string(next)}
}

// FirstBudgetNumber is handed out when no budget exists yet.
const (
	BudgetNumberSequence       = "budget_number"
	FirstBudgetNumber    int64 = 1000
)

// Part is an ad-hoc line item embedded in a budget.
type Part struct {
	Name  string
	Value decimal.Decimal
}

// Budget is a priced quote for future work.
//
// Storage model:
//   - service IDs and parts are serialized lists on the budget row
//   - TotalValue is stored, not derived, and is recomputed by the engine on every line-item change
type Budget struct {
	ID          string
	Number      int64
	QuoteDate   time.Time
	ClientID    string
	VehicleID   string
	Odometer    int64
	Description string
	ServiceIDs  []string
	Parts       []Part
	TotalValue  decimal.Decimal
	Status      BudgetStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PartsTotal is Σ(part.value).
func (b Budget) PartsTotal() decimal.Decimal {
	values := make([]decimal.Decimal, 0, len(b.Parts))
	for _, p := range b.Parts {
		values = append(values, p.Value)
	}
	return SumMoney(values...)
}

// ComputeBudgetTotal returns Σ(service.price) + Σ(part.value) using the given catalog.
// A service reference missing from the catalog is reported as a validation error.
func ComputeBudgetTotal(serviceIDs []string, parts []Part, catalog map[string]Service) (decimal.Decimal, error) {
	values := make([]decimal.Decimal, 0, len(serviceIDs)+len(parts))
	for _, id := range serviceIDs {
		svc, ok := catalog[id]
		if !ok {
			return decimal.Zero, NewError(ErrValidation, "SERVICE_NOT_FOUND", fmt.Sprintf("service %q not found", id))
		}
		values = append(values, svc.Price)
	}
	for _, p := range parts {
		if p.Value.IsNegative() {
			return decimal.Zero, Validationf("part %q has a negative value", p.Name)
		}
		values = append(values, p.Value)
	}
	return SumMoney(values...), nil
}

// OrderSeed is the cost split copied into a service order opened from this budget.
type OrderSeed struct {
	ClientID   string
	VehicleID  string
	Odometer   int64
	ServiceIDs []string
	PartsCost  decimal.Decimal
	LaborCost  decimal.Decimal
}

// Seed splits the budget total into parts cost (Σ part.value) and labor cost (total - parts).
func (b Budget) Seed() (OrderSeed, error) {
	if b.Status != BudgetStatusAprovado {
		return OrderSeed{}, NewError(ErrPreconditionFailed, "BUDGET_NOT_APPROVED", "budget not approved")
	}
	parts := b.PartsTotal()
	labor := RoundMoney(b.TotalValue.Sub(parts))
	if labor.IsNegative() {
		return OrderSeed{}, Validationf("budget %d total is lower than its parts", b.Number)
	}
	ids := make([]string, len(b.ServiceIDs))
	copy(ids, b.ServiceIDs)
	return OrderSeed{
		ClientID:   b.ClientID,
		VehicleID:  b.VehicleID,
		Odometer:   b.Odometer,
		ServiceIDs: ids,
		PartsCost:  parts,
		LaborCost:  labor,
	}, nil
}
