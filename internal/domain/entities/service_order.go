package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle of a service order (OS).
//
// A new order starts "Em Andamento"; there is no separate untouched state.
type OrderStatus string

const (
	OrderStatusEmAndamento OrderStatus = "Em Andamento"
	OrderStatusConcluida   OrderStatus = "Concluída"
	OrderStatusCancelada   OrderStatus = "Cancelada"
	OrderStatusFaturada    OrderStatus = "Faturada"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusEmAndamento: {OrderStatusConcluida, OrderStatusCancelada},
	OrderStatusConcluida:   {OrderStatusFaturada},
}

func (s OrderStatus) String() string { return string(s) }

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusEmAndamento, OrderStatusConcluida, OrderStatusCancelada, OrderStatusFaturada:
		return true
	}
	return false
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCancelada || s == OrderStatusFaturada
}

func ParseOrderStatus(value string) (OrderStatus, error) {
	s := OrderStatus(value)
	if !s.IsValid() {
		return "", Validationf("invalid service order status %q", value)
	}
	return s, nil
}

func (s OrderStatus) TransitionTo(next OrderStatus) (OrderStatus, error) {
	if !next.IsValid() {
		return s, Validationf("invalid service order status %q", next)
	}
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return next, nil
		}
	}
	return s, &InvalidTransitionError{Entity: "service order", From: string(s), To: string(next)}
}

// ServiceOrder records work actually performed.
//
// BudgetID is provenance only: the seeded values are copied once at creation and
// later budget edits do not flow into the order.
type ServiceOrder struct {
	ID          string
	ClientID    string
	VehicleID   string
	BudgetID    string
	Status      OrderStatus
	Description string
	FuelLevel   string
	Odometer    int64
	StartDate   time.Time
	EndDate     *time.Time
	PartsCost   decimal.Decimal
	LaborCost   decimal.Decimal
	TotalPrice  decimal.Decimal
	ServiceIDs  []string
}

// ApplyCosts overwrites both costs and recomputes the total price.
func (o *ServiceOrder) ApplyCosts(parts, labor decimal.Decimal) error {
	if parts.IsNegative() || labor.IsNegative() {
		return NewError(ErrValidation, "INVALID_COST", "costs must not be negative")
	}
	o.PartsCost = RoundMoney(parts)
	o.LaborCost = RoundMoney(labor)
	o.TotalPrice = SumMoney(o.PartsCost, o.LaborCost)
	return nil
}
