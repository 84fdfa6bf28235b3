package usecase

import (
	"context"
	"strings"
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// OpenOrderInput describes a new service order. With SeedBudgetID set, client, vehicle,
// odometer, services and costs are copied from that approved budget; explicit client and
// vehicle ids must then match the budget.
type OpenOrderInput struct {
	ClientID     string
	VehicleID    string
	Odometer     int64
	FuelLevel    string
	Description  string
	ServiceIDs   []string
	SeedBudgetID string
}

// IServiceOrderUseCase exposes the service order (OS) engine.
type IServiceOrderUseCase interface {
	OpenOrder(ctx context.Context, in OpenOrderInput) (entities.ServiceOrder, error)
	UpdateCosts(ctx context.Context, id string, partsCost, laborCost decimal.Decimal) (entities.ServiceOrder, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.ServiceOrder, error)
	GetOrder(ctx context.Context, id string) (entities.ServiceOrder, error)
	ListOrders(ctx context.Context, status entities.OrderStatus) ([]entities.ServiceOrder, error)
}

type ServiceOrderUseCase struct {
	tx       interfaces.ITransactor
	repo     interfaces.IServiceOrderRepository
	budgets  interfaces.IBudgetRepository
	clients  interfaces.IClientRepository
	vehicles interfaces.IVehicleRepository
	services interfaces.IServiceRepository
	opts     WorkflowOptions
}

var _ IServiceOrderUseCase = (*ServiceOrderUseCase)(nil)

func NewServiceOrderUseCase(
	tx interfaces.ITransactor,
	repo interfaces.IServiceOrderRepository,
	budgets interfaces.IBudgetRepository,
	clients interfaces.IClientRepository,
	vehicles interfaces.IVehicleRepository,
	services interfaces.IServiceRepository,
	opts WorkflowOptions,
) *ServiceOrderUseCase {
	return &ServiceOrderUseCase{
		tx:       tx,
		repo:     repo,
		budgets:  budgets,
		clients:  clients,
		vehicles: vehicles,
		services: services,
		opts:     opts,
	}
}

func (u *ServiceOrderUseCase) OpenOrder(ctx context.Context, in OpenOrderInput) (entities.ServiceOrder, error) {
	in.ClientID = strings.TrimSpace(in.ClientID)
	in.VehicleID = strings.TrimSpace(in.VehicleID)
	in.SeedBudgetID = strings.TrimSpace(in.SeedBudgetID)
	in.ServiceIDs = trimIDs(in.ServiceIDs)
	if in.Odometer < 0 {
		return entities.ServiceOrder{}, ErrInvalidOdometer
	}
	if in.SeedBudgetID == "" && (in.ClientID == "" || in.VehicleID == "") {
		return entities.ServiceOrder{}, entities.Validationf("clienteId and veiculoId are required")
	}

	var created entities.ServiceOrder
	err := u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		order := entities.ServiceOrder{
			ID:          uuid.NewString(),
			ClientID:    in.ClientID,
			VehicleID:   in.VehicleID,
			Status:      entities.OrderStatusEmAndamento,
			Description: strings.TrimSpace(in.Description),
			FuelLevel:   strings.TrimSpace(in.FuelLevel),
			Odometer:    in.Odometer,
			StartDate:   time.Now().UTC(),
			ServiceIDs:  in.ServiceIDs,
		}
		parts, labor := decimal.Zero, decimal.Zero

		if in.SeedBudgetID != "" {
			seed, err := u.seed(ctx, in)
			if err != nil {
				return err
			}
			order.BudgetID = in.SeedBudgetID
			order.ClientID = seed.ClientID
			order.VehicleID = seed.VehicleID
			if order.Odometer == 0 {
				order.Odometer = seed.Odometer
			}
			if len(order.ServiceIDs) == 0 {
				order.ServiceIDs = seed.ServiceIDs
			}
			parts, labor = seed.PartsCost, seed.LaborCost
		}
		if err := order.ApplyCosts(parts, labor); err != nil {
			return err
		}

		if err := resolveParty(ctx, u.clients, u.vehicles, order.ClientID, order.VehicleID, false); err != nil {
			return err
		}
		if _, err := resolveServices(ctx, u.services, order.ServiceIDs); err != nil {
			return err
		}

		var err error
		created, err = u.repo.Create(ctx, order)
		return err
	})
	if err != nil {
		log.Warn().Err(err).Str("seed_budget_id", in.SeedBudgetID).Msg("[order][usecase] open failed")
		return entities.ServiceOrder{}, err
	}
	log.Info().Str("order_id", created.ID).Str("budget_id", created.BudgetID).Str("total", created.TotalPrice.StringFixed(2)).
		Msg("[order][usecase] opened")
	return created, nil
}

func (u *ServiceOrderUseCase) seed(ctx context.Context, in OpenOrderInput) (entities.OrderSeed, error) {
	budget, err := u.budgets.GetByID(ctx, in.SeedBudgetID)
	if err != nil {
		return entities.OrderSeed{}, err
	}
	if budget.ID == "" {
		return entities.OrderSeed{}, ErrBudgetNotFound
	}
	seed, err := budget.Seed()
	if err != nil {
		return entities.OrderSeed{}, err
	}
	if (in.ClientID != "" && in.ClientID != seed.ClientID) || (in.VehicleID != "" && in.VehicleID != seed.VehicleID) {
		return entities.OrderSeed{}, ErrSeedMismatch
	}
	return seed, nil
}

// UpdateCosts overwrites both costs in any status; the stored total is always parts + labor.
func (u *ServiceOrderUseCase) UpdateCosts(ctx context.Context, id string, partsCost, laborCost decimal.Decimal) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidID
	}
	var priced entities.ServiceOrder
	if err := priced.ApplyCosts(partsCost, laborCost); err != nil {
		return entities.ServiceOrder{}, err
	}

	updated, err := u.repo.UpdateCosts(ctx, id, priced.PartsCost, priced.LaborCost, priced.TotalPrice)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if updated.ID == "" {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	log.Info().Str("order_id", id).Str("total", updated.TotalPrice.StringFixed(2)).Msg("[order][usecase] costs updated")
	return updated, nil
}

// UpdateStatus writes a new status. In strict mode the transition table is enforced, the
// write only applies if nobody changed the order in between, and "Faturada" is refused:
// only invoice creation may set it.
func (u *ServiceOrderUseCase) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidID
	}
	if !status.IsValid() {
		return entities.ServiceOrder{}, entities.Validationf("invalid service order status %q", status)
	}
	if u.opts.StrictTransitions && status == entities.OrderStatusFaturada {
		log.Info().Str("order_id", id).Msg("[order][usecase] manual invoicing refused")
		return entities.ServiceOrder{}, ErrOrderInvoicedManually
	}

	var out entities.ServiceOrder
	err := u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		current, err := u.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if current.ID == "" {
			return ErrOrderNotFound
		}

		var expected entities.OrderStatus
		if u.opts.StrictTransitions {
			if _, err := current.Status.TransitionTo(status); err != nil {
				return err
			}
			expected = current.Status
		}

		var endDate *time.Time
		if status == entities.OrderStatusConcluida {
			now := time.Now().UTC()
			endDate = &now
		}

		ok, err := u.repo.UpdateStatus(ctx, id, expected, status, endDate)
		if err != nil {
			return err
		}
		if !ok {
			return ErrOrderStatusChanged
		}

		out, err = u.repo.GetByID(ctx, id)
		return err
	})
	if err != nil {
		log.Info().Err(err).Str("order_id", id).Str("to", status.String()).Msg("[order][usecase] status update refused")
		return entities.ServiceOrder{}, err
	}
	log.Info().Str("order_id", id).Str("status", out.Status.String()).Msg("[order][usecase] status updated")
	return out, nil
}

func (u *ServiceOrderUseCase) GetOrder(ctx context.Context, id string) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidID
	}
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if o.ID == "" {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	return o, nil
}

// ListOrders lists every order when status is empty.
func (u *ServiceOrderUseCase) ListOrders(ctx context.Context, status entities.OrderStatus) ([]entities.ServiceOrder, error) {
	if status != "" && !status.IsValid() {
		return nil, entities.Validationf("invalid service order status %q", status)
	}
	return u.repo.List(ctx, status)
}
