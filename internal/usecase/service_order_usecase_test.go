package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"oficina_xpto/internal/domain/entities"
	mock_interfaces "oficina_xpto/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type orderMocks struct {
	orders   *mock_interfaces.MockIServiceOrderRepository
	budgets  *mock_interfaces.MockIBudgetRepository
	clients  *mock_interfaces.MockIClientRepository
	vehicles *mock_interfaces.MockIVehicleRepository
	services *mock_interfaces.MockIServiceRepository
}

func newServiceOrderUseCaseForTest(t *testing.T, opts WorkflowOptions) (*ServiceOrderUseCase, orderMocks) {
	ctrl := gomock.NewController(t)
	m := orderMocks{
		orders:   mock_interfaces.NewMockIServiceOrderRepository(ctrl),
		budgets:  mock_interfaces.NewMockIBudgetRepository(ctrl),
		clients:  mock_interfaces.NewMockIClientRepository(ctrl),
		vehicles: mock_interfaces.NewMockIVehicleRepository(ctrl),
		services: mock_interfaces.NewMockIServiceRepository(ctrl),
	}
	uc := NewServiceOrderUseCase(passthroughTx(ctrl), m.orders, m.budgets, m.clients, m.vehicles, m.services, opts)
	return uc, m
}

func approvedBudget() entities.Budget {
	return entities.Budget{
		ID:         "b-1",
		Number:     1000,
		ClientID:   "cli-1",
		VehicleID:  "veh-1",
		Odometer:   42000,
		ServiceIDs: []string{"S0001"},
		Parts:      []entities.Part{{Name: "Filtro", Value: money("50.00")}},
		TotalValue: money("150.00"),
		Status:     entities.BudgetStatusAprovado,
	}
}

func TestServiceOrderUseCase_OpenOrder_FromBudget(t *testing.T) {
	t.Run("copies the approved budget", func(t *testing.T) {
		uc, m := newServiceOrderUseCaseForTest(t, DefaultWorkflowOptions())
		m.budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(approvedBudget(), nil)
		m.clients.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{ID: "cli-1"}, nil)
		m.vehicles.EXPECT().GetByID(gomock.Any(), "veh-1").Return(entities.Vehicle{ID: "veh-1", ClientID: "cli-1"}, nil)
		m.services.EXPECT().ListByIDs(gomock.Any(), []string{"S0001"}).Return([]entities.Service{{ID: "S0001"}}, nil)
		m.orders.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ServiceOrder{})).DoAndReturn(
			func(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) { return o, nil },
		)

		o, err := uc.OpenOrder(context.Background(), OpenOrderInput{SeedBudgetID: "b-1", FuelLevel: "1/2"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !o.PartsCost.Equal(money("50")) || !o.LaborCost.Equal(money("100")) || !o.TotalPrice.Equal(money("150")) {
			t.Fatalf("unexpected costs: parts=%s labor=%s total=%s", o.PartsCost, o.LaborCost, o.TotalPrice)
		}
		if o.Status != entities.OrderStatusEmAndamento || o.BudgetID != "b-1" || o.ClientID != "cli-1" || o.Odometer != 42000 {
			t.Fatalf("unexpected order: %+v", o)
		}
		if o.StartDate.IsZero() || o.EndDate != nil {
			t.Fatalf("expected start date only")
		}
	})

	t.Run("pending budget cannot seed", func(t *testing.T) {
		uc, m := newServiceOrderUseCaseForTest(t, DefaultWorkflowOptions())
		b := approvedBudget()
		b.Status = entities.BudgetStatusPendente
		m.budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(b, nil)

		_, err := uc.OpenOrder(context.Background(), OpenOrderInput{SeedBudgetID: "b-1"})
		if !errors.Is(err, entities.ErrPreconditionFailed) {
			t.Fatalf("expected precondition failure, got %v", err)
		}
	})

	t.Run("unknown budget", func(t *testing.T) {
		uc, m := newServiceOrderUseCaseForTest(t, DefaultWorkflowOptions())
		m.budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{}, nil)

		_, err := uc.OpenOrder(context.Background(), OpenOrderInput{SeedBudgetID: "b-1"})
		if !errors.Is(err, ErrBudgetNotFound) {
			t.Fatalf("expected ErrBudgetNotFound, got %v", err)
		}
	})

	t.Run("explicit client must match the budget", func(t *testing.T) {
		uc, m := newServiceOrderUseCaseForTest(t, DefaultWorkflowOptions())
		m.budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(approvedBudget(), nil)

		_, err := uc.OpenOrder(context.Background(), OpenOrderInput{SeedBudgetID: "b-1", ClientID: "cli-2", VehicleID: "veh-1"})
		if !errors.Is(err, ErrSeedMismatch) || !errors.Is(err, entities.ErrValidation) {
			t.Fatalf("expected ErrSeedMismatch, got %v", err)
		}
	})
}

func TestServiceOrderUseCase_OpenOrder_WithoutBudget(t *testing.T) {
	t.Run("client and vehicle required", func(t *testing.T) {
		uc := NewServiceOrderUseCase(nil, nil, nil, nil, nil, nil, DefaultWorkflowOptions())
		_, err := uc.OpenOrder(context.Background(), OpenOrderInput{ClientID: "cli-1"})
		if !errors.Is(err, entities.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("unknown service", func(t *testing.T) {
		uc, m := newServiceOrderUseCaseForTest(t, DefaultWorkflowOptions())
		m.clients.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{ID: "cli-1"}, nil)
		m.vehicles.EXPECT().GetByID(gomock.Any(), "veh-1").Return(entities.Vehicle{ID: "veh-1"}, nil)
		m.services.EXPECT().ListByIDs(gomock.Any(), []string{"S0404"}).Return([]entities.Service{}, nil)

		_, err := uc.OpenOrder(context.Background(), OpenOrderInput{ClientID: "cli-1", VehicleID: "veh-1", ServiceIDs: []string{"S0404"}})
		if !errors.Is(err, entities.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("starts with zero costs", func(t *testing.T) {
		uc, m := newServiceOrderUseCaseForTest(t, DefaultWorkflowOptions())
		m.clients.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{ID: "cli-1"}, nil)
		m.vehicles.EXPECT().GetByID(gomock.Any(), "veh-1").Return(entities.Vehicle{ID: "veh-1"}, nil)
		m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) { return o, nil },
		)

		o, err := uc.OpenOrder(context.Background(), OpenOrderInput{ClientID: "cli-1", VehicleID: "veh-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !o.TotalPrice.IsZero() || o.BudgetID != "" {
			t.Fatalf("unexpected order: %+v", o)
		}
	})
}

func TestServiceOrderUseCase_UpdateCosts(t *testing.T) {
	t.Run("negative labor", func(t *testing.T) {
		uc := NewServiceOrderUseCase(nil, nil, nil, nil, nil, nil, DefaultWorkflowOptions())
		_, err := uc.UpdateCosts(context.Background(), "os-1", money("1"), money("-0.01"))
		if !errors.Is(err, entities.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("writes parts + labor as total", func(t *testing.T) {
		uc, m := newServiceOrderUseCaseForTest(t, DefaultWorkflowOptions())
		m.orders.EXPECT().UpdateCosts(gomock.Any(), "os-1", gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, parts, labor, total decimal.Decimal) (entities.ServiceOrder, error) {
				if !parts.Equal(money("50")) || !labor.Equal(money("200")) || !total.Equal(money("250")) {
					t.Fatalf("unexpected costs: parts=%s labor=%s total=%s", parts, labor, total)
				}
				return entities.ServiceOrder{ID: id, PartsCost: parts, LaborCost: labor, TotalPrice: total}, nil
			},
		)

		o, err := uc.UpdateCosts(context.Background(), "os-1", money("50"), money("200"))
		if err != nil || !o.TotalPrice.Equal(money("250")) {
			t.Fatalf("unexpected result err=%v o=%+v", err, o)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newServiceOrderUseCaseForTest(t, DefaultWorkflowOptions())
		m.orders.EXPECT().UpdateCosts(gomock.Any(), "os-1", gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.ServiceOrder{}, nil)

		_, err := uc.UpdateCosts(context.Background(), "os-1", money("1"), money("1"))
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}

func TestServiceOrderUseCase_UpdateStatus(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		uc := NewServiceOrderUseCase(nil, nil, nil, nil, nil, nil, DefaultWorkflowOptions())
		_, err := uc.UpdateStatus(context.Background(), "os-1", entities.OrderStatus("Aberta"))
		if !errors.Is(err, entities.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("strict mode rejects reopening a canceled order", func(t *testing.T) {
		uc, m := newServiceOrderUseCaseForTest(t, DefaultWorkflowOptions())
		m.orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1", Status: entities.OrderStatusCancelada}, nil)

		_, err := uc.UpdateStatus(context.Background(), "os-1", entities.OrderStatusConcluida)
		if !errors.Is(err, entities.ErrConflict) {
			t.Fatalf("expected conflict, got %v", err)
		}
	})

	t.Run("strict mode leaves invoicing to invoice creation", func(t *testing.T) {
		uc, _ := newServiceOrderUseCaseForTest(t, DefaultWorkflowOptions())

		_, err := uc.UpdateStatus(context.Background(), "os-1", entities.OrderStatusFaturada)
		if !errors.Is(err, ErrOrderInvoicedManually) {
			t.Fatalf("expected ErrOrderInvoicedManually, got %v", err)
		}
		if !errors.Is(err, entities.ErrConflict) {
			t.Fatalf("expected conflict kind, got %v", err)
		}
	})

	t.Run("completion stamps the end date", func(t *testing.T) {
		uc, m := newServiceOrderUseCaseForTest(t, DefaultWorkflowOptions())
		m.orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1", Status: entities.OrderStatusEmAndamento}, nil)
		m.orders.EXPECT().UpdateStatus(gomock.Any(), "os-1", entities.OrderStatusEmAndamento, entities.OrderStatusConcluida, gomock.Not(gomock.Nil())).Return(true, nil)
		end := time.Now().UTC()
		m.orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1", Status: entities.OrderStatusConcluida, EndDate: &end}, nil)

		o, err := uc.UpdateStatus(context.Background(), "os-1", entities.OrderStatusConcluida)
		if err != nil || o.Status != entities.OrderStatusConcluida || o.EndDate == nil {
			t.Fatalf("unexpected result err=%v o=%+v", err, o)
		}
	})

	t.Run("concurrent change is a conflict", func(t *testing.T) {
		uc, m := newServiceOrderUseCaseForTest(t, DefaultWorkflowOptions())
		m.orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1", Status: entities.OrderStatusEmAndamento}, nil)
		m.orders.EXPECT().UpdateStatus(gomock.Any(), "os-1", gomock.Any(), entities.OrderStatusCancelada, nil).Return(false, nil)

		_, err := uc.UpdateStatus(context.Background(), "os-1", entities.OrderStatusCancelada)
		if !errors.Is(err, ErrOrderStatusChanged) {
			t.Fatalf("expected ErrOrderStatusChanged, got %v", err)
		}
	})

	t.Run("permissive mode overwrites any status", func(t *testing.T) {
		uc, m := newServiceOrderUseCaseForTest(t, WorkflowOptions{})
		m.orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1", Status: entities.OrderStatusCancelada}, nil)
		m.orders.EXPECT().UpdateStatus(gomock.Any(), "os-1", entities.OrderStatus(""), entities.OrderStatusEmAndamento, nil).Return(true, nil)
		m.orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1", Status: entities.OrderStatusEmAndamento}, nil)

		o, err := uc.UpdateStatus(context.Background(), "os-1", entities.OrderStatusEmAndamento)
		if err != nil || o.Status != entities.OrderStatusEmAndamento {
			t.Fatalf("unexpected result err=%v o=%+v", err, o)
		}
	})
}

func TestServiceOrderUseCase_ListOrders(t *testing.T) {
	t.Run("invalid filter", func(t *testing.T) {
		uc := NewServiceOrderUseCase(nil, nil, nil, nil, nil, nil, DefaultWorkflowOptions())
		_, err := uc.ListOrders(context.Background(), entities.OrderStatus("x"))
		if !errors.Is(err, entities.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("filter passed through", func(t *testing.T) {
		uc, m := newServiceOrderUseCaseForTest(t, DefaultWorkflowOptions())
		m.orders.EXPECT().List(gomock.Any(), entities.OrderStatusConcluida).Return([]entities.ServiceOrder{{ID: "os-1"}}, nil)

		res, err := uc.ListOrders(context.Background(), entities.OrderStatusConcluida)
		if err != nil || len(res) != 1 {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})
}
