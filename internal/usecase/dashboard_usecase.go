package usecase

import (
	"context"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"
)

const recentOrdersLimit = 5

type IDashboardUseCase interface {
	Summary(ctx context.Context) (entities.DashboardSummary, error)
}

type DashboardUseCase struct {
	clients  interfaces.IClientRepository
	vehicles interfaces.IVehicleRepository
	orders   interfaces.IServiceOrderRepository
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(clients interfaces.IClientRepository, vehicles interfaces.IVehicleRepository, orders interfaces.IServiceOrderRepository) *DashboardUseCase {
	return &DashboardUseCase{clients: clients, vehicles: vehicles, orders: orders}
}

func (u *DashboardUseCase) Summary(ctx context.Context) (entities.DashboardSummary, error) {
	var (
		s   entities.DashboardSummary
		err error
	)
	if s.TotalClients, err = u.clients.Count(ctx); err != nil {
		return entities.DashboardSummary{}, err
	}
	if s.TotalVehicles, err = u.vehicles.Count(ctx); err != nil {
		return entities.DashboardSummary{}, err
	}
	if s.TotalOrders, err = u.orders.Count(ctx); err != nil {
		return entities.DashboardSummary{}, err
	}
	if s.OrdersByStatus, err = u.orders.CountByStatus(ctx); err != nil {
		return entities.DashboardSummary{}, err
	}
	if s.RecentOrders, err = u.orders.ListRecent(ctx, recentOrdersLimit); err != nil {
		return entities.DashboardSummary{}, err
	}
	return s, nil
}
