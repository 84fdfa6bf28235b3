package interfaces

import (
	"context"
	"time"

	"oficina_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service_order_repository_interface.go -destination=mocks/service_order_repository_interface_mock.go -package=mock_interfaces

// IServiceOrderRepository abstracts persistence for ServiceOrder.
//
//   - UpdateCosts writes both costs and the total in one statement and returns the fresh row
//     (zero order when the id is unknown).
//   - UpdateStatus with a non-empty expected status only matches rows still in that status.
//     endDate, when set, is stored together with the status.

type IServiceOrderRepository interface {
	Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	List(ctx context.Context, status entities.OrderStatus) ([]entities.ServiceOrder, error)
	ListRecent(ctx context.Context, limit int) ([]entities.ServiceOrder, error)
	UpdateCosts(ctx context.Context, id string, partsCost, laborCost, totalPrice decimal.Decimal) (entities.ServiceOrder, error)
	UpdateStatus(ctx context.Context, id string, expected, next entities.OrderStatus, endDate *time.Time) (bool, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context) (map[entities.OrderStatus]int64, error)
}
