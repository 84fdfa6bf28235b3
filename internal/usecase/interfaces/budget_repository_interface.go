package interfaces

import (
	"context"
	"oficina_xpto/internal/domain/entities"
)

//go:generate mockgen -source=budget_repository_interface.go -destination=mocks/budget_repository_interface_mock.go -package=mock_interfaces

// IBudgetRepository abstracts persistence for Budget.
//
// The engine must be able to:
//   - insert a budget with an already allocated number
//   - overwrite the editable fields of a budget
//   - move a budget between statuses only when it is still in the expected one
//     (UpdateStatusIf reports false when no row matched)

type IBudgetRepository interface {
	Create(ctx context.Context, b entities.Budget) (entities.Budget, error)
	Update(ctx context.Context, b entities.Budget) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	List(ctx context.Context) ([]entities.Budget, error)
	UpdateStatusIf(ctx context.Context, id string, expected, next entities.BudgetStatus) (bool, error)
}
