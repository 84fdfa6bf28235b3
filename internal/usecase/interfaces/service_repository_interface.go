package interfaces

import (
	"context"
	"oficina_xpto/internal/domain/entities"
)

//go:generate mockgen -source=service_repository_interface.go -destination=mocks/service_repository_interface_mock.go -package=mock_interfaces

// IServiceRepository abstracts persistence for the service catalog.
//
// ListByIDs returns the distinct services found; missing IDs are simply absent.
// CountReferences counts budgets and service orders whose line items name the service.

type IServiceRepository interface {
	Create(ctx context.Context, s entities.Service) (entities.Service, error)
	Update(ctx context.Context, s entities.Service) (entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	List(ctx context.Context) ([]entities.Service, error)
	ListByIDs(ctx context.Context, ids []string) ([]entities.Service, error)
	Delete(ctx context.Context, id string) (bool, error)
	CountReferences(ctx context.Context, id string) (int64, error)
}
