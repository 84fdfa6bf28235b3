package interfaces

import (
	"context"
	"oficina_xpto/internal/domain/entities"
)

//go:generate mockgen -source=client_repository_interface.go -destination=mocks/client_repository_interface_mock.go -package=mock_interfaces

// IClientRepository abstracts persistence for Client.
//
// Lookups return a zero Client (empty ID) when nothing matches.
// Delete removes the client's vehicles and budgets and detaches its service orders.

type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	Update(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	GetByTaxID(ctx context.Context, taxID string) (entities.Client, error)
	List(ctx context.Context) ([]entities.Client, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int64, error)
}
