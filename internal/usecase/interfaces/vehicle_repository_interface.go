package interfaces

import (
	"context"
	"oficina_xpto/internal/domain/entities"
)

//go:generate mockgen -source=vehicle_repository_interface.go -destination=mocks/vehicle_repository_interface_mock.go -package=mock_interfaces

// IVehicleRepository abstracts persistence for Vehicle and its service-record log.

type IVehicleRepository interface {
	Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	Update(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	GetByID(ctx context.Context, id string) (entities.Vehicle, error)
	GetByPlate(ctx context.Context, plate string) (entities.Vehicle, error)
	List(ctx context.Context, clientID string) ([]entities.Vehicle, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int64, error)
	AppendServiceRecord(ctx context.Context, r entities.ServiceRecord) (entities.ServiceRecord, error)
	ListServiceRecords(ctx context.Context, vehicleID string) ([]entities.ServiceRecord, error)
}
