package usecase

import (
	"context"
	"strings"
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// IVehicleUseCase manages vehicles and their service-record log.
type IVehicleUseCase interface {
	CreateVehicle(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	UpdateVehicle(ctx context.Context, id string, v entities.Vehicle) (entities.Vehicle, error)
	GetVehicle(ctx context.Context, id string) (entities.Vehicle, error)
	ListVehicles(ctx context.Context, clientID string) ([]entities.Vehicle, error)
	DeleteVehicle(ctx context.Context, id string) error
	PlateExists(ctx context.Context, plate string) (bool, error)
	AddServiceRecord(ctx context.Context, vehicleID string, r entities.ServiceRecord) (entities.ServiceRecord, error)
	ListServiceRecords(ctx context.Context, vehicleID string) ([]entities.ServiceRecord, error)
}

type VehicleUseCase struct {
	repo    interfaces.IVehicleRepository
	clients interfaces.IClientRepository
}

var _ IVehicleUseCase = (*VehicleUseCase)(nil)

func NewVehicleUseCase(repo interfaces.IVehicleRepository, clients interfaces.IClientRepository) *VehicleUseCase {
	return &VehicleUseCase{repo: repo, clients: clients}
}

func (u *VehicleUseCase) CreateVehicle(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	v, err := u.normalize(ctx, v)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if existing, err := u.repo.GetByPlate(ctx, v.Plate); err != nil {
		return entities.Vehicle{}, err
	} else if existing.ID != "" {
		return entities.Vehicle{}, ErrPlateTaken
	}

	v.ID = uuid.NewString()
	v.CreatedAt = time.Now().UTC()
	created, err := u.repo.Create(ctx, v)
	if err != nil {
		return entities.Vehicle{}, err
	}
	log.Info().Str("vehicle_id", created.ID).Str("client_id", created.ClientID).Msg("[vehicle][usecase] created")
	return created, nil
}

func (u *VehicleUseCase) UpdateVehicle(ctx context.Context, id string, v entities.Vehicle) (entities.Vehicle, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Vehicle{}, ErrInvalidID
	}
	v, err := u.normalize(ctx, v)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if existing, err := u.repo.GetByPlate(ctx, v.Plate); err != nil {
		return entities.Vehicle{}, err
	} else if existing.ID != "" && existing.ID != id {
		return entities.Vehicle{}, ErrPlateTaken
	}

	v.ID = id
	updated, err := u.repo.Update(ctx, v)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if updated.ID == "" {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	return updated, nil
}

func (u *VehicleUseCase) GetVehicle(ctx context.Context, id string) (entities.Vehicle, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Vehicle{}, ErrInvalidID
	}
	v, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if v.ID == "" {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	return v, nil
}

// ListVehicles returns every vehicle, or only the client's when clientID is set.
func (u *VehicleUseCase) ListVehicles(ctx context.Context, clientID string) ([]entities.Vehicle, error) {
	return u.repo.List(ctx, strings.TrimSpace(clientID))
}

func (u *VehicleUseCase) DeleteVehicle(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrVehicleNotFound
	}
	return nil
}

func (u *VehicleUseCase) PlateExists(ctx context.Context, plate string) (bool, error) {
	plate = entities.NormalizePlate(plate)
	if plate == "" {
		return false, ErrInvalidPlate
	}
	v, err := u.repo.GetByPlate(ctx, plate)
	if err != nil {
		return false, err
	}
	return v.ID != "", nil
}

func (u *VehicleUseCase) AddServiceRecord(ctx context.Context, vehicleID string, r entities.ServiceRecord) (entities.ServiceRecord, error) {
	if _, err := u.GetVehicle(ctx, vehicleID); err != nil {
		return entities.ServiceRecord{}, err
	}
	r.Description = strings.TrimSpace(r.Description)
	if r.Description == "" {
		return entities.ServiceRecord{}, entities.Validationf("descricao is required")
	}
	if r.Value != nil {
		if r.Value.IsNegative() {
			return entities.ServiceRecord{}, ErrInvalidPrice
		}
		rounded := entities.RoundMoney(*r.Value)
		r.Value = &rounded
	}
	r.ID = uuid.NewString()
	r.VehicleID = strings.TrimSpace(vehicleID)
	if r.PerformedAt.IsZero() {
		r.PerformedAt = time.Now().UTC()
	}
	return u.repo.AppendServiceRecord(ctx, r)
}

// ListServiceRecords returns the log newest first.
func (u *VehicleUseCase) ListServiceRecords(ctx context.Context, vehicleID string) ([]entities.ServiceRecord, error) {
	if _, err := u.GetVehicle(ctx, vehicleID); err != nil {
		return nil, err
	}
	return u.repo.ListServiceRecords(ctx, strings.TrimSpace(vehicleID))
}

func (u *VehicleUseCase) normalize(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	v.Make = strings.TrimSpace(v.Make)
	v.Model = strings.TrimSpace(v.Model)
	v.ClientID = strings.TrimSpace(v.ClientID)
	if v.Make == "" || v.Model == "" {
		return v, entities.Validationf("marca and modelo are required")
	}
	if v.Year < 1900 || v.Year > time.Now().Year()+1 {
		return v, entities.Validationf("invalid year %d", v.Year)
	}
	if !entities.IsValidPlate(v.Plate) {
		return v, ErrInvalidPlate
	}
	v.Plate = entities.NormalizePlate(v.Plate)
	if v.ClientID == "" {
		return v, entities.Validationf("clienteId is required")
	}
	c, err := u.clients.GetByID(ctx, v.ClientID)
	if err != nil {
		return v, err
	}
	if c.ID == "" {
		return v, ErrUnknownClientRef
	}
	return v, nil
}
