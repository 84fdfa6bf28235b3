package repository

import (
	"context"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type VehicleGormRepository struct {
	gormBase
}

var _ interfaces.IVehicleRepository = (*VehicleGormRepository)(nil)

func NewVehicleGormRepository(db *gorm.DB) *VehicleGormRepository {
	return &VehicleGormRepository{gormBase{db: db}}
}

func (r *VehicleGormRepository) Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	m := toVehicleModel(v)
	if err := r.conn(ctx).Create(&m).Error; err != nil {
		return entities.Vehicle{}, translateError("create vehicle", err)
	}
	return fromVehicleModel(m), nil
}

func (r *VehicleGormRepository) Update(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	res := r.conn(ctx).Model(&vehicleModel{}).Where("id = ?", v.ID).Updates(map[string]any{
		"make":      v.Make,
		"model":     v.Model,
		"year":      v.Year,
		"plate":     v.Plate,
		"client_id": v.ClientID,
	})
	if res.Error != nil {
		return entities.Vehicle{}, translateError("update vehicle", res.Error)
	}
	if res.RowsAffected == 0 {
		return entities.Vehicle{}, nil
	}
	return r.GetByID(ctx, v.ID)
}

func (r *VehicleGormRepository) GetByID(ctx context.Context, id string) (entities.Vehicle, error) {
	return r.getWhere(ctx, "id = ?", id)
}

func (r *VehicleGormRepository) GetByPlate(ctx context.Context, plate string) (entities.Vehicle, error) {
	return r.getWhere(ctx, "plate = ?", plate)
}

func (r *VehicleGormRepository) getWhere(ctx context.Context, query string, arg any) (entities.Vehicle, error) {
	var m vehicleModel
	found, err := takeOne(r.conn(ctx).Where(query, arg), &m)
	if err != nil {
		return entities.Vehicle{}, translateError("get vehicle", err)
	}
	if !found {
		return entities.Vehicle{}, nil
	}
	return fromVehicleModel(m), nil
}

// List returns every vehicle, or only the ones owned by clientID when it is set.
func (r *VehicleGormRepository) List(ctx context.Context, clientID string) ([]entities.Vehicle, error) {
	q := r.conn(ctx).Order("plate ASC")
	if clientID != "" {
		q = q.Where("client_id = ?", clientID)
	}
	var rows []vehicleModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, translateError("list vehicles", err)
	}
	out := make([]entities.Vehicle, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromVehicleModel(m))
	}
	return out, nil
}

func (r *VehicleGormRepository) Delete(ctx context.Context, id string) (bool, error) {
	deleted := false
	err := r.conn(ctx).Transaction(func(tx *gorm.DB) error {
		if err := detachVehicles(tx, []string{id}); err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&vehicleModel{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, translateError("delete vehicle", err)
	}
	return deleted, nil
}

// detachVehicles drops the service records and budgets of the given vehicles and clears
// the vehicle reference on their service orders.
func detachVehicles(tx *gorm.DB, vehicleIDs []string) error {
	if len(vehicleIDs) == 0 {
		return nil
	}
	if err := tx.Where("vehicle_id IN ?", vehicleIDs).Delete(&serviceRecordModel{}).Error; err != nil {
		return err
	}
	if err := tx.Where("vehicle_id IN ?", vehicleIDs).Delete(&budgetModel{}).Error; err != nil {
		return err
	}
	return tx.Model(&serviceOrderModel{}).Where("vehicle_id IN ?", vehicleIDs).Update("vehicle_id", nil).Error
}

func (r *VehicleGormRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.conn(ctx).Model(&vehicleModel{}).Count(&n).Error; err != nil {
		return 0, translateError("count vehicles", err)
	}
	return n, nil
}

func (r *VehicleGormRepository) AppendServiceRecord(ctx context.Context, rec entities.ServiceRecord) (entities.ServiceRecord, error) {
	m := serviceRecordModel{
		ID:          rec.ID,
		VehicleID:   rec.VehicleID,
		Description: rec.Description,
		Value:       rec.Value,
		PerformedAt: rec.PerformedAt,
	}
	if err := r.conn(ctx).Create(&m).Error; err != nil {
		return entities.ServiceRecord{}, translateError("append service record", err)
	}
	return fromServiceRecordModel(m), nil
}

func (r *VehicleGormRepository) ListServiceRecords(ctx context.Context, vehicleID string) ([]entities.ServiceRecord, error) {
	var rows []serviceRecordModel
	err := r.conn(ctx).Where("vehicle_id = ?", vehicleID).Order("performed_at DESC").Find(&rows).Error
	if err != nil {
		return nil, translateError("list service records", err)
	}
	out := make([]entities.ServiceRecord, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromServiceRecordModel(m))
	}
	return out, nil
}

func toVehicleModel(v entities.Vehicle) vehicleModel {
	return vehicleModel{
		ID:        v.ID,
		Make:      v.Make,
		Model:     v.Model,
		Year:      v.Year,
		Plate:     v.Plate,
		ClientID:  v.ClientID,
		CreatedAt: v.CreatedAt,
	}
}

func fromVehicleModel(m vehicleModel) entities.Vehicle {
	return entities.Vehicle{
		ID:        m.ID,
		Make:      m.Make,
		Model:     m.Model,
		Year:      m.Year,
		Plate:     m.Plate,
		ClientID:  m.ClientID,
		CreatedAt: m.CreatedAt,
	}
}

func fromServiceRecordModel(m serviceRecordModel) entities.ServiceRecord {
	return entities.ServiceRecord{
		ID:          m.ID,
		VehicleID:   m.VehicleID,
		Description: m.Description,
		Value:       m.Value,
		PerformedAt: m.PerformedAt,
	}
}
