package repository

import (
	"context"
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ServiceOrderGormRepository struct {
	gormBase
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderGormRepository)(nil)

func NewServiceOrderGormRepository(db *gorm.DB) *ServiceOrderGormRepository {
	return &ServiceOrderGormRepository{gormBase{db: db}}
}

func (r *ServiceOrderGormRepository) Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	m := toServiceOrderModel(o)
	if err := r.conn(ctx).Create(&m).Error; err != nil {
		return entities.ServiceOrder{}, translateError("create service order", err)
	}
	return fromServiceOrderModel(m), nil
}

func (r *ServiceOrderGormRepository) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	var m serviceOrderModel
	found, err := takeOne(r.conn(ctx).Where("id = ?", id), &m)
	if err != nil {
		return entities.ServiceOrder{}, translateError("get service order", err)
	}
	if !found {
		return entities.ServiceOrder{}, nil
	}
	return fromServiceOrderModel(m), nil
}

// List returns orders newest first, filtered by status when one is given.
func (r *ServiceOrderGormRepository) List(ctx context.Context, status entities.OrderStatus) ([]entities.ServiceOrder, error) {
	q := r.conn(ctx).Order("start_date DESC")
	if status != "" {
		q = q.Where("status = ?", string(status))
	}
	return r.find(q)
}

func (r *ServiceOrderGormRepository) ListRecent(ctx context.Context, limit int) ([]entities.ServiceOrder, error) {
	return r.find(r.conn(ctx).Order("start_date DESC").Limit(limit))
}

func (r *ServiceOrderGormRepository) find(q *gorm.DB) ([]entities.ServiceOrder, error) {
	var rows []serviceOrderModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, translateError("list service orders", err)
	}
	out := make([]entities.ServiceOrder, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromServiceOrderModel(m))
	}
	return out, nil
}

func (r *ServiceOrderGormRepository) UpdateCosts(ctx context.Context, id string, partsCost, laborCost, totalPrice decimal.Decimal) (entities.ServiceOrder, error) {
	res := r.conn(ctx).Model(&serviceOrderModel{}).Where("id = ?", id).Updates(map[string]any{
		"parts_cost":  partsCost,
		"labor_cost":  laborCost,
		"total_price": totalPrice,
	})
	if res.Error != nil {
		return entities.ServiceOrder{}, translateError("update service order costs", res.Error)
	}
	if res.RowsAffected == 0 {
		return entities.ServiceOrder{}, nil
	}
	return r.GetByID(ctx, id)
}

func (r *ServiceOrderGormRepository) UpdateStatus(ctx context.Context, id string, expected, next entities.OrderStatus, endDate *time.Time) (bool, error) {
	q := r.conn(ctx).Model(&serviceOrderModel{}).Where("id = ?", id)
	if expected != "" {
		q = q.Where("status = ?", string(expected))
	}
	values := map[string]any{"status": string(next)}
	if endDate != nil {
		values["end_date"] = endDate.UTC()
	}
	res := q.Updates(values)
	if res.Error != nil {
		return false, translateError("update service order status", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *ServiceOrderGormRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.conn(ctx).Model(&serviceOrderModel{}).Count(&n).Error; err != nil {
		return 0, translateError("count service orders", err)
	}
	return n, nil
}

func (r *ServiceOrderGormRepository) CountByStatus(ctx context.Context) (map[entities.OrderStatus]int64, error) {
	var rows []struct {
		Status string
		Total  int64
	}
	err := r.conn(ctx).Model(&serviceOrderModel{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, translateError("count service orders by status", err)
	}
	out := make(map[entities.OrderStatus]int64, len(rows))
	for _, row := range rows {
		out[entities.OrderStatus(row.Status)] = row.Total
	}
	return out, nil
}

func toServiceOrderModel(o entities.ServiceOrder) serviceOrderModel {
	ids := make([]string, len(o.ServiceIDs))
	copy(ids, o.ServiceIDs)
	return serviceOrderModel{
		ID:          o.ID,
		ClientID:    nullableString(o.ClientID),
		VehicleID:   nullableString(o.VehicleID),
		BudgetID:    nullableString(o.BudgetID),
		Status:      string(o.Status),
		Description: o.Description,
		FuelLevel:   o.FuelLevel,
		Odometer:    o.Odometer,
		StartDate:   o.StartDate,
		EndDate:     o.EndDate,
		PartsCost:   o.PartsCost,
		LaborCost:   o.LaborCost,
		TotalPrice:  o.TotalPrice,
		ServiceIDs:  ids,
	}
}

func fromServiceOrderModel(m serviceOrderModel) entities.ServiceOrder {
	return entities.ServiceOrder{
		ID:          m.ID,
		ClientID:    derefString(m.ClientID),
		VehicleID:   derefString(m.VehicleID),
		BudgetID:    derefString(m.BudgetID),
		Status:      entities.OrderStatus(m.Status),
		Description: m.Description,
		FuelLevel:   m.FuelLevel,
		Odometer:    m.Odometer,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		PartsCost:   m.PartsCost,
		LaborCost:   m.LaborCost,
		TotalPrice:  m.TotalPrice,
		ServiceIDs:  append([]string{}, m.ServiceIDs...),
	}
}
