package repository

import (
	"context"
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// BudgetGormRepository persists budgets. Service references and parts are JSON columns
// on the budget row.
type BudgetGormRepository struct {
	gormBase
}

var _ interfaces.IBudgetRepository = (*BudgetGormRepository)(nil)

func NewBudgetGormRepository(db *gorm.DB) *BudgetGormRepository {
	return &BudgetGormRepository{gormBase{db: db}}
}

func (r *BudgetGormRepository) Create(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	m := toBudgetModel(b)
	if err := r.conn(ctx).Create(&m).Error; err != nil {
		return entities.Budget{}, translateError("create budget", err)
	}
	return fromBudgetModel(m), nil
}

// Update overwrites the editable fields. Number, status and creation time are left alone.
func (r *BudgetGormRepository) Update(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	m := toBudgetModel(b)
	res := r.conn(ctx).Model(&budgetModel{}).Where("id = ?", b.ID).Updates(map[string]any{
		"quote_date":  m.QuoteDate,
		"client_id":   m.ClientID,
		"vehicle_id":  m.VehicleID,
		"odometer":    m.Odometer,
		"description": m.Description,
		"service_ids": m.ServiceIDs,
		"parts":       m.Parts,
		"total_value": m.TotalValue,
		"updated_at":  m.UpdatedAt,
	})
	if res.Error != nil {
		return entities.Budget{}, translateError("update budget", res.Error)
	}
	if res.RowsAffected == 0 {
		return entities.Budget{}, nil
	}
	return r.GetByID(ctx, b.ID)
}

func (r *BudgetGormRepository) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	var m budgetModel
	found, err := takeOne(r.conn(ctx).Where("id = ?", id), &m)
	if err != nil {
		return entities.Budget{}, translateError("get budget", err)
	}
	if !found {
		return entities.Budget{}, nil
	}
	return fromBudgetModel(m), nil
}

func (r *BudgetGormRepository) List(ctx context.Context) ([]entities.Budget, error) {
	var rows []budgetModel
	if err := r.conn(ctx).Order("number DESC").Find(&rows).Error; err != nil {
		return nil, translateError("list budgets", err)
	}
	out := make([]entities.Budget, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromBudgetModel(m))
	}
	return out, nil
}

// UpdateStatusIf applies UPDATE ... WHERE id = ? AND status = expected and reports whether a
// row matched.
func (r *BudgetGormRepository) UpdateStatusIf(ctx context.Context, id string, expected, next entities.BudgetStatus) (bool, error) {
	res := r.conn(ctx).Model(&budgetModel{}).
		Where("id = ? AND status = ?", id, string(expected)).
		Updates(map[string]any{"status": string(next), "updated_at": time.Now().UTC()})
	if res.Error != nil {
		return false, translateError("update budget status", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func toBudgetModel(b entities.Budget) budgetModel {
	parts := make([]partColumn, 0, len(b.Parts))
	for _, p := range b.Parts {
		parts = append(parts, partColumn{Name: p.Name, Value: p.Value})
	}
	ids := make([]string, len(b.ServiceIDs))
	copy(ids, b.ServiceIDs)
	return budgetModel{
		ID:          b.ID,
		Number:      b.Number,
		QuoteDate:   b.QuoteDate,
		ClientID:    b.ClientID,
		VehicleID:   b.VehicleID,
		Odometer:    b.Odometer,
		Description: b.Description,
		ServiceIDs:  ids,
		Parts:       parts,
		TotalValue:  b.TotalValue,
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func fromBudgetModel(m budgetModel) entities.Budget {
	parts := make([]entities.Part, 0, len(m.Parts))
	for _, p := range m.Parts {
		parts = append(parts, entities.Part{Name: p.Name, Value: p.Value})
	}
	return entities.Budget{
		ID:          m.ID,
		Number:      m.Number,
		QuoteDate:   m.QuoteDate,
		ClientID:    m.ClientID,
		VehicleID:   m.VehicleID,
		Odometer:    m.Odometer,
		Description: m.Description,
		ServiceIDs:  append([]string{}, m.ServiceIDs...),
		Parts:       parts,
		TotalValue:  m.TotalValue,
		Status:      entities.BudgetStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
