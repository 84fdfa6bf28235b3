package repository

import (
	"context"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type ClientGormRepository struct {
	gormBase
}

var _ interfaces.IClientRepository = (*ClientGormRepository)(nil)

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{gormBase{db: db}}
}

func (r *ClientGormRepository) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	m := toClientModel(c)
	if err := r.conn(ctx).Create(&m).Error; err != nil {
		return entities.Client{}, translateError("create client", err)
	}
	return fromClientModel(m), nil
}

func (r *ClientGormRepository) Update(ctx context.Context, c entities.Client) (entities.Client, error) {
	res := r.conn(ctx).Model(&clientModel{}).Where("id = ?", c.ID).Updates(map[string]any{
		"name":     c.Name,
		"email":    c.Email,
		"phone":    c.Phone,
		"address":  c.Address,
		"cpf_cnpj": c.TaxID,
	})
	if res.Error != nil {
		return entities.Client{}, translateError("update client", res.Error)
	}
	if res.RowsAffected == 0 {
		return entities.Client{}, nil
	}
	return r.GetByID(ctx, c.ID)
}

func (r *ClientGormRepository) GetByID(ctx context.Context, id string) (entities.Client, error) {
	return r.getWhere(ctx, "id = ?", id)
}

func (r *ClientGormRepository) GetByTaxID(ctx context.Context, taxID string) (entities.Client, error) {
	return r.getWhere(ctx, "cpf_cnpj = ?", taxID)
}

func (r *ClientGormRepository) getWhere(ctx context.Context, query string, arg any) (entities.Client, error) {
	var m clientModel
	found, err := takeOne(r.conn(ctx).Where(query, arg), &m)
	if err != nil {
		return entities.Client{}, translateError("get client", err)
	}
	if !found {
		return entities.Client{}, nil
	}
	return fromClientModel(m), nil
}

func (r *ClientGormRepository) List(ctx context.Context) ([]entities.Client, error) {
	var rows []clientModel
	if err := r.conn(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, translateError("list clients", err)
	}
	out := make([]entities.Client, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromClientModel(m))
	}
	return out, nil
}

// Delete removes the client, its vehicles with their service records and every budget that
// points at them. Service orders keep their rows with client and vehicle cleared.
func (r *ClientGormRepository) Delete(ctx context.Context, id string) (bool, error) {
	deleted := false
	err := r.conn(ctx).Transaction(func(tx *gorm.DB) error {
		var vehicleIDs []string
		if err := tx.Model(&vehicleModel{}).Where("client_id = ?", id).Pluck("id", &vehicleIDs).Error; err != nil {
			return err
		}
		if err := detachVehicles(tx, vehicleIDs); err != nil {
			return err
		}
		if err := tx.Where("client_id = ?", id).Delete(&budgetModel{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&serviceOrderModel{}).Where("client_id = ?", id).Update("client_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("client_id = ?", id).Delete(&vehicleModel{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&clientModel{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, translateError("delete client", err)
	}
	return deleted, nil
}

func (r *ClientGormRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.conn(ctx).Model(&clientModel{}).Count(&n).Error; err != nil {
		return 0, translateError("count clients", err)
	}
	return n, nil
}

func toClientModel(c entities.Client) clientModel {
	return clientModel{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		TaxID:     c.TaxID,
		CreatedAt: c.CreatedAt,
	}
}

func fromClientModel(m clientModel) entities.Client {
	return entities.Client{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Address:   m.Address,
		TaxID:     m.TaxID,
		CreatedAt: m.CreatedAt,
	}
}
