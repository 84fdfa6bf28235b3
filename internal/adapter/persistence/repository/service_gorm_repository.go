package repository

import (
	"context"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ServiceGormRepository struct {
	gormBase
}

var _ interfaces.IServiceRepository = (*ServiceGormRepository)(nil)

func NewServiceGormRepository(db *gorm.DB) *ServiceGormRepository {
	return &ServiceGormRepository{gormBase{db: db}}
}

func (r *ServiceGormRepository) Create(ctx context.Context, s entities.Service) (entities.Service, error) {
	m := toServiceModel(s)
	if err := r.conn(ctx).Create(&m).Error; err != nil {
		return entities.Service{}, translateError("create service", err)
	}
	return fromServiceModel(m), nil
}

func (r *ServiceGormRepository) Update(ctx context.Context, s entities.Service) (entities.Service, error) {
	res := r.conn(ctx).Model(&serviceModel{}).Where("id = ?", s.ID).Updates(map[string]any{
		"name":        s.Name,
		"description": s.Description,
		"price":       s.Price,
		"duration":    s.Duration,
		"category":    s.Category,
	})
	if res.Error != nil {
		return entities.Service{}, translateError("update service", res.Error)
	}
	if res.RowsAffected == 0 {
		return entities.Service{}, nil
	}
	return r.GetByID(ctx, s.ID)
}

func (r *ServiceGormRepository) GetByID(ctx context.Context, id string) (entities.Service, error) {
	var m serviceModel
	found, err := takeOne(r.conn(ctx).Where("id = ?", id), &m)
	if err != nil {
		return entities.Service{}, translateError("get service", err)
	}
	if !found {
		return entities.Service{}, nil
	}
	return fromServiceModel(m), nil
}

func (r *ServiceGormRepository) List(ctx context.Context) ([]entities.Service, error) {
	return r.find(r.conn(ctx).Order("id ASC"))
}

func (r *ServiceGormRepository) ListByIDs(ctx context.Context, ids []string) ([]entities.Service, error) {
	if len(ids) == 0 {
		return []entities.Service{}, nil
	}
	return r.find(r.conn(ctx).Where("id IN ?", ids).Order("id ASC"))
}

func (r *ServiceGormRepository) find(q *gorm.DB) ([]entities.Service, error) {
	var rows []serviceModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, translateError("list services", err)
	}
	out := make([]entities.Service, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromServiceModel(m))
	}
	return out, nil
}

// Delete removes the catalog entry only; callers check CountReferences first.
func (r *ServiceGormRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.conn(ctx).Where("id = ?", id).Delete(&serviceModel{})
	if res.Error != nil {
		return false, translateError("delete service", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func toServiceModel(s entities.Service) serviceModel {
	return serviceModel{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
		Duration:    s.Duration,
		Category:    s.Category,
	}
}

func fromServiceModel(m serviceModel) entities.Service {
	return entities.Service{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Duration:    m.Duration,
		Category:    m.Category,
	}
}

func (r *ServiceGormRepository) CountReferences(ctx context.Context, id string) (int64, error) {
	var total int64
	for _, model := range []any{&budgetModel{}, &serviceOrderModel{}} {
		var n int64
		err := r.conn(ctx).Model(model).Where(datatypes.JSONArrayQuery("service_ids").Contains(id)).Count(&n).Error
		if err != nil {
			return 0, translateError("count service references", err)
		}
		total += n
	}
	return total, nil
}
