package repository

import (
	"context"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type UserGormRepository struct {
	gormBase
}

var _ interfaces.IUserRepository = (*UserGormRepository)(nil)

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{gormBase{db: db}}
}

func (r *UserGormRepository) Create(ctx context.Context, u entities.User) (entities.User, error) {
	m := userModel{ID: u.ID, Email: u.Email, PasswordHash: u.PasswordHash, CreatedAt: u.CreatedAt}
	if err := r.conn(ctx).Create(&m).Error; err != nil {
		return entities.User{}, translateError("create user", err)
	}
	return u, nil
}

func (r *UserGormRepository) GetByEmail(ctx context.Context, email string) (entities.User, error) {
	var m userModel
	found, err := takeOne(r.conn(ctx).Where("email = ?", email), &m)
	if err != nil {
		return entities.User{}, translateError("get user", err)
	}
	if !found {
		return entities.User{}, nil
	}
	return entities.User{ID: m.ID, Email: m.Email, PasswordHash: m.PasswordHash, CreatedAt: m.CreatedAt}, nil
}
