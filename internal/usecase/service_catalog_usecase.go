package usecase

import (
	"context"
	"strings"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

// IServiceCatalogUseCase manages catalog services. New services get shop codes S0001, S0002, ...
type IServiceCatalogUseCase interface {
	CreateService(ctx context.Context, s entities.Service) (entities.Service, error)
	UpdateService(ctx context.Context, id string, s entities.Service) (entities.Service, error)
	GetService(ctx context.Context, id string) (entities.Service, error)
	ListServices(ctx context.Context) ([]entities.Service, error)
	DeleteService(ctx context.Context, id string) error
}

type ServiceCatalogUseCase struct {
	tx   interfaces.ITransactor
	seq  interfaces.ISequence
	repo interfaces.IServiceRepository
}

var _ IServiceCatalogUseCase = (*ServiceCatalogUseCase)(nil)

func NewServiceCatalogUseCase(tx interfaces.ITransactor, seq interfaces.ISequence, repo interfaces.IServiceRepository) *ServiceCatalogUseCase {
	return &ServiceCatalogUseCase{tx: tx, seq: seq, repo: repo}
}

func (u *ServiceCatalogUseCase) CreateService(ctx context.Context, s entities.Service) (entities.Service, error) {
	s, err := normalizeService(s)
	if err != nil {
		return entities.Service{}, err
	}

	var created entities.Service
	err = u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		n, err := u.seq.Next(ctx, entities.ServiceCodeSequence, 0)
		if err != nil {
			return err
		}
		s.ID = entities.FormatServiceCode(n)
		created, err = u.repo.Create(ctx, s)
		return err
	})
	if err != nil {
		return entities.Service{}, err
	}
	log.Info().Str("service_id", created.ID).Msg("[catalog][usecase] service created")
	return created, nil
}

// UpdateService edits the catalog entry only; totals already stored on budgets and
// orders keep the old price.
func (u *ServiceCatalogUseCase) UpdateService(ctx context.Context, id string, s entities.Service) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidID
	}
	s, err := normalizeService(s)
	if err != nil {
		return entities.Service{}, err
	}
	s.ID = id
	updated, err := u.repo.Update(ctx, s)
	if err != nil {
		return entities.Service{}, err
	}
	if updated.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	return updated, nil
}

func (u *ServiceCatalogUseCase) GetService(ctx context.Context, id string) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidID
	}
	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	if s.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	return s, nil
}

func (u *ServiceCatalogUseCase) ListServices(ctx context.Context) ([]entities.Service, error) {
	return u.repo.List(ctx)
}

// DeleteService refuses to remove a service that any budget or order still lists.
func (u *ServiceCatalogUseCase) DeleteService(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}
	err := u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		refs, err := u.repo.CountReferences(ctx, id)
		if err != nil {
			return err
		}
		if refs > 0 {
			return ErrServiceInUse
		}
		deleted, err := u.repo.Delete(ctx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return ErrServiceNotFound
		}
		return nil
	})
	if err != nil {
		log.Info().Err(err).Str("service_id", id).Msg("[catalog][usecase] delete refused")
		return err
	}
	log.Info().Str("service_id", id).Msg("[catalog][usecase] service deleted")
	return nil
}

func normalizeService(s entities.Service) (entities.Service, error) {
	s.Name = strings.TrimSpace(s.Name)
	s.Description = strings.TrimSpace(s.Description)
	s.Duration = strings.TrimSpace(s.Duration)
	s.Category = strings.TrimSpace(s.Category)
	if s.Name == "" {
		return s, entities.Validationf("nome is required")
	}
	if s.Price.IsNegative() {
		return s, ErrInvalidPrice
	}
	s.Price = entities.RoundMoney(s.Price)
	return s, nil
}
