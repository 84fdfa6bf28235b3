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

// IClientUseCase manages the client side of the party store.
type IClientUseCase interface {
	CreateClient(ctx context.Context, c entities.Client) (entities.Client, error)
	UpdateClient(ctx context.Context, id string, c entities.Client) (entities.Client, error)
	GetClient(ctx context.Context, id string) (entities.Client, error)
	ListClients(ctx context.Context) ([]entities.Client, error)
	DeleteClient(ctx context.Context, id string) error
	TaxIDExists(ctx context.Context, taxID string) (bool, error)
}

type ClientUseCase struct {
	tx   interfaces.ITransactor
	repo interfaces.IClientRepository
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(tx interfaces.ITransactor, repo interfaces.IClientRepository) *ClientUseCase {
	return &ClientUseCase{tx: tx, repo: repo}
}

func (u *ClientUseCase) CreateClient(ctx context.Context, c entities.Client) (entities.Client, error) {
	c, err := normalizeClient(c)
	if err != nil {
		return entities.Client{}, err
	}
	if existing, err := u.repo.GetByTaxID(ctx, c.TaxID); err != nil {
		return entities.Client{}, err
	} else if existing.ID != "" {
		return entities.Client{}, ErrTaxIDTaken
	}

	c.ID = uuid.NewString()
	c.CreatedAt = time.Now().UTC()
	created, err := u.repo.Create(ctx, c)
	if err != nil {
		return entities.Client{}, err
	}
	log.Info().Str("client_id", created.ID).Msg("[client][usecase] created")
	return created, nil
}

func (u *ClientUseCase) UpdateClient(ctx context.Context, id string, c entities.Client) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidID
	}
	c, err := normalizeClient(c)
	if err != nil {
		return entities.Client{}, err
	}
	if existing, err := u.repo.GetByTaxID(ctx, c.TaxID); err != nil {
		return entities.Client{}, err
	} else if existing.ID != "" && existing.ID != id {
		return entities.Client{}, ErrTaxIDTaken
	}

	c.ID = id
	updated, err := u.repo.Update(ctx, c)
	if err != nil {
		return entities.Client{}, err
	}
	if updated.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return updated, nil
}

func (u *ClientUseCase) GetClient(ctx context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidID
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *ClientUseCase) ListClients(ctx context.Context) ([]entities.Client, error) {
	return u.repo.List(ctx)
}

// DeleteClient removes the client with its vehicles and budgets. Service orders and
// invoices survive with the client and vehicle references cleared.
func (u *ClientUseCase) DeleteClient(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}
	err := u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		deleted, err := u.repo.Delete(ctx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return ErrClientNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}
	log.Info().Str("client_id", id).Msg("[client][usecase] deleted")
	return nil
}

func (u *ClientUseCase) TaxIDExists(ctx context.Context, taxID string) (bool, error) {
	taxID = entities.NormalizeTaxID(taxID)
	if taxID == "" {
		return false, ErrInvalidTaxID
	}
	c, err := u.repo.GetByTaxID(ctx, taxID)
	if err != nil {
		return false, err
	}
	return c.ID != "", nil
}

func normalizeClient(c entities.Client) (entities.Client, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Address = strings.TrimSpace(c.Address)
	if c.Name == "" {
		return c, entities.Validationf("nome is required")
	}
	if !entities.IsValidTaxID(c.TaxID) {
		return c, ErrInvalidTaxID
	}
	c.TaxID = entities.NormalizeTaxID(c.TaxID)
	return c, nil
}
