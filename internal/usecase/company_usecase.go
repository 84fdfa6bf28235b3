package usecase

import (
	"context"
	"strings"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

// ICompanyUseCase reads and writes the single company profile.
type ICompanyUseCase interface {
	GetCompanyInfo(ctx context.Context) (entities.CompanyInfo, error)
	SaveCompanyInfo(ctx context.Context, c entities.CompanyInfo) (entities.CompanyInfo, error)
}

type CompanyUseCase struct {
	repo interfaces.ICompanyRepository
}

var _ ICompanyUseCase = (*CompanyUseCase)(nil)

func NewCompanyUseCase(repo interfaces.ICompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

func (u *CompanyUseCase) GetCompanyInfo(ctx context.Context) (entities.CompanyInfo, error) {
	c, err := u.repo.Get(ctx)
	if err != nil {
		return entities.CompanyInfo{}, err
	}
	if c.ID == "" {
		return entities.CompanyInfo{}, ErrCompanyNotFound
	}
	return c, nil
}

// SaveCompanyInfo inserts the first profile or replaces the existing one.
func (u *CompanyUseCase) SaveCompanyInfo(ctx context.Context, c entities.CompanyInfo) (entities.CompanyInfo, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.Address = strings.TrimSpace(c.Address)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Email = strings.TrimSpace(c.Email)
	if c.Name == "" {
		return entities.CompanyInfo{}, entities.Validationf("nome is required")
	}
	if c.TaxID != "" {
		c.TaxID = entities.NormalizeTaxID(c.TaxID)
	}
	c.ID = entities.CompanyProfileID

	saved, err := u.repo.Save(ctx, c)
	if err != nil {
		return entities.CompanyInfo{}, err
	}
	log.Info().Str("company_id", saved.ID).Msg("[company][usecase] profile saved")
	return saved, nil
}
