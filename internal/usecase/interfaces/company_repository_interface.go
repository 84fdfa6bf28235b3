package interfaces

import (
	"context"
	"oficina_xpto/internal/domain/entities"
)

//go:generate mockgen -source=company_repository_interface.go -destination=mocks/company_repository_interface_mock.go -package=mock_interfaces

// ICompanyRepository persists the single company profile row.
//
// Save is an upsert on the fixed profile key, so concurrent first saves still leave one row.
type ICompanyRepository interface {
	Get(ctx context.Context) (entities.CompanyInfo, error)
	Save(ctx context.Context, c entities.CompanyInfo) (entities.CompanyInfo, error)
}
