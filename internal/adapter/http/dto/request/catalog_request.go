package request

import (
	"oficina_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// ServiceRequest is a catalog entry. The code (S0001…) is assigned by the server.
type ServiceRequest struct {
	Nome      string          `json:"nome" binding:"required"`
	Descricao string          `json:"descricao"`
	Preco     decimal.Decimal `json:"preco"`
	Duracao   string          `json:"duracao"`
	Categoria string          `json:"categoria"`
}

func (r ServiceRequest) ToEntity() entities.Service {
	return entities.Service{
		Name:        r.Nome,
		Description: r.Descricao,
		Price:       r.Preco,
		Duration:    r.Duracao,
		Category:    r.Categoria,
	}
}

type CompanyInfoRequest struct {
	Nome     string `json:"nome" binding:"required"`
	Endereco string `json:"endereco"`
	Telefone string `json:"telefone"`
	Email    string `json:"email" binding:"omitempty,email"`
	Cnpj     string `json:"cnpj"`
}

func (r CompanyInfoRequest) ToEntity() entities.CompanyInfo {
	return entities.CompanyInfo{
		Name:    r.Nome,
		Address: r.Endereco,
		Phone:   r.Telefone,
		Email:   r.Email,
		TaxID:   r.Cnpj,
	}
}
