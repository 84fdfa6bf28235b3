package response

import "oficina_xpto/internal/domain/entities"

type ServiceResponse struct {
	ID        string  `json:"id"`
	Nome      string  `json:"nome"`
	Descricao string  `json:"descricao"`
	Preco     float64 `json:"preco"`
	Duracao   string  `json:"duracao"`
	Categoria string  `json:"categoria"`
}

func FromService(s entities.Service) ServiceResponse {
	return ServiceResponse{
		ID:        s.ID,
		Nome:      s.Name,
		Descricao: s.Description,
		Preco:     money(s.Price),
		Duracao:   s.Duration,
		Categoria: s.Category,
	}
}

func FromServices(ss []entities.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(ss))
	for _, s := range ss {
		out = append(out, FromService(s))
	}
	return out
}

type CompanyInfoResponse struct {
	ID       string `json:"id"`
	Nome     string `json:"nome"`
	Endereco string `json:"endereco"`
	Telefone string `json:"telefone"`
	Email    string `json:"email"`
	Cnpj     string `json:"cnpj"`
}

func FromCompanyInfo(c entities.CompanyInfo) CompanyInfoResponse {
	return CompanyInfoResponse{
		ID:       c.ID,
		Nome:     c.Name,
		Endereco: c.Address,
		Telefone: c.Phone,
		Email:    c.Email,
		Cnpj:     c.TaxID,
	}
}
