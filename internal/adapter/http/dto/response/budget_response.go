package response

import (
	"time"

	"oficina_xpto/internal/domain/entities"
)

type PartResponse struct {
	Nome  string  `json:"nome"`
	Valor float64 `json:"valor"`
}

type BudgetResponse struct {
	ID              string         `json:"id"`
	NumeroOrcamento int64          `json:"numeroOrcamento"`
	DataOrcamento   time.Time      `json:"dataOrcamento"`
	ClienteID       string         `json:"clienteId"`
	VeiculoID       string         `json:"veiculoId"`
	Km              int64          `json:"km"`
	Descricao       string         `json:"descricao"`
	Servicos        []string       `json:"servicos"`
	Pecas           []PartResponse `json:"pecas"`
	ValorOrcamento  float64        `json:"valorOrcamento"`
	Status          string         `json:"status"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

func FromBudget(b entities.Budget) BudgetResponse {
	services := make([]string, len(b.ServiceIDs))
	copy(services, b.ServiceIDs)
	parts := make([]PartResponse, 0, len(b.Parts))
	for _, p := range b.Parts {
		parts = append(parts, PartResponse{Nome: p.Name, Valor: money(p.Value)})
	}
	return BudgetResponse{
		ID:              b.ID,
		NumeroOrcamento: b.Number,
		DataOrcamento:   b.QuoteDate,
		ClienteID:       b.ClientID,
		VeiculoID:       b.VehicleID,
		Km:              b.Odometer,
		Descricao:       b.Description,
		Servicos:        services,
		Pecas:           parts,
		ValorOrcamento:  money(b.TotalValue),
		Status:          b.Status.String(),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func FromBudgets(bs []entities.Budget) []BudgetResponse {
	out := make([]BudgetResponse, 0, len(bs))
	for _, b := range bs {
		out = append(out, FromBudget(b))
	}
	return out
}
