package request

import (
	"strings"
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase"

	"github.com/shopspring/decimal"
)

var quoteDateLayouts = []string{time.RFC3339, "2006-01-02"}

type PartRequest struct {
	Nome  string          `json:"nome" binding:"required"`
	Valor decimal.Decimal `json:"valor"`
}

// BudgetRequest is the "orçamento" payload used by create and update.
//
// valorOrcamento is accepted for compatibility with older clients; the server always
// recomputes the total from the catalog and the parts.
type BudgetRequest struct {
	DataOrcamento  string           `json:"dataOrcamento"`
	ClienteID      string           `json:"clienteId" binding:"required"`
	VeiculoID      string           `json:"veiculoId" binding:"required"`
	Km             int64            `json:"km" binding:"gte=0"`
	Descricao      string           `json:"descricao"`
	Servicos       []string         `json:"servicos"`
	Pecas          []PartRequest    `json:"pecas" binding:"dive"`
	ValorOrcamento *decimal.Decimal `json:"valorOrcamento"`
}

func (r BudgetRequest) ToInput() (usecase.BudgetInput, error) {
	quoteDate, err := parseQuoteDate(r.DataOrcamento)
	if err != nil {
		return usecase.BudgetInput{}, err
	}
	parts := make([]entities.Part, 0, len(r.Pecas))
	for _, p := range r.Pecas {
		parts = append(parts, entities.Part{Name: p.Nome, Value: p.Valor})
	}
	return usecase.BudgetInput{
		ClientID:    r.ClienteID,
		VehicleID:   r.VeiculoID,
		QuoteDate:   quoteDate,
		Odometer:    r.Km,
		Description: r.Descricao,
		ServiceIDs:  r.Servicos,
		Parts:       parts,
		TotalValue:  r.ValorOrcamento,
	}, nil
}

func parseQuoteDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	for _, layout := range quoteDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, entities.Validationf("invalid dataOrcamento %q", raw)
}
