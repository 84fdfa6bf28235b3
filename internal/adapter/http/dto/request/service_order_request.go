package request

import (
	"oficina_xpto/internal/usecase"

	"github.com/shopspring/decimal"
)

// OpenOrderRequest opens an "OS". With orcamentoId set, client, vehicle, odometer,
// services and costs come from that approved budget.
type OpenOrderRequest struct {
	ClienteID   string   `json:"clienteId"`
	VeiculoID   string   `json:"veiculoId"`
	Km          int64    `json:"km" binding:"gte=0"`
	Combustivel string   `json:"combustivel"`
	Descricao   string   `json:"descricao"`
	Servicos    []string `json:"servicos"`
	OrcamentoID string   `json:"orcamentoId"`
}

func (r OpenOrderRequest) ToInput() usecase.OpenOrderInput {
	return usecase.OpenOrderInput{
		ClientID:     r.ClienteID,
		VehicleID:    r.VeiculoID,
		Odometer:     r.Km,
		FuelLevel:    r.Combustivel,
		Description:  r.Descricao,
		ServiceIDs:   r.Servicos,
		SeedBudgetID: r.OrcamentoID,
	}
}

// OrderCostsRequest overwrites both costs; an absent value counts as zero.
type OrderCostsRequest struct {
	CustoPecas     *decimal.Decimal `json:"custoPecas"`
	CustoMaoDeObra *decimal.Decimal `json:"custoMaoDeObra"`
}

func (r OrderCostsRequest) Values() (parts, labor decimal.Decimal) {
	parts, labor = decimal.Zero, decimal.Zero
	if r.CustoPecas != nil {
		parts = *r.CustoPecas
	}
	if r.CustoMaoDeObra != nil {
		labor = *r.CustoMaoDeObra
	}
	return parts, labor
}

// StatusRequest carries a status literal such as "Concluída".
type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}
