package response

import (
	"time"

	"oficina_xpto/internal/domain/entities"
)

// ServiceOrderResponse uses null client/vehicle ids for orders whose party was deleted.
type ServiceOrderResponse struct {
	ID             string     `json:"id"`
	ClienteID      *string    `json:"clienteId"`
	VeiculoID      *string    `json:"veiculoId"`
	OrcamentoID    *string    `json:"orcamentoId"`
	Status         string     `json:"status"`
	Descricao      string     `json:"descricao"`
	Combustivel    string     `json:"combustivel"`
	Km             int64      `json:"km"`
	DataInicio     time.Time  `json:"dataInicio"`
	DataFim        *time.Time `json:"dataFim"`
	CustoPecas     float64    `json:"custoPecas"`
	CustoMaoDeObra float64    `json:"custoMaoDeObra"`
	ValorTotal     float64    `json:"valorTotal"`
	Servicos       []string   `json:"servicos"`
}

func FromServiceOrder(o entities.ServiceOrder) ServiceOrderResponse {
	services := make([]string, len(o.ServiceIDs))
	copy(services, o.ServiceIDs)
	return ServiceOrderResponse{
		ID:             o.ID,
		ClienteID:      nullable(o.ClientID),
		VeiculoID:      nullable(o.VehicleID),
		OrcamentoID:    nullable(o.BudgetID),
		Status:         o.Status.String(),
		Descricao:      o.Description,
		Combustivel:    o.FuelLevel,
		Km:             o.Odometer,
		DataInicio:     o.StartDate,
		DataFim:        o.EndDate,
		CustoPecas:     money(o.PartsCost),
		CustoMaoDeObra: money(o.LaborCost),
		ValorTotal:     money(o.TotalPrice),
		Servicos:       services,
	}
}

func FromServiceOrders(os []entities.ServiceOrder) []ServiceOrderResponse {
	out := make([]ServiceOrderResponse, 0, len(os))
	for _, o := range os {
		out = append(out, FromServiceOrder(o))
	}
	return out
}

type DashboardResponse struct {
	TotalClientes int64                  `json:"totalClientes"`
	TotalVeiculos int64                  `json:"totalVeiculos"`
	TotalOS       int64                  `json:"totalOS"`
	OSPorStatus   map[string]int64       `json:"osPorStatus"`
	OSRecentes    []ServiceOrderResponse `json:"osRecentes"`
}

func FromDashboard(d entities.DashboardSummary) DashboardResponse {
	byStatus := make(map[string]int64, len(d.OrdersByStatus))
	for s, n := range d.OrdersByStatus {
		byStatus[s.String()] = n
	}
	return DashboardResponse{
		TotalClientes: d.TotalClients,
		TotalVeiculos: d.TotalVehicles,
		TotalOS:       d.TotalOrders,
		OSPorStatus:   byStatus,
		OSRecentes:    FromServiceOrders(d.RecentOrders),
	}
}
