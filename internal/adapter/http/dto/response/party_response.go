package response

import (
	"time"

	"oficina_xpto/internal/domain/entities"
)

type ClientResponse struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email"`
	Telefone  string    `json:"telefone"`
	Endereco  string    `json:"endereco"`
	CpfCnpj   string    `json:"cpfCnpj"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromClient(c entities.Client) ClientResponse {
	return ClientResponse{
		ID:        c.ID,
		Nome:      c.Name,
		Email:     c.Email,
		Telefone:  c.Phone,
		Endereco:  c.Address,
		CpfCnpj:   c.TaxID,
		CreatedAt: c.CreatedAt,
	}
}

func FromClients(cs []entities.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromClient(c))
	}
	return out
}

type VehicleResponse struct {
	ID        string `json:"id"`
	Marca     string `json:"marca"`
	Modelo    string `json:"modelo"`
	Ano       int    `json:"ano"`
	Placa     string `json:"placa"`
	ClienteID string `json:"clienteId"`
}

func FromVehicle(v entities.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:        v.ID,
		Marca:     v.Make,
		Modelo:    v.Model,
		Ano:       v.Year,
		Placa:     v.Plate,
		ClienteID: v.ClientID,
	}
}

func FromVehicles(vs []entities.Vehicle) []VehicleResponse {
	out := make([]VehicleResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromVehicle(v))
	}
	return out
}

type ServiceRecordResponse struct {
	ID        string    `json:"id"`
	VeiculoID string    `json:"veiculoId"`
	Descricao string    `json:"descricao"`
	Valor     *float64  `json:"valor"`
	Data      time.Time `json:"data"`
}

func FromServiceRecords(rs []entities.ServiceRecord) []ServiceRecordResponse {
	out := make([]ServiceRecordResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromServiceRecord(r))
	}
	return out
}

func FromServiceRecord(r entities.ServiceRecord) ServiceRecordResponse {
	return ServiceRecordResponse{
		ID:        r.ID,
		VeiculoID: r.VehicleID,
		Descricao: r.Description,
		Valor:     optionalMoney(r.Value),
		Data:      r.PerformedAt,
	}
}

// ExistsResponse answers the check-cpf-cnpj and check-plate lookups.
type ExistsResponse struct {
	Exists bool `json:"exists"`
}
