package request

import (
	"strings"

	"oficina_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// ClientRequest is the "cliente" payload.
type ClientRequest struct {
	Nome     string `json:"nome" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
	Telefone string `json:"telefone"`
	Endereco string `json:"endereco"`
	CpfCnpj  string `json:"cpfCnpj" binding:"required,cpfcnpj"`
}

func (r ClientRequest) ToEntity() entities.Client {
	return entities.Client{
		Name:    r.Nome,
		Email:   r.Email,
		Phone:   r.Telefone,
		Address: r.Endereco,
		TaxID:   r.CpfCnpj,
	}
}

// VehicleRequest is the "veículo" payload.
type VehicleRequest struct {
	Marca     string `json:"marca" binding:"required"`
	Modelo    string `json:"modelo" binding:"required"`
	Ano       int    `json:"ano" binding:"required"`
	Placa     string `json:"placa" binding:"required,placa"`
	ClienteID string `json:"clienteId" binding:"required"`
}

func (r VehicleRequest) ToEntity() entities.Vehicle {
	return entities.Vehicle{
		Make:     r.Marca,
		Model:    r.Modelo,
		Year:     r.Ano,
		Plate:    r.Placa,
		ClientID: strings.TrimSpace(r.ClienteID),
	}
}

// ServiceRecordRequest appends an entry to a vehicle's maintenance log. valor is optional.
type ServiceRecordRequest struct {
	Descricao string           `json:"descricao" binding:"required"`
	Valor     *decimal.Decimal `json:"valor"`
}

func (r ServiceRecordRequest) ToEntity() entities.ServiceRecord {
	return entities.ServiceRecord{Description: r.Descricao, Value: r.Valor}
}
