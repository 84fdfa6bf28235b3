package response

import (
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase"
)

type InvoiceResponse struct {
	ID          string    `json:"id"`
	OsID        string    `json:"osId"`
	DataEmissao time.Time `json:"dataEmissao"`
	ValorTotal  float64   `json:"valorTotal"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:          inv.ID,
		OsID:        inv.ServiceOrderID,
		DataEmissao: inv.IssueDate,
		ValorTotal:  money(inv.TotalValue),
		Status:      inv.Status.String(),
		CreatedAt:   inv.CreatedAt,
	}
}

func FromInvoices(invs []entities.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(invs))
	for _, inv := range invs {
		out = append(out, FromInvoice(inv))
	}
	return out
}

// InvoiceDocumentResponse is everything needed to print an invoice.
type InvoiceDocumentResponse struct {
	Fatura   InvoiceResponse      `json:"fatura"`
	OS       ServiceOrderResponse `json:"os"`
	Cliente  *ClientResponse      `json:"cliente"`
	Veiculo  *VehicleResponse     `json:"veiculo"`
	Servicos []ServiceResponse    `json:"servicos"`
	Empresa  CompanyInfoResponse  `json:"empresa"`
}

func FromInvoiceDocument(doc entities.InvoiceDocument) InvoiceDocumentResponse {
	res := InvoiceDocumentResponse{
		Fatura:   FromInvoice(doc.Invoice),
		OS:       FromServiceOrder(doc.Order),
		Servicos: FromServices(doc.Services),
		Empresa:  FromCompanyInfo(doc.Company),
	}
	if doc.Client != nil {
		c := FromClient(*doc.Client)
		res.Cliente = &c
	}
	if doc.Vehicle != nil {
		v := FromVehicle(*doc.Vehicle)
		res.Veiculo = &v
	}
	return res
}

// InvoiceResultResponse reports one order of a batch generation. Exactly one of Fatura
// and Erro is set.
type InvoiceResultResponse struct {
	OsID   string           `json:"osId"`
	Fatura *InvoiceResponse `json:"fatura,omitempty"`
	Erro   *ErrorBody       `json:"erro,omitempty"`
}

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ReconciliationResponse struct {
	Verificadas     int      `json:"verificadas"`
	Reparadas       int      `json:"reparadas"`
	OrdensReparadas []string `json:"ordensReparadas"`
	Erros           []string `json:"erros,omitempty"`
}

func FromReconciliation(r usecase.ReconciliationReport, errs []error) ReconciliationResponse {
	repaired := r.RepairedOrders
	if repaired == nil {
		repaired = []string{}
	}
	res := ReconciliationResponse{Verificadas: r.Scanned, Reparadas: r.Repaired, OrdensReparadas: repaired}
	for _, err := range errs {
		res.Erros = append(res.Erros, err.Error())
	}
	return res
}
