package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus tracks the payment state of an invoice (fatura).
type InvoiceStatus string

const (
	InvoiceStatusPendente  InvoiceStatus = "Pendente"
	InvoiceStatusConcluida InvoiceStatus = "Concluída"
	InvoiceStatusCancelada InvoiceStatus = "Cancelada"
)

var invoiceTransitions = map[InvoiceStatus][]InvoiceStatus{
	InvoiceStatusPendente: {InvoiceStatusConcluida, InvoiceStatusCancelada},
}

func (s InvoiceStatus) String() string { return string(s) }

func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusPendente, InvoiceStatusConcluida, InvoiceStatusCancelada:
		return true
	}
	return false
}

func ParseInvoiceStatus(value string) (InvoiceStatus, error) {
	s := InvoiceStatus(value)
	if !s.IsValid() {
		return "", Validationf("invalid invoice status %q", value)
	}
	return s, nil
}

func (s InvoiceStatus) TransitionTo(next InvoiceStatus) (InvoiceStatus, error) {
	if !next.IsValid() {
		return s, Validationf("invalid invoice status %q", next)
	}
	for _, allowed := range invoiceTransitions[s] {
		if allowed == next {
			return next, nil
		}
	}
	return s, &InvalidTransitionError{Entity: "invoice", From: string(s), To: string(next)}
}

// Invoice bills exactly one service order. TotalValue is frozen at creation.
type Invoice struct {
	ID             string
	ServiceOrderID string
	IssueDate      time.Time
	TotalValue     decimal.Decimal
	Status         InvoiceStatus
	CreatedAt      time.Time
}

// InvoiceDocument is the read-side join used to render an invoice.
type InvoiceDocument struct {
	Invoice  Invoice
	Order    ServiceOrder
	Client   *Client
	Vehicle  *Vehicle
	Services []Service
	Company  CompanyInfo
}

// InvoiceResult is the per-order outcome of a batch invoice generation.
type InvoiceResult struct {
	ServiceOrderID string
	Invoice        Invoice
	Err            error
}
