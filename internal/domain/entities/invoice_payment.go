package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the provider outcome of an invoice payment.
type PaymentStatus string

const (
	PaymentStatusPendente PaymentStatus = "pendente"
	PaymentStatusAprovado PaymentStatus = "aprovado"
	PaymentStatusNegado   PaymentStatus = "negado"
)

// PaymentStatusFromProvider maps Mercado Pago statuses onto the local ones.
func PaymentStatusFromProvider(providerStatus string) PaymentStatus {
	switch providerStatus {
	case "approved", "authorized":
		return PaymentStatusAprovado
	case "rejected", "cancelled", "refunded", "charged_back":
		return PaymentStatusNegado
	default:
		return PaymentStatusPendente
	}
}

// InvoicePayment is a settlement attempt for an invoice.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (invoice_id-index): invoice_id
//
// MPPayloadRaw keeps the provider response for traceability.
type InvoicePayment struct {
	ID           string
	InvoiceID    string
	Amount       decimal.Decimal
	Date         time.Time
	Status       PaymentStatus
	MPPayloadRaw json.RawMessage
	MPPayload    map[string]interface{}
}
