package request

import (
	"bytes"
	"encoding/json"
	"errors"
)

type CreateInvoiceRequest struct {
	OsID string `json:"osId" binding:"required"`
}

// GenerateInvoicesRequest invoices several completed orders, one transaction each.
type GenerateInvoicesRequest struct {
	OsIDs []string `json:"osIds" binding:"required,min=1"`
}

const mpPayloadEnvelopeField = "mp_payload"

var (
	errPaymentBodyNotJSON = errors.New("request body is not valid json")
	errEmptyMPPayload     = errors.New("mp_payload cannot be empty")
)

// MPPayloadFromBody extracts the Mercado Pago payload of a pay-invoice request. The body
// is either the payload itself or an envelope {"mp_payload": {...}}; an empty body is {}.
// The amount is never taken from here: the invoice total always wins.
func MPPayloadFromBody(raw []byte) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(trimmed) {
		return nil, errPaymentBodyNotJSON
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err == nil {
		if wrapped, ok := envelope[mpPayloadEnvelopeField]; ok {
			wrapped = bytes.TrimSpace(wrapped)
			if len(wrapped) == 0 || string(wrapped) == "null" {
				return nil, errEmptyMPPayload
			}
			return wrapped, nil
		}
	}
	return json.RawMessage(trimmed), nil
}
