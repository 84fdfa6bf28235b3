package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// paymentClaimTTL bounds how long a crashed payment attempt keeps the invoice locked.
const paymentClaimTTL = 5 * time.Minute

// PaymentOptions configures how invoice payments reach Mercado Pago.
//
// Mock skips the provider and records an approved payment. The test payer settings only
// apply to sandbox tokens (prefixed "TEST-").
type PaymentOptions struct {
	Mock            bool
	AccessToken     string
	TestPayerEmail  string
	TestPayerUserID string
}

func (o PaymentOptions) sandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(o.AccessToken), "TEST-")
}

// IInvoicePaymentUseCase charges an invoice and settles it.
//
// Requested behavior:
//   - Charge the frozen invoice total, store the provider payload, and move the invoice
//     "Pendente" -> "Concluída" when the provider approves.
//   - Only one attempt per invoice reaches the provider at a time; a concurrent
//     attempt fails with ErrInvoicePaymentRunning.

type IInvoicePaymentUseCase interface {
	PayInvoice(ctx context.Context, invoiceID string, mpPayload json.RawMessage) (entities.InvoicePayment, error)
	GetByID(ctx context.Context, id string) (entities.InvoicePayment, error)
	ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.InvoicePayment, error)
}

type InvoicePaymentUseCase struct {
	repo     interfaces.IInvoicePaymentRepository
	invoices interfaces.IInvoiceRepository
	gateway  interfaces.IPaymentGateway
	opts     PaymentOptions
}

var _ IInvoicePaymentUseCase = (*InvoicePaymentUseCase)(nil)

func NewInvoicePaymentUseCase(repo interfaces.IInvoicePaymentRepository, invoices interfaces.IInvoiceRepository, gateway interfaces.IPaymentGateway, opts PaymentOptions) *InvoicePaymentUseCase {
	return &InvoicePaymentUseCase{repo: repo, invoices: invoices, gateway: gateway, opts: opts}
}

func (u *InvoicePaymentUseCase) PayInvoice(ctx context.Context, invoiceID string, mpPayload json.RawMessage) (entities.InvoicePayment, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	logger := log.With().Str("invoice_id", invoiceID).Logger()
	logger.Info().Int("payload_len", len(mpPayload)).Msg("[payment][usecase] pay start")
	if invoiceID == "" {
		return entities.InvoicePayment{}, ErrInvalidID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !u.opts.Mock {
			logger.Info().Msg("[payment][usecase] invalid payload")
			return entities.InvoicePayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil && !u.opts.Mock {
		logger.Error().Msg("[payment][usecase] gateway not configured")
		return entities.InvoicePayment{}, ErrPaymentGatewayNotConfigured
	}

	inv, err := u.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return entities.InvoicePayment{}, err
	}
	if inv.ID == "" {
		return entities.InvoicePayment{}, ErrInvoiceNotFound
	}
	if inv.Status != entities.InvoiceStatusPendente {
		logger.Info().Str("status", inv.Status.String()).Msg("[payment][usecase] invoice not payable")
		return entities.InvoicePayment{}, ErrInvoiceNotPayable
	}
	amount := inv.TotalValue.InexactFloat64()

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		return entities.InvoicePayment{}, ErrInvalidMPPayload
	}
	if !u.opts.Mock {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			logger.Info().Msg("[payment][usecase] missing payment_method_id")
			return entities.InvoicePayment{}, ErrInvalidMPPayload
		}
		u.normalizeSandboxPayer(reqMap)
		u.ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			logger.Info().Msg("[payment][usecase] missing/invalid payer")
			return entities.InvoicePayment{}, ErrInvalidMPPayload
		}
	}
	// The provider deduplicates on the invoice id, so retries cannot open a second charge.
	reqMap["external_reference"] = invoiceID
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Fatura %s", invoiceID)
	}
	// The invoice total is the only source of truth for the amount.
	reqMap["transaction_amount"] = amount
	if mpPayload, err = json.Marshal(reqMap); err != nil {
		return entities.InvoicePayment{}, err
	}

	claim, err := u.claim(ctx, invoiceID)
	if err != nil {
		logger.Info().Err(err).Msg("[payment][usecase] invoice claim refused")
		return entities.InvoicePayment{}, err
	}
	created, err := u.charge(ctx, logger, inv, reqMap, mpPayload)
	if err != nil {
		u.release(ctx, logger, invoiceID, claim)
		return entities.InvoicePayment{}, err
	}

	if created.Status != entities.PaymentStatusAprovado {
		u.release(ctx, logger, invoiceID, claim)
	} else {
		ok, err := u.invoices.ReleasePayment(context.WithoutCancel(ctx), invoiceID, claim, true)
		if err != nil {
			return created, err
		}
		if !ok {
			logger.Error().Str("payment_id", created.ID).Msg("[payment][usecase] claim expired before settlement")
		}
	}
	logger.Info().Str("payment_id", created.ID).Str("status", string(created.Status)).Msg("[payment][usecase] pay done")
	return created, nil
}

// claim takes the invoice for one payment attempt. A refused claim is classified by
// re-reading the invoice.
func (u *InvoicePaymentUseCase) claim(ctx context.Context, invoiceID string) (string, error) {
	token := uuid.NewString()
	now := time.Now().UTC()
	ok, err := u.invoices.ClaimPayment(ctx, invoiceID, token, now, now.Add(-paymentClaimTTL))
	if err != nil {
		return "", err
	}
	if ok {
		return token, nil
	}
	inv, err := u.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return "", err
	}
	switch {
	case inv.ID == "":
		return "", ErrInvoiceNotFound
	case inv.Status != entities.InvoiceStatusPendente:
		return "", ErrInvoiceNotPayable
	default:
		return "", ErrInvoicePaymentRunning
	}
}

func (u *InvoicePaymentUseCase) release(ctx context.Context, logger zerolog.Logger, invoiceID, claim string) {
	if _, err := u.invoices.ReleasePayment(context.WithoutCancel(ctx), invoiceID, claim, false); err != nil {
		logger.Error().Err(err).Msg("[payment][usecase] invoice claim release failed")
	}
}

// charge calls the provider (or the mock) and records the payment in the ledger.
func (u *InvoicePaymentUseCase) charge(ctx context.Context, logger zerolog.Logger, inv entities.Invoice, reqMap map[string]any, mpPayload json.RawMessage) (entities.InvoicePayment, error) {
	var (
		providerPaymentID string
		providerStatus    string
		providerResp      json.RawMessage
		err               error
	)
	if u.opts.Mock {
		logger.Info().Msg("[payment][usecase] mock mode enabled; skipping external payment gateway")
		providerPaymentID, providerStatus, providerResp, err = mockProviderResponse(reqMap)
		if err != nil {
			return entities.InvoicePayment{}, err
		}
	} else {
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, mpPayload)
		if err != nil {
			logger.Error().Err(err).Msg("[payment][usecase] payment gateway failed")
			return entities.InvoicePayment{}, classifyGatewayError(err)
		}
	}
	logger.Info().Str("provider_payment_id", providerPaymentID).Str("provider_status", providerStatus).
		Msg("[payment][usecase] payment gateway success")

	var parsed map[string]any
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		logger.Warn().Err(err).Msg("[payment][usecase] provider response unmarshal failed")
	}

	created, err := u.repo.Create(ctx, entities.InvoicePayment{
		ID:           providerPaymentID,
		InvoiceID:    inv.ID,
		Amount:       inv.TotalValue,
		Date:         time.Now().UTC(),
		Status:       entities.PaymentStatusFromProvider(providerStatus),
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	})
	if err != nil {
		logger.Error().Err(err).Str("payment_id", providerPaymentID).Msg("[payment][usecase] payment repository create failed")
		return entities.InvoicePayment{}, err
	}
	return created, nil
}

func mockProviderResponse(req map[string]any) (string, string, json.RawMessage, error) {
	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)
	resp := make(map[string]any, len(req)+5)
	for k, v := range req {
		resp[k] = v
	}
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = now
	resp["date_approved"] = now
	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	return id, "approved", b, nil
}

func (u *InvoicePaymentUseCase) GetByID(ctx context.Context, id string) (entities.InvoicePayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.InvoicePayment{}, ErrInvalidID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.InvoicePayment{}, err
	}
	if p.ID == "" {
		return entities.InvoicePayment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *InvoicePaymentUseCase) ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.InvoicePayment, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return nil, ErrInvalidID
	}
	return u.repo.ListByInvoiceID(ctx, invoiceID)
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func (u *InvoicePaymentUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// In sandbox, either payer.id or payer.email may be used.
	// Fill email only when both are missing.
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if email := strings.TrimSpace(u.opts.TestPayerEmail); email != "" {
		payer["email"] = email
	} else if u.opts.sandbox() {
		payer["email"] = "test_user_br@testuser.com"
	}
}

// normalizeSandboxPayer swaps the configured sandbox user id for its email, which is the
// only form Mercado Pago accepts for test users.
func (u *InvoicePaymentUseCase) normalizeSandboxPayer(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok || !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if !u.opts.sandbox() {
		return
	}
	userID := strings.TrimSpace(u.opts.TestPayerUserID)
	email := strings.TrimSpace(u.opts.TestPayerEmail)
	if userID == "" || email == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != userID {
		return
	}
	payer["email"] = email
	delete(payer, "id")
	log.Debug().Msg("[payment][usecase] mapped sandbox payer user_id to payer.email")
}

func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	}
	return err
}
