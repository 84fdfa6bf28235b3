package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/mercadopago/sdk-go/pkg/payment"
)

type fakeCreator struct {
	got  payment.Request
	resp *payment.Response
	err  error
}

func (f *fakeCreator) Create(_ context.Context, req payment.Request) (*payment.Response, error) {
	f.got = req
	return f.resp, f.err
}

func TestNewMercadoPagoGateway_RequiresToken(t *testing.T) {
	if _, err := NewMercadoPagoGateway(""); !errors.Is(err, ErrMissingAccessToken) {
		t.Fatalf("expected ErrMissingAccessToken, got %v", err)
	}
}

func TestCreatePayment_NotConfigured(t *testing.T) {
	var g *MercadoPagoGateway
	if _, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`)); !errors.Is(err, ErrGatewayNotConfigured) {
		t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
	}
}

func TestCreatePayment_ForwardsRequest(t *testing.T) {
	fake := &fakeCreator{resp: &payment.Response{ID: 987, Status: "approved"}}
	g := &MercadoPagoGateway{client: fake}

	id, status, raw, err := g.CreatePayment(context.Background(),
		json.RawMessage(`{"transaction_amount":150,"payment_method_id":"pix","description":"Fatura inv-1"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "987" || status != "approved" {
		t.Fatalf("unexpected id/status %s/%s", id, status)
	}
	if fake.got.TransactionAmount != 150 || fake.got.PaymentMethodID != "pix" {
		t.Fatalf("request not forwarded: %+v", fake.got)
	}
	if !json.Valid(raw) {
		t.Fatalf("expected json provider response, got %s", raw)
	}
}

func TestCreatePayment_InvalidPayload(t *testing.T) {
	g := &MercadoPagoGateway{client: &fakeCreator{}}
	if _, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`not json`)); err == nil {
		t.Fatal("expected unmarshal error")
	}
}

func TestCreatePayment_ProviderError(t *testing.T) {
	g := &MercadoPagoGateway{client: &fakeCreator{err: errors.New(`{"status":401,"error":"unauthorized"}`)}}
	if _, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`)); err == nil {
		t.Fatal("expected provider error")
	}
}
