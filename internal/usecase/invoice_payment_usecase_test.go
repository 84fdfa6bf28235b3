package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"oficina_xpto/internal/domain/entities"
	mock_interfaces "oficina_xpto/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func pendingInvoice(total string) entities.Invoice {
	return entities.Invoice{
		ID:             "inv-1",
		ServiceOrderID: "os-1",
		TotalValue:     decimal.RequireFromString(total),
		Status:         entities.InvoiceStatusPendente,
	}
}

// expectClaim expects one successful claim on inv-1 and its release with the same token.
func expectClaim(t *testing.T, invoices *mock_interfaces.MockIInvoiceRepository, settle bool) {
	t.Helper()
	var token string
	invoices.EXPECT().ClaimPayment(gomock.Any(), "inv-1", gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, tok string, now, staleBefore time.Time) (bool, error) {
			if tok == "" {
				t.Fatalf("claim token must be set")
			}
			if !staleBefore.Before(now) {
				t.Fatalf("stale cutoff must precede the claim time")
			}
			token = tok
			return true, nil
		},
	)
	invoices.EXPECT().ReleasePayment(gomock.Any(), "inv-1", gomock.Any(), settle).DoAndReturn(
		func(_ context.Context, _ string, tok string, _ bool) (bool, error) {
			if tok != token {
				t.Fatalf("release token %q does not match claim %q", tok, token)
			}
			return true, nil
		},
	)
}

func TestInvoicePaymentUseCase_PayInvoice_Validations(t *testing.T) {
	t.Run("empty invoice id", func(t *testing.T) {
		uc := NewInvoicePaymentUseCase(nil, nil, nil, PaymentOptions{})
		_, err := uc.PayInvoice(context.Background(), " ", json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvalidID) {
			t.Fatalf("expected ErrInvalidID, got %v", err)
		}
	})

	t.Run("empty payload", func(t *testing.T) {
		uc := NewInvoicePaymentUseCase(nil, nil, nil, PaymentOptions{})
		_, err := uc.PayInvoice(context.Background(), "inv-1", nil)
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("invalid json payload", func(t *testing.T) {
		uc := NewInvoicePaymentUseCase(nil, nil, nil, PaymentOptions{})
		_, err := uc.PayInvoice(context.Background(), "inv-1", json.RawMessage(`{`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewInvoicePaymentUseCase(nil, invoices, nil, PaymentOptions{})

		_, err := uc.PayInvoice(context.Background(), "inv-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected gateway not configured error, got %v", err)
		}
	})
}

func TestInvoicePaymentUseCase_PayInvoice_InvoiceChecks(t *testing.T) {
	payload := json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`)

	t.Run("invoice repo returns error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInvoicePaymentUseCase(nil, invoices, gateway, PaymentOptions{})

		invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{}, errors.New("db"))

		_, err := uc.PayInvoice(context.Background(), "inv-1", payload)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("invoice not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInvoicePaymentUseCase(nil, invoices, gateway, PaymentOptions{})

		invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{}, nil)

		_, err := uc.PayInvoice(context.Background(), "inv-1", payload)
		if !errors.Is(err, ErrInvoiceNotFound) || !errors.Is(err, entities.ErrNotFound) {
			t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
		}
	})

	t.Run("cancelled invoice is not payable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInvoicePaymentUseCase(nil, invoices, gateway, PaymentOptions{})

		inv := pendingInvoice("10")
		inv.Status = entities.InvoiceStatusCancelada
		invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(inv, nil)

		_, err := uc.PayInvoice(context.Background(), "inv-1", payload)
		if !errors.Is(err, ErrInvoiceNotPayable) || !errors.Is(err, entities.ErrConflict) {
			t.Fatalf("expected ErrInvoiceNotPayable, got %v", err)
		}
	})
}

func TestInvoicePaymentUseCase_PayInvoice_PayloadValidation(t *testing.T) {
	t.Run("missing payment_method_id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInvoicePaymentUseCase(nil, invoices, gateway, PaymentOptions{})

		invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(pendingInvoice("10"), nil)

		_, err := uc.PayInvoice(context.Background(), "inv-1", json.RawMessage(`{"payer":{"email":"x@test.com"}}`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("missing payer outside sandbox", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInvoicePaymentUseCase(nil, invoices, gateway, PaymentOptions{AccessToken: "APP-123"})

		invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(pendingInvoice("10"), nil)

		_, err := uc.PayInvoice(context.Background(), "inv-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("non-object payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInvoicePaymentUseCase(nil, invoices, gateway, PaymentOptions{})

		invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(pendingInvoice("10"), nil)

		_, err := uc.PayInvoice(context.Background(), "inv-1", json.RawMessage(`[]`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})
}

func TestInvoicePaymentUseCase_PayInvoice_GatewayErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{name: "customer not found", err: errors.New(`{"code":2002}`), want: ErrPaymentGatewayCustomerNotFound},
		{name: "invalid users", err: errors.New(`invalid users involved`), want: ErrPaymentGatewayInvalidUsers},
		{name: "unauthorized", err: errors.New(`{"error":"unauthorized"}`), want: ErrPaymentGatewayUnauthorized},
		{name: "bad request", err: errors.New(`{"status":400}`), want: ErrPaymentGatewayBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := NewInvoicePaymentUseCase(nil, invoices, gateway, PaymentOptions{})

			invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(pendingInvoice("10"), nil)
			expectClaim(t, invoices, false)
			gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, tc.err)

			_, err := uc.PayInvoice(context.Background(), "inv-1", json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("unknown gateway error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInvoicePaymentUseCase(nil, invoices, gateway, PaymentOptions{})

		invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(pendingInvoice("10"), nil)
		expectClaim(t, invoices, false)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New("boom"))

		_, err := uc.PayInvoice(context.Background(), "inv-1", json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
		if err == nil || err.Error() != "boom" {
			t.Fatalf("expected boom, got %v", err)
		}
	})
}

func TestInvoicePaymentUseCase_PayInvoice_SuccessAndStatuses(t *testing.T) {
	cases := []struct {
		name           string
		providerStatus string
		want           entities.PaymentStatus
		providerResp   json.RawMessage
		settles        bool
	}{
		{name: "approved", providerStatus: "approved", want: entities.PaymentStatusAprovado, providerResp: json.RawMessage(`{"id":123}`), settles: true},
		{name: "rejected", providerStatus: "rejected", want: entities.PaymentStatusNegado, providerResp: json.RawMessage(`{"id":123}`)},
		{name: "pending default", providerStatus: "in_process", want: entities.PaymentStatusPendente, providerResp: json.RawMessage(`{"id":123}`)},
		{name: "invalid provider response json", providerStatus: "approved", want: entities.PaymentStatusAprovado, providerResp: json.RawMessage(`{`), settles: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIInvoicePaymentRepository(ctrl)
			invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := NewInvoicePaymentUseCase(repo, invoices, gateway, PaymentOptions{
				AccessToken:     "TEST-token",
				TestPayerUserID: "123",
				TestPayerEmail:  "sandbox@test.com",
			})

			invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(pendingInvoice("77.20"), nil)
			expectClaim(t, invoices, tc.settles)

			gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
					var body map[string]any
					if err := json.Unmarshal(payload, &body); err != nil {
						t.Fatalf("payload should be valid json: %v", err)
					}
					if body["external_reference"] != "inv-1" {
						t.Fatalf("external_reference not set")
					}
					if body["description"] != "Fatura inv-1" {
						t.Fatalf("description not set")
					}
					if body["transaction_amount"] != float64(77.2) {
						t.Fatalf("transaction_amount should come from invoice, got %v", body["transaction_amount"])
					}
					payer := body["payer"].(map[string]any)
					if payer["email"] != "sandbox@test.com" {
						t.Fatalf("expected sandbox payer mapping, got %v", payer)
					}
					return "pay-1", tc.providerStatus, tc.providerResp, nil
				},
			)

			repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.InvoicePayment{})).DoAndReturn(
				func(_ context.Context, p entities.InvoicePayment) (entities.InvoicePayment, error) {
					if p.ID != "pay-1" || p.InvoiceID != "inv-1" || p.Status != tc.want {
						t.Fatalf("unexpected payment: %+v", p)
					}
					if !p.Amount.Equal(decimal.RequireFromString("77.2")) {
						t.Fatalf("unexpected amount: %s", p.Amount)
					}
					if p.Date.IsZero() {
						t.Fatalf("date must be set")
					}
					return p, nil
				},
			)

			res, err := uc.PayInvoice(context.Background(), "inv-1", json.RawMessage(`{"payment_method_id":"pix","payer":{"id":"123"}}`))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != tc.want {
				t.Fatalf("expected status %s, got %s", tc.want, res.Status)
			}
		})
	}

	t.Run("mock mode records an approved payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoicePaymentRepository(ctrl)
		invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewInvoicePaymentUseCase(repo, invoices, nil, PaymentOptions{Mock: true})

		invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(pendingInvoice("150.00"), nil)
		expectClaim(t, invoices, true)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.InvoicePayment) (entities.InvoicePayment, error) {
				if p.ID == "" || p.Status != entities.PaymentStatusAprovado {
					t.Fatalf("unexpected payment: %+v", p)
				}
				if p.MPPayload["external_reference"] != "inv-1" {
					t.Fatalf("expected provider payload to echo the invoice reference: %+v", p.MPPayload)
				}
				return p, nil
			},
		)

		if _, err := uc.PayInvoice(context.Background(), "inv-1", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("repository create error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoicePaymentRepository(ctrl)
		invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInvoicePaymentUseCase(repo, invoices, gateway, PaymentOptions{})

		invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(pendingInvoice("11"), nil)
		expectClaim(t, invoices, false)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("pay-1", "approved", json.RawMessage(`{"id":123}`), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.InvoicePayment{}, errors.New("db-create"))

		_, err := uc.PayInvoice(context.Background(), "inv-1", json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
		if err == nil || err.Error() != "db-create" {
			t.Fatalf("expected db-create error, got %v", err)
		}
	})
}

func TestInvoicePaymentUseCase_PayInvoice_SingleAttempt(t *testing.T) {
	payload := json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`)

	t.Run("second attempt is refused while the first one runs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInvoicePaymentUseCase(nil, invoices, gateway, PaymentOptions{})

		invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(pendingInvoice("10"), nil).Times(2)
		invoices.EXPECT().ClaimPayment(gomock.Any(), "inv-1", gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := uc.PayInvoice(context.Background(), "inv-1", payload)
		if !errors.Is(err, ErrInvoicePaymentRunning) || !errors.Is(err, entities.ErrConflict) {
			t.Fatalf("expected ErrInvoicePaymentRunning, got %v", err)
		}
	})

	t.Run("attempt after settlement is refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInvoicePaymentUseCase(nil, invoices, gateway, PaymentOptions{})

		settled := pendingInvoice("10")
		settled.Status = entities.InvoiceStatusConcluida
		gomock.InOrder(
			invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(pendingInvoice("10"), nil),
			invoices.EXPECT().ClaimPayment(gomock.Any(), "inv-1", gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil),
			invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(settled, nil),
		)

		_, err := uc.PayInvoice(context.Background(), "inv-1", payload)
		if !errors.Is(err, ErrInvoiceNotPayable) {
			t.Fatalf("expected ErrInvoiceNotPayable, got %v", err)
		}
	})

	t.Run("claim error is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInvoicePaymentUseCase(nil, invoices, gateway, PaymentOptions{})

		invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(pendingInvoice("10"), nil)
		invoices.EXPECT().ClaimPayment(gomock.Any(), "inv-1", gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("db-claim"))

		_, err := uc.PayInvoice(context.Background(), "inv-1", payload)
		if err == nil || err.Error() != "db-claim" {
			t.Fatalf("expected db-claim error, got %v", err)
		}
	})

	t.Run("client external_reference is replaced by the invoice id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoicePaymentRepository(ctrl)
		invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInvoicePaymentUseCase(repo, invoices, gateway, PaymentOptions{})

		invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(pendingInvoice("10"), nil)
		expectClaim(t, invoices, false)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var body map[string]any
				if err := json.Unmarshal(payload, &body); err != nil {
					t.Fatalf("payload should be valid json: %v", err)
				}
				if body["external_reference"] != "inv-1" {
					t.Fatalf("expected external_reference inv-1, got %v", body["external_reference"])
				}
				return "pay-1", "in_process", json.RawMessage(`{"id":1}`), nil
			},
		)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.InvoicePayment) (entities.InvoicePayment, error) { return p, nil },
		)

		_, err := uc.PayInvoice(context.Background(), "inv-1",
			json.RawMessage(`{"payment_method_id":"pix","external_reference":"other","payer":{"email":"x@test.com"}}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestInvoicePaymentUseCase_Getters(t *testing.T) {
	t.Run("GetByID invalid", func(t *testing.T) {
		uc := NewInvoicePaymentUseCase(nil, nil, nil, PaymentOptions{})
		_, err := uc.GetByID(context.Background(), "")
		if !errors.Is(err, ErrInvalidID) {
			t.Fatalf("expected ErrInvalidID, got %v", err)
		}
	})

	t.Run("GetByID not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoicePaymentRepository(ctrl)
		uc := NewInvoicePaymentUseCase(repo, nil, nil, PaymentOptions{})
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.InvoicePayment{}, nil)

		_, err := uc.GetByID(context.Background(), "id-1")
		if !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("GetByID success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoicePaymentRepository(ctrl)
		uc := NewInvoicePaymentUseCase(repo, nil, nil, PaymentOptions{})
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.InvoicePayment{ID: "id-1"}, nil)

		res, err := uc.GetByID(context.Background(), " id-1 ")
		if err != nil || res.ID != "id-1" {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})

	t.Run("ListByInvoiceID success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoicePaymentRepository(ctrl)
		uc := NewInvoicePaymentUseCase(repo, nil, nil, PaymentOptions{})
		expected := []entities.InvoicePayment{{ID: "p1", Date: time.Now()}}
		repo.EXPECT().ListByInvoiceID(gomock.Any(), "inv-1").Return(expected, nil)

		res, err := uc.ListByInvoiceID(context.Background(), " inv-1 ")
		if err != nil || len(res) != 1 || res[0].ID != "p1" {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})
}

func TestInvoicePaymentUseCase_PayerHelpers(t *testing.T) {
	t.Run("hasPayer and hasPayerID", func(t *testing.T) {
		if hasPayer(map[string]any{"payer": "x"}) {
			t.Fatalf("expected false")
		}
		if !hasPayer(map[string]any{"payer": map[string]any{"id": 10}}) {
			t.Fatalf("expected true with id")
		}
		if hasPayerID(map[string]any{"id": " "}) {
			t.Fatalf("expected false for blank id")
		}
	})

	t.Run("ensurePayerDefaults", func(t *testing.T) {
		uc := NewInvoicePaymentUseCase(nil, nil, nil, PaymentOptions{})
		m := map[string]any{}
		uc.ensurePayerDefaults(m)
		if m["payer"].(map[string]any)["type"] != "customer" {
			t.Fatalf("expected type customer")
		}

		uc = NewInvoicePaymentUseCase(nil, nil, nil, PaymentOptions{TestPayerEmail: "custom@test.com"})
		m2 := map[string]any{"payer": map[string]any{}}
		uc.ensurePayerDefaults(m2)
		if m2["payer"].(map[string]any)["email"] != "custom@test.com" {
			t.Fatalf("expected configured email fallback")
		}

		uc = NewInvoicePaymentUseCase(nil, nil, nil, PaymentOptions{AccessToken: "TEST-123"})
		m3 := map[string]any{"payer": map[string]any{}}
		uc.ensurePayerDefaults(m3)
		if m3["payer"].(map[string]any)["email"] != "test_user_br@testuser.com" {
			t.Fatalf("expected sandbox fallback email")
		}
	})

	t.Run("normalizeSandboxPayer ignores production tokens", func(t *testing.T) {
		uc := NewInvoicePaymentUseCase(nil, nil, nil, PaymentOptions{AccessToken: "APP-123", TestPayerUserID: "123", TestPayerEmail: "s@test.com"})
		m := map[string]any{"payer": map[string]any{"id": "123"}}
		uc.normalizeSandboxPayer(m)
		if _, ok := m["payer"].(map[string]any)["email"]; ok {
			t.Fatalf("should not map for non TEST token")
		}
	})
}
