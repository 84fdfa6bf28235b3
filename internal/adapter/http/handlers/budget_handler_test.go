package handlers

import (
	"net/http"
	"testing"
	"time"

	"oficina_xpto/internal/adapter/http/handlers/mocks"
	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestBudgetHandler_CreateBudget(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := newTestRouter(t)
		r.POST("/v1/orcamentos", h.CreateBudget)

		w := doJSON(r, http.MethodPost, "/v1/orcamentos", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid quote date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := newTestRouter(t)
		r.POST("/v1/orcamentos", h.CreateBudget)

		w := doJSON(r, http.MethodPost, "/v1/orcamentos", `{"clienteId":"c-1","veiculoId":"v-1","dataOrcamento":"02/05/2024"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success returns computed total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := newTestRouter(t)
		r.POST("/v1/orcamentos", h.CreateBudget)

		now := time.Now().UTC()
		uc.EXPECT().CreateBudget(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, in usecase.BudgetInput) (entities.Budget, error) {
			if in.ClientID != "c-1" || len(in.Parts) != 1 {
				t.Fatalf("unexpected input %+v", in)
			}
			return entities.Budget{
				ID: "b-1", Number: 1000, QuoteDate: now, ClientID: in.ClientID, VehicleID: in.VehicleID,
				ServiceIDs: in.ServiceIDs, Parts: in.Parts, TotalValue: decimal.RequireFromString("150.00"),
				Status: entities.BudgetStatusPendente,
			}, nil
		})

		w := doJSON(r, http.MethodPost, "/v1/orcamentos",
			`{"clienteId":"c-1","veiculoId":"v-1","servicos":["S0001"],"pecas":[{"nome":"Filtro","valor":50}],"valorOrcamento":1}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		decodeBody(t, w, &body)
		if body["numeroOrcamento"] != float64(1000) || body["valorOrcamento"] != float64(150) || body["status"] != "Pendente" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestBudgetHandler_Transitions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIBudgetUseCase(ctrl)
	h := NewBudgetHandler(uc)

	r := newTestRouter(t)
	r.POST("/v1/orcamentos/:id/approve", h.ApproveBudget)
	r.POST("/v1/orcamentos/:id/reject", h.RejectBudget)

	uc.EXPECT().ApproveBudget(gomock.Any(), "b-1").Return(entities.Budget{ID: "b-1", Status: entities.BudgetStatusAprovado}, nil)
	uc.EXPECT().ApproveBudget(gomock.Any(), "b-2").Return(entities.Budget{}, usecase.ErrBudgetAlreadyApproved)
	uc.EXPECT().RejectBudget(gomock.Any(), "b-3").Return(entities.Budget{}, usecase.ErrBudgetNotFound)

	if w := doJSON(r, http.MethodPost, "/v1/orcamentos/b-1/approve", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	w := doJSON(r, http.MethodPost, "/v1/orcamentos/b-2/approve", "")
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
	if code := errorCode(t, w); code != "BUDGET_ALREADY_APPROVED" {
		t.Fatalf("unexpected code %s", code)
	}
	if w := doJSON(r, http.MethodPost, "/v1/orcamentos/b-3/reject", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
