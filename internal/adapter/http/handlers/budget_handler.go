package handlers

import (
	"context"
	"net/http"

	request "oficina_xpto/internal/adapter/http/dto/request"
	response "oficina_xpto/internal/adapter/http/dto/response"
	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

// BudgetHandler serves /orcamentos. Totals in the request body are informative only;
// the engine prices every budget from the catalog and the parts list.
type BudgetHandler struct {
	usecase usecase.IBudgetUseCase
}

func NewBudgetHandler(uc usecase.IBudgetUseCase) *BudgetHandler {
	return &BudgetHandler{usecase: uc}
}

func (h *BudgetHandler) ListBudgets(c *gin.Context) {
	budgets, err := h.usecase.ListBudgets(c.Request.Context())
	if err != nil {
		writeError(c, "[budget][handler] list failed", err)
		return
	}
	c.JSON(http.StatusOK, response.FromBudgets(budgets))
}

func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	var payload request.BudgetRequest
	if !bindJSON(c, &payload) {
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		writeError(c, "[budget][handler] invalid payload", err)
		return
	}
	created, err := h.usecase.CreateBudget(c.Request.Context(), in)
	if err != nil {
		writeError(c, "[budget][handler] create failed", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromBudget(created))
}

func (h *BudgetHandler) GetBudget(c *gin.Context) {
	budget, err := h.usecase.GetBudget(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, "[budget][handler] get failed", err)
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(budget))
}

func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
	var payload request.BudgetRequest
	if !bindJSON(c, &payload) {
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		writeError(c, "[budget][handler] invalid payload", err)
		return
	}
	updated, err := h.usecase.UpdateBudget(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeError(c, "[budget][handler] update failed", err)
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(updated))
}

func (h *BudgetHandler) ApproveBudget(c *gin.Context) {
	h.transition(c, h.usecase.ApproveBudget)
}

func (h *BudgetHandler) RejectBudget(c *gin.Context) {
	h.transition(c, h.usecase.RejectBudget)
}

func (h *BudgetHandler) transition(c *gin.Context, apply func(ctx context.Context, id string) (entities.Budget, error)) {
	budget, err := apply(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, "[budget][handler] transition failed", err)
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(budget))
}
