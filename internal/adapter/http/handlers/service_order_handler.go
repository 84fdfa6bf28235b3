package handlers

import (
	"net/http"
	"strings"

	request "oficina_xpto/internal/adapter/http/dto/request"
	response "oficina_xpto/internal/adapter/http/dto/response"
	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ServiceOrderHandler serves /os.
type ServiceOrderHandler struct {
	usecase usecase.IServiceOrderUseCase
}

func NewServiceOrderHandler(uc usecase.IServiceOrderUseCase) *ServiceOrderHandler {
	return &ServiceOrderHandler{usecase: uc}
}

// ListOrders accepts an optional ?status= filter with a status literal.
func (h *ServiceOrderHandler) ListOrders(c *gin.Context) {
	var status entities.OrderStatus
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		parsed, err := entities.ParseOrderStatus(raw)
		if err != nil {
			writeError(c, "[order][handler] invalid status filter", err)
			return
		}
		status = parsed
	}
	orders, err := h.usecase.ListOrders(c.Request.Context(), status)
	if err != nil {
		writeError(c, "[order][handler] list failed", err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrders(orders))
}

func (h *ServiceOrderHandler) OpenOrder(c *gin.Context) {
	var payload request.OpenOrderRequest
	if !bindJSON(c, &payload) {
		return
	}
	order, err := h.usecase.OpenOrder(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, "[order][handler] open failed", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromServiceOrder(order))
}

func (h *ServiceOrderHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, "[order][handler] get failed", err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

func (h *ServiceOrderHandler) UpdateCosts(c *gin.Context) {
	var payload request.OrderCostsRequest
	if !bindJSON(c, &payload) {
		return
	}
	parts, labor := payload.Values()
	order, err := h.usecase.UpdateCosts(c.Request.Context(), c.Param("id"), parts, labor)
	if err != nil {
		writeError(c, "[order][handler] update costs failed", err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

func (h *ServiceOrderHandler) UpdateStatus(c *gin.Context) {
	var payload request.StatusRequest
	if !bindJSON(c, &payload) {
		return
	}
	status, err := entities.ParseOrderStatus(strings.TrimSpace(payload.Status))
	if err != nil {
		writeError(c, "[order][handler] invalid status", err)
		return
	}
	order, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		writeError(c, "[order][handler] update status failed", err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}
