package handlers

import (
	"net/http"
	"strings"

	request "oficina_xpto/internal/adapter/http/dto/request"
	response "oficina_xpto/internal/adapter/http/dto/response"
	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"go.uber.org/multierr"
)

// InvoiceHandler serves /faturas, including batch generation and reconciliation.
type InvoiceHandler struct {
	usecase   usecase.IInvoiceUseCase
	reconcile usecase.IReconciliationUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase, reconcile usecase.IReconciliationUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc, reconcile: reconcile}
}

func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	invoices, err := h.usecase.ListInvoices(c.Request.Context())
	if err != nil {
		writeError(c, "[invoice][handler] list failed", err)
		return
	}
	c.JSON(http.StatusOK, response.FromInvoices(invoices))
}

// CreateInvoice bills one order and marks it "Faturada" in the same transaction.
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var payload request.CreateInvoiceRequest
	if !bindJSON(c, &payload) {
		return
	}
	invoice, err := h.usecase.CreateInvoice(c.Request.Context(), payload.OsID)
	if err != nil {
		writeError(c, "[invoice][handler] create failed", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromInvoice(invoice))
}

// GenerateInvoices always answers 200 with one result per order; failed orders carry
// the same error envelope a single create would have returned.
func (h *InvoiceHandler) GenerateInvoices(c *gin.Context) {
	var payload request.GenerateInvoicesRequest
	if !bindJSON(c, &payload) {
		return
	}
	results, err := h.usecase.GenerateInvoices(c.Request.Context(), payload.OsIDs)
	if err != nil {
		writeError(c, "[invoice][handler] generate failed", err)
		return
	}

	out := make([]response.InvoiceResultResponse, 0, len(results))
	for _, r := range results {
		item := response.InvoiceResultResponse{OsID: r.ServiceOrderID}
		if r.Err != nil {
			body := mapError(r.Err).ToHTTPError().Error
			item.Erro = &response.ErrorBody{Code: body.Code, Message: body.Message}
		} else {
			inv := response.FromInvoice(r.Invoice)
			item.Fatura = &inv
		}
		out = append(out, item)
	}
	c.JSON(http.StatusOK, out)
}

func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	doc, err := h.usecase.GetInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, "[invoice][handler] get failed", err)
		return
	}
	c.JSON(http.StatusOK, response.FromInvoiceDocument(doc))
}

func (h *InvoiceHandler) UpdateInvoiceStatus(c *gin.Context) {
	var payload request.StatusRequest
	if !bindJSON(c, &payload) {
		return
	}
	status, err := entities.ParseInvoiceStatus(strings.TrimSpace(payload.Status))
	if err != nil {
		writeError(c, "[invoice][handler] invalid status", err)
		return
	}
	invoice, err := h.usecase.UpdateInvoiceStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		writeError(c, "[invoice][handler] update status failed", err)
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

// Reconcile reports partial progress: per-order failures are listed in the body, and
// only a failure before any order was scanned is an error response.
func (h *InvoiceHandler) Reconcile(c *gin.Context) {
	report, err := h.reconcile.ReconcileInvoicedOrders(c.Request.Context())
	if err != nil && report.Scanned == 0 {
		writeError(c, "[reconcile][handler] run failed", err)
		return
	}
	errs := multierr.Errors(err)
	if len(errs) > 0 {
		log.Warn().Int("failures", len(errs)).Int("repaired", report.Repaired).Msg("[reconcile][handler] partial run")
	}
	c.JSON(http.StatusOK, response.FromReconciliation(report, errs))
}
