package handlers

import (
	"net/http"

	request "oficina_xpto/internal/adapter/http/dto/request"
	response "oficina_xpto/internal/adapter/http/dto/response"
	"oficina_xpto/internal/usecase"
	"oficina_xpto/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// InvoicePaymentHandler settles invoices through the payment gateway.
type InvoicePaymentHandler struct {
	usecase usecase.IInvoicePaymentUseCase
}

func NewInvoicePaymentHandler(uc usecase.IInvoicePaymentUseCase) *InvoicePaymentHandler {
	return &InvoicePaymentHandler{usecase: uc}
}

// PayInvoice charges the invoice total. A malformed body reaches the use case as an
// empty payload, which mock mode accepts and the live gateway rejects.
func (h *InvoicePaymentHandler) PayInvoice(c *gin.Context) {
	invoiceID := c.Param("id")
	logger := log.With().Str("invoice_id", invoiceID).Logger()
	logger.Info().Msg("[payment][handler] pay start")

	raw, err := c.GetRawData()
	if err != nil {
		logger.Info().Err(err).Msg("[payment][handler] body read failed")
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	mpPayload, err := request.MPPayloadFromBody(raw)
	if err != nil {
		logger.Info().Err(err).Msg("[payment][handler] invalid payload")
		mpPayload = nil
	}

	created, err := h.usecase.PayInvoice(c.Request.Context(), invoiceID, mpPayload)
	if err != nil {
		writeError(c, "[payment][handler] pay failed", err)
		return
	}
	logger.Info().Str("payment_id", created.ID).Str("status", string(created.Status)).Msg("[payment][handler] pay success")
	c.JSON(http.StatusOK, response.FromInvoicePayment(created))
}

func (h *InvoicePaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.usecase.ListByInvoiceID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, "[payment][handler] list failed", err)
		return
	}
	c.JSON(http.StatusOK, response.FromInvoicePayments(payments))
}

// GetPayment answers 404 for a payment that belongs to another invoice.
func (h *InvoicePaymentHandler) GetPayment(c *gin.Context) {
	payment, err := h.usecase.GetByID(c.Request.Context(), c.Param("paymentId"))
	if err != nil {
		writeError(c, "[payment][handler] get failed", err)
		return
	}
	if payment.InvoiceID != c.Param("id") {
		writeError(c, "[payment][handler] payment of another invoice", usecase.ErrPaymentNotFound)
		return
	}
	c.JSON(http.StatusOK, response.FromInvoicePayment(payment))
}
