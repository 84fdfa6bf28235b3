package handlers

import (
	"errors"
	"net/http"

	"oficina_xpto/internal/adapter/http/validators"
	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase"
	"oficina_xpto/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// mapError converts an engine error into the HTTP envelope by its kind.
func mapError(err error) *pkg.AppError {
	code, msg := "", ""
	var de *entities.DomainError
	if errors.As(err, &de) {
		code, msg = de.Code, de.Message
	}
	var te *entities.InvalidTransitionError
	if errors.As(err, &te) {
		code, msg = "INVALID_STATUS_TRANSITION", te.Error()
	}

	switch {
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainError("PAYMENT_GATEWAY_NOT_CONFIGURED", "Payment gateway not configured", err, http.StatusServiceUnavailable)
	case errors.Is(err, entities.ErrPersistence):
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	case errors.Is(err, entities.ErrValidation):
		return pkg.NewDomainError(orDefault(code, "INVALID_REQUEST"), msg, err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrAuth):
		return pkg.NewDomainError(orDefault(code, "UNAUTHORIZED"), msg, err, http.StatusUnauthorized)
	case errors.Is(err, entities.ErrNotFound):
		return pkg.NewDomainError(orDefault(code, "NOT_FOUND"), msg, err, http.StatusNotFound)
	case errors.Is(err, entities.ErrConflict):
		return pkg.NewDomainError(orDefault(code, "CONFLICT"), msg, err, http.StatusConflict)
	case errors.Is(err, entities.ErrPreconditionFailed):
		return pkg.NewDomainError(orDefault(code, "PRECONDITION_FAILED"), msg, err, http.StatusPreconditionFailed)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// writeError logs the failure and writes the mapped envelope. Server errors log the cause.
func writeError(c *gin.Context, msg string, err error) {
	appErr := mapError(err)
	evt := log.Info()
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		evt = log.Error()
	}
	evt.Err(err).Str("path", c.FullPath()).Int("status", appErr.HTTPStatus).Msg(msg)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// bindJSON binds the body into dst and answers 400 on failure.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		appErr := validators.BindingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return false
	}
	return true
}
