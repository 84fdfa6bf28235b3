package handlers

import (
	"net/http"
	"time"

	request "oficina_xpto/internal/adapter/http/dto/request"
	response "oficina_xpto/internal/adapter/http/dto/response"
	"oficina_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

// TokenCookie carries the access token for browser clients.
const TokenCookie = "token"

type AuthHandler struct {
	usecase usecase.IAuthUseCase
	now     func() time.Time
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc, now: time.Now}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var payload request.CredentialsRequest
	if !bindJSON(c, &payload) {
		return
	}
	user, err := h.usecase.Register(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		writeError(c, "[auth][handler] register failed", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromUser(user))
}

// Login returns the token in the body and also sets it as an HttpOnly cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.CredentialsRequest
	if !bindJSON(c, &payload) {
		return
	}
	session, err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		writeError(c, "[auth][handler] login failed", err)
		return
	}

	maxAge := int(session.ExpiresAt.Sub(h.now()).Seconds())
	if maxAge < 0 {
		maxAge = 0
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(TokenCookie, session.Token, maxAge, "/", "", c.Request.TLS != nil, true)
	c.JSON(http.StatusOK, response.FromSession(session))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(TokenCookie, "", -1, "/", "", c.Request.TLS != nil, true)
	c.Status(http.StatusNoContent)
}
