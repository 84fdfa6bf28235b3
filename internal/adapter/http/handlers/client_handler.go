package handlers

import (
	"net/http"
	"strings"

	request "oficina_xpto/internal/adapter/http/dto/request"
	response "oficina_xpto/internal/adapter/http/dto/response"
	"oficina_xpto/internal/usecase"
	"oficina_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// ClientHandler serves the /clientes resource.
type ClientHandler struct {
	usecase usecase.IClientUseCase
}

func NewClientHandler(uc usecase.IClientUseCase) *ClientHandler {
	return &ClientHandler{usecase: uc}
}

func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.usecase.ListClients(c.Request.Context())
	if err != nil {
		writeError(c, "[client][handler] list failed", err)
		return
	}
	c.JSON(http.StatusOK, response.FromClients(clients))
}

func (h *ClientHandler) CreateClient(c *gin.Context) {
	var payload request.ClientRequest
	if !bindJSON(c, &payload) {
		return
	}
	created, err := h.usecase.CreateClient(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, "[client][handler] create failed", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromClient(created))
}

func (h *ClientHandler) GetClient(c *gin.Context) {
	client, err := h.usecase.GetClient(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, "[client][handler] get failed", err)
		return
	}
	c.JSON(http.StatusOK, response.FromClient(client))
}

func (h *ClientHandler) UpdateClient(c *gin.Context) {
	var payload request.ClientRequest
	if !bindJSON(c, &payload) {
		return
	}
	updated, err := h.usecase.UpdateClient(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		writeError(c, "[client][handler] update failed", err)
		return
	}
	c.JSON(http.StatusOK, response.FromClient(updated))
}

// DeleteClient also removes the client's budgets and vehicles and detaches its orders.
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	if err := h.usecase.DeleteClient(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, "[client][handler] delete failed", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ClientHandler) CheckTaxID(c *gin.Context) {
	taxID := strings.TrimSpace(c.Query("cpfCnpj"))
	if taxID == "" {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "cpfCnpj query parameter is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	exists, err := h.usecase.TaxIDExists(c.Request.Context(), taxID)
	if err != nil {
		writeError(c, "[client][handler] check cpf/cnpj failed", err)
		return
	}
	c.JSON(http.StatusOK, response.ExistsResponse{Exists: exists})
}
