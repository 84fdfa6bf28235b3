package handlers

import (
	"net/http"

	request "oficina_xpto/internal/adapter/http/dto/request"
	response "oficina_xpto/internal/adapter/http/dto/response"
	"oficina_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the service catalog and the company profile.
type CatalogHandler struct {
	services usecase.IServiceCatalogUseCase
	company  usecase.ICompanyUseCase
}

func NewCatalogHandler(services usecase.IServiceCatalogUseCase, company usecase.ICompanyUseCase) *CatalogHandler {
	return &CatalogHandler{services: services, company: company}
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.services.ListServices(c.Request.Context())
	if err != nil {
		writeError(c, "[catalog][handler] list failed", err)
		return
	}
	c.JSON(http.StatusOK, response.FromServices(services))
}

// CreateService ignores any id in the body; codes are allocated as S0001, S0002, ...
func (h *CatalogHandler) CreateService(c *gin.Context) {
	var payload request.ServiceRequest
	if !bindJSON(c, &payload) {
		return
	}
	created, err := h.services.CreateService(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, "[catalog][handler] create failed", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromService(created))
}

func (h *CatalogHandler) GetService(c *gin.Context) {
	svc, err := h.services.GetService(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, "[catalog][handler] get failed", err)
		return
	}
	c.JSON(http.StatusOK, response.FromService(svc))
}

func (h *CatalogHandler) UpdateService(c *gin.Context) {
	var payload request.ServiceRequest
	if !bindJSON(c, &payload) {
		return
	}
	updated, err := h.services.UpdateService(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		writeError(c, "[catalog][handler] update failed", err)
		return
	}
	c.JSON(http.StatusOK, response.FromService(updated))
}

func (h *CatalogHandler) DeleteService(c *gin.Context) {
	if err := h.services.DeleteService(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, "[catalog][handler] delete failed", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) GetCompanyInfo(c *gin.Context) {
	info, err := h.company.GetCompanyInfo(c.Request.Context())
	if err != nil {
		writeError(c, "[company][handler] get failed", err)
		return
	}
	c.JSON(http.StatusOK, response.FromCompanyInfo(info))
}

func (h *CatalogHandler) SaveCompanyInfo(c *gin.Context) {
	var payload request.CompanyInfoRequest
	if !bindJSON(c, &payload) {
		return
	}
	saved, err := h.company.SaveCompanyInfo(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, "[company][handler] save failed", err)
		return
	}
	c.JSON(http.StatusOK, response.FromCompanyInfo(saved))
}
