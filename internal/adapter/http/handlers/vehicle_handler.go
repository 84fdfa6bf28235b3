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

// VehicleHandler serves /veiculos and the per-vehicle service history.
type VehicleHandler struct {
	usecase usecase.IVehicleUseCase
}

func NewVehicleHandler(uc usecase.IVehicleUseCase) *VehicleHandler {
	return &VehicleHandler{usecase: uc}
}

// ListVehicles accepts an optional ?clienteId= filter.
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	vehicles, err := h.usecase.ListVehicles(c.Request.Context(), c.Query("clienteId"))
	if err != nil {
		writeError(c, "[vehicle][handler] list failed", err)
		return
	}
	c.JSON(http.StatusOK, response.FromVehicles(vehicles))
}

func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	var payload request.VehicleRequest
	if !bindJSON(c, &payload) {
		return
	}
	created, err := h.usecase.CreateVehicle(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, "[vehicle][handler] create failed", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromVehicle(created))
}

func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	vehicle, err := h.usecase.GetVehicle(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, "[vehicle][handler] get failed", err)
		return
	}
	c.JSON(http.StatusOK, response.FromVehicle(vehicle))
}

func (h *VehicleHandler) UpdateVehicle(c *gin.Context) {
	var payload request.VehicleRequest
	if !bindJSON(c, &payload) {
		return
	}
	updated, err := h.usecase.UpdateVehicle(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		writeError(c, "[vehicle][handler] update failed", err)
		return
	}
	c.JSON(http.StatusOK, response.FromVehicle(updated))
}

func (h *VehicleHandler) DeleteVehicle(c *gin.Context) {
	if err := h.usecase.DeleteVehicle(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, "[vehicle][handler] delete failed", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *VehicleHandler) CheckPlate(c *gin.Context) {
	plate := strings.TrimSpace(c.Query("placa"))
	if plate == "" {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "placa query parameter is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	exists, err := h.usecase.PlateExists(c.Request.Context(), plate)
	if err != nil {
		writeError(c, "[vehicle][handler] check plate failed", err)
		return
	}
	c.JSON(http.StatusOK, response.ExistsResponse{Exists: exists})
}

func (h *VehicleHandler) AddServiceRecord(c *gin.Context) {
	var payload request.ServiceRecordRequest
	if !bindJSON(c, &payload) {
		return
	}
	record, err := h.usecase.AddServiceRecord(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		writeError(c, "[vehicle][handler] add service record failed", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromServiceRecord(record))
}

func (h *VehicleHandler) ListServiceRecords(c *gin.Context) {
	records, err := h.usecase.ListServiceRecords(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, "[vehicle][handler] list service records failed", err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceRecords(records))
}
