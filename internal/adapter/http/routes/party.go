package routes

import (
	"oficina_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathClients  = "/clientes"
	PathVehicles = "/veiculos"
	PathServices = "/servicos"
	PathCompany  = "/company-info"
)

func addPartyRoutes(rg *gin.RouterGroup, clients *handlers.ClientHandler, vehicles *handlers.VehicleHandler) {
	c := rg.Group(PathClients)
	{
		c.GET("", clients.ListClients)
		c.POST("", clients.CreateClient)
		c.GET("/check-cpf-cnpj", clients.CheckTaxID)
		c.GET("/:id", clients.GetClient)
		c.PUT("/:id", clients.UpdateClient)
		c.DELETE("/:id", clients.DeleteClient)
	}

	v := rg.Group(PathVehicles)
	{
		v.GET("", vehicles.ListVehicles)
		v.POST("", vehicles.CreateVehicle)
		v.GET("/check-plate", vehicles.CheckPlate)
		v.GET("/:id", vehicles.GetVehicle)
		v.PUT("/:id", vehicles.UpdateVehicle)
		v.DELETE("/:id", vehicles.DeleteVehicle)
		v.GET("/:id/servicos-realizados", vehicles.ListServiceRecords)
		v.POST("/:id/servicos-realizados", vehicles.AddServiceRecord)
	}
}

func addCatalogRoutes(rg *gin.RouterGroup, catalog *handlers.CatalogHandler) {
	s := rg.Group(PathServices)
	{
		s.GET("", catalog.ListServices)
		s.POST("", catalog.CreateService)
		s.GET("/:id", catalog.GetService)
		s.PUT("/:id", catalog.UpdateService)
		s.DELETE("/:id", catalog.DeleteService)
	}

	rg.GET(PathCompany, catalog.GetCompanyInfo)
	rg.POST(PathCompany, catalog.SaveCompanyInfo)
}
