package routes

import (
	"oficina_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBudgets  = "/orcamentos"
	PathOrders   = "/os"
	PathInvoices = "/faturas"
)

// addWorkflowRoutes wires the budget -> service order -> invoice pipeline.
func addWorkflowRoutes(rg *gin.RouterGroup, h Handlers) {
	budgets := rg.Group(PathBudgets)
	{
		budgets.GET("", h.Budgets.ListBudgets)
		budgets.POST("", h.Budgets.CreateBudget)
		budgets.GET("/:id", h.Budgets.GetBudget)
		budgets.PUT("/:id", h.Budgets.UpdateBudget)
		budgets.POST("/:id/approve", h.Budgets.ApproveBudget)
		budgets.POST("/:id/reject", h.Budgets.RejectBudget)
	}

	orders := rg.Group(PathOrders)
	{
		orders.GET("", h.Orders.ListOrders)
		orders.POST("", h.Orders.OpenOrder)
		orders.GET("/:id", h.Orders.GetOrder)
		orders.POST("/:id/costs", h.Orders.UpdateCosts)
		orders.PUT("/:id/status", h.Orders.UpdateStatus)
	}

	invoices := rg.Group(PathInvoices)
	{
		invoices.GET("", h.Invoices.ListInvoices)
		invoices.POST("", h.Invoices.CreateInvoice)
		invoices.POST("/generate", h.Invoices.GenerateInvoices)
		invoices.POST("/reconcile", h.Invoices.Reconcile)
		invoices.GET("/:id", h.Invoices.GetInvoice)
		invoices.POST("/:id/status", h.Invoices.UpdateInvoiceStatus)

		// Settlement through the payment gateway.
		invoices.POST("/:id/payments", h.Payments.PayInvoice)
		invoices.GET("/:id/payments", h.Payments.ListPayments)
		invoices.GET("/:id/payments/:paymentId", h.Payments.GetPayment)
	}
}

func addDashboardRoutes(rg *gin.RouterGroup, h *handlers.DashboardHandler) {
	rg.GET("/dashboard", h.Summary)
}
