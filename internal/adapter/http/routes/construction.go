package routes

import (
	"construction_estimation/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathClients   = "/clients"
	PathEstimates = "/estimates"
	PathInvoices  = "/invoices"
)

func addConstructionRoutes(
	rg *gin.RouterGroup,
	clientHandler *handlers.ClientHandler,
	estimateHandler *handlers.EstimateHandler,
	invoiceHandler *handlers.InvoiceHandler,
) {
	clients := rg.Group(PathClients)
	{
		clients.GET("", clientHandler.ListClients)
		clients.GET("/:id", clientHandler.GetClient)
		clients.POST("", clientHandler.CreateClient)
		clients.PUT("/:id", clientHandler.UpdateClient)
		clients.DELETE("/:id", clientHandler.DeleteClient)
	}

	estimates := rg.Group(PathEstimates)
	{
		estimates.GET("", estimateHandler.ListEstimates)
		estimates.GET("/:id", estimateHandler.GetEstimate)
		estimates.POST("", estimateHandler.CreateEstimate)
		estimates.PATCH("/:id", estimateHandler.UpdateEstimate)
		estimates.DELETE("/:id", estimateHandler.DeleteEstimate)
	}

	invoices := rg.Group(PathInvoices)
	{
		invoices.GET("", invoiceHandler.ListInvoices)
		invoices.GET("/:id", invoiceHandler.GetInvoice)
		invoices.POST("", invoiceHandler.CreateInvoice)
		invoices.PATCH("/:id", invoiceHandler.UpdateInvoice)
		invoices.DELETE("/:id", invoiceHandler.DeleteInvoice)
	}
}
