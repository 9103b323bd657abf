package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/seu-usuario/gestao-pro/internal/application/analytics"
	"github.com/seu-usuario/gestao-pro/internal/application/auth"
	"github.com/seu-usuario/gestao-pro/internal/application/clients"
	"github.com/seu-usuario/gestao-pro/internal/application/stock"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	StockUC          *stock.StockUseCase
	RegisterMovement *stock.RegisterMovementUseCase
	ReportUC         *stock.ReportUseCase
	ClientUC         *clients.ClientUseCase
	DashboardUC      *appanalytics.DashboardUseCase
	JWTSecret        string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (requerem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products + lotes (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.StockUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Post("/:id/batches", productHandler.AddBatch)
	products.Put("/:id/batches/:batchId", productHandler.UpdateBatch)

	// Stock: movimentações, alertas, stats, catálogos, relatório (protegido)
	stockGroup := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC, deps.RegisterMovement, deps.ReportUC)
	stockGroup.Post("/movements", stockHandler.RegisterMovement)
	stockGroup.Get("/movements", stockHandler.ListMovements)
	stockGroup.Get("/alerts", stockHandler.Alerts)
	stockGroup.Patch("/alerts/:id/read", stockHandler.MarkAlertRead)
	stockGroup.Get("/stats", stockHandler.Stats)
	stockGroup.Get("/categories", stockHandler.Categories)
	stockGroup.Get("/units", stockHandler.Units)
	stockGroup.Get("/report", stockHandler.Report)

	// Clients + compras (protegido)
	clientsGroup := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clientsGroup.Post("/", clientHandler.Create)
	clientsGroup.Get("/", clientHandler.List)
	clientsGroup.Get("/:id", clientHandler.GetByID)
	clientsGroup.Put("/:id", clientHandler.Update)
	clientsGroup.Delete("/:id", clientHandler.Delete)
	clientsGroup.Post("/:id/purchases", clientHandler.AddPurchase)
	clientsGroup.Get("/:id/purchases", clientHandler.ListPurchases)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.GetSummary)
}
