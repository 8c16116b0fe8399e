package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/claricinhas/atelier-api/internal/application/analytics"
	"github.com/claricinhas/atelier-api/internal/application/auth"
	"github.com/claricinhas/atelier-api/internal/application/expense"
	"github.com/claricinhas/atelier-api/internal/application/sales"
	"github.com/claricinhas/atelier-api/internal/application/stock"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StockUC     *stock.LedgerUseCase
	NewBuilder  func() *sales.Builder
	SaleUC      *sales.SaleUseCase
	ReceiptUC   *sales.ReceiptUseCase
	ClientUC    *sales.ClientUseCase
	ExpenseUC   *expense.UseCase
	DashboardUC *analytics.DashboardUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Inventario de producción (protegido)
	stockGroup := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stockGroup.Post("/", stockHandler.Create)
	stockGroup.Get("/", stockHandler.List)
	stockGroup.Get("/available", stockHandler.ListAvailable)
	stockGroup.Get("/:id", stockHandler.GetByID)
	stockGroup.Patch("/:id/quantity", stockHandler.Adjust)
	stockGroup.Delete("/:id", stockHandler.Delete)

	// Ventas (protegido)
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.NewBuilder, deps.SaleUC, deps.ReceiptUC)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Delete("/:id", saleHandler.Delete)
	salesGroup.Patch("/:id/installments/:seq", saleHandler.MarkInstallment)
	salesGroup.Get("/:id/receipt", saleHandler.Receipt)

	// Clientes (protegido)
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.Search)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Gastos (protegido)
	expenses := protected.Group("/expenses")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/", expenseHandler.List)
	expenses.Patch("/:id/status", expenseHandler.UpdateStatus)
	expenses.Delete("/:id", expenseHandler.Delete)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)
}
