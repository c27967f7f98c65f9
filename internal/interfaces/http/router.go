package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/auth"
	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/application/report"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Inventory *inventory.Service
	AuthUC    *auth.AuthUseCase
	Reports   *report.Builder
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.Inventory))

	dashboardHandler := NewDashboardHandler(deps.Inventory)
	protected.Get("/dashboard", dashboardHandler.GetSummary)

	// Inventario derivado
	inv := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.Inventory)
	inv.Get("/", inventoryHandler.List)
	inv.Get("/available", inventoryHandler.Available)
	inv.Get("/:itemId/stock", inventoryHandler.Stock)
	inv.Get("/:itemId/history", inventoryHandler.History)

	// Movimientos
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.Inventory)
	movements.Get("/", movementHandler.List)
	movements.Post("/in", movementHandler.StockIn)
	movements.Post("/in/new-item", movementHandler.NewItemStockIn)
	movements.Post("/out", movementHandler.StockOut)

	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.Inventory)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.Inventory)
	items.Get("/", itemHandler.List)
	items.Post("/", itemHandler.Create)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)

	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.Inventory, deps.Reports)
	reports.Get("/inventory", reportHandler.Inventory)
	reports.Get("/movements", reportHandler.Movements)

	// Usuarios (solo Admin)
	users := protected.Group("/users", RequireRole(string(entity.RoleAdmin)))
	userHandler := NewUserHandler(deps.Inventory)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)
}
