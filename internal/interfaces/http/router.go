package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/opencomercio/gestion-api/internal/application/auth"
	"github.com/opencomercio/gestion-api/internal/application/usecase"
	"github.com/opencomercio/gestion-api/internal/domain/entity"
	"github.com/opencomercio/gestion-api/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	CustomerUC     *usecase.CustomerUseCase
	ReturnUC       *usecase.ReturnUseCase
	UserUC         *usecase.UserUseCase
	SupplierUC     *usecase.SupplierUseCase
	SubscriptionUC *usecase.SubscriptionUseCase
	DashboardUC    *usecase.DashboardUseCase
	Tokens         *jwt.Manager
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Onboarding de empresas (público: precede a cualquier usuario del tenant)
	api.Post("/companies", authHandler.RegisterCompany)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.Tokens))

	// Clientes (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
	// Mutaciones de clientes: admin o vendedor
	customerWrite := RequireRole(entity.RoleAdmin, entity.RoleVendedor)
	customers.Post("/", customerWrite, customerHandler.Create)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerWrite, customerHandler.Update)
	customers.Delete("/:id", customerWrite, customerHandler.Delete)
	customers.Patch("/:id/active", customerWrite, customerHandler.SetActive)

	// Devoluciones (protegido)
	returns := protected.Group("/returns")
	returnHandler := NewReturnHandler(deps.ReturnUC)
	returns.Get("/", returnHandler.List)
	returns.Get("/:id", returnHandler.Detail)
	// Aprobar/rechazar toca inventario: admin o bodeguero
	transition := RequireRole(entity.RoleAdmin, entity.RoleBodeguero)
	returns.Post("/:id/approve", transition, returnHandler.Approve)
	returns.Post("/:id/reject", transition, returnHandler.Reject)
	returns.Get("/:id/receipt", returnHandler.Receipt)

	// Usuarios y roles (solo admin)
	userHandler := NewUserHandler(deps.UserUC)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Delete("/:id", userHandler.Delete)
	protected.Get("/roles", RequireRole(entity.RoleAdmin), userHandler.Roles)

	// Proveedores (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/:id", supplierHandler.Detail)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Suscripción (solo admin para renovar)
	subscriptionHandler := NewSubscriptionHandler(deps.SubscriptionUC)
	protected.Get("/plans", subscriptionHandler.Plans)
	protected.Get("/subscription", subscriptionHandler.Current)
	protected.Post("/subscription/renew", RequireRole(entity.RoleAdmin), subscriptionHandler.Renew)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", dashboardHandler.GetSummary)
}
