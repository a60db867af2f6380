package http

import (
	"os"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/swaggo/swag"

	"github.com/jhoicas/Repuestos-api/internal/application/auth"
	"github.com/jhoicas/Repuestos-api/internal/application/inventory"
	"github.com/jhoicas/Repuestos-api/internal/application/report"
	"github.com/jhoicas/Repuestos-api/internal/application/usecase"
	"github.com/jhoicas/Repuestos-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SparePartUC     *usecase.SparePartUseCase
	MovementUC      *inventory.MovementUseCase
	ReplenishmentUC *inventory.ReplenishmentUseCase // opcional
	AuthUC          *auth.AuthUseCase
	UserUC          *usecase.UserUseCase // opcional
	ReportUC        *report.ReportUseCase // opcional
	JWTSecret       string
	AuthEnabled     bool // false deja las rutas de inventario abiertas
}

// AppConfig opciones de la aplicación Fiber.
type AppConfig struct {
	Name        string
	Driver      string
	CORSOrigins string
	// SwaggerFile se monta en /docs solo si el archivo existe.
	SwaggerFile string
	Ping        PingFunc
	Logger      *logger.Logger
}

// NewApp arma la aplicación con middlewares, /health y las rutas de la API.
func NewApp(cfg AppConfig, deps RouterDeps) *fiber.App {
	if cfg.Logger == nil {
		cfg.Logger = logger.Nop()
	}
	if cfg.CORSOrigins == "" {
		cfg.CORSOrigins = "*"
	}
	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		ErrorHandler: ErrorHandler,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(Tracing())
	app.Use(RequestLogger(cfg.Logger.Named("http")))

	// Swagger UI: http://localhost:<port>/docs
	if cfg.SwaggerFile != "" {
		if _, err := os.Stat(cfg.SwaggerFile); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.SwaggerFile,
				Path:     "docs",
				Title:    "Repuestos API",
			}))
		} else {
			cfg.Logger.Warn().Str("file", cfg.SwaggerFile).Msg("swagger deshabilitado: archivo no encontrado")
		}
	}

	app.Get("/health", NewHealthHandler(cfg.Name, cfg.Driver, cfg.Ping).Check)
	app.Get("/openapi.json", openAPI)
	Router(app, deps)
	return app
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Usuarios (público)
	users := api.Group("/users")
	authHandler := NewAuthHandler(deps.AuthUC, deps.UserUC)
	users.Post("/register", authHandler.Register)
	users.Post("/login", authHandler.Login)
	if deps.UserUC != nil {
		// El perfil siempre exige token, aunque AUTH_ENABLED sea false.
		users.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)
	}

	// Rutas protegidas (requieren Bearer Token). El middleware va en cada grupo para que
	// una ruta inexistente bajo /api siga respondiendo 404.
	var guard []fiber.Handler
	if deps.AuthEnabled {
		guard = append(guard, AuthMiddleware(deps.JWTSecret))
	}

	spareParts := api.Group("/spareparts", guard...)
	sparePartHandler := NewSparePartHandler(deps.SparePartUC)
	spareParts.Post("/", sparePartHandler.Create)
	spareParts.Get("/", sparePartHandler.List)
	spareParts.Get("/:id", sparePartHandler.GetByID)
	spareParts.Put("/:id", sparePartHandler.Update)
	spareParts.Delete("/:id", sparePartHandler.Delete)

	stockIn := api.Group("/stockin", guard...)
	stockInHandler := NewStockInHandler(deps.MovementUC)
	stockIn.Post("/", stockInHandler.Create)
	stockIn.Get("/", stockInHandler.List)
	stockIn.Get("/:id", stockInHandler.GetByID)
	stockIn.Put("/:id", stockInHandler.Update)
	stockIn.Delete("/:id", stockInHandler.Delete)

	stockOut := api.Group("/stockout", guard...)
	stockOutHandler := NewStockOutHandler(deps.MovementUC)
	stockOut.Post("/", stockOutHandler.Create)
	stockOut.Get("/", stockOutHandler.List)
	stockOut.Get("/:id", stockOutHandler.GetByID)
	stockOut.Put("/:id", stockOutHandler.Update)
	stockOut.Delete("/:id", stockOutHandler.Delete)

	dashboard := api.Group("/dashboard", guard...)
	dashboardHandler := NewDashboardHandler(deps.MovementUC, deps.ReplenishmentUC)
	dashboard.Get("/history", dashboardHandler.History)
	dashboard.Get("/summary", dashboardHandler.Summary)
	if deps.ReplenishmentUC != nil {
		dashboard.Get("/replenishment", dashboardHandler.Replenishment)
	}

	if deps.ReportUC != nil {
		reports := api.Group("/reports", guard...)
		reports.Get("/stock.pdf", NewReportHandler(deps.ReportUC).StockPDF)
	}
}

// openAPI sirve la especificación registrada en swag por el paquete docs.
func openAPI(c *fiber.Ctx) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return fiber.ErrNotFound
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.SendString(doc)
}
