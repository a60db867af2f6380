// @title           Repuestos API
// @version         1.0
// @description     Inventario de repuestos: catálogo, entradas, salidas e historial.
// @BasePath        /
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jhoicas/Repuestos-api/docs"
	"github.com/jhoicas/Repuestos-api/internal/application/auth"
	"github.com/jhoicas/Repuestos-api/internal/application/inventory"
	"github.com/jhoicas/Repuestos-api/internal/application/report"
	"github.com/jhoicas/Repuestos-api/internal/application/usecase"
	"github.com/jhoicas/Repuestos-api/internal/domain/repository"
	"github.com/jhoicas/Repuestos-api/internal/infrastructure/memory"
	"github.com/jhoicas/Repuestos-api/internal/infrastructure/mongodb"
	infrapdf "github.com/jhoicas/Repuestos-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Repuestos-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Repuestos-api/internal/interfaces/http"
	"github.com/jhoicas/Repuestos-api/pkg/config"
	"github.com/jhoicas/Repuestos-api/pkg/logger"
	"github.com/jhoicas/Repuestos-api/pkg/telemetry"
)

// repositories agrupa los adaptadores del driver elegido.
type repositories struct {
	parts repository.SparePartRepository
	ins   repository.StockInRepository
	outs  repository.StockOutRepository
	users repository.UserRepository
	tx    inventory.TxRunner
	ping  httpRouter.PingFunc
	close func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("driver", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	shutdownTracing, err := telemetry.Setup(ctx, cfg.Telemetry.Endpoint, cfg.App.Name, cfg.App.Env)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar trazas")
	}

	repos, err := openRepositories(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Store.Driver).Msg("conexión al almacenamiento")
	}
	defer repos.close()

	authUC := auth.NewAuthUseCase(repos.users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	if !cfg.JWT.Enabled {
		log.Warn().Msg("AUTH_ENABLED=false: rutas de inventario sin autenticación")
	}

	app := httpRouter.NewApp(httpRouter.AppConfig{
		Name:        cfg.App.Name,
		Driver:      cfg.Store.Driver,
		CORSOrigins: cfg.HTTP.CORSOrigins,
		SwaggerFile: cfg.HTTP.SwaggerFile,
		Ping:        repos.ping,
		Logger:      log,
	}, httpRouter.RouterDeps{
		SparePartUC:     usecase.NewSparePartUseCase(repos.parts),
		MovementUC:      inventory.NewMovementUseCase(repos.parts, repos.ins, repos.outs, log).WithTxRunner(repos.tx),
		ReplenishmentUC: inventory.NewReplenishmentUseCase(repos.parts, repos.outs),
		AuthUC:          authUC,
		UserUC:          usecase.NewUserUseCase(repos.users),
		ReportUC:        report.NewReportUseCase(repos.parts, infrapdf.NewStockReportGenerator("Existencias de repuestos")),
		JWTSecret:       cfg.JWT.Secret,
		AuthEnabled:     cfg.JWT.Enabled,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("cierre de trazas")
	}

	log.Info().Msg("aplicación detenida")
}

func openRepositories(ctx context.Context, cfg *config.Config, log *logger.Logger) (*repositories, error) {
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		return &repositories{
			parts: postgres.NewSparePartRepository(pool),
			ins:   postgres.NewStockInRepository(pool),
			outs:  postgres.NewStockOutRepository(pool),
			users: postgres.NewUserRepository(pool),
			tx:    postgres.NewTxRunner(pool),
			ping:  pool.Ping,
			close: pool.Close,
		}, nil

	case config.DriverMemory:
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
		store := memory.NewStore()
		return &repositories{
			parts: memory.NewSparePartRepo(store),
			ins:   memory.NewStockInRepo(store),
			outs:  memory.NewStockOutRepo(store),
			users: memory.NewUserRepo(store),
			close: func() {},
		}, nil

	default:
		client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, err
		}
		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		return &repositories{
			parts: mongodb.NewSparePartRepo(db),
			ins:   mongodb.NewStockInRepo(db),
			outs:  mongodb.NewStockOutRepo(db),
			users: mongodb.NewUserRepo(db),
			ping:  func(ctx context.Context) error { return client.Ping(ctx, nil) },
			close: func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := client.Disconnect(ctx); err != nil {
					log.Error().Err(err).Msg("desconexión de MongoDB")
				}
			},
		}, nil
	}
}
