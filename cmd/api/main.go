package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/reparto-app/reparto-api/internal/application/access"
	"github.com/reparto-app/reparto-api/internal/application/pallet"
	"github.com/reparto-app/reparto-api/internal/application/usecase"
	"github.com/reparto-app/reparto-api/internal/infrastructure/postgres"
	httpRouter "github.com/reparto-app/reparto-api/internal/interfaces/http"
	"github.com/reparto-app/reparto-api/pkg/config"
	"github.com/reparto-app/reparto-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	codeRepo := postgres.NewAccessCodeRepository(pool)
	palletRepo := postgres.NewPalletRepository(pool)
	articleRepo := postgres.NewArticleRepository(pool)
	centerRepo := postgres.NewCenterRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	accessUC := access.NewUseCase(codeRepo, txRunner, log)
	palletUC := pallet.NewUseCase(palletRepo, centerRepo)
	articleUC := usecase.NewArticleUseCase(articleRepo)
	centerUC := usecase.NewCenterUseCase(centerRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Reparto API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AccessUC:    accessUC,
		PalletUC:    palletUC,
		ArticleUC:   articleUC,
		CenterUC:    centerUC,
		RedirectURL: cfg.Frontend.RedirectURL,
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

	log.Info().Msg("aplicación detenida")
}
