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
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	_ "github.com/oticavision/otica-api/docs"
	"github.com/oticavision/otica-api/internal/application/auth"
	"github.com/oticavision/otica-api/internal/application/usecase"
	"github.com/oticavision/otica-api/internal/infrastructure/sqlite"
	httpRouter "github.com/oticavision/otica-api/internal/interfaces/http"
	"github.com/oticavision/otica-api/pkg/config"
	"github.com/oticavision/otica-api/pkg/logger"
)

// @title        Sistema Ótica - API
// @version      1.0.0
// @description  API para gestão de óticas e joalherias: autenticação multi-tenant e listagens administrativas.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("database", cfg.DB.Path()).
		Msg("iniciando aplicação")

	db, err := sqlite.Open(cfg.DB.Path())
	if err != nil {
		log.Fatal().Err(err).Msg("abrir banco SQLite")
	}
	defer db.Close()

	// Bootstrap idempotente antes de servir tráfego; uma nova tentativa em
	// caso de falha transitória (lock de arquivo, primeiro start).
	boot := sqlite.NewBootstrapper(db)
	bootLog := log.WithComponent("bootstrap")
	if err := boot.EnsureReady(); err != nil {
		bootLog.Warn().Err(err).Msg("bootstrap do banco falhou, tentando novamente")
		if err := boot.EnsureReady(); err != nil {
			bootLog.Fatal().Err(err).Msg("bootstrap do banco")
		}
	}
	bootLog.Info().Msg("banco de dados pronto")

	userRepo := sqlite.NewUserRepository(db)
	companyRepo := sqlite.NewCompanyRepository(db)
	statusRepo := sqlite.NewStatusRepository(db)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:  cfg.JWT.Secret,
		ExpDays: cfg.JWT.ExpirationDays,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	statusUC := usecase.NewStatusUseCase(statusRepo, cfg.App.Env)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		App: httpRouter.AppInfo{
			Nome:     cfg.App.Name,
			Versao:   cfg.App.Version,
			Ambiente: cfg.App.Env,
		},
		AuthUC:    authUC,
		UserUC:    userUC,
		CompanyUC: companyUC,
		StatusUC:  statusUC,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação parada")
}
