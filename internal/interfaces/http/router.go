package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/oticavision/otica-api/internal/application/auth"
	"github.com/oticavision/otica-api/internal/application/usecase"
)

// AppInfo identidade do serviço exposta no banner da raiz.
type AppInfo struct {
	Nome     string
	Versao   string
	Ambiente string
}

// RouterDeps dependências para o router.
type RouterDeps struct {
	App       AppInfo
	AuthUC    *auth.AuthUseCase
	UserUC    *usecase.UserUseCase
	CompanyUC *usecase.CompanyUseCase
	StatusUC  *usecase.StatusUseCase
	JWTSecret string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	// Banner de identidade do serviço
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"sistema":      deps.App.Nome,
			"versao":       deps.App.Versao,
			"status":       "online",
			"documentacao": "/docs",
			"ambiente":     deps.App.Ambiente,
		})
	})

	api := app.Group("/api")

	statusHandler := NewStatusHandler(deps.StatusUC)
	api.Get("/status", statusHandler.Status)

	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/login", authHandler.Login)

	// Listagens (públicas por enquanto; podem ser protegidas com
	// AuthMiddleware(deps.JWTSecret) + RequireRole("admin"))
	userHandler := NewUserHandler(deps.UserUC)
	api.Get("/usuarios", userHandler.List)

	companyHandler := NewCompanyHandler(deps.CompanyUC)
	api.Get("/empresas", companyHandler.List)
}
