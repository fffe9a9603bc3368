package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/oticavision/otica-api/internal/application/dto"
	"github.com/oticavision/otica-api/pkg/jwt"
)

// Locals keys para os claims extraídos do token.
const (
	LocalUserID    = "user_id"
	LocalEmpresaID = "empresa_id"
	LocalEmail     = "email"
	LocalFuncao    = "funcao"
)

// AuthMiddleware valida o Bearer Token JWT e extrai os claims para c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "header Authorization obrigatório"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vazio"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido ou expirado"})
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalEmpresaID, claims.EmpresaID)
		c.Locals(LocalEmail, claims.Email)
		c.Locals(LocalFuncao, claims.Funcao)
		return c.Next()
	}
}

// RequireRole autoriza o acesso apenas para as funções indicadas.
// Requer AuthMiddleware antes na cadeia.
func RequireRole(allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetFuncao(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "token sem claim de função"})
		}
		for _, a := range allowed {
			if role == a {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "função sem permissão para este recurso"})
	}
}

// GetUserID devolve o UserID do contexto (após o middleware de auth).
func GetUserID(c *fiber.Ctx) int64 {
	v, _ := c.Locals(LocalUserID).(int64)
	return v
}

// GetEmpresaID devolve o EmpresaID do contexto (após o middleware de auth).
func GetEmpresaID(c *fiber.Ctx) int64 {
	v, _ := c.Locals(LocalEmpresaID).(int64)
	return v
}

// GetEmail devolve o email do contexto (após o middleware de auth).
func GetEmail(c *fiber.Ctx) string {
	v, _ := c.Locals(LocalEmail).(string)
	return v
}

// GetFuncao devolve a função do contexto (após o middleware de auth).
func GetFuncao(c *fiber.Ctx) string {
	v, _ := c.Locals(LocalFuncao).(string)
	return v
}
