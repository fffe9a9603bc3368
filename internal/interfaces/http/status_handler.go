package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/oticavision/otica-api/internal/application/dto"
	"github.com/oticavision/otica-api/internal/application/usecase"
)

// StatusHandler resumo de saúde do sistema.
type StatusHandler struct {
	uc *usecase.StatusUseCase
}

// NewStatusHandler constrói o handler de status.
func NewStatusHandler(uc *usecase.StatusUseCase) *StatusHandler {
	return &StatusHandler{uc: uc}
}

// Status godoc
// @Summary      Status do sistema
// @Tags         status
// @Produce      json
// @Success      200  {object}  dto.StatusResponse
// @Router       /api/status [get]
func (h *StatusHandler) Status(c *fiber.Ctx) error {
	out, err := h.uc.Summary()
	if err != nil {
		// Falha de banco vira payload estruturado com HTTP 200: o monitoramento
		// faz poll incondicional sem tratar falhas de transporte.
		return c.JSON(dto.StatusErrorResponse{
			Status:    "error",
			Database:  false,
			Erro:      err.Error(),
			Timestamp: time.Now().Format(time.RFC3339),
		})
	}
	return c.JSON(out)
}
