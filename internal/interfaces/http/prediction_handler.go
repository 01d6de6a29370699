package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/invtrack/kardex-api/internal/application/dto"
	"github.com/invtrack/kardex-api/internal/application/prediction"
	"github.com/invtrack/kardex-api/internal/domain"
)

// PredictionHandler maneja las peticiones de analítica predictiva (protegido).
type PredictionHandler struct {
	uc *prediction.LeadTimeUseCase
}

// NewPredictionHandler construye el handler.
func NewPredictionHandler(uc *prediction.LeadTimeUseCase) *PredictionHandler {
	return &PredictionHandler{uc: uc}
}

// GetLeadTime godoc
// @Summary      Predicción de tiempo de entrega de un artículo
// @Description  Promedio, máximo y P90 de los días solicitud→recepción del
//
//	historial reciente, con sugerencia de anticipación de pedido.
//
// @Tags         predictions
// @Security     Bearer
// @Produce      json
// @Param        nac  path  string  true  "Código NAC del artículo"
// @Success      200  {object}  dto.LeadTimePredictionDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/predictions/lead-time/{nac} [get]
func (h *PredictionHandler) GetLeadTime(c *fiber.Ctx) error {
	nacCode := c.Params("nac")

	pred, err := h.uc.Predict(c.Context(), nacCode)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "código NAC requerido"})
		case errors.Is(err, domain.ErrNoReceiveHistory):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_HISTORY", Message: "sin historial de recepciones para predecir"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(pred)
}
