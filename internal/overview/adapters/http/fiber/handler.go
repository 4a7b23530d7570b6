package fiber

import (
	"context"
	"net/http"

	"solar-stats-service/internal/overview/core/domain"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type GetSystemOverviewUseCase interface {
	Execute(ctx context.Context) (*domain.SystemOverview, error)
}

type OverviewHandler struct {
	uc  GetSystemOverviewUseCase
	log *zap.Logger
}

func NewOverviewHandler(uc GetSystemOverviewUseCase, log *zap.Logger) *OverviewHandler {
	return &OverviewHandler{uc: uc, log: log}
}

// GetOverview godoc
// @Summary System overview
// @Description Total users, total sites, devices that reported in the last 24 hours and the total number of telemetry records
// @Tags Statistics
// @Produce json
// @Security Bearer
// @Success 200 {object} SystemOverviewResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/statistics/admin/overview [get]
func (h *OverviewHandler) GetOverview(c *fiber.Ctx) error {
	res, err := h.uc.Execute(c.UserContext())
	if err != nil {
		h.log.Error("overview query failed", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}

	return c.Status(http.StatusOK).JSON(toOverviewResponse(res))
}
