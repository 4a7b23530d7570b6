package fiber

import (
	"context"
	"errors"
	"net/http"

	"solar-stats-service/internal/platform/auth"
	"solar-stats-service/internal/statistics/core/domain"
	"solar-stats-service/internal/statistics/core/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type GetSiteStatisticsUseCase interface {
	Execute(ctx context.Context, siteID uuid.UUID, in usecase.StatisticsInput) (*domain.StatisticsPeriodResult, error)
}

type GetDeviceStatisticsUseCase interface {
	Execute(ctx context.Context, deviceID uuid.UUID, in usecase.StatisticsInput) (*domain.DeviceStatisticsResult, error)
}

type StatisticsHandler struct {
	siteUC        GetSiteStatisticsUseCase
	deviceUC      GetDeviceStatisticsUseCase
	defaultTariff float64
	log           *zap.Logger
}

func NewStatisticsHandler(
	siteUC GetSiteStatisticsUseCase,
	deviceUC GetDeviceStatisticsUseCase,
	defaultTariff float64,
	log *zap.Logger,
) *StatisticsHandler {
	return &StatisticsHandler{
		siteUC:        siteUC,
		deviceUC:      deviceUC,
		defaultTariff: defaultTariff,
		log:           log,
	}
}

// GetDailyStatistics godoc
// @Summary Daily statistics for a site
// @Description Per-day generation, consumption, money saved, self-sufficiency and grid balance for every device of the site, plus period totals
// @Tags Statistics
// @Produce json
// @Security Bearer
// @Param siteId path string true "Site ID (UUID)"
// @Param start query string true "Start date (YYYY-MM-DD or RFC 3339)"
// @Param end query string true "End date, inclusive (YYYY-MM-DD or RFC 3339)"
// @Param tariff query number false "Tariff in currency per kWh" default(4.32)
// @Success 200 {object} StatisticsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/statistics/{siteId}/daily [get]
func (h *StatisticsHandler) GetDailyStatistics(c *fiber.Ctx) error {
	siteID, in, reqErr := h.parseRequest(c, "siteId")
	if reqErr != nil {
		return c.Status(reqErr.status).JSON(reqErr.body)
	}

	res, err := h.siteUC.Execute(c.UserContext(), siteID, in)
	if err != nil {
		return h.writeError(c, err, "site not found or access denied")
	}

	return c.Status(http.StatusOK).JSON(toStatisticsResponse(res))
}

// GetDeviceStatistics godoc
// @Summary Daily statistics for a device
// @Description Per-day energy, peak power, average power while generating and money saved for one device
// @Tags Statistics
// @Produce json
// @Security Bearer
// @Param deviceId path string true "Device ID (UUID)"
// @Param start query string true "Start date (YYYY-MM-DD or RFC 3339)"
// @Param end query string true "End date, inclusive (YYYY-MM-DD or RFC 3339)"
// @Param tariff query number false "Tariff in currency per kWh" default(4.32)
// @Success 200 {object} DeviceStatisticsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/statistics/device/{deviceId} [get]
func (h *StatisticsHandler) GetDeviceStatistics(c *fiber.Ctx) error {
	deviceID, in, reqErr := h.parseRequest(c, "deviceId")
	if reqErr != nil {
		return c.Status(reqErr.status).JSON(reqErr.body)
	}

	res, err := h.deviceUC.Execute(c.UserContext(), deviceID, in)
	if err != nil {
		return h.writeError(c, err, "device not found or access denied")
	}

	return c.Status(http.StatusOK).JSON(toDeviceStatisticsResponse(res))
}

type requestError struct {
	status int
	body   ErrorResponse
}

// parseRequest reads the caller, the id path param and the query.
func (h *StatisticsHandler) parseRequest(c *fiber.Ctx, param string) (uuid.UUID, usecase.StatisticsInput, *requestError) {
	userID, err := auth.UserID(c)
	if err != nil {
		return uuid.Nil, usecase.StatisticsInput{}, &requestError{
			status: http.StatusUnauthorized,
			body:   ErrorResponse{Error: "unauthorized"},
		}
	}

	id, err := uuid.Parse(c.Params(param))
	if err != nil {
		return uuid.Nil, usecase.StatisticsInput{}, &requestError{
			status: http.StatusBadRequest,
			body:   ErrorResponse{Error: "invalid_query", Message: "invalid " + param},
		}
	}

	in, err := parseStatisticsQuery(c, userID, h.defaultTariff)
	if err != nil {
		return uuid.Nil, usecase.StatisticsInput{}, &requestError{
			status: http.StatusBadRequest,
			body:   ErrorResponse{Error: "invalid_query", Message: err.Error()},
		}
	}

	return id, in, nil
}

func (h *StatisticsHandler) writeError(c *fiber.Ctx, err error, notFoundMsg string) error {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error:   "not_found",
			Message: notFoundMsg,
		})
	default:
		h.log.Error("statistics query failed",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
