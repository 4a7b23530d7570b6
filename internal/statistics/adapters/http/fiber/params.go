package fiber

import (
	"errors"
	"math"
	"strconv"
	"time"

	"solar-stats-service/internal/statistics/core/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const dateOnly = "2006-01-02"

var (
	ErrMissingRange  = errors.New("start and end are required")
	ErrInvalidDate   = errors.New("dates must be YYYY-MM-DD or RFC 3339")
	ErrInvalidRange  = errors.New("end must not be before start")
	ErrInvalidTariff = errors.New("tariff must be a positive number")
)

// parseDate accepts a calendar date or an RFC 3339 instant. A bare date
// used as the end of a range covers the whole day.
func parseDate(s string, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse(dateOnly, s); err == nil {
		if endOfDay {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t.UTC(), nil
}

func parseStatisticsQuery(c *fiber.Ctx, userID uuid.UUID, defaultTariff float64) (usecase.StatisticsInput, error) {
	startStr := c.Query("start", "")
	endStr := c.Query("end", "")
	if startStr == "" || endStr == "" {
		return usecase.StatisticsInput{}, ErrMissingRange
	}

	start, err := parseDate(startStr, false)
	if err != nil {
		return usecase.StatisticsInput{}, err
	}
	end, err := parseDate(endStr, true)
	if err != nil {
		return usecase.StatisticsInput{}, err
	}
	if end.Before(start) {
		return usecase.StatisticsInput{}, ErrInvalidRange
	}

	tariff := defaultTariff
	if s := c.Query("tariff", ""); s != "" {
		tariff, err = strconv.ParseFloat(s, 64)
		if err != nil || tariff <= 0 || math.IsInf(tariff, 0) || math.IsNaN(tariff) {
			return usecase.StatisticsInput{}, ErrInvalidTariff
		}
	}

	return usecase.StatisticsInput{
		UserID: userID,
		Start:  start,
		End:    end,
		Tariff: tariff,
	}, nil
}
