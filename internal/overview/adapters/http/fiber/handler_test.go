package fiber_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	httpadapter "solar-stats-service/internal/overview/adapters/http/fiber"
	"solar-stats-service/internal/overview/core/domain"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fakeOverviewUseCase struct {
	ExecuteFn func(ctx context.Context) (*domain.SystemOverview, error)
}

func (f *fakeOverviewUseCase) Execute(ctx context.Context) (*domain.SystemOverview, error) {
	return f.ExecuteFn(ctx)
}

func setupApp(uc httpadapter.GetSystemOverviewUseCase, log *zap.Logger) *fiber.App {
	app := fiber.New()
	h := httpadapter.NewOverviewHandler(uc, log)
	app.Get("/api/statistics/admin/overview", h.GetOverview)
	return app
}

func TestGetOverview_Success(t *testing.T) {
	uc := &fakeOverviewUseCase{
		ExecuteFn: func(ctx context.Context) (*domain.SystemOverview, error) {
			return &domain.SystemOverview{
				TotalUsers:            12,
				TotalSites:            20,
				ActiveDevices:         31,
				TotalTelemetryRecords: 1048576,
			}, nil
		},
	}

	resp, err := setupApp(uc, zap.NewNop()).Test(httptest.NewRequest(http.MethodGet, "/api/statistics/admin/overview", nil))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var raw map[string]int64
	if err := json.Unmarshal(body, &raw); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}

	want := map[string]int64{
		"totalUsers":            12,
		"totalSites":            20,
		"activeDevices":         31,
		"totalTelemetryRecords": 1048576,
	}
	for k, v := range want {
		if raw[k] != v {
			t.Errorf("expected %s=%d, got %d", k, v, raw[k])
		}
	}
}

func TestGetOverview_InternalErrorIsLogged(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	uc := &fakeOverviewUseCase{
		ExecuteFn: func(ctx context.Context) (*domain.SystemOverview, error) {
			return nil, errors.New("count users: connection refused")
		},
	}

	resp, err := setupApp(uc, zap.New(core)).Test(httptest.NewRequest(http.MethodGet, "/api/statistics/admin/overview", nil))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.StatusCode)
	}

	var out httpadapter.ErrorResponse
	body, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if out.Error != "internal_server_error" || out.Message != "" {
		t.Fatalf("unexpected error body: %+v", out)
	}
	if logs.Len() != 1 {
		t.Fatalf("expected one error log, got %d", logs.Len())
	}
}
