package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gridpulse/power-monitor/internal/pkg/application/aggregation"
	"github.com/gridpulse/power-monitor/internal/pkg/application/alerts"
	"github.com/gridpulse/power-monitor/internal/pkg/application/notifications"
	"github.com/gridpulse/power-monitor/internal/pkg/application/reports"
	"github.com/gridpulse/power-monitor/internal/pkg/application/telemetry"
	"github.com/gridpulse/power-monitor/internal/pkg/infrastructure/router"
	"github.com/gridpulse/power-monitor/internal/pkg/infrastructure/storage"
	"github.com/gridpulse/power-monitor/internal/pkg/presentation/api"
	"github.com/gridpulse/power-monitor/internal/pkg/presentation/render"
	"github.com/gridpulse/power-monitor/pkg/types"

	"github.com/go-chi/chi/v5"
	"github.com/matryer/is"
)

func TestHealthEndpoint(t *testing.T) {
	r, is := setupTest(t)
	server := httptest.NewServer(r)
	defer server.Close()

	resp, _ := testRequest(is, server, http.MethodGet, "/health", nil)

	is.Equal(resp.StatusCode, http.StatusNoContent)
}

func TestThatGetUnknownDeviceReturns404(t *testing.T) {
	r, is := setupTest(t)
	server := httptest.NewServer(r)
	defer server.Close()

	resp, _ := testRequest(is, server, http.MethodGet, "/api/v0/devices/nosuchdevice", nil)

	is.Equal(resp.StatusCode, http.StatusNotFound)
}

func TestDefaultFlagsCanBeOverriddenByEnv(t *testing.T) {
	is := is.New(t)

	t.Setenv("SERVICE_PORT", "9090")

	_, flags := parseExternalConfig(context.Background(), defaultFlags())

	is.Equal("9090", flags[servicePort])
	is.Equal("0.0.0.0", flags[listenAddress])
}

func TestTransportsFallBackToNoopWithoutCredentials(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	email := newEmailTransport(ctx, defaultFlags())
	_, err := email.SendEmail(ctx, "ops@example.com", "subject", "<html></html>", "text", nil)
	is.NoErr(err)

	whatsapp := newMessageTransport(ctx, defaultFlags())
	_, err = whatsapp.SendMessage(ctx, "+2348012345678", "body")
	is.NoErr(err)
}

func setupTest(t *testing.T) (*chi.Mux, *is.I) {
	is := is.New(t)

	telemetrySvc := &telemetry.TelemetryServiceMock{
		GetDeviceFunc: func(ctx context.Context, deviceID string) (types.Device, error) {
			return types.Device{}, telemetry.ErrDeviceNotFound
		},
	}

	mux, err := api.RegisterHandlers(context.Background(), router.New("testService"),
		telemetrySvc,
		&alerts.AlertServiceMock{},
		&aggregation.AggregationServiceMock{},
		&reports.ReportServiceMock{},
		&notifications.DispatcherMock{},
		&storage.Storage{},
		render.New())
	is.NoErr(err)

	return mux, is
}

func testRequest(is *is.I, ts *httptest.Server, method, path string, body io.Reader) (*http.Response, string) {
	req, _ := http.NewRequest(method, ts.URL+path, body)
	resp, _ := http.DefaultClient.Do(req)
	respBody, _ := io.ReadAll(resp.Body)
	defer resp.Body.Close()

	return resp, string(respBody)
}
