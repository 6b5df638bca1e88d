package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gridpulse/power-monitor/internal/pkg/application/aggregation"
	"github.com/gridpulse/power-monitor/internal/pkg/application/alerts"
	"github.com/gridpulse/power-monitor/internal/pkg/application/notifications"
	"github.com/gridpulse/power-monitor/internal/pkg/application/reports"
	"github.com/gridpulse/power-monitor/internal/pkg/application/telemetry"
	"github.com/gridpulse/power-monitor/internal/pkg/infrastructure/storage"
	"github.com/gridpulse/power-monitor/internal/pkg/presentation/render"
	"github.com/gridpulse/power-monitor/pkg/types"

	"github.com/go-chi/chi/v5"
	"github.com/matryer/is"
)

type directoryMock struct {
	getClient    func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Client, error)
	queryClients func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Client], error)
	queryTariffs func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Tariff], error)
}

func (d *directoryMock) GetClient(ctx context.Context, conditions ...storage.ConditionFunc) (types.Client, error) {
	return d.getClient(ctx, conditions...)
}
func (d *directoryMock) QueryClients(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Client], error) {
	return d.queryClients(ctx, conditions...)
}
func (d *directoryMock) QueryTariffs(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Tariff], error) {
	return d.queryTariffs(ctx, conditions...)
}

type deps struct {
	telemetry  *telemetry.TelemetryServiceMock
	alerts     *alerts.AlertServiceMock
	agg        *aggregation.AggregationServiceMock
	reports    *reports.ReportServiceMock
	dispatcher *notifications.DispatcherMock
	directory  *directoryMock
}

func testSetup(t *testing.T) (*is.I, *chi.Mux, *deps) {
	is := is.New(t)

	d := &deps{
		telemetry:  &telemetry.TelemetryServiceMock{},
		alerts:     &alerts.AlertServiceMock{},
		agg:        &aggregation.AggregationServiceMock{},
		reports:    &reports.ReportServiceMock{},
		dispatcher: &notifications.DispatcherMock{},
		directory:  &directoryMock{},
	}

	router, err := RegisterHandlers(context.Background(), chi.NewRouter(),
		d.telemetry, d.alerts, d.agg, d.reports, d.dispatcher, d.directory, render.New())
	is.NoErr(err)

	return is, router, d
}

func do(router *chi.Mux, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpointReturns204(t *testing.T) {
	is, router, _ := testSetup(t)

	w := do(router, http.MethodGet, "/health", "")
	is.Equal(http.StatusNoContent, w.Code)
}

func TestIngestReadingReturns201(t *testing.T) {
	is, router, d := testSetup(t)

	d.telemetry.IngestFunc = func(ctx context.Context, reading types.PowerReading) error {
		return nil
	}

	w := do(router, http.MethodPost, "/api/v0/readings", `{"deviceID":"PZEM-001","voltage":231.5,"power":1200}`)
	is.Equal(http.StatusCreated, w.Code)

	is.Equal(1, len(d.telemetry.IngestCalls()))
	is.Equal("PZEM-001", d.telemetry.IngestCalls()[0].Reading.DeviceID)
}

func TestIngestRejectsInvalidReading(t *testing.T) {
	is, router, d := testSetup(t)

	d.telemetry.IngestFunc = func(ctx context.Context, reading types.PowerReading) error {
		return telemetry.ErrInvalidReading
	}

	w := do(router, http.MethodPost, "/api/v0/readings", `{"voltage":-3}`)
	is.Equal(http.StatusBadRequest, w.Code)
}

func TestIngestBatchReportsStoredCountOnAbort(t *testing.T) {
	is, router, d := testSetup(t)

	d.telemetry.IngestBatchFunc = func(ctx context.Context, readings []types.PowerReading) (int, error) {
		return 2, telemetry.ErrInvalidReading
	}

	w := do(router, http.MethodPost, "/api/v0/readings/batch", `[{},{},{}]`)
	is.Equal(http.StatusBadRequest, w.Code)
	is.Equal(`{"stored":2}`, w.Body.String())
}

func TestLatestReadingRequiresDeviceID(t *testing.T) {
	is, router, _ := testSetup(t)

	w := do(router, http.MethodGet, "/api/v0/readings/latest", "")
	is.Equal(http.StatusBadRequest, w.Code)
}

func TestLatestReadingReturns404ForUnknownDevice(t *testing.T) {
	is, router, d := testSetup(t)

	d.telemetry.GetLatestFunc = func(ctx context.Context, deviceID string) (types.PowerReading, error) {
		return types.PowerReading{}, telemetry.ErrDeviceNotFound
	}

	w := do(router, http.MethodGet, "/api/v0/readings/latest?device_id=nosuch", "")
	is.Equal(http.StatusNotFound, w.Code)
}

func TestAcknowledgeAlertMapsTransitionErrors(t *testing.T) {
	is, router, d := testSetup(t)

	d.alerts.AcknowledgeFunc = func(ctx context.Context, alertID string) error {
		return alerts.ErrInvalidTransition
	}

	w := do(router, http.MethodPost, "/api/v0/alerts/alert-1/acknowledge", "")
	is.Equal(http.StatusConflict, w.Code)

	d.alerts.AcknowledgeFunc = func(ctx context.Context, alertID string) error {
		return alerts.ErrAlertNotFound
	}

	w = do(router, http.MethodPost, "/api/v0/alerts/alert-1/acknowledge", "")
	is.Equal(http.StatusNotFound, w.Code)
}

func TestResolveAlertReturns204(t *testing.T) {
	is, router, d := testSetup(t)

	d.alerts.ResolveFunc = func(ctx context.Context, alertID string) error {
		return nil
	}

	w := do(router, http.MethodPost, "/api/v0/alerts/alert-1/resolve", "")
	is.Equal(http.StatusNoContent, w.Code)
	is.Equal("alert-1", d.alerts.ResolveCalls()[0].AlertID)
}

func TestGenerateReportReturns201(t *testing.T) {
	is, router, d := testSetup(t)

	d.reports.GenerateFunc = func(ctx context.Context, req reports.GenerateRequest) (types.EnergyReport, error) {
		return types.EnergyReport{ID: "report-1", ClientID: req.ClientID}, nil
	}

	w := do(router, http.MethodPost, "/api/v0/reports", `{"clientID":"client-1","reportType":"WEEKLY"}`)
	is.Equal(http.StatusCreated, w.Code)
	is.Equal("client-1", d.reports.GenerateCalls()[0].Req.ClientID)
}

func TestGenerateReportRejectsClientWithoutDevices(t *testing.T) {
	is, router, d := testSetup(t)

	d.reports.GenerateFunc = func(ctx context.Context, req reports.GenerateRequest) (types.EnergyReport, error) {
		return types.EnergyReport{}, reports.ErrNoDevices
	}

	w := do(router, http.MethodPost, "/api/v0/reports", `{"clientID":"client-1","reportType":"DAILY"}`)
	is.Equal(http.StatusBadRequest, w.Code)
}

func TestGenerateReportReturns404ForUnknownDevice(t *testing.T) {
	is, router, d := testSetup(t)

	d.reports.GenerateFunc = func(ctx context.Context, req reports.GenerateRequest) (types.EnergyReport, error) {
		return types.EnergyReport{}, reports.ErrDeviceNotFound
	}

	w := do(router, http.MethodPost, "/api/v0/reports", `{"clientID":"client-1","reportType":"DAILY","deviceID":"PZEM-404"}`)
	is.Equal(http.StatusNotFound, w.Code)
}

func TestSendReportAnswersWithChannelOutcomes(t *testing.T) {
	is, router, d := testSetup(t)

	d.reports.SendFunc = func(ctx context.Context, reportID string, channels ...types.Channel) ([]types.NotificationRecord, error) {
		return []types.NotificationRecord{
			{Channel: types.ChannelEmail, Status: types.DeliverySent},
			{Channel: types.ChannelWhatsApp, Status: types.DeliverySkipped},
		}, nil
	}

	w := do(router, http.MethodPost, "/api/v0/reports/report-1/send", "")
	is.Equal(http.StatusOK, w.Code)
	is.True(bytes.Contains(w.Body.Bytes(), []byte(`"email":"SENT"`)))
	is.True(bytes.Contains(w.Body.Bytes(), []byte(`"whatsapp":"SKIPPED"`)))

	// no channel flags in the body means the service decides
	is.Equal(0, len(d.reports.SendCalls()[0].Channels))
}

func TestSendReportForwardsChannelFlags(t *testing.T) {
	is, router, d := testSetup(t)

	d.reports.SendFunc = func(ctx context.Context, reportID string, channels ...types.Channel) ([]types.NotificationRecord, error) {
		return []types.NotificationRecord{
			{Channel: types.ChannelEmail, Status: types.DeliverySent},
		}, nil
	}

	w := do(router, http.MethodPost, "/api/v0/reports/report-1/send", `{"sendEmail":true,"sendWhatsApp":false}`)
	is.Equal(http.StatusOK, w.Code)

	is.Equal([]types.Channel{types.ChannelEmail}, d.reports.SendCalls()[0].Channels)
}

func TestReportPDFDownload(t *testing.T) {
	is, router, d := testSetup(t)

	d.reports.GetByIDFunc = func(ctx context.Context, reportID string) (types.EnergyReport, error) {
		return types.EnergyReport{
			ID:        reportID,
			ClientID:  "client-1",
			StartDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2024, 6, 7, 0, 0, 0, 0, time.UTC),
			Currency:  "NGN",
		}, nil
	}
	d.directory.getClient = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Client, error) {
		return types.Client{ID: "client-1", Name: "Adeola Motors"}, nil
	}

	w := do(router, http.MethodGet, "/api/v0/reports/report-1/pdf", "")
	is.Equal(http.StatusOK, w.Code)
	is.Equal("application/pdf", w.Header().Get("Content-Type"))
	is.Equal(`attachment; filename="energy_report_Adeola_Motors_2024-06-01_2024-06-07.pdf"`, w.Header().Get("Content-Disposition"))
	is.True(bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")))
}

func TestQueryConsumptionForwardsParams(t *testing.T) {
	is, router, d := testSetup(t)

	d.agg.QueryFunc = func(ctx context.Context, params map[string][]string) (types.Collection[types.DailyConsumption], error) {
		return types.Collection[types.DailyConsumption]{}, nil
	}

	w := do(router, http.MethodGet, "/api/v0/consumption?device_id=PZEM-001&limit=5", "")
	is.Equal(http.StatusOK, w.Code)

	params := d.agg.QueryCalls()[0].Params
	is.Equal("PZEM-001", params["device_id"][0])
	is.Equal("5", params["limit"][0])
}

func TestEstimateCostReturnsTariffDetails(t *testing.T) {
	is, router, d := testSetup(t)

	d.agg.EstimateCostFunc = func(ctx context.Context, kwh float64, tariffID string) (float64, types.Tariff, error) {
		return kwh * 225.0, types.Tariff{RatePerKwh: 225.0, Currency: "NGN"}, nil
	}

	w := do(router, http.MethodPost, "/api/v0/consumption/cost", `{"consumptionKwh":10}`)
	is.Equal(http.StatusOK, w.Code)
	is.True(bytes.Contains(w.Body.Bytes(), []byte(`"cost":2250`)))
	is.True(bytes.Contains(w.Body.Bytes(), []byte(`"currency":"NGN"`)))
}

func TestEstimateCostForwardsTariffReference(t *testing.T) {
	is, router, d := testSetup(t)

	d.agg.EstimateCostFunc = func(ctx context.Context, kwh float64, tariffID string) (float64, types.Tariff, error) {
		return kwh * 110.0, types.Tariff{ID: tariffID, RatePerKwh: 110.0, Currency: "NGN"}, nil
	}

	w := do(router, http.MethodPost, "/api/v0/consumption/cost", `{"consumptionKwh":10,"tariffID":"night"}`)
	is.Equal(http.StatusOK, w.Code)
	is.Equal("night", d.agg.EstimateCostCalls()[0].TariffID)
}

func TestEstimateCostWithoutTariffReturns404(t *testing.T) {
	is, router, d := testSetup(t)

	d.agg.EstimateCostFunc = func(ctx context.Context, kwh float64, tariffID string) (float64, types.Tariff, error) {
		return 0, types.Tariff{}, aggregation.ErrNoTariff
	}

	w := do(router, http.MethodPost, "/api/v0/consumption/cost", `{"consumptionKwh":10}`)
	is.Equal(http.StatusNotFound, w.Code)
}

func TestQueryNotifications(t *testing.T) {
	is, router, d := testSetup(t)

	d.dispatcher.QueryFunc = func(ctx context.Context, params map[string][]string) (types.Collection[types.NotificationRecord], error) {
		return types.Collection[types.NotificationRecord]{
			Data:       []types.NotificationRecord{{ID: "n-1", Channel: types.ChannelEmail}},
			Count:      1,
			TotalCount: 1,
		}, nil
	}

	w := do(router, http.MethodGet, "/api/v0/notifications?channel=email", "")
	is.Equal(http.StatusOK, w.Code)
	is.True(bytes.Contains(w.Body.Bytes(), []byte(`"n-1"`)))
}
