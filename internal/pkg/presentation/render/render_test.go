package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gridpulse/power-monitor/pkg/types"
	"github.com/matryer/is"
)

func testReport() types.EnergyReport {
	return types.EnergyReport{
		ID:                  "report-1",
		ClientID:            "client-1",
		ReportType:          types.ReportWeekly,
		StartDate:           time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:             time.Date(2024, 6, 7, 0, 0, 0, 0, time.UTC),
		TotalConsumption:    45.2,
		TotalCost:           10170.0,
		AvgDailyConsumption: 6.457142857,
		PeakPower:           4100.4,
		AvgPowerFactor:      0.866666,
		UptimeHours:         10.04,
		TotalAlerts:         3,
		CriticalAlerts:      1,
		Currency:            "NGN",
		Breakdown: []types.DeviceBreakdown{
			{DeviceID: "PZEM-001", DeviceName: "Main Inverter", Consumption: 30.0, Cost: 6750.0, PeakPower: 3200.0, UptimeHours: 8.3, Alerts: 3, CriticalAlerts: 1},
			{DeviceID: "PZEM-002", DeviceName: "Workshop Inverter", Consumption: 15.2, Cost: 3420.0, PeakPower: 4100.4, UptimeHours: 1.7},
		},
		GeneratedAt: time.Date(2024, 6, 8, 6, 0, 0, 0, time.UTC),
	}
}

func testClient() types.Client {
	return types.Client{ID: "client-1", Name: "Adeola Motors"}
}

func TestFiguresIdenticalAcrossRenditions(t *testing.T) {
	is := is.New(t)

	r := New()
	report := testReport()
	client := testClient()

	html, err := r.HTML(report, client)
	is.NoErr(err)
	text := r.Text(report, client)
	summary := r.Summary(report, client)

	for _, figure := range []string{"45.20 kWh", "NGN 10170.00", "4100 W"} {
		is.True(strings.Contains(html, figure))
		is.True(strings.Contains(text, figure))
		is.True(strings.Contains(summary, figure))
	}

	// one decimal for hours, two for power factor
	is.True(strings.Contains(text, "10.0 h"))
	is.True(strings.Contains(text, "0.87"))
	is.True(strings.Contains(html, "10.0 h"))
}

func TestAlertSectionStates(t *testing.T) {
	is := is.New(t)

	r := New()
	client := testClient()

	quiet := testReport()
	quiet.TotalAlerts = 0
	quiet.CriticalAlerts = 0
	is.True(strings.Contains(r.Text(quiet, client), "No alerts in this period."))

	warnings := testReport()
	warnings.TotalAlerts = 2
	warnings.CriticalAlerts = 0
	is.True(strings.Contains(r.Text(warnings, client), "2 alert(s) in this period."))

	critical := testReport()
	is.True(strings.Contains(r.Text(critical, client), "3 alert(s), 1 critical."))
}

func TestBreakdownOnlyForMultipleDevices(t *testing.T) {
	is := is.New(t)

	r := New()
	client := testClient()

	multi := testReport()
	is.True(strings.Contains(r.Text(multi, client), "Per device:"))

	single := testReport()
	single.Breakdown = single.Breakdown[:1]
	is.True(!strings.Contains(r.Text(single, client), "Per device:"))

	html, err := r.HTML(single, client)
	is.NoErr(err)
	is.True(!strings.Contains(html, "Per device"))
}

func TestPDFFilename(t *testing.T) {
	is := is.New(t)

	r := New()

	pdf, filename, err := r.PDF(testReport(), testClient())
	is.NoErr(err)
	is.Equal("energy_report_Adeola_Motors_2024-06-01_2024-06-07.pdf", filename)
	is.True(strings.HasPrefix(string(pdf[:5]), "%PDF-"))
}

func TestFilenameFallsBackToClientID(t *testing.T) {
	is := is.New(t)

	client := testClient()
	client.Name = ""

	is.Equal("energy_report_client-1_2024-06-01_2024-06-07.pdf", Filename(testReport(), client))
}
