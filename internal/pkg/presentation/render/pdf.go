package render

import (
	"bytes"
	"fmt"

	"github.com/gridpulse/power-monitor/pkg/types"
	"github.com/jung-kurt/gofpdf"
)

// PDF renders the attachment rendition. With more than one device in the
// breakdown the per-device table starts on its own page.
func (r *Renderer) PDF(report types.EnergyReport, client types.Client) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Energy Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(26, 86, 50)
	pdf.Cell(0, 12, "Energy Report")
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(34, 34, 34)
	pdf.Cell(0, 7, client.Name)
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("%s to %s", date(report.StartDate), date(report.EndDate)))
	pdf.Ln(12)

	summaryRow := func(label, value string) {
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(70, 8, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(60, 8, value, "", 1, "L", false, 0, "")
	}

	summaryRow("Total consumption", kwh(report.TotalConsumption))
	summaryRow("Estimated cost", money(report.Currency, report.TotalCost))
	summaryRow("Average daily consumption", kwh(report.AvgDailyConsumption))
	summaryRow("Peak power", watts(report.PeakPower))
	summaryRow("Average power factor", powerFactor(report.AvgPowerFactor))
	summaryRow("Uptime", hours(report.UptimeHours))

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 11)

	switch {
	case report.TotalAlerts == 0:
		pdf.SetTextColor(26, 86, 50)
	case report.CriticalAlerts == 0:
		pdf.SetTextColor(184, 134, 11)
	default:
		pdf.SetTextColor(178, 34, 34)
	}
	pdf.Cell(0, 8, alertLine(report))
	pdf.Ln(10)
	pdf.SetTextColor(34, 34, 34)

	if len(report.Breakdown) > 1 {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", 14)
		pdf.Cell(0, 10, "Per device")
		pdf.Ln(12)

		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(26, 86, 50)
		pdf.SetTextColor(255, 255, 255)

		widths := []float64{45, 30, 35, 25, 25, 20}
		headers := []string{"Device", "Consumption", "Cost", "Peak", "Uptime", "Alerts"}
		for i, h := range headers {
			pdf.CellFormat(widths[i], 8, h, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(34, 34, 34)
		for _, device := range report.Breakdown {
			pdf.CellFormat(widths[0], 8, device.DeviceName, "1", 0, "L", false, 0, "")
			pdf.CellFormat(widths[1], 8, kwh(device.Consumption), "1", 0, "R", false, 0, "")
			pdf.CellFormat(widths[2], 8, money(report.Currency, device.Cost), "1", 0, "R", false, 0, "")
			pdf.CellFormat(widths[3], 8, watts(device.PeakPower), "1", 0, "R", false, 0, "")
			pdf.CellFormat(widths[4], 8, hours(device.UptimeHours), "1", 0, "R", false, 0, "")
			pdf.CellFormat(widths[5], 8, fmt.Sprintf("%d", device.Alerts), "1", 1, "R", false, 0, "")
		}
	}

	pdf.SetY(-20)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.Cell(0, 6, fmt.Sprintf("Generated %s", report.GeneratedAt.Format("2006-01-02 15:04 MST")))

	var buf bytes.Buffer
	err := pdf.Output(&buf)
	if err != nil {
		return nil, "", err
	}

	return buf.Bytes(), Filename(report, client), nil
}
