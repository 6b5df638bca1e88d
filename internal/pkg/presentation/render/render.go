package render

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/gridpulse/power-monitor/pkg/types"
)

// Renderer turns a synthesized report into its outgoing renditions. Every
// rendition formats figures identically: energy and money to two decimals,
// power to whole watts, hours to one decimal.
type Renderer struct {
	html *template.Template
}

func New() *Renderer {
	return &Renderer{
		html: template.Must(template.New("report").Funcs(template.FuncMap{
			"kwh":   kwh,
			"money": money,
			"watts": watts,
			"hours": hours,
			"pf":    powerFactor,
			"date":  date,
		}).Parse(htmlReport)),
	}
}

func kwh(v float64) string {
	return fmt.Sprintf("%.2f kWh", v)
}

func money(currency string, v float64) string {
	return fmt.Sprintf("%s %.2f", currency, v)
}

func watts(v float64) string {
	return fmt.Sprintf("%.0f W", v)
}

func hours(v float64) string {
	return fmt.Sprintf("%.1f h", v)
}

func powerFactor(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func date(t time.Time) string {
	return t.Format("2006-01-02")
}

// Filename names the PDF rendition of a report after the client, with
// spaces replaced so the name survives content disposition headers.
func Filename(report types.EnergyReport, client types.Client) string {
	name := strings.ReplaceAll(client.Name, " ", "_")
	if name == "" {
		name = client.ID
	}
	return fmt.Sprintf("energy_report_%s_%s_%s.pdf", name, date(report.StartDate), date(report.EndDate))
}

const htmlReport = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body style="font-family: Helvetica, Arial, sans-serif; color: #222;">
<h1 style="color: #1a5632;">Energy Report</h1>
<p>{{.Client.Name}}<br>{{date .Report.StartDate}} to {{date .Report.EndDate}}</p>
<table cellpadding="6" style="border-collapse: collapse;">
<tr><td>Total consumption</td><td><b>{{kwh .Report.TotalConsumption}}</b></td></tr>
<tr><td>Estimated cost</td><td><b>{{money .Report.Currency .Report.TotalCost}}</b></td></tr>
<tr><td>Average daily consumption</td><td>{{kwh .Report.AvgDailyConsumption}}</td></tr>
<tr><td>Peak power</td><td>{{watts .Report.PeakPower}}</td></tr>
<tr><td>Average power factor</td><td>{{pf .Report.AvgPowerFactor}}</td></tr>
<tr><td>Uptime</td><td>{{hours .Report.UptimeHours}}</td></tr>
</table>
{{if eq .Report.TotalAlerts 0}}
<p style="color: #1a5632;">No alerts in this period.</p>
{{else if eq .Report.CriticalAlerts 0}}
<p style="color: #b8860b;">{{.Report.TotalAlerts}} alert(s) in this period.</p>
{{else}}
<p style="color: #b22222;"><b>{{.Report.TotalAlerts}} alert(s), {{.Report.CriticalAlerts}} critical.</b></p>
{{end}}
{{if gt (len .Report.Breakdown) 1}}
<h2>Per device</h2>
<table cellpadding="6" border="1" style="border-collapse: collapse;">
<tr><th>Device</th><th>Consumption</th><th>Cost</th><th>Peak</th><th>Uptime</th><th>Alerts</th></tr>
{{range .Report.Breakdown}}
<tr><td>{{.DeviceName}}</td><td>{{kwh .Consumption}}</td><td>{{money $.Report.Currency .Cost}}</td><td>{{watts .PeakPower}}</td><td>{{hours .UptimeHours}}</td><td>{{.Alerts}}</td></tr>
{{end}}
</table>
{{end}}
</body>
</html>`

func (r *Renderer) HTML(report types.EnergyReport, client types.Client) (string, error) {
	var sb strings.Builder

	err := r.html.Execute(&sb, struct {
		Report types.EnergyReport
		Client types.Client
	}{report, client})
	if err != nil {
		return "", err
	}

	return sb.String(), nil
}

func (r *Renderer) Text(report types.EnergyReport, client types.Client) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Energy Report for %s\n", client.Name)
	fmt.Fprintf(&sb, "%s to %s\n\n", date(report.StartDate), date(report.EndDate))
	fmt.Fprintf(&sb, "Total consumption:         %s\n", kwh(report.TotalConsumption))
	fmt.Fprintf(&sb, "Estimated cost:            %s\n", money(report.Currency, report.TotalCost))
	fmt.Fprintf(&sb, "Average daily consumption: %s\n", kwh(report.AvgDailyConsumption))
	fmt.Fprintf(&sb, "Peak power:                %s\n", watts(report.PeakPower))
	fmt.Fprintf(&sb, "Average power factor:      %s\n", powerFactor(report.AvgPowerFactor))
	fmt.Fprintf(&sb, "Uptime:                    %s\n", hours(report.UptimeHours))
	sb.WriteString("\n")
	sb.WriteString(alertLine(report))
	sb.WriteString("\n")

	if len(report.Breakdown) > 1 {
		sb.WriteString("\nPer device:\n")
		for _, device := range report.Breakdown {
			fmt.Fprintf(&sb, "  %s: %s, %s, peak %s, uptime %s, %d alert(s)\n",
				device.DeviceName, kwh(device.Consumption), money(report.Currency, device.Cost),
				watts(device.PeakPower), hours(device.UptimeHours), device.Alerts)
		}
	}

	return sb.String()
}

// Summary is the short rendition pushed over WhatsApp.
func (r *Renderer) Summary(report types.EnergyReport, client types.Client) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Energy report %s to %s: ", date(report.StartDate), date(report.EndDate))
	fmt.Fprintf(&sb, "%s used, %s, peak %s. ", kwh(report.TotalConsumption), money(report.Currency, report.TotalCost), watts(report.PeakPower))
	sb.WriteString(alertLine(report))

	return sb.String()
}

func alertLine(report types.EnergyReport) string {
	switch {
	case report.TotalAlerts == 0:
		return "No alerts in this period."
	case report.CriticalAlerts == 0:
		return fmt.Sprintf("%d alert(s) in this period.", report.TotalAlerts)
	default:
		return fmt.Sprintf("%d alert(s), %d critical.", report.TotalAlerts, report.CriticalAlerts)
	}
}
