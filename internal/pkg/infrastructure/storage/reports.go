package storage

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/gridpulse/power-monitor/pkg/types"
	"github.com/jackc/pgx/v5"
)

func (s *Storage) AddReport(ctx context.Context, report types.EnergyReport) error {
	if report.ID == "" {
		return ErrNoID
	}

	breakdown, err := json.Marshal(report.Breakdown)
	if err != nil {
		return err
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO energy_reports (report_id, client_id, device_id, report_type, start_date, end_date,
			total_consumption, total_cost, avg_daily_consumption, peak_power, avg_power_factor, uptime_hours,
			total_alerts, critical_alerts, currency, breakdown, generated_at)
		VALUES (@report_id, @client_id, @device_id, @report_type, @start_date, @end_date,
			@total_consumption, @total_cost, @avg_daily_consumption, @peak_power, @avg_power_factor, @uptime_hours,
			@total_alerts, @critical_alerts, @currency, @breakdown, @generated_at)
	`, pgx.NamedArgs{
		"report_id":             report.ID,
		"client_id":             report.ClientID,
		"device_id":             report.DeviceID,
		"report_type":           string(report.ReportType),
		"start_date":            report.StartDate.Format("2006-01-02"),
		"end_date":              report.EndDate.Format("2006-01-02"),
		"total_consumption":     report.TotalConsumption,
		"total_cost":            report.TotalCost,
		"avg_daily_consumption": report.AvgDailyConsumption,
		"peak_power":            report.PeakPower,
		"avg_power_factor":      report.AvgPowerFactor,
		"uptime_hours":          report.UptimeHours,
		"total_alerts":          report.TotalAlerts,
		"critical_alerts":       report.CriticalAlerts,
		"currency":              report.Currency,
		"breakdown":             breakdown,
		"generated_at":          report.GeneratedAt.UTC(),
	})
	if err != nil {
		return err
	}

	return nil
}

func (s *Storage) GetReport(ctx context.Context, conditions ...ConditionFunc) (types.EnergyReport, error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	var report types.EnergyReport
	var breakdown json.RawMessage

	err := s.pool.QueryRow(ctx, `
		SELECT report_id, client_id, device_id, report_type, start_date, end_date,
			total_consumption, total_cost, avg_daily_consumption, peak_power, avg_power_factor, uptime_hours,
			total_alerts, critical_alerts, currency, breakdown, generated_at, sent_via_email, sent_via_whatsapp
		FROM energy_reports
		`+condition.Where(), condition.NamedArgs()).
		Scan(&report.ID, &report.ClientID, &report.DeviceID, &report.ReportType, &report.StartDate, &report.EndDate,
			&report.TotalConsumption, &report.TotalCost, &report.AvgDailyConsumption, &report.PeakPower, &report.AvgPowerFactor, &report.UptimeHours,
			&report.TotalAlerts, &report.CriticalAlerts, &report.Currency, &breakdown, &report.GeneratedAt, &report.SentViaEmail, &report.SentViaWhatsApp)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.EnergyReport{}, ErrNoRows
		}
		return types.EnergyReport{}, err
	}

	err = json.Unmarshal(breakdown, &report.Breakdown)
	if err != nil {
		return types.EnergyReport{}, err
	}

	return report, nil
}

func (s *Storage) QueryReports(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.EnergyReport], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	if condition.sortBy == "" {
		condition.sortBy = "generated_at"
		condition.sortOrder = "DESC"
	}
	condition.timeColumn = "generated_at"

	query := `
		SELECT report_id, client_id, device_id, report_type, start_date, end_date,
			total_consumption, total_cost, avg_daily_consumption, peak_power, avg_power_factor, uptime_hours,
			total_alerts, critical_alerts, currency, breakdown, generated_at, sent_via_email, sent_via_whatsapp,
			count(*) OVER () AS total
		FROM energy_reports
		` + condition.Where() + condition.OrderBy() + condition.OffsetLimit()

	rows, err := s.pool.Query(ctx, query, condition.NamedArgs())
	if err != nil {
		return types.Collection[types.EnergyReport]{}, err
	}

	var report types.EnergyReport
	var breakdown json.RawMessage
	var total int64

	reports := make([]types.EnergyReport, 0)

	_, err = pgx.ForEachRow(rows, []any{&report.ID, &report.ClientID, &report.DeviceID, &report.ReportType, &report.StartDate, &report.EndDate,
		&report.TotalConsumption, &report.TotalCost, &report.AvgDailyConsumption, &report.PeakPower, &report.AvgPowerFactor, &report.UptimeHours,
		&report.TotalAlerts, &report.CriticalAlerts, &report.Currency, &breakdown, &report.GeneratedAt, &report.SentViaEmail, &report.SentViaWhatsApp, &total}, func() error {
		r := report
		r.Breakdown = nil
		if err := json.Unmarshal(breakdown, &r.Breakdown); err != nil {
			return err
		}
		reports = append(reports, r)
		return nil
	})
	if err != nil {
		return types.Collection[types.EnergyReport]{}, err
	}

	return types.Collection[types.EnergyReport]{
		Data:       reports,
		Count:      uint64(len(reports)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(total),
	}, nil
}

// SetReportDelivery flips the delivery flag for a channel. Resending is a
// delivery-status update, never a regeneration.
func (s *Storage) SetReportDelivery(ctx context.Context, reportID string, channel types.Channel) error {
	column := ""
	switch channel {
	case types.ChannelEmail:
		column = "sent_via_email"
	case types.ChannelWhatsApp:
		column = "sent_via_whatsapp"
	default:
		return errors.New("unknown delivery channel")
	}

	tag, err := s.pool.Exec(ctx, `
		UPDATE energy_reports SET `+column+` = TRUE
		WHERE report_id = @report_id
	`, pgx.NamedArgs{"report_id": reportID})
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}
