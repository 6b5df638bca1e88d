package storage

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
)

type ConditionFunc func(*Condition) *Condition

type Condition struct {
	DeviceID   string
	ClientID   string
	AlertID    string
	ReportID   string
	TariffID   string
	Severity   string
	Status     string
	Channel    string
	ReportType string

	Active *bool

	From time.Time
	To   time.Time

	StartDate string
	EndDate   string

	timeColumn string

	sortBy    string
	sortOrder string

	offset *int
	limit  *int
}

func (c Condition) SortBy() string {
	return c.sortBy
}

func (c Condition) SortOrder() string {
	if c.sortOrder == "" {
		return "ASC"
	}
	return c.sortOrder
}

func (c Condition) Offset() int {
	if c.offset != nil {
		return *c.offset
	}
	return 0
}

func (c Condition) Limit() int {
	if c.limit != nil {
		return *c.limit
	}
	return 0
}

func (c Condition) OrderBy() string {
	if c.sortBy == "" {
		return ""
	}
	return fmt.Sprintf("ORDER BY %s %s ", c.sortBy, c.SortOrder())
}

func (c Condition) OffsetLimit() string {
	offsetLimit := ""

	if c.offset != nil {
		offsetLimit += fmt.Sprintf("OFFSET %d ", *c.offset)
	}
	if c.limit != nil {
		offsetLimit += fmt.Sprintf("LIMIT %d ", *c.limit)
	}

	return offsetLimit
}

func (c Condition) NamedArgs() pgx.NamedArgs {
	args := pgx.NamedArgs{}

	if c.DeviceID != "" {
		args["device_id"] = c.DeviceID
	}
	if c.ClientID != "" {
		args["client_id"] = c.ClientID
	}
	if c.AlertID != "" {
		args["alert_id"] = c.AlertID
	}
	if c.ReportID != "" {
		args["report_id"] = c.ReportID
	}
	if c.TariffID != "" {
		args["tariff_id"] = c.TariffID
	}
	if c.Severity != "" {
		args["severity"] = c.Severity
	}
	if c.Status != "" {
		args["status"] = c.Status
	}
	if c.Channel != "" {
		args["channel"] = c.Channel
	}
	if c.ReportType != "" {
		args["report_type"] = c.ReportType
	}
	if c.Active != nil {
		args["active"] = *c.Active
	}
	if !c.From.IsZero() {
		args["from"] = c.From.UTC()
	}
	if !c.To.IsZero() {
		args["to"] = c.To.UTC()
	}
	if c.StartDate != "" {
		args["start_date"] = c.StartDate
	}
	if c.EndDate != "" {
		args["end_date"] = c.EndDate
	}

	return args
}

// TimeColumn names the timestamp column the From/To bounds apply to. Query
// functions override the default for tables that key on something other
// than ts.
func (c Condition) TimeColumn() string {
	if c.timeColumn == "" {
		return "ts"
	}
	return c.timeColumn
}

// Where renders the clauses for the condition fields that are set. Each
// field maps to a single column, so callers only pass conditions that exist
// on the table they query.
func (c Condition) Where() string {
	where := []string{}

	if c.DeviceID != "" {
		where = append(where, "device_id = @device_id")
	}
	if c.ClientID != "" {
		where = append(where, "client_id = @client_id")
	}
	if c.AlertID != "" {
		where = append(where, "alert_id = @alert_id")
	}
	if c.ReportID != "" {
		where = append(where, "report_id = @report_id")
	}
	if c.TariffID != "" {
		where = append(where, "tariff_id = @tariff_id")
	}
	if c.Severity != "" {
		where = append(where, "severity = @severity")
	}
	if c.Status != "" {
		where = append(where, "status = @status")
	}
	if c.Channel != "" {
		where = append(where, "channel = @channel")
	}
	if c.ReportType != "" {
		where = append(where, "report_type = @report_type")
	}
	if c.Active != nil {
		where = append(where, "active = @active")
	}
	if !c.From.IsZero() {
		where = append(where, c.TimeColumn()+" >= @from")
	}
	if !c.To.IsZero() {
		where = append(where, c.TimeColumn()+" <= @to")
	}
	if c.StartDate != "" {
		where = append(where, "date >= @start_date")
	}
	if c.EndDate != "" {
		where = append(where, "date <= @end_date")
	}

	if len(where) == 0 {
		return ""
	}

	return "WHERE " + strings.Join(where, " AND ")
}

func WithDeviceID(deviceID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.DeviceID = deviceID
		return c
	}
}

func WithClientID(clientID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.ClientID = clientID
		return c
	}
}

func WithAlertID(alertID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.AlertID = alertID
		return c
	}
}

func WithReportID(reportID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.ReportID = reportID
		return c
	}
}

func WithTariffID(tariffID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.TariffID = tariffID
		return c
	}
}

func WithSeverity(severity string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Severity = severity
		return c
	}
}

func WithStatus(status string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Status = status
		return c
	}
}

func WithChannel(channel string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Channel = channel
		return c
	}
}

func WithReportType(reportType string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.ReportType = reportType
		return c
	}
}

func WithActive(active bool) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Active = &active
		return c
	}
}

func WithTimeRange(from, to time.Time) ConditionFunc {
	return func(c *Condition) *Condition {
		c.From = from
		c.To = to
		return c
	}
}

func WithNotBefore(from time.Time) ConditionFunc {
	return func(c *Condition) *Condition {
		c.From = from
		return c
	}
}

func WithNotAfter(to time.Time) ConditionFunc {
	return func(c *Condition) *Condition {
		c.To = to
		return c
	}
}

// WithDateRange bounds DATE columns, inclusive of both endpoints.
func WithDateRange(start, end time.Time) ConditionFunc {
	return func(c *Condition) *Condition {
		c.StartDate = start.Format(time.DateOnly)
		c.EndDate = end.Format(time.DateOnly)
		return c
	}
}

func WithSortBy(sortBy string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.sortBy = sortBy
		return c
	}
}

func WithSortDesc(desc bool) ConditionFunc {
	return func(c *Condition) *Condition {
		if desc {
			c.sortOrder = "DESC"
		} else {
			c.sortOrder = "ASC"
		}
		return c
	}
}

func WithOffset(offset int) ConditionFunc {
	return func(c *Condition) *Condition {
		c.offset = &offset
		return c
	}
}

func WithLimit(limit int) ConditionFunc {
	return func(c *Condition) *Condition {
		c.limit = &limit
		return c
	}
}

func ParseConditions(params map[string][]string) []ConditionFunc {
	conditions := make([]ConditionFunc, 0)

	for k, v := range params {
		if len(v) == 0 || v[0] == "" {
			continue
		}

		switch strings.ToLower(k) {
		case "device_id":
			conditions = append(conditions, WithDeviceID(v[0]))
		case "client_id":
			conditions = append(conditions, WithClientID(v[0]))
		case "severity":
			conditions = append(conditions, WithSeverity(strings.ToUpper(v[0])))
		case "status":
			conditions = append(conditions, WithStatus(strings.ToUpper(v[0])))
		case "channel":
			conditions = append(conditions, WithChannel(strings.ToLower(v[0])))
		case "report_type":
			conditions = append(conditions, WithReportType(strings.ToUpper(v[0])))
		case "active":
			active, _ := strconv.ParseBool(v[0])
			conditions = append(conditions, WithActive(active))
		case "limit":
			limit, _ := strconv.Atoi(v[0])
			conditions = append(conditions, WithLimit(limit))
		case "offset":
			offset, _ := strconv.Atoi(v[0])
			conditions = append(conditions, WithOffset(offset))
		case "from":
			if t, ok := parseTimestamp(v[0]); ok {
				conditions = append(conditions, WithNotBefore(t))
			}
		case "to":
			if t, ok := parseTimestamp(v[0]); ok {
				conditions = append(conditions, WithNotAfter(t))
			}
		}
	}

	return conditions
}

func parseTimestamp(v string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.DateOnly, v); err == nil {
		return t, true
	}
	return time.Time{}, false
}
