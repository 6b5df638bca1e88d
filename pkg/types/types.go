package types

import (
	"encoding/json"
	"time"
)

type Device struct {
	DeviceID  string    `json:"deviceID"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Location  string    `json:"location,omitempty"`
	Active    bool      `json:"active"`
	LastSeen  time.Time `json:"lastSeen"`
	CreatedAt time.Time `json:"createdAt"`
}

type PowerReading struct {
	DeviceID       string    `json:"deviceID"`
	Voltage        float64   `json:"voltage"`
	Current        float64   `json:"current"`
	Power          float64   `json:"power"`
	Frequency      float64   `json:"frequency"`
	PowerFactor    float64   `json:"powerFactor"`
	BatteryVoltage *float64  `json:"batteryVoltage,omitempty"`
	BatterySOC     *float64  `json:"batterySoc,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}

type BatteryReading struct {
	DeviceID    string    `json:"deviceID"`
	Voltage     float64   `json:"voltage"`
	SOC         float64   `json:"soc"`
	Charging    bool      `json:"charging"`
	Temperature *float64  `json:"temperature,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

type DailyConsumption struct {
	DeviceID         string    `json:"deviceID"`
	Date             time.Time `json:"date"`
	TotalConsumption float64   `json:"totalConsumptionKwh"`
	AvgPower         float64   `json:"avgPower"`
	PeakPower        float64   `json:"peakPower"`
	MinPower         float64   `json:"minPower"`
	TotalCost        float64   `json:"totalCost"`
}

type Severity string

const (
	SeverityInfo     Severity = "INFO"
	SeverityWarning  Severity = "WARNING"
	SeverityCritical Severity = "CRITICAL"
)

type AlertStatus string

const (
	AlertActive       AlertStatus = "ACTIVE"
	AlertAcknowledged AlertStatus = "ACKNOWLEDGED"
	AlertResolved     AlertStatus = "RESOLVED"
)

type Alert struct {
	ID         string      `json:"id"`
	DeviceID   string      `json:"deviceID"`
	AlertType  string      `json:"alertType"`
	Message    string      `json:"message"`
	Value      *float64    `json:"value,omitempty"`
	Severity   Severity    `json:"severity"`
	Status     AlertStatus `json:"status"`
	ObservedAt time.Time   `json:"observedAt"`
	ResolvedAt *time.Time  `json:"resolvedAt,omitempty"`
}

type ReportFrequency string

const (
	FrequencyDaily   ReportFrequency = "DAILY"
	FrequencyWeekly  ReportFrequency = "WEEKLY"
	FrequencyMonthly ReportFrequency = "MONTHLY"
)

type Client struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Email           string          `json:"email,omitempty"`
	Phone           string          `json:"phone,omitempty"`
	WhatsAppNumber  string          `json:"whatsappNumber,omitempty"`
	Address         string          `json:"address,omitempty"`
	Active          bool            `json:"active"`
	WhatsAppAlerts  bool            `json:"receiveWhatsappAlerts"`
	EmailReports    bool            `json:"receiveEmailReports"`
	ReportFrequency ReportFrequency `json:"reportFrequency"`
	CreatedAt       time.Time       `json:"createdAt"`
}

type Tariff struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	RatePerKwh float64 `json:"ratePerKwh"`
	Currency   string  `json:"currency"`
	// time-of-day windows are modeled but costing applies the flat rate only
	TimeOfDayStart *string `json:"timeOfDayStart,omitempty"`
	TimeOfDayEnd   *string `json:"timeOfDayEnd,omitempty"`
	Active         bool    `json:"active"`
}

type ReportType string

const (
	ReportDaily   ReportType = "DAILY"
	ReportWeekly  ReportType = "WEEKLY"
	ReportMonthly ReportType = "MONTHLY"
	ReportCustom  ReportType = "CUSTOM"
)

type DeviceBreakdown struct {
	DeviceID       string  `json:"deviceID"`
	DeviceName     string  `json:"deviceName"`
	Consumption    float64 `json:"consumptionKwh"`
	Cost           float64 `json:"cost"`
	PeakPower      float64 `json:"peakPower"`
	UptimeHours    float64 `json:"uptimeHours"`
	Alerts         int     `json:"alerts"`
	CriticalAlerts int     `json:"criticalAlerts"`
}

type EnergyReport struct {
	ID                  string            `json:"id"`
	ClientID            string            `json:"clientID"`
	DeviceID            string            `json:"deviceID,omitempty"`
	ReportType          ReportType        `json:"reportType"`
	StartDate           time.Time         `json:"startDate"`
	EndDate             time.Time         `json:"endDate"`
	TotalConsumption    float64           `json:"totalConsumptionKwh"`
	TotalCost           float64           `json:"totalCost"`
	AvgDailyConsumption float64           `json:"avgDailyConsumption"`
	PeakPower           float64           `json:"peakPower"`
	AvgPowerFactor      float64           `json:"avgPowerFactor"`
	UptimeHours         float64           `json:"uptimeHours"`
	TotalAlerts         int               `json:"totalAlerts"`
	CriticalAlerts      int               `json:"criticalAlerts"`
	Currency            string            `json:"currency"`
	Breakdown           []DeviceBreakdown `json:"breakdown,omitempty"`
	GeneratedAt         time.Time         `json:"generatedAt"`
	SentViaEmail        bool              `json:"sentViaEmail"`
	SentViaWhatsApp     bool              `json:"sentViaWhatsapp"`
}

type Channel string

const (
	ChannelEmail    Channel = "email"
	ChannelWhatsApp Channel = "whatsapp"
)

type DeliveryStatus string

const (
	DeliveryPending   DeliveryStatus = "PENDING"
	DeliverySent      DeliveryStatus = "SENT"
	DeliveryFailed    DeliveryStatus = "FAILED"
	DeliveryDelivered DeliveryStatus = "DELIVERED"
	DeliverySkipped   DeliveryStatus = "SKIPPED"
)

type NotificationRecord struct {
	ID          string          `json:"id"`
	Recipient   string          `json:"recipient"`
	Body        string          `json:"body"`
	Channel     Channel         `json:"channel"`
	MessageType string          `json:"messageType"`
	Status      DeliveryStatus  `json:"status"`
	AlertID     string          `json:"alertID,omitempty"`
	ClientID    string          `json:"clientID,omitempty"`
	ReportID    string          `json:"reportID,omitempty"`
	Response    json.RawMessage `json:"response,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	SentAt      *time.Time      `json:"sentAt,omitempty"`
}

type Collection[T any] struct {
	Data       []T    `json:"data"`
	Count      uint64 `json:"count"`
	Offset     uint64 `json:"offset"`
	Limit      uint64 `json:"limit"`
	TotalCount uint64 `json:"totalCount"`
}
