package telemetry

import (
	"encoding/json"
	"time"
)

type ReadingReceived struct {
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

func (r *ReadingReceived) ContentType() string {
	return "application/json"
}
func (r *ReadingReceived) TopicName() string {
	return "telemetry.reading"
}
func (r *ReadingReceived) Body() []byte {
	b, _ := json.Marshal(r)
	return b
}
