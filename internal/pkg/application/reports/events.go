package reports

import (
	"encoding/json"
	"time"
)

type ReportGenerated struct {
	ReportID   string    `json:"reportID"`
	ClientID   string    `json:"clientID"`
	ReportType string    `json:"reportType"`
	Timestamp  time.Time `json:"timestamp"`
}

func (r *ReportGenerated) ContentType() string {
	return "application/json"
}
func (r *ReportGenerated) TopicName() string {
	return "reports.reportGenerated"
}
func (r *ReportGenerated) Body() []byte {
	b, _ := json.Marshal(r)
	return b
}
