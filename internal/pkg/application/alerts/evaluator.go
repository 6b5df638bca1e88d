package alerts

import (
	"fmt"

	"github.com/gridpulse/power-monitor/pkg/types"
)

// Evaluator checks readings against the configured thresholds. Evaluation
// is stateless: every crossing yields an alert, regardless of what earlier
// readings produced.
type Evaluator struct {
	rules []Rule
}

func NewEvaluator(cfg *Configuration) *Evaluator {
	if cfg == nil {
		cfg = DefaultConfiguration()
	}

	return &Evaluator{rules: cfg.Rules}
}

func (e *Evaluator) Evaluate(r types.PowerReading) []types.Alert {
	metrics := map[string]*float64{
		"voltage":         &r.Voltage,
		"current":         &r.Current,
		"power":           &r.Power,
		"frequency":       &r.Frequency,
		"power_factor":    &r.PowerFactor,
		"battery_voltage": r.BatteryVoltage,
		"battery_soc":     r.BatterySOC,
	}

	alerts := make([]types.Alert, 0)

	for _, rule := range e.rules {
		value, ok := metrics[rule.Metric]
		if !ok || value == nil {
			continue
		}

		if !crossed(rule, *value) {
			continue
		}

		v := *value

		alerts = append(alerts, types.Alert{
			DeviceID:   r.DeviceID,
			AlertType:  rule.AlertType,
			Message:    fmt.Sprintf("%s (%s %.2f)", rule.Message, rule.Metric, v),
			Value:      &v,
			Severity:   types.Severity(rule.Severity),
			Status:     types.AlertActive,
			ObservedAt: r.Timestamp,
		})
	}

	return alerts
}

func crossed(rule Rule, value float64) bool {
	switch rule.Operator {
	case "gt":
		return value > rule.Threshold
	case "lt":
		return value < rule.Threshold
	}
	return false
}
