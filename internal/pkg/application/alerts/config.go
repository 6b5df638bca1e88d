package alerts

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v2"
)

// Rule describes one threshold. Metric names match the reading fields:
// voltage, current, power, frequency, power_factor, battery_voltage,
// battery_soc. Operator is gt or lt.
type Rule struct {
	Metric    string  `yaml:"metric"`
	Operator  string  `yaml:"operator"`
	Threshold float64 `yaml:"threshold"`
	Severity  string  `yaml:"severity"`
	AlertType string  `yaml:"alertType"`
	Message   string  `yaml:"message"`
}

type Configuration struct {
	Rules []Rule `yaml:"rules"`
}

func LoadConfiguration(configFile string) (*Configuration, error) {
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		return nil, fmt.Errorf("threshold configuration (%s) could not be found", configFile)
	}

	f, err := os.Open(configFile)
	if err != nil {
		return nil, fmt.Errorf("threshold configuration (%s) could not be opened", configFile)
	}
	defer f.Close()

	return NewConfiguration(f)
}

func NewConfiguration(r io.Reader) (*Configuration, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	cfg := &Configuration{}
	err = yaml.Unmarshal(b, cfg)
	if err != nil {
		return nil, err
	}

	for _, rule := range cfg.Rules {
		if rule.Operator != "gt" && rule.Operator != "lt" {
			return nil, fmt.Errorf("rule %s/%s: unknown operator %q", rule.Metric, rule.AlertType, rule.Operator)
		}
	}

	return cfg, nil
}

// DefaultConfiguration mirrors the thresholds the system shipped with:
// mains voltage outside 180-250V, overload above 5kW and battery state of
// charge below 50% (info) or 20% (critical).
func DefaultConfiguration() *Configuration {
	return &Configuration{
		Rules: []Rule{
			{Metric: "voltage", Operator: "gt", Threshold: 250, Severity: "WARNING", AlertType: "HIGH_VOLTAGE", Message: "Voltage above safe limit"},
			{Metric: "voltage", Operator: "lt", Threshold: 180, Severity: "WARNING", AlertType: "LOW_VOLTAGE", Message: "Voltage below safe limit"},
			{Metric: "power", Operator: "gt", Threshold: 5000, Severity: "WARNING", AlertType: "OVERLOAD", Message: "Power draw above rated capacity"},
			{Metric: "battery_soc", Operator: "lt", Threshold: 50, Severity: "INFO", AlertType: "BATTERY_LOW", Message: "Battery state of charge is getting low"},
			{Metric: "battery_soc", Operator: "lt", Threshold: 20, Severity: "CRITICAL", AlertType: "BATTERY_CRITICAL", Message: "Battery state of charge critically low"},
		},
	}
}
