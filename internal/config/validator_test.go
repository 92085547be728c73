// Package config provides configuration management for the template generator.
package config

import (
	"strings"
	"testing"
)

// newValidConfig creates a valid configuration for testing.
func newValidConfig() *Config {
	return &Config{
		Inputs: InputsConfig{
			Definition: "cacti/definitions/mysql.def",
			Triggers:   "zabbix/triggers/mysql.yml",
			ExtraItems: "zabbix/items/mysql.yml",
			KeyTable:   "cacti/scripts/ss_get_mysql_stats.php",
		},
		Zabbix:   ZabbixConfig{Version: "3.0"},
		Template: TemplateConfig{Vendor: "Percona", Group: "Percona Templates", Process: "mysqld"},
		Intervals: IntervalsConfig{
			Item:          10,
			ExtraItem:     10,
			DiscoveryRule: 10,
		},
		Retention: RetentionConfig{HistoryDays: 90, TrendsDays: 365},
		Agent: AgentConfig{
			ScriptPath: "/var/lib/zabbix/percona/scripts",
			Wrapper:    "get_mysql_stats_wrapper.sh",
		},
		Logging: LoggingConfig{Level: "warn", Format: "console"},
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	if err := Validate(newValidConfig()); err != nil {
		t.Errorf("Validate() error = %v, want nil for valid config", err)
	}
}

func TestValidate_FieldErrors(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		field   string
		message string
	}{
		{
			name:    "missing definition path",
			modify:  func(c *Config) { c.Inputs.Definition = "" },
			field:   "inputs.definition",
			message: "required",
		},
		{
			name:    "missing script path",
			modify:  func(c *Config) { c.Agent.ScriptPath = "" },
			field:   "agent.script_path",
			message: "required",
		},
		{
			name:    "zero discovery interval",
			modify:  func(c *Config) { c.Intervals.DiscoveryRule = 0 },
			field:   "intervals.discovery_rule",
			message: "greater than or equal to 1",
		},
		{
			name:    "negative history",
			modify:  func(c *Config) { c.Retention.HistoryDays = -1 },
			field:   "retention.history_days",
			message: "greater than or equal to 0",
		},
		{
			name:    "invalid log level",
			modify:  func(c *Config) { c.Logging.Level = "trace" },
			field:   "logging.level",
			message: "one of",
		},
		{
			name:    "invalid log format",
			modify:  func(c *Config) { c.Logging.Format = "xml" },
			field:   "logging.format",
			message: "one of",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newValidConfig()
			tt.modify(cfg)

			err := Validate(cfg)
			if err == nil {
				t.Fatal("Validate() should return error")
			}

			errStr := err.Error()
			if !strings.Contains(errStr, tt.field) {
				t.Errorf("error should mention field %q, got: %s", tt.field, errStr)
			}
			if !strings.Contains(errStr, tt.message) {
				t.Errorf("error should mention %q, got: %s", tt.message, errStr)
			}
		})
	}
}

func TestValidate_TrendsShorterThanHistory(t *testing.T) {
	cfg := newValidConfig()
	cfg.Retention.HistoryDays = 400

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Validate() should reject trends shorter than history")
	}

	validationErrs, ok := err.(ValidationErrors)
	if !ok {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if len(validationErrs) != 1 || validationErrs[0].Tag != "retention_order" {
		t.Errorf("unexpected errors: %v", validationErrs)
	}
}

func TestValidate_MultipleErrors(t *testing.T) {
	cfg := newValidConfig()
	cfg.Inputs.Triggers = ""
	cfg.Zabbix.Version = ""

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Validate() should return error")
	}

	validationErrs, ok := err.(ValidationErrors)
	if !ok {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if len(validationErrs) != 2 {
		t.Errorf("expected 2 errors, got %d: %v", len(validationErrs), validationErrs)
	}
}

func TestValidationErrors_Error(t *testing.T) {
	var empty ValidationErrors
	if empty.Error() != "" {
		t.Errorf("empty ValidationErrors should render as empty string")
	}

	errs := ValidationErrors{
		{Field: "intervals.item", Tag: "gte", Message: "value must be greater than or equal to 1"},
	}
	got := errs.Error()
	if !strings.HasPrefix(got, "config validation failed:") {
		t.Errorf("unexpected prefix: %s", got)
	}
	if !strings.Contains(got, "  - intervals.item: value must be greater than or equal to 1") {
		t.Errorf("unexpected body: %s", got)
	}
}

func TestFormatFieldName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Config.inputs.definition", "inputs.definition"},
		{"Config.agent.script_path", "agent.script_path"},
		{"TriggerDefinition.severity", "severity"},
		{"name", "name"},
	}

	for _, tt := range tests {
		if got := formatFieldName(tt.input); got != tt.want {
			t.Errorf("formatFieldName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
