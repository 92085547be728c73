// Package config provides configuration management for the template generator.
package config

// Config is the root configuration structure for the template generator.
type Config struct {
	Inputs    InputsConfig    `mapstructure:"inputs"`
	Zabbix    ZabbixConfig    `mapstructure:"zabbix"`
	Template  TemplateConfig  `mapstructure:"template"`
	Intervals IntervalsConfig `mapstructure:"intervals"`
	Retention RetentionConfig `mapstructure:"retention"`
	Agent     AgentConfig     `mapstructure:"agent"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// InputsConfig contains the locations of the input files.
// Relative paths are resolved against the working directory.
type InputsConfig struct {
	Definition      string `mapstructure:"definition" validate:"required"`  // Cacti .def file
	Triggers        string `mapstructure:"triggers" validate:"required"`    // triggers YAML
	ExtraItems      string `mapstructure:"extra_items" validate:"required"` // extra items YAML
	KeyTable        string `mapstructure:"key_table" validate:"required"`   // PHP script with the $keys table
	RequireTriggers bool   `mapstructure:"require_triggers"`                // fail when the triggers file is missing
}

// ZabbixConfig contains settings of the target Zabbix server.
type ZabbixConfig struct {
	Version string `mapstructure:"version" validate:"required"`
}

// TemplateConfig contains naming settings of the generated template.
type TemplateConfig struct {
	Vendor  string `mapstructure:"vendor"`                    // template name prefix
	Group   string `mapstructure:"group" validate:"required"` // host group
	Process string `mapstructure:"process" validate:"required"`
}

// IntervalsConfig contains update intervals in seconds.
type IntervalsConfig struct {
	Item          int `mapstructure:"item" validate:"gte=1"`
	ExtraItem     int `mapstructure:"extra_item" validate:"gte=1"`
	DiscoveryRule int `mapstructure:"discovery_rule" validate:"gte=1"`
}

// RetentionConfig contains history and trend storage periods in days.
type RetentionConfig struct {
	HistoryDays int `mapstructure:"history_days" validate:"gte=0"`
	TrendsDays  int `mapstructure:"trends_days" validate:"gte=0"`
}

// AgentConfig contains settings used for UserParameter lines.
type AgentConfig struct {
	ScriptPath string `mapstructure:"script_path" validate:"required"`
	Wrapper    string `mapstructure:"wrapper" validate:"required"`
}

// LoggingConfig contains configurations for logging.
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=json console"`
}
