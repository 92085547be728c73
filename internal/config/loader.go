// Package config provides configuration management for the template generator.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding configuration,
// e.g. ZBXTMPL_INPUTS_DEFINITION.
const EnvPrefix = "ZBXTMPL"

// Load builds the configuration from defaults, an optional YAML file and
// environment variables. Environment variables take precedence over file values.
// An empty configPath means "defaults and environment only".
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults first
	setDefaults(v)

	// Configure environment variable binding
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", configPath)
		}

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into Config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults sets default values for all configuration options.
func setDefaults(v *viper.Viper) {
	// Inputs, relative to the working directory
	v.SetDefault("inputs.definition", "cacti/definitions/mysql.def")
	v.SetDefault("inputs.triggers", "zabbix/triggers/mysql.yml")
	v.SetDefault("inputs.extra_items", "zabbix/items/mysql.yml")
	v.SetDefault("inputs.key_table", "cacti/scripts/ss_get_mysql_stats.php")
	v.SetDefault("inputs.require_triggers", false)

	v.SetDefault("zabbix.version", "3.0")

	v.SetDefault("template.vendor", "Percona")
	v.SetDefault("template.group", "Percona Templates")
	v.SetDefault("template.process", "mysqld")

	// Intervals in seconds
	v.SetDefault("intervals.item", 10)
	v.SetDefault("intervals.extra_item", 10)
	v.SetDefault("intervals.discovery_rule", 10)

	// Retention in days
	v.SetDefault("retention.history_days", 90)
	v.SetDefault("retention.trends_days", 365)

	v.SetDefault("agent.script_path", "/var/lib/zabbix/percona/scripts")
	v.SetDefault("agent.wrapper", "get_mysql_stats_wrapper.sh")

	// Logging defaults; warn keeps stderr quiet when output is piped
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")
}
