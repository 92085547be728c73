// Package model provides data models for the template generator.
package model

// TriggerDefinition is an alert trigger loaded from the triggers YAML file.
type TriggerDefinition struct {
	Name         string   `yaml:"name" validate:"required"`
	Expression   string   `yaml:"expression" validate:"required"` // may reference the TEMPLATE placeholder
	Severity     string   `yaml:"severity,omitempty" validate:"omitempty,oneof=Not_classified Information Warning Average High Disaster"`
	Dependencies []string `yaml:"dependencies,omitempty" validate:"dive,required"` // names of other triggers
}

// ExtraItemDefinition is an item that has no Cacti data source, loaded from
// the extra items YAML file. Only used for discovery templates.
type ExtraItemDefinition struct {
	Key                   string   `yaml:"key" validate:"required"`
	Name                  string   `yaml:"name" validate:"required"`
	IsText                bool     `yaml:"is_text,omitempty"`
	IsUnsigned            bool     `yaml:"is_unsigned,omitempty"`
	IsBool                bool     `yaml:"is_bool,omitempty"`
	ValueStorageType      string   `yaml:"value_storage_type,omitempty" validate:"omitempty,oneof='As is' 'Delta (speed per second)' 'Delta (simple change)'"`
	UpdateInterval        *int     `yaml:"update_interval,omitempty" validate:"omitempty,gte=0"`
	Unit                  string   `yaml:"unit,omitempty"`
	PrototypeSuffix       string   `yaml:"prototype_suffix,omitempty"`
	DoNotConvertToTrapper bool     `yaml:"do_not_convert_to_trapper,omitempty"`
	Category              Category `yaml:"category,omitempty" validate:"omitempty,oneof=common slave query_counter wsrep"`
}

// KeyTable maps a Cacti item name to the argument understood by the
// stats wrapper script (e.g. "Threads_connected" -> "a1").
type KeyTable map[string]string
