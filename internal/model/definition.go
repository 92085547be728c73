// Package model provides data models for the template generator.
package model

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Definition is a Cacti graph-template definition as loaded from a .def file.
type Definition struct {
	Name   string           `yaml:"name"`   // e.g. "MySQL Server"
	Graphs []*GraphTemplate `yaml:"graphs"` // graph templates in file order
}

// AppName returns the application prefix used to namespace item keys.
// It is the first word of the definition name ("MySQL Server" -> "MySQL").
func (d *Definition) AppName() string {
	fields := strings.Fields(d.Name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// TemplateName returns the Zabbix template name, e.g. "Percona MySQL Server Template".
func (d *Definition) TemplateName(vendor string) string {
	if vendor == "" {
		return fmt.Sprintf("%s Template", d.Name)
	}
	return fmt.Sprintf("%s %s Template", vendor, d.Name)
}

// GraphTemplate is a single Cacti graph template.
type GraphTemplate struct {
	Name        string      `yaml:"name"`
	BaseValue   Number      `yaml:"base_value"` // 1000 or 1024
	DataSources DataSources `yaml:"dt"`         // data template, keyed by item name
	Series      []*Series   `yaml:"items"`      // drawn series
}

// Series is a line or area drawn on a Cacti graph.
type Series struct {
	Item  string `yaml:"item"`  // data source name
	Color string `yaml:"color"` // RRGGBB
	Type  string `yaml:"type"`  // LINE1, LINE2, AREA, STACK, ...
	CDEF  string `yaml:"cdef"`  // optional transform ("Negate", "Turn Into Bits")
}

// DataSource is one entry of a graph data template.
type DataSource struct {
	Name   string `yaml:"-"`
	TypeID Number `yaml:"data_source_type_id"` // 1 GAUGE, 2 COUNTER, 3 DERIVE, 4 ABSOLUTE
}

// dataTemplateMetaKeys are data template entries that are not data sources.
var dataTemplateMetaKeys = map[string]bool{
	"hash":  true,
	"input": true,
}

// DataSources is the ordered set of data sources of a graph.
// Document order is kept so generated output is stable between runs.
type DataSources []*DataSource

// UnmarshalYAML implements yaml.Unmarshaler, decoding a mapping of
// item name -> data source while skipping the hash/input metadata keys.
func (d *DataSources) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: data template must be a mapping", value.Line)
	}

	result := make(DataSources, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		name := value.Content[i].Value
		if dataTemplateMetaKeys[name] {
			continue
		}
		ds := &DataSource{Name: name}
		if err := value.Content[i+1].Decode(ds); err != nil {
			return fmt.Errorf("data source %s: %w", name, err)
		}
		result = append(result, ds)
	}

	*d = result
	return nil
}

// Number is an integer that may be written quoted ('1000') or bare (1000).
type Number int

// UnmarshalYAML implements yaml.Unmarshaler.
func (n *Number) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a number", value.Line)
	}
	v, err := strconv.Atoi(strings.TrimSpace(value.Value))
	if err != nil {
		return fmt.Errorf("line %d: invalid number %q", value.Line, value.Value)
	}
	*n = Number(v)
	return nil
}

// Int returns n as an int.
func (n Number) Int() int {
	return int(n)
}
