// Package model provides data models for the template generator.
package model

import "fmt"

// ItemType is the Zabbix item collection type.
type ItemType int

const (
	ItemTypeZabbixAgent       ItemType = 0
	ItemTypeSNMPv1            ItemType = 1
	ItemTypeTrapper           ItemType = 2
	ItemTypeSimpleCheck       ItemType = 3
	ItemTypeSNMPv2            ItemType = 4
	ItemTypeInternal          ItemType = 5
	ItemTypeSNMPv3            ItemType = 6
	ItemTypeZabbixAgentActive ItemType = 7
	ItemTypeAggregate         ItemType = 8
	ItemTypeExternalCheck     ItemType = 10
	ItemTypeDatabaseMonitor   ItemType = 11
	ItemTypeIPMIAgent         ItemType = 12
	ItemTypeSSHAgent          ItemType = 13
	ItemTypeTelnetAgent       ItemType = 14
	ItemTypeCalculated        ItemType = 15
	ItemTypeJMXAgent          ItemType = 16
	ItemTypeSNMPTrap          ItemType = 17
)

// ValueType is the type of information an item stores.
type ValueType int

const (
	ValueTypeFloat     ValueType = 0 // Numeric (float)
	ValueTypeCharacter ValueType = 1
	ValueTypeLog       ValueType = 2
	ValueTypeUnsigned  ValueType = 3 // Numeric (unsigned)
	ValueTypeText      ValueType = 4
)

// DataType is the representation of an unsigned numeric item.
type DataType int

const (
	DataTypeDecimal     DataType = 0
	DataTypeOctal       DataType = 1
	DataTypeHexadecimal DataType = 2
	DataTypeBoolean     DataType = 3
)

// StorageType is the Zabbix "store value" (delta) setting of an item.
type StorageType int

const (
	StorageAsIs           StorageType = 0 // As is
	StorageSpeedPerSecond StorageType = 1 // Delta (speed per second)
	StorageSimpleChange   StorageType = 2 // Delta (simple change)
)

// GraphType is the Zabbix graph type.
type GraphType int

const (
	GraphTypeNormal   GraphType = 0
	GraphTypeStacked  GraphType = 1
	GraphTypePie      GraphType = 2
	GraphTypeExploded GraphType = 3
)

// DrawType is the draw style of a graph item.
type DrawType int

const (
	DrawTypeLine         DrawType = 0
	DrawTypeFilledRegion DrawType = 1
	DrawTypeBoldLine     DrawType = 2
	DrawTypeDot          DrawType = 3
	DrawTypeDashedLine   DrawType = 4
	DrawTypeGradientLine DrawType = 5
)

// CalcFunction selects which value of a graph item is drawn.
type CalcFunction int

const (
	CalcFunctionMin CalcFunction = 1
	CalcFunctionAvg CalcFunction = 2
	CalcFunctionMax CalcFunction = 4
	CalcFunctionAll CalcFunction = 7
)

// YAxisSide is the side of the graph a series is scaled against.
type YAxisSide int

const (
	YAxisSideLeft  YAxisSide = 0
	YAxisSideRight YAxisSide = 1
)

// Severity is the Zabbix trigger priority.
type Severity int

const (
	SeverityNotClassified Severity = 0
	SeverityInformation   Severity = 1
	SeverityWarning       Severity = 2
	SeverityAverage       Severity = 3
	SeverityHigh          Severity = 4
	SeverityDisaster      Severity = 5
)

// Category groups items into discovery rules.
type Category string

const (
	CategoryCommon       Category = "common"        // instances[]
	CategorySlave        Category = "slave"         // replication
	CategoryQueryCounter Category = "query_counter" // query response time counter
	CategoryWsrep        Category = "wsrep"         // Galera cluster
)

// OutputMode selects what the generator prints.
type OutputMode string

const (
	OutputModeXML    OutputMode = "xml"
	OutputModeConfig OutputMode = "config"
	OutputModeXMLLLD OutputMode = "xml-lld"
)

// OutputModes lists the supported modes in the order shown in help text.
func OutputModes() []OutputMode {
	return []OutputMode{OutputModeXML, OutputModeConfig, OutputModeXMLLLD}
}

// ParseOutputMode returns the mode named s.
func ParseOutputMode(s string) (OutputMode, error) {
	for _, m := range OutputModes() {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("invalid output type %q", s)
}

// Format returns the name of the report writer that renders this mode.
func (m OutputMode) Format() string {
	if m == OutputModeConfig {
		return "config"
	}
	return "xml"
}
