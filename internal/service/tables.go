// Package service provides the Cacti to Zabbix mapping logic of the template generator.
package service

import "zabbix-template/internal/model"

// Cacti CDEF names that translate to a custom item multiplier.
const (
	cdefNegate       = "Negate"
	cdefTurnIntoBits = "Turn Into Bits"
)

// Cacti data source types (data_source_type_id).
const (
	dsTypeGauge    = 1
	dsTypeCounter  = 2
	dsTypeDerive   = 3
	dsTypeAbsolute = 4
)

// Zabbix storage type names as written in the extra items file.
const (
	storageNameAsIs           = "As is"
	storageNameSpeedPerSecond = "Delta (speed per second)"
	storageNameSimpleChange   = "Delta (simple change)"
)

// drawTypeOf maps a Cacti graph item type to a Zabbix draw style.
// Other Zabbix styles (dot, dashed, gradient) have no Cacti counterpart.
func drawTypeOf(cactiType string) (model.DrawType, bool) {
	switch cactiType {
	case "LINE1", "STACK":
		return model.DrawTypeLine, true
	case "LINE2":
		return model.DrawTypeBoldLine, true
	case "AREA":
		return model.DrawTypeFilledRegion, true
	default:
		return 0, false
	}
}

// multiplierOf maps a Cacti CDEF to an item multiplier.
// ok is false for unsupported CDEFs; factor is nil when no CDEF is set.
func multiplierOf(cdef string) (factor *int, ok bool) {
	switch cdef {
	case "":
		return nil, true
	case cdefNegate:
		f := -1
		return &f, true
	case cdefTurnIntoBits:
		f := 8
		return &f, true
	default:
		return nil, false
	}
}

// storageOfDataSource maps a Cacti data source type to a Zabbix storage type.
// ABSOLUTE resets on every read and has no Zabbix equivalent.
func storageOfDataSource(typeID int) (model.StorageType, bool) {
	switch typeID {
	case dsTypeGauge:
		return model.StorageAsIs, true
	case dsTypeCounter, dsTypeDerive:
		return model.StorageSpeedPerSecond, true
	case dsTypeAbsolute:
		return 0, false
	default:
		return model.StorageSimpleChange, true
	}
}

// storageOfName maps a storage type name from the extra items file.
// An empty name means "As is".
func storageOfName(name string) (model.StorageType, bool) {
	switch name {
	case "", storageNameAsIs:
		return model.StorageAsIs, true
	case storageNameSpeedPerSecond:
		return model.StorageSpeedPerSecond, true
	case storageNameSimpleChange:
		return model.StorageSimpleChange, true
	default:
		return 0, false
	}
}

// unitOfBase maps a Cacti graph base value to a Zabbix unit.
func unitOfBase(base int) (string, bool) {
	switch base {
	case 1000:
		return "", true
	case 1024:
		return "B", true
	default:
		return "", false
	}
}

// severityOf maps a trigger severity name to a Zabbix priority.
// An empty name means "Not classified".
func severityOf(name string) (model.Severity, bool) {
	switch name {
	case "", "Not_classified":
		return model.SeverityNotClassified, true
	case "Information":
		return model.SeverityInformation, true
	case "Warning":
		return model.SeverityWarning, true
	case "Average":
		return model.SeverityAverage, true
	case "High":
		return model.SeverityHigh, true
	case "Disaster":
		return model.SeverityDisaster, true
	default:
		return 0, false
	}
}
