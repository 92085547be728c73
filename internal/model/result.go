// Package model provides data models for the template generator.
package model

import "fmt"

// Result is the output of one generator run, handed to a report writer.
// Export is set for the XML modes, UserParameters for the config mode.
type Result struct {
	Mode           OutputMode
	Export         *Export
	UserParameters []*UserParameter
}

// UserParameter is a Zabbix agent user parameter.
type UserParameter struct {
	Key     string
	Command string
}

// String returns the agent configuration line.
func (p *UserParameter) String() string {
	return fmt.Sprintf("UserParameter=%s,%s", p.Key, p.Command)
}
