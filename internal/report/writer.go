// Package report provides output generation for the template generator.
// It defines the ReportWriter interface and provides implementations for
// the XML template export and the agent configuration snippet.
package report

import (
	"io"

	"zabbix-template/internal/model"
)

// ReportWriter defines the interface for rendering a generator result.
type ReportWriter interface {
	// Write renders result to w. It returns an error if the result does
	// not carry the data this format needs or if writing fails.
	Write(w io.Writer, result *model.Result) error

	// Format returns the format identifier for this writer ("xml", "config").
	Format() string
}
