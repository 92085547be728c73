// Package report provides output generation for the template generator.
package report

import (
	"fmt"
	"sort"
	"strings"

	"zabbix-template/internal/report/agentconf"
	"zabbix-template/internal/report/xmlexport"
)

// Registry manages report writers for different formats.
type Registry struct {
	writers map[string]ReportWriter
}

// NewRegistry creates a registry with the XML and agent config writers.
func NewRegistry() *Registry {
	xmlWriter := xmlexport.NewWriter()
	configWriter := agentconf.NewWriter()

	r := &Registry{
		writers: make(map[string]ReportWriter),
	}

	// Register writers using their Format() return values
	r.writers[xmlWriter.Format()] = xmlWriter
	r.writers[configWriter.Format()] = configWriter

	return r
}

// Get returns a writer for the specified format.
// Format names are case-insensitive.
func (r *Registry) Get(format string) (ReportWriter, error) {
	normalizedFormat := strings.ToLower(strings.TrimSpace(format))

	writer, ok := r.writers[normalizedFormat]
	if !ok {
		return nil, fmt.Errorf("unsupported output format %q, supported formats: %s",
			format, strings.Join(r.GetAll(), ", "))
	}

	return writer, nil
}

// GetAll returns all supported format names in sorted order.
func (r *Registry) GetAll() []string {
	formats := make([]string, 0, len(r.writers))
	for format := range r.writers {
		formats = append(formats, format)
	}
	sort.Strings(formats)
	return formats
}

// Has checks if the specified format is supported.
func (r *Registry) Has(format string) bool {
	_, ok := r.writers[strings.ToLower(strings.TrimSpace(format))]
	return ok
}
