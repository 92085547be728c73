// Package xmlexport renders a Zabbix template export as an XML document.
// It implements the report.ReportWriter interface.
package xmlexport

import (
	"encoding/xml"
	"fmt"
	"io"

	"zabbix-template/internal/model"
)

// indent is the per-level indentation of the document.
const indent = "  "

// Writer implements report.ReportWriter for the Zabbix XML format.
type Writer struct{}

// NewWriter creates a new XML writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Format returns "xml".
func (w *Writer) Format() string {
	return "xml"
}

// Write writes the XML declaration followed by the <zabbix_export> document.
func (w *Writer) Write(out io.Writer, result *model.Result) error {
	if result == nil || result.Export == nil {
		return fmt.Errorf("result has no template export")
	}

	if _, err := io.WriteString(out, xml.Header); err != nil {
		return fmt.Errorf("failed to write XML header: %w", err)
	}

	enc := xml.NewEncoder(out)
	enc.Indent("", indent)
	if err := enc.Encode(result.Export); err != nil {
		return fmt.Errorf("failed to encode template: %w", err)
	}

	if _, err := io.WriteString(out, "\n"); err != nil {
		return fmt.Errorf("failed to write XML document: %w", err)
	}
	return nil
}
