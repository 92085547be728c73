// Package agentconf renders Zabbix agent UserParameter lines.
// It implements the report.ReportWriter interface.
package agentconf

import (
	"bufio"
	"fmt"
	"io"

	"zabbix-template/internal/model"
)

// Writer implements report.ReportWriter for agent configuration snippets.
type Writer struct{}

// NewWriter creates a new agent configuration writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Format returns "config".
func (w *Writer) Format() string {
	return "config"
}

// Write writes one UserParameter line per parameter, in order.
func (w *Writer) Write(out io.Writer, result *model.Result) error {
	if result == nil {
		return fmt.Errorf("result is nil")
	}

	bw := bufio.NewWriter(out)
	for _, p := range result.UserParameters {
		if _, err := fmt.Fprintln(bw, p.String()); err != nil {
			return fmt.Errorf("failed to write user parameter %s: %w", p.Key, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write agent config: %w", err)
	}
	return nil
}
