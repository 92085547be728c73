// Package config provides configuration management for the template generator.
package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"zabbix-template/internal/model"
)

// perlArrow is the Perl hash assignment token rewritten to a YAML key separator.
const perlArrow = "=>"

// LoadDefinition reads a Cacti template definition (.def) file.
//
// The file is a Perl hash literal. Comment lines are dropped and "=>" is
// rewritten to ":", which turns the remainder into a YAML flow mapping.
func LoadDefinition(path string) (*model.Definition, error) {
	if path == "" {
		return nil, fmt.Errorf("definition file path is required")
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("definition file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition file: %w", err)
	}

	var def model.Definition
	if err := yaml.Unmarshal(normalizePerlHash(data), &def); err != nil {
		return nil, fmt.Errorf("failed to parse definition file %s: %w", path, err)
	}

	if def.Name == "" {
		return nil, fmt.Errorf("definition file %s has no name", path)
	}

	return &def, nil
}

// normalizePerlHash strips comment lines and replaces the Perl arrow.
// Line breaks are kept so parser errors point at the right line.
func normalizePerlHash(data []byte) []byte {
	var buf bytes.Buffer
	for _, line := range strings.Split(string(data), "\n") {
		if isComment(line) {
			buf.WriteByte('\n')
			continue
		}
		buf.WriteString(strings.ReplaceAll(line, perlArrow, ":"))
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// isComment reports whether the first non-blank character of line is '#'.
func isComment(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "#")
}
