// Package config provides configuration management for the template generator.
package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"zabbix-template/internal/model"
)

// Markers delimiting the item key table inside the Cacti PHP script.
const (
	keyTableStart = "$keys = array("
	keyTableEnd   = ");"
)

// LoadTriggers reads trigger definitions from the specified YAML file.
// A missing file yields no triggers unless required is set.
func LoadTriggers(path string, required bool) ([]*model.TriggerDefinition, error) {
	var triggers []*model.TriggerDefinition
	found, err := loadOptionalYAML(path, "triggers", &triggers)
	if err != nil {
		return nil, err
	}
	if !found && required {
		return nil, fmt.Errorf("triggers file not found: %s", path)
	}

	for i, t := range triggers {
		if t == nil {
			return nil, fmt.Errorf("trigger at index %d is empty", i)
		}
		if errs := collectErrors(validate.Struct(t)); len(errs) > 0 {
			return nil, fmt.Errorf("trigger at index %d (%q): %s", i, t.Name, joinMessages(errs))
		}
	}

	return triggers, nil
}

// LoadExtraItems reads extra item definitions from the specified YAML file.
// A missing file yields no items.
func LoadExtraItems(path string) ([]*model.ExtraItemDefinition, error) {
	var items []*model.ExtraItemDefinition
	if _, err := loadOptionalYAML(path, "extra items", &items); err != nil {
		return nil, err
	}

	for i, item := range items {
		if item == nil {
			return nil, fmt.Errorf("extra item at index %d is empty", i)
		}
		if errs := collectErrors(validate.Struct(item)); len(errs) > 0 {
			return nil, fmt.Errorf("extra item at index %d (%q): %s", i, item.Key, joinMessages(errs))
		}
	}

	return items, nil
}

// loadOptionalYAML decodes path into out. It reports false without error
// when the file does not exist. An empty document leaves out untouched.
func loadOptionalYAML(path, what string, out interface{}) (bool, error) {
	if path == "" {
		return false, fmt.Errorf("%s file path is required", what)
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s file: %w", what, err)
	}

	if err := yaml.Unmarshal(data, out); err != nil {
		return true, fmt.Errorf("failed to parse %s file %s: %w", what, path, err)
	}

	return true, nil
}

// LoadKeyTable extracts the item name -> script argument table embedded in
// the Cacti PHP script as a "$keys = array( ... );" literal.
func LoadKeyTable(path string) (model.KeyTable, error) {
	if path == "" {
		return nil, fmt.Errorf("key table file path is required")
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("key table file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to open key table file: %w", err)
	}
	defer f.Close()

	var (
		entries []string
		inTable bool
		closed  bool
	)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}
		if !inTable {
			inTable = line == keyTableStart
			continue
		}
		if line == keyTableEnd {
			closed = true
			break
		}
		entries = append(entries, strings.ReplaceAll(line, perlArrow, ":"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read key table file: %w", err)
	}

	if !inTable {
		return nil, fmt.Errorf("key table not found in %s: missing %q", path, keyTableStart)
	}
	if !closed {
		return nil, fmt.Errorf("key table in %s is not terminated by %q", path, keyTableEnd)
	}

	table := model.KeyTable{}
	doc := "{" + strings.Join(entries, "\n") + "}"
	if err := yaml.Unmarshal([]byte(doc), &table); err != nil {
		return nil, fmt.Errorf("failed to parse key table in %s: %w", path, err)
	}

	return table, nil
}

// joinMessages flattens validation errors into a single line.
func joinMessages(errs ValidationErrors) string {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, fmt.Sprintf("%s: %s", e.Field, e.Message))
	}
	return strings.Join(msgs, "; ")
}
