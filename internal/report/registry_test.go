package report

import (
	"strings"
	"testing"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()

	if r == nil {
		t.Fatal("expected non-nil registry")
	}

	// Should have both xml and config writers
	if len(r.writers) != 2 {
		t.Errorf("expected 2 writers, got %d", len(r.writers))
	}

	if _, ok := r.writers["xml"]; !ok {
		t.Error("expected xml writer to be registered")
	}
	if _, ok := r.writers["config"]; !ok {
		t.Error("expected config writer to be registered")
	}
}

func TestRegistry_Get_XML(t *testing.T) {
	r := NewRegistry()

	writer, err := r.Get("xml")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if writer == nil {
		t.Fatal("expected non-nil writer")
	}
	if writer.Format() != "xml" {
		t.Errorf("expected format 'xml', got %q", writer.Format())
	}
}

func TestRegistry_Get_Config(t *testing.T) {
	r := NewRegistry()

	writer, err := r.Get("config")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if writer.Format() != "config" {
		t.Errorf("expected format 'config', got %q", writer.Format())
	}
}

func TestRegistry_Get_Unknown(t *testing.T) {
	r := NewRegistry()

	writer, err := r.Get("json")

	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if writer != nil {
		t.Error("expected nil writer for unknown format")
	}

	if !strings.Contains(err.Error(), "json") {
		t.Errorf("error message should mention the unsupported format 'json': %v", err)
	}

	// Error message should list supported formats
	if !strings.Contains(err.Error(), "config, xml") {
		t.Errorf("error message should list supported formats: %v", err)
	}
}

func TestRegistry_Get_CaseInsensitive(t *testing.T) {
	r := NewRegistry()

	testCases := []struct {
		input    string
		expected string
	}{
		{"xml", "xml"},
		{"XML", "xml"},
		{"Config", "config"},
		{" xml ", "xml"}, // with whitespace
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			writer, err := r.Get(tc.input)

			if err != nil {
				t.Fatalf("unexpected error for input %q: %v", tc.input, err)
			}
			if writer.Format() != tc.expected {
				t.Errorf("expected format %q, got %q", tc.expected, writer.Format())
			}
		})
	}
}

func TestRegistry_GetAll(t *testing.T) {
	r := NewRegistry()

	formats := r.GetAll()

	expected := []string{"config", "xml"}
	if len(formats) != len(expected) {
		t.Fatalf("expected %d formats, got %d", len(expected), len(formats))
	}
	for i, format := range expected {
		if formats[i] != format {
			t.Errorf("expected formats[%d] = %q, got %q", i, format, formats[i])
		}
	}
}

func TestRegistry_Has(t *testing.T) {
	r := NewRegistry()

	testCases := []struct {
		format   string
		expected bool
	}{
		{"xml", true},
		{"config", true},
		{"xml-lld", false},
		{"XML", true},
		{"", false},
		{"   ", false},
	}

	for _, tc := range testCases {
		t.Run(tc.format, func(t *testing.T) {
			if got := r.Has(tc.format); got != tc.expected {
				t.Errorf("Has(%q) = %v, expected %v", tc.format, got, tc.expected)
			}
		})
	}
}
