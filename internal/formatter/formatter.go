package formatter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mcncl/gojj/internal/config"
	"github.com/mcncl/gojj/internal/errors"
	"github.com/mcncl/gojj/pkg/jj"
)

// Formatter renders values in one of the configured output formats
type Formatter struct {
	format string
	indent int
}

// NewFormatter creates a new Formatter instance
func NewFormatter(format string, indent int) *Formatter {
	return &Formatter{format: format, indent: indent}
}

// NewFormatterWithConfig creates a Formatter from the output section of cfg
func NewFormatterWithConfig(cfg *config.Config) *Formatter {
	return NewFormatter(cfg.Output.Format, cfg.Output.Indent)
}

// Format renders v without a trailing newline
func (f *Formatter) Format(v jj.Value) (string, error) {
	switch f.format {
	case config.FormatPretty, "":
		return v.PrettyPrint("", strings.Repeat(" ", f.indent)), nil
	case config.FormatJSON:
		return f.formatJSON(v)
	case config.FormatYAML:
		return f.formatYAML(v)
	default:
		return "", errors.NewOutputError(fmt.Sprintf("unknown output format '%s'", f.format), nil)
	}
}

func (f *Formatter) formatJSON(v jj.Value) (string, error) {
	if !v.Exists() {
		return "", errors.NewOutputError(fmt.Sprintf("no value at path '%s' to encode", v.Path()), nil)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if f.indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", f.indent))
	}
	if err := enc.Encode(v.Raw()); err != nil {
		return "", errors.NewOutputError("failed to encode JSON", err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

func (f *Formatter) formatYAML(v jj.Value) (string, error) {
	if !v.Exists() {
		return "", errors.NewOutputError(fmt.Sprintf("no value at path '%s' to encode", v.Path()), nil)
	}

	// yaml.v3 only honours indents from 2 to 9
	indent := min(max(f.indent, 2), 9)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(indent)
	if err := enc.Encode(v.Raw()); err != nil {
		return "", errors.NewOutputError("failed to encode YAML", err)
	}
	if err := enc.Close(); err != nil {
		return "", errors.NewOutputError("failed to encode YAML", err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}
