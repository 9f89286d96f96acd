package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// outputFormat returns the flag value, falling back to the configured default
func outputFormat(flag string) string {
	if flag != "" {
		return flag
	}
	if f := viper.GetString("output"); f != "" {
		return f
	}
	return outputText
}

// writeOutput encodes v as JSON or YAML, or calls text for the human format
func writeOutput(w io.Writer, format string, v any, text func(io.Writer) error) error {
	switch format {
	case outputJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(v)
	case outputYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return encoder.Close()
	case outputText:
		return text(w)
	default:
		return fmt.Errorf("unsupported output format %q (use text, json or yaml)", format)
	}
}
