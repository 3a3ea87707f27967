/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/allbin/zwave-ports/internal/config"
)

// writeStructured writes data as JSON or YAML. It returns false for the
// text format so the caller can render its own view.
func writeStructured(w io.Writer, format string, data any) (bool, error) {
	switch format {
	case config.OutputJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return true, encoder.Encode(data)
	case config.OutputYAML:
		out, err := yaml.MarshalWithOptions(data, yaml.Indent(2), yaml.IndentSequence(false))
		if err != nil {
			return true, fmt.Errorf("failed to encode yaml: %w", err)
		}
		_, err = w.Write(out)
		return true, err
	default:
		return false, nil
	}
}
