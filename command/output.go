package command

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	xslice "github.com/frantjc/x/slice"
	"gopkg.in/yaml.v3"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

var outputs = []string{outputText, outputJSON, outputYAML}

func validateOutput(output string) error {
	if !xslice.Includes(outputs, output) {
		return fmt.Errorf("invalid output %s, must be one of %v", output, outputs)
	}

	return nil
}

// encode writes v to w as output. For text output, rows are written
// as tab-separated columns aligned with a tabwriter.
func encode(w io.Writer, output string, v any, rows [][]string) error {
	switch output {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	for _, row := range rows {
		for i, col := range row {
			if i > 0 {
				if _, err := fmt.Fprint(tw, "\t"); err != nil {
					return err
				}
			}

			if _, err := fmt.Fprint(tw, col); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintln(tw); err != nil {
			return err
		}
	}

	return tw.Flush()
}
