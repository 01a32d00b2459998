// Package export serializes schedules for callers that render or store them.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gauthierbraillon/curaplan/internal/planner"
)

// Format identifies an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for formats other than text, json and yaml.
var ErrUnknownFormat = errors.New("unknown format")

// Document is the envelope written by Encode.
type Document struct {
	Schedule []planner.DailyPlan `json:"schedule" yaml:"schedule"`
}

// ParseFormat accepts a format name, case-insensitively. "yml" is an alias of yaml.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w %q: must be text, json or yaml", ErrUnknownFormat, s)
	}
}

// Encode writes the schedule as JSON or YAML. Text output belongs to the
// display package.
func Encode(w io.Writer, schedule []planner.DailyPlan, format Format) error {
	doc := Document{Schedule: schedule}
	if doc.Schedule == nil {
		doc.Schedule = []planner.DailyPlan{}
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w %q for encoding", ErrUnknownFormat, format)
	}
}

// Decode reads a document written by Encode in the given format. Every day
// is validated, so a hand-edited or foreign file is rejected rather than
// shown with missing details.
func Decode(r io.Reader, format Format) ([]planner.DailyPlan, error) {
	var doc Document
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to parse json: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to parse yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w %q for decoding", ErrUnknownFormat, format)
	}
	for _, day := range doc.Schedule {
		if err := day.Validate(); err != nil {
			return nil, fmt.Errorf("failed to read schedule: %w", err)
		}
	}
	return doc.Schedule, nil
}
