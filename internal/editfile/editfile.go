// Package editfile reads and writes edit collections stored as JSON arrays or YAML lists.
//
// Each record is flat:
//
//	- id: e1            # optional; a UUID is assigned when missing
//	  start: 4
//	  end: 9
//	  replacement: slow
//	  note: tone        # optional
//	  author: rk        # optional
package editfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/redpen/redpen/internal/edit"
	"gopkg.in/yaml.v3"
)

// Format is an on-disk encoding of an edit collection.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for file extensions or names that are neither JSON nor YAML.
var ErrUnknownFormat = errors.New("unknown edit file format")

// ParseFormat parses "json", "yaml", or "yml" (case-insensitive).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
}

// FormatOf infers the format from path's extension.
func FormatOf(path string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

type record struct {
	ID          string `json:"id,omitempty" yaml:"id,omitempty"`
	Start       *int   `json:"start" yaml:"start"`
	End         *int   `json:"end" yaml:"end"`
	Replacement string `json:"replacement" yaml:"replacement"`
	Note        string `json:"note,omitempty" yaml:"note,omitempty"`
	Author      string `json:"author,omitempty" yaml:"author,omitempty"`
}

// Load reads the edit collection at path, inferring the format from its extension.
func Load(path string) ([]edit.Edit, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	edits, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return edits, nil
}

// Parse decodes data as a list of edit records in format.
//
// Every record is checked; problems in several records are joined into one error, each prefixed with the record's index. Empty input yields no edits.
func Parse(data []byte, format Format) ([]edit.Edit, error) {
	var records []record
	switch format {
	case FormatJSON:
		if len(bytes.TrimSpace(data)) == 0 {
			return nil, nil
		}
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&records); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&records); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}

	edits := make([]edit.Edit, 0, len(records))
	seen := make(map[string]int, len(records))
	var errs []error
	for i, r := range records {
		e, err := r.toEdit()
		if err != nil {
			errs = append(errs, fmt.Errorf("record %d: %w", i, err))
			continue
		}
		if j, dup := seen[e.ID]; dup {
			errs = append(errs, fmt.Errorf("record %d: duplicate id %q (first used by record %d)", i, e.ID, j))
			continue
		}
		seen[e.ID] = i
		edits = append(edits, e)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return edits, nil
}

func (r record) toEdit() (edit.Edit, error) {
	var missing []string
	if r.Start == nil {
		missing = append(missing, "start")
	}
	if r.End == nil {
		missing = append(missing, "end")
	}
	if len(missing) > 0 {
		return edit.Edit{}, fmt.Errorf("missing %s", strings.Join(missing, " and "))
	}

	opts := []edit.Option{edit.WithNote(r.Note), edit.WithAuthor(r.Author)}
	if r.ID != "" {
		opts = append(opts, edit.WithID(r.ID))
	}
	return edit.New(edit.Span{Start: *r.Start, End: *r.End}, r.Replacement, opts...)
}

// Write encodes edits to w in format, using the same flat records Parse reads.
func Write(w io.Writer, edits []edit.Edit, format Format) error {
	records := make([]record, len(edits))
	for i, e := range edits {
		start, end := e.Span.Start, e.Span.End
		records[i] = record{ID: e.ID, Start: &start, End: &end, Replacement: e.Replacement, Note: e.Note, Author: e.Author}
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
}
