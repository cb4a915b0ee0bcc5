// Package backup turns repository snapshots into files and objects and
// reads them back for import.
package backup

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/cebip/internal/common"
	"github.com/dmitrijs2005/cebip/internal/models"
	"github.com/goccy/go-yaml"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", common.ErrUnsupportedFormat, s)
	}
}

// FormatForPath picks the format from the file extension, falling back to
// def for anything it does not recognize.
func FormatForPath(path string, def Format) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return def
	}
}

// Ext returns the file extension, dot included.
func (f Format) Ext() string {
	if f == FormatYAML {
		return ".yaml"
	}
	return ".json"
}

func (f Format) ContentType() string {
	if f == FormatYAML {
		return "application/yaml"
	}
	return "application/json"
}

func Encode(snap models.Snapshot, f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		return json.MarshalIndent(snap, "", "  ")
	case FormatYAML:
		return yaml.Marshal(snap)
	default:
		return nil, fmt.Errorf("%w: %q", common.ErrUnsupportedFormat, f)
	}
}

// Decode reads an export produced by Encode, or any document with a
// subset of its collections. Collections missing from the document stay
// nil in the result.
func Decode(data []byte, f Format) (models.ImportData, error) {
	var in models.ImportData

	var err error
	switch f {
	case FormatJSON:
		err = json.Unmarshal(data, &in)
	case FormatYAML:
		err = yaml.Unmarshal(data, &in)
	default:
		return in, fmt.Errorf("%w: %q", common.ErrUnsupportedFormat, f)
	}
	if err != nil {
		return models.ImportData{}, fmt.Errorf("decode %s backup: %w", f, err)
	}
	return in, nil
}
