package commit

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownFormat  = errors.New("unknown record format")
	ErrRecordNotFound = errors.New("commit record not found")
)

// Record formats accepted by Decode and Load.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Decode reads a single commit record from r. Partial records are fine:
// absent fields decode to empty strings and render as placeholders, so
// a malformed or half-populated record never prevents editing.
func Decode(r io.Reader, format string) (Commit, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Commit{}, fmt.Errorf("failed to read record: %w", err)
	}

	var c Commit
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &c); err != nil {
			return Commit{}, fmt.Errorf("failed to parse json record: %w", err)
		}
	case FormatYAML, "yml":
		if err := yaml.Unmarshal(data, &c); err != nil {
			return Commit{}, fmt.Errorf("failed to parse yaml record: %w", err)
		}
	default:
		return Commit{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return c, nil
}

// Load reads a commit record from path, inferring the format from the
// file extension. An empty format means "look at the extension";
// extensionless files are treated as JSON.
func Load(path string, format string) (Commit, error) {
	if format == "" {
		format = FormatForPath(path)
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Commit{}, fmt.Errorf("%w: %s", ErrRecordNotFound, path)
		}
		return Commit{}, fmt.Errorf("failed to open record: %w", err)
	}
	defer f.Close()

	return Decode(f, format)
}

// FormatForPath maps a file extension to a record format, defaulting
// to JSON.
func FormatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}
