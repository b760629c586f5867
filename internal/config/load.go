package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Environment variables read by ApplyEnv.
const (
	EnvScale    = "PDFSKETCH_SCALE"
	EnvFlush    = "PDFSKETCH_FLUSH"
	EnvLogLevel = "PDFSKETCH_LOG_LEVEL"
	EnvScript   = "PDFSKETCH_SCRIPT"
)

// Format identifies a config file syntax.
type Format int

const (
	FormatUnknown Format = iota
	FormatTOML
	FormatYAML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// FormatForPath returns the format implied by the file extension.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatUnknown
	}
}

// Load returns the defaults overlaid with the file at path. An empty path
// or a missing file yields the defaults. The result is not validated.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	format := FormatForPath(path)
	if format == FormatUnknown {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := Decode(cfg, data, format, path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode overlays data onto cfg. Keys that do not correspond to a setting
// are rejected. source names the input in errors.
func Decode(cfg *Config, data []byte, format Format, source string) error {
	switch format {
	case FormatTOML:
		return decodeTOML(cfg, data, source)
	case FormatYAML:
		return decodeYAML(cfg, data, source)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, source)
	}
}

func decodeTOML(cfg *Config, data []byte, source string) error {
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	err := dec.Decode(cfg)
	if err == nil {
		return nil
	}

	perr := &ParseError{Path: source, Message: err.Error(), Err: err}

	var strict *toml.StrictMissingError
	var decErr *toml.DecodeError
	switch {
	case errors.As(err, &strict) && len(strict.Errors) > 0:
		first := strict.Errors[0]
		perr.Line, perr.Column = first.Position()
		perr.Message = "unknown setting " + strings.Join(first.Key(), ".")
	case errors.As(err, &decErr):
		perr.Line, perr.Column = decErr.Position()
	}
	return perr
}

func decodeYAML(cfg *Config, data []byte, source string) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	err := dec.Decode(cfg)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	msg := err.Error()
	var typeErr *yaml.TypeError
	if errors.As(err, &typeErr) && len(typeErr.Errors) > 0 {
		msg = typeErr.Errors[0]
	}
	return &ParseError{Path: source, Line: yamlLine(msg), Message: msg, Err: err}
}

// yamlLine extracts N from messages of the form "... line N: ...".
func yamlLine(msg string) int {
	i := strings.Index(msg, "line ")
	if i < 0 {
		return 0
	}
	rest := msg[i+len("line "):]
	end := strings.IndexByte(rest, ':')
	if end < 0 {
		return 0
	}
	n, err := strconv.Atoi(rest[:end])
	if err != nil {
		return 0
	}
	return n
}

// ApplyEnv overlays PDFSKETCH_* environment variables read through lookup,
// normally os.LookupEnv. Empty values are ignored.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	get := func(name string) (string, bool) {
		v, ok := lookup(name)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get(EnvScale); ok {
		scale, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return &ValidationError{
				Path:    "display.scale",
				Message: EnvScale + " is not a number",
				Value:   v,
				Code:    ErrCodeInvalidFormat,
			}
		}
		c.Display.Scale = scale
	}
	if v, ok := get(EnvFlush); ok {
		c.Display.Flush = strings.ToLower(v)
	}
	if v, ok := get(EnvLogLevel); ok {
		c.Logging.Level = v
	}
	if v, ok := get(EnvScript); ok {
		c.Script.Path = v
	}
	return nil
}
