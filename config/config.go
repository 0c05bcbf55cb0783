package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v2"
)

// Format names the syntax of a policy document.
type Format string

const (
	FormatAuto Format = "auto"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// ParseFormat validates a format name given on the command line.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatAuto, FormatYAML, FormatJSON, FormatTOML:
		return f, nil
	}
	return "", NewError(Usage, "", fmt.Errorf("unknown format %q (want auto, yaml, json or toml)", s))
}

// DetectFormat picks a format from the file extension. JSON and anything
// unrecognised go through the YAML decoder.
func DetectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".toml":
		return FormatTOML
	case ".json":
		return FormatJSON
	default:
		return FormatYAML
	}
}

// Load reads and decodes the policy document at filePath
func Load(filePath string, format Format) (*PolicyConfig, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NewError(NotFound, filePath, err)
		}
		return nil, NewError(Generic, filePath, fmt.Errorf("failed to stat config file: %w", err))
	}
	if info.IsDir() {
		return nil, NewError(NotFound, filePath, errors.New("is a directory"))
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, NewError(Generic, filePath, fmt.Errorf("failed to read config file: %w", err))
	}

	if format == "" || format == FormatAuto {
		format = DetectFormat(filePath)
	}
	cfg, err := Decode(data, format)
	if err != nil {
		var e *Error
		if errors.As(err, &e) && e.Path == "" {
			e.Path = filePath
		}
		return nil, err
	}
	return cfg, nil
}

// Decode parses a policy document held in memory. It returns ErrEmpty when
// the document is null or has no entries.
func Decode(data []byte, format Format) (*PolicyConfig, error) {
	if format == FormatTOML {
		converted, err := tomlToYAML(data)
		if err != nil {
			return nil, err
		}
		data = converted
	}

	doc, err := decodeSingle(data)
	if err != nil {
		return nil, err
	}
	if isEmpty(doc) {
		return nil, ErrEmpty
	}

	var cfg PolicyConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) {
			return nil, NewError(Generic, "", fmt.Errorf("invalid document structure: %w", err))
		}
		return nil, NewError(Parse, "", err)
	}
	return &cfg, nil
}

// decodeSingle parses data generically and rejects a stream holding more
// than one YAML document.
func decodeSingle(data []byte) (interface{}, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var doc interface{}
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, NewError(Parse, "", err)
	}

	var extra interface{}
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, NewError(Parse, "", errors.New("expected a single document in the stream"))
	}
	return doc, nil
}

// tomlToYAML re-encodes a TOML document as YAML so both share one decoder
// and the same scalar handling.
func tomlToYAML(data []byte) ([]byte, error) {
	var doc map[string]interface{}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, NewError(Parse, "", err)
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, NewError(Generic, "", fmt.Errorf("failed to convert TOML document: %w", err))
	}
	return out, nil
}

// isEmpty reports whether a whole document holds nothing: null, false,
// zero, or an empty string, mapping or list.
func isEmpty(doc interface{}) bool {
	switch t := doc.(type) {
	case map[interface{}]interface{}:
		return len(t) == 0
	case []interface{}:
		return len(t) == 0
	}
	return falsy(doc)
}
