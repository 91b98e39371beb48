package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/lutgrid/interp"
	"gopkg.in/yaml.v3"
)

// maxTableSize bounds table documents read from disk.
const maxTableSize = 16 << 20

var errInvalidTable = errors.New("lutctl: invalid table document")

var tableValidate = validator.New(validator.WithRequiredStructEnabled())

// tableDoc is the YAML form of one lookup table.
// Grid holds breakpoints per dimension; each function lists one sample per
// grid node, last dimension varying fastest.
type tableDoc struct {
	Name      string      `yaml:"name" validate:"omitempty,max=128"`
	Grid      [][]float64 `yaml:"grid" validate:"required,min=1"`
	Functions [][]float64 `yaml:"functions" validate:"required,min=1"`
}

func (d *tableDoc) options() []interp.Option {
	if d.Name == "" {
		return nil
	}
	return []interp.Option{interp.WithName(d.Name)}
}

// parseTable decodes and validates a table document. Unknown keys fail.
func parseTable(data []byte) (*tableDoc, error) {
	var doc tableDoc
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", errInvalidTable, err)
	}
	if err := tableValidate.Struct(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", errInvalidTable, err)
	}
	return &doc, nil
}

func loadTable(path string) (*tableDoc, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("lutctl: %w", err)
	}
	if info.Size() > maxTableSize {
		return nil, fmt.Errorf("%w: %s is %d bytes, limit %d", errInvalidTable, path, info.Size(), maxTableSize)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lutctl: %w", err)
	}
	doc, err := parseTable(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
