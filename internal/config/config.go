// internal/config/config.go
package config

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/zeebo/errs"
	"gopkg.in/yaml.v3"
)

// ErrConfig marks unreadable or malformed config files.
var ErrConfig = errs.Class("config")

// File mirrors the YAML schema. Pointer fields distinguish absent keys
// from explicit zeros so flag precedence can be resolved.
type File struct {
	CapacityWords *int    `yaml:"capacity_words"`
	HeadroomWords *int    `yaml:"headroom_words"`
	PrintRate     *uint64 `yaml:"print_rate"`
	Quiet         *bool   `yaml:"quiet"`
}

// Load reads and strictly decodes path; unknown keys are errors. An
// empty file is a valid, empty config.
func Load(path string) (File, error) {
	var f File
	data, err := os.ReadFile(path)
	if err != nil {
		return f, ErrConfig.Wrap(err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return f, ErrConfig.Wrap(err)
	}
	return f, nil
}
