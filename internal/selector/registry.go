package selector

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateOption is returned when two options share a name
	ErrDuplicateOption = errors.New("duplicate option name")
	// ErrEmptyName is returned when an option has no name
	ErrEmptyName = errors.New("option name is empty")
)

// Option is a single selectable entry
type Option struct {
	Name    string `toml:"name" yaml:"name"`
	Label   string `toml:"label" yaml:"label"`
	Default bool   `toml:"default" yaml:"default"`
}

// DisplayLabel returns the label, falling back to the name
func (o Option) DisplayLabel() string {
	if o.Label == "" {
		return o.Name
	}
	return o.Label
}

// Registry is the closed, ordered set of options a selector works over.
// It is immutable once constructed.
type Registry struct {
	options []Option
	index   map[string]int
}

// NewRegistry builds a registry, rejecting empty and duplicate names
func NewRegistry(options []Option) (*Registry, error) {
	r := &Registry{
		options: make([]Option, 0, len(options)),
		index:   make(map[string]int, len(options)),
	}
	for i, opt := range options {
		if opt.Name == "" {
			return nil, fmt.Errorf("option %d: %w", i, ErrEmptyName)
		}
		if prev, exists := r.index[opt.Name]; exists {
			return nil, fmt.Errorf("option %d %q (first seen at %d): %w", i, opt.Name, prev, ErrDuplicateOption)
		}
		r.index[opt.Name] = len(r.options)
		r.options = append(r.options, opt)
	}
	return r, nil
}

// Len returns the number of options
func (r *Registry) Len() int {
	return len(r.options)
}

// Options returns a copy of the options in registry order
func (r *Registry) Options() []Option {
	out := make([]Option, len(r.options))
	copy(out, r.options)
	return out
}

// At returns the option at position i
func (r *Registry) At(i int) (Option, bool) {
	if i < 0 || i >= len(r.options) {
		return Option{}, false
	}
	return r.options[i], true
}
