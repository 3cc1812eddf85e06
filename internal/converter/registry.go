package converter

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/roach88/question2atomese/internal/formula"
	"github.com/roach88/question2atomese/internal/pattern"
)

var (
	// ErrInvalidConverter is returned for converters missing required parts.
	ErrInvalidConverter = errors.New("invalid converter")

	// ErrNonCanonicalPattern is returned for patterns no formula can carry.
	ErrNonCanonicalPattern = errors.New("non-canonical pattern")

	// ErrDuplicateConverter is returned when a name or pattern is registered
	// twice. A second pattern would be unreachable.
	ErrDuplicateConverter = errors.New("duplicate converter")
)

// Registry is an ordered, immutable list of converters.
//
// Thread-safety: a Registry is never mutated after construction and is safe
// for concurrent use.
type Registry struct {
	converters []*Converter
	byName     map[string]*Converter
}

// Default holds every converter shipped with the module.
var Default = MustRegistry(
	WhatOtherDetObjSubj(),
)

// NewRegistry validates converters and keeps them in the given order.
func NewRegistry(converters ...*Converter) (*Registry, error) {
	r := &Registry{byName: make(map[string]*Converter)}
	patterns := make(map[string]string)

	for _, c := range converters {
		if err := checkConverter(c); err != nil {
			return nil, err
		}
		if _, ok := r.byName[c.Name]; ok {
			return nil, fmt.Errorf("%w: name %q", ErrDuplicateConverter, c.Name)
		}
		if other, ok := patterns[c.Pattern]; ok {
			return nil, fmt.Errorf("%w: %s shadows %s on pattern %q", ErrDuplicateConverter, c.Name, other, c.Pattern)
		}

		patterns[c.Pattern] = c.Name
		r.byName[c.Name] = c
		r.converters = append(r.converters, c)
	}
	return r, nil
}

// MustRegistry is like NewRegistry but panics on error. Used for package
// level registries built at start-up.
func MustRegistry(converters ...*Converter) *Registry {
	r, err := NewRegistry(converters...)
	if err != nil {
		panic(err)
	}
	return r
}

func checkConverter(c *Converter) error {
	if c == nil {
		return fmt.Errorf("%w: nil converter", ErrInvalidConverter)
	}
	switch {
	case c.Name == "":
		return fmt.Errorf("%w: empty name", ErrInvalidConverter)
	case c.Fragment == nil:
		return fmt.Errorf("%w: %s has no fragment builder", ErrInvalidConverter, c.Name)
	case c.Extract == nil:
		return fmt.Errorf("%w: %s has no filler extractor", ErrInvalidConverter, c.Name)
	}

	result := pattern.Validate(c.Pattern)
	if !result.IsCanonical {
		return fmt.Errorf("%w: %s declares %q: %s",
			ErrNonCanonicalPattern, c.Name, c.Pattern, strings.Join(result.Warnings, "; "))
	}
	return nil
}

// Match returns the first converter applicable to f.
func (r *Registry) Match(f *formula.Formula) (*Converter, bool) {
	for _, c := range r.converters {
		if c.IsApplicable(f) {
			slog.Debug("converter matched",
				"converter", c.Name,
				"signature", c.Pattern)
			return c, true
		}
	}
	slog.Debug("no converter found", "signature", f.FullFormula())
	return nil, false
}

// Lookup returns the converter registered under name.
func (r *Registry) Lookup(name string) (*Converter, bool) {
	c, ok := r.byName[name]
	return c, ok
}

// Converters returns the converters in match order.
func (r *Registry) Converters() []*Converter {
	return append([]*Converter(nil), r.converters...)
}

// Len returns the number of registered converters.
func (r *Registry) Len() int {
	return len(r.converters)
}
