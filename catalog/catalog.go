// Package catalog loads named string kinds from YAML so that programs can validate
// input against kinds chosen at run time:
//
//	kinds:
//	  - name: zip
//	    type: digits
//	    length: 5
//	  - name: percent
//	    type: range
//	    min: 0
//	    max: 100
//
// Go types cannot be minted at run time, so every catalog entry shares the Entry
// kind; the entry name travels alongside in each Result.
package catalog

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/amp-labs/amp-dependent/dependent"
	"github.com/amp-labs/amp-dependent/errors"
	"github.com/amp-labs/amp-dependent/logger"
	"github.com/amp-labs/amp-dependent/validator"
	"gopkg.in/yaml.v3"
)

// Entry is the kind shared by all catalog factories.
type Entry struct{}

// Factory validates strings for one catalog entry. Accepted candidates are
// rendered in their normalized form (for instance a UTC timestamp re-formatted).
type Factory = dependent.Factory[Entry, Definition, string, string]

// Result is the outcome of checking one candidate against a named entry.
type Result struct {
	Name string
	dependent.Pair[Entry, string, string]
}

// Catalog is an immutable set of named factories. It is safe for concurrent use.
type Catalog struct {
	factories map[string]Factory
}

type document struct {
	Kinds []Definition `yaml:"kinds"`
}

type options struct {
	metrics *validator.Metrics
}

// Option configures Load.
type Option func(*options)

// WithMetrics instruments every entry's validator, labelled with the entry name.
func WithMetrics(metrics *validator.Metrics) Option {
	return func(o *options) {
		o.metrics = metrics
	}
}

// LoadFile reads a catalog from path.
func LoadFile(ctx context.Context, path string, opts ...Option) (*Catalog, error) {
	file, err := os.Open(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}

	defer func() {
		_ = file.Close()
	}()

	return Load(ctx, file, opts...)
}

// Load decodes a catalog document. Unknown YAML fields are rejected. Every invalid
// definition is reported, joined into one error, and no catalog is returned.
func Load(ctx context.Context, r io.Reader, opts ...Option) (*Catalog, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var doc document
	if err := decoder.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}

	return build(ctx, doc.Kinds, o)
}

// New builds a catalog from definitions directly.
func New(ctx context.Context, definitions []Definition, opts ...Option) (*Catalog, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return build(ctx, definitions, o)
}

func build(ctx context.Context, definitions []Definition, o options) (*Catalog, error) {
	var problems errors.Collection

	factories := make(map[string]Factory, len(definitions))

	for i, def := range definitions {
		def.Name = strings.TrimSpace(def.Name)

		if _, dup := factories[def.Name]; dup {
			problems.Add(fmt.Errorf("%w: kinds[%d]: duplicate name %q", errors.ErrInvalidKind, i, def.Name))

			continue
		}

		v, err := def.validator()
		if err != nil {
			problems.Add(fmt.Errorf("kinds[%d]: %w", i, err))

			continue
		}

		factories[def.Name] = dependent.Bind[Entry](validator.Instrument(def.Name, v, o.metrics))

		logger.Get(ctx).Debug("loaded catalog kind", "name", def.Name, "type", def.Type)
	}

	if problems.HasError() {
		return nil, problems.GetError()
	}

	return &Catalog{factories: factories}, nil
}

// Names returns the entry names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.factories))
	for name := range c.factories {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Factory returns the factory for name.
func (c *Catalog) Factory(name string) (Factory, bool) {
	f, ok := c.factories[name]

	return f, ok
}

// Check validates candidate against the named entry. Only an unknown name is an
// error; a rejected candidate is a Result whose Valid is false.
func (c *Catalog) Check(name, candidate string) (Result, error) {
	f, ok := c.factories[name]
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", errors.ErrUnknownKind, name)
	}

	return Result{Name: name, Pair: f.Pair(candidate)}, nil
}
