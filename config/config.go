package config

import (
	"fmt"
	"regexp"

	"github.com/pkg/errors"
	"github.com/stackplan/stackplan/naming"
	"go.uber.org/multierr"
	validator "gopkg.in/go-playground/validator.v9"
	yaml "gopkg.in/yaml.v3"
)

// typePattern is the required <namespace>.<Kind> shape for type strings.
var typePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*\.[A-Za-z][A-Za-z0-9_]*$`)

// A Document is a parsed stack declaration. It is immutable once parsed.
type Document struct {
	Team        string            `yaml:"team" validate:"required"`
	Service     string            `yaml:"service" validate:"required"`
	Environment string            `yaml:"environment" validate:"required"`
	Region      string            `yaml:"region" validate:"required"`
	Tags        map[string]string `yaml:"tags"`
	Resources   []*ResourceSpec   `yaml:"aws_resources"`
}

// A ResourceSpec is a single declared resource.
type ResourceSpec struct {
	Name       string                 `yaml:"name" validate:"required"`
	Type       string                 `yaml:"type" validate:"required"`
	Args       map[string]interface{} `yaml:"args"`
	CustomName string                 `yaml:"custom_name"`

	// Existing marks the resource to be looked up rather than created. It
	// may be declared at this level or as an existing key inside args; the
	// args form is removed during parsing.
	Existing bool `yaml:"existing"`
}

// NamingContext returns the naming context derived from the document header.
func (d *Document) NamingContext() naming.Context {
	return naming.Context{
		Team:        d.Team,
		Service:     d.Service,
		Environment: d.Environment,
		Region:      d.Region,
	}
}

// Project returns the identity the document's plans are stored under.
func (d *Document) Project() string {
	return fmt.Sprintf("%s/%s/%s", d.Team, d.Service, d.Environment)
}

// A DuplicateResourceNameError is returned when two resource declarations
// share a name.
type DuplicateResourceNameError struct {
	Name string
}

func (e DuplicateResourceNameError) Error() string {
	return fmt.Sprintf("duplicate resource name %q", e.Name)
}

// Parse parses and validates a document from YAML source.
//
// All structural errors in the document are collected and returned together,
// rather than one at a time.
func Parse(src []byte) (*Document, error) {
	doc := &Document{}
	if err := yaml.Unmarshal(src, doc); err != nil {
		return nil, errors.Wrap(err, "unmarshal document")
	}

	if err := validator.New().Struct(doc); err != nil {
		return nil, errors.Wrap(err, "validate document")
	}

	var err error
	seen := make(map[string]struct{}, len(doc.Resources))
	for i, spec := range doc.Resources {
		if verr := validator.New().Struct(spec); verr != nil {
			err = multierr.Append(err, errors.Wrapf(verr, "resource %d", i))
			continue
		}
		if !typePattern.MatchString(spec.Type) {
			err = multierr.Append(err, errors.Errorf(
				"resource %q: type %q does not have <namespace>.<Kind> shape", spec.Name, spec.Type,
			))
		}
		if _, ok := seen[spec.Name]; ok {
			err = multierr.Append(err, DuplicateResourceNameError{Name: spec.Name})
		}
		seen[spec.Name] = struct{}{}

		if perr := popExisting(spec); perr != nil {
			err = multierr.Append(err, perr)
		}
	}
	if err != nil {
		return nil, err
	}

	return doc, nil
}

// popExisting removes an existing flag declared inside args and folds it into
// the spec.
func popExisting(spec *ResourceSpec) error {
	v, ok := spec.Args["existing"]
	if !ok {
		return nil
	}
	b, ok := v.(bool)
	if !ok {
		return errors.Errorf("resource %q: args.existing must be a boolean, got %T", spec.Name, v)
	}
	delete(spec.Args, "existing")
	spec.Existing = spec.Existing || b
	return nil
}
