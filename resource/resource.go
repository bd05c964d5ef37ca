// Package resource defines the capabilities a resource constructor must
// provide and the registry that dispatches type strings to them.
package resource

import (
	"context"

	"github.com/zclconf/go-cty/cty"
)

// Attributes are the values a resource exposes after it has been planned.
// Later resources reference them through ref placeholders.
type Attributes map[string]cty.Value

// A CreateRequest carries the resolved configuration for planning a new
// resource.
type CreateRequest struct {
	// Name is the canonical name computed for the resource.
	Name string

	// Region the resource is planned in.
	Region string

	// Args is the fully resolved argument structure. All placeholders have
	// been replaced before dispatch.
	Args cty.Value
}

// A LookupRequest carries the resolved configuration for looking up an
// existing resource.
type LookupRequest struct {
	Name   string
	Region string
	Args   cty.Value
}

// A Definition describes a resource constructor.
//
// All registered resources must implement this interface.
type Definition interface {
	// Type returns the type string the definition is matched on, in
	// <namespace>.<Kind> form, for example "vpc.Vpc".
	Type() string

	// Create plans a new resource and returns its exposed attributes.
	Create(ctx context.Context, req *CreateRequest) (Attributes, error)
}

// A Lookuper is a Definition that can also resolve an existing resource
// without creating it. Resources declared with existing=true require the
// registered definition to implement Lookuper.
type Lookuper interface {
	Definition

	// Lookup reads an existing resource and returns its attributes.
	Lookup(ctx context.Context, req *LookupRequest) (Attributes, error)
}

// A Taggable definition accepts a tags argument. Document level tags are
// merged into the args of taggable resources unless the user set tags
// explicitly.
type Taggable interface {
	SupportsTags() bool
}
