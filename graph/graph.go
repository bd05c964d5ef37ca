// Package graph builds a resource graph from a parsed document and compiles
// it into an ordered construction plan.
//
// Declarations form an unordered list; references between them may point
// forwards. The compiler repeatedly passes over unresolved nodes, resolving
// whatever the current graph state allows, until the graph converges or no
// further progress is possible.
package graph

import (
	"github.com/pkg/errors"
	"github.com/stackplan/stackplan/config"
	"github.com/stackplan/stackplan/ctyext"
	"github.com/stackplan/stackplan/naming"
	"github.com/stackplan/stackplan/resource"
	"github.com/zclconf/go-cty/cty"
)

// State is the lifecycle state of a node within a single compilation run.
type State int

// Node states.
const (
	Pending State = iota
	Resolving
	Resolved
	Failed
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Resolving:
		return "resolving"
	case Resolved:
		return "resolved"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// A Node is a single declared resource within the graph.
type Node struct {
	Spec *config.ResourceSpec

	// CanonicalName is computed once when the node is added.
	CanonicalName string

	// Args is the declared argument structure with placeholders intact.
	Args cty.Value

	// Resolved is set when all placeholders in Args have been replaced.
	Resolved cty.Value

	// Attributes are populated exactly once, after the node's constructor
	// call succeeds.
	Attributes resource.Attributes

	State State
}

// A Graph holds one node per declared resource. A graph instance serves
// exactly one compilation run; concurrent runs must each build their own.
type Graph struct {
	nodes map[string]*Node
	order []string // document order
}

// FromDocument builds a graph from a parsed document.
//
// Canonical names are computed here. Duplicate names are rejected with
// DuplicateResourceNameError; config.Parse already guarantees uniqueness for
// documents that went through it.
func FromDocument(doc *config.Document, ctx naming.Context) (*Graph, error) {
	g := &Graph{nodes: make(map[string]*Node, len(doc.Resources))}
	for _, spec := range doc.Resources {
		if _, ok := g.nodes[spec.Name]; ok {
			return nil, config.DuplicateResourceNameError{Name: spec.Name}
		}
		args, err := ctyext.ToCty(mapValue(spec.Args))
		if err != nil {
			return nil, errors.Wrapf(err, "resource %q: convert args", spec.Name)
		}
		g.nodes[spec.Name] = &Node{
			Spec:          spec,
			CanonicalName: ctx.ResourceName(spec.Name, spec.CustomName),
			Args:          args,
			State:         Pending,
		}
		g.order = append(g.order, spec.Name)
	}
	return g, nil
}

// Node returns the node with the given name, or nil.
func (g *Graph) Node(name string) *Node {
	return g.nodes[name]
}

// Names returns the node names in document order.
func (g *Graph) Names() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Lookup returns the attribute value a ref placeholder points at, reflecting
// the graph's current state.
//
// Returns UnresolvedReferenceError if no node with the name exists and
// AttributeNotReadyError if the node has not (yet) produced the attribute.
func (g *Graph) Lookup(name, attribute string) (cty.Value, error) {
	node, ok := g.nodes[name]
	if !ok {
		return cty.NilVal, UnresolvedReferenceError{Target: name}
	}
	if node.State != Resolved {
		return cty.NilVal, AttributeNotReadyError{Name: name, Attribute: attribute}
	}
	val, ok := node.Attributes[attribute]
	if !ok {
		return cty.NilVal, AttributeNotReadyError{Name: name, Attribute: attribute}
	}
	return val, nil
}

// mapValue widens a decoded YAML mapping so ToCty accepts it. A nil map
// becomes an empty argument object.
func mapValue(m map[string]interface{}) interface{} {
	if m == nil {
		return map[string]interface{}{}
	}
	return m
}
