package graph

import (
	"context"
	"sort"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/pkg/errors"
	"github.com/segmentio/ksuid"
	"github.com/stackplan/stackplan/config"
	"github.com/stackplan/stackplan/ctyext"
	"github.com/stackplan/stackplan/resource"
	"github.com/stackplan/stackplan/secret"
	"github.com/zclconf/go-cty/cty"
	"go.uber.org/zap"
)

// A Compiler compiles documents into construction plans.
//
// The Registry and Secrets collaborators are read-only during a run; a single
// Compiler may be shared by concurrent compilations of distinct documents.
type Compiler struct {
	Registry *resource.Registry
	Secrets  secret.Source

	// Logger logs compilation progress. If not set, logs are discarded.
	Logger *zap.Logger

	// Backoff algorithm used when retrying constructor calls. If not set,
	// exponential backoff is used.
	Backoff func() backoff.BackOff
}

// Compile compiles one document into a plan.
//
// Static problems (unknown reference targets, unknown types, missing lookup
// capabilities, missing secrets, reference cycles) fail the run before any
// constructor is called. A construction failure aborts the run at the failing
// node; there are no partial plans.
func (c *Compiler) Compile(ctx context.Context, doc *config.Document) (*Plan, error) {
	logger := c.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	secrets := c.Secrets
	if secrets == nil {
		secrets = secret.Static{}
	}
	algo := c.Backoff
	if algo == nil {
		algo = func() backoff.BackOff {
			return backoff.NewExponentialBackOff()
		}
	}

	g, err := FromDocument(doc, doc.NamingContext())
	if err != nil {
		return nil, err
	}

	plan := &Plan{
		ID:          ksuid.New().String(),
		Team:        doc.Team,
		Service:     doc.Service,
		Environment: doc.Environment,
		Region:      doc.Region,
		Tags:        doc.Tags,
	}
	logger = logger.With(zap.String("plan", plan.ID))
	logger.Info("Compile", zap.String("project", plan.Project()), zap.Int("resources", len(g.order)))

	if err := c.validate(g, secrets); err != nil {
		return nil, err
	}

	run := &run{
		doc:     doc,
		graph:   g,
		secrets: secrets,
		logger:  logger,
		backoff: algo,
		defs:    make(map[string]resource.Definition, len(g.order)),
	}
	if err := run.fixedPoint(ctx, c.Registry, plan); err != nil {
		return nil, err
	}

	logger.Info("Done", zap.Int("steps", len(plan.Steps)))
	return plan, nil
}

// validate checks everything that can be decided without constructing:
// reference targets exist, all types dispatch (including the lookup form for
// existing resources), all secret keys are present, and the reference edges
// admit an order. Runs before any constructor call.
func (c *Compiler) validate(g *Graph, secrets secret.Source) error {
	edges := make(map[string][]string, len(g.order))
	for _, name := range g.order {
		node := g.nodes[name]

		var err error
		if node.Spec.Existing {
			_, err = c.Registry.Lookup(node.Spec.Type)
		} else {
			_, err = c.Registry.Constructor(node.Spec.Type)
		}
		if err != nil {
			node.State = Failed
			return errors.Wrapf(err, "resource %q", name)
		}

		for _, ref := range References(node.Args) {
			if g.Node(ref.Name) == nil {
				node.State = Failed
				return UnresolvedReferenceError{Source: name, Target: ref.Name}
			}
			edges[name] = append(edges[name], ref.Name)
		}

		for _, key := range Secrets(node.Args) {
			if _, serr := secrets.Get(key); serr != nil {
				node.State = Failed
				if errors.Is(serr, secret.ErrNotFound) {
					return errors.Wrapf(SecretNotFoundError{Key: key}, "resource %q", name)
				}
				return errors.Wrapf(serr, "resource %q: secret %q", name, key)
			}
		}
	}

	// The edges must admit an order; otherwise the fixed point loop below
	// could only discover the cycle after constructing the acyclic part.
	done := make(map[string]bool, len(g.order))
	for len(done) < len(g.order) {
		progress := false
		for _, name := range g.order {
			if done[name] {
				continue
			}
			ready := true
			for _, target := range edges[name] {
				if !done[target] {
					ready = false
					break
				}
			}
			if ready {
				done[name] = true
				progress = true
			}
		}
		if !progress {
			stuck := make([]string, 0, len(g.order)-len(done))
			for _, name := range g.order {
				if !done[name] {
					stuck = append(stuck, name)
					g.nodes[name].State = Failed
				}
			}
			sort.Strings(stuck)
			return CyclicOrUnresolvableDependencyError{Names: stuck}
		}
	}
	return nil
}

// run holds the mutable state of a single compilation run.
type run struct {
	doc     *config.Document
	graph   *Graph
	secrets secret.Source
	logger  *zap.Logger
	backoff func() backoff.BackOff

	// defs caches dispatch results; resolution is stable for the run.
	defs map[string]resource.Definition
}

// fixedPoint repeatedly passes over pending nodes in document order. Nodes
// whose references are not ready yet are deferred to the next pass; a pass
// without progress while nodes remain pending means the graph cannot
// converge.
func (r *run) fixedPoint(ctx context.Context, reg *resource.Registry, plan *Plan) error {
	for {
		progress := false
		for _, name := range r.graph.order {
			node := r.graph.nodes[name]
			if node.State != Pending {
				continue
			}
			deferred, err := r.process(ctx, reg, node, plan)
			if err != nil {
				return err
			}
			if !deferred {
				progress = true
			}
		}

		pending := r.pending()
		if len(pending) == 0 {
			return nil
		}
		if !progress {
			for _, name := range pending {
				r.graph.nodes[name].State = Failed
			}
			sort.Strings(pending)
			return CyclicOrUnresolvableDependencyError{Names: pending}
		}
	}
}

// process attempts to resolve and dispatch one node. Returns deferred=true
// when the node has to wait for another pass.
func (r *run) process(ctx context.Context, reg *resource.Registry, node *Node, plan *Plan) (deferred bool, err error) {
	name := node.Spec.Name
	logger := r.logger.With(zap.String("type", node.Spec.Type), zap.String("name", name))

	node.State = Resolving
	resolved, err := Resolve(node.Args, r.graph.Lookup, r.secrets)
	if err != nil {
		var notReady AttributeNotReadyError
		if errors.As(err, &notReady) {
			target := r.graph.Node(notReady.Name)
			if target != nil && target.State == Resolved {
				// The target is done and will never produce the attribute.
				node.State = Failed
				return false, errors.Wrapf(err, "resource %q", name)
			}
			logger.Debug("Deferred", zap.String("waiting_on", notReady.Name))
			node.State = Pending
			return true, nil
		}
		node.State = Failed
		return false, errors.Wrapf(err, "resource %q", name)
	}

	def, err := r.constructor(reg, node.Spec)
	if err != nil {
		// Validation has already dispatched every type; reaching this
		// indicates a bug.
		node.State = Failed
		return false, errors.Wrapf(err, "resource %q", name)
	}
	node.Resolved = withTags(resolved, r.doc.Tags, def)

	attrs, err := r.dispatch(ctx, node, def, logger)
	if err != nil {
		node.State = Failed
		return false, errors.Wrapf(err, "resource %q", name)
	}
	node.Attributes = attrs
	node.State = Resolved
	logger.Debug("Resolved", zap.String("canonical_name", node.CanonicalName))

	step, err := planStep(node)
	if err != nil {
		return false, errors.Wrapf(err, "resource %q", name)
	}
	plan.Steps = append(plan.Steps, step)
	return false, nil
}

func (r *run) constructor(reg *resource.Registry, spec *config.ResourceSpec) (resource.Definition, error) {
	if def, ok := r.defs[spec.Type]; ok {
		return def, nil
	}
	def, err := reg.Constructor(spec.Type)
	if err != nil {
		return nil, err
	}
	r.defs[spec.Type] = def
	return def, nil
}

// dispatch invokes the constructor capability for a node, with retries. An
// existing node dispatches the lookup form, never create.
func (r *run) dispatch(ctx context.Context, node *Node, def resource.Definition, logger *zap.Logger) (resource.Attributes, error) {
	var attrs resource.Attributes

	var op func() error
	if node.Spec.Existing {
		lu := def.(resource.Lookuper) // checked during validation
		req := &resource.LookupRequest{
			Name:   node.CanonicalName,
			Region: r.doc.Region,
			Args:   node.Resolved,
		}
		op = func() error {
			a, err := lu.Lookup(ctx, req)
			attrs = a
			return err
		}
		logger.Info("Looking up existing resource")
	} else {
		req := &resource.CreateRequest{
			Name:   node.CanonicalName,
			Region: r.doc.Region,
			Args:   node.Resolved,
		}
		op = func() error {
			a, err := def.Create(ctx, req)
			attrs = a
			return err
		}
		logger.Info("Creating resource")
	}

	notify := func(err error, dur time.Duration) {
		logger.Info("Retrying", zap.Error(err), zap.Duration("duration", dur))
	}
	if err := backoff.RetryNotify(op, backoff.WithContext(r.backoff(), ctx), notify); err != nil {
		return nil, err
	}
	return attrs, nil
}

// withTags merges document tags into the resolved args of taggable
// definitions. User supplied tags win.
func withTags(resolved cty.Value, tags map[string]string, def resource.Definition) cty.Value {
	if len(tags) == 0 || !resolved.Type().IsObjectType() {
		return resolved
	}
	taggable, ok := def.(resource.Taggable)
	if !ok || !taggable.SupportsTags() {
		return resolved
	}
	attrs := resolved.AsValueMap()
	if attrs == nil {
		attrs = make(map[string]cty.Value)
	}
	if _, ok := attrs["tags"]; ok {
		return resolved
	}
	tagVals := make(map[string]cty.Value, len(tags))
	for k, v := range tags {
		tagVals[k] = cty.StringVal(v)
	}
	attrs["tags"] = cty.ObjectVal(tagVals)
	return cty.ObjectVal(attrs)
}

func planStep(node *Node) (Step, error) {
	args, err := ctyext.FromCty(node.Resolved)
	if err != nil {
		return Step{}, errors.Wrap(err, "convert resolved args")
	}
	attrs := make(map[string]interface{}, len(node.Attributes))
	for k, v := range node.Attributes {
		a, err := ctyext.FromCty(v)
		if err != nil {
			return Step{}, errors.Wrapf(err, "convert attribute %q", k)
		}
		attrs[k] = a
	}
	return Step{
		Name:          node.Spec.Name,
		Type:          node.Spec.Type,
		CanonicalName: node.CanonicalName,
		Existing:      node.Spec.Existing,
		Args:          args,
		Attributes:    attrs,
	}, nil
}

func (r *run) pending() []string {
	var out []string
	for _, name := range r.graph.order {
		if r.graph.nodes[name].State == Pending {
			out = append(out, name)
		}
	}
	return out
}
