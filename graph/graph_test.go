package graph_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stackplan/stackplan/config"
	"github.com/stackplan/stackplan/graph"
	"github.com/stackplan/stackplan/resource"
	"github.com/zclconf/go-cty/cty"
)

func TestFromDocument(t *testing.T) {
	doc := &config.Document{
		Team:        "devops",
		Service:     "test-svc",
		Environment: "dev",
		Region:      "us-east-1",
		Resources: []*config.ResourceSpec{
			{Name: "vpc-01", Type: "vpc.Vpc", Args: map[string]interface{}{"cidr_block": "10.0.0.0/16"}},
			{Name: "custom", Type: "s3.Bucket", CustomName: "myinstance"},
		},
	}

	g, err := graph.FromDocument(doc, doc.NamingContext())
	if err != nil {
		t.Fatalf("FromDocument() error: %v", err)
	}

	if diff := cmp.Diff(g.Names(), []string{"vpc-01", "custom"}); diff != "" {
		t.Errorf("Names() do not match (-got, +want)\n%s", diff)
	}

	vpc := g.Node("vpc-01")
	if vpc.CanonicalName != "devops-test-svc-dev-use1-vpc-01" {
		t.Errorf("Canonical name got %q", vpc.CanonicalName)
	}
	if vpc.State != graph.Pending {
		t.Errorf("New node state got %v, want pending", vpc.State)
	}
	want := cty.ObjectVal(map[string]cty.Value{"cidr_block": cty.StringVal("10.0.0.0/16")})
	if !vpc.Args.RawEquals(want) {
		t.Errorf("Args got %#v, want %#v", vpc.Args, want)
	}

	if got := g.Node("custom").CanonicalName; got != "myinstance" {
		t.Errorf("Custom canonical name got %q, want %q", got, "myinstance")
	}

	// Nil args become an empty object.
	if !g.Node("custom").Args.RawEquals(cty.EmptyObjectVal) {
		t.Errorf("Nil args got %#v, want empty object", g.Node("custom").Args)
	}
}

func TestFromDocument_duplicate(t *testing.T) {
	doc := &config.Document{
		Team: "t", Service: "s", Environment: "e", Region: "us-east-1",
		Resources: []*config.ResourceSpec{
			{Name: "a", Type: "vpc.Vpc"},
			{Name: "a", Type: "vpc.Vpc"},
		},
	}
	_, err := graph.FromDocument(doc, doc.NamingContext())
	var dup config.DuplicateResourceNameError
	if !errors.As(err, &dup) {
		t.Fatalf("FromDocument() error = %v, want DuplicateResourceNameError", err)
	}
}

func TestGraph_Lookup(t *testing.T) {
	doc := &config.Document{
		Team: "t", Service: "s", Environment: "e", Region: "us-east-1",
		Resources: []*config.ResourceSpec{
			{Name: "a", Type: "vpc.Vpc"},
		},
	}
	g, err := graph.FromDocument(doc, doc.NamingContext())
	if err != nil {
		t.Fatal(err)
	}

	// Unknown node.
	_, err = g.Lookup("nope", "id")
	var unresolved graph.UnresolvedReferenceError
	if !errors.As(err, &unresolved) {
		t.Errorf("Lookup() of unknown node error = %v, want UnresolvedReferenceError", err)
	}

	// Node exists but is not resolved yet.
	_, err = g.Lookup("a", "id")
	var notReady graph.AttributeNotReadyError
	if !errors.As(err, &notReady) {
		t.Errorf("Lookup() of pending node error = %v, want AttributeNotReadyError", err)
	}

	// Resolved node with the attribute.
	node := g.Node("a")
	node.Attributes = resource.Attributes{"id": cty.StringVal("vpc-0abc")}
	node.State = graph.Resolved

	got, err := g.Lookup("a", "id")
	if err != nil {
		t.Fatalf("Lookup() error: %v", err)
	}
	if got.AsString() != "vpc-0abc" {
		t.Errorf("Lookup() got %q, want %q", got.AsString(), "vpc-0abc")
	}

	// Resolved node without the attribute.
	_, err = g.Lookup("a", "missing")
	if !errors.As(err, &notReady) {
		t.Errorf("Lookup() of missing attribute error = %v, want AttributeNotReadyError", err)
	}
}

func TestState_String(t *testing.T) {
	states := map[graph.State]string{
		graph.Pending:   "pending",
		graph.Resolving: "resolving",
		graph.Resolved:  "resolved",
		graph.Failed:    "failed",
	}
	for s, want := range states {
		if got := s.String(); got != want {
			t.Errorf("State(%d).String() got %q, want %q", s, got, want)
		}
	}
}
