package graph_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stackplan/stackplan/graph"
	"github.com/zclconf/go-cty/cty"
)

func TestParseRef(t *testing.T) {
	tests := []struct {
		input string
		want  graph.Ref
		ok    bool
	}{
		{"ref:vpc-01.id", graph.Ref{Name: "vpc-01", Attribute: "id"}, true},
		{"ref:my_db.endpoint_url", graph.Ref{Name: "my_db", Attribute: "endpoint_url"}, true},
		{"ref:a.b", graph.Ref{Name: "a", Attribute: "b"}, true},

		// Whole-string match required.
		{"prefix ref:vpc-01.id", graph.Ref{}, false},
		{"ref:vpc-01.id suffix", graph.Ref{}, false},
		// No attribute part.
		{"ref:vpc-01", graph.Ref{}, false},
		// Invalid characters.
		{"ref:vpc 01.id", graph.Ref{}, false},
		{"ref:vpc-01.some-attr", graph.Ref{}, false},
		{"secret:vpc-01.id", graph.Ref{}, false},
		{"", graph.Ref{}, false},
	}
	for _, tc := range tests {
		got, ok := graph.ParseRef(tc.input)
		if ok != tc.ok || got != tc.want {
			t.Errorf("ParseRef(%q) got (%+v, %v), want (%+v, %v)", tc.input, got, ok, tc.want, tc.ok)
		}
	}
}

func TestParseSecret(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"secret:db/password", "db/password", true},
		{"secret:api.key", "api.key", true},
		{"secret:TOKEN_2", "TOKEN_2", true},

		{"a secret:key", "", false},
		{"secret:key b", "", false},
		{"secret:", "", false},
		{"secret:with space", "", false},
		{"ref:key", "", false},
	}
	for _, tc := range tests {
		got, ok := graph.ParseSecret(tc.input)
		if ok != tc.ok || got != tc.want {
			t.Errorf("ParseSecret(%q) got (%q, %v), want (%q, %v)", tc.input, got, ok, tc.want, tc.ok)
		}
	}
}

func TestReferences_nested(t *testing.T) {
	val := cty.ObjectVal(map[string]cty.Value{
		"vpc_id": cty.StringVal("ref:vpc-01.id"),
		"count":  cty.NumberIntVal(2),
		"nested": cty.ObjectVal(map[string]cty.Value{
			"role": cty.StringVal("ref:role.arn"),
			"note": cty.StringVal("not a ref:foo.bar reference"),
		}),
		"list": cty.TupleVal([]cty.Value{
			cty.StringVal("ref:subnet-a.id"),
			cty.StringVal("literal"),
		}),
	})

	got := graph.References(val)
	want := []graph.Ref{
		{Name: "vpc-01", Attribute: "id"},
		{Name: "role", Attribute: "arn"},
		{Name: "subnet-a", Attribute: "id"},
	}
	sortRefs := cmpopts.SortSlices(func(a, b graph.Ref) bool {
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.Attribute < b.Attribute
	})
	if diff := cmp.Diff(got, want, sortRefs); diff != "" {
		t.Errorf("References() do not match (-got, +want)\n%s", diff)
	}
}

func TestSecrets(t *testing.T) {
	val := cty.ObjectVal(map[string]cty.Value{
		"password": cty.StringVal("secret:db/password"),
		"plain":    cty.StringVal("value"),
	})
	got := graph.Secrets(val)
	if len(got) != 1 || got[0] != "db/password" {
		t.Errorf("Secrets() got %v, want [db/password]", got)
	}
}
