package resource_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stackplan/stackplan/resource"
	"github.com/zclconf/go-cty/cty"
)

type vpcDef struct{}

func (vpcDef) Type() string { return "vpc.Vpc" }
func (vpcDef) Create(ctx context.Context, req *resource.CreateRequest) (resource.Attributes, error) {
	return resource.Attributes{"id": cty.StringVal("vpc-123")}, nil
}
func (d vpcDef) Lookup(ctx context.Context, req *resource.LookupRequest) (resource.Attributes, error) {
	return resource.Attributes{"id": cty.StringVal("vpc-123")}, nil
}

type bucketDef struct{}

func (bucketDef) Type() string { return "s3.Bucket" }
func (bucketDef) Create(ctx context.Context, req *resource.CreateRequest) (resource.Attributes, error) {
	return nil, nil
}

func TestRegistry_Constructor(t *testing.T) {
	reg := resource.RegistryFromDefinitions(vpcDef{}, bucketDef{})

	def, err := reg.Constructor("vpc.Vpc")
	if err != nil {
		t.Fatalf("Constructor() error: %v", err)
	}
	if def.Type() != "vpc.Vpc" {
		t.Errorf("Constructor() returned definition of type %q", def.Type())
	}
}

func TestRegistry_Constructor_unknown(t *testing.T) {
	reg := resource.RegistryFromDefinitions(vpcDef{}, bucketDef{})

	_, err := reg.Constructor("vpc.Vcp")
	var unknown resource.UnknownResourceTypeError
	if !errors.As(err, &unknown) {
		t.Fatalf("Constructor() error = %v, want UnknownResourceTypeError", err)
	}
	if unknown.Type != "vpc.Vcp" {
		t.Errorf("Error type got %q, want %q", unknown.Type, "vpc.Vcp")
	}
	if unknown.Suggestion != "vpc.Vpc" {
		t.Errorf("Error suggestion got %q, want %q", unknown.Suggestion, "vpc.Vpc")
	}
}

func TestRegistry_Constructor_noSuggestion(t *testing.T) {
	reg := resource.RegistryFromDefinitions(vpcDef{})

	_, err := reg.Constructor("dynamodb.Table")
	var unknown resource.UnknownResourceTypeError
	if !errors.As(err, &unknown) {
		t.Fatalf("Constructor() error = %v, want UnknownResourceTypeError", err)
	}
	if unknown.Suggestion != "" {
		t.Errorf("Suggestion got %q, want none", unknown.Suggestion)
	}
}

func TestRegistry_Lookup(t *testing.T) {
	reg := resource.RegistryFromDefinitions(vpcDef{}, bucketDef{})

	if _, err := reg.Lookup("vpc.Vpc"); err != nil {
		t.Errorf("Lookup() error: %v", err)
	}

	_, err := reg.Lookup("s3.Bucket")
	var nolookup resource.NoLookupError
	if !errors.As(err, &nolookup) {
		t.Fatalf("Lookup() error = %v, want NoLookupError", err)
	}
	if nolookup.Type != "s3.Bucket" {
		t.Errorf("Error type got %q, want %q", nolookup.Type, "s3.Bucket")
	}
}

func TestRegistry_Types(t *testing.T) {
	reg := resource.RegistryFromDefinitions(vpcDef{}, bucketDef{})

	got := reg.Types()
	want := []string{"s3.Bucket", "vpc.Vpc"}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("Types() do not match (-got, +want)\n%s", diff)
	}
}

func TestRegistry_Register_panicEmptyType(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Register() with an empty type string should panic")
		}
	}()
	reg := &resource.Registry{}
	reg.Register(emptyDef{})
}

type emptyDef struct{}

func (emptyDef) Type() string { return "" }
func (emptyDef) Create(ctx context.Context, req *resource.CreateRequest) (resource.Attributes, error) {
	return nil, nil
}
