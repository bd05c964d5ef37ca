package aws

import (
	"context"

	"github.com/stackplan/stackplan/resource"
	"github.com/zclconf/go-cty/cty"
)

// Parameter plans an SSM parameter.
type Parameter struct{}

// Type returns the type string the definition is registered under.
func (Parameter) Type() string { return "ssm.Parameter" }

// SupportsTags marks the parameter as accepting document tags.
func (Parameter) SupportsTags() bool { return true }

// Create plans a new parameter.
func (p Parameter) Create(ctx context.Context, req *resource.CreateRequest) (resource.Attributes, error) {
	return p.attributes(req.Name, req.Region), nil
}

// Lookup resolves an existing parameter.
func (p Parameter) Lookup(ctx context.Context, req *resource.LookupRequest) (resource.Attributes, error) {
	return p.attributes(req.Name, req.Region), nil
}

func (Parameter) attributes(name, region string) resource.Attributes {
	return resource.Attributes{
		"id":      cty.StringVal(name),
		"arn":     cty.StringVal(arn("ssm", region, "parameter/"+name)),
		"name":    cty.StringVal(name),
		"version": cty.NumberIntVal(1),
	}
}
