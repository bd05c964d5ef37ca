package aws

import (
	"context"

	"github.com/stackplan/stackplan/resource"
	"github.com/zclconf/go-cty/cty"
)

// Subnet plans a VPC subnet.
type Subnet struct{}

// Type returns the type string the definition is registered under.
func (Subnet) Type() string { return "subnet.Subnet" }

// Create plans a new subnet.
func (s Subnet) Create(ctx context.Context, req *resource.CreateRequest) (resource.Attributes, error) {
	return s.attributes(req.Name, req.Region), nil
}

// Lookup resolves an existing subnet.
func (s Subnet) Lookup(ctx context.Context, req *resource.LookupRequest) (resource.Attributes, error) {
	return s.attributes(req.Name, req.Region), nil
}

func (Subnet) attributes(name, region string) resource.Attributes {
	id := deriveID("subnet", name)
	return resource.Attributes{
		"id":  cty.StringVal(id),
		"arn": cty.StringVal(arn("ec2", region, "subnet/"+id)),
	}
}
