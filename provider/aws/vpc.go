package aws

import (
	"context"

	"github.com/stackplan/stackplan/resource"
	"github.com/zclconf/go-cty/cty"
)

// Vpc plans an Amazon Virtual Private Cloud.
type Vpc struct{}

// Type returns the type string the definition is registered under.
func (Vpc) Type() string { return "vpc.Vpc" }

// Create plans a new VPC.
func (v Vpc) Create(ctx context.Context, req *resource.CreateRequest) (resource.Attributes, error) {
	return v.attributes(req.Name, req.Region), nil
}

// Lookup resolves an existing VPC.
func (v Vpc) Lookup(ctx context.Context, req *resource.LookupRequest) (resource.Attributes, error) {
	return v.attributes(req.Name, req.Region), nil
}

func (Vpc) attributes(name, region string) resource.Attributes {
	id := deriveID("vpc", name)
	return resource.Attributes{
		"id":                        cty.StringVal(id),
		"arn":                       cty.StringVal(arn("ec2", region, "vpc/"+id)),
		"default_route_table_id":    cty.StringVal(deriveID("rtb", name)),
		"default_security_group_id": cty.StringVal(deriveID("sg", name)),
	}
}
