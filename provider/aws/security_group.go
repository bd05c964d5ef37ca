package aws

import (
	"context"

	"github.com/stackplan/stackplan/resource"
	"github.com/zclconf/go-cty/cty"
)

// SecurityGroup plans an EC2 security group.
type SecurityGroup struct{}

// Type returns the type string the definition is registered under.
func (SecurityGroup) Type() string { return "ec2.SecurityGroup" }

// Create plans a new security group.
func (s SecurityGroup) Create(ctx context.Context, req *resource.CreateRequest) (resource.Attributes, error) {
	return s.attributes(req.Name, req.Region), nil
}

// Lookup resolves an existing security group.
func (s SecurityGroup) Lookup(ctx context.Context, req *resource.LookupRequest) (resource.Attributes, error) {
	return s.attributes(req.Name, req.Region), nil
}

func (SecurityGroup) attributes(name, region string) resource.Attributes {
	id := deriveID("sg", name)
	return resource.Attributes{
		"id":   cty.StringVal(id),
		"arn":  cty.StringVal(arn("ec2", region, "security-group/"+id)),
		"name": cty.StringVal(name),
	}
}
