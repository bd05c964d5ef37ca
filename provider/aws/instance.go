package aws

import (
	"context"
	"fmt"

	"github.com/stackplan/stackplan/resource"
	"github.com/zclconf/go-cty/cty"
)

// Instance plans an EC2 instance.
type Instance struct{}

// Type returns the type string the definition is registered under.
func (Instance) Type() string { return "ec2.Instance" }

// Create plans a new instance.
func (i Instance) Create(ctx context.Context, req *resource.CreateRequest) (resource.Attributes, error) {
	return i.attributes(req.Name, req.Region), nil
}

// Lookup resolves an existing instance.
func (i Instance) Lookup(ctx context.Context, req *resource.LookupRequest) (resource.Attributes, error) {
	return i.attributes(req.Name, req.Region), nil
}

func (Instance) attributes(name, region string) resource.Attributes {
	id := deriveID("i", name)
	a, b := derivedOctets(name)
	ip := fmt.Sprintf("10.0.%d.%d", a, b)
	return resource.Attributes{
		"id":          cty.StringVal(id),
		"arn":         cty.StringVal(arn("ec2", region, "instance/"+id)),
		"private_ip":  cty.StringVal(ip),
		"private_dns": cty.StringVal(fmt.Sprintf("ip-10-0-%d-%d.%s.compute.internal", a, b, region)),
	}
}
