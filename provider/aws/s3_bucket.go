package aws

import (
	"context"

	"github.com/stackplan/stackplan/resource"
	"github.com/zclconf/go-cty/cty"
)

// Bucket plans an S3 bucket.
//
// The canonical name doubles as the bucket name, so it must satisfy the S3
// bucket naming rules when a custom name is used.
type Bucket struct{}

// Type returns the type string the definition is registered under.
func (Bucket) Type() string { return "s3.Bucket" }

// SupportsTags marks the bucket as accepting document tags.
func (Bucket) SupportsTags() bool { return true }

// Create plans a new bucket.
func (b Bucket) Create(ctx context.Context, req *resource.CreateRequest) (resource.Attributes, error) {
	return b.attributes(req.Name, req.Region), nil
}

// Lookup resolves an existing bucket.
func (b Bucket) Lookup(ctx context.Context, req *resource.LookupRequest) (resource.Attributes, error) {
	return b.attributes(req.Name, req.Region), nil
}

func (Bucket) attributes(name, region string) resource.Attributes {
	return resource.Attributes{
		"id":                 cty.StringVal(name),
		"arn":                cty.StringVal("arn:aws:s3:::" + name),
		"bucket":             cty.StringVal(name),
		"bucket_domain_name": cty.StringVal(name + ".s3.amazonaws.com"),
		"region":             cty.StringVal(region),
	}
}
