package aws

import (
	"context"

	"github.com/stackplan/stackplan/resource"
	"github.com/zclconf/go-cty/cty"
)

// Table plans a DynamoDB table.
type Table struct{}

// Type returns the type string the definition is registered under.
func (Table) Type() string { return "dynamodb.Table" }

// SupportsTags marks the table as accepting document tags.
func (Table) SupportsTags() bool { return true }

// Create plans a new table.
func (t Table) Create(ctx context.Context, req *resource.CreateRequest) (resource.Attributes, error) {
	return t.attributes(req.Name, req.Region), nil
}

// Lookup resolves an existing table.
func (t Table) Lookup(ctx context.Context, req *resource.LookupRequest) (resource.Attributes, error) {
	return t.attributes(req.Name, req.Region), nil
}

func (Table) attributes(name, region string) resource.Attributes {
	return resource.Attributes{
		"id":   cty.StringVal(name),
		"arn":  cty.StringVal(arn("dynamodb", region, "table/"+name)),
		"name": cty.StringVal(name),
	}
}
