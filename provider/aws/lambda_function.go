package aws

import (
	"context"
	"fmt"

	"github.com/stackplan/stackplan/resource"
	"github.com/zclconf/go-cty/cty"
)

// Function plans a Lambda function.
type Function struct{}

// Type returns the type string the definition is registered under.
func (Function) Type() string { return "lambda.Function" }

// SupportsTags marks the function as accepting document tags.
func (Function) SupportsTags() bool { return true }

// Create plans a new function.
func (f Function) Create(ctx context.Context, req *resource.CreateRequest) (resource.Attributes, error) {
	return f.attributes(req.Name, req.Region), nil
}

// Lookup resolves an existing function.
func (f Function) Lookup(ctx context.Context, req *resource.LookupRequest) (resource.Attributes, error) {
	return f.attributes(req.Name, req.Region), nil
}

func (Function) attributes(name, region string) resource.Attributes {
	functionARN := arn("lambda", region, "function:"+name)
	invokeARN := fmt.Sprintf(
		"arn:aws:apigateway:%s:lambda:path/2015-03-31/functions/%s/invocations",
		region, functionARN,
	)
	return resource.Attributes{
		"id":            cty.StringVal(name),
		"arn":           cty.StringVal(functionARN),
		"function_name": cty.StringVal(name),
		"invoke_arn":    cty.StringVal(invokeARN),
	}
}
