package aws

import (
	"context"
	"fmt"

	"github.com/stackplan/stackplan/resource"
	"github.com/zclconf/go-cty/cty"
)

// Queue plans an SQS queue.
type Queue struct{}

// Type returns the type string the definition is registered under.
func (Queue) Type() string { return "sqs.Queue" }

// SupportsTags marks the queue as accepting document tags.
func (Queue) SupportsTags() bool { return true }

// Create plans a new queue.
func (q Queue) Create(ctx context.Context, req *resource.CreateRequest) (resource.Attributes, error) {
	return q.attributes(req.Name, req.Region), nil
}

// Lookup resolves an existing queue.
func (q Queue) Lookup(ctx context.Context, req *resource.LookupRequest) (resource.Attributes, error) {
	return q.attributes(req.Name, req.Region), nil
}

func (Queue) attributes(name, region string) resource.Attributes {
	url := fmt.Sprintf("https://sqs.%s.amazonaws.com/%s/%s", region, planAccount, name)
	return resource.Attributes{
		"id":  cty.StringVal(url),
		"arn": cty.StringVal(arn("sqs", region, name)),
		"url": cty.StringVal(url),
	}
}
