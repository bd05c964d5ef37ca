package aws

import (
	"context"
	"strings"

	"github.com/stackplan/stackplan/resource"
	"github.com/zclconf/go-cty/cty"
)

// Role plans an IAM role.
type Role struct{}

// Type returns the type string the definition is registered under.
func (Role) Type() string { return "iam.Role" }

// SupportsTags marks the role as accepting document tags.
func (Role) SupportsTags() bool { return true }

// Create plans a new role.
func (r Role) Create(ctx context.Context, req *resource.CreateRequest) (resource.Attributes, error) {
	return r.attributes(req.Name), nil
}

// Lookup resolves an existing role.
func (r Role) Lookup(ctx context.Context, req *resource.LookupRequest) (resource.Attributes, error) {
	return r.attributes(req.Name), nil
}

func (Role) attributes(name string) resource.Attributes {
	return resource.Attributes{
		"id":        cty.StringVal(name),
		"arn":       cty.StringVal(globalARN("iam", "role/"+name)),
		"name":      cty.StringVal(name),
		"unique_id": cty.StringVal("AROA" + strings.ToUpper(deriveID("role", name)[5:])),
	}
}
