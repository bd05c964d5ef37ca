package aws

import (
	"github.com/stackplan/stackplan/resource"
)

type registry interface {
	Register(resource.Definition)
}

// Register adds all supported AWS resources to the registry.
func Register(reg registry) {
	reg.Register(Vpc{})
	reg.Register(Subnet{})
	reg.Register(Instance{})
	reg.Register(SecurityGroup{})
	reg.Register(Bucket{})
	reg.Register(Role{})
	reg.Register(Function{})
	reg.Register(Table{})
	reg.Register(Queue{})
	reg.Register(Parameter{})
}
