// Package config loads and validates the YAML documents that declare a
// stack.
//
// A document has a header identifying the stack (team, service, environment,
// region), optional tags that are passed through to taggable resources, and
// an aws_resources list with one entry per declared resource:
//
//	team: devops
//	service: test-svc
//	environment: dev
//	region: us-east-1
//	tags:
//	  Owner: platform
//	aws_resources:
//	  - name: vpc-01
//	    type: vpc.Vpc
//	    args:
//	      cidr_block: 10.0.0.0/16
//	  - name: subnet-01
//	    type: subnet.Subnet
//	    args:
//	      vpc_id: ref:vpc-01.id
//	      cidr_block: 10.0.1.0/24
//
// Structural problems (missing header fields, malformed type strings,
// duplicate resource names) are rejected at parse time, before a graph is
// built.
package config
