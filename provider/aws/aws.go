// Package aws provides the built-in constructor registry for common AWS
// resource kinds.
//
// Definitions here plan resources: every attribute is derived
// deterministically from the canonical resource name, so compiling the same
// document twice yields byte-identical plans. No AWS API is called; actual
// provisioning consumes the emitted plan.
package aws

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
)

// planAccount is the placeholder account id used in planned ARNs. The
// provisioning engine substitutes the real account during execution.
const planAccount = "123456789012"

// deriveID derives a stable AWS-style identifier from a canonical name, for
// example deriveID("vpc", "devops-svc-dev-use1-vpc-01") returns something
// like "vpc-0d1e2f....".
func deriveID(prefix, name string) string {
	sum := sha256.Sum256([]byte(prefix + ":" + name))
	return fmt.Sprintf("%s-0%x", prefix, sum[:8])
}

// arn assembles a planned ARN.
func arn(service, region, suffix string) string {
	return fmt.Sprintf("arn:aws:%s:%s:%s:%s", service, region, planAccount, suffix)
}

// globalARN assembles a planned ARN for services without a region segment.
func globalARN(service, suffix string) string {
	return fmt.Sprintf("arn:aws:%s::%s:%s", service, planAccount, suffix)
}

// derivedOctets returns two stable octets for synthesizing addresses.
func derivedOctets(name string) (byte, byte) {
	sum := sha256.Sum256([]byte(name))
	n := binary.BigEndian.Uint16(sum[:2])
	return byte(n >> 8), byte(n)
}
