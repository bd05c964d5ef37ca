// Package naming computes canonical names for planned resources.
//
// Names follow a fixed convention:
//
//	{team}-{service}-{environment}-{region abbreviation}-{resource name}
//
// All segments are lower cased. A user supplied custom name bypasses the
// convention entirely.
package naming

import "strings"

// regionAbbreviations maps AWS region codes to the short form used in
// canonical names.
var regionAbbreviations = map[string]string{
	"us-east-1":      "use1",
	"us-east-2":      "use2",
	"us-west-1":      "usw1",
	"us-west-2":      "usw2",
	"af-south-1":     "afs1",
	"ap-east-1":      "ape1",
	"ap-south-1":     "aps1",
	"ap-northeast-1": "apne1",
	"ap-northeast-2": "apne2",
	"ap-northeast-3": "apne3",
	"ap-southeast-1": "apse1",
	"ap-southeast-2": "apse2",
	"ca-central-1":   "cac1",
	"eu-central-1":   "euc1",
	"eu-west-1":      "euw1",
	"eu-west-2":      "euw2",
	"eu-west-3":      "euw3",
	"eu-north-1":     "eun1",
	"eu-south-1":     "eus1",
	"me-south-1":     "mes1",
	"sa-east-1":      "sae1",
	"us-gov-east-1":  "usge1",
	"us-gov-west-1":  "usgw1",
	"cn-north-1":     "cnn1",
	"cn-northwest-1": "cnnw1",
}

// Abbreviation returns the short form for an AWS region code.
//
// Unknown regions fall back to the lower cased region with dashes removed, so
// the region segment is never dropped from a name. The fallback is
// deterministic; two distinct regions never share a fallback.
func Abbreviation(region string) string {
	r := strings.ToLower(strings.TrimSpace(region))
	if abbr, ok := regionAbbreviations[r]; ok {
		return abbr
	}
	return strings.ReplaceAll(r, "-", "")
}

// A Context carries the document scoped identity that resource names are
// derived from. It is passed explicitly so concurrent compilations with
// different documents do not interfere.
type Context struct {
	Team        string
	Service     string
	Environment string
	Region      string
}

// ResourceName returns the canonical name for a resource.
//
// A non-empty customName is returned verbatim; callers are responsible for
// any provider specific restrictions on it. Otherwise the name is assembled
// from the context and the declared resource name.
//
// ResourceName is pure: calling it any number of times with the same inputs
// returns the same string.
func (c Context) ResourceName(name, customName string) string {
	if customName != "" {
		return customName
	}
	segments := []string{
		strings.TrimSpace(c.Team),
		strings.TrimSpace(c.Service),
		strings.TrimSpace(c.Environment),
		Abbreviation(c.Region),
		name,
	}
	return strings.ToLower(strings.Join(segments, "-"))
}
