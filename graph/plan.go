package graph

import "fmt"

// A Plan is the ordered construction plan produced by a successful
// compilation run. Steps appear in the order their nodes resolved; every
// reference a step's args contained has been replaced with a concrete value.
type Plan struct {
	ID          string            `json:"id"`
	Team        string            `json:"team"`
	Service     string            `json:"service"`
	Environment string            `json:"environment"`
	Region      string            `json:"region"`
	Tags        map[string]string `json:"tags,omitempty"`
	Steps       []Step            `json:"steps"`
}

// A Step is a single resolved dispatch call within a plan.
type Step struct {
	Name          string                 `json:"name"`
	Type          string                 `json:"type"`
	CanonicalName string                 `json:"canonical_name"`
	Existing      bool                   `json:"existing,omitempty"`
	Args          interface{}            `json:"args"`
	Attributes    map[string]interface{} `json:"attributes"`
}

// Project returns the identity the plan is stored under.
func (p *Plan) Project() string {
	return fmt.Sprintf("%s/%s/%s", p.Team, p.Service, p.Environment)
}
