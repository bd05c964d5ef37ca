package resource

import "fmt"

// UnknownResourceTypeError is returned when a type string does not match any
// registered definition.
type UnknownResourceTypeError struct {
	Type string

	// Suggestion is a registered type that closely matches, if any.
	Suggestion string
}

func (e UnknownResourceTypeError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown resource type %q, did you mean %q?", e.Type, e.Suggestion)
	}
	return fmt.Sprintf("unknown resource type %q", e.Type)
}

// NoLookupError is returned when a resource is declared as existing but the
// registered definition has no lookup capability.
type NoLookupError struct {
	Type string
}

func (e NoLookupError) Error() string {
	return fmt.Sprintf("resource type %q does not support existing resources", e.Type)
}
