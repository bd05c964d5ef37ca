package graph

import (
	"fmt"
	"strings"
)

// UnresolvedReferenceError is returned when a ref placeholder names a
// resource that does not exist anywhere in the document. It is not
// deferrable; no later pass can fix it.
type UnresolvedReferenceError struct {
	// Source is the name of the node holding the reference, when known.
	Source string

	// Target is the referenced name that does not exist.
	Target string
}

func (e UnresolvedReferenceError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("resource %q references unknown resource %q", e.Source, e.Target)
	}
	return fmt.Sprintf("reference to unknown resource %q", e.Target)
}

// AttributeNotReadyError signals that a referenced node exists but has not
// produced the requested attribute. During compilation it triggers deferral
// to a later pass; it only surfaces when the attribute can never become
// available.
type AttributeNotReadyError struct {
	Name      string
	Attribute string
}

func (e AttributeNotReadyError) Error() string {
	return fmt.Sprintf("attribute %s.%s is not available", e.Name, e.Attribute)
}

// SecretNotFoundError is returned when a secret placeholder's key is absent
// from the secret source. Secrets are mandatory; the error is fatal for the
// run.
type SecretNotFoundError struct {
	Key string
}

func (e SecretNotFoundError) Error() string {
	return fmt.Sprintf("secret %q not found", e.Key)
}

// CyclicOrUnresolvableDependencyError is returned when a full pass over the
// graph makes no progress while nodes remain pending. The remaining nodes
// reference each other in a cycle, or wait on an attribute that will never
// be produced.
type CyclicOrUnresolvableDependencyError struct {
	// Names of the stuck nodes, sorted.
	Names []string
}

func (e CyclicOrUnresolvableDependencyError) Error() string {
	return fmt.Sprintf(
		"cyclic or unresolvable dependencies between resources: %s",
		strings.Join(e.Names, ", "),
	)
}
