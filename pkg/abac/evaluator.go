package abac

import (
	"slices"

	"github.com/careportal/accesskit/pkg/actor"
)

// Rule is a named, stateless predicate over an actor and rule-specific
// arguments. Rules may consult the role registry for baseline permission
// checks but never mutate anything; a rule that receives missing or
// malformed arguments must return false, never panic.
type Rule func(a actor.Actor, args ...any) bool

// Evaluator dispatches rule names to registered predicates. The rule set is
// fixed at construction, so an unknown name is a predictable deny rather
// than a silent no-op; callers may probe optional rules freely.
type Evaluator struct {
	rules map[string]Rule
}

// NewEvaluator returns an evaluator preloaded with the portal's canonical
// rules, bound to the given role registry for baseline permission checks.
func NewEvaluator(roles RoleChecker) *Evaluator {
	e := &Evaluator{rules: make(map[string]Rule)}
	registerCanonicalRules(e, roles)
	return e
}

// RoleChecker is the slice of the role registry the rules need.
type RoleChecker interface {
	HasPermission(roleID, permissionID string) bool
}

// register adds a rule under the given name, replacing any previous one.
func (e *Evaluator) register(name string, rule Rule) {
	e.rules[name] = rule
}

// Evaluate runs the named rule against the actor. Unknown rule names and
// zero-value actors evaluate to false.
func (e *Evaluator) Evaluate(name string, a actor.Actor, args ...any) bool {
	if a.IsZero() {
		return false
	}
	rule, ok := e.rules[name]
	if !ok {
		return false
	}
	return rule(a, args...)
}

// Has reports whether a rule is registered under the given name.
func (e *Evaluator) Has(name string) bool {
	_, ok := e.rules[name]
	return ok
}

// Rules returns the registered rule names in sorted order.
func (e *Evaluator) Rules() []string {
	out := make([]string, 0, len(e.rules))
	for name := range e.rules {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

// argString extracts a non-empty string argument at position i.
func argString(args []any, i int) (string, bool) {
	if i >= len(args) {
		return "", false
	}
	s, ok := args[i].(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// argOf extracts a typed resource argument at position i. Both T and *T are
// accepted; a nil pointer is a missing resource.
func argOf[T any](args []any, i int) (T, bool) {
	var zero T
	if i >= len(args) {
		return zero, false
	}
	switch v := args[i].(type) {
	case T:
		return v, true
	case *T:
		if v == nil {
			return zero, false
		}
		return *v, true
	default:
		return zero, false
	}
}
