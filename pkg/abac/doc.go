// Package abac evaluates attribute-based access rules for the portal.
//
// Where the role package answers "does this role carry this capability", the
// rules here answer contextual questions: may this family member manage a
// task for that patient, may this doctor edit that note. Each rule is a
// stateless predicate over the actor snapshot and the ownership fields of a
// resource; rules may consult the role registry for baseline permission
// checks but never mutate state.
//
// Dispatch is by name against a registry fixed at construction, so an
// unknown rule name is a predictable deny (false) and callers can probe
// optional rules without error handling:
//
//	eval := abac.NewEvaluator(registry)
//	eval.Evaluate(abac.RuleCanAccessPatientData, familyActor, "P1")
//
// Missing or malformed arguments are likewise a deny, never a panic: an
// absent resource is modeled as "no", not as an error.
package abac
