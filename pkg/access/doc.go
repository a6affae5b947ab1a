// Package access composes the role registry, the ABAC evaluator and session
// liveness into the single decision facade external callers use.
//
// The UI and route layers never talk to the registries directly; they hold a
// session and ask the facade before rendering protected views or enabling
// gated actions:
//
//	guard := access.New(registry, evaluator,
//	    access.WithLogger(log),
//	    access.WithMetrics(access.NewMetrics(prometheus.DefaultRegisterer)),
//	)
//
//	if !guard.HasPermission(sess, permission.PrescribeMedications) {
//	    // render deny state
//	}
//	if guard.CheckRule(sess, abac.RuleCanAccessPatientData, patientID) {
//	    // render patient chart
//	}
//
// Every check fails closed: a nil, expired or revoked session answers false
// regardless of the actor's role. The Explain variants return the error
// taxonomy instead of a bare boolean — session.ErrSessionExpired for "please
// re-authenticate" versus ErrPermissionDenied naming the missing capability
// for "access denied" — so the UI can render the right state.
package access
