// Package session manages the portal's time-bounded authorization contexts.
//
// A Session binds a snapshot of the authenticated actor to an opaque token
// with a fixed lifetime (default 30 minutes). The Manager issues sessions
// for verified actor records, renews them while active, revokes them on
// logout or administrative action, and sweeps expired ones in the
// background. Expired and revoked are terminal states; the actor must
// re-authenticate.
//
// The package is storage-agnostic: any backend satisfying the Store
// interface can hold the snapshots. A concurrent in-memory store and a
// Redis-backed store ship out of the box; the Persistent flag chosen at
// authentication time selects the durable tier without changing expiry
// semantics.
//
// Liveness is a pure function of session state and an injected clock:
//
//	mgr := session.NewManager(
//	    session.WithStore(session.NewRedisStore(client)),
//	    session.WithConfig(cfg),
//	)
//	defer mgr.Close()
//
//	sess, err := mgr.Authenticate(ctx, record, false)
//	...
//	if !sess.IsActive(time.Now()) {
//	    // prompt re-authentication
//	}
//
// Expired access surfaces ErrSessionExpired, deliberately distinct from any
// permission denial, so the UI can tell "please log in again" apart from
// "you lack rights".
package session
