package access

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/careportal/accesskit/pkg/abac"
	"github.com/careportal/accesskit/pkg/role"
	"github.com/careportal/accesskit/pkg/session"
)

// Check kinds reported in logs and metrics.
const (
	checkPermission = "permission"
	checkRoute      = "route"
	checkFeature    = "feature"
	checkRule       = "rule"
)

// Facade is the single authorization entry point for external callers. It
// gates every check on session liveness, then delegates to the role registry
// or the ABAC evaluator. All checks fail closed: a nil, expired or revoked
// session answers false to everything.
type Facade struct {
	roles   *role.Registry
	rules   *abac.Evaluator
	clock   func() time.Time
	log     *slog.Logger
	metrics *Metrics
}

// Option configures a Facade.
type Option func(*Facade)

// WithClock injects the time source for liveness gating (default: wall
// clock).
func WithClock(clock func() time.Time) Option {
	return func(f *Facade) {
		if clock != nil {
			f.clock = clock
		}
	}
}

// WithLogger enables decision logging (default: discard).
func WithLogger(log *slog.Logger) Option {
	return func(f *Facade) {
		if log != nil {
			f.log = log
		}
	}
}

// WithMetrics enables decision counters.
func WithMetrics(m *Metrics) Option {
	return func(f *Facade) {
		f.metrics = m
	}
}

// New creates a facade over the given role registry and rule evaluator.
func New(roles *role.Registry, rules *abac.Evaluator, opts ...Option) *Facade {
	f := &Facade{
		roles: roles,
		rules: rules,
		clock: time.Now,
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// HasPermission reports whether the session is active and its actor's role
// carries the permission.
func (f *Facade) HasPermission(sess *session.Session, permissionID string) bool {
	return f.ExplainPermission(sess, permissionID) == nil
}

// CanAccessRoute reports whether the session is active and its actor's role
// may access the route.
func (f *Facade) CanAccessRoute(sess *session.Session, routePath string) bool {
	return f.ExplainRoute(sess, routePath) == nil
}

// CanAccessFeature reports whether the session is active and its actor's
// role may use the feature.
func (f *Facade) CanAccessFeature(sess *session.Session, featureID string) bool {
	return f.ExplainFeature(sess, featureID) == nil
}

// CheckRule reports whether the session is active and the named ABAC rule
// allows the actor. Unknown rule names deny.
func (f *Facade) CheckRule(sess *session.Session, ruleName string, args ...any) bool {
	return f.ExplainRule(sess, ruleName, args...) == nil
}

// ExplainPermission is HasPermission with the error taxonomy: ErrNoSession,
// session.ErrSessionExpired, session.ErrSessionRevoked, or
// ErrPermissionDenied naming the missing capability.
func (f *Facade) ExplainPermission(sess *session.Session, permissionID string) error {
	return f.decide(checkPermission, sess, permissionID, func(s *session.Session) bool {
		return f.roles.HasPermission(s.Actor.Role, permissionID)
	})
}

// ExplainRoute is CanAccessRoute with the error taxonomy.
func (f *Facade) ExplainRoute(sess *session.Session, routePath string) error {
	return f.decide(checkRoute, sess, routePath, func(s *session.Session) bool {
		return f.roles.CanAccessRoute(s.Actor.Role, routePath)
	})
}

// ExplainFeature is CanAccessFeature with the error taxonomy.
func (f *Facade) ExplainFeature(sess *session.Session, featureID string) error {
	return f.decide(checkFeature, sess, featureID, func(s *session.Session) bool {
		return f.roles.CanAccessFeature(s.Actor.Role, featureID)
	})
}

// ExplainRule is CheckRule with the error taxonomy.
func (f *Facade) ExplainRule(sess *session.Session, ruleName string, args ...any) error {
	return f.decide(checkRule, sess, ruleName, func(s *session.Session) bool {
		return f.rules.Evaluate(ruleName, s.Actor, args...)
	})
}

// decide applies the liveness gate, runs the check, and records the outcome.
func (f *Facade) decide(check string, sess *session.Session, target string, allowed func(*session.Session) bool) error {
	if err := f.gate(sess); err != nil {
		outcome := outcomeDeny
		if errors.Is(err, session.ErrSessionExpired) {
			outcome = outcomeExpired
		}
		f.metrics.observe(check, outcome)
		f.log.Info("access denied",
			slog.String("check", check),
			slog.String("target", target),
			slog.String("reason", err.Error()),
		)
		return err
	}

	if !allowed(sess) {
		f.metrics.observe(check, outcomeDeny)
		f.log.Info("access denied",
			slog.String("check", check),
			slog.String("target", target),
			slog.String("actor_id", sess.Actor.ID),
			slog.String("role", sess.Actor.Role),
		)
		return fmt.Errorf("%w: %s %q", ErrPermissionDenied, check, target)
	}

	f.metrics.observe(check, outcomeAllow)
	f.log.Debug("access allowed",
		slog.String("check", check),
		slog.String("target", target),
		slog.String("actor_id", sess.Actor.ID),
		slog.String("role", sess.Actor.Role),
	)
	return nil
}

// gate rejects absent, revoked and expired sessions before any capability
// lookup runs.
func (f *Facade) gate(sess *session.Session) error {
	if sess == nil {
		return ErrNoSession
	}
	now := f.clock()
	if sess.IsActive(now) {
		return nil
	}
	switch sess.Status(now) {
	case session.StatusRevoked:
		return session.ErrSessionRevoked
	case session.StatusExpired:
		return session.ErrSessionExpired
	default:
		// Issued in the future; not usable yet.
		return ErrNoSession
	}
}
