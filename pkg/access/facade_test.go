package access_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careportal/accesskit/pkg/abac"
	"github.com/careportal/accesskit/pkg/access"
	"github.com/careportal/accesskit/pkg/actor"
	"github.com/careportal/accesskit/pkg/permission"
	"github.com/careportal/accesskit/pkg/role"
	"github.com/careportal/accesskit/pkg/session"
)

// fakeClock is a manually advanced time source shared between the manager,
// the facade and assertions.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(now time.Time) *fakeClock {
	return &fakeClock{now: now}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type fixture struct {
	clock  *fakeClock
	mgr    *session.Manager
	facade *access.Facade
}

func setup(t *testing.T, opts ...access.Option) *fixture {
	t.Helper()

	catalog, err := permission.Builtin()
	require.NoError(t, err)
	registry, err := role.Builtin(catalog)
	require.NoError(t, err)
	evaluator := abac.NewEvaluator(registry)

	clk := newFakeClock(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	mgr := session.NewManager(
		session.WithClock(clk.Now),
		session.WithConfig(session.Config{Duration: 30 * time.Minute}),
	)
	t.Cleanup(func() { _ = mgr.Close() })

	opts = append([]access.Option{access.WithClock(clk.Now)}, opts...)
	return &fixture{
		clock:  clk,
		mgr:    mgr,
		facade: access.New(registry, evaluator, opts...),
	}
}

func (f *fixture) login(t *testing.T, a actor.Actor) *session.Session {
	t.Helper()
	sess, err := f.mgr.Authenticate(context.Background(), a, false)
	require.NoError(t, err)
	return sess
}

var (
	doctorD9 = actor.Actor{ID: "D9", Role: actor.RoleDoctor, Verified: true}
	familyF1 = actor.Actor{ID: "F1", Role: actor.RoleFamily, Verified: true,
		AssignedResourceIDs: []string{"P1"}}
)

func TestFacade_HasPermission(t *testing.T) {
	f := setup(t)
	sess := f.login(t, doctorD9)

	assert.True(t, f.facade.HasPermission(sess, permission.PrescribeMedications))
	assert.False(t, f.facade.HasPermission(sess, permission.ManageUsers))
	assert.False(t, f.facade.HasPermission(sess, "no_such_permission"))
	assert.False(t, f.facade.HasPermission(nil, permission.ViewOwnData))
}

func TestFacade_CanAccessRoute(t *testing.T) {
	f := setup(t)
	sess := f.login(t, doctorD9)

	assert.True(t, f.facade.CanAccessRoute(sess, "/doctor/patients"))
	assert.False(t, f.facade.CanAccessRoute(sess, "/family/alerts"))
	assert.False(t, f.facade.CanAccessRoute(nil, "/doctor/patients"))
}

func TestFacade_CheckRule(t *testing.T) {
	f := setup(t)
	sess := f.login(t, familyF1)

	assert.True(t, f.facade.CheckRule(sess, abac.RuleCanAccessPatientData, "P1"))
	assert.False(t, f.facade.CheckRule(sess, abac.RuleCanAccessPatientData, "P2"))
	assert.False(t, f.facade.CheckRule(sess, "no_such_rule", "P1"))
}

func TestFacade_ExpiredSessionDeniesEverything(t *testing.T) {
	f := setup(t)
	sess := f.login(t, doctorD9)

	// t0+29m: still active, role capabilities apply.
	f.clock.Advance(29 * time.Minute)
	assert.True(t, sess.IsActive(f.clock.Now()))
	assert.True(t, f.facade.CanAccessFeature(sess, "clinical_notes"))

	// t0+31m: expired, every check fails closed even though the role would
	// normally permit it.
	f.clock.Advance(2 * time.Minute)
	assert.False(t, sess.IsActive(f.clock.Now()))
	assert.False(t, f.facade.CanAccessFeature(sess, "clinical_notes"))
	assert.False(t, f.facade.HasPermission(sess, permission.PrescribeMedications))
	assert.False(t, f.facade.CanAccessRoute(sess, "/doctor/patients"))
	assert.False(t, f.facade.CheckRule(sess, abac.RuleCanAccessPatientData, "P1"))
}

func TestFacade_RevokedSessionDeniesEverything(t *testing.T) {
	f := setup(t)
	sess := f.login(t, doctorD9)
	sess.Revoked = true

	assert.False(t, f.facade.HasPermission(sess, permission.PrescribeMedications))
	assert.False(t, f.facade.CanAccessRoute(sess, "/doctor/patients"))
	assert.False(t, f.facade.CanAccessFeature(sess, "clinical_notes"))
	assert.False(t, f.facade.CheckRule(sess, abac.RuleCanPrescribeMedication))
}

func TestFacade_Explain(t *testing.T) {
	f := setup(t)
	sess := f.login(t, doctorD9)

	t.Run("denial names the missing capability", func(t *testing.T) {
		err := f.facade.ExplainPermission(sess, permission.ManageUsers)
		require.ErrorIs(t, err, access.ErrPermissionDenied)
		assert.Contains(t, err.Error(), permission.ManageUsers)
	})

	t.Run("allowed check returns nil", func(t *testing.T) {
		assert.NoError(t, f.facade.ExplainPermission(sess, permission.PrescribeMedications))
	})

	t.Run("nil session", func(t *testing.T) {
		err := f.facade.ExplainRoute(nil, "/doctor/patients")
		assert.ErrorIs(t, err, access.ErrNoSession)
	})

	t.Run("expiry is distinct from denial", func(t *testing.T) {
		f.clock.Advance(time.Hour)

		err := f.facade.ExplainPermission(sess, permission.PrescribeMedications)
		assert.ErrorIs(t, err, session.ErrSessionExpired)
		assert.NotErrorIs(t, err, access.ErrPermissionDenied)
	})

	t.Run("revocation is distinct from expiry", func(t *testing.T) {
		revoked := f.login(t, doctorD9)
		revoked.Revoked = true

		err := f.facade.ExplainFeature(revoked, "clinical_notes")
		assert.ErrorIs(t, err, session.ErrSessionRevoked)
	})
}

func TestFacade_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	f := setup(t, access.WithMetrics(access.NewMetrics(reg)))
	sess := f.login(t, doctorD9)

	f.facade.HasPermission(sess, permission.PrescribeMedications) // allow
	f.facade.HasPermission(sess, permission.ManageUsers)          // deny
	f.facade.CanAccessRoute(sess, "/doctor/patients")             // allow

	f.clock.Advance(time.Hour)
	f.facade.HasPermission(sess, permission.PrescribeMedications) // expired

	count := testutil.CollectAndCount(reg, "accesskit_decisions_total")
	assert.Equal(t, 4, count)
}
