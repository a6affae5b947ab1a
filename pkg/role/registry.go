package role

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/careportal/accesskit/pkg/permission"
)

// Registry maps role ids to their registered definitions. Registration
// happens at startup; check methods are read-mostly and safe for unlimited
// concurrent readers. All check methods deny by default: an unknown role id
// yields false, never an error, so callers can branch without exception
// handling.
type Registry struct {
	mu      sync.RWMutex
	catalog *permission.Catalog
	roles   map[string]*Role
}

// NewRegistry creates an empty registry validating permission references
// against the given catalog.
func NewRegistry(catalog *permission.Catalog) *Registry {
	return &Registry{
		catalog: catalog,
		roles:   make(map[string]*Role),
	}
}

// Register validates and adds a role definition. Permission and feature sets
// are deep-copied so later mutation of the Config cannot leak into the
// registry. Duplicate ids are rejected.
func (r *Registry) Register(cfg Config) error {
	if cfg.ID == "" {
		return errors.Join(ErrInvalidConfig, errors.New("role id is required"))
	}
	if cfg.Name == "" {
		return errors.Join(ErrInvalidConfig, fmt.Errorf("role %q: name is required", cfg.ID))
	}
	if cfg.Level < 1 {
		return errors.Join(ErrInvalidConfig, fmt.Errorf("role %q: level must be >= 1, got %d", cfg.ID, cfg.Level))
	}
	if len(cfg.RoutePatterns) == 0 {
		return errors.Join(ErrInvalidConfig, fmt.Errorf("role %q: at least one route pattern is required", cfg.ID))
	}
	for _, id := range cfg.Permissions {
		if !r.catalog.Has(id) {
			return errors.Join(ErrUnknownPermission, fmt.Errorf("role %q: permission %q is not in the catalog", cfg.ID, id))
		}
	}

	role := &Role{
		ID:            cfg.ID,
		Name:          cfg.Name,
		DisplayName:   cfg.DisplayName,
		Level:         cfg.Level,
		permissions:   make(map[string]struct{}, len(cfg.Permissions)),
		routePatterns: slices.Clone(cfg.RoutePatterns),
		features:      make(map[string]struct{}, len(cfg.AllowedFeatures)),
	}
	for _, id := range cfg.Permissions {
		role.permissions[id] = struct{}{}
	}
	for _, id := range cfg.AllowedFeatures {
		if id == Wildcard {
			role.allFeatures = true
			continue
		}
		role.features[id] = struct{}{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.roles[cfg.ID]; exists {
		return errors.Join(ErrDuplicateRole, fmt.Errorf("role %q registered twice", cfg.ID))
	}
	r.roles[cfg.ID] = role
	return nil
}

// Get returns the role for the given id, or ErrRoleNotFound.
func (r *Registry) Get(roleID string) (*Role, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	role, ok := r.roles[roleID]
	if !ok {
		return nil, ErrRoleNotFound
	}
	return role, nil
}

// HasPermission reports whether the role grants the permission. Unknown role
// or unknown permission id is false; this is the deny-by-default baseline
// every other check builds on.
func (r *Registry) HasPermission(roleID, permissionID string) bool {
	r.mu.RLock()
	role := r.roles[roleID]
	r.mu.RUnlock()

	return role.HasPermission(permissionID)
}

// CanAccessRoute reports whether the role may access the given route path.
// A "*" pattern allows everything; a pattern ending in "/*" allows any path
// under its prefix; any other pattern requires exact equality. The first
// matching pattern wins; no match denies.
func (r *Registry) CanAccessRoute(roleID, routePath string) bool {
	r.mu.RLock()
	role := r.roles[roleID]
	r.mu.RUnlock()

	if role == nil {
		return false
	}
	for _, pattern := range role.routePatterns {
		if routeMatches(routePath, pattern) {
			return true
		}
	}
	return false
}

// routeMatches applies the three-case pattern rule to a single pattern.
func routeMatches(routePath, pattern string) bool {
	if pattern == Wildcard || pattern == routePath {
		return true
	}
	if strings.HasSuffix(pattern, RouteWildcardSuffix) {
		prefix := strings.TrimSuffix(pattern, RouteWildcardSuffix)
		return strings.HasPrefix(routePath, prefix+"/")
	}
	return false
}

// CanAccessFeature reports whether the role may use the given feature id.
func (r *Registry) CanAccessFeature(roleID, featureID string) bool {
	r.mu.RLock()
	role := r.roles[roleID]
	r.mu.RUnlock()

	if role == nil || featureID == "" {
		return false
	}
	if role.allFeatures {
		return true
	}
	_, ok := role.features[featureID]
	return ok
}

// CompareLevel compares the hierarchy levels of two roles from the
// perspective of the first: LevelHigher means roleIDA outranks roleIDB.
// Either role being unknown is ErrRoleNotFound.
func (r *Registry) CompareLevel(roleIDA, roleIDB string) (Comparison, error) {
	r.mu.RLock()
	a, okA := r.roles[roleIDA]
	b, okB := r.roles[roleIDB]
	r.mu.RUnlock()

	if !okA || !okB {
		return LevelEqual, ErrRoleNotFound
	}
	switch {
	case a.Level > b.Level:
		return LevelHigher, nil
	case a.Level < b.Level:
		return LevelLower, nil
	default:
		return LevelEqual, nil
	}
}

// Roles returns all registered roles sorted by level, then id, for
// deterministic listing.
func (r *Registry) Roles() []*Role {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Role, 0, len(r.roles))
	for _, role := range r.roles {
		out = append(out, role)
	}
	slices.SortFunc(out, func(a, b *Role) int {
		if a.Level != b.Level {
			return a.Level - b.Level
		}
		return strings.Compare(a.ID, b.ID)
	})
	return out
}
