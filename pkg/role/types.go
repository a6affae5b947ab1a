package role

// Wildcard matches every route or feature when present in a role's pattern
// set. RouteWildcardSuffix marks a route pattern that prefix-matches any
// deeper path.
const (
	Wildcard            = "*"
	RouteWildcardSuffix = "/*"
)

// Config is the builder input for registering a role. Each role fully
// enumerates its permission set; there is no inheritance between roles, so
// shared permissions are copied at registration rather than delegated at
// check time.
type Config struct {
	// ID is the registry key, e.g. "doctor".
	ID string
	// Name is the internal role name.
	Name string
	// DisplayName is the localized name shown in the UI.
	DisplayName string
	// Level is the hierarchy rank. Higher level dominates lower; must be >= 1.
	Level int
	// Permissions lists permission ids granted to the role. Every id must
	// exist in the permission catalog.
	Permissions []string
	// RoutePatterns lists allowed routes: exact paths, "prefix/*" patterns,
	// or "*" for all. Must be non-empty.
	RoutePatterns []string
	// AllowedFeatures lists feature ids, or "*" for all.
	AllowedFeatures []string
}

// Role is the registered, immutable form of a Config. Permission and feature
// sets are precomputed into maps for O(1) checks.
type Role struct {
	ID          string
	Name        string
	DisplayName string
	Level       int

	permissions   map[string]struct{}
	routePatterns []string
	features      map[string]struct{}
	allFeatures   bool
}

// HasPermission reports whether the permission id is in the role's set.
func (r *Role) HasPermission(permissionID string) bool {
	if r == nil {
		return false
	}
	_, ok := r.permissions[permissionID]
	return ok
}

// Permissions returns the role's permission ids. The slice is a copy.
func (r *Role) Permissions() []string {
	if r == nil {
		return nil
	}
	out := make([]string, 0, len(r.permissions))
	for id := range r.permissions {
		out = append(out, id)
	}
	return out
}

// Comparison is the result of comparing two role levels.
type Comparison int

const (
	LevelLower Comparison = iota - 1
	LevelEqual
	LevelHigher
)

// String returns the comparison as a human-readable word.
func (c Comparison) String() string {
	switch c {
	case LevelHigher:
		return "higher"
	case LevelLower:
		return "lower"
	default:
		return "equal"
	}
}
