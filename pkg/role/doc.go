// Package role provides the flat role registry for the portal's RBAC layer.
//
// Each role fully enumerates its permission set, route patterns and feature
// ids; there is no inheritance between roles. Shared permissions are achieved
// by copy-at-registration, which keeps validation local to a single Config
// and avoids diamond-override ambiguity entirely.
//
// All check methods are deny-by-default: an unknown role id, permission id,
// route or feature yields false, never an error. Route patterns support
// "*" (all routes) and "prefix/*" (any path under the prefix); features
// support "*" or exact ids.
//
//	catalog, _ := permission.Builtin()
//	registry, err := role.Builtin(catalog)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	registry.HasPermission("doctor", permission.PrescribeMedications) // true
//	registry.CanAccessRoute("doctor", "/doctor/patients")             // true
//	registry.CanAccessRoute("doctor", "/family/alerts")               // false
//
// New roles are added through Register, which validates the definition
// against the permission catalog and rejects duplicate ids:
//
//	err := registry.Register(role.Config{
//	    ID:            "auditor",
//	    Name:          "auditor",
//	    Level:         2,
//	    Permissions:   []string{permission.ViewAuditLog},
//	    RoutePatterns: []string{"/audit/*"},
//	})
package role
