// Package permission defines the portal's immutable permission catalog.
//
// A Permission is a named capability grouped into a Category. The Catalog is
// built once at process start, validates id uniqueness, and preserves
// insertion order for deterministic listing and export. After construction it
// is read-only and safe for unlimited concurrent readers.
//
// Unknown-id lookups return ErrNotFound, which callers treat as a normal
// negative result rather than a failure:
//
//	catalog, err := permission.Builtin()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	p, err := catalog.Get(permission.PrescribeMedications)
//	if errors.Is(err, permission.ErrNotFound) {
//	    // capability does not exist; deny
//	}
package permission
