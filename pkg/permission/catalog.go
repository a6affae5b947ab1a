package permission

import (
	"errors"
	"fmt"
)

// Catalog is an immutable, insertion-ordered set of permissions. It is built
// once at startup and safe for unlimited concurrent readers afterwards.
type Catalog struct {
	byID  map[string]Permission
	order []string
}

// NewCatalog builds a catalog from the given permissions. It validates each
// definition and rejects duplicate ids so that permission ids stay globally
// unique for the life of the process.
func NewCatalog(perms ...Permission) (*Catalog, error) {
	c := &Catalog{
		byID:  make(map[string]Permission, len(perms)),
		order: make([]string, 0, len(perms)),
	}

	for _, p := range perms {
		if p.ID == "" || p.Name == "" {
			return nil, errors.Join(ErrInvalidPermission,
				fmt.Errorf("permission %q: id and name are required", p.ID))
		}
		if !p.Category.Valid() {
			return nil, errors.Join(ErrInvalidPermission,
				fmt.Errorf("permission %q: unknown category %q", p.ID, p.Category))
		}
		if _, exists := c.byID[p.ID]; exists {
			return nil, errors.Join(ErrDuplicatePermission,
				fmt.Errorf("permission %q registered twice", p.ID))
		}
		c.byID[p.ID] = p
		c.order = append(c.order, p.ID)
	}

	return c, nil
}

// Get returns the permission for the given id, or ErrNotFound.
func (c *Catalog) Get(id string) (Permission, error) {
	p, ok := c.byID[id]
	if !ok {
		return Permission{}, ErrNotFound
	}
	return p, nil
}

// Has reports whether the catalog contains the given permission id.
func (c *Catalog) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// All returns every permission in insertion order. The returned slice is a
// copy and safe for the caller to modify.
func (c *Catalog) All() []Permission {
	out := make([]Permission, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

// Len returns the number of permissions in the catalog.
func (c *Catalog) Len() int {
	return len(c.order)
}
