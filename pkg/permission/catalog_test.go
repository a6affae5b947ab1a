package permission_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careportal/accesskit/pkg/permission"
)

func TestNewCatalog(t *testing.T) {
	tests := []struct {
		name    string
		perms   []permission.Permission
		wantErr error
	}{
		{
			name: "valid definitions",
			perms: []permission.Permission{
				{ID: "view_own_data", Name: "View own data", Category: permission.CategoryDataAccess},
				{ID: "manage_users", Name: "Manage users", Category: permission.CategoryAdmin},
			},
			wantErr: nil,
		},
		{
			name: "duplicate id rejected",
			perms: []permission.Permission{
				{ID: "view_own_data", Name: "View own data", Category: permission.CategoryDataAccess},
				{ID: "view_own_data", Name: "View own data again", Category: permission.CategoryDataAccess},
			},
			wantErr: permission.ErrDuplicatePermission,
		},
		{
			name: "missing id rejected",
			perms: []permission.Permission{
				{Name: "Nameless", Category: permission.CategoryDataAccess},
			},
			wantErr: permission.ErrInvalidPermission,
		},
		{
			name: "missing name rejected",
			perms: []permission.Permission{
				{ID: "orphan", Category: permission.CategoryDataAccess},
			},
			wantErr: permission.ErrInvalidPermission,
		},
		{
			name: "unknown category rejected",
			perms: []permission.Permission{
				{ID: "odd", Name: "Odd", Category: "mystery"},
			},
			wantErr: permission.ErrInvalidPermission,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog, err := permission.NewCatalog(tt.perms...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, catalog)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.perms), catalog.Len())
		})
	}
}

func TestCatalog_Get(t *testing.T) {
	catalog, err := permission.NewCatalog(
		permission.Permission{ID: "view_own_data", Name: "View own data", Category: permission.CategoryDataAccess},
	)
	require.NoError(t, err)

	t.Run("known id", func(t *testing.T) {
		p, err := catalog.Get("view_own_data")
		require.NoError(t, err)
		assert.Equal(t, "view_own_data", p.ID)
		assert.Equal(t, permission.CategoryDataAccess, p.Category)
	})

	t.Run("unknown id is a negative result, not a failure", func(t *testing.T) {
		_, err := catalog.Get("no_such_permission")
		assert.ErrorIs(t, err, permission.ErrNotFound)
	})

	t.Run("has", func(t *testing.T) {
		assert.True(t, catalog.Has("view_own_data"))
		assert.False(t, catalog.Has("no_such_permission"))
	})
}

func TestCatalog_All_InsertionOrder(t *testing.T) {
	perms := []permission.Permission{
		{ID: "c", Name: "C", Category: permission.CategoryAdmin},
		{ID: "a", Name: "A", Category: permission.CategoryDataAccess},
		{ID: "b", Name: "B", Category: permission.CategoryClinical},
	}
	catalog, err := permission.NewCatalog(perms...)
	require.NoError(t, err)

	all := catalog.All()
	require.Len(t, all, 3)
	for i, p := range all {
		assert.Equal(t, perms[i].ID, p.ID)
	}

	// The returned slice is a copy; mutating it must not affect the catalog.
	all[0].ID = "mutated"
	again := catalog.All()
	assert.Equal(t, "c", again[0].ID)
}

func TestBuiltin(t *testing.T) {
	catalog, err := permission.Builtin()
	require.NoError(t, err)

	for _, id := range []string{
		permission.ViewOwnData,
		permission.PrescribeMedications,
		permission.ManageCareTasks,
		permission.ManageUsers,
	} {
		assert.True(t, catalog.Has(id), "builtin catalog must contain %q", id)
	}

	// Every builtin permission carries a valid category.
	for _, p := range catalog.All() {
		assert.True(t, p.Category.Valid(), "permission %q has invalid category", p.ID)
	}
}
