package permission

// Category groups permissions by the kind of capability they grant.
type Category string

const (
	CategoryDataAccess       Category = "data_access"
	CategoryDataModification Category = "data_modification"
	CategoryFeatureAccess    Category = "feature_access"
	CategoryAdmin            Category = "admin"
	CategoryClinical         Category = "clinical"
	CategoryFinancial        Category = "financial"
)

// Valid reports whether the category is one of the known values.
func (c Category) Valid() bool {
	switch c {
	case CategoryDataAccess, CategoryDataModification, CategoryFeatureAccess,
		CategoryAdmin, CategoryClinical, CategoryFinancial:
		return true
	}
	return false
}

// Permission is an immutable named capability. Permissions are created once
// at catalog construction and never mutated afterwards.
type Permission struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Description string   `json:"description,omitempty"`
}
