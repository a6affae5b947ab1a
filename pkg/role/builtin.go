package role

import (
	"github.com/careportal/accesskit/pkg/actor"
	"github.com/careportal/accesskit/pkg/permission"
)

// Builtin returns a registry preloaded with the four portal roles. Each role
// is a self-contained entry; extending the portal means registering another
// Config, never editing an existing role in place.
func Builtin(catalog *permission.Catalog) (*Registry, error) {
	r := NewRegistry(catalog)

	configs := []Config{
		{
			ID:          actor.RolePatient,
			Name:        "patient",
			DisplayName: "Paciente",
			Level:       1,
			Permissions: []string{
				permission.ViewOwnData,
				permission.EditOwnProfile,
				permission.ViewMedications,
				permission.BookAppointments,
				permission.ManageAppointments,
				permission.ViewHealthSummary,
				permission.ViewBilling,
				permission.MakeDonations,
			},
			RoutePatterns: []string{"/patient/*", "/profile", "/donations"},
			AllowedFeatures: []string{
				"appointments", "medications", "health_summary", "billing", "donations",
			},
		},
		{
			ID:          actor.RoleFamily,
			Name:        "family",
			DisplayName: "Familiar",
			Level:       1,
			Permissions: []string{
				permission.ViewOwnData,
				permission.EditOwnProfile,
				permission.ViewPatientData,
				permission.ViewMedications,
				permission.ManageCareTasks,
				permission.ViewHealthSummary,
			},
			RoutePatterns: []string{"/family/*", "/profile"},
			AllowedFeatures: []string{
				"care_tasks", "medications", "health_summary", "alerts",
			},
		},
		{
			ID:          actor.RoleDoctor,
			Name:        "doctor",
			DisplayName: "Médico",
			Level:       2,
			Permissions: []string{
				permission.ViewOwnData,
				permission.EditOwnProfile,
				permission.ViewPatientData,
				permission.ViewMedications,
				permission.PrescribeMedications,
				permission.BookAppointments,
				permission.ManageAppointments,
				permission.WriteClinicalNotes,
				permission.ViewHealthSummary,
			},
			RoutePatterns: []string{"/doctor/*", "/profile"},
			AllowedFeatures: []string{
				"appointments", "medications", "prescriptions", "clinical_notes", "patients",
			},
		},
		{
			ID:              actor.RoleAdmin,
			Name:            "admin",
			DisplayName:     "Administrador",
			Level:           3,
			Permissions:     catalogIDs(catalog),
			RoutePatterns:   []string{Wildcard},
			AllowedFeatures: []string{Wildcard},
		},
	}

	for _, cfg := range configs {
		if err := r.Register(cfg); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// catalogIDs enumerates every permission id: the admin role holds the full
// catalog as an explicit copy rather than a wildcard, keeping permission
// checks uniform across roles.
func catalogIDs(catalog *permission.Catalog) []string {
	perms := catalog.All()
	ids := make([]string, 0, len(perms))
	for _, p := range perms {
		ids = append(ids, p.ID)
	}
	return ids
}
