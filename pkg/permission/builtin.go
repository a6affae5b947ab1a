package permission

// Well-known permission ids used by the portal roles. Exported so that role
// definitions and ABAC rules reference capabilities by constant instead of
// repeating string literals.
const (
	ViewOwnData          = "view_own_data"
	EditOwnProfile       = "edit_own_profile"
	ViewPatientData      = "view_patient_data"
	ViewMedications      = "view_medications"
	PrescribeMedications = "prescribe_medications"
	BookAppointments     = "book_appointments"
	ManageAppointments   = "manage_appointments"
	ManageCareTasks      = "manage_care_tasks"
	WriteClinicalNotes   = "write_clinical_notes"
	ViewHealthSummary    = "view_health_summary"
	ViewBilling          = "view_billing"
	MakeDonations        = "make_donations"
	ManageUsers          = "manage_users"
	ManageRoles          = "manage_roles"
	ViewAuditLog         = "view_audit_log"
)

// Builtin returns the portal's permission catalog. The set is fixed at
// startup; adding a capability means adding an entry here and granting it to
// the roles that need it.
func Builtin() (*Catalog, error) {
	return NewCatalog(
		Permission{ID: ViewOwnData, Name: "View own data", Category: CategoryDataAccess,
			Description: "Read the actor's own records and profile"},
		Permission{ID: EditOwnProfile, Name: "Edit own profile", Category: CategoryDataModification,
			Description: "Update the actor's own profile fields"},
		Permission{ID: ViewPatientData, Name: "View patient data", Category: CategoryDataAccess,
			Description: "Read records of patients beyond the actor's own"},
		Permission{ID: ViewMedications, Name: "View medications", Category: CategoryClinical,
			Description: "Read medication lists and dosage schedules"},
		Permission{ID: PrescribeMedications, Name: "Prescribe medications", Category: CategoryClinical,
			Description: "Create and amend prescriptions"},
		Permission{ID: BookAppointments, Name: "Book appointments", Category: CategoryFeatureAccess,
			Description: "Schedule appointments"},
		Permission{ID: ManageAppointments, Name: "Manage appointments", Category: CategoryDataModification,
			Description: "Reschedule and cancel appointments"},
		Permission{ID: ManageCareTasks, Name: "Manage care tasks", Category: CategoryDataModification,
			Description: "Create and complete care tasks for linked patients"},
		Permission{ID: WriteClinicalNotes, Name: "Write clinical notes", Category: CategoryClinical,
			Description: "Author clinical notes"},
		Permission{ID: ViewHealthSummary, Name: "View health summary", Category: CategoryDataAccess,
			Description: "Read aggregated health summaries"},
		Permission{ID: ViewBilling, Name: "View billing", Category: CategoryFinancial,
			Description: "Read invoices and payment history"},
		Permission{ID: MakeDonations, Name: "Make donations", Category: CategoryFinancial,
			Description: "Submit donations through the portal"},
		Permission{ID: ManageUsers, Name: "Manage users", Category: CategoryAdmin,
			Description: "Create, suspend and remove portal accounts"},
		Permission{ID: ManageRoles, Name: "Manage roles", Category: CategoryAdmin,
			Description: "Register and edit role definitions"},
		Permission{ID: ViewAuditLog, Name: "View audit log", Category: CategoryAdmin,
			Description: "Read the access decision audit trail"},
	)
}
