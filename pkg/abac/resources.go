package abac

// Resource shapes consumed by the contextual rules. Resource providers own
// the full business objects; the evaluator only reads the ownership fields
// declared here.

// Appointment is the ownership view of a scheduled appointment.
type Appointment struct {
	ID        string `json:"id"`
	PatientID string `json:"patient_id"`
	DoctorID  string `json:"doctor_id"`
}

// CareTask is the ownership view of a care task assigned for a patient.
type CareTask struct {
	ID        string `json:"id"`
	PatientID string `json:"patient_id"`
}

// ClinicalNote is the ownership view of a clinical note.
type ClinicalNote struct {
	ID       string `json:"id"`
	DoctorID string `json:"doctor_id"`
}

// Resource is the generic ownable used by deletion checks.
type Resource struct {
	ID        string `json:"id"`
	CreatedBy string `json:"created_by"`
}
