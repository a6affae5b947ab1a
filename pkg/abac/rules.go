package abac

import (
	"github.com/careportal/accesskit/pkg/actor"
	"github.com/careportal/accesskit/pkg/permission"
)

// Canonical rule names. UI code dispatches by these strings, so they are part
// of the public contract.
const (
	RuleCanAccessPatientData     = "can_access_patient_data"
	RuleCanModifyAppointment     = "can_modify_appointment"
	RuleCanManageCareTask        = "can_manage_care_task"
	RuleCanPrescribeMedication   = "can_prescribe_medication"
	RuleCanDeleteResource        = "can_delete_resource"
	RuleCanModifyClinicalNote    = "can_modify_clinical_note"
	RuleCanViewPatientMedication = "can_view_patient_medications"
	RuleCanBookAppointmentFor    = "can_book_appointment_for"
)

func registerCanonicalRules(e *Evaluator, roles RoleChecker) {
	// args: patientID string
	e.register(RuleCanAccessPatientData, func(a actor.Actor, args ...any) bool {
		patientID, ok := argString(args, 0)
		if !ok {
			return false
		}
		switch a.Role {
		case actor.RolePatient:
			return a.ID == patientID
		case actor.RoleDoctor, actor.RoleAdmin:
			return true
		case actor.RoleFamily:
			return a.HasAssignedResource(patientID)
		}
		return false
	})

	// args: Appointment
	e.register(RuleCanModifyAppointment, func(a actor.Actor, args ...any) bool {
		appt, ok := argOf[Appointment](args, 0)
		if !ok {
			return false
		}
		switch a.Role {
		case actor.RoleDoctor:
			return appt.DoctorID == a.ID
		case actor.RolePatient:
			return appt.PatientID == a.ID
		case actor.RoleAdmin:
			return true
		}
		return false
	})

	// args: CareTask
	e.register(RuleCanManageCareTask, func(a actor.Actor, args ...any) bool {
		task, ok := argOf[CareTask](args, 0)
		if !ok {
			return false
		}
		switch a.Role {
		case actor.RoleFamily:
			return a.HasAssignedResource(task.PatientID)
		case actor.RoleAdmin:
			return true
		}
		return false
	})

	// no args beyond the actor
	e.register(RuleCanPrescribeMedication, func(a actor.Actor, _ ...any) bool {
		// TODO: working-hours gating once product defines the schedule;
		// until then the baseline permission alone decides.
		return roles.HasPermission(a.Role, permission.PrescribeMedications)
	})

	// args: Resource
	e.register(RuleCanDeleteResource, func(a actor.Actor, args ...any) bool {
		if a.Role == actor.RoleAdmin {
			return true
		}
		res, ok := argOf[Resource](args, 0)
		if !ok {
			return false
		}
		return res.CreatedBy == a.ID
	})

	// args: ClinicalNote
	e.register(RuleCanModifyClinicalNote, func(a actor.Actor, args ...any) bool {
		note, ok := argOf[ClinicalNote](args, 0)
		if !ok {
			return false
		}
		switch a.Role {
		case actor.RoleAdmin:
			return true
		case actor.RoleDoctor:
			return note.DoctorID == a.ID
		}
		return false
	})

	// args: patientID string
	e.register(RuleCanViewPatientMedication, func(a actor.Actor, args ...any) bool {
		patientID, ok := argString(args, 0)
		if !ok {
			return false
		}
		switch a.Role {
		case actor.RolePatient:
			return a.ID == patientID
		case actor.RoleDoctor:
			return roles.HasPermission(a.Role, permission.ViewMedications)
		case actor.RoleFamily:
			return a.HasAssignedResource(patientID) &&
				roles.HasPermission(a.Role, permission.ViewMedications)
		}
		return false
	})

	// args: patientID string
	e.register(RuleCanBookAppointmentFor, func(a actor.Actor, args ...any) bool {
		patientID, ok := argString(args, 0)
		if !ok {
			return false
		}
		switch a.Role {
		case actor.RolePatient:
			return a.ID == patientID
		case actor.RoleDoctor:
			return roles.HasPermission(a.Role, permission.BookAppointments)
		}
		return false
	})
}
