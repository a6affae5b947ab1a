// Package actor defines the authenticated identity shared by the session,
// abac and access packages.
//
// An Actor is a value-type snapshot: the session manager copies it into the
// session at authentication time and every downstream check reads that copy,
// never a live reference. The package also exports the canonical portal role
// ids (patient, family, doctor, admin).
package actor
