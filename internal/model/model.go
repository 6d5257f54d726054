package model

// Package model contains the domain entities for the school-records system.
// These are pure domain models with no database-specific dependencies or tags,
// usable across layers (HTTP, service, storage) without coupling to persistence.

// Role is the privilege level of an acting user. Roles form a total order:
// student < admin < super_admin.
type Role string

const (
	RoleStudent    Role = "student"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// level maps each role to its rank in the privilege order.
func (r Role) level() int {
	switch r {
	case RoleSuperAdmin:
		return 3
	case RoleAdmin:
		return 2
	case RoleStudent:
		return 1
	default:
		return 0
	}
}

// AtLeast reports whether r grants the privileges of required.
func (r Role) AtLeast(required Role) bool {
	return r.level() >= required.level() && r.level() > 0
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r.level() > 0
}

// EnrollmentStatus is the exclusive enrollment state of a student.
type EnrollmentStatus string

const (
	StatusEnrolled EnrollmentStatus = "enrolled"
	StatusDropped  EnrollmentStatus = "dropped"
	StatusExpelled EnrollmentStatus = "expelled"
	StatusGraduate EnrollmentStatus = "graduate"
)

// Valid reports whether s is a known enrollment status.
func (s EnrollmentStatus) Valid() bool {
	switch s {
	case StatusEnrolled, StatusDropped, StatusExpelled, StatusGraduate:
		return true
	}
	return false
}

// FileType identifies the slot a stored file occupies for its student.
type FileType string

const (
	FileTypeDisplayPhoto  FileType = "display_photo"
	FileTypeCor           FileType = "cor"
	FileTypePermit        FileType = "permit"
	FileTypeRegistrarFile FileType = "registrar_file"
	FileTypePayment       FileType = "payment"
)

// RecordStatus is the verification state of a payment or registrar file.
type RecordStatus string

const (
	RecordPending  RecordStatus = "pending"
	RecordVerified RecordStatus = "verified"
)

// Valid reports whether s is a known record status.
func (s RecordStatus) Valid() bool {
	return s == RecordPending || s == RecordVerified
}
