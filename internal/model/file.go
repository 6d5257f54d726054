package model

import "time"

// StudentFile is one version of a stored file. A row with DeletedAt unset is
// the active version for its slot; superseded versions keep their row (and
// their bytes, demoted to private visibility) for the audit trail.
//
// At most one active row exists per (student, type) for singleton types
// (display_photo, cor, permit); payment and registrar_file rows are grouped
// under their parent record through PaymentID / RegistrarFileID.
type StudentFile struct {
	ID              int64      `json:"-"`
	AdministratorID int64      `json:"-"`
	StudentID       int64      `json:"-"`
	PaymentID       *int64     `json:"-"`
	RegistrarFileID *int64     `json:"-"`
	Disk            string     `json:"-"`
	Type            FileType   `json:"type"`
	Description     string     `json:"description,omitempty"`
	Path            string     `json:"-"`
	Extension       string     `json:"extension"`
	Course          string     `json:"course"`
	Year            string     `json:"year"`
	Term            string     `json:"term"`
	Slug            string     `json:"slug"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	DeletedAt       *time.Time `json:"-"`
}

// Active reports whether this row is the current version for its slot.
func (f *StudentFile) Active() bool {
	return f.DeletedAt == nil
}
