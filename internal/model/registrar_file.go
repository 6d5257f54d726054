package model

import "time"

// StudentRegistrarFile is the parent header of a registrar-file aggregate,
// owning 1..N StudentFile children of type "registrar_file".
type StudentRegistrarFile struct {
	ID              int64        `json:"-"`
	AdministratorID int64        `json:"-"`
	StudentID       int64        `json:"-"`
	Description     string       `json:"description"`
	Course          string       `json:"course"`
	Year            string       `json:"year"`
	Term            string       `json:"term"`
	Status          RecordStatus `json:"status"`
	Slug            string       `json:"slug"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
	DeletedAt       *time.Time   `json:"-"`
}
