package model

import "time"

// Administrator is a staff account. Role distinguishes plain admins from
// super admins; destructive operations require RoleSuperAdmin.
type Administrator struct {
	ID           int64      `json:"-"`
	FirstName    string     `json:"first_name"`
	MiddleName   string     `json:"middle_name,omitempty"`
	LastName     string     `json:"last_name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         Role       `json:"role"`
	Slug         string     `json:"slug"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"-"`
}
