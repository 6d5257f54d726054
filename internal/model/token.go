package model

import "time"

// Token is an opaque bearer credential. Only the SHA-256 hash of the plain
// token is persisted; the plain value is returned once at issuance.
type Token struct {
	ID        int64
	ActorKind ActorKind
	ActorID   int64
	TokenHash string
	CreatedAt time.Time
	RevokedAt *time.Time
}

// UserLog is an append-only audit entry. Entries are never mutated or
// deleted.
type UserLog struct {
	ID              int64     `json:"-"`
	AdministratorID *int64    `json:"-"`
	StudentID       *int64    `json:"-"`
	Description     string    `json:"description"`
	Page            string    `json:"page"`
	CreatedAt       time.Time `json:"created_at"`
}
