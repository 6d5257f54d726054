package repository

import (
	"context"
	"database/sql"
)

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres) inside this directory.
// No business logic here, strictly persistence operations.

// DBTX is the subset of database/sql shared by *sql.DB and *sql.Tx. Every
// repository runs against a DBTX so the same queries work inside and outside
// a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// RecordClass names an entity class for slug generation and lookups. Slugs
// are unique per class across all rows, including soft-deleted ones.
type RecordClass string

const (
	ClassAdministrator RecordClass = "administrators"
	ClassStudent       RecordClass = "students"
	ClassFile          RecordClass = "student-files"
	ClassPayment       RecordClass = "student-payments"
	ClassRegistrarFile RecordClass = "student-registrar-files"
)

// RecordRepository is the slug-keyed lookup primitive shared by all services.
// It must reflect the latest transactional state within the same unit of
// work; no caching.
type RecordRepository interface {
	// SlugInUse reports whether any row of the class, including soft-deleted
	// ones, holds the slug.
	SlugInUse(ctx context.Context, class RecordClass, slug string) (bool, error)

	// WithTx returns a copy bound to the given transaction.
	WithTx(tx DBTX) RecordRepository
}
