package storage

import (
	"context"
	"io"
	"time"
)

// Package storage contains file/object storage abstractions for S3-compatible
// object stores. Implementations must avoid using local disk and rely on
// streaming I/O only.

// Visibility controls whether an object is publicly addressable.
type Visibility string

const (
	Public  Visibility = "public"
	Private Visibility = "private"
)

// PutObjectOptions define optional parameters for uploading objects.
// Size should be the exact number of bytes if known; if unknown, set to -1
// and the implementation will buffer/chunk as supported by the backend.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Visibility  Visibility
	Metadata    map[string]string
}

// ObjectInfo contains basic information about an object in storage.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Storage is a reusable, S3-compatible object storage client interface.
//
// "Not found" is never an error: Exists returns false and URL returns the
// empty string. Write and visibility failures are signaled, not swallowed.
// Callers that depend on a visibility change must read it back with
// GetVisibility; the adapter does not verify its own writes.
type Storage interface {
	// Put uploads an object under the given key with the requested initial
	// visibility.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Get retrieves an object's content as a streaming reader alongside its info.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	// Exists reports whether an object is present under the key.
	Exists(ctx context.Context, key string) (bool, error)
	// SetVisibility switches an object between public and private.
	SetVisibility(ctx context.Context, key string, v Visibility) error
	// GetVisibility returns the object's current visibility.
	GetVisibility(ctx context.Context, key string) (Visibility, error)
	// URL resolves the public URL for the object, or "" if it does not exist.
	URL(ctx context.Context, key string) (string, error)
	// PresignGet returns a time-limited URL usable without credentials.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
	// Delete removes an object by key.
	Delete(ctx context.Context, key string) error
}
