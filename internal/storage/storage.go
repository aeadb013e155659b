package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

// Package storage contains the document storage abstraction and its backends:
// a local public directory and an S3-compatible bucket.

var (
	// ErrObjectExists is returned by Put when the key is already taken.
	// Backends never overwrite an existing object they can detect.
	ErrObjectExists = errors.New("object already exists")
	// ErrObjectNotFound is returned by Get for an unknown key.
	ErrObjectNotFound = errors.New("object not found")
)

// PutObjectOptions define optional parameters for uploading objects.
// Size should be the exact number of bytes if known, -1 otherwise.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about a stored object.
type ObjectInfo struct {
	Key          string
	Path         string
	Size         int64
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Storage writes and reads published documents by slash-separated key.
type Storage interface {
	// Put stores the reader's content under key.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Get opens an object for streaming alongside its info.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
}
