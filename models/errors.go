package models

import "fmt"

// Fault taxonomy for the gateway.  Every failure a tenant can cause maps
// onto exactly one of these so the frontend can decide between surfacing
// an error message and rendering an error-row dataset.

// UnsupportedFormatError an upload arrived with a file extension we have
// no registered decoder for.  Not retryable, storage is never touched.
type UnsupportedFormatError struct {
	Ext string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file type: %s", e.Ext)
}

// StorageError an append into a tenant table failed (schema/type conflict
// with a previous upload, disk, etc).  Always propagated, never swallowed,
// no partial-batch guarantee beyond the single transaction.
type StorageError struct {
	Table string
	Err   error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage write to %s failed: %v", e.Table, e.Err)
}
func (e *StorageError) Unwrap() error { return e.Err }

// QueryError execution of tenant-supplied query text failed.
type QueryError struct {
	Query string
	Err   error
}

func (e *QueryError) Error() string { return fmt.Sprintf("query failed: %v", e.Err) }
func (e *QueryError) Unwrap() error { return e.Err }

// ConnectionError open/close of the backing storage file failed.
type ConnectionError struct {
	Path string
	Err  error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("could not open storage at %s: %v", e.Path, e.Err)
}
func (e *ConnectionError) Unwrap() error { return e.Err }
