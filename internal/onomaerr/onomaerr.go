// Package onomaerr collects the tagged error types shared by the Indexer,
// Parser, and Watcher: a small set of variants per component, each
// wrapping its cause.
package onomaerr

import "fmt"

// Parser errors.

// InvalidURIError is returned when a file's extension does not map to a
// supported Language.
type InvalidURIError struct {
	URI string
}

func (e *InvalidURIError) Error() string {
	return fmt.Sprintf("the provided URI is invalid: %s", e.URI)
}

// InvalidFileError wraps a failure to open or read a source file.
type InvalidFileError struct {
	Path string
	Err  error
}

func (e *InvalidFileError) Error() string {
	return fmt.Sprintf("the provided file could not be opened (%s): %v", e.Path, e.Err)
}

func (e *InvalidFileError) Unwrap() error { return e.Err }

// InvalidLanguageError is returned when a grammar could not be configured
// for a language.
type InvalidLanguageError struct {
	Language string
	Err      error
}

func (e *InvalidLanguageError) Error() string {
	return fmt.Sprintf("setting the parser failed as the language was not valid (%s): %v", e.Language, e.Err)
}

func (e *InvalidLanguageError) Unwrap() error { return e.Err }

// InvalidQueryError wraps a malformed structural query.
type InvalidQueryError struct {
	Language string
	Err      error
}

func (e *InvalidQueryError) Error() string {
	return fmt.Sprintf("invalid query for %s: %v", e.Language, e.Err)
}

func (e *InvalidQueryError) Unwrap() error { return e.Err }

// Indexer errors.

// DatabaseFileError is returned when the store's parent directory could
// not be created, or the store's database file could not be opened.
type DatabaseFileError struct {
	Path string
	Err  error
}

func (e *DatabaseFileError) Error() string {
	return fmt.Sprintf("unable to create or open the index file path (%s): %v", e.Path, e.Err)
}

func (e *DatabaseFileError) Unwrap() error { return e.Err }

// InvalidPathError is returned when a path is not a valid workspace member.
type InvalidPathError struct {
	Path   string
	Reason string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("provided file path (%s) was not valid: %s", e.Path, e.Reason)
}

// ParsingFailedError wraps a parser failure encountered while indexing.
type ParsingFailedError struct {
	Path string
	Err  error
}

func (e *ParsingFailedError) Error() string {
	return fmt.Sprintf("parsing error occurred while indexing file %s: %v", e.Path, e.Err)
}

func (e *ParsingFailedError) Unwrap() error { return e.Err }

// QueryFailedError wraps a database error encountered while indexing.
type QueryFailedError struct {
	Err error
}

func (e *QueryFailedError) Error() string {
	return fmt.Sprintf("database error occurred during indexing: %v", e.Err)
}

func (e *QueryFailedError) Unwrap() error { return e.Err }

// MigrationFailedError wraps a schema migration failure.
type MigrationFailedError struct {
	Err error
}

func (e *MigrationFailedError) Error() string {
	return fmt.Sprintf("database migration failed: %v", e.Err)
}

func (e *MigrationFailedError) Unwrap() error { return e.Err }

// InvalidRangeError is returned when a parsed range does not fit the
// store's 32-bit integer columns.
type InvalidRangeError struct {
	StartLine, StartColumn, EndLine, EndColumn int
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("the provided range is invalid: (%d,%d)-(%d,%d)",
		e.StartLine, e.StartColumn, e.EndLine, e.EndColumn)
}

// Watcher errors.

// NotifySetupFailedError wraps a failure to start the filesystem watcher.
type NotifySetupFailedError struct {
	Err error
}

func (e *NotifySetupFailedError) Error() string {
	return fmt.Sprintf("an error occurred when setting up the debouncer for file system events: %v", e.Err)
}

func (e *NotifySetupFailedError) Unwrap() error { return e.Err }

// IndexingFailedError wraps an Indexer error surfaced from the watcher.
type IndexingFailedError struct {
	Err error
}

func (e *IndexingFailedError) Error() string {
	return fmt.Sprintf("an error occurred when attempting to run indexing: %v", e.Err)
}

func (e *IndexingFailedError) Unwrap() error { return e.Err }

// DeindexingFailedError wraps an Indexer error surfaced during de-indexing.
type DeindexingFailedError struct {
	Err error
}

func (e *DeindexingFailedError) Error() string {
	return fmt.Sprintf("an error occurred when attempting to deindex a file: %v", e.Err)
}

func (e *DeindexingFailedError) Unwrap() error { return e.Err }
