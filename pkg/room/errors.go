package room

import "errors"

// ErrTableNotFound is an error when no table exists with the given UUID
var ErrTableNotFound = errors.New("table not found")

// ErrTableClosed is an error when a request reaches a dealer whose shift has ended
var ErrTableClosed = errors.New("table is closed")
