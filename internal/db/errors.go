package db

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for database operations.
var (
	ErrKeyNotFound = errors.New("db: key not found")
)

// Op constants map to Valkey/Redis command names for error context.
const (
	OpPing    = "PING"
	OpDel     = "DEL"
	OpScan    = "SCAN"
	OpJSONSet = "JSON.SET"
	OpJSONGet = "JSON.GET"
)

// Error wraps an underlying error with the operation name for diagnostics.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }

// KeyErrors reports keys of a pipelined command that failed on the server
// while the remaining keys succeeded.
type KeyErrors struct {
	Op   string
	Errs map[string]error
}

func (e *KeyErrors) Error() string {
	keys := e.Keys()
	if len(keys) == 0 {
		return e.Op + ": no failed keys"
	}
	return fmt.Sprintf("%s: %d keys failed (first %s: %v)", e.Op, len(keys), keys[0], e.Errs[keys[0]])
}

// Keys returns the failed keys in sorted order.
func (e *KeyErrors) Keys() []string {
	keys := make([]string, 0, len(e.Errs))
	for k := range e.Errs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
