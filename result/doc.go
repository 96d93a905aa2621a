// Package result exposes the minimal fallible-result type used by other packages.
//
// A Result is either a success carrying a value or a failure carrying an
// error payload. The payload type is a free type parameter rather than the
// built-in error interface, so callers can thread domain error types (or
// whole error trees) through without boxing.
package result
