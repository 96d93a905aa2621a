// Package result exposes the minimal fallible-result type used by other packages.
package result

// Result is a success carrying T or a failure carrying E, never both.
//
// The zero Result is a failure carrying the zero value of E. Build values
// with Ok and Err; the fields are unexported so a Result cannot hold a
// success and a failure at once.
type Result[T, E any] struct {
	ok  bool
	val T
	err E
}

// Ok returns a success carrying v.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{ok: true, val: v}
}

// Err returns a failure carrying e.
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{err: e}
}

// ------ accessors

// IsOK reports whether r is a success.
func (r Result[T, E]) IsOK() bool { return r.ok }

// Value returns the success value, or the zero value of T on failure.
func (r Result[T, E]) Value() T { return r.val }

// Err returns the failure payload, or the zero value of E on success.
func (r Result[T, E]) Err() E { return r.err }

// Unpack destructures r in one call. The bool mirrors IsOK; exactly one of
// the other two return values is meaningful.
func (r Result[T, E]) Unpack() (T, E, bool) { return r.val, r.err, r.ok }
