package errtree

import (
	"github.com/wuerges/error-trees/result"
)

// Label attaches one provenance label to a failing result whose payload is a
// raw error value. The error is wrapped as a leaf first, so the failure
// becomes Labeled(label, Leaf(e)). A success passes through unchanged.
//
// Label never discards information and cannot itself fail.
func Label[T, L, E any](r result.Result[T, E], label L) result.Result[T, Tree[L, E]] {
	if r.IsOK() {
		return result.Ok[T, Tree[L, E]](r.Value())
	}

	return result.Err[T](Labeled(label, Leaf[L](r.Err())))
}

// LabelTree attaches one provenance label to a failing result that already
// carries a tree, nesting the previous payload one level deeper. A success
// passes through unchanged.
//
// Applying Label at a leaf call site and LabelTree at each enclosing call
// site builds the provenance chain: the first label applied ends up
// innermost, the last one outermost.
func LabelTree[T, L, E any](r result.Result[T, Tree[L, E]], label L) result.Result[T, Tree[L, E]] {
	if r.IsOK() {
		return r
	}

	return result.Err[T](Labeled(label, r.Err()))
}
