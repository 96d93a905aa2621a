package errtree

import (
	"github.com/wuerges/error-trees/result"
)

// FlatError is one leaf failure with its full provenance chain. Path lists
// the nearest (innermost) label first and the outermost label last. It is a
// derived view produced by flattening; the tree stays the source of truth.
type FlatError[L, E any] struct {
	Path []L
	Err  E
}

// Flatten converts a tree into an ordered list of leaf failures, one
// FlatError per leaf, in left-to-right leaf order. That order equals the
// evaluation order of the batches the tree was collected from.
func Flatten[L, E any](t Tree[L, E]) []FlatError[L, E] {
	return t.flatten(nil)
}

// FlattenResult applies Flatten to the failure side of a result. A success
// passes through unchanged.
func FlattenResult[T, L, E any](r result.Result[T, Tree[L, E]]) result.Result[T, []FlatError[L, E]] {
	if r.IsOK() {
		return result.Ok[T, []FlatError[L, E]](r.Value())
	}

	return result.Err[T](Flatten(r.Err()))
}

// ------ traversal
//
// Paths are built bottom-up: a leaf starts with an empty path and every
// enclosing labeled node appends its label after flattening its child, so
// paths come out innermost-first with no reverse step. Each path slice is
// born at its own leaf and never shared between entries.

func (n leaf[L, E]) flatten(out []FlatError[L, E]) []FlatError[L, E] {
	return append(out, FlatError[L, E]{Err: n.err})
}

func (n labeled[L, E]) flatten(out []FlatError[L, E]) []FlatError[L, E] {
	start := len(out)
	out = n.child.flatten(out)

	for i := start; i < len(out); i++ {
		out[i].Path = append(out[i].Path, n.label)
	}

	return out
}

func (n group[L, E]) flatten(out []FlatError[L, E]) []FlatError[L, E] {
	for _, child := range n.children {
		out = child.flatten(out)
	}

	return out
}
