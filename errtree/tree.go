// Package errtree collects failures from independent operations into a
// labeled tree instead of stopping at the first one.
package errtree

// Tree is a finite, acyclic tree of failures with provenance labels.
//
// A Tree has exactly one of three shapes:
//   - a leaf holding one error value,
//   - a labeled node holding one child plus one label,
//   - a group holding the ordered failures of one batch.
//
// L is the label type, E the underlying error type; neither is constrained.
// Trees are immutable once constructed. The interface is sealed: the only
// implementations are the ones built by Leaf, Labeled and Group.
//
// Type parameters are ordered [L, E] so call sites that cannot infer L can
// supply it alone and leave E inferred, e.g. errtree.Leaf[string](err).
type Tree[L, E any] interface {
	// flatten appends one FlatError per reachable leaf to out, in
	// left-to-right leaf order, and returns the extended slice.
	flatten(out []FlatError[L, E]) []FlatError[L, E]
}

type leaf[L, E any] struct {
	err E
}

type labeled[L, E any] struct {
	label L
	child Tree[L, E]
}

type group[L, E any] struct {
	children []Tree[L, E]
}

// compile-time guarantee that every variant implements Tree
var (
	_ Tree[string, error] = leaf[string, error]{}
	_ Tree[string, error] = labeled[string, error]{}
	_ Tree[string, error] = group[string, error]{}
)

// ------ constructors

// Leaf wraps a single error value as a terminal tree. The conversion is
// total: any E is a valid leaf.
func Leaf[L, E any](err E) Tree[L, E] {
	return leaf[L, E]{err: err}
}

// Labeled annotates t with one provenance label. Labeling twice nests: the
// label applied first ends up nearest the leaves.
func Labeled[L, E any](label L, t Tree[L, E]) Tree[L, E] {
	return labeled[L, E]{label: label, child: t}
}

// Group collects the failures of one batch as ordered siblings. Order is
// significant and preserved by every later operation. Callers must pass at
// least one subtree; the library itself never builds an empty group. A group
// carries no label of its own: to label the aggregate, wrap it with Labeled.
func Group[L, E any](subtrees ...Tree[L, E]) Tree[L, E] {
	return group[L, E]{children: subtrees}
}
