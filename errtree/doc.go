// Package errtree collects failures from independent operations into a
// labeled tree instead of stopping at the first one.
//
// It exposes a single recursive type Tree with three shapes (leaf, labeled
// node, group) and four combinators that cover the whole lifecycle of an
// aggregate failure:
//
//   - Label / LabelTree attach one provenance label to a failing result
//   - Partition splits a batch of results into successes and failures
//   - IntoResult collapses a partitioned batch into one all-or-nothing result
//   - Flatten / FlattenResult turn a tree into an ordered list of
//     (path, error) pairs for inspection
//
// Key characteristics:
//   - Generic over the label type L and the error type E; neither needs to
//     satisfy any interface
//   - Trees are immutable once built and never shared between trees
//   - Every leaf fed into a batch stays reachable through flattening; order
//     always matches the original batch order
//   - Pure and synchronous: no I/O, no logging, no side effects
package errtree
