package errtree

import (
	"github.com/wuerges/error-trees/result"
)

// Partition splits a batch of results into successes and failures, each in
// the original relative order. Every entry lands on exactly one side, so
// len(oks)+len(errs) equals len(results). The failure payload type is free:
// the same function serves batches of raw errors and batches of trees.
func Partition[T, X any](results []result.Result[T, X]) (oks []T, errs []X) {
	for _, r := range results {
		if v, e, ok := r.Unpack(); ok {
			oks = append(oks, v)
		} else {
			errs = append(errs, e)
		}
	}

	return oks, errs
}

// IntoResult collapses a partitioned batch into one all-or-nothing result.
//
// With no failures it succeeds with oks unchanged and in order. With any
// failure it fails with Group(errs...), discarding oks: a single failing
// sibling fails the whole batch. A lone failure is still wrapped in a group
// of size 1, so the failure shape does not depend on how many siblings
// failed.
func IntoResult[T, L, E any](oks []T, errs []Tree[L, E]) result.Result[[]T, Tree[L, E]] {
	if len(errs) == 0 {
		return result.Ok[[]T, Tree[L, E]](oks)
	}

	return result.Err[[]T](Group(errs...))
}

// IntoResultErrs is IntoResult for a batch of raw, unlabeled errors: each
// one is wrapped as a leaf before grouping.
func IntoResultErrs[T, L, E any](oks []T, errs []E) result.Result[[]T, Tree[L, E]] {
	if len(errs) == 0 {
		return result.Ok[[]T, Tree[L, E]](oks)
	}

	leaves := make([]Tree[L, E], len(errs))
	for i, e := range errs {
		leaves[i] = Leaf[L](e)
	}

	return result.Err[[]T](Group(leaves...))
}
