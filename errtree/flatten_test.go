package errtree_test

import (
	"reflect"
	"testing"

	"github.com/wuerges/error-trees/errtree"
	"github.com/wuerges/error-trees/result"
)

func TestFlattenResult_SuccessPassesThrough(t *testing.T) {
	t.Parallel()

	r := errtree.FlattenResult(result.Ok[[]int, opTree]([]int{1, 2}))

	if !r.IsOK() {
		t.Fatalf("FlattenResult must not turn a success into a failure")
	}

	if want := []int{1, 2}; !reflect.DeepEqual(r.Value(), want) {
		t.Fatalf("Value=%v want=%v", r.Value(), want)
	}
}

func TestFlattenResult_FailureBecomesFlatList(t *testing.T) {
	t.Parallel()

	tree := errtree.Labeled("parent", errtree.Group(
		errtree.Labeled("label1", errtree.Leaf[string](opError{msg: "e1"})),
		errtree.Labeled("label2", errtree.Leaf[string](opError{msg: "e2"})),
	))

	r := errtree.FlattenResult(result.Err[[]int](tree))

	if r.IsOK() {
		t.Fatalf("FlattenResult must not turn a failure into a success")
	}

	want := []opFlat{
		{Path: []string{"label1", "parent"}, Err: opError{msg: "e1"}},
		{Path: []string{"label2", "parent"}, Err: opError{msg: "e2"}},
	}
	if got := r.Err(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Err=%+v want=%+v", got, want)
	}
}

// Two independent operations fail, each labeled at its call site; the batch
// is collected and labeled at the parent level; flattening reports both
// failures with full provenance, in batch order.
func TestEndToEnd_TwoFaultyOperations(t *testing.T) {
	t.Parallel()

	result1 := errtree.Label(faulty("error1"), "first faulty")
	result2 := errtree.Label(faulty("error2"), "second faulty")

	oks, errs := errtree.Partition([]result.Result[struct{}, opTree]{result1, result2})
	aggregate := errtree.LabelTree(errtree.IntoResult(oks, errs), "parent function")

	flat := errtree.FlattenResult(aggregate)
	if flat.IsOK() {
		t.Fatalf("aggregate of two failures must fail")
	}

	want := []opFlat{
		{Path: []string{"first faulty", "parent function"}, Err: opError{msg: "error1"}},
		{Path: []string{"second faulty", "parent function"}, Err: opError{msg: "error2"}},
	}
	if got := flat.Err(); !reflect.DeepEqual(got, want) {
		t.Fatalf("flat=%+v want=%+v", got, want)
	}
}

func TestEndToEnd_AllSuccessesSurviveUnchanged(t *testing.T) {
	t.Parallel()

	batch := []result.Result[int, opTree]{
		errtree.Label(result.Ok[int, opError](10), "op 1"),
		errtree.Label(result.Ok[int, opError](20), "op 2"),
		errtree.Label(result.Ok[int, opError](30), "op 3"),
	}

	oks, errs := errtree.Partition(batch)
	aggregate := errtree.LabelTree(errtree.IntoResult(oks, errs), "parent function")

	flat := errtree.FlattenResult(aggregate)
	if !flat.IsOK() {
		t.Fatalf("all-success batch must succeed; got failures %+v", flat.Err())
	}

	if want := []int{10, 20, 30}; !reflect.DeepEqual(flat.Value(), want) {
		t.Fatalf("Value=%v want=%v", flat.Value(), want)
	}
}

func TestEndToEnd_MixedBatchReportsOnlyFailures(t *testing.T) {
	t.Parallel()

	batch := []result.Result[int, opTree]{
		errtree.Label(result.Ok[int, opError](10), "op 1"),
		errtree.Label(result.Err[int](opError{msg: "e2"}), "op 2"),
		errtree.Label(result.Ok[int, opError](30), "op 3"),
		errtree.Label(result.Err[int](opError{msg: "e4"}), "op 4"),
	}

	oks, errs := errtree.Partition(batch)
	aggregate := errtree.LabelTree(errtree.IntoResult(oks, errs), "parent")

	flat := errtree.FlattenResult(aggregate)
	if flat.IsOK() {
		t.Fatalf("batch with failures must fail")
	}

	want := []opFlat{
		{Path: []string{"op 2", "parent"}, Err: opError{msg: "e2"}},
		{Path: []string{"op 4", "parent"}, Err: opError{msg: "e4"}},
	}
	if got := flat.Err(); !reflect.DeepEqual(got, want) {
		t.Fatalf("flat=%+v want=%+v", got, want)
	}
}
