// Package main demonstrates usage of the error-trees packages.
package main

import (
	"errors"
	"fmt"

	"github.com/wuerges/error-trees/errtree"
	"github.com/wuerges/error-trees/result"
)

// faultyFunction is a stand-in for an operation that fails.
func faultyFunction() result.Result[struct{}, error] {
	return result.Err[struct{}](errors.New("error"))
}

// parentFunction runs two independent operations, labels each failure at its
// call site, and reports them together under its own label.
func parentFunction() result.Result[[]struct{}, errtree.Tree[string, error]] {
	result1 := errtree.Label(faultyFunction(), "first faulty")
	result2 := errtree.Label(faultyFunction(), "second faulty")

	oks, errs := errtree.Partition([]result.Result[struct{}, errtree.Tree[string, error]]{result1, result2})

	return errtree.LabelTree(errtree.IntoResult(oks, errs), "parent function")
}

func main() {
	flat := errtree.FlattenResult(parentFunction())
	if flat.IsOK() {
		fmt.Println("all operations succeeded")
		return
	}

	for _, fe := range flat.Err() {
		fmt.Printf("path=%v error=%v\n", fe.Path, fe.Err)
	}
	// Prints:
	// path=[first faulty parent function] error=error
	// path=[second faulty parent function] error=error
}
