/*
Package tree implements an immutable full binary tree.

A tree is either a leaf carrying a value, or a branch owning exactly two
subtrees. There are no unary branches and no nil children: the only
constructors are Leaf and Branch, so every reachable tree is well-formed by
construction. Values are never modified after creation; every
transformation returns a new tree, sharing untouched subtrees with the
original.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'adt.tree'.
func tracer() tracing.Trace {
	return tracing.Select("adt.tree")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("adt.tree: "+msg, msgargs...)
		panic(msg)
	}
}
