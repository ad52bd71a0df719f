/*
Package list implements an immutable persistent singly linked list.

A list is either empty or a Cons cell: a head element in front of a tail
list. Lists have copy-on-write behaviour: every “modification” (prepending,
dropping, mapping, …) produces a new list value and leaves the original
unchanged. Tails are shared between incarnations, which makes prepending
cheap, and it makes lists inherently concurrency-safe.

Operations which change the element type (Map, FoldRight, FlatMap, ZipWith)
are package-level functions, since Go methods cannot introduce additional
type parameters. Order-respecting traversals are implemented as loops over
the cell chain, keeping stack usage constant for long lists.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package list

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'adt.list'.
func tracer() tracing.Trace {
	return tracing.Select("adt.list")
}
