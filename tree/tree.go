package tree

import (
	"fmt"
	"strings"

	"github.com/npillmayer/adt"
	"github.com/npillmayer/adt/maybe"
)

// Tree is an immutable binary tree with values of type T at its leaves.
// Build trees from the Leaf and Branch constructors:
//
//     t := tree.Branch(tree.Leaf(1), tree.Branch(tree.Leaf(2), tree.Leaf(4)))
//
// The zero value is the uninitialised tree: Size and Depth report 0 for it,
// while value-producing operations (Maximum, Fold) refuse it.
type Tree[T any] struct {
	root *tnode[T]
}

// tnode is a tree node. Either both children are nil (a leaf holding
// value), or both are non-nil (a branch, value unused).
type tnode[T any] struct {
	value T
	left  *tnode[T]
	right *tnode[T]
}

func (n *tnode[T]) isLeaf() bool {
	return n.left == nil
}

// --- Construction ----------------------------------------------------------

// Leaf creates a terminal tree holding a single value.
func Leaf[T any](value T) Tree[T] {
	return Tree[T]{root: &tnode[T]{value: value}}
}

// Branch combines two trees under a new root. Both subtrees must be
// initialised, i.e. have been built with Leaf or Branch.
func Branch[T any](left, right Tree[T]) Tree[T] {
	assertThat(left.root != nil && right.root != nil, "branch over an uninitialised subtree")
	return Tree[T]{root: &tnode[T]{left: left.root, right: right.root}}
}

// --- API -------------------------------------------------------------------

// IsLeaf returns true if t is a single leaf.
func (t Tree[T]) IsLeaf() bool {
	return t.root != nil && t.root.isLeaf()
}

// Root returns the value stored at the root, which exists for leaves only.
// Branches and the uninitialised tree yield Nothing.
func (t Tree[T]) Root() maybe.Maybe[T] {
	if t.root == nil || !t.root.isLeaf() {
		return maybe.Nothing[T]()
	}
	return maybe.Just(t.root.value)
}

// Size counts all nodes of a tree, leaves and branches alike.
// A single leaf has size 1.
func (t Tree[T]) Size() int {
	return size(t.root)
}

func size[T any](n *tnode[T]) int {
	if n == nil {
		return 0
	}
	if n.isLeaf() {
		return 1
	}
	return 1 + size(n.left) + size(n.right)
}

// Depth returns the length of the longest path from the root to a leaf.
// A single leaf has depth 0.
func (t Tree[T]) Depth() int {
	return depth(t.root)
}

func depth[T any](n *tnode[T]) int {
	if n == nil || n.isLeaf() {
		return 0
	}
	d := depth(n.left)
	if r := depth(n.right); r > d {
		d = r
	}
	return 1 + d
}

// Maximum returns the largest leaf value. It panics for the uninitialised
// tree, which holds no values at all.
func Maximum[T adt.Ordered](t Tree[T]) T {
	assertThat(t.root != nil, "maximum of an uninitialised tree")
	return maximum(t.root)
}

func maximum[T adt.Ordered](n *tnode[T]) T {
	if n.isLeaf() {
		return n.value
	}
	m := maximum(n.left)
	if r := maximum(n.right); r > m {
		m = r
	}
	return m
}

// Map transforms every leaf value with f, preserving the tree structure.
func Map[T, U any](t Tree[T], f func(T) U) Tree[U] {
	tracer().Debugf("mapping over tree of size %d", t.Size())
	return Tree[U]{root: mapNode(t.root, f)}
}

func mapNode[T, U any](n *tnode[T], f func(T) U) *tnode[U] {
	if n == nil {
		return nil
	}
	if n.isLeaf() {
		return &tnode[U]{value: f(n.value)}
	}
	return &tnode[U]{left: mapNode(n.left, f), right: mapNode(n.right, f)}
}

// Fold is the structural recursion scheme for trees: leaf is applied to
// every leaf value, branch combines the results of the two subtrees.
// Size, Depth, Maximum and Map are all instances of Fold.
func Fold[T, B any](t Tree[T], leaf func(T) B, branch func(B, B) B) B {
	assertThat(t.root != nil, "fold over an uninitialised tree")
	return fold(t.root, leaf, branch)
}

func fold[T, B any](n *tnode[T], leaf func(T) B, branch func(B, B) B) B {
	if n.isLeaf() {
		return leaf(n.value)
	}
	return branch(fold(n.left, leaf, branch), fold(n.right, leaf, branch))
}

// SizeViaFold is Size expressed through Fold.
func SizeViaFold[T any](t Tree[T]) int {
	if t.root == nil {
		return 0
	}
	return Fold(t, func(T) int { return 1 }, func(l, r int) int {
		return 1 + l + r
	})
}

// DepthViaFold is Depth expressed through Fold.
func DepthViaFold[T any](t Tree[T]) int {
	if t.root == nil {
		return 0
	}
	return Fold(t, func(T) int { return 0 }, func(l, r int) int {
		if r > l {
			l = r
		}
		return 1 + l
	})
}

// MaximumViaFold is Maximum expressed through Fold.
func MaximumViaFold[T adt.Ordered](t Tree[T]) T {
	return Fold(t, adt.Identity[T], func(l, r T) T {
		if r > l {
			l = r
		}
		return l
	})
}

// Equal compares two trees node-wise: same shape, same leaf values.
func Equal[T comparable](a, b Tree[T]) bool {
	return equalNodes(a.root, b.root)
}

func equalNodes[T comparable](a, b *tnode[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.isLeaf() != b.isLeaf() {
		return false
	}
	if a.isLeaf() {
		return a.value == b.value
	}
	return equalNodes(a.left, b.left) && equalNodes(a.right, b.right)
}

func (t Tree[T]) String() string {
	var sb strings.Builder
	writeNode(&sb, t.root)
	return sb.String()
}

func writeNode[T any](sb *strings.Builder, n *tnode[T]) {
	if n == nil {
		sb.WriteString("()")
		return
	}
	if n.isLeaf() {
		fmt.Fprintf(sb, "⟨%v⟩", n.value)
		return
	}
	sb.WriteByte('(')
	writeNode(sb, n.left)
	sb.WriteByte(' ')
	writeNode(sb, n.right)
	sb.WriteByte(')')
}
