package tree

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	tp "github.com/xlab/treeprint"
)

// mockTree builds ⟨1⟩ (⟨2⟩ ⟨4⟩), i.e. Branch(Leaf(1), Branch(Leaf(2), Leaf(4))).
func mockTree() Tree[int] {
	return Branch(Leaf(1), Branch(Leaf(2), Leaf(4)))
}

func TestLeaf(t *testing.T) {
	l := Leaf(1)
	if !l.IsLeaf() {
		t.Error("expected Leaf(1) to be a leaf, isn't")
	}
	if l.Size() != 1 {
		t.Errorf("expected size of a leaf to be 1, is %d", l.Size())
	}
	if l.Depth() != 0 {
		t.Errorf("expected depth of a leaf to be 0, is %d", l.Depth())
	}
	v, ok := l.Root().Value()
	if !ok || v != 1 {
		t.Errorf("expected root value of Leaf(1) to be 1, got (%d, %v)", v, ok)
	}
}

func TestZeroValueTree(t *testing.T) {
	var z Tree[int]
	if z.IsLeaf() {
		t.Error("expected zero value tree not to be a leaf")
	}
	if z.Size() != 0 || z.Depth() != 0 {
		t.Errorf("expected zero value tree to have size/depth 0, got %d/%d", z.Size(), z.Depth())
	}
	if z.Root().IsJust() {
		t.Error("expected zero value tree to hold no root value")
	}
}

func TestSize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adt.tree")
	defer teardown()
	//
	tree := mockTree()
	t.Logf("tree = %s", printTree(tree))
	if tree.Size() != 5 {
		t.Errorf("expected size of mock tree to be 5, is %d", tree.Size())
	}
}

func TestDepth(t *testing.T) {
	tree := mockTree()
	if tree.Depth() != 2 {
		t.Errorf("expected depth of mock tree to be 2, is %d", tree.Depth())
	}
	lopsided := Branch(mockTree(), Leaf(9))
	if lopsided.Depth() != 3 {
		t.Errorf("expected depth of lopsided tree to be 3, is %d", lopsided.Depth())
	}
}

func TestMaximum(t *testing.T) {
	tree := mockTree()
	if m := Maximum(tree); m != 4 {
		t.Errorf("expected maximum of mock tree to be 4, is %d", m)
	}
	if m := Maximum(Leaf(7)); m != 7 {
		t.Errorf("expected maximum of Leaf(7) to be 7, is %d", m)
	}
}

func TestMaximumOfZeroValuePanics(t *testing.T) {
	var z Tree[int]
	assert.Panics(t, func() { Maximum(z) })
}

func TestMap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adt.tree")
	defer teardown()
	//
	tree := mockTree()
	inc := Map(tree, func(n int) int { return n + 1 })
	want := Branch(Leaf(2), Branch(Leaf(3), Leaf(5)))
	t.Logf("mapped tree = %s", printTree(inc))
	if !Equal(inc, want) {
		t.Errorf("expected mapped tree to be %v, is %v", want, inc)
	}
	if !Equal(tree, mockTree()) {
		t.Errorf("expected original tree to be unchanged, is %v", tree)
	}
}

func TestMapChangesElementType(t *testing.T) {
	tree := Branch(Leaf(1), Leaf(22))
	s := Map(tree, func(n int) bool { return n > 9 })
	assert.Equal(t, "(⟨false⟩ ⟨true⟩)", s.String())
}

func TestMapPreservesShape(t *testing.T) {
	tree := mockTree()
	m := Map(tree, func(n int) int { return -n })
	assert.Equal(t, tree.Size(), m.Size())
	assert.Equal(t, tree.Depth(), m.Depth())
}

func TestFold(t *testing.T) {
	tree := mockTree()
	sum := Fold(tree, func(n int) int { return n }, func(l, r int) int { return l + r })
	if sum != 7 {
		t.Errorf("expected fold to sum leaves to 7, is %d", sum)
	}
}

func TestFoldDerivedOpsAgree(t *testing.T) {
	trees := []Tree[int]{
		Leaf(3),
		mockTree(),
		Branch(mockTree(), Branch(Leaf(8), mockTree())),
	}
	for _, tree := range trees {
		assert.Equal(t, tree.Size(), SizeViaFold(tree), "size via fold diverges for %v", tree)
		assert.Equal(t, tree.Depth(), DepthViaFold(tree), "depth via fold diverges for %v", tree)
		assert.Equal(t, Maximum(tree), MaximumViaFold(tree), "maximum via fold diverges for %v", tree)
	}
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(mockTree(), mockTree()))
	assert.False(t, Equal(mockTree(), Leaf(1)))
	assert.False(t, Equal(Leaf(1), Leaf(2)))
	var z Tree[int]
	assert.True(t, Equal(z, z))
	assert.False(t, Equal(z, Leaf(1)))
}

func TestStringFormat(t *testing.T) {
	if s := mockTree().String(); s != "(⟨1⟩ (⟨2⟩ ⟨4⟩))" {
		t.Errorf("expected (⟨1⟩ (⟨2⟩ ⟨4⟩)), got %q", s)
	}
}

// --- Print tree ------------------------------------------------------------

func printTree[T any](t Tree[T]) string {
	printer := tp.New()
	printNode(printer, t.root)
	return "\n" + printer.String()
}

func printNode[T any](printer tp.Tree, node *tnode[T]) {
	if node == nil {
		return
	}
	if node.isLeaf() {
		printer.AddNode(node.value)
		return
	}
	branch := printer.AddBranch("⋀")
	printNode(branch, node.left)
	printNode(branch, node.right)
}
