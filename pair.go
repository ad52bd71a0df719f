package adt

import "fmt"

// --- Pair ------------------------------------------------------------------

// Pair holds two values of possibly different types. Zipping two lists
// produces a list of pairs.
type Pair[A, B any] struct {
	Left  A
	Right B
}

// P is a shorthand constructor for a Pair.
func P[A, B any](x A, y B) Pair[A, B] {
	return Pair[A, B]{x, y}
}

// Decompose splits a pair into its two halves.
func (p Pair[A, B]) Decompose() (A, B) {
	return p.Left, p.Right
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("⟨%v,%v⟩", p.Left, p.Right)
}
