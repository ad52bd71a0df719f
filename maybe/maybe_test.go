package maybe_test

import (
	"strconv"
	"testing"

	"github.com/npillmayer/adt/maybe"
	"github.com/stretchr/testify/assert"
)

func TestMaybeZeroValue(t *testing.T) {
	var m maybe.Maybe[int]
	if m.IsJust() {
		t.Error("expected zero value Maybe to be Nothing, isn't")
	}
	if m.WithDefault(7) != 7 {
		t.Errorf("expected default 7 from Nothing, got %d", m.WithDefault(7))
	}
}

func TestMaybeJust(t *testing.T) {
	m := maybe.Just(42)
	v, ok := m.Value()
	if !ok || v != 42 {
		t.Errorf("expected Just(42) to hold 42, got (%d, %v)", v, ok)
	}
	if m.WithDefault(7) != 42 {
		t.Errorf("expected Just(42) to ignore default, got %d", m.WithDefault(7))
	}
}

func TestMaybeMap(t *testing.T) {
	inc := func(n int) int { return n + 1 }
	assert.Equal(t, maybe.Just(8), maybe.Just(7).Map(inc))
	assert.Equal(t, maybe.Nothing[int](), maybe.Nothing[int]().Map(inc))
}

func TestMaybeMapTypeChanging(t *testing.T) {
	m := maybe.Map(strconv.Itoa, maybe.Just(42))
	assert.Equal(t, "42", m.WithDefault(""))
	n := maybe.Map(strconv.Itoa, maybe.Nothing[int]())
	assert.False(t, n.IsJust())
}

func TestMaybeAndThen(t *testing.T) {
	recip := func(x float64) maybe.Maybe[float64] {
		if x == 0 {
			return maybe.Nothing[float64]()
		}
		return maybe.Just(1 / x)
	}
	assert.Equal(t, maybe.Just(0.25), maybe.AndThen(recip, maybe.Just(4.0)))
	assert.False(t, maybe.AndThen(recip, maybe.Just(0.0)).IsJust())
	assert.False(t, maybe.AndThen(recip, maybe.Nothing[float64]()).IsJust())
}
