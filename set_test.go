package grove

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovekit/grove/arena"
)

func TestSetInsertContains(t *testing.T) {
	a := arena.New()
	defer a.Close()

	s := NewSet[string]()
	assert.True(t, s.Insert(a, "foo"))
	assert.True(t, s.Insert(a, "bar"))
	assert.True(t, s.Insert(a, "doge"))

	// Duplicates report false and do not change the order.
	assert.False(t, s.Insert(a, "bar"))

	assert.True(t, s.Contains("foo"))
	assert.True(t, s.Contains("doge"))
	assert.False(t, s.Contains("moon"))
	assert.Equal(t, []string{"foo", "bar", "doge"}, slices.Collect(s.All()))
}

func TestSetGet(t *testing.T) {
	a := arena.New()
	defer a.Close()

	s := NewSet[string]()
	s.Insert(a, a.CopyString("foo"))

	got, ok := s.Get("foo")
	require.True(t, ok)
	assert.Equal(t, "foo", got)

	_, ok = s.Get("bar")
	assert.False(t, ok)
}

func TestSetClear(t *testing.T) {
	a := arena.New()
	defer a.Close()

	s := NewSet[int]()
	s.Insert(a, 1)
	s.Insert(a, 2)
	assert.False(t, s.IsEmpty())

	s.Clear()
	assert.True(t, s.IsEmpty())
	assert.False(t, s.Contains(1))

	s.Insert(a, 3)
	assert.Equal(t, []int{3}, slices.Collect(s.All()))
}

func TestSetsEqual(t *testing.T) {
	a := arena.New()
	defer a.Close()

	build := func(items ...string) *Set[string] {
		s := NewSet[string]()
		for _, item := range items {
			s.Insert(a, item)
		}
		return s
	}

	assert.True(t, SetsEqual(build("foo", "bar"), build("foo", "bar")))
	assert.False(t, SetsEqual(build("foo", "bar"), build("bar", "foo")))
	assert.False(t, SetsEqual(build("foo"), build("foo", "bar")))
}

func TestBloomSetInsertContains(t *testing.T) {
	a := arena.New()
	defer a.Close()

	s := NewBloomSet[string]()
	assert.True(t, s.Insert(a, "foo"))
	assert.True(t, s.Insert(a, "bar"))
	assert.False(t, s.Insert(a, "foo"))

	assert.True(t, s.Contains("foo"))
	assert.True(t, s.Contains("bar"))
	assert.False(t, s.Contains("moon"))
	assert.NotZero(t, s.Filter())
	assert.Equal(t, []string{"foo", "bar"}, slices.Collect(s.All()))
}

func TestBloomSetNeverFalseNegative(t *testing.T) {
	a := arena.New()
	defer a.Close()

	items := []string{"alpha", "beta", "gamma", "delta", "epsilon"}

	s := NewBloomSet[string]()
	for _, item := range items {
		s.Insert(a, item)
	}

	for _, item := range items {
		f := Fingerprint(item)
		assert.Equal(t, f, s.Filter()&f, "item %q", item)
		assert.True(t, s.Contains(item))
	}
}

func TestBloomSetClear(t *testing.T) {
	a := arena.New()
	defer a.Close()

	s := NewBloomSet[string]()
	s.Insert(a, "foo")

	s.Clear()
	assert.True(t, s.IsEmpty())
	assert.Zero(t, s.Filter())
	assert.False(t, s.Contains("foo"))
}

func TestBloomSetConversions(t *testing.T) {
	a := arena.New()
	defer a.Close()

	s := NewSet[string]()
	s.Insert(a, "foo")
	s.Insert(a, "bar")

	bs := ToBloomSet(s)
	assert.True(t, bs.Contains("foo"))
	assert.True(t, bs.Contains("bar"))
	assert.False(t, bs.Contains("moon"))

	direct := NewBloomSet[string]()
	direct.Insert(a, "foo")
	direct.Insert(a, "bar")
	assert.True(t, BloomSetsEqual(bs, direct))
	assert.Equal(t, direct.Filter(), bs.Filter())

	assert.True(t, SetsEqual(bs.AsSet(), s))
}
