package grove

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovekit/grove/arena"
)

func TestListZeroValue(t *testing.T) {
	var l List[int]
	assert.True(t, l.IsEmpty())
	assert.Empty(t, slices.Collect(l.All()))

	_, ok := l.Shift()
	assert.False(t, ok)
	_, ok = l.Only()
	assert.False(t, ok)
}

func TestListOf(t *testing.T) {
	a := arena.New()
	defer a.Close()

	l := ListOf(a, "doge")
	assert.False(t, l.IsEmpty())
	assert.Equal(t, []string{"doge"}, slices.Collect(l.All()))
}

func TestListFromSlice(t *testing.T) {
	a := arena.New()
	defer a.Close()

	l := ListFromSlice(a, []string{"doge", "to", "the", "moon!"})
	assert.Equal(t, []string{"doge", "to", "the", "moon!"}, slices.Collect(l.All()))
}

func TestListPrepend(t *testing.T) {
	a := arena.New()
	defer a.Close()

	var l List[int]
	l.Prepend(a, 3)
	l.Prepend(a, 2)
	l.Prepend(a, 1)

	assert.Equal(t, []int{1, 2, 3}, slices.Collect(l.All()))
}

func TestListShift(t *testing.T) {
	a := arena.New()
	defer a.Close()

	l := ListFromSlice(a, []int{1, 2, 3})

	v, ok := l.Shift()
	require.True(t, ok)
	assert.Equal(t, 1, v)

	v, ok = l.Shift()
	require.True(t, ok)
	assert.Equal(t, 2, v)

	v, ok = l.Shift()
	require.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = l.Shift()
	assert.False(t, ok)
	assert.True(t, l.IsEmpty())
}

func TestListShiftCopy(t *testing.T) {
	a := arena.New()
	defer a.Close()

	l := ListFromSlice(a, []int{1, 2, 3})

	v, rest, ok := l.ShiftCopy()
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, []int{2, 3}, slices.Collect(rest.All()))
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(l.All()))

	var empty List[int]
	_, _, ok = empty.ShiftCopy()
	assert.False(t, ok)
}

func TestListOnly(t *testing.T) {
	a := arena.New()
	defer a.Close()

	l := ListOf(a, 42)
	v, ok := l.Only()
	require.True(t, ok)
	assert.Equal(t, 42, v)

	l.Prepend(a, 1)
	_, ok = l.Only()
	assert.False(t, ok)
}

func TestListClear(t *testing.T) {
	a := arena.New()
	defer a.Close()

	l := ListFromSlice(a, []int{1, 2})
	l.Clear()
	assert.True(t, l.IsEmpty())
}

func TestListCopySharesNodes(t *testing.T) {
	a := arena.New()
	defer a.Close()

	l := ListFromSlice(a, []int{1, 2, 3})

	// A copy is one pointer; shifting it leaves the original intact.
	c := l
	v, ok := c.Shift()
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, []int{2, 3}, slices.Collect(c.All()))
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(l.All()))
}

func TestListsEqual(t *testing.T) {
	a := arena.New()
	defer a.Close()

	assert.True(t, ListsEqual(ListFromSlice(a, []int{1, 2}), ListFromSlice(a, []int{1, 2})))
	assert.False(t, ListsEqual(ListFromSlice(a, []int{1, 2}), ListFromSlice(a, []int{2, 1})))
	assert.False(t, ListsEqual(ListFromSlice(a, []int{1}), ListFromSlice(a, []int{1, 2})))
	assert.True(t, ListsEqual(List[int]{}, List[int]{}))
}

func TestListBuilder(t *testing.T) {
	a := arena.New()
	defer a.Close()

	b := NewListBuilder[string](a)
	l := b.List()
	assert.True(t, l.IsEmpty())

	b.Push("doge")
	b.Push("to")
	b.Push("the")
	b.Push("moon!")

	l = b.List()
	assert.Equal(t, []string{"doge", "to", "the", "moon!"}, slices.Collect(l.All()))

	// A list taken from a live builder sees later pushes.
	b.Push("soon")
	assert.Equal(t, []string{"doge", "to", "the", "moon!", "soon"}, slices.Collect(l.All()))
}

func TestListRawRoundTrip(t *testing.T) {
	a := arena.New()
	defer a.Close()

	l := ListFromSlice(a, []int{1, 2, 3})

	r := l.Raw()
	got := Unraw[int](r)
	assert.True(t, ListsEqual(l, got))

	// The empty list survives the round trip too.
	var empty List[int]
	gotEmpty := Unraw[int](empty.Raw())
	assert.True(t, gotEmpty.IsEmpty())
}
