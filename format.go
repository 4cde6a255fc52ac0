package grove

import (
	"fmt"
	"strings"
)

func formatPairs[K comparable, V any](m *Map[K, V]) string {
	var b strings.Builder
	b.WriteString("map[")
	for node := m.root; node != nil; node = node.next {
		if node != m.root {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v:%v", node.key, node.value.Get())
	}
	b.WriteByte(']')
	return b.String()
}

func formatKeys[K comparable, V any](m *Map[K, V]) string {
	var b strings.Builder
	b.WriteString("set[")
	for node := m.root; node != nil; node = node.next {
		if node != m.root {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", node.key)
	}
	b.WriteByte(']')
	return b.String()
}

// String renders the map entries in insertion order, in the style of
// fmt's map formatting.
func (m *Map[K, V]) String() string {
	return formatPairs(m)
}

// String renders the map entries in insertion order.
func (m *BloomMap[K, V]) String() string {
	return formatPairs(&m.inner)
}

// String renders the set items in insertion order.
func (s *Set[K]) String() string {
	return formatKeys(&s.inner)
}

// String renders the set items in insertion order.
func (s *BloomSet[K]) String() string {
	return formatKeys(&s.inner.inner)
}

// String renders the list elements in order, in the style of fmt's
// slice formatting.
func (l List[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for node := l.root; node != nil; node = node.next {
		if node != l.root {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", node.value)
	}
	b.WriteByte(']')
	return b.String()
}
