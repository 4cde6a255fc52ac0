package grove

import (
	"strconv"

	gojson "github.com/goccy/go-json"
)

// Collections marshal through github.com/goccy/go-json. Maps encode as
// JSON objects and sets and lists as arrays, always in insertion order.
// Non-string keys are encoded and then quoted, mirroring how the
// standard library treats non-string map keys.

func appendKey(dst []byte, key any) ([]byte, error) {
	b, err := gojson.Marshal(key)
	if err != nil {
		return nil, err
	}
	if len(b) > 0 && b[0] == '"' {
		return append(dst, b...), nil
	}
	return strconv.AppendQuote(dst, string(b)), nil
}

// MarshalJSON encodes the map as a JSON object in insertion order.
func (m *Map[K, V]) MarshalJSON() ([]byte, error) {
	buf := []byte{'{'}
	var err error

	for node := m.root; node != nil; node = node.next {
		if len(buf) > 1 {
			buf = append(buf, ',')
		}
		if buf, err = appendKey(buf, node.key); err != nil {
			return nil, err
		}
		buf = append(buf, ':')
		value, err := gojson.Marshal(node.value.Get())
		if err != nil {
			return nil, err
		}
		buf = append(buf, value...)
	}

	return append(buf, '}'), nil
}

// MarshalJSON encodes the map as a JSON object in insertion order.
func (m *BloomMap[K, V]) MarshalJSON() ([]byte, error) {
	return m.inner.MarshalJSON()
}

func marshalSeq[T any](root *listNode[T]) ([]byte, error) {
	buf := []byte{'['}

	for node := root; node != nil; node = node.next {
		if len(buf) > 1 {
			buf = append(buf, ',')
		}
		b, err := gojson.Marshal(node.value)
		if err != nil {
			return nil, err
		}
		buf = append(buf, b...)
	}

	return append(buf, ']'), nil
}

func marshalKeys[K comparable, V any](m *Map[K, V]) ([]byte, error) {
	buf := []byte{'['}

	for node := m.root; node != nil; node = node.next {
		if len(buf) > 1 {
			buf = append(buf, ',')
		}
		b, err := gojson.Marshal(node.key)
		if err != nil {
			return nil, err
		}
		buf = append(buf, b...)
	}

	return append(buf, ']'), nil
}

// MarshalJSON encodes the set as a JSON array in insertion order.
func (s *Set[K]) MarshalJSON() ([]byte, error) {
	return marshalKeys(&s.inner)
}

// MarshalJSON encodes the set as a JSON array in insertion order.
func (s *BloomSet[K]) MarshalJSON() ([]byte, error) {
	return marshalKeys(&s.inner.inner)
}

// MarshalJSON encodes the list as a JSON array.
func (l List[T]) MarshalJSON() ([]byte, error) {
	return marshalSeq(l.root)
}
