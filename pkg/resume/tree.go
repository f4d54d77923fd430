package resume

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// =============================================================================
// Ordered Generic Tree
// =============================================================================

// Mapping is an order-preserving key-value node of the decoded document tree.
// Standard Go maps lose document order, which matters here: skill categories,
// language mappings, and personal links render in the order the author wrote
// them.
//
// Values are one of: nil, bool, int64, float64, string, []any, or *Mapping.
// The decoders guarantee this closed set regardless of input format.
type Mapping struct {
	Pairs []Pair
}

// Pair is a single key-value entry of a Mapping.
type Pair struct {
	Key   string
	Value any
}

// Get returns the value for key and whether it was present.
// Safe on a nil receiver.
func (m *Mapping) Get(key string) (any, bool) {
	if m == nil {
		return nil, false
	}
	for _, p := range m.Pairs {
		if p.Key == key {
			return p.Value, true
		}
	}
	return nil, false
}

// Has reports whether key is present.
func (m *Mapping) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Len returns the number of entries. Safe on a nil receiver.
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.Pairs)
}

// Keys returns the keys in document order.
func (m *Mapping) Keys() []string {
	if m == nil {
		return nil
	}
	keys := make([]string, len(m.Pairs))
	for i, p := range m.Pairs {
		keys[i] = p.Key
	}
	return keys
}

// Set appends a key-value entry, replacing an existing entry with the same
// key in place.
func (m *Mapping) Set(key string, value any) {
	for i, p := range m.Pairs {
		if p.Key == key {
			m.Pairs[i].Value = value
			return
		}
	}
	m.Pairs = append(m.Pairs, Pair{Key: key, Value: value})
}

// MarshalJSON encodes the mapping as a JSON object with keys in document
// order. This is the canonical byte form used for schema validation and
// content hashing: identical documents always marshal to identical bytes.
func (m *Mapping) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range m.Pairs {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(p.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(p.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// =============================================================================
// Scalar Coercion
// =============================================================================

// Stringify renders a scalar tree value for display. Integers render without
// a decimal point (a bare 2020 in YAML arrives as int64 and must display as
// "2020"). Containers and nil stringify to "".
func Stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return ""
	}
}

// IsScalar reports whether v is a leaf value rather than a container.
func IsScalar(v any) bool {
	switch v.(type) {
	case nil, bool, int64, float64, string:
		return true
	default:
		return false
	}
}
