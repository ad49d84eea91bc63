// Package frontmatter models note metadata as a mapping from string keys to
// tagged values that hold either a single string or an ordered list of strings.
package frontmatter

import (
	"fmt"
	"strings"
	"time"
)

// Value is a single front-matter value: a scalar string or an ordered list
// of strings, never both.
type Value struct {
	scalar string
	list   []string
}

// String constructs a scalar Value.
func String(s string) Value { return Value{scalar: s} }

// List constructs a list Value.
func List(items ...string) Value { return Value{list: items} }

// IsList reports whether the value holds a list.
func (v Value) IsList() bool { return v.list != nil }

// Scalar returns the scalar form. For lists it returns the first element.
func (v Value) Scalar() string {
	if v.list != nil {
		if len(v.list) == 0 {
			return ""
		}
		return v.list[0]
	}
	return v.scalar
}

// Strings returns the value as an ordered list. Scalars become a
// single-element list; the empty scalar yields nil.
func (v Value) Strings() []string {
	if v.list != nil {
		return v.list
	}
	if v.scalar == "" {
		return nil
	}
	return []string{v.scalar}
}

// Mapping is parsed front-matter keyed by field name.
type Mapping map[string]Value

// Get returns the value for key and whether it was present.
func (m Mapping) Get(key string) (Value, bool) {
	v, ok := m[key]
	return v, ok
}

// Scalar returns the scalar form of the value for key, or "" when absent.
func (m Mapping) Scalar(key string) string { return m[key].Scalar() }

// Normalize converts a raw YAML value into a Value. Sequences become lists,
// scalars containing commas are split into lists, timestamps are rendered as
// dates, and everything else becomes a trimmed string.
func Normalize(raw any) Value {
	switch v := raw.(type) {
	case nil:
		return Value{}
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			if s := strings.TrimSpace(fmt.Sprint(item)); s != "" {
				items = append(items, s)
			}
		}
		return Value{list: items}
	case time.Time:
		// yaml resolves unquoted dates to timestamps.
		return Value{scalar: v.Format("2006-01-02")}
	default:
		s := strings.TrimSpace(fmt.Sprint(v))
		if strings.Contains(s, ",") {
			parts := strings.Split(s, ",")
			items := make([]string, 0, len(parts))
			for _, p := range parts {
				if p = strings.TrimSpace(p); p != "" {
					items = append(items, p)
				}
			}
			return Value{list: items}
		}
		return Value{scalar: s}
	}
}
