package card

import "strconv"

// ValueKind discriminates the typed forms a field value can take
type ValueKind int

const (
	KindString ValueKind = iota
	KindList
	KindInt
)

// Value is a typed field value: a plain string, an ordered list of
// strings, or an integer. The zero Value is an empty string.
type Value struct {
	Kind ValueKind
	Str  string
	List []string
	Int  int
}

// StringValue wraps a plain string field value
func StringValue(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// ListValue wraps an ordered list field value
func ListValue(items []string) Value {
	return Value{Kind: KindList, List: items}
}

// IntValue wraps an integer field value
func IntValue(n int) Value {
	return Value{Kind: KindInt, Int: n}
}

// Flatten serializes the value to a single string, joining list values
// with the given separator.
func (v Value) Flatten(sep string) string {
	switch v.Kind {
	case KindList:
		out := ""
		for i, item := range v.List {
			if i > 0 {
				out += sep
			}
			out += item
		}
		return out
	case KindInt:
		return strconv.Itoa(v.Int)
	default:
		return v.Str
	}
}

// Record is one normalized form response. GeneratedID is unique within
// a single load.
type Record struct {
	GeneratedID string
	Fields      map[string]Value
}

// Get returns the value for a field, or an empty string value when the
// field is absent.
func (r Record) Get(name string) Value {
	if v, ok := r.Fields[name]; ok {
		return v
	}
	return Value{}
}

// Text returns the field's plain-string form. List fields are joined
// with their class separator.
func (r Record) Text(name string) string {
	return r.Get(name).Flatten(ListSeparator(name))
}
