package value

import "fmt"

// Kind identifies which alternative of the [Value] sum type is populated.
type Kind int

// Kind constants for each scalar alternative a [Value] may hold.
const (
	Null Kind = iota
	Bool
	Int64
	Float64
	String
)

// String returns a human-readable name for k, used in error messages.
func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Int64:
		return "int64"
	case Float64:
		return "float64"
	case String:
		return "string"
	default:
		return "unknown"
	}
}

// Value is a tagged scalar: exactly one of null, bool, int64, float64, or
// string. The zero Value is [Null].
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
}

// NewNull returns the null value.
func NewNull() Value { return Value{kind: Null} }

// NewBool wraps a bool.
func NewBool(b bool) Value { return Value{kind: Bool, b: b} }

// NewInt64 wraps an int64.
func NewInt64(i int64) Value { return Value{kind: Int64, i: i} }

// NewFloat64 wraps a float64.
func NewFloat64(f float64) Value { return Value{kind: Float64, f: f} }

// NewString wraps a string.
func NewString(s string) Value { return Value{kind: String, s: s} }

// Kind reports which alternative v holds.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v holds the null alternative.
func (v Value) IsNull() bool { return v.kind == Null }

// Bool returns v's bool payload and whether v holds [Bool].
func (v Value) Bool() (bool, bool) { return v.b, v.kind == Bool }

// Int64 returns v's int64 payload and whether v holds [Int64].
func (v Value) Int64() (int64, bool) { return v.i, v.kind == Int64 }

// Float64 returns v's float64 payload and whether v holds [Float64].
func (v Value) Float64() (float64, bool) { return v.f, v.kind == Float64 }

// String returns v's string payload and whether v holds [String].
func (v Value) String() (string, bool) { return v.s, v.kind == String }

// GoString renders v using Go's default textual form for its underlying
// type, for use in diagnostics; it is not the YAML encoding of v (see
// [go.jacobcolvin.com/yamledit/internal/encode]).
func (v Value) GoString() string {
	switch v.kind {
	case Null:
		return "null"
	case Bool:
		return fmt.Sprintf("%t", v.b)
	case Int64:
		return fmt.Sprintf("%d", v.i)
	case Float64:
		return fmt.Sprintf("%g", v.f)
	case String:
		return v.s
	default:
		return ""
	}
}

// Equal reports whether v and other hold the same kind and payload.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case Null:
		return true
	case Bool:
		return v.b == other.b
	case Int64:
		return v.i == other.i
	case Float64:
		return v.f == other.f
	case String:
		return v.s == other.s
	default:
		return false
	}
}

// FromAny converts a plain Go value (nil, bool, int, int64, float64,
// string) into a [Value]. It panics on any other type, since callers
// building collections should use [go.jacobcolvin.com/yamledit/node.FromAny]
// instead, which handles []any and map[string]any by constructing a
// node tree rather than a scalar Value.
func FromAny(v any) Value {
	switch t := v.(type) {
	case nil:
		return NewNull()
	case bool:
		return NewBool(t)
	case int:
		return NewInt64(int64(t))
	case int64:
		return NewInt64(t)
	case float64:
		return NewFloat64(t)
	case string:
		return NewString(t)
	default:
		panic(fmt.Sprintf("value: FromAny: unsupported type %T", v))
	}
}
