package numberpattern

import "strconv"

type valueKind uint8

const (
	kindInvalid valueKind = iota
	kindString
	kindInt
	kindFloat
)

// Value is what a Strategy hands back for a directive
// It is a closed set: string, integer or float. The zero Value is invalid
type Value struct {
	kind valueKind
	s    string
	i    int64
	f    float64
}

// StringValue wraps s
func StringValue(s string) Value { return Value{kind: kindString, s: s} }

// IntValue wraps n
func IntValue(n int64) Value { return Value{kind: kindInt, i: n} }

// FloatValue wraps f
func FloatValue(f float64) Value { return Value{kind: kindFloat, f: f} }

// Valid reports whether v was built by one of the constructors
func (v Value) Valid() bool { return v.kind != kindInvalid }

// String renders v as it is substituted into the number
// floats use the shortest representation that round trips
func (v Value) String() string {
	switch v.kind {
	case kindString:
		return v.s
	case kindInt:
		return strconv.FormatInt(v.i, 10)
	case kindFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	default:
		return ""
	}
}
