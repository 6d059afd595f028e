package object

import (
	"fmt"
	"math"
	"strconv"
)

// ObjectType is the discriminant of a Value.
type ObjectType string

// The three primitive types of the language. There is no array type:
// arrays are a scalar type plus an arity held by the declaring symbol.
const (
	INTEGER_OBJ ObjectType = "INTEGER"
	DOUBLE_OBJ  ObjectType = "DOUBLE"
	STRING_OBJ  ObjectType = "STRING"
)

// Name returns the display text used for the type in diagnostics.
func (t ObjectType) Name() string {
	switch t {
	case INTEGER_OBJ:
		return "int"
	case DOUBLE_OBJ:
		return "double"
	case STRING_OBJ:
		return "string"
	default:
		return "unknown"
	}
}

// String implements fmt.Stringer.
func (t ObjectType) String() string { return t.Name() }

// Value is an immutable, evaluated result of one of the primitive types.
// Every evaluation produces a fresh Value; a nil Value means the producing
// node reported a fault and has no result.
type Value interface {
	// Type returns the discriminant of the value.
	Type() ObjectType
	// Inspect returns a string representation of the value for debugging.
	Inspect() string

	// AsInt coerces the payload to an integer.
	AsInt() int64
	// AsDouble coerces the payload to a double.
	AsDouble() float64
	// AsString coerces the payload to its canonical textual form.
	AsString() string
}

// --- Integer Object ---

// Integer represents an integer value.
type Integer struct {
	Value int64
}

// NewInteger returns a new Integer.
func NewInteger(v int64) *Integer { return &Integer{Value: v} }

// Type returns the type of the Integer object.
func (i *Integer) Type() ObjectType { return INTEGER_OBJ }

// Inspect returns a string representation of the Integer's value.
func (i *Integer) Inspect() string { return strconv.FormatInt(i.Value, 10) }

func (i *Integer) AsInt() int64      { return i.Value }
func (i *Integer) AsDouble() float64 { return float64(i.Value) }
func (i *Integer) AsString() string  { return strconv.FormatInt(i.Value, 10) }

// --- Double Object ---

// Double represents a double precision floating-point number.
type Double struct {
	Value float64
}

// NewDouble returns a new Double.
func NewDouble(v float64) *Double { return &Double{Value: v} }

// Type returns the type of the Double object.
func (d *Double) Type() ObjectType { return DOUBLE_OBJ }

// Inspect returns a string representation of the Double's value.
func (d *Double) Inspect() string { return FormatDouble(d.Value) }

// AsInt truncates toward zero. NaN and values outside the int64 range yield 0.
func (d *Double) AsInt() int64 {
	if math.IsNaN(d.Value) || d.Value >= math.MaxInt64 || d.Value < math.MinInt64 {
		return 0
	}
	return int64(d.Value)
}
func (d *Double) AsDouble() float64 { return d.Value }
func (d *Double) AsString() string  { return FormatDouble(d.Value) }

// --- String Object ---

// String represents a string value.
type String struct {
	Value string
}

// NewString returns a new String.
func NewString(v string) *String { return &String{Value: v} }

// Type returns the type of the String object.
func (s *String) Type() ObjectType { return STRING_OBJ }

// Inspect returns the quoted value.
func (s *String) Inspect() string { return strconv.Quote(s.Value) }

// AsInt and AsDouble have no meaning for strings; legal code paths never
// call them, and they return zero.
func (s *String) AsInt() int64      { return 0 }
func (s *String) AsDouble() float64 { return 0 }
func (s *String) AsString() string  { return s.Value }

// FormatDouble returns the canonical textual form of a double: the shortest
// representation that round-trips.
func FormatDouble(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Evaluate returns the value itself. A literal evaluates to itself, and
// since values are immutable no copy is needed.
func Evaluate(v Value) Value { return v }

// Equal reports whether a and b have the same type and payload.
// Two nil values are equal. NaN doubles compare equal to each other.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Type() != b.Type() {
		return false
	}
	switch a.Type() {
	case INTEGER_OBJ:
		return a.AsInt() == b.AsInt()
	case DOUBLE_OBJ:
		x, y := a.AsDouble(), b.AsDouble()
		return x == y || (math.IsNaN(x) && math.IsNaN(y))
	default:
		return a.AsString() == b.AsString()
	}
}

// Describe formats v for log and test messages, tolerating nil.
func Describe(v Value) string {
	if v == nil {
		return "<absent>"
	}
	return fmt.Sprintf("%s(%s)", v.Type().Name(), v.Inspect())
}
