package scope

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gamelang/gamelang/object"
)

var (
	// ErrNotScalar is returned when a scalar read is attempted on an array symbol.
	ErrNotScalar = errors.New("symbol is not a scalar")
	// ErrIndexOutOfRange is returned when an element read or write is outside [0, count).
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrNoValue is returned when an assignment is given a nil Value.
	ErrNoValue = errors.New("no value to assign")
)

// storage is the owned backing buffer of a symbol. Its length is the arity.
type storage interface {
	len() int
	at(i int) object.Value
	set(i int, v object.Value)
	format(i int) string
}

type intCells []int64

func (c intCells) len() int                  { return len(c) }
func (c intCells) at(i int) object.Value     { return object.NewInteger(c[i]) }
func (c intCells) set(i int, v object.Value) { c[i] = v.AsInt() }
func (c intCells) format(i int) string       { return strconv.FormatInt(c[i], 10) }

type doubleCells []float64

func (c doubleCells) len() int                  { return len(c) }
func (c doubleCells) at(i int) object.Value     { return object.NewDouble(c[i]) }
func (c doubleCells) set(i int, v object.Value) { c[i] = v.AsDouble() }
func (c doubleCells) format(i int) string       { return strconv.FormatFloat(c[i], 'g', 6, 64) }

type stringCells []string

func (c stringCells) len() int                  { return len(c) }
func (c stringCells) at(i int) object.Value     { return object.NewString(c[i]) }
func (c stringCells) set(i int, v object.Value) { c[i] = v.AsString() }
func (c stringCells) format(i int) string       { return strconv.Quote(c[i]) }

// Symbol is named storage for a declared variable or fixed-size array.
// The declared type never changes after construction.
type Symbol struct {
	name  string
	typ   object.ObjectType
	cells storage
}

// NewInt declares an integer scalar.
func NewInt(name string, v int64) *Symbol {
	return &Symbol{name: name, typ: object.INTEGER_OBJ, cells: intCells{v}}
}

// NewIntArray declares an integer array holding a copy of vs.
func NewIntArray(name string, vs []int64) *Symbol {
	return &Symbol{name: name, typ: object.INTEGER_OBJ, cells: append(intCells(nil), vs...)}
}

// NewDouble declares a double scalar.
func NewDouble(name string, v float64) *Symbol {
	return &Symbol{name: name, typ: object.DOUBLE_OBJ, cells: doubleCells{v}}
}

// NewDoubleArray declares a double array holding a copy of vs.
func NewDoubleArray(name string, vs []float64) *Symbol {
	return &Symbol{name: name, typ: object.DOUBLE_OBJ, cells: append(doubleCells(nil), vs...)}
}

// NewString declares a string scalar.
func NewString(name string, v string) *Symbol {
	return &Symbol{name: name, typ: object.STRING_OBJ, cells: stringCells{v}}
}

// NewStringArray declares a string array holding a copy of vs.
func NewStringArray(name string, vs []string) *Symbol {
	return &Symbol{name: name, typ: object.STRING_OBJ, cells: append(stringCells(nil), vs...)}
}

// Name returns the symbol's name.
func (s *Symbol) Name() string { return s.name }

// Type returns the declared element type.
func (s *Symbol) Type() object.ObjectType { return s.typ }

// Count returns the arity: 1 for a scalar, the length for an array.
func (s *Symbol) Count() int {
	if s.cells == nil {
		return 0
	}
	return s.cells.len()
}

// IsArray reports whether the symbol was declared with more than one element.
func (s *Symbol) IsArray() bool { return s.Count() > 1 }

// IsValid reports whether the symbol has backing storage.
func (s *Symbol) IsValid() bool { return s.Count() > 0 }

// Constant returns a snapshot of the scalar payload.
func (s *Symbol) Constant() (object.Value, error) {
	if s.Count() != 1 {
		return nil, fmt.Errorf("read %q: %w", s.name, ErrNotScalar)
	}
	return s.cells.at(0), nil
}

// ConstantAt returns a snapshot of the element at index.
func (s *Symbol) ConstantAt(index int) (object.Value, error) {
	if index < 0 || index >= s.Count() {
		return nil, fmt.Errorf("read %s[%d]: %w", s.name, index, ErrIndexOutOfRange)
	}
	return s.cells.at(index), nil
}

// Assign stores v into a scalar symbol, coerced to the declared type.
func (s *Symbol) Assign(v object.Value) error {
	if s.Count() != 1 {
		return fmt.Errorf("assign %q: %w", s.name, ErrNotScalar)
	}
	if v == nil {
		return fmt.Errorf("assign %q: %w", s.name, ErrNoValue)
	}
	s.cells.set(0, v)
	return nil
}

// AssignAt stores v into the element at index, coerced to the declared type.
func (s *Symbol) AssignAt(index int, v object.Value) error {
	if index < 0 || index >= s.Count() {
		return fmt.Errorf("assign %s[%d]: %w", s.name, index, ErrIndexOutOfRange)
	}
	if v == nil {
		return fmt.Errorf("assign %s[%d]: %w", s.name, index, ErrNoValue)
	}
	s.cells.set(index, v)
	return nil
}

// String renders the symbol as "int x = 3", or one line per element for arrays.
// Doubles are printed with six significant digits.
func (s *Symbol) String() string {
	if !s.IsValid() {
		return fmt.Sprintf("%s %s = <invalid>", s.typ.Name(), s.name)
	}
	if s.Count() == 1 {
		return fmt.Sprintf("%s %s = %s", s.typ.Name(), s.name, s.cells.format(0))
	}
	lines := make([]string, s.Count())
	for i := range lines {
		lines[i] = fmt.Sprintf("%s %s[%d] = %s", s.typ.Name(), s.name, i, s.cells.format(i))
	}
	return strings.Join(lines, "\n")
}
