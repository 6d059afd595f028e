// Package diag carries the semantic diagnostics reported during evaluation.
//
// Diagnostics never stop an evaluation: the node that detects a fault
// reports it and returns a substitute value so its ancestors keep going.
package diag

import (
	"fmt"
	"strings"
)

// Kind classifies a diagnostic.
type Kind int

const (
	UndeclaredVariable Kind = iota + 1
	VariableNotAnArray
	ArrayIndexMustBeAnInteger
	ArrayIndexOutOfBounds
	InvalidOperandType
	DivideByZeroAtParseTime
	ModByZeroAtParseTime
	InvalidArgumentForRandom
)

var kindNames = map[Kind]string{
	UndeclaredVariable:        "UNDECLARED_VARIABLE",
	VariableNotAnArray:        "VARIABLE_NOT_AN_ARRAY",
	ArrayIndexMustBeAnInteger: "ARRAY_INDEX_MUST_BE_AN_INTEGER",
	ArrayIndexOutOfBounds:     "ARRAY_INDEX_OUT_OF_BOUNDS",
	InvalidOperandType:        "INVALID_OPERAND_TYPE",
	DivideByZeroAtParseTime:   "DIVIDE_BY_ZERO_AT_PARSE_TIME",
	ModByZeroAtParseTime:      "MOD_BY_ZERO_AT_PARSE_TIME",
	InvalidArgumentForRandom:  "INVALID_ARGUMENT_FOR_RANDOM",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind converts a name produced by Kind.String back to a Kind.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if strings.EqualFold(name, s) {
			return k, true
		}
	}
	return 0, false
}

// Side names the offending operand of an InvalidOperandType diagnostic.
// Unary operators report their operand as the right side.
type Side int

const (
	NoSide Side = iota
	Left
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return ""
	}
}

// Diagnostic is one reported fault with its human readable context:
// an operator symbol, a variable name, or numeric and type text.
type Diagnostic struct {
	Kind Kind
	Side Side
	Args []string
}

// New creates a diagnostic without a side.
func New(kind Kind, args ...string) Diagnostic {
	return Diagnostic{Kind: kind, Args: args}
}

// InvalidOperand creates an InvalidOperandType diagnostic for one side of op.
func InvalidOperand(side Side, op string, args ...string) Diagnostic {
	return Diagnostic{Kind: InvalidOperandType, Side: side, Args: append([]string{op}, args...)}
}

func (d Diagnostic) arg(i int) string {
	if i < len(d.Args) {
		return d.Args[i]
	}
	return ""
}

// Message renders the diagnostic for a user.
func (d Diagnostic) Message() string {
	switch d.Kind {
	case UndeclaredVariable:
		return fmt.Sprintf("variable '%s' was not declared", d.arg(0))
	case VariableNotAnArray:
		return fmt.Sprintf("variable '%s' is not an array", d.arg(0))
	case ArrayIndexMustBeAnInteger:
		return fmt.Sprintf("index of array '%s' must be an integer, got %s", d.arg(0), d.arg(1))
	case ArrayIndexOutOfBounds:
		return fmt.Sprintf("index %s is out of bounds for array '%s'", d.arg(1), d.arg(0))
	case InvalidOperandType:
		msg := fmt.Sprintf("invalid %s operand type for operator '%s'", d.Side, d.arg(0))
		if extra := d.arg(1); extra != "" {
			msg += fmt.Sprintf(" (%s)", extra)
		}
		return msg
	case DivideByZeroAtParseTime:
		return "division by zero in constant expression"
	case ModByZeroAtParseTime:
		return "modulus by zero in constant expression"
	case InvalidArgumentForRandom:
		return fmt.Sprintf("argument %s to random() must be at least 2", d.arg(0))
	default:
		return fmt.Sprintf("%s %s", d.Kind, strings.Join(d.Args, " "))
	}
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Kind, d.Message())
}

// Reporter receives diagnostics. Report must not panic and must not
// stop the caller.
type Reporter interface {
	Report(d Diagnostic)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(Diagnostic)

func (f ReporterFunc) Report(d Diagnostic) { f(d) }

// Discard drops every diagnostic.
var Discard Reporter = ReporterFunc(func(Diagnostic) {})

// Collector is an append-only Reporter that keeps diagnostics in
// the order they were reported.
type Collector struct {
	items []Diagnostic
}

// NewCollector returns an empty collector.
func NewCollector() *Collector { return &Collector{} }

func (c *Collector) Report(d Diagnostic) {
	c.items = append(c.items, d)
}

// Diagnostics returns a copy of the collected diagnostics.
func (c *Collector) Diagnostics() []Diagnostic {
	return append([]Diagnostic(nil), c.items...)
}

// Kinds returns the kind of each collected diagnostic, in order.
func (c *Collector) Kinds() []Kind {
	kinds := make([]Kind, len(c.items))
	for i, d := range c.items {
		kinds[i] = d.Kind
	}
	return kinds
}

// Len returns the number of collected diagnostics.
func (c *Collector) Len() int { return len(c.items) }

// Count returns how many diagnostics of kind were collected.
func (c *Collector) Count(kind Kind) int {
	n := 0
	for _, d := range c.items {
		if d.Kind == kind {
			n++
		}
	}
	return n
}

// Reset discards everything collected so far.
func (c *Collector) Reset() { c.items = nil }
