package diag

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCollector_PreservesOrder(t *testing.T) {
	c := NewCollector()
	c.Report(New(UndeclaredVariable, "x"))
	c.Report(InvalidOperand(Left, "%"))
	c.Report(InvalidOperand(Right, "%"))

	want := []Kind{UndeclaredVariable, InvalidOperandType, InvalidOperandType}
	if diff := cmp.Diff(want, c.Kinds()); diff != "" {
		t.Errorf("Kinds() mismatch (-want +got):\n%s", diff)
	}
	if c.Count(InvalidOperandType) != 2 {
		t.Errorf("Count() = %d, want 2", c.Count(InvalidOperandType))
	}

	got := c.Diagnostics()
	got[0].Kind = ModByZeroAtParseTime
	if c.Kinds()[0] != UndeclaredVariable {
		t.Error("Diagnostics() must return a copy")
	}

	c.Reset()
	if c.Len() != 0 {
		t.Errorf("Len() after Reset() = %d", c.Len())
	}
}

func TestDiagnostic_Message(t *testing.T) {
	tests := []struct {
		d    Diagnostic
		want string
	}{
		{New(UndeclaredVariable, "a[]"), "variable 'a[]' was not declared"},
		{New(VariableNotAnArray, "x"), "variable 'x' is not an array"},
		{New(ArrayIndexMustBeAnInteger, "a", "double"), "index of array 'a' must be an integer, got double"},
		{New(ArrayIndexOutOfBounds, "a", "5"), "index 5 is out of bounds for array 'a'"},
		{InvalidOperand(Left, "&&"), "invalid left operand type for operator '&&'"},
		{InvalidOperand(Right, "!", "string"), "invalid right operand type for operator '!' (string)"},
		{New(DivideByZeroAtParseTime), "division by zero in constant expression"},
		{New(InvalidArgumentForRandom, "1"), "argument 1 to random() must be at least 2"},
	}
	for _, tt := range tests {
		t.Run(tt.d.Kind.String(), func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.d.Message()); diff != "" {
				t.Errorf("Message() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	for k := UndeclaredVariable; k <= InvalidArgumentForRandom; k++ {
		got, ok := ParseKind(k.String())
		if !ok || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, ok)
		}
	}
	if _, ok := ParseKind("NOPE"); ok {
		t.Error("ParseKind accepted an unknown name")
	}
}

func TestDiscard(t *testing.T) {
	Discard.Report(New(UndeclaredVariable, "x"))
}
