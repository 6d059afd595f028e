package ast

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestString(t *testing.T) {
	tests := []struct {
		name string
		expr Expr
		want string
	}{
		{"int literal", Int(3), "3"},
		{"string literal", Str("n="), `"n="`},
		{"variable", Var("x"), "x"},
		{"indexed variable", Index("a", Int(4)), "a[4]"},
		{"binary", AddOf(Str("n="), Int(3)), `("n=" + 3)`},
		{"nested", AndOf(Int(1), Binary(LessThanOrEqual, Var("x"), Double(2.5))), "(1 && (x <= 2.5))"},
		{"negation", Unary(Negation, Var("x")), "(-x)"},
		{"func", Unary(Sin, Int(30)), "sin(30)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.expr.String()); diff != "" {
				t.Errorf("String() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestVariable_DisplayName(t *testing.T) {
	if got := Var("x").DisplayName(); got != "x" {
		t.Errorf("DisplayName() = %q", got)
	}
	if got := Index("a", Int(0)).DisplayName(); got != "a[]" {
		t.Errorf("DisplayName() = %q", got)
	}
	if !Var("x").IsWholeArrayReference() || Index("a", Int(0)).IsWholeArrayReference() {
		t.Error("IsWholeArrayReference() wrong")
	}
}

func TestOpLookup(t *testing.T) {
	for op := Add; op <= NotEqual; op++ {
		got, ok := LookupBinaryOp(op.String())
		if !ok || got != op {
			t.Errorf("LookupBinaryOp(%q) = %v, %v", op.String(), got, ok)
		}
	}
	if op, ok := LookupUnaryOp("ASIN"); !ok || op != Asin {
		t.Errorf("LookupUnaryOp(ASIN) = %v, %v", op, ok)
	}
	if op, ok := LookupUnaryOp("-"); !ok || op != Negation {
		t.Errorf("LookupUnaryOp(-) = %v, %v", op, ok)
	}
	if _, ok := LookupUnaryOp("cbrt"); ok {
		t.Error("LookupUnaryOp accepted an unknown function")
	}
	if Negation.IsFunc() || !Random.IsFunc() {
		t.Error("function classification wrong")
	}
	if !LessThan.IsComparison() || Add.IsComparison() || !Or.IsLogical() {
		t.Error("operator classification wrong")
	}
	if !Atan.IsTrig() || Sqrt.IsTrig() {
		t.Error("trig classification wrong")
	}
}

func TestInspect_Order(t *testing.T) {
	tree := SubOf(Index("a", Var("i")), Unary(Abs, Var("b")))

	var got []string
	Inspect(tree, func(n Expr) bool {
		if n != nil {
			got = append(got, n.String())
		}
		return true
	})
	want := []string{"(a[i] - abs(b))", "a[i]", "i", "abs(b)", "b"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("visit order mismatch (-want +got):\n%s", diff)
	}
}

func TestUsesRandom(t *testing.T) {
	if UsesRandom(AddOf(Double(0.5), Var("x"))) {
		t.Error("UsesRandom() reported a tree without random")
	}
	if !UsesRandom(DivOf(Unary(Random, Int(10)), Double(3))) {
		t.Error("UsesRandom() missed a nested random")
	}
	if !UsesRandom(Index("a", Unary(Random, Int(5)))) {
		t.Error("UsesRandom() missed random inside an index")
	}
}

func TestReferences(t *testing.T) {
	tree := AddOf(Var("x"), MulOf(Index("a", Var("x")), Var("y")))
	want := []string{"x", "a", "y"}
	if diff := cmp.Diff(want, References(tree)); diff != "" {
		t.Errorf("References() mismatch (-want +got):\n%s", diff)
	}
}
