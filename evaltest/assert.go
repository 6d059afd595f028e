package evaltest

import (
	"math"
	"slices"
	"testing"

	"github.com/gamelang/gamelang/diag"
	"github.com/gamelang/gamelang/object"
	"github.com/google/go-cmp/cmp"
)

// Tolerance is the absolute error accepted by AssertDouble.
const Tolerance = 1e-9

// AssertInteger fails the test if v is not an Integer with the expected value.
func AssertInteger(t *testing.T, v object.Value, expected int64) {
	t.Helper()
	integer, ok := v.(*object.Integer)
	if !ok {
		t.Fatalf("value is not Integer. got=%T (%s)", v, object.Describe(v))
	}
	if integer.Value != expected {
		t.Errorf("integer has wrong value. want=%d, got=%d", expected, integer.Value)
	}
}

// AssertDouble fails the test if v is not a Double within Tolerance of expected.
func AssertDouble(t *testing.T, v object.Value, expected float64) {
	t.Helper()
	double, ok := v.(*object.Double)
	if !ok {
		t.Fatalf("value is not Double. got=%T (%s)", v, object.Describe(v))
	}
	if math.Abs(double.Value-expected) > Tolerance {
		t.Errorf("double has wrong value. want=%g, got=%g", expected, double.Value)
	}
}

// AssertNaN fails the test if v is not a NaN Double.
func AssertNaN(t *testing.T, v object.Value) {
	t.Helper()
	double, ok := v.(*object.Double)
	if !ok {
		t.Fatalf("value is not Double. got=%T (%s)", v, object.Describe(v))
	}
	if !math.IsNaN(double.Value) {
		t.Errorf("double has wrong value. want=NaN, got=%g", double.Value)
	}
}

// AssertString fails the test if v is not a String with the expected value.
func AssertString(t *testing.T, v object.Value, expected string) {
	t.Helper()
	str, ok := v.(*object.String)
	if !ok {
		t.Fatalf("value is not String. got=%T (%s)", v, object.Describe(v))
	}
	if str.Value != expected {
		t.Errorf("String has wrong value. want=%q, got=%q", expected, str.Value)
	}
}

// AssertAbsent fails the test if the evaluation produced a value.
func AssertAbsent(t *testing.T, v object.Value) {
	t.Helper()
	if v != nil {
		t.Fatalf("expected no value, but got %s", object.Describe(v))
	}
}

// AssertIntegerIn fails the test if v is not an Integer with one of the allowed values.
func AssertIntegerIn(t *testing.T, v object.Value, allowed ...int64) {
	t.Helper()
	integer, ok := v.(*object.Integer)
	if !ok {
		t.Fatalf("value is not Integer. got=%T (%s)", v, object.Describe(v))
	}
	if !slices.Contains(allowed, integer.Value) {
		t.Errorf("integer has unexpected value %d, want one of %v", integer.Value, allowed)
	}
}

// AssertKinds fails the test if the collected diagnostic kinds differ from want, in order.
func AssertKinds(t *testing.T, c *diag.Collector, want ...diag.Kind) {
	t.Helper()
	got := c.Kinds()
	if len(want) == 0 && len(got) == 0 {
		return
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("diagnostics mismatch (-want +got):\n%s\nall: %v", diff, c.Diagnostics())
	}
}

// AssertNoDiagnostics fails the test if anything was reported.
func AssertNoDiagnostics(t *testing.T, c *diag.Collector) {
	t.Helper()
	if c.Len() != 0 {
		t.Errorf("expected no diagnostics, got %v", c.Diagnostics())
	}
}
