package evaltest

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/gamelang/gamelang/ast"
	"github.com/gamelang/gamelang/diag"
	"github.com/gamelang/gamelang/object"
	"github.com/gamelang/gamelang/scope"
	"gopkg.in/yaml.v3"
)

// Fixture is one YAML fixture file.
type Fixture struct {
	Cases []Case `yaml:"cases"`
}

// Case describes the scopes to declare, the expression tree to evaluate,
// and what the evaluation must produce.
type Case struct {
	Name        string         `yaml:"name"`
	Mode        string         `yaml:"mode"` // "fold" (default) or "exec"
	Scopes      []ScopeSpec    `yaml:"scopes"`
	Expr        map[string]any `yaml:"expr"`
	Want        Want           `yaml:"want"`
	Diagnostics []string       `yaml:"diagnostics"`
}

// ScopeSpec lists the symbols of one table; the first entry is the global table.
type ScopeSpec struct {
	Symbols []SymbolSpec `yaml:"symbols"`
}

// SymbolSpec declares a scalar (Value) or an array (Values).
type SymbolSpec struct {
	Name   string `yaml:"name"`
	Type   string `yaml:"type"`
	Value  any    `yaml:"value"`
	Values []any  `yaml:"values"`
}

// Want is the expected result. Type is "int", "double" or "string".
type Want struct {
	Type       string  `yaml:"type"`
	Value      any     `yaml:"value"`
	OneOf      []int64 `yaml:"one_of"`
	NaN        bool    `yaml:"nan"`
	Absent     bool    `yaml:"absent"`
	StaticType string  `yaml:"static_type"`
}

// LoadFixture reads a fixture file.
func LoadFixture(path string) (*Fixture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var fx Fixture
	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(&fx); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &fx, nil
}

// RunFixtures runs every case of every file matching pattern as a subtest.
func RunFixtures(t *testing.T, pattern string) {
	t.Helper()
	paths, err := filepath.Glob(pattern)
	if err != nil {
		t.Fatalf("glob %q: %v", pattern, err)
	}
	if len(paths) == 0 {
		t.Fatalf("no fixtures match %q", pattern)
	}
	for _, path := range paths {
		fx, err := LoadFixture(path)
		if err != nil {
			t.Fatalf("%+v", err)
		}
		for _, c := range fx.Cases {
			t.Run(filepath.Base(path)+"/"+c.Name, func(t *testing.T) {
				RunCase(t, c)
			})
		}
	}
}

// RunCase declares the case's symbols, evaluates its expression and checks the outcome.
func RunCase(t *testing.T, c Case) {
	t.Helper()
	node, err := DecodeExpr(c.Expr)
	if err != nil {
		t.Fatalf("decode expr: %v", err)
	}

	r := NewRunner(t)
	for i, sc := range c.Scopes {
		if i > 0 {
			r.Scope.Push()
		}
		for _, spec := range sc.Symbols {
			sym, err := spec.Symbol()
			if err != nil {
				t.Fatalf("declare: %v", err)
			}
			r.Declare(sym)
		}
	}

	var got object.Value
	switch c.Mode {
	case "", "fold":
		got = r.Fold(node)
	case "exec":
		got = r.Exec(node)
	default:
		t.Fatalf("unknown mode %q", c.Mode)
	}

	checkWant(t, c.Want, got)

	if c.Want.StaticType != "" {
		if st := r.TypeOf(node).Name(); st != c.Want.StaticType {
			t.Errorf("TypeOf(%s) = %s, want %s", node, st, c.Want.StaticType)
		}
	}

	kinds := make([]diag.Kind, 0, len(c.Diagnostics))
	for _, name := range c.Diagnostics {
		k, ok := diag.ParseKind(name)
		if !ok {
			t.Fatalf("unknown diagnostic kind %q", name)
		}
		kinds = append(kinds, k)
	}
	AssertKinds(t, r.Collector, kinds...)
}

func checkWant(t *testing.T, w Want, got object.Value) {
	t.Helper()
	switch {
	case w.Absent:
		AssertAbsent(t, got)
	case w.NaN:
		AssertNaN(t, got)
	case len(w.OneOf) > 0:
		AssertIntegerIn(t, got, w.OneOf...)
	default:
		switch w.Type {
		case "int":
			i, err := toInt64(w.Value)
			if err != nil {
				t.Fatalf("want.value: %v", err)
			}
			AssertInteger(t, got, i)
		case "double":
			f, err := toFloat64(w.Value)
			if err != nil {
				t.Fatalf("want.value: %v", err)
			}
			AssertDouble(t, got, f)
		case "string":
			AssertString(t, got, fmt.Sprint(w.Value))
		default:
			t.Fatalf("want.type %q is not one of int, double, string", w.Type)
		}
	}
}

// Symbol builds the declared symbol.
func (s SymbolSpec) Symbol() (*scope.Symbol, error) {
	if s.Values == nil {
		switch s.Type {
		case "int":
			i, err := toInt64(s.Value)
			return scope.NewInt(s.Name, i), err
		case "double":
			f, err := toFloat64(s.Value)
			return scope.NewDouble(s.Name, f), err
		case "string":
			return scope.NewString(s.Name, fmt.Sprint(s.Value)), nil
		}
		return nil, fmt.Errorf("symbol %q: unknown type %q", s.Name, s.Type)
	}

	switch s.Type {
	case "int":
		vs := make([]int64, len(s.Values))
		for i, raw := range s.Values {
			v, err := toInt64(raw)
			if err != nil {
				return nil, fmt.Errorf("symbol %q[%d]: %w", s.Name, i, err)
			}
			vs[i] = v
		}
		return scope.NewIntArray(s.Name, vs), nil
	case "double":
		vs := make([]float64, len(s.Values))
		for i, raw := range s.Values {
			v, err := toFloat64(raw)
			if err != nil {
				return nil, fmt.Errorf("symbol %q[%d]: %w", s.Name, i, err)
			}
			vs[i] = v
		}
		return scope.NewDoubleArray(s.Name, vs), nil
	case "string":
		vs := make([]string, len(s.Values))
		for i, raw := range s.Values {
			vs[i] = fmt.Sprint(raw)
		}
		return scope.NewStringArray(s.Name, vs), nil
	}
	return nil, fmt.Errorf("symbol %q: unknown type %q", s.Name, s.Type)
}

// DecodeExpr builds an expression tree from its map form. Each node is a
// map with a "type" of Literal, Variable, Binary or Unary:
//
//	{type: Literal, int: 3}           {type: Literal, double: 0.5}
//	{type: Literal, string: "n="}     {type: Variable, name: a, index: {...}}
//	{type: Binary, op: "+", left: {...}, right: {...}}
//	{type: Unary, op: sin, operand: {...}}
func DecodeExpr(node map[string]any) (ast.Expr, error) {
	if node == nil {
		return nil, fmt.Errorf("missing expression")
	}
	typ, _ := node["type"].(string)
	switch typ {
	case "Literal":
		if raw, ok := node["int"]; ok {
			i, err := toInt64(raw)
			if err != nil {
				return nil, err
			}
			return ast.Int(i), nil
		}
		if raw, ok := node["double"]; ok {
			f, err := toFloat64(raw)
			if err != nil {
				return nil, err
			}
			return ast.Double(f), nil
		}
		if raw, ok := node["string"]; ok {
			s, ok := raw.(string)
			if !ok {
				return nil, fmt.Errorf("string literal must be a string, got %T", raw)
			}
			return ast.Str(s), nil
		}
		return nil, fmt.Errorf("literal needs one of int, double, string")
	case "Variable":
		name, _ := node["name"].(string)
		indexRaw, ok := node["index"]
		if !ok {
			return ast.Var(name), nil
		}
		child, err := decodeChild(indexRaw, "index")
		if err != nil {
			return nil, err
		}
		return ast.Index(name, child), nil
	case "Binary":
		symbol, _ := node["op"].(string)
		op, ok := ast.LookupBinaryOp(symbol)
		if !ok {
			return nil, fmt.Errorf("unknown binary operator %q", symbol)
		}
		left, err := decodeChild(node["left"], "left")
		if err != nil {
			return nil, err
		}
		right, err := decodeChild(node["right"], "right")
		if err != nil {
			return nil, err
		}
		return ast.Binary(op, left, right), nil
	case "Unary":
		name, _ := node["op"].(string)
		op, ok := ast.LookupUnaryOp(name)
		if !ok {
			return nil, fmt.Errorf("unknown unary operator %q", name)
		}
		operand, err := decodeChild(node["operand"], "operand")
		if err != nil {
			return nil, err
		}
		return ast.Unary(op, operand), nil
	default:
		return nil, fmt.Errorf("unknown node type %q", typ)
	}
}

func decodeChild(raw any, field string) (ast.Expr, error) {
	child, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("invalid %s entry %T", field, raw)
	}
	node, err := DecodeExpr(child)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}
	return node, nil
}

func toInt64(raw any) (int64, error) {
	switch v := raw.(type) {
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case uint64:
		if v > math.MaxInt64 {
			return 0, fmt.Errorf("integer %d overflows int64", v)
		}
		return int64(v), nil
	default:
		return 0, fmt.Errorf("expected an integer, got %T (%v)", raw, raw)
	}
}

func toFloat64(raw any) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		switch v {
		case ".nan", "NaN":
			return math.NaN(), nil
		}
	}
	return 0, fmt.Errorf("expected a number, got %T (%v)", raw, raw)
}
