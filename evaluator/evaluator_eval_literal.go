package evaluator

import (
	"github.com/gamelang/gamelang/ast"
	"github.com/gamelang/gamelang/object"
)

func (e *Evaluator) evalLiteral(n *ast.Literal) object.Value {
	if n.Value == nil {
		return nil
	}
	return object.Evaluate(n.Value)
}
