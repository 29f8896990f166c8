/*
File    : uz-go/eval/eval_expressions.go
Author  : Algorix Devs
Contact : dev(@algorix.io)
*/
package eval

import (
	"strings"

	"github.com/algorix-io/uz-go/objects"
	"github.com/algorix-io/uz-go/parser"
	"github.com/algorix-io/uz-go/scope"
)

// Eval evaluates one expression node and produces its value.
//
// Every evaluation path yields a value: type and bounds problems are
// reported to the error writer and the benign default of the operation
// (usually Number 0) comes back, so evaluation never unwinds.
//
// Parameters:
//   - node: The expression node to evaluate
//
// Returns:
//   - objects.UzObject: The expression's value
func (e *Evaluator) Eval(node parser.ExpressionNode) objects.UzObject {
	switch n := node.(type) {
	case *parser.NumberLiteralExpressionNode:
		return &objects.Number{Value: n.Value}
	case *parser.StringLiteralExpressionNode:
		return &objects.String{Value: n.Value}
	case *parser.IdentifierExpressionNode:
		return e.getVariable(n.Name)
	case *parser.InputExpressionNode:
		return e.evalInputExpression()
	case *parser.ArrayExpressionNode:
		return e.evalArrayExpression(n)
	case *parser.IndexExpressionNode:
		return e.evalIndexExpression(n)
	case *parser.UnaryExpressionNode:
		return e.evalUnaryExpression(n)
	case *parser.BinaryExpressionNode:
		return e.evalBinaryExpression(n)
	case *parser.CallExpressionNode:
		return e.evalCallExpression(n)
	default:
		return &objects.Number{Value: 0}
	}
}

// evalInputExpression reads one line from the program input for so'ra.
// The trailing line break and surrounding whitespace are stripped. A read
// that yields nothing is reported and produces the empty String.
func (e *Evaluator) evalInputExpression() objects.UzObject {
	line, err := e.Reader.ReadString('\n')
	if err != nil && line == "" {
		e.ReportError("Xatolik: kiritishni o'qib bo'lmadi")
		return &objects.String{Value: ""}
	}
	return &objects.String{Value: strings.TrimSpace(line)}
}

// evalArrayExpression evaluates the elements of an array literal
// left-to-right and collects them into a new array.
func (e *Evaluator) evalArrayExpression(n *parser.ArrayExpressionNode) objects.UzObject {
	elements := make([]objects.UzObject, 0, len(n.Elements))
	for _, elem := range n.Elements {
		elements = append(elements, e.Eval(elem))
	}
	return &objects.Array{Elements: elements}
}

// evalIndexExpression evaluates an index access. The target must be an
// array and the index a non-negative in-range number; anything else is
// reported and yields Number 0.
func (e *Evaluator) evalIndexExpression(n *parser.IndexExpressionNode) objects.UzObject {
	target := e.Eval(n.Target)
	indexValue := e.Eval(n.Index)

	arr, ok := target.(*objects.Array)
	if !ok {
		e.ReportError("Xatolik: massiv indekslanishi kerak")
		return &objects.Number{Value: 0}
	}
	index, ok := indexValue.(*objects.Number)
	if !ok {
		e.ReportError("Xatolik: indeks raqam bo'lishi kerak")
		return &objects.Number{Value: 0}
	}
	if index.Value < 0 || index.Value >= int64(len(arr.Elements)) {
		e.ReportError("Xatolik: indeks chegaradan tashqarida: %d", index.Value)
		return &objects.Number{Value: 0}
	}
	return arr.Elements[index.Value]
}

// evalUnaryExpression evaluates a prefix operation. The only prefix
// operator is !, which yields the negated truthiness of its operand.
func (e *Evaluator) evalUnaryExpression(n *parser.UnaryExpressionNode) objects.UzObject {
	value := e.Eval(n.Operand)
	if n.Operator == "!" {
		return &objects.Boolean{Value: !IsTruthy(value)}
	}
	return &objects.Boolean{Value: false}
}

// evalBinaryExpression evaluates an infix operation.
//
// && and || short-circuit: the left side is evaluated first and the right
// side only when it can still affect the outcome; the result is the
// truthiness of the deciding side as a Boolean. Every other operator
// evaluates both sides left-then-right and dispatches on the operand
// types.
func (e *Evaluator) evalBinaryExpression(n *parser.BinaryExpressionNode) objects.UzObject {
	if n.Operator == "&&" {
		left := e.Eval(n.Left)
		if !IsTruthy(left) {
			return &objects.Boolean{Value: false}
		}
		right := e.Eval(n.Right)
		return &objects.Boolean{Value: IsTruthy(right)}
	}
	if n.Operator == "||" {
		left := e.Eval(n.Left)
		if IsTruthy(left) {
			return &objects.Boolean{Value: true}
		}
		right := e.Eval(n.Right)
		return &objects.Boolean{Value: IsTruthy(right)}
	}

	left := e.Eval(n.Left)
	right := e.Eval(n.Right)
	return e.evalBinaryOp(left, n.Operator, right)
}

// evalCallExpression evaluates a function call.
//
// Arguments are evaluated left-to-right. Dispatch order: a builtin with
// the name wins over any user-defined function; otherwise the user
// function table is consulted. An unknown name is reported and yields
// Number 0.
//
// User function calls push a fresh scope onto the chain with the
// parameters pre-seeded (missing arguments default to Number 0, extra
// arguments are ignored), execute the body, and pop the scope. A body
// that finishes without qaytar yields Number 0.
func (e *Evaluator) evalCallExpression(n *parser.CallExpressionNode) objects.UzObject {
	args := make([]objects.UzObject, 0, len(n.Arguments))
	for _, arg := range n.Arguments {
		args = append(args, e.Eval(arg))
	}

	// Builtins are dispatched by name before user-defined functions
	if builtin, ok := e.Builtins[n.Name]; ok {
		return builtin.Callback(e, e.Writer, args...)
	}

	fn, ok := e.Funcs[n.Name]
	if !ok {
		e.ReportError("Xatolik: funksiya topilmadi: %s", n.Name)
		return &objects.Number{Value: 0}
	}

	// Push the call frame with parameters pre-seeded
	e.Scp = scope.NewScope(e.Scp)
	for i, param := range fn.Params {
		if i < len(args) {
			e.Scp.Bind(param, args[i])
		} else {
			e.Scp.Bind(param, &objects.Number{Value: 0})
		}
	}

	result := e.evalStatements(fn.Body)

	// Pop the call frame
	e.Scp = e.Scp.Parent

	if returned, ok := result.(*objects.ReturnValue); ok {
		return returned.Value
	}
	return &objects.Number{Value: 0}
}
