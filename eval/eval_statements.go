/*
File    : uz-go/eval/eval_statements.go
Author  : Algorix Devs
Contact : dev(@algorix.io)
*/
package eval

import (
	"fmt"

	"github.com/algorix-io/uz-go/function"
	"github.com/algorix-io/uz-go/objects"
	"github.com/algorix-io/uz-go/parser"
	"github.com/algorix-io/uz-go/scope"
)

// evalStatements executes a sequence of statements in source order.
//
// A qaytar travelling up as a ReturnValue stops execution of the sequence
// immediately and is handed to the caller. Otherwise execution continues
// to the end and the value of the last expression statement (if any) is
// returned.
//
// Parameters:
//   - stmts: The statements to execute
//
// Returns:
//   - objects.UzObject: A ReturnValue to propagate, the last expression
//     statement's value, or nil
func (e *Evaluator) evalStatements(stmts []parser.StatementNode) objects.UzObject {
	var last objects.UzObject
	for _, stmt := range stmts {
		result := e.evalStatement(stmt)
		if returned, ok := result.(*objects.ReturnValue); ok {
			return returned
		}
		if result != nil {
			last = result
		}
	}
	return last
}

// evalStatement executes one statement, dispatching on the node type.
//
// Returns:
//   - objects.UzObject: nil to continue, a ReturnValue to propagate, or
//     the plain value of an expression statement
func (e *Evaluator) evalStatement(stmt parser.StatementNode) objects.UzObject {
	switch n := stmt.(type) {
	case *parser.PrintStatementNode:
		return e.evalPrintStatement(n)
	case *parser.IfStatementNode:
		return e.evalIfStatement(n)
	case *parser.LoopStatementNode:
		return e.evalLoopStatement(n)
	case *parser.ForStatementNode:
		return e.evalForStatement(n)
	case *parser.AssignStatementNode:
		e.setVariable(n.Name, e.Eval(n.Expr))
		return nil
	case *parser.AssignIndexStatementNode:
		return e.evalAssignIndexStatement(n)
	case *parser.FunctionStatementNode:
		// Redefinition overwrites the previous entry
		e.Funcs[n.Name] = &function.Function{Name: n.Name, Params: n.Params, Body: n.Body}
		return nil
	case *parser.ReturnStatementNode:
		return &objects.ReturnValue{Value: e.Eval(n.Expr)}
	case *parser.ExpressionStatementNode:
		// Evaluated for side effects; the value is kept only so the REPL
		// can echo it
		return e.Eval(n.Expr)
	default:
		return nil
	}
}

// evalPrintStatement evaluates the yoz operand and writes its display
// form, newline-terminated, to the program output.
func (e *Evaluator) evalPrintStatement(n *parser.PrintStatementNode) objects.UzObject {
	value := e.Eval(n.Expr)
	fmt.Fprintln(e.Writer, value.ToString())
	return nil
}

// evalIfStatement executes the agar body when the condition is truthy.
// A qaytar inside the body propagates out.
func (e *Evaluator) evalIfStatement(n *parser.IfStatementNode) objects.UzObject {
	if IsTruthy(e.Eval(n.Condition)) {
		result := e.evalStatements(n.Body)
		if returned, ok := result.(*objects.ReturnValue); ok {
			return returned
		}
	}
	return nil
}

// evalLoopStatement executes the toki/takrorla body while the condition
// stays truthy, re-evaluating the condition before each iteration.
// A qaytar inside the body propagates out immediately.
func (e *Evaluator) evalLoopStatement(n *parser.LoopStatementNode) objects.UzObject {
	for IsTruthy(e.Eval(n.Condition)) {
		result := e.evalStatements(n.Body)
		if returned, ok := result.(*objects.ReturnValue); ok {
			return returned
		}
	}
	return nil
}

// evalForStatement executes the uchun body once per element of the
// collection. Each iteration runs in a fresh scope with the loop variable
// bound to the current element, and the scope is popped afterwards, so
// nothing assigned to the loop variable name leaks outside the loop.
// A qaytar inside the body propagates out immediately.
func (e *Evaluator) evalForStatement(n *parser.ForStatementNode) objects.UzObject {
	collection := e.Eval(n.Collection)
	arr, ok := collection.(*objects.Array)
	if !ok {
		e.ReportError("Xatolik: 'uchun' faqat massivlar bilan ishlaydi")
		return nil
	}

	for _, element := range arr.Elements {
		e.Scp = scope.NewScope(e.Scp)
		e.Scp.Bind(n.VarName, element)

		result := e.evalStatements(n.Body)

		e.Scp = e.Scp.Parent
		if returned, ok := result.(*objects.ReturnValue); ok {
			return returned
		}
	}
	return nil
}

// evalAssignIndexStatement mutates one element of an array variable.
//
// The bound value must be an array and the index a non-negative in-range
// number; anything else is reported and leaves state unchanged. Array
// storage is shared between values, so the element slice is cloned before
// the mutation and the name is rebound to the clone. No other value that
// shares the old storage can observe the change.
func (e *Evaluator) evalAssignIndexStatement(n *parser.AssignIndexStatementNode) objects.UzObject {
	indexValue := e.Eval(n.Index)
	value := e.Eval(n.Value)
	current := e.getVariable(n.Name)

	arr, ok := current.(*objects.Array)
	if !ok {
		e.ReportError("Xatolik: o'zgaruvchi massiv emas: %s", n.Name)
		return nil
	}
	index, ok := indexValue.(*objects.Number)
	if !ok {
		e.ReportError("Xatolik: indeks raqam bo'lishi kerak")
		return nil
	}
	if index.Value < 0 || index.Value >= int64(len(arr.Elements)) {
		e.ReportError("Xatolik: indeks chegaradan tashqarida: %d", index.Value)
		return nil
	}

	clone := arr.Clone()
	clone.Elements[index.Value] = value
	e.setVariable(n.Name, clone)
	return nil
}
