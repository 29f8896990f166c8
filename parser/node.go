/*
File    : uz-go/parser/node.go
Author  : Algorix Devs
Contact : dev(@algorix.io)
*/
package parser

import (
	"strings"

	"github.com/algorix-io/uz-go/lexer"
)

// Node: base interface for all nodes of the AST.
// Every node is immutable after parsing.
// Literal(): returns a source-like string representation of the node
type Node interface {
	Literal() string
}

// StatementNode: base interface for all statement nodes
type StatementNode interface {
	Node
	Statement()
}

// ExpressionNode: base interface for all expression nodes
type ExpressionNode interface {
	Node
	Expression()
}

// RootNode: represents the root of the AST (the program node)
// Statements: list of top-level statements in the program
type RootNode struct {
	Statements []StatementNode // every line of code is a statement
}

// RootNode.Literal(): string representation of the whole program
func (root *RootNode) Literal() string {
	var builder strings.Builder
	for _, stmt := range root.Statements {
		builder.WriteString(stmt.Literal())
		builder.WriteString(";")
	}
	return builder.String()
}

// There can be many types of ExpressionNodes

// NumberLiteralExpressionNode: represents an integer number literal
// Example: 42, 0, 1234
type NumberLiteralExpressionNode struct {
	Token lexer.Token // The integer token with its literal text
	Value int64       // The converted integer value
}

func (node *NumberLiteralExpressionNode) Literal() string { return node.Token.Literal }
func (node *NumberLiteralExpressionNode) Expression()     {}

// StringLiteralExpressionNode: represents a string literal
// Example: "salom", "dunyo"
type StringLiteralExpressionNode struct {
	Token lexer.Token // The string token, escapes already processed
	Value string      // The processed string content
}

func (node *StringLiteralExpressionNode) Literal() string { return "\"" + node.Value + "\"" }
func (node *StringLiteralExpressionNode) Expression()     {}

// IdentifierExpressionNode: represents a variable or function name
// Example: sanoq, natija
type IdentifierExpressionNode struct {
	Token lexer.Token // The identifier token
	Name  string      // The identifier text
}

func (node *IdentifierExpressionNode) Literal() string { return node.Name }
func (node *IdentifierExpressionNode) Expression()     {}

// InputExpressionNode: represents the so'ra expression, which reads one
// line from standard input and yields it as a string
type InputExpressionNode struct {
	Token lexer.Token // The so'ra keyword token
}

func (node *InputExpressionNode) Literal() string { return "so'ra" }
func (node *InputExpressionNode) Expression()     {}

// ArrayExpressionNode: represents an array literal
// Example: [1, 2, 3], ["a", x, [2]]
type ArrayExpressionNode struct {
	Token    lexer.Token      // The '[' token
	Elements []ExpressionNode // Element expressions, in source order
}

func (node *ArrayExpressionNode) Literal() string {
	parts := make([]string, len(node.Elements))
	for i, elem := range node.Elements {
		parts[i] = elem.Literal()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
func (node *ArrayExpressionNode) Expression() {}

// IndexExpressionNode: represents an index access
// Example: x[0], x[i + 1], f(1)[2]
type IndexExpressionNode struct {
	Token  lexer.Token    // The '[' token
	Target ExpressionNode // The expression being indexed
	Index  ExpressionNode // The index expression
}

func (node *IndexExpressionNode) Literal() string {
	return node.Target.Literal() + "[" + node.Index.Literal() + "]"
}
func (node *IndexExpressionNode) Expression() {}

// CallExpressionNode: represents a function call. Only identifier names
// are callable, so the callee is stored by name.
// Example: uzunlik(x), f(2, 3)
type CallExpressionNode struct {
	Token     lexer.Token      // The callee identifier token
	Name      string           // The called function's name
	Arguments []ExpressionNode // Argument expressions, in source order
}

func (node *CallExpressionNode) Literal() string {
	parts := make([]string, len(node.Arguments))
	for i, arg := range node.Arguments {
		parts[i] = arg.Literal()
	}
	return node.Name + "(" + strings.Join(parts, ", ") + ")"
}
func (node *CallExpressionNode) Expression() {}

// UnaryExpressionNode: represents a prefix operation
// Example: !x, !!tugadi
type UnaryExpressionNode struct {
	Token    lexer.Token    // The operator token
	Operator string         // The operator text ("!")
	Operand  ExpressionNode // The operand expression
}

func (node *UnaryExpressionNode) Literal() string {
	return node.Operator + node.Operand.Literal()
}
func (node *UnaryExpressionNode) Expression() {}

// BinaryExpressionNode: represents an infix operation
// Example: a + b, x == 10, bor && tayyor
type BinaryExpressionNode struct {
	Token    lexer.Token    // The operator token
	Operator string         // The operator text ("+", "==", "&&", ...)
	Left     ExpressionNode // Left operand
	Right    ExpressionNode // Right operand
}

func (node *BinaryExpressionNode) Literal() string {
	return "(" + node.Left.Literal() + " " + node.Operator + " " + node.Right.Literal() + ")"
}
func (node *BinaryExpressionNode) Expression() {}

// There can be many types of StatementNodes

// PrintStatementNode: represents a yoz statement
// Example: yoz x + 1
type PrintStatementNode struct {
	Token lexer.Token    // The yoz keyword token
	Expr  ExpressionNode // The expression whose value is printed
}

func (node *PrintStatementNode) Literal() string { return "yoz " + node.Expr.Literal() }
func (node *PrintStatementNode) Statement()      {}

// IfStatementNode: represents an agar conditional
// Example: agar x > 0 { yoz x }
type IfStatementNode struct {
	Token     lexer.Token     // The agar keyword token
	Condition ExpressionNode  // The condition expression
	Body      []StatementNode // Statements executed when the condition is truthy
}

func (node *IfStatementNode) Literal() string {
	return "agar " + node.Condition.Literal() + " " + blockLiteral(node.Body)
}
func (node *IfStatementNode) Statement() {}

// LoopStatementNode: represents a toki/takrorla while loop
// Example: toki x < 10 { x = x + 1 }
type LoopStatementNode struct {
	Token     lexer.Token     // The toki or takrorla keyword token
	Condition ExpressionNode  // The loop condition, re-evaluated each iteration
	Body      []StatementNode // Loop body statements
}

func (node *LoopStatementNode) Literal() string {
	return node.Token.Literal + " " + node.Condition.Literal() + " " + blockLiteral(node.Body)
}
func (node *LoopStatementNode) Statement() {}

// ForStatementNode: represents an uchun ... ichida ... for-each loop
// Example: uchun i ichida [1, 2, 3] { yoz i }
type ForStatementNode struct {
	Token      lexer.Token     // The uchun keyword token
	VarName    string          // The loop variable name
	Collection ExpressionNode  // The expression yielding the array to iterate
	Body       []StatementNode // Loop body statements
}

func (node *ForStatementNode) Literal() string {
	return "uchun " + node.VarName + " ichida " + node.Collection.Literal() + " " + blockLiteral(node.Body)
}
func (node *ForStatementNode) Statement() {}

// AssignStatementNode: represents a variable assignment
// Example: x = 10
type AssignStatementNode struct {
	Token lexer.Token    // The assigned identifier token
	Name  string         // The assigned variable's name
	Expr  ExpressionNode // The value expression
}

func (node *AssignStatementNode) Literal() string {
	return node.Name + " = " + node.Expr.Literal()
}
func (node *AssignStatementNode) Statement() {}

// AssignIndexStatementNode: represents an indexed assignment into an array
// Example: x[1] = 99
type AssignIndexStatementNode struct {
	Token lexer.Token    // The assigned identifier token
	Name  string         // The assigned array variable's name
	Index ExpressionNode // The index expression
	Value ExpressionNode // The value expression
}

func (node *AssignIndexStatementNode) Literal() string {
	return node.Name + "[" + node.Index.Literal() + "] = " + node.Value.Literal()
}
func (node *AssignIndexStatementNode) Statement() {}

// FunctionStatementNode: represents a funksiya declaration
// Example: funksiya f(a, b) { qaytar a + b }
type FunctionStatementNode struct {
	Token  lexer.Token     // The funksiya keyword token
	Name   string          // The declared function's name
	Params []string        // Parameter names, in declaration order
	Body   []StatementNode // Function body statements
}

func (node *FunctionStatementNode) Literal() string {
	return "funksiya " + node.Name + "(" + strings.Join(node.Params, ", ") + ") " + blockLiteral(node.Body)
}
func (node *FunctionStatementNode) Statement() {}

// ReturnStatementNode: represents a qaytar statement
// Example: qaytar a + b
type ReturnStatementNode struct {
	Token lexer.Token    // The qaytar keyword token
	Expr  ExpressionNode // The returned value expression
}

func (node *ReturnStatementNode) Literal() string { return "qaytar " + node.Expr.Literal() }
func (node *ReturnStatementNode) Statement()      {}

// ExpressionStatementNode: represents a bare expression evaluated for its
// side effects at statement position
// Example: qosh(x, 4)
type ExpressionStatementNode struct {
	Expr ExpressionNode // The wrapped expression
}

func (node *ExpressionStatementNode) Literal() string { return node.Expr.Literal() }
func (node *ExpressionStatementNode) Statement()      {}

// blockLiteral renders a statement list as "{ s1; s2; }"
func blockLiteral(stmts []StatementNode) string {
	var builder strings.Builder
	builder.WriteString("{ ")
	for _, stmt := range stmts {
		builder.WriteString(stmt.Literal())
		builder.WriteString("; ")
	}
	builder.WriteString("}")
	return builder.String()
}
