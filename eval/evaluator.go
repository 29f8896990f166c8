/*
File    : uz-go/eval/evaluator.go
Author  : Algorix Devs
Contact : dev(@algorix.io)
*/

// Package eval implements the tree-walking evaluator for UzLang.
// It executes the statement list produced by the parser against a lexical
// scope chain and a function table, dispatching calls to builtins first
// and user-defined functions second.
//
// The evaluator never aborts on a user program error: every problem is
// reported to the error writer in Uzbek and the evaluation path yields a
// benign default value, so execution always continues or returns.
package eval

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/algorix-io/uz-go/function"
	"github.com/algorix-io/uz-go/objects"
	"github.com/algorix-io/uz-go/parser"
	"github.com/algorix-io/uz-go/scope"
	"github.com/algorix-io/uz-go/std"
)

// Evaluator holds the state for evaluating UzLang AST nodes: the current
// scope, the function table, the builtin registry, and the I/O streams.
//
// Fields:
//   - Scp: The innermost scope; its parent chain always bottoms out at the
//     global scope created by NewEvaluator, so the chain is never empty.
//   - Funcs: The function table. Maps a unique name to its user-defined
//     function; redefinition overwrites.
//   - Builtins: Map of builtin functions (son, matn, turi, uzunlik, qosh,
//     internet_ol, internet_yoz, fayl_oqi, fayl_yoz, fayl_qosh).
//   - Writer: Output writer for yoz and builtins (default: os.Stdout).
//   - ErrWriter: Error writer for runtime error messages (default: os.Stderr).
//   - Reader: Input reader for so'ra (default: os.Stdin).
type Evaluator struct {
	Scp       *scope.Scope                  // Current (innermost) scope
	Funcs     map[string]*function.Function // User-defined function table
	Builtins  map[string]*std.Builtin       // Builtin function registry
	Writer    io.Writer                     // Program output (yoz)
	ErrWriter io.Writer                     // Runtime error messages
	Reader    *bufio.Reader                 // Program input (so'ra)
}

// NewEvaluator creates and initializes a new Evaluator with default
// configuration: a fresh global scope, an empty function table, the full
// builtin registry, stdout/stderr/stdin as the streams.
//
// Returns:
//   - *Evaluator: A fully initialized evaluator ready to execute UzLang code
//
// Example usage:
//
//	p := parser.NewParser(src)
//	root := p.Parse()
//	ev := NewEvaluator()
//	ev.Interpret(root)
func NewEvaluator() *Evaluator {
	ev := &Evaluator{
		Scp:       scope.NewScope(nil),
		Funcs:     make(map[string]*function.Function),
		Builtins:  make(map[string]*std.Builtin),
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		Reader:    bufio.NewReader(os.Stdin),
	}
	for _, builtin := range std.Builtins {
		ev.Builtins[builtin.Name] = builtin
	}
	return ev
}

// SetWriter redirects program output (yoz and builtins) to any io.Writer.
// This is particularly useful for capturing output in tests.
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}

// SetErrWriter redirects runtime error messages to any io.Writer.
func (e *Evaluator) SetErrWriter(w io.Writer) {
	e.ErrWriter = w
}

// SetReader redirects program input (so'ra) to any io.Reader.
func (e *Evaluator) SetReader(r io.Reader) {
	e.Reader = bufio.NewReader(r)
}

// GetInputReader returns the buffered input reader.
// This implements the std.Runtime interface.
func (e *Evaluator) GetInputReader() *bufio.Reader {
	return e.Reader
}

// ReportError writes a runtime error message, newline-terminated, to the
// evaluator's error writer. This implements the std.Runtime interface.
// Messages are human-readable Uzbek text and not part of the stable API.
func (e *Evaluator) ReportError(format string, args ...interface{}) {
	fmt.Fprintf(e.ErrWriter, format+"\n", args...)
}

// SetGlobal binds a value into the global (root) scope. The CLI driver
// uses this to pre-seed the demonstration variable raqam = 5 before
// execution starts.
func (e *Evaluator) SetGlobal(name string, obj objects.UzObject) {
	root := e.Scp
	for root.Parent != nil {
		root = root.Parent
	}
	root.Bind(name, obj)
}

// Interpret executes a parsed program.
//
// The statements run in source order. A top-level qaytar stops execution
// and its value becomes the result. Otherwise the result is the value of
// the last expression statement, or nil when the program produced no
// value (the REPL uses this to decide what to echo).
//
// Parameters:
//   - root: The program's root node
//
// Returns:
//   - objects.UzObject: The program's result value, or nil
func (e *Evaluator) Interpret(root *parser.RootNode) objects.UzObject {
	result := e.evalStatements(root.Statements)
	if returned, ok := result.(*objects.ReturnValue); ok {
		return returned.Value
	}
	return result
}

// getVariable resolves a name through the scope chain, innermost first.
// An unbound name yields Number(0); reading a variable is never an error.
func (e *Evaluator) getVariable(name string) objects.UzObject {
	if obj, ok := e.Scp.LookUp(name); ok {
		return obj
	}
	return &objects.Number{Value: 0}
}

// setVariable overwrites the innermost existing binding of name, searching
// outward through the scope chain; when no binding exists anywhere, a new
// one is created in the innermost scope.
func (e *Evaluator) setVariable(name string, obj objects.UzObject) {
	if !e.Scp.Assign(name, obj) {
		e.Scp.Bind(name, obj)
	}
}
