/*
File    : uz-go/function/function.go
Author  : Algorix Devs
Contact : dev(@algorix.io)
*/

// Package function defines the record kept for a user-defined UzLang
// function. Functions live in the interpreter's function table, keyed by
// name; redefinition overwrites the previous entry.
package function

import (
	"fmt"
	"strings"

	"github.com/algorix-io/uz-go/parser"
)

// Function represents a user-defined function in UzLang.
// It captures the function's name, its parameter names in declaration
// order, and the statements of its body.
//
// Fields:
//   - Name: The name of the function as declared in the source code.
//   - Params: The parameter names. When a call supplies fewer arguments
//     than declared, the missing parameters default to Number(0); extra
//     arguments are ignored.
//   - Body: The statements executed when the function is invoked. A body
//     that finishes without an explicit qaytar yields Number(0).
type Function struct {
	Name   string                 // Name of the function
	Params []string               // Function parameter names
	Body   []parser.StatementNode // Function body (statements to execute)
}

// ToString returns a simple string representation of the function,
// in the form "funksiya(name)".
func (f *Function) ToString() string {
	return fmt.Sprintf("funksiya(%s)", f.Name)
}

// Signature returns a detailed representation of the function including
// its parameter names, in the form "<funksiya[name(a, b)]>". This is
// useful for debugging and inspection.
func (f *Function) Signature() string {
	return fmt.Sprintf("<funksiya[%s(%s)]>", f.Name, strings.Join(f.Params, ", "))
}
