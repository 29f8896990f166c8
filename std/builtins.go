/*
File    : uz-go/std/builtins.go
Author  : Algorix Devs
Contact : dev(@algorix.io)
*/

// Package std - builtins.go
// This file defines the registry for the builtin functions available in the
// UzLang language. The builtins themselves live in sibling files grouped by
// concern (common.go, http.go, file_io.go) and register themselves here
// during package initialization.
package std

import (
	"bufio"
	"io"

	"github.com/algorix-io/uz-go/objects"
)

// Runtime defines the interface the evaluator exposes to builtins.
//
// Builtins never abort evaluation: a builtin that runs into a problem
// reports it through ReportError and returns the benign default value its
// contract names (Number 0, empty String, or Boolean false).
type Runtime interface {
	// ReportError writes a human-readable Uzbek error message to the
	// interpreter's error stream (stderr by default).
	ReportError(format string, args ...interface{})
	// GetInputReader returns the interpreter's buffered stdin reader.
	GetInputReader() *bufio.Reader
}

// CallbackFunc is the function signature for builtin functions.
// It receives the runtime callback interface, an io.Writer for output
// (the interpreter's stdout), and the already-evaluated argument values,
// returning the builtin's result value.
type CallbackFunc func(rt Runtime, writer io.Writer, args ...objects.UzObject) objects.UzObject

// Builtin represents a builtin function with a name and its implementation
// callback. Builtins are dispatched by name before any user-defined
// function with the same name.
type Builtin struct {
	Name     string       // The name of the builtin function (e.g., "uzunlik")
	Callback CallbackFunc // The function that implements the builtin behavior
}

// Builtins is a global slice of pointers to Builtin structs.
// It holds all the builtin functions available in the UzLang language.
// Functions are added to this slice during package initialization.
var Builtins = make([]*Builtin, 0)
