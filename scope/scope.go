/*
File    : uz-go/scope/scope.go
Author  : Algorix Devs
Contact : dev(@algorix.io)
*/
package scope

import "github.com/algorix-io/uz-go/objects"

// Scope defines a lexical scope boundary for variable lifetime and accessibility.
//
// Scope implements a hierarchical scope chain. Each scope maintains its own
// variable bindings and can reach variables from enclosing scopes. The chain
// is traversed upward (from child to parent) during variable lookup and during
// assignment, implementing UzLang's scoping rules:
//   - Reads resolve innermost-first and fall back to outer scopes
//   - Assignment overwrites the innermost existing binding, so a function
//     body may modify a caller's variable; only when no binding exists
//     anywhere is a fresh one created in the innermost scope
//   - Function parameters and loop variables shadow outer names because they
//     are pre-seeded into the freshly pushed scope
//
// The root of the chain (Parent == nil) is the global scope; it exists for
// the whole lifetime of the interpreter, so the chain is never empty.
type Scope struct {
	// Variables maps variable names to their current values in this scope
	Variables map[string]objects.UzObject

	// Parent points to the enclosing scope, forming a scope chain
	// nil indicates this is the global (root) scope
	Parent *Scope
}

// NewScope creates and initializes a new Scope with the specified parent scope.
//
// The parent parameter determines the scope's position in the hierarchy:
//   - parent == nil: Creates a global (root) scope with no parent
//   - parent != nil: Creates a nested scope that can access parent variables
//
// Parameters:
//   - parent: The enclosing scope, or nil for a global scope
//
// Returns:
//   - *Scope: A fully initialized scope ready for variable bindings
//
// Example usage:
//
//	globalScope := NewScope(nil)           // Create global scope
//	callScope := NewScope(globalScope)     // Create function call scope
func NewScope(parent *Scope) *Scope {
	return &Scope{
		Variables: make(map[string]objects.UzObject),
		Parent:    parent,
	}
}

// LookUp searches for a variable by name in this scope and all parent scopes.
//
// The resolution algorithm:
//  1. First checks the current scope's Variables map
//  2. If not found and a parent scope exists, recursively searches the parent
//  3. Continues up the scope chain until the variable is found or the root
//     is reached
//
// This traversal order ensures that variables in inner scopes shadow those
// in outer scopes and that the most recent binding is always returned.
//
// Parameters:
//   - varName: The name of the variable to look up
//
// Returns:
//   - objects.UzObject: The value bound to the variable (if found)
//   - bool: true if the variable was found in this scope or any parent
func (s *Scope) LookUp(varName string) (objects.UzObject, bool) {
	if obj, ok := s.Variables[varName]; ok {
		return obj, true
	}
	if s.Parent != nil {
		return s.Parent.LookUp(varName)
	}
	return nil, false
}

// Bind creates or updates a variable binding in the current scope only,
// without touching parent scopes. It is used to pre-seed function parameters
// and loop variables into a freshly pushed scope, and as the fallback of
// assignment when no enclosing binding exists.
//
// Parameters:
//   - varName: The name of the variable to bind
//   - obj: The value to bind to the variable
func (s *Scope) Bind(varName string, obj objects.UzObject) {
	s.Variables[varName] = obj
}

// Assign updates an existing variable in the scope where it is currently
// bound, searching from this scope outward.
//
// Unlike Bind (which always writes to the current scope), Assign:
//  1. Searches for the variable in the current scope
//  2. If found, updates it in place and reports success
//  3. If not found, recursively searches parent scopes
//
// This is what lets a function body reach out and modify a caller's
// binding, which is the language's substitute for explicit references.
//
// Parameters:
//   - varName: The name of the variable to assign to
//   - obj: The new value to assign
//
// Returns:
//   - bool: true if an existing binding was found and updated, false otherwise
func (s *Scope) Assign(varName string, obj objects.UzObject) bool {
	if _, ok := s.Variables[varName]; ok {
		s.Variables[varName] = obj
		return true
	}
	if s.Parent != nil {
		return s.Parent.Assign(varName, obj)
	}
	return false
}
