/*
File    : uz-go/objects/objects.go
Author  : Algorix Devs
Contact : dev(@algorix.io)
*/

// Package objects defines the core data types and interfaces for the UzLang
// language. It provides implementations for the primitive types (numbers,
// strings, booleans), the array composite type, and the internal return-value
// wrapper. All types implement the UzObject interface, which allows for type
// checking and display formatting.
package objects

import (
	"fmt"
	"strings"
)

// UzType represents the type of an UzLang object as a string constant.
// The constants double as the user-visible type tags returned by the
// turi() built-in, so they are spelled in Uzbek.
type UzType string

const (
	// NumberType represents signed 64-bit integer values
	NumberType UzType = "son"
	// StringType represents string values
	StringType UzType = "matn"
	// BooleanType represents boolean (true/false) values
	BooleanType UzType = "mantiq"
	// ArrayType represents arrays of UzLang objects
	ArrayType UzType = "massiv"

	// ReturnType wraps a value travelling up from a qaytar statement.
	// It never escapes the evaluator and is invisible to user programs.
	ReturnType UzType = "qaytarish"
)

// UzObject is the core interface that all UzLang objects must implement.
// It provides methods for type identification, display formatting, and
// object inspection for debugging purposes.
type UzObject interface {
	// GetType returns the UzType of the object, used for type checking
	GetType() UzType
	// ToString returns the display form of the object's value. This is the
	// text yoz writes and the text string concatenation uses.
	ToString() string
	// ToObject returns a detailed string representation including type
	// information, useful for debugging and object inspection
	ToObject() string
}

// Number represents a signed 64-bit integer value in UzLang.
// It wraps an int64 and provides methods for type identification and
// string conversion.
type Number struct {
	Value int64 // The underlying integer value
}

// GetType returns the type of the Number object
func (n *Number) GetType() UzType {
	return NumberType
}

// ToString returns the decimal representation of the number (e.g., "42")
func (n *Number) ToString() string {
	return fmt.Sprintf("%d", n.Value)
}

// ToObject returns a detailed representation including type info (e.g., "<son(42)>")
func (n *Number) ToObject() string {
	return fmt.Sprintf("<son(%d)>", n.Value)
}

// String represents an immutable text value in UzLang.
// Concatenation always yields a new String value.
type String struct {
	Value string // The underlying string value
}

// GetType returns the type of the String object
func (s *String) GetType() UzType {
	return StringType
}

// ToString returns the raw text of the string
func (s *String) ToString() string {
	return s.Value
}

// ToObject returns a detailed representation including type info (e.g., `<matn("salom")>`)
func (s *String) ToObject() string {
	return fmt.Sprintf("<matn(%q)>", s.Value)
}

// Boolean represents a true/false value in UzLang.
type Boolean struct {
	Value bool // The underlying boolean value
}

// GetType returns the type of the Boolean object
func (b *Boolean) GetType() UzType {
	return BooleanType
}

// ToString returns "true" or "false"
func (b *Boolean) ToString() string {
	return fmt.Sprintf("%t", b.Value)
}

// ToObject returns a detailed representation including type info (e.g., "<mantiq(true)>")
func (b *Boolean) ToObject() string {
	return fmt.Sprintf("<mantiq(%t)>", b.Value)
}

// Array represents an ordered sequence of UzLang values.
//
// Array values are shared by reference: binding "b = a" makes both names
// refer to the same *Array. Indexed assignment therefore never mutates an
// Array in place; the evaluator clones the array first and rebinds the
// assigned name, so no other value that shares the storage can observe the
// mutation.
type Array struct {
	Elements []UzObject // The element values, in order
}

// GetType returns the type of the Array object
func (a *Array) GetType() UzType {
	return ArrayType
}

// ToString formats the array as "[e1, e2, ...]" with the elements formatted
// recursively and separated by ", ".
func (a *Array) ToString() string {
	var builder strings.Builder
	builder.WriteString("[")
	for i, elem := range a.Elements {
		if i > 0 {
			builder.WriteString(", ")
		}
		builder.WriteString(elem.ToString())
	}
	builder.WriteString("]")
	return builder.String()
}

// ToObject returns a detailed representation including type info (e.g., "<massiv([1, 2])>")
func (a *Array) ToObject() string {
	return fmt.Sprintf("<massiv(%s)>", a.ToString())
}

// Clone returns a new Array with a fresh element slice holding the same
// element values. Mutating an element slot of the clone cannot be observed
// through the original.
func (a *Array) Clone() *Array {
	elements := make([]UzObject, len(a.Elements))
	copy(elements, a.Elements)
	return &Array{Elements: elements}
}

// ReturnValue wraps the value produced by a qaytar statement while it
// propagates out of nested blocks. The evaluator unwraps it at the function
// call boundary (or at top level), so user programs never see it.
type ReturnValue struct {
	Value UzObject // The value being returned
}

// GetType returns the internal return-value type
func (r *ReturnValue) GetType() UzType {
	return ReturnType
}

// ToString returns the display form of the wrapped value
func (r *ReturnValue) ToString() string {
	return r.Value.ToString()
}

// ToObject returns a detailed representation of the wrapped value
func (r *ReturnValue) ToObject() string {
	return fmt.Sprintf("<qaytarish(%s)>", r.Value.ToObject())
}
