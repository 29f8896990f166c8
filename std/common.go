/*
File    : uz-go/std/common.go
Author  : Algorix Devs
Contact : dev(@algorix.io)
*/

// Package std - common.go
// This file defines the core builtin functions of the UzLang language:
// type coercion (son, matn), type query (turi), array length (uzunlik),
// and array append (qosh).
package std

import (
	"io"
	"strconv"
	"strings"

	"github.com/algorix-io/uz-go/objects"
)

// commonMethods is the set of always-available core builtins.
var commonMethods = []*Builtin{
	{Name: "son", Callback: toNumber},     // Coerces a value to a number
	{Name: "matn", Callback: toText},      // Coerces a value to its display text
	{Name: "turi", Callback: typeOf},      // Returns a value's type tag as a string
	{Name: "uzunlik", Callback: arrayLen}, // Returns the length of an array
	{Name: "qosh", Callback: arrayPush},   // Returns a new array with one element appended
}

// init registers the common methods as global builtins.
func init() {
	Builtins = append(Builtins, commonMethods...)
}

// toNumber coerces its argument to a Number.
// Strings are trimmed and parsed as decimal integers; anything that does
// not parse yields 0. Numbers pass through unchanged; every other type
// yields 0.
//
// Syntax: son(value)
//
// Example: son("  42 ") returns 42
func toNumber(rt Runtime, writer io.Writer, args ...objects.UzObject) objects.UzObject {
	if len(args) < 1 {
		return &objects.Number{Value: 0}
	}
	switch arg := args[0].(type) {
	case *objects.Number:
		return arg
	case *objects.String:
		value, err := strconv.ParseInt(strings.TrimSpace(arg.Value), 10, 64)
		if err != nil {
			return &objects.Number{Value: 0}
		}
		return &objects.Number{Value: value}
	default:
		return &objects.Number{Value: 0}
	}
}

// toText coerces its argument to a String using the value's display form.
//
// Syntax: matn(value)
//
// Example: matn(42) returns "42"; matn([1, 2]) returns "[1, 2]"
func toText(rt Runtime, writer io.Writer, args ...objects.UzObject) objects.UzObject {
	if len(args) < 1 {
		return &objects.String{Value: ""}
	}
	return &objects.String{Value: args[0].ToString()}
}

// typeOf returns the type tag of its argument as a String:
// "son", "matn", "mantiq", or "massiv".
//
// Syntax: turi(value)
func typeOf(rt Runtime, writer io.Writer, args ...objects.UzObject) objects.UzObject {
	if len(args) < 1 {
		return &objects.String{Value: "noma'lum"}
	}
	return &objects.String{Value: string(args[0].GetType())}
}

// arrayLen returns the length of an array as a Number.
// Non-array arguments yield 0.
//
// Syntax: uzunlik(array)
func arrayLen(rt Runtime, writer io.Writer, args ...objects.UzObject) objects.UzObject {
	if len(args) < 1 {
		return &objects.Number{Value: 0}
	}
	if arr, ok := args[0].(*objects.Array); ok {
		return &objects.Number{Value: int64(len(arr.Elements))}
	}
	return &objects.Number{Value: 0}
}

// arrayPush returns a new array equal to its first argument with the
// second argument appended. The original array is never mutated. The
// first argument must be an array.
//
// Syntax: qosh(array, value)
//
// Example: qosh([1, 2], 3) returns [1, 2, 3]
func arrayPush(rt Runtime, writer io.Writer, args ...objects.UzObject) objects.UzObject {
	if len(args) < 2 {
		return &objects.Number{Value: 0}
	}
	arr, ok := args[0].(*objects.Array)
	if !ok {
		rt.ReportError("Xatolik: 'qosh' funksiyasining birinchi parametri massiv bo'lishi kerak")
		return &objects.Number{Value: 0}
	}
	result := arr.Clone()
	result.Elements = append(result.Elements, args[1])
	return result
}
