/*
File    : uz-go/std/file_io.go
Author  : Algorix Devs
Contact : dev(@algorix.io)
*/

// Package std - file_io.go
// This file defines the file builtin functions: whole-file read, write,
// and append. Paths and contents are strings; failures report and yield
// the benign default (empty String or Boolean false).
package std

import (
	"io"
	"os"

	"github.com/algorix-io/uz-go/objects"
)

var fileMethods = []*Builtin{
	{Name: "fayl_oqi", Callback: fileRead},     // Reads a whole file as a string
	{Name: "fayl_yoz", Callback: fileWrite},    // Writes (truncates) a string to a file
	{Name: "fayl_qosh", Callback: fileAppend}, // Appends a string to a file
}

// init registers the file methods as global builtins.
func init() {
	Builtins = append(Builtins, fileMethods...)
}

// fileRead reads a whole file and returns its content as a String.
// A non-string path or a read failure reports and yields the empty String.
//
// Syntax: fayl_oqi(path)
func fileRead(rt Runtime, writer io.Writer, args ...objects.UzObject) objects.UzObject {
	if len(args) < 1 {
		return &objects.String{Value: ""}
	}
	path, ok := args[0].(*objects.String)
	if !ok {
		rt.ReportError("Xatolik: 'fayl_oqi' uchun fayl nomi matn bo'lishi kerak")
		return &objects.String{Value: ""}
	}

	content, err := os.ReadFile(path.Value)
	if err != nil {
		rt.ReportError("Xatolik: faylni o'qib bo'lmadi: %v", err)
		return &objects.String{Value: ""}
	}
	return &objects.String{Value: string(content)}
}

// fileWrite writes a string to a file, truncating any previous content.
// Returns Boolean true on success and false on any failure.
//
// Syntax: fayl_yoz(path, content)
func fileWrite(rt Runtime, writer io.Writer, args ...objects.UzObject) objects.UzObject {
	path, content, ok := twoStringArgs(rt, "fayl_yoz", args)
	if !ok {
		return &objects.Boolean{Value: false}
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		rt.ReportError("Xatolik: faylga yozib bo'lmadi: %v", err)
		return &objects.Boolean{Value: false}
	}
	return &objects.Boolean{Value: true}
}

// fileAppend appends a string to a file, creating it when absent.
// Returns Boolean true on success and false on any failure.
//
// Syntax: fayl_qosh(path, content)
func fileAppend(rt Runtime, writer io.Writer, args ...objects.UzObject) objects.UzObject {
	path, content, ok := twoStringArgs(rt, "fayl_qosh", args)
	if !ok {
		return &objects.Boolean{Value: false}
	}

	handle, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		rt.ReportError("Xatolik: faylni ochib bo'lmadi: %v", err)
		return &objects.Boolean{Value: false}
	}
	defer handle.Close()

	if _, err := handle.WriteString(content); err != nil {
		rt.ReportError("Xatolik: faylga yozib bo'lmadi: %v", err)
		return &objects.Boolean{Value: false}
	}
	return &objects.Boolean{Value: true}
}

// twoStringArgs extracts the (path, content) string pair the write-side
// file builtins share, reporting when the shapes are wrong.
func twoStringArgs(rt Runtime, name string, args []objects.UzObject) (string, string, bool) {
	if len(args) < 2 {
		return "", "", false
	}
	path, pathOK := args[0].(*objects.String)
	content, contentOK := args[1].(*objects.String)
	if !pathOK || !contentOK {
		rt.ReportError("Xatolik: '%s' uchun fayl nomi va mazmun matn bo'lishi kerak", name)
		return "", "", false
	}
	return path.Value, content.Value, true
}
