/*
File    : uz-go/main.go
Author  : Algorix Devs
Contact : dev(@algorix.io)

Package main is the entry point for the UzLang interpreter.
It provides two modes of operation:
1. File Mode (default): Execute an UzLang source file from the command line
2. Interactive Mode (-i): Read-Eval-Print Loop for live coding

The interpreter uses a lexer-parser-evaluator pipeline to process UzLang code.
*/
package main

import (
	"fmt"
	"os"

	"github.com/algorix-io/uz-go/eval"
	"github.com/algorix-io/uz-go/objects"
	"github.com/algorix-io/uz-go/parser"
	"github.com/algorix-io/uz-go/repl"
	"github.com/fatih/color"
)

// VERSION represents the current version of the UzLang interpreter
var VERSION = "v1.0.0"

// AUTHOR contains the contact information of the interpreter's authors
var AUTHOR = "dev(@algorix.io)"

// LICENCE specifies the software license (MIT License)
var LICENCE = "MIT"

// PROMPT is the command prompt displayed in interactive mode
var PROMPT = "UzLang >>> "

// USAGE is the single usage line printed when no source file is given
var USAGE = "Foydalanish: uzgo <fayl_nomi>"

// BANNER is the ASCII art logo displayed when starting the REPL
var BANNER = `
 ██    ██ ███████ ██       █████  ███    ██  ██████
 ██    ██     ██  ██      ██   ██ ████   ██ ██
 ██    ██   ██    ██      ███████ ██ ██  ██ ██   ███
 ██    ██  ██     ██      ██   ██ ██  ██ ██ ██    ██
  ██████  ███████ ███████ ██   ██ ██   ████  ██████
`

// LINE is a separator line used for visual formatting in the REPL
var LINE = "----------------------------------------------------------------"

// Color definitions for file execution output:
// - redColor: Error messages and critical failures
// - cyanColor: Informational messages
var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

// main is the entry point of the UzLang interpreter.
// It determines the operating mode based on command-line arguments:
//
// Usage:
//
//	uzgo <fayl_nomi>    - Execute the specified UzLang source file
//	uzgo -i             - Start in interactive (REPL) mode
//	uzgo --help         - Display help information
//	uzgo --version      - Display version information
//	uzgo                - Print the usage line and exit
func main() {
	if len(os.Args) < 2 {
		fmt.Println(USAGE)
		os.Exit(0)
	}

	arg := os.Args[1]

	// Handle --help flag
	if arg == "--help" || arg == "-h" {
		showHelp()
		os.Exit(0)
	}

	// Handle --version flag
	if arg == "--version" || arg == "-v" {
		showVersion()
		os.Exit(0)
	}

	// Interactive mode: start the REPL
	if arg == "--interactive" || arg == "-i" {
		repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
		repler.Start(os.Stdin, os.Stdout)
		return
	}

	// File mode: read and run a source file
	runFile(arg)
}

// runFile executes an UzLang source file.
//
// The pipeline is: read the file, tokenize and parse it, print any parse
// errors to stderr, then evaluate whatever was parsed. Parse errors do not
// stop execution; the parser recovers statement by statement and the
// evaluator runs the statements that survived. A file that cannot be read
// is fatal and exits with a non-zero status.
//
// Before execution the demonstration global raqam = 5 is seeded into the
// evaluator, for programs that reference it.
//
// Parameters:
//
//	fileName - Path to the UzLang source file
func runFile(fileName string) {
	source, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Faylni o'qishda xatolik: %v\n", err)
		os.Exit(1)
	}

	par := parser.NewParser(string(source))
	root := par.Parse()

	// Parse errors are reported but do not prevent execution of the
	// statements that parsed successfully
	for _, parseError := range par.Errors {
		redColor.Fprintf(os.Stderr, "%s\n", parseError)
	}

	evaluator := eval.NewEvaluator()
	evaluator.SetGlobal("raqam", &objects.Number{Value: 5})
	evaluator.Interpret(root)
}

// showHelp displays the help information for the UzLang interpreter
func showHelp() {
	cyanColor.Println("UzLang - Uzbek tilidagi dasturlash tili")
	fmt.Println()
	fmt.Println(USAGE)
	fmt.Println()
	fmt.Println("Bayroqlar:")
	fmt.Println("  -i, --interactive    interaktiv rejim (REPL)")
	fmt.Println("  -h, --help           yordam ma'lumotini ko'rsatish")
	fmt.Println("  -v, --version        versiyani ko'rsatish")
}

// showVersion displays the version information for the UzLang interpreter
func showVersion() {
	fmt.Printf("UzLang %s | %s | %s\n", VERSION, AUTHOR, LICENCE)
}
