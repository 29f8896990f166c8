/*
File    : uz-go/repl/repl.go
Author  : Algorix Devs
Contact : dev(@algorix.io)

Package repl implements the Read-Eval-Print Loop (REPL) for the UzLang
interpreter. The REPL provides an interactive environment where users can:
- Enter UzLang code line by line
- See immediate results of their code execution
- Navigate command history using arrow keys
- Receive colored feedback for different types of output

The REPL uses the readline library for enhanced line editing capabilities
and integrates with the parser and evaluator to execute user input. One
evaluator instance lives for the whole session, so variables and functions
defined on earlier lines stay available.
*/
package repl

import (
	"io"
	"strings"

	"github.com/algorix-io/uz-go/eval"
	"github.com/algorix-io/uz-go/objects"
	"github.com/algorix-io/uz-go/parser"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

// Color definitions for REPL output
// These colors provide visual feedback to enhance user experience:
// - blueColor: Decorative lines and separators
// - yellowColor: Expression results and version info
// - redColor: Error messages and warnings
// - greenColor: Banner and success messages
// - cyanColor: Informational messages and instructions
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl represents the Read-Eval-Print Loop instance.
// It encapsulates all the configuration needed to run an interactive session.
type Repl struct {
	Banner  string // ASCII art banner displayed at startup
	Version string // Version string of the interpreter
	Author  string // Author contact information
	Line    string // Separator line for visual formatting
	License string // Software license information
	Prompt  string // Command prompt shown to the user (e.g., "UzLang >>> ")
}

// NewRepl creates and initializes a new REPL instance.
//
// Parameters:
//
//	banner  - ASCII art logo to display at startup
//	version - Version string of the interpreter
//	author  - Author contact information
//	line    - Separator line for formatting
//	license - Software license information
//	prompt  - Command prompt string
//
// Returns:
//
//	A pointer to a newly created Repl instance
func NewRepl(banner string, version string, author string, line string, license string, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
//
// Parameters:
//
//	writer - The io.Writer to output the banner to (typically os.Stdout)
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Versiya: "+r.Version+" | Muallif: "+r.Author+" | Litsenziya: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "UzLang'ga xush kelibsiz!")
	cyanColor.Fprintf(writer, "%s\n", "Kodni yozing va Enter tugmasini bosing")
	cyanColor.Fprintf(writer, "%s\n", "Chiqish uchun '.exit' yozing")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop.
//
// The loop reads one line at a time with readline (command history via
// up/down arrows), parses it, and evaluates it against a session-wide
// evaluator. Parse errors print in red; runtime error messages are written
// to the same writer as program output, without colour; the value of a bare
// expression prints in yellow. The loop continues until the user types
// '.exit' or sends EOF (Ctrl+D).
//
// Parameters:
//
//	reader - Input source (kept for symmetry; readline reads the terminal)
//	writer - Output destination (typically os.Stdout)
func (r *Repl) Start(reader io.Reader, writer io.Writer) {

	// Print the welcome banner and usage instructions
	r.PrintBannerInfo(writer)

	// Create a new readline instance for enhanced line editing
	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close() // Ensure readline is properly closed on exit

	// One evaluator for the whole session, so state persists across lines
	evaluator := eval.NewEvaluator()
	evaluator.SetWriter(writer)
	evaluator.SetErrWriter(writer)
	evaluator.SetGlobal("raqam", &objects.Number{Value: 5})

	// Main REPL loop - continues until user exits or error occurs
	for {
		line, err := rl.Readline()
		if err != nil {
			// EOF or interrupt (e.g., Ctrl+D pressed)
			writer.Write([]byte("Xayr!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")

		// Skip empty lines
		if line == "" {
			continue
		}

		// Check for exit command
		if line == ".exit" {
			writer.Write([]byte("Xayr!\n"))
			break
		}

		// Save the command to history for up/down arrow navigation
		rl.SaveHistory(line)

		r.executeLine(writer, line, evaluator)
	}
}

// executeLine parses and evaluates one line of user input.
//
// Parse errors print in red and skip evaluation. After a successful
// evaluation the result of a bare expression (if any) prints in yellow.
// Unlike file execution mode, the REPL always continues after errors.
//
// Parameters:
//
//	writer    - Output destination for results and errors
//	line      - The user's input line to execute
//	evaluator - The session evaluator (maintains state across lines)
func (r *Repl) executeLine(writer io.Writer, line string, evaluator *eval.Evaluator) {
	par := parser.NewParser(line)
	root := par.Parse()

	if len(par.Errors) > 0 {
		for _, parseError := range par.Errors {
			redColor.Fprintf(writer, "%s\n", parseError)
		}
		return
	}

	result := evaluator.Interpret(root)
	if result != nil {
		yellowColor.Fprintf(writer, "%s\n", result.ToString())
	}
}
