/*
File    : uz-go/parser/parser.go
Author  : Algorix Devs
Contact : dev(@algorix.io)
*/

/*
Package parser implements the recursive-descent parser for the UzLang
programming language.

The parser converts the token buffer produced by the lexer into an Abstract
Syntax Tree (AST). It handles:
- Statements (yoz, agar, toki/takrorla, uchun, funksiya, qaytar, assignments)
- Expressions (binary, unary, literals, identifiers, arrays, calls, indexing)
- Operator precedence and associativity
- Error collection (doesn't panic on first error)

Precedence Hierarchy (lowest to highest):
 1. Logical OR (||)
 2. Logical AND (&&)
 3. Comparison (== != < > <= >=)
 4. Additive (+ -)
 5. Multiplicative (* /)
 6. Unary (!)
 7. Postfix (indexing [i], calls (args))
 8. Primary (number, string, identifier, so'ra, array literal, grouping)

All binary levels are left-associative; unary ! can stack. A call is only
valid when the callee is a plain identifier.

The parser never aborts: when a production cannot be completed it records a
human-readable error and returns nil, and the top-level loop consumes one
token before retrying, which prevents livelock on malformed input.
*/
package parser

import (
	"fmt"
	"strconv"

	"github.com/algorix-io/uz-go/lexer"
)

// Parser represents the parser state. It owns a fully materialized token
// buffer (terminated by EOF) and a cursor into it, plus the collected
// parse errors.
type Parser struct {
	Tokens []lexer.Token // Token buffer, always ending with an EOF token
	Pos    int           // Cursor into Tokens

	// Collect parsing errors instead of panicking.
	// This allows reporting multiple errors in a single parse.
	Errors []string
}

// NewParser creates and initializes a new Parser instance for the given
// source code. The source is tokenized eagerly; call Parse() to build the
// AST.
//
// Parameters:
//
//	src - The UzLang source code to parse
//
// Returns:
//
//	A pointer to a fully initialized Parser instance
func NewParser(src string) *Parser {
	lex := lexer.NewLexer(src)
	return &Parser{
		Tokens: lex.ConsumeTokens(),
		Errors: make([]string, 0),
	}
}

// peek returns the current token without advancing the cursor.
// Past the end of the buffer it keeps returning the EOF token.
func (par *Parser) peek() lexer.Token {
	if par.Pos < len(par.Tokens) {
		return par.Tokens[par.Pos]
	}
	return lexer.NewToken(lexer.EOF_TYPE, "EOF")
}

// advance returns the current token and moves the cursor forward.
// At the end of the buffer it keeps returning the EOF token without
// moving further.
func (par *Parser) advance() lexer.Token {
	token := par.peek()
	if par.Pos < len(par.Tokens) {
		par.Pos++
	}
	return token
}

// addError records a parse error. Messages are human-readable Uzbek text;
// they are not part of the stable API.
func (par *Parser) addError(format string, args ...interface{}) {
	par.Errors = append(par.Errors, fmt.Sprintf(format, args...))
}

// expect consumes the current token when it has the wanted type. Otherwise
// it records an error naming what was expected and leaves the cursor alone.
//
// Returns:
//
//	true when the wanted token was consumed, false otherwise
func (par *Parser) expect(tokenType lexer.TokenType, what string) bool {
	if par.peek().Type == tokenType {
		par.advance()
		return true
	}
	par.addError("Xatolik: '%s' kutilgan edi, '%s' topildi", what, par.peek().Literal)
	return false
}

// Parse parses the whole token buffer into a RootNode.
//
// The top level repeatedly parses statements until EOF. When a statement
// cannot be parsed, one token is consumed and an error is recorded; the
// cursor therefore always advances, preventing livelock.
//
// Returns:
//
//	The root node holding all successfully parsed top-level statements.
//	Check Parser.Errors afterwards for anything that went wrong.
func (par *Parser) Parse() *RootNode {
	root := &RootNode{Statements: make([]StatementNode, 0)}
	for par.peek().Type != lexer.EOF_TYPE {
		stmt := par.parseStatement()
		if stmt != nil {
			root.Statements = append(root.Statements, stmt)
		} else {
			// Recovery: consume one token so the next attempt starts
			// somewhere new
			token := par.advance()
			par.addError("Xatolik: kutilmagan token: '%s'", token.Literal)
		}
	}
	return root
}

// parseBlock parses a brace-delimited block: '{' statements '}'.
// A missing opening or closing brace is a recorded error.
//
// Returns:
//
//	The block's statements and true on success, nil and false otherwise
func (par *Parser) parseBlock() ([]StatementNode, bool) {
	if !par.expect(lexer.LEFT_BRACE, "{") {
		return nil, false
	}

	stmts := make([]StatementNode, 0)
	for par.peek().Type != lexer.RIGHT_BRACE && par.peek().Type != lexer.EOF_TYPE {
		stmt := par.parseStatement()
		if stmt != nil {
			stmts = append(stmts, stmt)
		} else {
			// Same recovery as the top level: skip one token
			token := par.advance()
			par.addError("Xatolik: kutilmagan token: '%s'", token.Literal)
		}
	}

	if !par.expect(lexer.RIGHT_BRACE, "}") {
		return nil, false
	}
	return stmts, true
}

// parseNumberValue converts the digit run of an INT_LIT token into int64.
// The lexer only produces pure digit runs, so the only possible conversion
// failure is overflow, which clamps to 0.
func parseNumberValue(literal string) int64 {
	value, err := strconv.ParseInt(literal, 10, 64)
	if err != nil {
		return 0
	}
	return value
}
