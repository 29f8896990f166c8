/*
File    : uz-go/lexer/lexer_utils.go
Author  : Algorix Devs
Contact : dev(@algorix.io)
*/
package lexer

import "strings"

// isWhitespace checks if the given byte is a whitespace character.
// UzLang treats space, tab, carriage return, and newline as whitespace.
//
// Parameters:
//   - curr: The byte to check
//
// Returns:
//   - bool: true if curr is whitespace, false otherwise
func isWhitespace(curr byte) bool {
	return curr == ' ' || curr == '\t' || curr == '\r' || curr == '\n'
}

// isNumeric checks if the given byte is an ASCII decimal digit (0-9).
//
// Parameters:
//   - curr: The byte to check
//
// Returns:
//   - bool: true if curr is a digit, false otherwise
func isNumeric(curr byte) bool {
	return curr >= '0' && curr <= '9'
}

// isAlpha checks if the given byte is an ASCII alphabetic character (a-z, A-Z).
//
// Parameters:
//   - curr: The byte to check
//
// Returns:
//   - bool: true if curr is a letter, false otherwise
func isAlpha(curr byte) bool {
	return (curr >= 'a' && curr <= 'z') || (curr >= 'A' && curr <= 'Z')
}

// isIdentChar checks if the given byte may appear inside an identifier after
// the first character. Identifiers may contain letters, digits, underscores,
// and the apostrophe, which is what allows multi-word keywords like "so'ra"
// to lex as a single run.
func isIdentChar(curr byte) bool {
	return isAlpha(curr) || isNumeric(curr) || curr == '_' || curr == '\''
}

// isOperatorChar checks if the given byte can begin an operator token.
func isOperatorChar(curr byte) bool {
	return strings.IndexByte("=!><+-*/", curr) >= 0
}

// readStringLiteral reads and tokenizes a string literal from the source.
// String literals are enclosed in double quotes (") and support escape
// sequences.
//
// Supported escape sequences:
//   - \n: newline
//   - \r: carriage return
//   - \t: tab
//   - \": double quote
//   - \\: backslash
//
// Any other escape is preserved as a literal backslash followed by the
// second character. An unterminated literal ends at EOF and is accepted
// with what was read so far.
//
// Parameters:
//   - lex: Pointer to the lexer instance
//
// Returns:
//   - Token: A STRING_LIT token with the processed string content
//
// Example:
//
//	Source: "salom\nduny o"
//	Returns: Token{Type: STRING_LIT, Literal: "salom\nduny o"}
func readStringLiteral(lex *Lexer) Token {
	lex.Advance() // Consume opening quote

	var builder strings.Builder

	// Read characters until closing quote or end of input
	for lex.Current != '"' && lex.Current != 0 {
		// Handle escape sequences
		if lex.Current == '\\' {
			lex.Advance() // Consume the backslash
			if lex.Current == 0 {
				// Backslash at EOF: keep it and stop
				builder.WriteByte('\\')
				break
			}
			if escapedChar, known := escapeChar(lex.Current); known {
				builder.WriteByte(escapedChar)
			} else {
				// Unknown escape: keep the backslash and the character as-is
				builder.WriteByte('\\')
				builder.WriteByte(lex.Current)
			}
			lex.Advance()
			continue
		}

		// Regular character - add to string
		builder.WriteByte(lex.Current)
		lex.Advance()
	}

	if lex.Current == '"' {
		lex.Advance() // Consume closing quote
	}
	return NewTokenWithMetadata(STRING_LIT, builder.String(), lex.Line, lex.Column)
}

// escapeChar converts an escape sequence character to its actual byte value.
// This is used when processing escape sequences in string literals.
//
// Parameters:
//   - c: The character following the backslash in an escape sequence
//
// Returns:
//   - byte: The actual byte value of the escape sequence
//   - bool: true if the escape sequence is recognized, false otherwise
//
// Example:
//
//	escapeChar('n') -> ('\n', true)
//	escapeChar('q') -> (0, false)
func escapeChar(c byte) (byte, bool) {
	switch c {
	case 'n':
		return '\n', true // Newline
	case 'r':
		return '\r', true // Carriage return
	case 't':
		return '\t', true // Tab
	case '"':
		return '"', true // Double quote
	case '\\':
		return '\\', true // Backslash
	default:
		return 0, false // Unrecognized escape sequence
	}
}

// readNumber reads and tokenizes a numeric literal from the source.
// UzLang numbers are decimal integer runs; the longest run of digits is
// taken. Conversion to a signed 64-bit value happens in the parser, which
// clamps to 0 on overflow.
//
// Parameters:
//   - lex: Pointer to the lexer instance
//
// Returns:
//   - Token: An INT_LIT token carrying the digit run
//
// Example:
//
//	Source: "1234"
//	Returns: Token{Type: INT_LIT, Literal: "1234"}
func readNumber(lex *Lexer) Token {
	start := lex.Position

	// Consume the longest run of digits
	for isNumeric(lex.Current) {
		lex.Advance()
	}

	return NewTokenWithMetadata(INT_LIT, lex.Src[start:lex.Position], lex.Line, lex.Column)
}

// readIdentifier reads and tokenizes an identifier or keyword from the source.
// Identifiers can be variable names, function names, or language keywords.
//
// Rules:
//   - Must start with a letter (a-z, A-Z) or underscore (_)
//   - Can contain letters, digits, underscores, or apostrophes
//   - Keywords are identified using the lookupIdent function after the
//     full run is read, so "so'ra" is the keyword but "so'ralar" is an
//     ordinary identifier
//
// Parameters:
//   - lex: Pointer to the lexer instance
//
// Returns:
//   - Token: An IDENTIFIER_ID token or a keyword token type
//
// Example:
//
//	Source: "sanoq"
//	Returns: Token{Type: IDENTIFIER_ID, Literal: "sanoq"}
//
//	Source: "agar"
//	Returns: Token{Type: AGAR_KEY, Literal: "agar"}
func readIdentifier(lex *Lexer) Token {
	position := lex.Position

	// First character is a letter or underscore (checked by the caller)
	lex.Advance()

	// Continue reading identifier characters
	for isIdentChar(lex.Current) {
		lex.Advance()
	}

	literal := lex.Src[position:lex.Position]

	// Check if this identifier is actually a keyword
	return NewTokenWithMetadata(lookupIdent(literal), literal, lex.Line, lex.Column)
}

// readOperator reads and tokenizes an operator from the source.
// An operator is a single character from "= ! > < + - * /", optionally
// followed by '='. Two-character texts that have a dedicated token type
// (==, !=, <=, >=) get it; any other formed text falls back to the
// generic OPERATOR_ID type, which no grammar production accepts.
//
// Parameters:
//   - lex: Pointer to the lexer instance
//
// Returns:
//   - Token: The operator token
func readOperator(lex *Lexer) Token {
	var builder strings.Builder
	builder.WriteByte(lex.Current)
	lex.Advance()

	if lex.Current == '=' {
		builder.WriteByte('=')
		lex.Advance()
	}

	text := builder.String()
	return NewTokenWithMetadata(operatorType(text), text, lex.Line, lex.Column)
}

// operatorType maps operator text to its token type.
func operatorType(text string) TokenType {
	switch text {
	case "=":
		return ASSIGN_OP
	case "==":
		return EQ_OP
	case "!":
		return NOT_OP
	case "!=":
		return NE_OP
	case "<":
		return LT_OP
	case "<=":
		return LE_OP
	case ">":
		return GT_OP
	case ">=":
		return GE_OP
	case "+":
		return PLUS_OP
	case "-":
		return MINUS_OP
	case "*":
		return MUL_OP
	case "/":
		return DIV_OP
	default:
		return OPERATOR_ID
	}
}
