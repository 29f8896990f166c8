/*
File    : uz-go/parser/parser_expressions.go
Author  : Algorix Devs
Contact : dev(@algorix.io)
*/
package parser

import "github.com/algorix-io/uz-go/lexer"

// parseExpression parses a full expression, starting from the lowest
// precedence level. All binary levels are left-associative and are
// implemented by one precedence-climbing helper per level.
func (par *Parser) parseExpression() ExpressionNode {
	return par.parseOrExpression()
}

// parseOrExpression handles the lowest level: ||
func (par *Parser) parseOrExpression() ExpressionNode {
	left := par.parseAndExpression()
	if left == nil {
		return nil
	}
	for par.peek().Type == lexer.OR_OP {
		token := par.advance()
		right := par.parseAndExpression()
		if right == nil {
			return nil
		}
		left = &BinaryExpressionNode{Token: token, Operator: token.Literal, Left: left, Right: right}
	}
	return left
}

// parseAndExpression handles: &&
func (par *Parser) parseAndExpression() ExpressionNode {
	left := par.parseComparisonExpression()
	if left == nil {
		return nil
	}
	for par.peek().Type == lexer.AND_OP {
		token := par.advance()
		right := par.parseComparisonExpression()
		if right == nil {
			return nil
		}
		left = &BinaryExpressionNode{Token: token, Operator: token.Literal, Left: left, Right: right}
	}
	return left
}

// parseComparisonExpression handles: == != < > <= >=
func (par *Parser) parseComparisonExpression() ExpressionNode {
	left := par.parseAdditiveExpression()
	if left == nil {
		return nil
	}
	for isComparisonOp(par.peek().Type) {
		token := par.advance()
		right := par.parseAdditiveExpression()
		if right == nil {
			return nil
		}
		left = &BinaryExpressionNode{Token: token, Operator: token.Literal, Left: left, Right: right}
	}
	return left
}

// parseAdditiveExpression handles: + -
func (par *Parser) parseAdditiveExpression() ExpressionNode {
	left := par.parseMultiplicativeExpression()
	if left == nil {
		return nil
	}
	for par.peek().Type == lexer.PLUS_OP || par.peek().Type == lexer.MINUS_OP {
		token := par.advance()
		right := par.parseMultiplicativeExpression()
		if right == nil {
			return nil
		}
		left = &BinaryExpressionNode{Token: token, Operator: token.Literal, Left: left, Right: right}
	}
	return left
}

// parseMultiplicativeExpression handles: * /
func (par *Parser) parseMultiplicativeExpression() ExpressionNode {
	left := par.parseUnaryExpression()
	if left == nil {
		return nil
	}
	for par.peek().Type == lexer.MUL_OP || par.peek().Type == lexer.DIV_OP {
		token := par.advance()
		right := par.parseUnaryExpression()
		if right == nil {
			return nil
		}
		left = &BinaryExpressionNode{Token: token, Operator: token.Literal, Left: left, Right: right}
	}
	return left
}

// parseUnaryExpression handles the prefix ! operator, which is
// right-associative and can stack (!!x).
func (par *Parser) parseUnaryExpression() ExpressionNode {
	if par.peek().Type == lexer.NOT_OP {
		token := par.advance()
		operand := par.parseUnaryExpression()
		if operand == nil {
			return nil
		}
		return &UnaryExpressionNode{Token: token, Operator: token.Literal, Operand: operand}
	}
	return par.parsePostfixExpression()
}

// parsePostfixExpression handles the left-to-right chain of postfix
// operations on a primary expression: indexing with [expr] and calling
// with (args). A call is only valid when the expression built so far is a
// plain identifier; calling anything else is an error.
func (par *Parser) parsePostfixExpression() ExpressionNode {
	left := par.parsePrimaryExpression()
	if left == nil {
		return nil
	}

	for {
		switch par.peek().Type {
		case lexer.LEFT_BRACKET:
			token := par.advance() // consume '['
			index := par.parseExpression()
			if index == nil {
				return nil
			}
			if !par.expect(lexer.RIGHT_BRACKET, "]") {
				return nil
			}
			left = &IndexExpressionNode{Token: token, Target: left, Index: index}
		case lexer.LEFT_PAREN:
			ident, ok := left.(*IdentifierExpressionNode)
			if !ok {
				par.addError("Xatolik: faqat funksiya nomini chaqirish mumkin: '%s'", left.Literal())
				return nil
			}
			par.advance() // consume '('
			args, ok := par.parseCallArguments()
			if !ok {
				return nil
			}
			left = &CallExpressionNode{Token: ident.Token, Name: ident.Name, Arguments: args}
		default:
			return left
		}
	}
}

// parseCallArguments parses the argument list of a call after the opening
// parenthesis has been consumed: [<expr> {, <expr>}] ')'
func (par *Parser) parseCallArguments() ([]ExpressionNode, bool) {
	args := make([]ExpressionNode, 0)

	if par.peek().Type == lexer.RIGHT_PAREN {
		par.advance()
		return args, true
	}

	for {
		arg := par.parseExpression()
		if arg == nil {
			return nil, false
		}
		args = append(args, arg)
		if par.peek().Type != lexer.COMMA_DELIM {
			break
		}
		par.advance() // consume ','
	}

	if !par.expect(lexer.RIGHT_PAREN, ")") {
		return nil, false
	}
	return args, true
}

// parsePrimaryExpression handles the atoms of the grammar: number and
// string literals, identifiers, the so'ra input expression, array
// literals, and parenthesized grouping.
//
// A token that cannot start a primary expression makes the production
// fail; the token is left for the caller's recovery to consume and report.
func (par *Parser) parsePrimaryExpression() ExpressionNode {
	switch par.peek().Type {
	case lexer.INT_LIT:
		token := par.advance()
		return &NumberLiteralExpressionNode{Token: token, Value: parseNumberValue(token.Literal)}
	case lexer.STRING_LIT:
		token := par.advance()
		return &StringLiteralExpressionNode{Token: token, Value: token.Literal}
	case lexer.IDENTIFIER_ID:
		token := par.advance()
		return &IdentifierExpressionNode{Token: token, Name: token.Literal}
	case lexer.SORA_KEY:
		token := par.advance()
		return &InputExpressionNode{Token: token}
	case lexer.LEFT_BRACKET:
		return par.parseArrayExpression()
	case lexer.LEFT_PAREN:
		par.advance() // consume '('
		expr := par.parseExpression()
		if expr == nil {
			return nil
		}
		if !par.expect(lexer.RIGHT_PAREN, ")") {
			return nil
		}
		return expr
	default:
		return nil
	}
}

// parseArrayExpression parses an array literal: '[' [<expr> {, <expr>}] ']'.
// A trailing comma is not supported.
func (par *Parser) parseArrayExpression() ExpressionNode {
	token := par.advance() // consume '['
	elements := make([]ExpressionNode, 0)

	if par.peek().Type == lexer.RIGHT_BRACKET {
		par.advance()
		return &ArrayExpressionNode{Token: token, Elements: elements}
	}

	for {
		elem := par.parseExpression()
		if elem == nil {
			return nil
		}
		elements = append(elements, elem)
		if par.peek().Type != lexer.COMMA_DELIM {
			break
		}
		par.advance() // consume ','
	}

	if !par.expect(lexer.RIGHT_BRACKET, "]") {
		return nil
	}
	return &ArrayExpressionNode{Token: token, Elements: elements}
}

// isComparisonOp reports whether the token type is one of the comparison
// operators, which all share one precedence level.
func isComparisonOp(tokenType lexer.TokenType) bool {
	switch tokenType {
	case lexer.EQ_OP, lexer.NE_OP, lexer.LT_OP, lexer.GT_OP, lexer.LE_OP, lexer.GE_OP:
		return true
	default:
		return false
	}
}
