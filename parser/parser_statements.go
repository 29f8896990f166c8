/*
File    : uz-go/parser/parser_statements.go
Author  : Algorix Devs
Contact : dev(@algorix.io)
*/
package parser

import "github.com/algorix-io/uz-go/lexer"

// parseStatement parses one statement, dispatching on the introducing
// keyword. Statements that are not introduced by a keyword are parsed as
// expressions and then disambiguated: an '=' after the expression makes
// the statement an assignment, otherwise it is a bare expression statement.
//
// Returns:
//
//	The parsed statement, or nil when no statement could be parsed
//	(the caller recovers by consuming one token)
func (par *Parser) parseStatement() StatementNode {
	switch par.peek().Type {
	case lexer.YOZ_KEY:
		return par.parsePrintStatement()
	case lexer.AGAR_KEY:
		return par.parseIfStatement()
	case lexer.TOKI_KEY, lexer.TAKRORLA_KEY:
		return par.parseLoopStatement()
	case lexer.UCHUN_KEY:
		return par.parseForStatement()
	case lexer.FUNKSIYA_KEY:
		return par.parseFunctionStatement()
	case lexer.QAYTAR_KEY:
		return par.parseReturnStatement()
	default:
		return par.parseExpressionOrAssignment()
	}
}

// parsePrintStatement parses: yoz <expr>
func (par *Parser) parsePrintStatement() StatementNode {
	token := par.advance() // consume 'yoz'
	expr := par.parseExpression()
	if expr == nil {
		return nil
	}
	return &PrintStatementNode{Token: token, Expr: expr}
}

// parseIfStatement parses: agar <expr> <block>
func (par *Parser) parseIfStatement() StatementNode {
	token := par.advance() // consume 'agar'
	condition := par.parseExpression()
	if condition == nil {
		return nil
	}
	body, ok := par.parseBlock()
	if !ok {
		return nil
	}
	return &IfStatementNode{Token: token, Condition: condition, Body: body}
}

// parseLoopStatement parses: toki <expr> <block>  (or takrorla, which is
// the same loop under an alternate keyword)
func (par *Parser) parseLoopStatement() StatementNode {
	token := par.advance() // consume 'toki' or 'takrorla'
	condition := par.parseExpression()
	if condition == nil {
		return nil
	}
	body, ok := par.parseBlock()
	if !ok {
		return nil
	}
	return &LoopStatementNode{Token: token, Condition: condition, Body: body}
}

// parseForStatement parses: uchun <identifier> ichida <expr> <block>
func (par *Parser) parseForStatement() StatementNode {
	token := par.advance() // consume 'uchun'

	if par.peek().Type != lexer.IDENTIFIER_ID {
		par.addError("Xatolik: 'uchun' dan keyin identifikator kutilgan edi, '%s' topildi", par.peek().Literal)
		return nil
	}
	varName := par.advance().Literal

	if !par.expect(lexer.ICHIDA_KEY, "ichida") {
		return nil
	}

	collection := par.parseExpression()
	if collection == nil {
		return nil
	}
	body, ok := par.parseBlock()
	if !ok {
		return nil
	}
	return &ForStatementNode{Token: token, VarName: varName, Collection: collection, Body: body}
}

// parseFunctionStatement parses:
//
//	funksiya <name> ( [<param> {, <param>}] ) <block>
func (par *Parser) parseFunctionStatement() StatementNode {
	token := par.advance() // consume 'funksiya'

	if par.peek().Type != lexer.IDENTIFIER_ID {
		par.addError("Xatolik: funksiya nomi kutilgan edi, '%s' topildi", par.peek().Literal)
		return nil
	}
	name := par.advance().Literal

	if !par.expect(lexer.LEFT_PAREN, "(") {
		return nil
	}

	params := make([]string, 0)
	if par.peek().Type != lexer.RIGHT_PAREN {
		for {
			if par.peek().Type != lexer.IDENTIFIER_ID {
				par.addError("Xatolik: parametr nomi kutilgan edi, '%s' topildi", par.peek().Literal)
				return nil
			}
			params = append(params, par.advance().Literal)
			if par.peek().Type != lexer.COMMA_DELIM {
				break
			}
			par.advance() // consume ','
		}
	}

	if !par.expect(lexer.RIGHT_PAREN, ")") {
		return nil
	}

	body, ok := par.parseBlock()
	if !ok {
		return nil
	}
	return &FunctionStatementNode{Token: token, Name: name, Params: params, Body: body}
}

// parseReturnStatement parses: qaytar <expr>
func (par *Parser) parseReturnStatement() StatementNode {
	token := par.advance() // consume 'qaytar'
	expr := par.parseExpression()
	if expr == nil {
		return nil
	}
	return &ReturnStatementNode{Token: token, Expr: expr}
}

// parseExpressionOrAssignment parses an expression and then decides the
// statement form:
//   - expression '=' expression with an identifier on the left is an
//     assignment
//   - expression '=' expression with an index over an identifier on the
//     left is an indexed assignment
//   - any other left side of '=' is an invalid assignment target
//   - a bare expression becomes an expression statement
func (par *Parser) parseExpressionOrAssignment() StatementNode {
	expr := par.parseExpression()
	if expr == nil {
		return nil
	}

	if par.peek().Type != lexer.ASSIGN_OP {
		return &ExpressionStatementNode{Expr: expr}
	}
	par.advance() // consume '='

	value := par.parseExpression()
	if value == nil {
		return nil
	}

	switch target := expr.(type) {
	case *IdentifierExpressionNode:
		return &AssignStatementNode{Token: target.Token, Name: target.Name, Expr: value}
	case *IndexExpressionNode:
		if ident, ok := target.Target.(*IdentifierExpressionNode); ok {
			return &AssignIndexStatementNode{
				Token: ident.Token,
				Name:  ident.Name,
				Index: target.Index,
				Value: value,
			}
		}
		par.addError("Xatolik: noto'g'ri tayinlash nishoni: '%s'", expr.Literal())
		return nil
	default:
		par.addError("Xatolik: noto'g'ri tayinlash nishoni: '%s'", expr.Literal())
		return nil
	}
}
