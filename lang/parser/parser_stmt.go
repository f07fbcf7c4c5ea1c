package parser

import (
	"github.com/optctl/optctl/ast"
	errors "github.com/optctl/optctl/diagnostics"
	"github.com/optctl/optctl/lang/lexer"
)

// parseStatement dispatches on the current token to one of the supported
// statement forms, synchronizing to the next statement boundary on error.
func (p *Parser) parseStatement() ast.StmtNode {
	var stmt ast.StmtNode
	switch {
	case p.check(lexer.TOKEN_DEF):
		stmt = p.parseFunctionDef()
	case p.check(lexer.TOKEN_FOR):
		stmt = p.parseFor()
	case p.check(lexer.TOKEN_WHILE):
		stmt = p.parseWhile()
	case p.check(lexer.TOKEN_IF):
		stmt = p.parseIf()
	case p.check(lexer.TOKEN_TRY):
		stmt = p.parseTry()
	case p.check(lexer.TOKEN_RETURN):
		stmt = p.parseReturn()
	case p.check(lexer.TOKEN_PASS):
		stmt = p.parsePass()
	default:
		stmt = p.parseSimpleStatement()
	}
	if p.panic {
		p.synchronize()
	}
	return stmt
}

// parseBlock parses a ':' NEWLINE INDENT stmt+ DEDENT suite.
func (p *Parser) parseBlock() ast.Block {
	if _, ok := p.consume(lexer.TOKEN_COLON, errors.ErrExpectedColon, "expected ':' to start a block"); !ok {
		return nil
	}
	if _, ok := p.consume(lexer.TOKEN_NEWLINE, errors.ErrExpectedNewline, "expected newline after ':'"); !ok {
		return nil
	}
	p.skipNewlines()
	if _, ok := p.consume(lexer.TOKEN_INDENT, errors.ErrExpectedIndent, "expected an indented block"); !ok {
		return nil
	}
	var body ast.Block
	p.skipNewlines()
	for !p.check(lexer.TOKEN_DEDENT) && !p.isAtEnd() {
		stmt := p.parseStatement()
		if stmt != nil {
			body = append(body, stmt)
		}
		p.skipNewlines()
	}
	p.consume(lexer.TOKEN_DEDENT, errors.ErrExpectedDedent, "expected a dedent to close the block")
	if body == nil {
		p.addError(errors.ErrInvalidStatement, "block has no statements; use 'pass' for an empty body")
	}
	return body
}

func (p *Parser) parseFunctionDef() ast.StmtNode {
	loc := p.loc()
	p.advance() // def
	nameTok, ok := p.consume(lexer.TOKEN_IDENTIFIER, errors.ErrExpectedIdentifier, "expected a function name after 'def'")
	if !ok {
		return nil
	}
	if _, ok := p.consume(lexer.TOKEN_LPAREN, errors.ErrExpectedParen, "expected '(' after function name"); !ok {
		return nil
	}
	var args []string
	if !p.check(lexer.TOKEN_RPAREN) {
		for {
			arg, ok := p.consume(lexer.TOKEN_IDENTIFIER, errors.ErrExpectedIdentifier, "expected a parameter name")
			if !ok {
				break
			}
			args = append(args, arg.Lexeme)
			if !p.match(lexer.TOKEN_COMMA) {
				break
			}
		}
	}
	p.consume(lexer.TOKEN_RPAREN, errors.ErrExpectedParen, "expected ')' after parameters")
	body := p.parseBlock()
	if body == nil {
		body = ast.Block{ast.NewPass(loc)}
	}
	return ast.NewFunctionDef(nameTok.Lexeme, args, body, loc)
}

func (p *Parser) parseFor() ast.StmtNode {
	loc := p.loc()
	p.advance() // for
	nameTok, ok := p.consume(lexer.TOKEN_IDENTIFIER, errors.ErrExpectedIdentifier, "expected a loop variable name after 'for'")
	if !ok {
		return nil
	}
	target := ast.NewName(nameTok.Lexeme, ast.SourceLocation{File: p.file, Line: nameTok.Line, Column: nameTok.Column})
	if _, ok := p.consume(lexer.TOKEN_IN, errors.ErrUnexpectedToken, "expected 'in' after the loop variable"); !ok {
		return nil
	}
	iter := p.parseExpression()
	body := p.parseBlock()
	var orelse ast.Block
	if p.match(lexer.TOKEN_ELSE) {
		orelse = p.parseBlock()
	}
	return ast.NewFor(target, iter, body, orelse, loc)
}

func (p *Parser) parseWhile() ast.StmtNode {
	loc := p.loc()
	p.advance() // while
	test := p.parseExpression()
	body := p.parseBlock()
	var orelse ast.Block
	if p.match(lexer.TOKEN_ELSE) {
		orelse = p.parseBlock()
	}
	return ast.NewWhile(test, body, orelse, loc)
}

func (p *Parser) parseIf() ast.StmtNode {
	loc := p.loc()
	p.advance() // if
	test := p.parseExpression()
	body := p.parseBlock()
	var orelse ast.Block
	if p.match(lexer.TOKEN_ELSE) {
		if p.check(lexer.TOKEN_IF) {
			elseLoc := p.loc()
			nested := p.parseIf()
			if nested != nil {
				orelse = ast.Block{nested}
			} else {
				orelse = ast.Block{ast.NewPass(elseLoc)}
			}
		} else {
			orelse = p.parseBlock()
		}
	}
	return ast.NewIf(test, body, orelse, loc)
}

func (p *Parser) parseTry() ast.StmtNode {
	loc := p.loc()
	p.advance() // try
	body := p.parseBlock()
	var handlers []*ast.ExceptHandler
	for p.check(lexer.TOKEN_EXCEPT) {
		p.advance()
		var exceptionType string
		if p.check(lexer.TOKEN_IDENTIFIER) {
			exceptionType = p.advance().Lexeme
		}
		handlerBody := p.parseBlock()
		handlers = append(handlers, &ast.ExceptHandler{ExceptionType: exceptionType, Body: handlerBody})
	}
	var orelse, finalbody ast.Block
	if p.match(lexer.TOKEN_ELSE) {
		orelse = p.parseBlock()
	}
	if p.match(lexer.TOKEN_FINALLY) {
		finalbody = p.parseBlock()
	}
	if len(handlers) == 0 && finalbody == nil {
		p.addError(errors.ErrInvalidStatement, "'try' must have at least one 'except' or a 'finally'")
	}
	return ast.NewTry(body, handlers, orelse, finalbody, loc)
}

func (p *Parser) parseReturn() ast.StmtNode {
	loc := p.loc()
	p.advance() // return
	var value ast.ExprNode
	if !p.check(lexer.TOKEN_NEWLINE) && !p.isAtEnd() {
		value = p.parseExpression()
	}
	p.consume(lexer.TOKEN_NEWLINE, errors.ErrExpectedNewline, "expected a newline after a 'return' statement")
	return ast.NewReturn(value, loc)
}

func (p *Parser) parsePass() ast.StmtNode {
	loc := p.loc()
	p.advance() // pass
	p.consume(lexer.TOKEN_NEWLINE, errors.ErrExpectedNewline, "expected a newline after 'pass'")
	return ast.NewPass(loc)
}

// parseSimpleStatement parses an assignment, augmented assignment, or a bare
// expression statement, all terminated by a NEWLINE.
func (p *Parser) parseSimpleStatement() ast.StmtNode {
	loc := p.loc()
	first := p.parseExpression()
	if first == nil {
		p.consume(lexer.TOKEN_NEWLINE, errors.ErrExpectedNewline, "expected a newline")
		return nil
	}

	if augOp, ok := p.matchAugAssignOp(); ok {
		target, ok := p.asTarget(first)
		if !ok {
			p.addError(errors.ErrInvalidAssignTarget, "left-hand side of an augmented assignment must be a name or subscript")
			p.consume(lexer.TOKEN_NEWLINE, errors.ErrExpectedNewline, "expected a newline")
			return nil
		}
		value := p.parseExpression()
		p.consume(lexer.TOKEN_NEWLINE, errors.ErrExpectedNewline, "expected a newline after an assignment")
		return ast.NewAugAssign(target, augOp, value, loc)
	}

	if p.check(lexer.TOKEN_EQUAL) {
		targets := []ast.TargetExpr{}
		target, ok := p.asTarget(first)
		if !ok {
			p.addError(errors.ErrInvalidAssignTarget, "left-hand side of '=' must be a name or subscript")
			p.consume(lexer.TOKEN_NEWLINE, errors.ErrExpectedNewline, "expected a newline")
			return nil
		}
		targets = append(targets, target)
		var value ast.ExprNode
		for p.match(lexer.TOKEN_EQUAL) {
			next := p.parseExpression()
			if p.check(lexer.TOKEN_EQUAL) {
				nextTarget, ok := p.asTarget(next)
				if !ok {
					p.addError(errors.ErrInvalidAssignTarget, "left-hand side of '=' must be a name or subscript")
					break
				}
				targets = append(targets, nextTarget)
				continue
			}
			value = next
		}
		p.consume(lexer.TOKEN_NEWLINE, errors.ErrExpectedNewline, "expected a newline after an assignment")
		return ast.NewAssign(targets, value, loc)
	}

	p.consume(lexer.TOKEN_NEWLINE, errors.ErrExpectedNewline, "expected a newline after an expression statement")
	return ast.NewExprStmt(first, loc)
}

func (p *Parser) matchAugAssignOp() (string, bool) {
	switch {
	case p.match(lexer.TOKEN_PLUS_EQUAL):
		return "+", true
	case p.match(lexer.TOKEN_MINUS_EQUAL):
		return "-", true
	case p.match(lexer.TOKEN_STAR_EQUAL):
		return "*", true
	case p.match(lexer.TOKEN_SLASH_EQUAL):
		return "/", true
	}
	return "", false
}

// asTarget narrows a parsed expression to the two supported target-expr
// shapes, the assignable subset of §3's data model.
func (p *Parser) asTarget(e ast.ExprNode) (ast.TargetExpr, bool) {
	switch t := e.(type) {
	case *ast.Name:
		return t, true
	case *ast.Subscript:
		return t, true
	default:
		return nil, false
	}
}
