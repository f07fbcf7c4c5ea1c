package parser

import (
	"github.com/optctl/optctl/ast"
	errors "github.com/optctl/optctl/diagnostics"
	"github.com/optctl/optctl/lang/lexer"
)

// parseExpression is the entry point for every expression context: an
// assignment's right-hand side, a loop's test, a call argument, a
// comprehension's element (a comprehension's iter and filters use parseOr,
// so ':=' is not accepted there). It recognizes the walrus form
// `name := value` ahead of the regular precedence ladder, since ':=' binds
// looser than anything else but is only legal with a bare name on its left.
func (p *Parser) parseExpression() ast.ExprNode {
	if p.check(lexer.TOKEN_IDENTIFIER) && p.peekNext().Type == lexer.TOKEN_COLON_EQUAL {
		loc := p.loc()
		nameTok := p.advance()
		p.advance() // :=
		value := p.parseExpression()
		target := ast.NewName(nameTok.Lexeme, ast.SourceLocation{File: p.file, Line: nameTok.Line, Column: nameTok.Column})
		return ast.NewNamedExpr(target, value, loc)
	}
	return p.parseOr()
}

func (p *Parser) parseOr() ast.ExprNode {
	left := p.parseAnd()
	for p.check(lexer.TOKEN_OR) {
		loc := p.loc()
		p.advance()
		right := p.parseAnd()
		left = ast.NewBinOp(left, "or", right, loc)
	}
	return left
}

func (p *Parser) parseAnd() ast.ExprNode {
	left := p.parseNot()
	for p.check(lexer.TOKEN_AND) {
		loc := p.loc()
		p.advance()
		right := p.parseNot()
		left = ast.NewBinOp(left, "and", right, loc)
	}
	return left
}

func (p *Parser) parseNot() ast.ExprNode {
	if p.check(lexer.TOKEN_NOT) {
		loc := p.loc()
		p.advance()
		operand := p.parseNot()
		return ast.NewUnaryOp("not", operand, loc)
	}
	return p.parseComparison()
}

var comparisonOps = map[lexer.TokenType]string{
	lexer.TOKEN_LESS:          "<",
	lexer.TOKEN_GREATER:       ">",
	lexer.TOKEN_LESS_EQUAL:    "<=",
	lexer.TOKEN_GREATER_EQUAL: ">=",
	lexer.TOKEN_EQUAL_EQUAL:   "==",
	lexer.TOKEN_BANG_EQUAL:    "!=",
}

// parseComparison builds a single Compare node out of a chain of comparisons
// (a < b <= c), matching Python's chained-comparison semantics.
func (p *Parser) parseComparison() ast.ExprNode {
	left := p.parseAdditive()
	loc := p.loc()
	var ops []string
	var comparators []ast.ExprNode
	for {
		op, ok := comparisonOps[p.peek().Type]
		if !ok {
			break
		}
		p.advance()
		right := p.parseAdditive()
		ops = append(ops, op)
		comparators = append(comparators, right)
	}
	if len(ops) == 0 {
		return left
	}
	return ast.NewCompare(left, ops, comparators, loc)
}

func (p *Parser) parseAdditive() ast.ExprNode {
	left := p.parseMultiplicative()
	for p.check(lexer.TOKEN_PLUS) || p.check(lexer.TOKEN_MINUS) {
		loc := p.loc()
		op := "+"
		if p.peek().Type == lexer.TOKEN_MINUS {
			op = "-"
		}
		p.advance()
		right := p.parseMultiplicative()
		left = ast.NewBinOp(left, op, right, loc)
	}
	return left
}

func (p *Parser) parseMultiplicative() ast.ExprNode {
	left := p.parseUnary()
	for p.check(lexer.TOKEN_STAR) || p.check(lexer.TOKEN_SLASH) || p.check(lexer.TOKEN_PERCENT) {
		loc := p.loc()
		var op string
		switch p.peek().Type {
		case lexer.TOKEN_STAR:
			op = "*"
		case lexer.TOKEN_SLASH:
			op = "/"
		default:
			op = "%"
		}
		p.advance()
		right := p.parseUnary()
		left = ast.NewBinOp(left, op, right, loc)
	}
	return left
}

func (p *Parser) parseUnary() ast.ExprNode {
	if p.check(lexer.TOKEN_MINUS) {
		loc := p.loc()
		p.advance()
		operand := p.parseUnary()
		return ast.NewUnaryOp("-", operand, loc)
	}
	return p.parsePrimary()
}

// parsePrimary parses literals, names, calls, subscripts, parenthesized
// expressions, the empty list `[]`, and list comprehensions.
func (p *Parser) parsePrimary() ast.ExprNode {
	loc := p.loc()
	switch {
	case p.match(lexer.TOKEN_INT_LITERAL):
		return ast.NewConstant(p.previous().Literal, loc)
	case p.match(lexer.TOKEN_FLOAT_LITERAL):
		return ast.NewConstant(p.previous().Literal, loc)
	case p.match(lexer.TOKEN_STRING_LITERAL):
		return ast.NewConstant(p.previous().Literal, loc)
	case p.match(lexer.TOKEN_TRUE):
		return ast.NewConstant(true, loc)
	case p.match(lexer.TOKEN_FALSE):
		return ast.NewConstant(false, loc)
	case p.match(lexer.TOKEN_NONE):
		return ast.NewConstant(nil, loc)
	case p.match(lexer.TOKEN_LPAREN):
		inner := p.parseExpression()
		p.consume(lexer.TOKEN_RPAREN, errors.ErrExpectedParen, "expected ')' to close a parenthesized expression")
		return inner
	case p.match(lexer.TOKEN_LBRACKET):
		return p.parseListComp(loc)
	case p.check(lexer.TOKEN_IDENTIFIER):
		return p.parseIdentifierExpr()
	default:
		p.addError(errors.ErrInvalidExpression, "expected an expression")
		return nil
	}
}

// parseIdentifierExpr disambiguates a bare name, a bare call, a subscript,
// and a dotted call, the four name-headed expression shapes the data model
// supports. Plain attribute access without a following call is outside the
// supported subset.
func (p *Parser) parseIdentifierExpr() ast.ExprNode {
	loc := p.loc()
	nameTok := p.advance()

	switch {
	case p.check(lexer.TOKEN_LPAREN):
		args := p.parseArguments()
		return ast.NewCall(nameTok.Lexeme, args, loc)

	case p.check(lexer.TOKEN_DOT):
		p.advance()
		methodTok, ok := p.consume(lexer.TOKEN_IDENTIFIER, errors.ErrExpectedIdentifier, "expected a method name after '.'")
		if !ok {
			return ast.NewName(nameTok.Lexeme, loc)
		}
		if !p.check(lexer.TOKEN_LPAREN) {
			p.addError(errors.ErrUnsupportedConstruct, "attribute access without a call is outside the supported subset")
			return ast.NewName(nameTok.Lexeme, loc)
		}
		args := p.parseArguments()
		return ast.NewDottedCall(nameTok.Lexeme, methodTok.Lexeme, args, loc)

	case p.check(lexer.TOKEN_LBRACKET):
		p.advance()
		name := ast.NewName(nameTok.Lexeme, loc)
		slice := p.parseExpression()
		p.consume(lexer.TOKEN_RBRACKET, errors.ErrExpectedBracket, "expected ']' to close a subscript")
		return ast.NewSubscript(name, slice, loc)

	default:
		return ast.NewName(nameTok.Lexeme, loc)
	}
}

// parseArguments parses a parenthesized, comma-separated argument list. The
// opening paren is known to be present; callers check for it first.
func (p *Parser) parseArguments() []ast.ExprNode {
	p.advance() // (
	var args []ast.ExprNode
	if !p.check(lexer.TOKEN_RPAREN) {
		for {
			args = append(args, p.parseExpression())
			if !p.match(lexer.TOKEN_COMMA) {
				break
			}
		}
	}
	p.consume(lexer.TOKEN_RPAREN, errors.ErrExpectedParen, "expected ')' to close a call")
	return args
}

// parseListComp parses the body of `[elt for target in iter if cond ...]`
// after the opening '[' has already been consumed. An immediate ']' is the
// empty list, returned as a Constant holding an empty slice.
func (p *Parser) parseListComp(loc ast.SourceLocation) ast.ExprNode {
	if p.match(lexer.TOKEN_RBRACKET) {
		return ast.NewConstant([]interface{}{}, loc)
	}
	elt := p.parseExpression()
	if _, ok := p.consume(lexer.TOKEN_FOR, errors.ErrInvalidComprehension, "expected 'for' in a list comprehension"); !ok {
		p.consume(lexer.TOKEN_RBRACKET, errors.ErrExpectedBracket, "expected ']' to close a list")
		return ast.NewListComp(elt, nil, loc)
	}

	var generators []*ast.Comprehension
	for {
		nameTok, ok := p.consume(lexer.TOKEN_IDENTIFIER, errors.ErrExpectedIdentifier, "expected a comprehension target")
		if !ok {
			break
		}
		target := ast.NewName(nameTok.Lexeme, ast.SourceLocation{File: p.file, Line: nameTok.Line, Column: nameTok.Column})
		if _, ok := p.consume(lexer.TOKEN_IN, errors.ErrUnexpectedToken, "expected 'in' in a list comprehension"); !ok {
			break
		}
		iter := p.parseOr()
		var ifs []ast.ExprNode
		for p.check(lexer.TOKEN_IF) {
			p.advance()
			ifs = append(ifs, p.parseOr())
		}
		generators = append(generators, &ast.Comprehension{Target: target, Iter: iter, Ifs: ifs})
		if !p.match(lexer.TOKEN_FOR) {
			break
		}
	}

	p.consume(lexer.TOKEN_RBRACKET, errors.ErrExpectedBracket, "expected ']' to close a list comprehension")
	return ast.NewListComp(elt, generators, loc)
}
