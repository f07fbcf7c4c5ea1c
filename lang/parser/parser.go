// Package parser turns a lexer token stream into an *ast.Module. It is a
// recursive-descent parser with one function per precedence level for
// expressions, following the
// token-stream helper conventions of a hand-written single-pass parser:
// peek/previous/advance/check/match/consume, plus panic-mode recovery via
// synchronize.
package parser

import (
	"github.com/optctl/optctl/ast"
	errors "github.com/optctl/optctl/diagnostics"
	"github.com/optctl/optctl/lang/lexer"
)

// Parser consumes a fixed token slice produced by lexer.Lexer and builds an
// *ast.Module. It never mutates the token slice; current is the only cursor.
type Parser struct {
	tokens  []lexer.Token
	current int
	file    string
	errs    []errors.CompilerError
	panic   bool
}

// New creates a Parser over tokens, attributing diagnostics to file.
func New(tokens []lexer.Token, file string) *Parser {
	return &Parser{tokens: tokens, file: file}
}

// Parse consumes the whole token stream and returns the resulting module
// along with any errors collected along the way. Parsing continues past an
// error by synchronizing to the next statement boundary, so a single source
// file can report more than one problem per run.
func (p *Parser) Parse() (*ast.Module, []errors.CompilerError) {
	loc := p.locAt(0)
	var body ast.Block
	p.skipNewlines()
	for !p.isAtEnd() {
		stmt := p.parseStatement()
		if stmt != nil {
			body = append(body, stmt)
		}
		p.skipNewlines()
	}
	return ast.NewModule(body, loc), p.errs
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == lexer.TOKEN_EOF
}

func (p *Parser) peek() lexer.Token {
	return p.tokens[p.current]
}

func (p *Parser) peekNext() lexer.Token {
	if p.current+1 >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.current+1]
}

func (p *Parser) previous() lexer.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(t lexer.TokenType) bool {
	if p.isAtEnd() {
		return t == lexer.TOKEN_EOF
	}
	return p.peek().Type == t
}

func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past an expected token type or records a diagnostic and
// returns the zero Token with ok=false.
func (p *Parser) consume(t lexer.TokenType, code, message string) (lexer.Token, bool) {
	if p.check(t) {
		return p.advance(), true
	}
	p.addError(code, message)
	return lexer.Token{}, false
}

func (p *Parser) skipNewlines() {
	for p.check(lexer.TOKEN_NEWLINE) {
		p.advance()
	}
}

func (p *Parser) loc() ast.SourceLocation {
	t := p.peek()
	return ast.SourceLocation{File: p.file, Line: t.Line, Column: t.Column}
}

func (p *Parser) locAt(offset int) ast.SourceLocation {
	idx := p.current + offset
	if idx < 0 {
		idx = 0
	}
	if idx >= len(p.tokens) {
		idx = len(p.tokens) - 1
	}
	t := p.tokens[idx]
	return ast.SourceLocation{File: p.file, Line: t.Line, Column: t.Column}
}

func (p *Parser) addError(code, message string) {
	loc := p.loc()
	p.errs = append(p.errs, errors.NewCompilerError("parser", code, message, loc, errors.Error))
	p.panic = true
}

// synchronize discards tokens until it finds a statement boundary: a
// NEWLINE/DEDENT or a keyword that can start a new statement. Mirrors the
// teacher's panic-mode recovery so one malformed statement doesn't cascade
// into unrelated downstream errors.
func (p *Parser) synchronize() {
	p.panic = false
	p.advance() // always make progress, even if already sitting on a boundary
	for !p.isAtEnd() {
		switch p.previous().Type {
		case lexer.TOKEN_NEWLINE, lexer.TOKEN_DEDENT:
			return
		}
		switch p.peek().Type {
		case lexer.TOKEN_DEF, lexer.TOKEN_FOR, lexer.TOKEN_WHILE, lexer.TOKEN_IF,
			lexer.TOKEN_RETURN, lexer.TOKEN_PASS, lexer.TOKEN_TRY:
			return
		}
		p.advance()
	}
}
