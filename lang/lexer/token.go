package lexer

import "fmt"

// TokenType represents the kind of a single lexical token.
type TokenType int

const (
	TOKEN_EOF TokenType = iota
	TOKEN_ERROR
	TOKEN_NEWLINE
	TOKEN_INDENT
	TOKEN_DEDENT

	// Keywords
	TOKEN_DEF
	TOKEN_FOR
	TOKEN_IN
	TOKEN_WHILE
	TOKEN_IF
	TOKEN_ELSE
	TOKEN_RETURN
	TOKEN_PASS
	TOKEN_TRY
	TOKEN_EXCEPT
	TOKEN_FINALLY
	TOKEN_NOT
	TOKEN_AND
	TOKEN_OR
	TOKEN_TRUE
	TOKEN_FALSE
	TOKEN_NONE

	// Literals
	TOKEN_IDENTIFIER
	TOKEN_INT_LITERAL
	TOKEN_FLOAT_LITERAL
	TOKEN_STRING_LITERAL

	// Operators
	TOKEN_PLUS          // +
	TOKEN_MINUS         // -
	TOKEN_STAR          // *
	TOKEN_SLASH         // /
	TOKEN_PERCENT       // %
	TOKEN_EQUAL         // =
	TOKEN_COLON_EQUAL   // :=
	TOKEN_LESS          // <
	TOKEN_GREATER       // >
	TOKEN_LESS_EQUAL    // <=
	TOKEN_GREATER_EQUAL // >=
	TOKEN_EQUAL_EQUAL   // ==
	TOKEN_BANG_EQUAL    // !=
	TOKEN_PLUS_EQUAL    // +=
	TOKEN_MINUS_EQUAL   // -=
	TOKEN_STAR_EQUAL    // *=
	TOKEN_SLASH_EQUAL   // /=

	// Delimiters
	TOKEN_LPAREN   // (
	TOKEN_RPAREN   // )
	TOKEN_LBRACKET // [
	TOKEN_RBRACKET // ]
	TOKEN_COMMA    // ,
	TOKEN_COLON    // :
	TOKEN_DOT      // .
)

var tokenNames = map[TokenType]string{
	TOKEN_EOF:            "EOF",
	TOKEN_ERROR:          "ERROR",
	TOKEN_NEWLINE:        "NEWLINE",
	TOKEN_INDENT:         "INDENT",
	TOKEN_DEDENT:         "DEDENT",
	TOKEN_DEF:            "DEF",
	TOKEN_FOR:            "FOR",
	TOKEN_IN:             "IN",
	TOKEN_WHILE:          "WHILE",
	TOKEN_IF:             "IF",
	TOKEN_ELSE:           "ELSE",
	TOKEN_RETURN:         "RETURN",
	TOKEN_PASS:           "PASS",
	TOKEN_TRY:            "TRY",
	TOKEN_EXCEPT:         "EXCEPT",
	TOKEN_FINALLY:        "FINALLY",
	TOKEN_NOT:            "NOT",
	TOKEN_AND:            "AND",
	TOKEN_OR:             "OR",
	TOKEN_TRUE:           "TRUE",
	TOKEN_FALSE:          "FALSE",
	TOKEN_NONE:           "NONE",
	TOKEN_IDENTIFIER:     "IDENTIFIER",
	TOKEN_INT_LITERAL:    "INT_LITERAL",
	TOKEN_FLOAT_LITERAL:  "FLOAT_LITERAL",
	TOKEN_STRING_LITERAL: "STRING_LITERAL",
	TOKEN_PLUS:           "PLUS",
	TOKEN_MINUS:          "MINUS",
	TOKEN_STAR:           "STAR",
	TOKEN_SLASH:          "SLASH",
	TOKEN_PERCENT:        "PERCENT",
	TOKEN_EQUAL:          "EQUAL",
	TOKEN_COLON_EQUAL:    "COLON_EQUAL",
	TOKEN_LESS:           "LESS",
	TOKEN_GREATER:        "GREATER",
	TOKEN_LESS_EQUAL:     "LESS_EQUAL",
	TOKEN_GREATER_EQUAL:  "GREATER_EQUAL",
	TOKEN_EQUAL_EQUAL:    "EQUAL_EQUAL",
	TOKEN_BANG_EQUAL:     "BANG_EQUAL",
	TOKEN_PLUS_EQUAL:     "PLUS_EQUAL",
	TOKEN_MINUS_EQUAL:    "MINUS_EQUAL",
	TOKEN_STAR_EQUAL:     "STAR_EQUAL",
	TOKEN_SLASH_EQUAL:    "SLASH_EQUAL",
	TOKEN_LPAREN:         "LPAREN",
	TOKEN_RPAREN:         "RPAREN",
	TOKEN_LBRACKET:       "LBRACKET",
	TOKEN_RBRACKET:       "RBRACKET",
	TOKEN_COMMA:          "COMMA",
	TOKEN_COLON:          "COLON",
	TOKEN_DOT:            "DOT",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// Token is a single lexical unit produced by the lexer.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal interface{}
	Line    int
	Column  int
	File    string
	Start   int
	End     int
}

func (t Token) String() string {
	if t.Literal != nil {
		return fmt.Sprintf("%s(%v) [%d:%d]", t.Type, t.Literal, t.Line, t.Column)
	}
	return fmt.Sprintf("%s(%s) [%d:%d]", t.Type, t.Lexeme, t.Line, t.Column)
}

// LexError represents a lexical analysis error.
type LexError struct {
	Message string
	Line    int
	Column  int
	File    string
}

func (e LexError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.File, e.Line, e.Column, e.Message)
}
