package lexer

// keywords maps reserved words to their token types for O(1) lookup.
var keywords = map[string]TokenType{
	"def":     TOKEN_DEF,
	"for":     TOKEN_FOR,
	"in":      TOKEN_IN,
	"while":   TOKEN_WHILE,
	"if":      TOKEN_IF,
	"else":    TOKEN_ELSE,
	"return":  TOKEN_RETURN,
	"pass":    TOKEN_PASS,
	"try":     TOKEN_TRY,
	"except":  TOKEN_EXCEPT,
	"finally": TOKEN_FINALLY,
	"not":     TOKEN_NOT,
	"and":     TOKEN_AND,
	"or":      TOKEN_OR,
	"true":    TOKEN_TRUE,
	"false":   TOKEN_FALSE,
	"none":    TOKEN_NONE,
}

// lookupKeyword reports whether identifier is a reserved word, returning its
// token type, or TOKEN_IDENTIFIER and false otherwise.
func lookupKeyword(identifier string) (TokenType, bool) {
	if tokenType, ok := keywords[identifier]; ok {
		return tokenType, true
	}
	return TOKEN_IDENTIFIER, false
}
