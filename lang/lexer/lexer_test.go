package lexer

import "testing"

func TestKeywords(t *testing.T) {
	tests := []struct {
		input    string
		expected TokenType
	}{
		{"def", TOKEN_DEF},
		{"for", TOKEN_FOR},
		{"in", TOKEN_IN},
		{"while", TOKEN_WHILE},
		{"if", TOKEN_IF},
		{"else", TOKEN_ELSE},
		{"return", TOKEN_RETURN},
		{"pass", TOKEN_PASS},
		{"try", TOKEN_TRY},
		{"except", TOKEN_EXCEPT},
		{"finally", TOKEN_FINALLY},
		{"not", TOKEN_NOT},
		{"and", TOKEN_AND},
		{"or", TOKEN_OR},
		{"true", TOKEN_TRUE},
		{"false", TOKEN_FALSE},
		{"none", TOKEN_NONE},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := New(tt.input, "test.opt")
			tokens, errs := l.ScanTokens()
			if len(errs) > 0 {
				t.Fatalf("unexpected errors: %v", errs)
			}
			if tokens[0].Type != tt.expected {
				t.Errorf("got %v, want %v", tokens[0].Type, tt.expected)
			}
		})
	}
}

func TestIdentifierNotKeyword(t *testing.T) {
	l := New("forward", "test.opt")
	tokens, errs := l.ScanTokens()
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if tokens[0].Type != TOKEN_IDENTIFIER {
		t.Errorf("got %v, want IDENTIFIER", tokens[0].Type)
	}
}

func TestOperators(t *testing.T) {
	tests := []struct {
		input    string
		expected TokenType
	}{
		{"+", TOKEN_PLUS},
		{"-", TOKEN_MINUS},
		{"*", TOKEN_STAR},
		{"/", TOKEN_SLASH},
		{"%", TOKEN_PERCENT},
		{"=", TOKEN_EQUAL},
		{":=", TOKEN_COLON_EQUAL},
		{"<", TOKEN_LESS},
		{">", TOKEN_GREATER},
		{"<=", TOKEN_LESS_EQUAL},
		{">=", TOKEN_GREATER_EQUAL},
		{"==", TOKEN_EQUAL_EQUAL},
		{"!=", TOKEN_BANG_EQUAL},
		{"+=", TOKEN_PLUS_EQUAL},
		{"-=", TOKEN_MINUS_EQUAL},
		{"*=", TOKEN_STAR_EQUAL},
		{"/=", TOKEN_SLASH_EQUAL},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := New(tt.input, "test.opt")
			tokens, errs := l.ScanTokens()
			if len(errs) > 0 {
				t.Fatalf("unexpected errors: %v", errs)
			}
			if tokens[0].Type != tt.expected {
				t.Errorf("got %v, want %v", tokens[0].Type, tt.expected)
			}
		})
	}
}

func TestNumberLiterals(t *testing.T) {
	l := New("10 3.5", "test.opt")
	tokens, errs := l.ScanTokens()
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if tokens[0].Type != TOKEN_INT_LITERAL || tokens[0].Literal.(int64) != 10 {
		t.Errorf("got %v, want int 10", tokens[0])
	}
	if tokens[1].Type != TOKEN_FLOAT_LITERAL || tokens[1].Literal.(float64) != 3.5 {
		t.Errorf("got %v, want float 3.5", tokens[1])
	}
}

func TestStringLiteral(t *testing.T) {
	l := New(`"hi\n"`, "test.opt")
	tokens, errs := l.ScanTokens()
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if tokens[0].Type != TOKEN_STRING_LITERAL || tokens[0].Literal.(string) != "hi\n" {
		t.Errorf("got %v, want string hi\\n", tokens[0])
	}
}

func TestIndentDedent(t *testing.T) {
	src := "def f():\n    a = 1\n    b = 2\nc = 3\n"
	l := New(src, "test.opt")
	tokens, errs := l.ScanTokens()
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	var kinds []TokenType
	for _, tok := range tokens {
		kinds = append(kinds, tok.Type)
	}
	wantsIndent, wantsDedent := false, false
	for _, k := range kinds {
		if k == TOKEN_INDENT {
			wantsIndent = true
		}
		if k == TOKEN_DEDENT {
			wantsDedent = true
		}
	}
	if !wantsIndent || !wantsDedent {
		t.Errorf("expected both INDENT and DEDENT in %v", kinds)
	}
}

func TestBlankAndCommentLinesIgnored(t *testing.T) {
	src := "a = 1\n\n# a comment\nb = 2\n"
	l := New(src, "test.opt")
	tokens, errs := l.ScanTokens()
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	count := 0
	for _, tok := range tokens {
		if tok.Type == TOKEN_IDENTIFIER {
			count++
		}
	}
	if count != 2 {
		t.Errorf("got %d identifiers, want 2", count)
	}
}

func TestUnterminatedString(t *testing.T) {
	l := New(`"unterminated`, "test.opt")
	_, errs := l.ScanTokens()
	if len(errs) == 0 {
		t.Fatal("expected an unterminated-string error")
	}
}
