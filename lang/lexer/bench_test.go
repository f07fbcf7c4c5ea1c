package lexer

import (
	"fmt"
	"strings"
	"testing"
)

// BenchmarkLexer1000LOC benchmarks lexing 1000 lines of source.
func BenchmarkLexer1000LOC(b *testing.B) {
	source := generateSource(1000)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		lexer := New(source, "bench.opt")
		_, _ = lexer.ScanTokens()
	}
}

// BenchmarkLexer10000LOC benchmarks lexing 10000 lines of source.
func BenchmarkLexer10000LOC(b *testing.B) {
	source := generateSource(10000)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		lexer := New(source, "bench.opt")
		_, _ = lexer.ScanTokens()
	}
}

// BenchmarkKeywordLookup benchmarks keyword lookup performance.
func BenchmarkKeywordLookup(b *testing.B) {
	keywords := []string{
		"def", "for", "in", "while", "if", "else", "return", "pass",
		"try", "except", "finally", "not", "and", "or", "true", "false", "none",
		"not_a_keyword", "foobar",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lookupKeyword(keywords[i%len(keywords)])
	}
}

// BenchmarkScanIndentation isolates the cost of the indent-stack discipline
// on a deeply nested function body.
func BenchmarkScanIndentation(b *testing.B) {
	var sb strings.Builder
	sb.WriteString("def f(a, b):\n")
	indent := "    "
	for i := 0; i < 20; i++ {
		sb.WriteString(strings.Repeat(indent, i+1))
		sb.WriteString(fmt.Sprintf("if a > %d:\n", i))
	}
	sb.WriteString(strings.Repeat(indent, 21))
	sb.WriteString("pass\n")
	source := sb.String()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		lexer := New(source, "bench.opt")
		_, _ = lexer.ScanTokens()
	}
}

func generateSource(lines int) string {
	var sb strings.Builder
	sb.WriteString("def hoistable(a, x, y, n):\n")
	for i := 0; i < lines; i++ {
		switch i % 4 {
		case 0:
			sb.WriteString(fmt.Sprintf("    tmp_%d = x + y\n", i))
		case 1:
			sb.WriteString(fmt.Sprintf("    for i in range(n):\n        a[i] = tmp_%d\n", i))
		case 2:
			sb.WriteString(fmt.Sprintf("    if tmp_%d > 0:\n        print(tmp_%d)\n", i, i))
		default:
			sb.WriteString(fmt.Sprintf("    tmp_%d += 1\n", i))
		}
	}
	sb.WriteString("    return a\n")
	return sb.String()
}
