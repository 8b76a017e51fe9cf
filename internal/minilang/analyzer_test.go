package minilang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeDeclaration(t *testing.T) {
	assert := assert.New(t)
	result := Analyze("int x = 5")

	assert.Equal(StatusSuccess, result.Status)
	assert.Equal("int x = 5", result.Source)
	assert.Empty(result.LexicalErrors)
	assert.Nil(result.SyntaxError)
	assert.Empty(result.SemanticErrors)
	assert.NotNil(result.Tree)
	assert.Equal("statement → declaration", result.Tree.Production)
	// only plain expression statements get a reconstructed derivation
	assert.Empty(result.Derivation)

	assert.Len(result.Symbols, 1)
	assert.Equal("x", result.Symbols[0].Name)
	assert.Equal(TypeInt, result.Symbols[0].Type)
	assert.True(result.Symbols[0].Initialized)
}

func TestAnalyzeExpression(t *testing.T) {
	assert := assert.New(t)
	result := Analyze("a + b * c")

	// use before declaration is tolerated for plain expressions
	assert.Equal(StatusSuccess, result.Status)
	assert.Empty(result.SemanticErrors)
	assert.Empty(result.Symbols)
	assert.Equal([]string{
		"<expression> ::= <expression> + <term>",
		"<expression> ::= <term>",
		"<term> ::= <factor>",
		"<factor> ::= a",
		"<term> ::= <term> * <factor>",
		"<term> ::= <factor>",
		"<factor> ::= b",
		"<factor> ::= c",
	}, result.Derivation)
}

func TestAnalyzeSyntaxError(t *testing.T) {
	testCases := []struct {
		src     string
		message string
	}{
		{"int = 5", "Syntax Error: Unexpected token ASSIGN ('=') at position 4"},
		{"a - b", "Syntax Error: Unexpected token MINUS ('-') at position 2"},
		{"5 +", "Syntax Error: Unexpected end of input"},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		result := Analyze(tc.src)

		assert.Equal(StatusSyntaxError, result.Status, "src=%q", tc.src)
		assert.EqualError(result.SyntaxError, tc.message, "src=%q", tc.src)
		assert.Nil(result.Tree, "src=%q", tc.src)
		assert.Empty(result.SemanticErrors, "src=%q", tc.src)
		assert.Empty(result.Derivation, "src=%q", tc.src)
	}
}

func TestAnalyzeSemanticError(t *testing.T) {
	assert := assert.New(t)
	result := Analyze("int x = 3.14")

	assert.Equal(StatusSemanticError, result.Status)
	assert.NotNil(result.Tree)
	assert.Len(result.SemanticErrors, 1)
	assert.EqualError(
		result.SemanticErrors[0],
		"Semantic Error: Cannot assign decimal value to integer variable 'x'",
	)

	assert.Len(result.Symbols, 1)
	assert.False(result.Symbols[0].Initialized)
}

func TestAnalyzeSyntaxErrorOutranksSemantic(t *testing.T) {
	assert := assert.New(t)
	// the trailing token is a syntax error, so the bad initializer type is
	// never reported
	result := Analyze("int x = 3.14 junk")

	assert.Equal(StatusSyntaxError, result.Status)
	assert.Empty(result.SemanticErrors)
}

func TestAnalyzeLexicalErrorsDoNotReject(t *testing.T) {
	assert := assert.New(t)
	result := Analyze("x + @y")

	assert.Equal(StatusSuccess, result.Status)
	assert.Len(result.LexicalErrors, 1)
	assert.EqualError(
		result.LexicalErrors[0],
		"Lexical Error: Illegal character '@' at position 4",
	)
}

func TestAnalyzeBranchStatements(t *testing.T) {
	assert := assert.New(t)
	for _, src := range []string{"if(x > 9)", "while(i < 7)", "if(a + 1 == b * 2)"} {
		result := Analyze(src)

		assert.Equal(StatusSuccess, result.Status, "src=%q", src)
		assert.NotNil(result.Tree, "src=%q", src)
		assert.Empty(result.Derivation, "src=%q", src)
	}
}

func TestAnalyzerSharedState(t *testing.T) {
	assert := assert.New(t)
	analyzer := NewAnalyzer()

	result := analyzer.Analyze("int x = 5")
	assert.Equal(StatusSuccess, result.Status)

	// without a reset the second declaration of the same name collides
	result = analyzer.Analyze("double x = 2.5")
	assert.Equal(StatusSemanticError, result.Status)
	assert.Len(result.SemanticErrors, 1)
	assert.EqualError(
		result.SemanticErrors[0],
		"Semantic Error: Variable 'x' already declared at line 1",
	)

	// declared variables stay visible to later statements
	result = analyzer.Analyze("int y = x + 1")
	assert.Equal(StatusSuccess, result.Status)
	assert.Len(result.Symbols, 2)
}

func TestAnalyzerReset(t *testing.T) {
	assert := assert.New(t)
	analyzer := NewAnalyzer()

	result := analyzer.Analyze("int x = 5")
	assert.Equal(StatusSuccess, result.Status)

	analyzer.Reset()
	result = analyzer.Analyze("int x = 7")
	assert.Equal(StatusSuccess, result.Status)
	assert.Len(result.Symbols, 1)
}

func TestStatusString(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("success", StatusSuccess.String())
	assert.Equal("syntax_error", StatusSyntaxError.String())
	assert.Equal("semantic_error", StatusSemanticError.String())
}
