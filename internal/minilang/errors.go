package minilang

import "fmt"

// ScanError reports a character the lexer could not classify. The lexer
// recovers by skipping one character, so a scan error never aborts an
// analysis on its own.
type ScanError struct {
	char rune
	line int
	pos  int
}

// NewScanError creates a new lexical error
func NewScanError(char rune, line, pos int) error {
	return &ScanError{char, line, pos}
}

func (err *ScanError) Error() string {
	return fmt.Sprintf(
		"Lexical Error: Illegal character '%c' at position %d",
		err.char,
		err.pos,
	)
}

// ParseError reports a token sequence no grammar rule can reduce. A parse
// error is fatal for the analysis that produced it.
type ParseError struct {
	token *Token
}

// NewParseError creates a new syntax error at the given token
func NewParseError(token *Token) error {
	return &ParseError{token}
}

func (err *ParseError) Error() string {
	if err.token.Typ == EOF {
		return "Syntax Error: Unexpected end of input"
	}
	return fmt.Sprintf(
		"Syntax Error: Unexpected token %s ('%s') at position %d",
		err.token.Typ.String(),
		err.token.Lexeme,
		err.token.Pos,
	)
}

// Token returns the token the parser choked on.
func (err *ParseError) Token() *Token {
	return err.token
}

const (
	SemanticRedeclaration SemanticErrorKind = iota
	SemanticNotDeclared
	SemanticTypeMismatch
	SemanticInvalidOperation
)

// SemanticErrorKind distinguishes the semantic error classes. NotDeclared is
// computed during checking but filtered out of reported results.
type SemanticErrorKind uint

// SemanticError is a semantic defect found while checking a statement.
// Errors are accumulated in source order and reported together.
type SemanticError struct {
	Kind    SemanticErrorKind
	Message string
}

func (err *SemanticError) Error() string {
	return "Semantic Error: " + err.Message
}

func newRedeclarationError(name string, line int) *SemanticError {
	return &SemanticError{
		Kind:    SemanticRedeclaration,
		Message: fmt.Sprintf("Variable '%s' already declared at line %d", name, line),
	}
}

func newNotDeclaredError(name string) *SemanticError {
	return &SemanticError{
		Kind:    SemanticNotDeclared,
		Message: fmt.Sprintf("Variable '%s' not declared", name),
	}
}

func newTypeMismatchError(declared, actual Type, name string) *SemanticError {
	return &SemanticError{
		Kind: SemanticTypeMismatch,
		Message: fmt.Sprintf(
			"Cannot assign %s value to %s variable '%s'",
			actual.DisplayName(),
			declared.DisplayName(),
			name,
		),
	}
}

func newInvalidOperationError(op string, left, right Type, name string) *SemanticError {
	return &SemanticError{
		Kind: SemanticInvalidOperation,
		Message: fmt.Sprintf(
			"Cannot perform '%s' operation between %s and %s in assignment to variable '%s'",
			op,
			left.DisplayName(),
			right.DisplayName(),
			name,
		),
	}
}

func newExpressionMismatchError(name string) *SemanticError {
	return &SemanticError{
		Kind:    SemanticInvalidOperation,
		Message: fmt.Sprintf("Type mismatch in expression assigned to variable '%s'", name),
	}
}
