package minilang

import "fmt"

// Token groups a lexeme with the information obtained during scanning. Pos is
// the rune offset of the lexeme's first character in the source.
type Token struct {
	Typ     TokenType
	Lexeme  string
	Literal interface{}
	Line    int
	Pos     int
}

// NewToken creates a new token
func NewToken(typ TokenType, lexeme string, literal interface{}, line, pos int) *Token {
	return &Token{typ, lexeme, literal, line, pos}
}

func (t *Token) String() string {
	return fmt.Sprintf("%s %s %v", t.Typ.String(), t.Lexeme, t.Literal)
}

// KeywordTokens maps reserved words to their token types. "true" and "false"
// are boolean literals, not keywords, but they are matched the same way.
var KeywordTokens = map[string]TokenType{
	"int":    INT,
	"double": DOUBLE,
	"string": STRING_TYPE,
	"bool":   BOOL_TYPE,
	"true":   BOOL,
	"false":  BOOL,
	"if":     IF,
	"else":   ELSE,
	"while":  WHILE,
	"return": RETURN,
	"void":   VOID,
}

const (
	// Literals and identifiers
	ID TokenType = iota
	NUMBER
	DECIMAL
	STRING
	BOOL

	// Keywords
	INT
	DOUBLE
	STRING_TYPE
	BOOL_TYPE
	IF
	ELSE
	WHILE
	RETURN
	VOID

	// Operators
	PLUS
	MINUS
	MULTIPLY
	DIVIDE
	ASSIGN
	GT
	LT
	GE
	LE
	EQ
	NE

	// Delimiters
	LPAREN
	RPAREN
	LBRACE
	RBRACE
	SEMICOLON

	EOF
)

// TokenType identifies the lexical class of a token
type TokenType uint

func (tt TokenType) String() string {
	switch tt {
	case ID:
		return "ID"
	case NUMBER:
		return "NUMBER"
	case DECIMAL:
		return "DECIMAL"
	case STRING:
		return "STRING"
	case BOOL:
		return "BOOL"
	case INT:
		return "INT"
	case DOUBLE:
		return "DOUBLE"
	case STRING_TYPE:
		return "STRING_TYPE"
	case BOOL_TYPE:
		return "BOOL_TYPE"
	case IF:
		return "IF"
	case ELSE:
		return "ELSE"
	case WHILE:
		return "WHILE"
	case RETURN:
		return "RETURN"
	case VOID:
		return "VOID"
	case PLUS:
		return "PLUS"
	case MINUS:
		return "MINUS"
	case MULTIPLY:
		return "MULTIPLY"
	case DIVIDE:
		return "DIVIDE"
	case ASSIGN:
		return "ASSIGN"
	case GT:
		return "GT"
	case LT:
		return "LT"
	case GE:
		return "GE"
	case LE:
		return "LE"
	case EQ:
		return "EQ"
	case NE:
		return "NE"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	case LBRACE:
		return "LBRACE"
	case RBRACE:
		return "RBRACE"
	case SEMICOLON:
		return "SEMICOLON"
	case EOF:
		return "EOF"
	}
	return ""
}

// Category returns the classification bucket the token is reported under.
func (t *Token) Category() string {
	switch t.Typ {
	case INT, DOUBLE, STRING_TYPE, BOOL_TYPE, IF, ELSE, WHILE, RETURN, VOID:
		return "Keywords"
	case ID:
		return "Identifier"
	case PLUS, MINUS, MULTIPLY, DIVIDE, ASSIGN, GT, LT, GE, LE, EQ, NE:
		return "Operator"
	case LPAREN, RPAREN, LBRACE, RBRACE, SEMICOLON:
		return "Delimiter"
	case NUMBER, DECIMAL, STRING, BOOL:
		return "Literal"
	}
	return "Other"
}

// TypeName returns the token subtype string used when serializing tokens:
// keywords and operators report themselves, identifiers report "identifier",
// and literals report their value class.
func (t *Token) TypeName() string {
	switch t.Typ {
	case INT:
		return "int"
	case DOUBLE:
		return "double"
	case STRING_TYPE:
		return "string"
	case BOOL_TYPE:
		return "bool"
	case IF:
		return "if"
	case ELSE:
		return "else"
	case WHILE:
		return "while"
	case RETURN:
		return "return"
	case VOID:
		return "void"
	case ID:
		return "identifier"
	case PLUS:
		return "+"
	case MINUS:
		return "-"
	case MULTIPLY:
		return "*"
	case DIVIDE:
		return "/"
	case ASSIGN:
		return "="
	case GT:
		return ">"
	case LT:
		return "<"
	case GE:
		return ">="
	case LE:
		return "<="
	case EQ:
		return "=="
	case NE:
		return "!="
	case LPAREN:
		return "("
	case RPAREN:
		return ")"
	case LBRACE:
		return "{"
	case RBRACE:
		return "}"
	case SEMICOLON:
		return ";"
	case NUMBER:
		return "integer"
	case DECIMAL:
		return "decimal"
	case STRING:
		return "string"
	case BOOL:
		return "boolean"
	}
	return t.Typ.String()
}
