package minilang

import "fmt"

// Parser is a predictive recursive-descent parser that consumes the scanned
// tokens and records the derivation tree as it goes. Each parsing method
// mirrors one grammar rule (see the package documentation) and produces a
// DerivationNode whose production text names exactly the rule that fired.
//
// The parser stops at the first token no rule can reduce; it performs no
// resynchronization, so one syntax error rejects the whole statement.
type Parser struct {
	current int
	tokens  []*Token
}

// NewParser creates a new parser over a scanned token sequence
func NewParser(tokens []*Token) *Parser {
	return &Parser{0, tokens}
}

// Parse reduces the tokens to a single statement and returns its derivation
// tree. Trailing tokens after a complete statement are a syntax error.
func (parser *Parser) Parse() (*DerivationNode, error) {
	stmt, err := parser.statement()
	if err != nil {
		return nil, err
	}
	if !parser.isEOF() {
		return nil, NewParseError(parser.peek())
	}
	return stmt, nil
}

// statement --> declaration | expression | if_statement | while_statement
func (parser *Parser) statement() (*DerivationNode, error) {
	var child *DerivationNode
	var alternative string
	var err error

	switch parser.peek().Typ {
	case INT, DOUBLE, STRING_TYPE, BOOL_TYPE:
		child, err = parser.declaration()
		alternative = "declaration"
	case IF:
		child, err = parser.branchStatement(IF)
		alternative = "if_statement"
	case WHILE:
		child, err = parser.branchStatement(WHILE)
		alternative = "while_statement"
	default:
		child, err = parser.expression()
		alternative = "expression"
	}
	if err != nil {
		return nil, err
	}

	node := NewDerivationNode("statement", "statement → "+alternative)
	node.Add(child)
	return node, nil
}

// declaration --> ( "int" | "double" | "string" | "bool" ) ID ( "=" expression )?
//
// One parametrized rule covers all four declared types; the type keyword
// token decides the production symbol that is recorded.
func (parser *Parser) declaration() (*DerivationNode, error) {
	typeTok := parser.advance()
	typeSym := typeTok.Typ.String()

	idTok, err := parser.consume(ID)
	if err != nil {
		return nil, err
	}

	node := NewDerivationNode("declaration", "declaration → "+typeSym+" ID")
	node.Add(NewTerminalNode(typeSym, typeSym+" → "+typeTok.Lexeme, typeTok))
	node.Add(identifierLeaf(idTok))

	if parser.match(ASSIGN) {
		assignTok := parser.prev()
		expr, err := parser.expression()
		if err != nil {
			return nil, err
		}
		node.Production = "declaration → " + typeSym + " ID ASSIGN expression"
		node.Add(NewTerminalNode("ASSIGN", "ASSIGN → =", assignTok))
		node.Add(expr)
	}
	return node, nil
}

// expression --> term expression'
func (parser *Parser) expression() (*DerivationNode, error) {
	term, err := parser.term()
	if err != nil {
		return nil, err
	}
	prime, err := parser.expressionPrime()
	if err != nil {
		return nil, err
	}
	node := NewDerivationNode("expression", "expression → term expression_prime")
	node.Add(term)
	node.Add(prime)
	return node, nil
}

// expression' --> "+" term expression' | ε
func (parser *Parser) expressionPrime() (*DerivationNode, error) {
	if !parser.match(PLUS) {
		return NewDerivationNode("expression_prime", "expression_prime → ε"), nil
	}
	plusTok := parser.prev()
	term, err := parser.term()
	if err != nil {
		return nil, err
	}
	prime, err := parser.expressionPrime()
	if err != nil {
		return nil, err
	}
	node := NewDerivationNode("expression_prime", "expression_prime → + term expression_prime")
	node.Add(NewTerminalNode("+", "+ → +", plusTok))
	node.Add(term)
	node.Add(prime)
	return node, nil
}

// term --> factor term'
func (parser *Parser) term() (*DerivationNode, error) {
	factor, err := parser.factor()
	if err != nil {
		return nil, err
	}
	prime, err := parser.termPrime()
	if err != nil {
		return nil, err
	}
	node := NewDerivationNode("term", "term → factor term_prime")
	node.Add(factor)
	node.Add(prime)
	return node, nil
}

// term' --> "*" factor term' | ε
func (parser *Parser) termPrime() (*DerivationNode, error) {
	if !parser.match(MULTIPLY) {
		return NewDerivationNode("term_prime", "term_prime → ε"), nil
	}
	starTok := parser.prev()
	factor, err := parser.factor()
	if err != nil {
		return nil, err
	}
	prime, err := parser.termPrime()
	if err != nil {
		return nil, err
	}
	node := NewDerivationNode("term_prime", "term_prime → * factor term_prime")
	node.Add(NewTerminalNode("*", "* → *", starTok))
	node.Add(factor)
	node.Add(prime)
	return node, nil
}

// factor --> "(" expression ")" | ID | NUMBER | DECIMAL | STRING | BOOL
func (parser *Parser) factor() (*DerivationNode, error) {
	if parser.match(LPAREN) {
		lparenTok := parser.prev()
		expr, err := parser.expression()
		if err != nil {
			return nil, err
		}
		rparenTok, err := parser.consume(RPAREN)
		if err != nil {
			return nil, err
		}
		node := NewDerivationNode("factor", "factor → ( expression )")
		node.Add(NewTerminalNode("(", "( → (", lparenTok))
		node.Add(expr)
		node.Add(NewTerminalNode(")", ") → )", rparenTok))
		return node, nil
	}
	if parser.match(ID) {
		node := NewDerivationNode("factor", "factor → ID")
		node.Add(identifierLeaf(parser.prev()))
		return node, nil
	}
	if parser.match(NUMBER, DECIMAL, STRING, BOOL) {
		tok := parser.prev()
		sym := tok.Typ.String()
		node := NewDerivationNode("factor", "factor → "+sym)
		node.Add(NewTerminalNode(
			fmt.Sprintf("%s(%s)", sym, tok.Lexeme),
			sym+" → "+tok.Lexeme,
			tok,
		))
		return node, nil
	}
	return nil, NewParseError(parser.peek())
}

// if_statement    --> "if" "(" condition ")"
// while_statement --> "while" "(" condition ")"
func (parser *Parser) branchStatement(keyword TokenType) (*DerivationNode, error) {
	label := "if_statement"
	if keyword == WHILE {
		label = "while_statement"
	}
	keywordTok := parser.advance()
	keywordSym := keywordTok.Typ.String()

	lparenTok, err := parser.consume(LPAREN)
	if err != nil {
		return nil, err
	}
	cond, err := parser.condition()
	if err != nil {
		return nil, err
	}
	rparenTok, err := parser.consume(RPAREN)
	if err != nil {
		return nil, err
	}

	node := NewDerivationNode(label, label+" → "+keywordSym+" LPAREN condition RPAREN")
	node.Add(NewTerminalNode(keywordSym, keywordSym+" → "+keywordTok.Lexeme, keywordTok))
	node.Add(NewTerminalNode("LPAREN", "LPAREN → (", lparenTok))
	node.Add(cond)
	node.Add(NewTerminalNode("RPAREN", "RPAREN → )", rparenTok))
	return node, nil
}

// condition --> expression ( ">" | "<" | ">=" | "<=" | "==" | "!=" ) expression
func (parser *Parser) condition() (*DerivationNode, error) {
	left, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if !parser.match(GT, LT, GE, LE, EQ, NE) {
		return nil, NewParseError(parser.peek())
	}
	opTok := parser.prev()
	opSym := opTok.Typ.String()
	right, err := parser.expression()
	if err != nil {
		return nil, err
	}

	node := NewDerivationNode("condition", "condition → expression "+opSym+" expression")
	node.Add(left)
	node.Add(NewTerminalNode(opSym, opSym+" → "+opTok.Lexeme, opTok))
	node.Add(right)
	return node, nil
}

func identifierLeaf(tok *Token) *DerivationNode {
	return NewTerminalNode(
		fmt.Sprintf("ID(%s)", tok.Lexeme),
		"ID → "+tok.Lexeme,
		tok,
	)
}

func (parser *Parser) match(types ...TokenType) bool {
	for _, tt := range types {
		if parser.check(tt) {
			parser.advance()
			return true
		}
	}
	return false
}

func (parser *Parser) consume(typ TokenType) (*Token, error) {
	if parser.check(typ) {
		return parser.advance(), nil
	}
	return nil, NewParseError(parser.peek())
}

func (parser *Parser) check(tt TokenType) bool {
	if parser.isEOF() {
		return false
	}
	return parser.peek().Typ == tt
}

func (parser *Parser) advance() *Token {
	if !parser.isEOF() {
		parser.current++
	}
	return parser.prev()
}

func (parser *Parser) isEOF() bool {
	return parser.peek().Typ == EOF
}

func (parser *Parser) peek() *Token {
	return parser.tokens[parser.current]
}

func (parser *Parser) prev() *Token {
	return parser.tokens[parser.current-1]
}
