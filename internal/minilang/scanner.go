package minilang

import (
	"strconv"
	"unicode"
)

// Scanner reads the input source and collects all the tokens that can be
// found. Unrecognized characters are reported and skipped one at a time, so
// scanning always runs to the end of the source.
type Scanner struct {
	line     int
	start    int
	current  int
	source   []rune
	tokens   []*Token
	reporter Reporter
}

// NewScanner creates a new token scanner
func NewScanner(source []rune, reporter Reporter) *Scanner {
	scanner := new(Scanner)
	scanner.line = 1
	scanner.start = 0
	scanner.current = 0
	scanner.source = source
	scanner.tokens = make([]*Token, 0)
	scanner.reporter = reporter
	return scanner
}

// Scan reads the source and collects all the tokens that were found
func (scanner *Scanner) Scan() []*Token {
	if len(scanner.tokens) != 0 {
		return scanner.tokens
	}

	for scanner.hasNext() {
		scanner.start = scanner.current
		switch r := scanner.advance(); r {
		// Whitespaces
		case ' ', '\r', '\t':
		case '\n':
			scanner.line++
		// Single character tokens
		case '(':
			scanner.addToken(LPAREN, nil)
		case ')':
			scanner.addToken(RPAREN, nil)
		case '{':
			scanner.addToken(LBRACE, nil)
		case '}':
			scanner.addToken(RBRACE, nil)
		case ';':
			scanner.addToken(SEMICOLON, nil)
		case '+':
			scanner.addToken(PLUS, nil)
		case '-':
			scanner.addToken(MINUS, nil)
		case '*':
			scanner.addToken(MULTIPLY, nil)
		case '/':
			scanner.addToken(DIVIDE, nil)
		// Single-/double-character tokens; '>=' and friends must win over
		// their one-character prefixes
		case '=':
			if scanner.match('=') {
				scanner.addToken(EQ, nil)
			} else {
				scanner.addToken(ASSIGN, nil)
			}
		case '>':
			if scanner.match('=') {
				scanner.addToken(GE, nil)
			} else {
				scanner.addToken(GT, nil)
			}
		case '<':
			if scanner.match('=') {
				scanner.addToken(LE, nil)
			} else {
				scanner.addToken(LT, nil)
			}
		case '!':
			if scanner.match('=') {
				scanner.addToken(NE, nil)
			} else {
				scanner.reporter.Report(
					NewScanError(r, scanner.line, scanner.start),
				)
			}
		// Literals
		case '"':
			scanner.scanString()
		default:
			if unicode.IsDigit(r) {
				scanner.scanNumber()
			} else if isBeginIdent(r) {
				scanner.scanIdentifier()
			} else {
				scanner.reporter.Report(
					NewScanError(r, scanner.line, scanner.start),
				)
			}
		}
	}
	scanner.tokens = append(
		scanner.tokens,
		NewToken(EOF, "", nil, scanner.line, scanner.current),
	)
	return scanner.tokens
}

func (scanner *Scanner) scanString() {
	for scanner.peek() != '"' && scanner.hasNext() {
		scanner.advance()
	}

	if scanner.hasNext() {
		// consume '"'
		scanner.advance()
		// content between '"' pair
		literal := string(scanner.source[scanner.start+1 : scanner.current-1])
		scanner.addToken(STRING, literal)
	} else {
		// An unterminated string is not a string at all; the opening quote is
		// an illegal character and scanning resumes right after it.
		scanner.reporter.Report(
			NewScanError('"', scanner.line, scanner.start),
		)
		scanner.current = scanner.start + 1
	}
}

func (scanner *Scanner) scanNumber() {
	// go through continuous digits
	for unicode.IsDigit(scanner.peek()) {
		scanner.advance()
	}
	// a '.' with following digits makes this a decimal literal
	if scanner.peek() == '.' && unicode.IsDigit(scanner.peekNext()) {
		scanner.advance()
		for unicode.IsDigit(scanner.peek()) {
			scanner.advance()
		}
		lexeme := string(scanner.source[scanner.start:scanner.current])
		// NOTE: the error is ignored since the lexeme was just verified to be
		// a valid floating point literal.
		literal, _ := strconv.ParseFloat(lexeme, 64)
		scanner.addToken(DECIMAL, literal)
		return
	}
	lexeme := string(scanner.source[scanner.start:scanner.current])
	literal, _ := strconv.Atoi(lexeme)
	scanner.addToken(NUMBER, literal)
}

func (scanner *Scanner) scanIdentifier() {
	for isAlphanumeric(scanner.peek()) {
		scanner.advance()
	}
	lexeme := string(scanner.source[scanner.start:scanner.current])
	if tokenType, isKeyword := KeywordTokens[lexeme]; isKeyword {
		if tokenType == BOOL {
			scanner.addToken(BOOL, lexeme == "true")
		} else {
			scanner.addToken(tokenType, nil)
		}
	} else {
		scanner.addToken(ID, nil)
	}
}

// addToken appends the lexeme from `start` to `current` as a token of the
// given type that carries the given literal
func (scanner *Scanner) addToken(typ TokenType, literal interface{}) {
	lexeme := string(scanner.source[scanner.start:scanner.current])
	tok := NewToken(typ, lexeme, literal, scanner.line, scanner.start)
	scanner.tokens = append(scanner.tokens, tok)
}

// hasNext returns true if the scanner has not read past the source length
func (scanner *Scanner) hasNext() bool {
	return scanner.current < len(scanner.source)
}

// advance consumes and returns the rune at the current position
func (scanner *Scanner) advance() rune {
	r := scanner.source[scanner.current]
	scanner.current++
	return r
}

// match checks if the rune at the current position is equal to the given
// rune, and consumes it when they are equal.
func (scanner *Scanner) match(expected rune) bool {
	if !scanner.hasNext() {
		return false
	}
	if scanner.source[scanner.current] != expected {
		return false
	}
	scanner.current++
	return true
}

// peek returns the rune at the current position, but does not consume it
func (scanner *Scanner) peek() rune {
	if !scanner.hasNext() {
		return '\x00'
	}
	return scanner.source[scanner.current]
}

// peekNext returns the rune at the next position, but does not consume it
func (scanner *Scanner) peekNext() rune {
	if scanner.current+1 >= len(scanner.source) {
		return '\x00'
	}
	return scanner.source[scanner.current+1]
}

func isAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func isBeginIdent(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}
