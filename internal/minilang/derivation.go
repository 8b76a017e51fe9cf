package minilang

import "strings"

// Derive regenerates, from the expression text alone, the sequence of
// grammar productions a predictive parser applies to it, using only the
// expression, term, and factor rules. The split point at every level is the
// rightmost operator outside parentheses, which is what makes the derivation
// reflect left associativity.
//
// Derive assumes its input was already accepted by the main grammar as an
// expression; it is not defined for any other text.
func Derive(expression string) []string {
	expr := strings.ReplaceAll(expression, " ", "")
	steps := make([]string, 0)
	deriveExpression(expr, &steps)
	return steps
}

func deriveExpression(expr string, steps *[]string) {
	if pos := rightmostTopLevel(expr, '+'); pos != -1 {
		*steps = append(*steps, "<expression> ::= <expression> + <term>")
		deriveExpression(expr[:pos], steps)
		deriveTerm(expr[pos+1:], steps)
		return
	}
	*steps = append(*steps, "<expression> ::= <term>")
	deriveTerm(expr, steps)
}

func deriveTerm(expr string, steps *[]string) {
	if pos := rightmostTopLevel(expr, '*'); pos != -1 {
		*steps = append(*steps, "<term> ::= <term> * <factor>")
		deriveTerm(expr[:pos], steps)
		deriveFactor(expr[pos+1:], steps)
		return
	}
	*steps = append(*steps, "<term> ::= <factor>")
	deriveFactor(expr, steps)
}

func deriveFactor(expr string, steps *[]string) {
	if strings.HasPrefix(expr, "(") && strings.HasSuffix(expr, ")") {
		*steps = append(*steps, "<factor> ::= ( <expression> )")
		deriveExpression(expr[1:len(expr)-1], steps)
		return
	}
	*steps = append(*steps, "<factor> ::= "+expr)
}

// rightmostTopLevel returns the index of the rightmost occurrence of op at
// parenthesis depth zero, or -1 when there is none.
func rightmostTopLevel(expr string, op byte) int {
	depth := 0
	for i := len(expr) - 1; i >= 0; i-- {
		switch expr[i] {
		case ')':
			depth++
		case '(':
			depth--
		case op:
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
