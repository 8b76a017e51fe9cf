package minilang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerive(t *testing.T) {
	testCases := []struct {
		expr  string
		steps []string
	}{
		{"x", []string{
			"<expression> ::= <term>",
			"<term> ::= <factor>",
			"<factor> ::= x",
		}},
		{"a + b", []string{
			"<expression> ::= <expression> + <term>",
			"<expression> ::= <term>",
			"<term> ::= <factor>",
			"<factor> ::= a",
			"<term> ::= <factor>",
			"<factor> ::= b",
		}},
		// the rightmost '+' splits first, so the derivation reads left
		// associative
		{"a + b + c", []string{
			"<expression> ::= <expression> + <term>",
			"<expression> ::= <expression> + <term>",
			"<expression> ::= <term>",
			"<term> ::= <factor>",
			"<factor> ::= a",
			"<term> ::= <factor>",
			"<factor> ::= b",
			"<term> ::= <factor>",
			"<factor> ::= c",
		}},
		{"a + b * c", []string{
			"<expression> ::= <expression> + <term>",
			"<expression> ::= <term>",
			"<term> ::= <factor>",
			"<factor> ::= a",
			"<term> ::= <term> * <factor>",
			"<term> ::= <factor>",
			"<factor> ::= b",
			"<factor> ::= c",
		}},
		// parentheses shield their content from the top-level split
		{"(a + b) * c", []string{
			"<expression> ::= <term>",
			"<term> ::= <term> * <factor>",
			"<term> ::= <factor>",
			"<factor> ::= ( <expression> )",
			"<expression> ::= <expression> + <term>",
			"<expression> ::= <term>",
			"<term> ::= <factor>",
			"<factor> ::= a",
			"<term> ::= <factor>",
			"<factor> ::= b",
			"<factor> ::= c",
		}},
		{"(x)", []string{
			"<expression> ::= <term>",
			"<term> ::= <factor>",
			"<factor> ::= ( <expression> )",
			"<expression> ::= <term>",
			"<term> ::= <factor>",
			"<factor> ::= x",
		}},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		assert.Equal(tc.steps, Derive(tc.expr), "expr=%q", tc.expr)
	}
}

func TestDeriveIgnoresSpaces(t *testing.T) {
	assert.Equal(t, Derive("a+b*c"), Derive("  a + b * c  "))
}
