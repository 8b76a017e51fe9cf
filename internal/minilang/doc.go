/*
Package minilang is a single-statement front end: a lexer, a predictive
(LL(1)) parser that records the derivation tree while it parses, a semantic
pass that tracks variable declarations and checks static types, and a BNF
derivation reconstructor for plain arithmetic expressions.

Grammar

	statement       --> declaration | expression | if_statement | while_statement
	declaration     --> ( "int" | "double" | "string" | "bool" ) ID ( "=" expression )?
	expression      --> term expression'
	expression'     --> "+" term expression' | ε
	term            --> factor term'
	term'           --> "*" factor term' | ε
	factor          --> "(" expression ")" | ID | NUMBER | DECIMAL | STRING | BOOL
	if_statement    --> "if" "(" condition ")"
	while_statement --> "while" "(" condition ")"
	condition       --> expression ( ">" | "<" | ">=" | "<=" | "==" | "!=" ) expression

The expression'/term' helper rules are the usual left-recursion elimination,
so "+" and "*" parse left-associatively with "*" binding tighter. The lexer
also recognizes "-", "/", "{", "}" and ";" so they tokenize cleanly, but no
grammar rule consumes them; using one is a syntax error, not a lexical one.
*/
package minilang
