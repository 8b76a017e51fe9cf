package minilang

// Checker performs semantic analysis on a derivation tree: it registers
// declarations in the symbol table, verifies identifier references, and
// checks the static type of declaration initializers.
//
// Checks run in source order over the finished tree. For a declaration the
// initializer's identifier references are verified first, then the variable
// is registered, then the initializer type is checked against the declared
// type; a variable is marked initialized only when all of that succeeded.
type Checker struct {
	symbols *SymbolTable
	errors  []*SemanticError
}

// NewChecker creates a checker over the given symbol table
func NewChecker(symbols *SymbolTable) *Checker {
	return &Checker{symbols: symbols}
}

// CheckStatement analyzes one parsed statement and returns every semantic
// error found, in the order the defects appear in the source. The returned
// list still contains not-declared errors; filtering them is the caller's
// policy decision.
func (checker *Checker) CheckStatement(root *DerivationNode) []*SemanticError {
	checker.errors = nil
	if root == nil {
		return nil
	}
	node := root
	if len(root.Children) == 1 {
		node = root.Children[0]
	}
	if node.Label == "declaration" {
		checker.checkDeclaration(node)
	} else {
		checker.checkReferences(node)
	}
	return checker.errors
}

func (checker *Checker) checkDeclaration(node *DerivationNode) {
	typeLeaf := node.Children[0]
	idLeaf := node.Children[1]
	var init *DerivationNode
	if len(node.Children) == 4 {
		init = node.Children[3]
	}

	if init != nil {
		checker.checkReferences(init)
	}

	name := idLeaf.Tok.Lexeme
	declared := declaredType(typeLeaf.Tok.Typ)
	if err := checker.symbols.Declare(name, declared, idLeaf.Tok.Line); err != nil {
		checker.errors = append(checker.errors, err)
		return
	}
	if init == nil {
		return
	}
	if err := checker.CheckCompatibility(declared, init, name); err != nil {
		checker.errors = append(checker.errors, err)
		return
	}
	entry, _ := checker.symbols.Lookup(name)
	entry.Initialized = true
}

// checkReferences verifies, in source order, that every identifier used in
// the subtree has been declared.
func (checker *Checker) checkReferences(node *DerivationNode) {
	node.Walk(func(n *DerivationNode) {
		if n.IsTerminal() && n.Tok.Typ == ID {
			if err := checker.symbols.Check(n.Tok.Lexeme); err != nil {
				checker.errors = append(checker.errors, err)
			}
		}
	})
}

// ExpressionType computes the static type of an expression subtree by
// folding the operand types left to right. The first operator/operand
// combination outside the validity table collapses the whole expression to
// TypeError.
func (checker *Checker) ExpressionType(expr *DerivationNode) Type {
	operands, operators := checker.collect(expr)
	if len(operands) == 0 {
		return TypeUnknown
	}
	if len(operands) == 1 {
		return operands[0]
	}
	result := operands[0]
	for i, op := range operators {
		if i+1 >= len(operands) {
			break
		}
		next := operands[i+1]
		if !isValidOperation(result, op, next) {
			return TypeError
		}
		result = promote(result, next)
	}
	return result
}

// CheckCompatibility checks an initializer expression against the declared
// type of the variable it is assigned to. Unknown and undeclared expression
// types pass; the reference check owns undeclared identifiers. The
// declaration boundary requires an exact type match; the promotions allowed
// inside expressions do not apply here.
func (checker *Checker) CheckCompatibility(declared Type, expr *DerivationNode, name string) *SemanticError {
	exprType := checker.ExpressionType(expr)
	if exprType == TypeUndeclared || exprType == TypeUnknown {
		return nil
	}
	if exprType == TypeError {
		operands, operators := checker.collect(expr)
		if len(operands) >= 2 && len(operators) >= 1 {
			// The message always names the first operand pair and operator,
			// even when a later pair caused the collapse.
			return newInvalidOperationError(operators[0], operands[0], operands[1], name)
		}
		return newExpressionMismatchError(name)
	}
	if declared == exprType {
		return nil
	}
	return newTypeMismatchError(declared, exprType, name)
}

// collect gathers, in source order, the type of every literal and identifier
// operand in the subtree and every '+'/'*' operator between them.
func (checker *Checker) collect(expr *DerivationNode) ([]Type, []string) {
	var operands []Type
	var operators []string
	expr.Walk(func(n *DerivationNode) {
		if !n.IsTerminal() {
			return
		}
		switch n.Tok.Typ {
		case PLUS:
			operators = append(operators, "+")
		case MULTIPLY:
			operators = append(operators, "*")
		case ID:
			if entry, ok := checker.symbols.Lookup(n.Tok.Lexeme); ok {
				operands = append(operands, entry.Type)
			} else {
				operands = append(operands, TypeUndeclared)
			}
		case NUMBER:
			operands = append(operands, TypeInt)
		case DECIMAL:
			operands = append(operands, TypeDouble)
		case STRING:
			operands = append(operands, TypeString)
		case BOOL:
			operands = append(operands, TypeBool)
		}
	})
	return operands, operators
}

func declaredType(tt TokenType) Type {
	switch tt {
	case INT:
		return TypeInt
	case DOUBLE:
		return TypeDouble
	case STRING_TYPE:
		return TypeString
	case BOOL_TYPE:
		return TypeBool
	}
	return TypeUnknown
}
