package minilang

const (
	StatusSuccess Status = iota
	StatusSyntaxError
	StatusSemanticError
)

// Status is the overall outcome of one analysis. Syntax errors outrank
// semantic errors: if both exist the statement is a syntax error.
type Status uint

func (s Status) String() string {
	switch s {
	case StatusSyntaxError:
		return "syntax_error"
	case StatusSemanticError:
		return "semantic_error"
	}
	return "success"
}

// Result is the externally visible outcome of analyzing one statement. Tree
// is nil on a syntax error; Symbols snapshots the symbol table after the
// analysis; Derivation holds the reconstructed BNF production sequence and
// is only populated for plain expression statements.
type Result struct {
	Source         string
	Status         Status
	Tokens         []*Token
	Tree           *DerivationNode
	SyntaxError    error
	LexicalErrors  []error
	SemanticErrors []*SemanticError
	Symbols        []*SymbolEntry
	Derivation     []string
}

// Analyzer runs the full front end over single statements. The symbol table
// persists across calls until Reset, so callers analyzing independent inputs
// must Reset between them (or use a fresh Analyzer); sharing one analyzer
// without resetting makes a second declaration of the same name a
// redeclaration error.
type Analyzer struct {
	symbols *SymbolTable
}

// NewAnalyzer creates an analyzer with an empty symbol table
func NewAnalyzer() *Analyzer {
	return &Analyzer{NewSymbolTable()}
}

// Reset clears the accumulated declarations
func (analyzer *Analyzer) Reset() {
	analyzer.symbols.Reset()
}

// Analyze scans, parses, and semantically checks one statement. It never
// panics on malformed input and produces no output; all findings are
// returned in the Result.
func (analyzer *Analyzer) Analyze(source string) *Result {
	result := &Result{Source: source}

	scanErrors := NewErrorList()
	scanner := NewScanner([]rune(source), scanErrors)
	result.Tokens = scanner.Scan()
	result.LexicalErrors = scanErrors.Errors()

	tree, err := NewParser(result.Tokens).Parse()
	if err != nil {
		result.Status = StatusSyntaxError
		result.SyntaxError = err
		result.Symbols = analyzer.symbols.Snapshot()
		return result
	}
	result.Tree = tree

	checker := NewChecker(analyzer.symbols)
	for _, semErr := range checker.CheckStatement(tree) {
		// Use before declaration is tolerated: not-declared errors are
		// computed but never reported.
		if semErr.Kind == SemanticNotDeclared {
			continue
		}
		result.SemanticErrors = append(result.SemanticErrors, semErr)
	}
	result.Symbols = analyzer.symbols.Snapshot()

	if len(result.SemanticErrors) != 0 {
		result.Status = StatusSemanticError
	} else {
		result.Status = StatusSuccess
	}

	// The reconstructor only understands plain arithmetic expressions, so
	// declarations and conditionals get no derivation sequence.
	if tree.Production == "statement → expression" {
		result.Derivation = Derive(source)
	}
	return result
}

// Analyze runs one statement through a fresh analyzer
func Analyze(source string) *Result {
	return NewAnalyzer().Analyze(source)
}
