package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"minilang/internal/minilang"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#06B6D4"))

	acceptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#10B981"))

	rejectStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#EF4444"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))
)

// runPrompt runs the interactive loop: one statement per line, analyzed
// against a reset analyzer so inputs stay independent of each other.
func runPrompt(in io.Reader, out io.Writer) error {
	analyzer := minilang.NewAnalyzer()
	s := bufio.NewScanner(in)
	s.Split(bufio.ScanLines)

	fmt.Fprintln(out, titleStyle.Render("minilang analyzer"))
	fmt.Fprintln(out, mutedStyle.Render("Type a statement to analyze it, or 'quit' to stop."))
	for {
		fmt.Fprint(out, "> ")
		if !s.Scan() {
			break
		}
		input := strings.TrimSpace(s.Text())
		switch strings.ToLower(input) {
		case "quit", "exit", "q":
			return s.Err()
		case "":
			continue
		}
		analyzer.Reset()
		renderResult(out, analyzer.Analyze(input))
	}
	return s.Err()
}

func renderResult(out io.Writer, result *minilang.Result) {
	fmt.Fprintln(out, titleStyle.Render("LEXICAL ANALYSIS"))
	fmt.Fprintf(out, "%-15s %-15s %-12s %s\n", "Lexeme", "Token Type", "Category", "Position")
	for _, tok := range result.Tokens {
		if tok.Typ == minilang.EOF {
			continue
		}
		fmt.Fprintf(out, "%-15s %-15s %-12s %d\n", tok.Lexeme, tok.TypeName(), tok.Category(), tok.Pos)
	}
	for _, err := range result.LexicalErrors {
		fmt.Fprintln(out, rejectStyle.Render(err.Error()))
	}

	if result.SyntaxError != nil {
		fmt.Fprintln(out, rejectStyle.Render(result.SyntaxError.Error()))
	}

	if result.Tree != nil {
		fmt.Fprintln(out, titleStyle.Render("DERIVATION TREE"))
		result.Tree.Render(out)
	}
	if len(result.Derivation) != 0 {
		fmt.Fprintln(out, titleStyle.Render("BNF DERIVATION SEQUENCE"))
		for _, rule := range result.Derivation {
			fmt.Fprintln(out, rule)
		}
	}

	for _, semErr := range result.SemanticErrors {
		fmt.Fprintln(out, rejectStyle.Render(semErr.Error()))
	}
	if len(result.Symbols) != 0 {
		fmt.Fprintln(out, titleStyle.Render("SYMBOL TABLE"))
		for _, entry := range result.Symbols {
			fmt.Fprintf(out, "%-15s %-10s line %-4d initialized=%t\n",
				entry.Name, entry.Type.String(), entry.Line, entry.Initialized)
		}
	}

	switch result.Status {
	case minilang.StatusSuccess:
		fmt.Fprintln(out, acceptStyle.Render("ACCEPTED: Statement is syntactically and semantically correct"))
	case minilang.StatusSyntaxError:
		fmt.Fprintln(out, rejectStyle.Render("REJECTED: Statement contains a syntax error"))
	case minilang.StatusSemanticError:
		fmt.Fprintln(out, rejectStyle.Render("REJECTED: Statement contains a semantic error"))
	}
}
