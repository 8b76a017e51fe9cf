package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"minilang/internal/logging"
	"minilang/internal/minilang"
)

// Handler serves the single analysis endpoint: POST a JSON body with an
// "expression" field and receive the lexical, syntax, and semantic analysis
// of that statement. Every request gets its own analyzer, so concurrent
// requests never observe each other's declarations.
type Handler struct {
	allowOrigin string
	logger      *logging.Logger
}

// NewHandler creates the analysis handler
func NewHandler(allowOrigin string, logger *logging.Logger) *Handler {
	return &Handler{allowOrigin, logger}
}

type analyzeRequest struct {
	Expression string `json:"expression"`
}

type tokenJSON struct {
	Lexeme    string `json:"lexeme"`
	TokenType string `json:"token_type"`
	Category  string `json:"category"`
}

type derivationStepJSON struct {
	Step int    `json:"step"`
	Rule string `json:"rule"`
}

type variableJSON struct {
	Type        string `json:"type"`
	Line        int    `json:"line_no"`
	Initialized bool   `json:"initialized"`
}

type lexicalAnalysisJSON struct {
	Tokens []tokenJSON `json:"tokens"`
}

type syntaxAnalysisJSON struct {
	Accepted      bool                 `json:"accepted"`
	BNFDerivation []derivationStepJSON `json:"bnf_derivation"`
}

type semanticAnalysisJSON struct {
	Errors            []string                `json:"errors"`
	VariablesDeclared map[string]variableJSON `json:"variables_declared"`
}

type analyzeResponse struct {
	InputExpression  string               `json:"input_expression"`
	Status           string               `json:"status"`
	ResultType       string               `json:"result_type"`
	LexicalAnalysis  lexicalAnalysisJSON  `json:"lexical_analysis"`
	SyntaxAnalysis   syntaxAnalysisJSON   `json:"syntax_analysis"`
	SemanticAnalysis semanticAnalysisJSON `json:"semantic_analysis"`
}

type errorResponse struct {
	Error   string          `json:"error"`
	Status  string          `json:"status"`
	Example *analyzeRequest `json:"example,omitempty"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", h.allowOrigin)
	w.Header().Set("Access-Control-Allow-Methods", "POST")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	if r.Method == http.MethodOptions {
		w.Header().Set("Access-Control-Max-Age", "3600")
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{
			Error:  "Method not allowed. Use POST method.",
			Status: "error",
		})
		return
	}

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:  "Invalid JSON in request body",
			Status: "error",
		})
		return
	}

	expression := strings.TrimSpace(req.Expression)
	if expression == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "Missing or empty 'expression' field in request body",
			Status:  "error",
			Example: &analyzeRequest{Expression: "int x = 5"},
		})
		return
	}

	result := minilang.Analyze(expression)
	writeJSON(w, http.StatusOK, buildResponse(result))
}

func buildResponse(result *minilang.Result) analyzeResponse {
	accepted := result.Status != minilang.StatusSyntaxError

	resp := analyzeResponse{
		InputExpression: result.Source,
		Status:          "error",
		ResultType:      result.Status.String(),
		LexicalAnalysis: lexicalAnalysisJSON{
			Tokens: make([]tokenJSON, 0, len(result.Tokens)),
		},
		SyntaxAnalysis: syntaxAnalysisJSON{
			Accepted:      accepted,
			BNFDerivation: make([]derivationStepJSON, 0, len(result.Derivation)),
		},
		SemanticAnalysis: semanticAnalysisJSON{
			Errors:            make([]string, 0, len(result.SemanticErrors)),
			VariablesDeclared: make(map[string]variableJSON),
		},
	}
	if result.Status == minilang.StatusSuccess {
		resp.Status = "success"
	}

	for _, tok := range result.Tokens {
		if tok.Typ == minilang.EOF {
			continue
		}
		resp.LexicalAnalysis.Tokens = append(resp.LexicalAnalysis.Tokens, tokenJSON{
			Lexeme:    tok.Lexeme,
			TokenType: tok.TypeName(),
			Category:  tok.Category(),
		})
	}

	for _, semErr := range result.SemanticErrors {
		resp.SemanticAnalysis.Errors = append(resp.SemanticAnalysis.Errors, semErr.Error())
	}

	if accepted {
		for i, rule := range result.Derivation {
			resp.SyntaxAnalysis.BNFDerivation = append(
				resp.SyntaxAnalysis.BNFDerivation,
				derivationStepJSON{Step: i + 1, Rule: rule},
			)
		}
		for _, entry := range result.Symbols {
			resp.SemanticAnalysis.VariablesDeclared[entry.Name] = variableJSON{
				Type:        entry.Type.String(),
				Line:        entry.Line,
				Initialized: entry.Initialized,
			}
		}
	}
	return resp
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Encoding these response types cannot fail; nothing useful can be done
	// for a broken connection anyway.
	_ = json.NewEncoder(w).Encode(body)
}

func internalError(w http.ResponseWriter, v interface{}) {
	writeJSON(w, http.StatusInternalServerError, errorResponse{
		Error:  fmt.Sprintf("Internal server error: %v", v),
		Status: "error",
	})
}
