package minilang

const (
	// TypeUnknown means no typed operand was found; checks treat it
	// permissively.
	TypeUnknown Type = iota
	TypeInt
	TypeDouble
	TypeString
	TypeBool
	// TypeUndeclared marks an identifier with no symbol table entry; the
	// declaration check defers it to the reference check.
	TypeUndeclared
	// TypeError is the sentinel an expression collapses to on its first
	// invalid operator/operand combination.
	TypeError
)

// Type is the static type of a declaration or an expression
type Type uint

func (t Type) String() string {
	switch t {
	case TypeInt:
		return "int"
	case TypeDouble:
		return "double"
	case TypeString:
		return "string"
	case TypeBool:
		return "bool"
	case TypeUndeclared:
		return "undeclared"
	case TypeError:
		return "type_error"
	}
	return "unknown"
}

// DisplayName returns the human-readable type name used in error messages
func (t Type) DisplayName() string {
	switch t {
	case TypeInt:
		return "integer"
	case TypeDouble:
		return "decimal"
	case TypeString:
		return "string"
	case TypeBool:
		return "boolean"
	}
	return t.String()
}

type operation struct {
	left  Type
	op    string
	right Type
}

// validOperations enumerates every operator/operand combination the language
// accepts. int and double mix freely under '+' and '*', strings concatenate
// under '+', and bool supports no operator at all.
var validOperations = map[operation]bool{
	{TypeInt, "+", TypeInt}:       true,
	{TypeInt, "*", TypeInt}:       true,
	{TypeDouble, "+", TypeDouble}: true,
	{TypeDouble, "*", TypeDouble}: true,
	{TypeDouble, "+", TypeInt}:    true,
	{TypeInt, "+", TypeDouble}:    true,
	{TypeDouble, "*", TypeInt}:    true,
	{TypeInt, "*", TypeDouble}:    true,
	{TypeString, "+", TypeString}: true,
}

func isValidOperation(left Type, op string, right Type) bool {
	return validOperations[operation{left, op, right}]
}

// promote selects the result type of a valid binary operation: double wins
// over int, string wins otherwise, and the first operand's type carries
// through for same-type pairs.
func promote(left Type, right Type) Type {
	if left == TypeDouble || right == TypeDouble {
		return TypeDouble
	}
	if left == TypeString || right == TypeString {
		return TypeString
	}
	return left
}
