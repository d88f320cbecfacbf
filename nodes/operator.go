package nodes

type Operator uint8

const (
	OpInvalid Operator = iota

	// logical
	OpAnd
	OpOr

	// comparison
	OpEqual
	OpLess
	OpLessEqual
	OpGreater
	OpGreaterEqual
	OpDifferent

	// additive, also unary
	OpAdd
	OpSubtract

	// multiplicative
	OpMultiply
	OpDivide
	OpModulo
)

var operatorNames = map[Operator]string{
	OpAnd:          "and",
	OpOr:           "or",
	OpEqual:        "=",
	OpLess:         "<",
	OpLessEqual:    "<=",
	OpGreater:      ">",
	OpGreaterEqual: ">=",
	OpDifferent:    "<>",
	OpAdd:          "+",
	OpSubtract:     "-",
	OpMultiply:     "*",
	OpDivide:       "/",
	OpModulo:       "%",
}

func (o Operator) String() string {
	if name, ok := operatorNames[o]; ok {
		return name
	}
	return "invalid"
}
