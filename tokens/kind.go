package tokens

type Kind uint8

const (
	Invalid Kind = iota

	// literals
	Number
	Char
	String
	Identifier

	// constants
	Null
	True
	False

	// keywords
	Let
	If
	Then
	Else
	End
	For
	Execute
	While
	Do
	Until
	Print
	Read
	Throw
	Try
	Catch
	Function
	Return
	Continue
	Break
	Include
	Run
	And
	Or

	// operators
	Plus
	Minus
	Multiply
	Divide
	Modulo
	Equals
	Less
	LessEqual
	Greater
	GreaterEqual
	Different
	Assignment

	// delimiters
	ParenLeft
	ParenRight
	BracketLeft
	BracketRight
	CurlyLeft
	CurlyRight
	Comma
	Colon
	Endline

	numKinds
)

var kindNames = [numKinds]string{
	Invalid: "invalid",

	Number:     "number",
	Char:       "character",
	String:     "string",
	Identifier: "identifier",

	Null:  "null",
	True:  "true",
	False: "false",

	Let:      "let",
	If:       "if",
	Then:     "then",
	Else:     "else",
	End:      "end",
	For:      "for",
	Execute:  "execute",
	While:    "while",
	Do:       "do",
	Until:    "until",
	Print:    "print",
	Read:     "read",
	Throw:    "throw",
	Try:      "try",
	Catch:    "catch",
	Function: "function",
	Return:   "return",
	Continue: "continue",
	Break:    "break",
	Include:  "include",
	Run:      "run",
	And:      "and",
	Or:       "or",

	Plus:         "+",
	Minus:        "-",
	Multiply:     "*",
	Divide:       "/",
	Modulo:       "%",
	Equals:       "=",
	Less:         "<",
	LessEqual:    "<=",
	Greater:      ">",
	GreaterEqual: ">=",
	Different:    "<>",
	Assignment:   "<-",

	ParenLeft:    "(",
	ParenRight:   ")",
	BracketLeft:  "[",
	BracketRight: "]",
	CurlyLeft:    "{",
	CurlyRight:   "}",
	Comma:        ",",
	Colon:        ":",
	Endline:      "end of line",
}

func (k Kind) String() string {
	if k >= numKinds {
		return "invalid"
	}
	return kindNames[k]
}

// HasPayload reports whether tokens of this kind carry a decoded value.
func (k Kind) HasPayload() bool {
	switch k {
	case Number, Char, String, Identifier:
		return true
	}
	return false
}

// IsKeyword reports whether k is a reserved word, constants included.
func (k Kind) IsKeyword() bool {
	return k >= Null && k <= Or
}

var keywords = map[string]Kind{
	"null":     Null,
	"true":     True,
	"false":    False,
	"let":      Let,
	"if":       If,
	"then":     Then,
	"else":     Else,
	"end":      End,
	"for":      For,
	"execute":  Execute,
	"while":    While,
	"do":       Do,
	"until":    Until,
	"print":    Print,
	"read":     Read,
	"throw":    Throw,
	"try":      Try,
	"catch":    Catch,
	"function": Function,
	"return":   Return,
	"continue": Continue,
	"break":    Break,
	"include":  Include,
	"run":      Run,
	"and":      And,
	"or":       Or,
}

// Lookup maps a scanned word to its reserved-word kind, or Identifier.
func Lookup(word string) Kind {
	if kind, ok := keywords[word]; ok {
		return kind
	}
	return Identifier
}
