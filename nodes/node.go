package nodes

// Node is one construct of the syntax tree. The set of implementations is
// closed; consumers go through Visitor so a new kind breaks them at compile
// time.
type Node interface {
	Accept(Visitor)
	node()
}

// Expressions is a block: an ordered, possibly empty sequence of nodes.
type Expressions struct {
	List []Node
}

type If struct {
	Condition Node
	TrueBody  *Expressions
	FalseBody *Expressions // nil without else
}

type For struct {
	Identifier string
	Start      Node
	End        Node
	Step       Node // nil when omitted
	Body       *Expressions
}

type While struct {
	Condition Node
	Body      *Expressions
}

type DoUntil struct {
	Body      *Expressions
	Condition Node
}

type Continue struct{}

type Break struct{}

type TryCatch struct {
	TryBody         *Expressions
	CatchIdentifier string
	CatchBody       *Expressions
}

type Throw struct {
	Value Node
}

type FunctionDefinition struct {
	Identifier string
	Parameters []string
	Body       *Expressions
}

type Return struct {
	Value Node
}

type Include struct {
	Path string
}

type Run struct {
	Path string
}

type Read struct {
	File        string // "" reads from standard input
	Identifiers []string
}

type Print struct {
	File        string // "" prints to standard output
	Expressions []Node
}

// Assignment is `let Identifier[i]...[j] <- Value`.
type Assignment struct {
	Identifier string
	Indices    []Node
	Value      Node
}

type LogicalOperation struct {
	Left  Node
	Right Node
	Op    Operator
}

type ComparisonOperation struct {
	Left  Node
	Right Node
	Op    Operator
}

// ArithmeticOperation is the additive tier.
type ArithmeticOperation struct {
	Left  Node
	Right Node
	Op    Operator
}

// ArithmeticOperation2 is the multiplicative tier.
type ArithmeticOperation2 struct {
	Left  Node
	Right Node
	Op    Operator
}

type FnCall struct {
	Callee    Node
	Arguments []Node
}

type IndexAccess struct {
	Base  Node
	Index Node
}

type Number struct {
	Value float64
}

type Char struct {
	Value rune
}

type String struct {
	Value string
}

type Identifier struct {
	Name string
}

type Null struct{}

type Bool struct {
	Value bool
}

type Array struct {
	Elements []Node
}

type Entry struct {
	Key   Node
	Value Node
}

type Dictionary struct {
	Entries []Entry
}

type Unary struct {
	Op      Operator
	Operand Node
}

func (*Expressions) node()          {}
func (*If) node()                   {}
func (*For) node()                  {}
func (*While) node()                {}
func (*DoUntil) node()              {}
func (*Continue) node()             {}
func (*Break) node()                {}
func (*TryCatch) node()             {}
func (*Throw) node()                {}
func (*FunctionDefinition) node()   {}
func (*Return) node()               {}
func (*Include) node()              {}
func (*Run) node()                  {}
func (*Read) node()                 {}
func (*Print) node()                {}
func (*Assignment) node()           {}
func (*LogicalOperation) node()     {}
func (*ComparisonOperation) node()  {}
func (*ArithmeticOperation) node()  {}
func (*ArithmeticOperation2) node() {}
func (*FnCall) node()               {}
func (*IndexAccess) node()          {}
func (*Number) node()               {}
func (*Char) node()                 {}
func (*String) node()               {}
func (*Identifier) node()           {}
func (*Null) node()                 {}
func (*Bool) node()                 {}
func (*Array) node()                {}
func (*Dictionary) node()           {}
func (*Unary) node()                {}
