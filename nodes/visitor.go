package nodes

type Visitor interface {
	VisitExpressions(*Expressions)
	VisitIf(*If)
	VisitFor(*For)
	VisitWhile(*While)
	VisitDoUntil(*DoUntil)
	VisitContinue(*Continue)
	VisitBreak(*Break)
	VisitTryCatch(*TryCatch)
	VisitThrow(*Throw)
	VisitFunctionDefinition(*FunctionDefinition)
	VisitReturn(*Return)
	VisitInclude(*Include)
	VisitRun(*Run)
	VisitRead(*Read)
	VisitPrint(*Print)
	VisitAssignment(*Assignment)
	VisitLogicalOperation(*LogicalOperation)
	VisitComparisonOperation(*ComparisonOperation)
	VisitArithmeticOperation(*ArithmeticOperation)
	VisitArithmeticOperation2(*ArithmeticOperation2)
	VisitFnCall(*FnCall)
	VisitIndexAccess(*IndexAccess)
	VisitNumber(*Number)
	VisitChar(*Char)
	VisitString(*String)
	VisitIdentifier(*Identifier)
	VisitNull(*Null)
	VisitBool(*Bool)
	VisitArray(*Array)
	VisitDictionary(*Dictionary)
	VisitUnary(*Unary)
}

func (n *Expressions) Accept(v Visitor)          { v.VisitExpressions(n) }
func (n *If) Accept(v Visitor)                   { v.VisitIf(n) }
func (n *For) Accept(v Visitor)                  { v.VisitFor(n) }
func (n *While) Accept(v Visitor)                { v.VisitWhile(n) }
func (n *DoUntil) Accept(v Visitor)              { v.VisitDoUntil(n) }
func (n *Continue) Accept(v Visitor)             { v.VisitContinue(n) }
func (n *Break) Accept(v Visitor)                { v.VisitBreak(n) }
func (n *TryCatch) Accept(v Visitor)             { v.VisitTryCatch(n) }
func (n *Throw) Accept(v Visitor)                { v.VisitThrow(n) }
func (n *FunctionDefinition) Accept(v Visitor)   { v.VisitFunctionDefinition(n) }
func (n *Return) Accept(v Visitor)               { v.VisitReturn(n) }
func (n *Include) Accept(v Visitor)              { v.VisitInclude(n) }
func (n *Run) Accept(v Visitor)                  { v.VisitRun(n) }
func (n *Read) Accept(v Visitor)                 { v.VisitRead(n) }
func (n *Print) Accept(v Visitor)                { v.VisitPrint(n) }
func (n *Assignment) Accept(v Visitor)           { v.VisitAssignment(n) }
func (n *LogicalOperation) Accept(v Visitor)     { v.VisitLogicalOperation(n) }
func (n *ComparisonOperation) Accept(v Visitor)  { v.VisitComparisonOperation(n) }
func (n *ArithmeticOperation) Accept(v Visitor)  { v.VisitArithmeticOperation(n) }
func (n *ArithmeticOperation2) Accept(v Visitor) { v.VisitArithmeticOperation2(n) }
func (n *FnCall) Accept(v Visitor)               { v.VisitFnCall(n) }
func (n *IndexAccess) Accept(v Visitor)          { v.VisitIndexAccess(n) }
func (n *Number) Accept(v Visitor)               { v.VisitNumber(n) }
func (n *Char) Accept(v Visitor)                 { v.VisitChar(n) }
func (n *String) Accept(v Visitor)               { v.VisitString(n) }
func (n *Identifier) Accept(v Visitor)           { v.VisitIdentifier(n) }
func (n *Null) Accept(v Visitor)                 { v.VisitNull(n) }
func (n *Bool) Accept(v Visitor)                 { v.VisitBool(n) }
func (n *Array) Accept(v Visitor)                { v.VisitArray(n) }
func (n *Dictionary) Accept(v Visitor)           { v.VisitDictionary(n) }
func (n *Unary) Accept(v Visitor)                { v.VisitUnary(n) }

// Children returns the direct child nodes of n in source order. Absent
// optional children are left out.
func Children(n Node) []Node {
	c := new(childrenCollector)
	n.Accept(c)
	return c.nodes
}

type childrenCollector struct {
	nodes []Node
}

var _ Visitor = new(childrenCollector)

func (c *childrenCollector) add(nodes ...Node) {
	for _, n := range nodes {
		if isNil(n) {
			continue
		}
		c.nodes = append(c.nodes, n)
	}
}

func (c *childrenCollector) VisitExpressions(n *Expressions) {
	c.add(n.List...)
}

func (c *childrenCollector) VisitIf(n *If) {
	c.add(n.Condition, n.TrueBody, n.FalseBody)
}

func (c *childrenCollector) VisitFor(n *For) {
	c.add(n.Start, n.End, n.Step, n.Body)
}

func (c *childrenCollector) VisitWhile(n *While) {
	c.add(n.Condition, n.Body)
}

func (c *childrenCollector) VisitDoUntil(n *DoUntil) {
	c.add(n.Body, n.Condition)
}

func (c *childrenCollector) VisitContinue(*Continue) {}

func (c *childrenCollector) VisitBreak(*Break) {}

func (c *childrenCollector) VisitTryCatch(n *TryCatch) {
	c.add(n.TryBody, n.CatchBody)
}

func (c *childrenCollector) VisitThrow(n *Throw) {
	c.add(n.Value)
}

func (c *childrenCollector) VisitFunctionDefinition(n *FunctionDefinition) {
	c.add(n.Body)
}

func (c *childrenCollector) VisitReturn(n *Return) {
	c.add(n.Value)
}

func (c *childrenCollector) VisitInclude(*Include) {}

func (c *childrenCollector) VisitRun(*Run) {}

func (c *childrenCollector) VisitRead(*Read) {}

func (c *childrenCollector) VisitPrint(n *Print) {
	c.add(n.Expressions...)
}

func (c *childrenCollector) VisitAssignment(n *Assignment) {
	c.add(n.Indices...)
	c.add(n.Value)
}

func (c *childrenCollector) VisitLogicalOperation(n *LogicalOperation) {
	c.add(n.Left, n.Right)
}

func (c *childrenCollector) VisitComparisonOperation(n *ComparisonOperation) {
	c.add(n.Left, n.Right)
}

func (c *childrenCollector) VisitArithmeticOperation(n *ArithmeticOperation) {
	c.add(n.Left, n.Right)
}

func (c *childrenCollector) VisitArithmeticOperation2(n *ArithmeticOperation2) {
	c.add(n.Left, n.Right)
}

func (c *childrenCollector) VisitFnCall(n *FnCall) {
	c.add(n.Callee)
	c.add(n.Arguments...)
}

func (c *childrenCollector) VisitIndexAccess(n *IndexAccess) {
	c.add(n.Base, n.Index)
}

func (c *childrenCollector) VisitNumber(*Number) {}

func (c *childrenCollector) VisitChar(*Char) {}

func (c *childrenCollector) VisitString(*String) {}

func (c *childrenCollector) VisitIdentifier(*Identifier) {}

func (c *childrenCollector) VisitNull(*Null) {}

func (c *childrenCollector) VisitBool(*Bool) {}

func (c *childrenCollector) VisitArray(n *Array) {
	c.add(n.Elements...)
}

func (c *childrenCollector) VisitDictionary(n *Dictionary) {
	for _, entry := range n.Entries {
		c.add(entry.Key, entry.Value)
	}
}

func (c *childrenCollector) VisitUnary(n *Unary) {
	c.add(n.Operand)
}

// Inspect traverses the tree rooted at n in depth-first pre-order. If fn
// returns false the children of that node are skipped.
func Inspect(n Node, fn func(Node) bool) {
	if !fn(n) {
		return
	}
	for _, child := range Children(n) {
		Inspect(child, fn)
	}
}
