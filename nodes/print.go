package nodes

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Fprint writes the tree rooted at n to w, one node per line, children
// indented under their parent.
func Fprint(w io.Writer, n Node) error {
	p := &printer{
		w: w,
	}
	p.node("", n)
	return p.err
}

type printer struct {
	w     io.Writer
	depth int
	err   error
}

var _ Visitor = new(printer)

func (p *printer) line(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, "%s%s\n", strings.Repeat("  ", p.depth), fmt.Sprintf(format, args...))
}

// node prints n one level deeper, under a label line when label is set.
func (p *printer) node(label string, n Node) {
	if isNil(n) {
		return
	}
	if label != "" {
		p.line("%s:", label)
		p.depth++
		defer func() {
			p.depth--
		}()
	}
	n.Accept(p)
}

func (p *printer) children(list []Node) {
	p.depth++
	for _, n := range list {
		p.node("", n)
	}
	p.depth--
}

func (p *printer) fields(labels []string, list []Node) {
	p.depth++
	for i, n := range list {
		p.node(labels[i], n)
	}
	p.depth--
}

func (p *printer) VisitExpressions(n *Expressions) {
	p.line("Expressions")
	p.children(n.List)
}

func (p *printer) VisitIf(n *If) {
	p.line("If")
	p.fields(
		[]string{"condition", "then", "else"},
		[]Node{n.Condition, n.TrueBody, n.FalseBody},
	)
}

func (p *printer) VisitFor(n *For) {
	p.line("For %s", n.Identifier)
	p.fields(
		[]string{"start", "end", "step", "body"},
		[]Node{n.Start, n.End, n.Step, n.Body},
	)
}

func (p *printer) VisitWhile(n *While) {
	p.line("While")
	p.fields(
		[]string{"condition", "body"},
		[]Node{n.Condition, n.Body},
	)
}

func (p *printer) VisitDoUntil(n *DoUntil) {
	p.line("DoUntil")
	p.fields(
		[]string{"body", "condition"},
		[]Node{n.Body, n.Condition},
	)
}

func (p *printer) VisitContinue(*Continue) {
	p.line("Continue")
}

func (p *printer) VisitBreak(*Break) {
	p.line("Break")
}

func (p *printer) VisitTryCatch(n *TryCatch) {
	p.line("TryCatch %s", n.CatchIdentifier)
	p.fields(
		[]string{"try", "catch"},
		[]Node{n.TryBody, n.CatchBody},
	)
}

func (p *printer) VisitThrow(n *Throw) {
	p.line("Throw")
	p.children([]Node{n.Value})
}

func (p *printer) VisitFunctionDefinition(n *FunctionDefinition) {
	p.line("FunctionDefinition %s(%s)", n.Identifier, strings.Join(n.Parameters, ", "))
	p.children([]Node{n.Body})
}

func (p *printer) VisitReturn(n *Return) {
	p.line("Return")
	p.children([]Node{n.Value})
}

func (p *printer) VisitInclude(n *Include) {
	p.line("Include %s", strconv.Quote(n.Path))
}

func (p *printer) VisitRun(n *Run) {
	p.line("Run %s", strconv.Quote(n.Path))
}

func redirection(file string) string {
	if file == "" {
		return ""
	}
	return " <" + file + ">"
}

func (p *printer) VisitRead(n *Read) {
	p.line("Read%s %s", redirection(n.File), strings.Join(n.Identifiers, ", "))
}

func (p *printer) VisitPrint(n *Print) {
	p.line("Print%s", redirection(n.File))
	p.children(n.Expressions)
}

func (p *printer) VisitAssignment(n *Assignment) {
	p.line("Assignment %s", n.Identifier)
	p.depth++
	for _, index := range n.Indices {
		p.node("index", index)
	}
	p.node("value", n.Value)
	p.depth--
}

func (p *printer) binary(kind string, left, right Node, op Operator) {
	p.line("%s %s", kind, op)
	p.children([]Node{left, right})
}

func (p *printer) VisitLogicalOperation(n *LogicalOperation) {
	p.binary("LogicalOperation", n.Left, n.Right, n.Op)
}

func (p *printer) VisitComparisonOperation(n *ComparisonOperation) {
	p.binary("ComparisonOperation", n.Left, n.Right, n.Op)
}

func (p *printer) VisitArithmeticOperation(n *ArithmeticOperation) {
	p.binary("ArithmeticOperation", n.Left, n.Right, n.Op)
}

func (p *printer) VisitArithmeticOperation2(n *ArithmeticOperation2) {
	p.binary("ArithmeticOperation2", n.Left, n.Right, n.Op)
}

func (p *printer) VisitFnCall(n *FnCall) {
	p.line("FnCall")
	p.depth++
	p.node("callee", n.Callee)
	for _, arg := range n.Arguments {
		p.node("argument", arg)
	}
	p.depth--
}

func (p *printer) VisitIndexAccess(n *IndexAccess) {
	p.line("IndexAccess")
	p.fields(
		[]string{"base", "index"},
		[]Node{n.Base, n.Index},
	)
}

func (p *printer) VisitNumber(n *Number) {
	p.line("Number %s", strconv.FormatFloat(n.Value, 'g', -1, 64))
}

func (p *printer) VisitChar(n *Char) {
	p.line("Char %s", strconv.QuoteRune(n.Value))
}

func (p *printer) VisitString(n *String) {
	p.line("String %s", strconv.Quote(n.Value))
}

func (p *printer) VisitIdentifier(n *Identifier) {
	p.line("Identifier %s", n.Name)
}

func (p *printer) VisitNull(*Null) {
	p.line("Null")
}

func (p *printer) VisitBool(n *Bool) {
	p.line("Bool %t", n.Value)
}

func (p *printer) VisitArray(n *Array) {
	p.line("Array")
	p.children(n.Elements)
}

func (p *printer) VisitDictionary(n *Dictionary) {
	p.line("Dictionary")
	p.depth++
	for _, entry := range n.Entries {
		p.node("key", entry.Key)
		p.node("value", entry.Value)
	}
	p.depth--
}

func (p *printer) VisitUnary(n *Unary) {
	p.line("Unary %s", n.Op)
	p.children([]Node{n.Operand})
}
