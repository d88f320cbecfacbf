package nodes

// Export converts a tree into plain maps and slices. Every node becomes a
// map[string]any with a "kind" key; absent optional parts are nil.
func Export(n Node) any {
	if isNil(n) {
		return nil
	}
	x := new(exporter)
	n.Accept(x)
	return x.value
}

func isNil(n Node) bool {
	if n == nil {
		return true
	}
	if e, ok := n.(*Expressions); ok && e == nil {
		return true
	}
	return false
}

func exportList(list []Node) []any {
	ret := make([]any, 0, len(list))
	for _, n := range list {
		ret = append(ret, Export(n))
	}
	return ret
}

func exportStrings(list []string) []any {
	ret := make([]any, 0, len(list))
	for _, s := range list {
		ret = append(ret, s)
	}
	return ret
}

func optionalString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

type exporter struct {
	value any
}

var _ Visitor = new(exporter)

func (x *exporter) VisitExpressions(n *Expressions) {
	x.value = map[string]any{
		"kind": "Expressions",
		"list": exportList(n.List),
	}
}

func (x *exporter) VisitIf(n *If) {
	x.value = map[string]any{
		"kind":       "If",
		"condition":  Export(n.Condition),
		"true_body":  Export(n.TrueBody),
		"false_body": Export(n.FalseBody),
	}
}

func (x *exporter) VisitFor(n *For) {
	x.value = map[string]any{
		"kind":       "For",
		"identifier": n.Identifier,
		"start":      Export(n.Start),
		"end":        Export(n.End),
		"step":       Export(n.Step),
		"body":       Export(n.Body),
	}
}

func (x *exporter) VisitWhile(n *While) {
	x.value = map[string]any{
		"kind":      "While",
		"condition": Export(n.Condition),
		"body":      Export(n.Body),
	}
}

func (x *exporter) VisitDoUntil(n *DoUntil) {
	x.value = map[string]any{
		"kind":      "DoUntil",
		"body":      Export(n.Body),
		"condition": Export(n.Condition),
	}
}

func (x *exporter) VisitContinue(*Continue) {
	x.value = map[string]any{
		"kind": "Continue",
	}
}

func (x *exporter) VisitBreak(*Break) {
	x.value = map[string]any{
		"kind": "Break",
	}
}

func (x *exporter) VisitTryCatch(n *TryCatch) {
	x.value = map[string]any{
		"kind":             "TryCatch",
		"try_body":         Export(n.TryBody),
		"catch_identifier": n.CatchIdentifier,
		"catch_body":       Export(n.CatchBody),
	}
}

func (x *exporter) VisitThrow(n *Throw) {
	x.value = map[string]any{
		"kind":  "Throw",
		"value": Export(n.Value),
	}
}

func (x *exporter) VisitFunctionDefinition(n *FunctionDefinition) {
	x.value = map[string]any{
		"kind":       "FunctionDefinition",
		"identifier": n.Identifier,
		"parameters": exportStrings(n.Parameters),
		"body":       Export(n.Body),
	}
}

func (x *exporter) VisitReturn(n *Return) {
	x.value = map[string]any{
		"kind":  "Return",
		"value": Export(n.Value),
	}
}

func (x *exporter) VisitInclude(n *Include) {
	x.value = map[string]any{
		"kind": "Include",
		"path": n.Path,
	}
}

func (x *exporter) VisitRun(n *Run) {
	x.value = map[string]any{
		"kind": "Run",
		"path": n.Path,
	}
}

func (x *exporter) VisitRead(n *Read) {
	x.value = map[string]any{
		"kind":        "Read",
		"file":        optionalString(n.File),
		"identifiers": exportStrings(n.Identifiers),
	}
}

func (x *exporter) VisitPrint(n *Print) {
	x.value = map[string]any{
		"kind":        "Print",
		"file":        optionalString(n.File),
		"expressions": exportList(n.Expressions),
	}
}

func (x *exporter) VisitAssignment(n *Assignment) {
	x.value = map[string]any{
		"kind":       "Assignment",
		"identifier": n.Identifier,
		"indices":    exportList(n.Indices),
		"value":      Export(n.Value),
	}
}

func (x *exporter) binary(kind string, left, right Node, op Operator) {
	x.value = map[string]any{
		"kind":  kind,
		"op":    op.String(),
		"left":  Export(left),
		"right": Export(right),
	}
}

func (x *exporter) VisitLogicalOperation(n *LogicalOperation) {
	x.binary("LogicalOperation", n.Left, n.Right, n.Op)
}

func (x *exporter) VisitComparisonOperation(n *ComparisonOperation) {
	x.binary("ComparisonOperation", n.Left, n.Right, n.Op)
}

func (x *exporter) VisitArithmeticOperation(n *ArithmeticOperation) {
	x.binary("ArithmeticOperation", n.Left, n.Right, n.Op)
}

func (x *exporter) VisitArithmeticOperation2(n *ArithmeticOperation2) {
	x.binary("ArithmeticOperation2", n.Left, n.Right, n.Op)
}

func (x *exporter) VisitFnCall(n *FnCall) {
	x.value = map[string]any{
		"kind":      "FnCall",
		"callee":    Export(n.Callee),
		"arguments": exportList(n.Arguments),
	}
}

func (x *exporter) VisitIndexAccess(n *IndexAccess) {
	x.value = map[string]any{
		"kind":  "IndexAccess",
		"base":  Export(n.Base),
		"index": Export(n.Index),
	}
}

func (x *exporter) VisitNumber(n *Number) {
	x.value = map[string]any{
		"kind":  "Number",
		"value": n.Value,
	}
}

func (x *exporter) VisitChar(n *Char) {
	x.value = map[string]any{
		"kind":  "Char",
		"value": string(n.Value),
	}
}

func (x *exporter) VisitString(n *String) {
	x.value = map[string]any{
		"kind":  "String",
		"value": n.Value,
	}
}

func (x *exporter) VisitIdentifier(n *Identifier) {
	x.value = map[string]any{
		"kind": "Identifier",
		"name": n.Name,
	}
}

func (x *exporter) VisitNull(*Null) {
	x.value = map[string]any{
		"kind": "Null",
	}
}

func (x *exporter) VisitBool(n *Bool) {
	x.value = map[string]any{
		"kind":  "Bool",
		"value": n.Value,
	}
}

func (x *exporter) VisitArray(n *Array) {
	x.value = map[string]any{
		"kind":     "Array",
		"elements": exportList(n.Elements),
	}
}

func (x *exporter) VisitDictionary(n *Dictionary) {
	entries := make([]any, 0, len(n.Entries))
	for _, entry := range n.Entries {
		entries = append(entries, map[string]any{
			"key":   Export(entry.Key),
			"value": Export(entry.Value),
		})
	}
	x.value = map[string]any{
		"kind":    "Dictionary",
		"entries": entries,
	}
}

func (x *exporter) VisitUnary(n *Unary) {
	x.value = map[string]any{
		"kind":    "Unary",
		"op":      n.Op.String(),
		"operand": Export(n.Operand),
	}
}
