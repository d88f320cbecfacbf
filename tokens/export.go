package tokens

// Export converts tokens into plain values for encoders and the debug tap.
func Export(toks []Token) []any {
	ret := make([]any, 0, len(toks))
	for _, tok := range toks {
		m := map[string]any{
			"kind":   tok.Kind.String(),
			"line":   tok.Pos.Line,
			"column": tok.Pos.Column,
		}
		switch tok.Kind {
		case Number:
			m["value"] = tok.Number
		case Char:
			m["value"] = string(tok.Char)
		case String, Identifier:
			m["value"] = tok.Text
		}
		ret = append(ret, m)
	}
	return ret
}
