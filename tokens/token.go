package tokens

import (
	"fmt"
	"strconv"
)

type Pos struct {
	Offset int // byte offset into the source
	Line   int // 1-based
	Column int // 1-based, in runes
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a classified lexical unit. Number, Char and Text hold the payload
// of Number, Char, and String/Identifier tokens respectively.
type Token struct {
	Kind   Kind
	Number float64
	Char   rune
	Text   string
	Pos    Pos
}

func (t Token) String() string {
	switch t.Kind {
	case Number:
		return "number " + strconv.FormatFloat(t.Number, 'g', -1, 64)
	case Char:
		return "character " + strconv.QuoteRune(t.Char)
	case String:
		return "string " + strconv.Quote(t.Text)
	case Identifier:
		return "identifier " + t.Text
	case Endline:
		return "end of line"
	}
	return "'" + t.Kind.String() + "'"
}
