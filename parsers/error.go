package parsers

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/reusee/pseudo/tokens"
)

// ParseError reports the first token that no grammar rule accepts. AtEnd is
// set when the input ran out; Found.Pos is then the position of the last
// token.
type ParseError struct {
	Expected string
	Found    tokens.Token
	AtEnd    bool
}

func (e *ParseError) message() string {
	found := e.Found.String()
	if e.AtEnd {
		found = "end of input"
	}
	return fmt.Sprintf("expected %s, found %s", e.Expected, found)
}

func (e *ParseError) Error() string {
	if e.AtEnd {
		return e.message()
	}
	return fmt.Sprintf("line %d, column %d: %s", e.Found.Pos.Line, e.Found.Pos.Column, e.message())
}

// Diagnose renders the error against the source it was parsed from, in the
// same layout as lexical errors.
func (e *ParseError) Diagnose(source string) string {
	pos := e.Found.Pos
	if e.AtEnd {
		pos = endPos(source)
	}
	var sb strings.Builder
	tokens.WriteDiagnostic(&sb, e.message(), tokens.LineAt(source, pos.Line), pos)
	return sb.String()
}

// endPos returns the position just after the last non-space character.
func endPos(source string) tokens.Pos {
	source = strings.TrimRightFunc(source, unicode.IsSpace)
	line := 1 + strings.Count(source, "\n")
	last := source[strings.LastIndexByte(source, '\n')+1:]
	return tokens.Pos{
		Offset: len(source),
		Line:   line,
		Column: utf8.RuneCountInString(last) + 1,
	}
}
