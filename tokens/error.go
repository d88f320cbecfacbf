package tokens

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

var (
	ErrMultipleDecimalPoints = errors.New("multiple decimal points in number")
	ErrInvalidNumber         = errors.New("invalid number")
	ErrInvalidEscapeSequence = errors.New("invalid escape sequence")
	ErrExpectedApostrophe    = errors.New("expected ' (apostrophe)")
	ErrExpectedQuote         = errors.New("expected \" (double quote)")
	ErrUnknownCharacter      = errors.New("unknown character")
)

// LexicalError is one failure found by Scan. Line is the full text of the
// source line containing Pos.
type LexicalError struct {
	Err  error
	Pos  Pos
	Line string
}

func (e *LexicalError) Error() string {
	var sb strings.Builder
	WriteDiagnostic(&sb, e.Err.Error(), e.Line, e.Pos)
	return sb.String()
}

func (e *LexicalError) Unwrap() error {
	return e.Err
}

// LexicalErrors holds every error of a single scan, in source order.
type LexicalErrors []*LexicalError

func (l LexicalErrors) Error() string {
	var sb strings.Builder
	for i, e := range l {
		if i > 0 {
			sb.WriteString("\n")
		}
		WriteDiagnostic(&sb, e.Err.Error(), e.Line, e.Pos)
	}
	return sb.String()
}

func (l LexicalErrors) Unwrap() []error {
	ret := make([]error, 0, len(l))
	for _, e := range l {
		ret = append(ret, e)
	}
	return ret
}

func withChar(err error, r rune) error {
	return fmt.Errorf("%w %q", err, r)
}

const gutterWidth = 4

// WriteDiagnostic renders
//
//	Error: <message>
//
//	   1 | <line>
//	       ^-- Here
//
// with the caret under pos.Column of line.
func WriteDiagnostic(sb *strings.Builder, message string, line string, pos Pos) {
	sb.WriteString("Error: ")
	sb.WriteString(message)
	sb.WriteString("\n\n")

	gutter := fmt.Sprintf("%*d | ", gutterWidth, pos.Line)
	sb.WriteString(gutter)
	sb.WriteString(line)
	sb.WriteString("\n")

	sb.WriteString(strings.Repeat(" ", len(gutter)))
	col := pos.Column - 1
	for i, r := range []rune(line) {
		if i >= col {
			break
		}
		if r == '\t' {
			sb.WriteString("\t")
		} else {
			sb.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
		}
	}
	sb.WriteString("^-- Here\n")
}

// LineAt returns the text of the 1-based line n of source, without its
// terminator.
func LineAt(source string, n int) string {
	for i := 1; i < n; i++ {
		idx := strings.IndexByte(source, '\n')
		if idx < 0 {
			return ""
		}
		source = source[idx+1:]
	}
	if idx := strings.IndexByte(source, '\n'); idx >= 0 {
		source = source[:idx]
	}
	return strings.TrimSuffix(source, "\r")
}
