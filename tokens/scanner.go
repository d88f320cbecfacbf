package tokens

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	eof         = -1
	commentChar = '$'
)

var escapes = map[rune]rune{
	'0':  0,
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'\\': '\\',
	'\'': '\'',
	'"':  '"',
}

// Scan converts source into tokens. It always scans the whole input: every
// lexical error is recorded, the offending character skipped and scanning
// resumed. If any error was found the result is nil and a LexicalErrors.
func Scan(source string) ([]Token, error) {
	s := &scanner{
		src:    source,
		line:   1,
		column: 1,
	}
	s.run()
	if len(s.errs) > 0 {
		return nil, s.errs
	}
	return s.tokens, nil
}

type scanner struct {
	src    string
	offset int
	line   int
	column int

	tokens []Token
	errs   LexicalErrors
}

func (s *scanner) run() {
	for {
		r := s.peek()
		if r == eof {
			return
		}
		switch {
		case r == '\n':
			start := s.pos()
			s.advance()
			s.emit(Token{Kind: Endline, Pos: start})
		case r == commentChar:
			s.skipComment()
		case unicode.IsSpace(r):
			s.advance()
		case isDigit(r) || r == '.' && isDigit(s.peekNext()):
			s.scanNumber()
		case r == '\'':
			s.scanChar()
		case r == '"':
			s.scanString()
		case isIdentifierStart(r):
			s.scanWord()
		default:
			s.scanOperator()
		}
	}
}

func (s *scanner) pos() Pos {
	return Pos{
		Offset: s.offset,
		Line:   s.line,
		Column: s.column,
	}
}

func (s *scanner) peek() rune {
	if s.offset >= len(s.src) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(s.src[s.offset:])
	return r
}

func (s *scanner) peekNext() rune {
	if s.offset >= len(s.src) {
		return eof
	}
	_, size := utf8.DecodeRuneInString(s.src[s.offset:])
	if s.offset+size >= len(s.src) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(s.src[s.offset+size:])
	return r
}

func (s *scanner) advance() rune {
	if s.offset >= len(s.src) {
		panic("scanner: advance past end of input")
	}
	r, size := utf8.DecodeRuneInString(s.src[s.offset:])
	s.offset += size
	if r == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return r
}

func (s *scanner) emit(tok Token) {
	s.tokens = append(s.tokens, tok)
}

func (s *scanner) fail(err error, pos Pos) {
	s.errs = append(s.errs, &LexicalError{
		Err:  err,
		Pos:  pos,
		Line: s.lineText(pos),
	})
}

func (s *scanner) lineText(pos Pos) string {
	start := strings.LastIndexByte(s.src[:pos.Offset], '\n') + 1
	end := len(s.src)
	if idx := strings.IndexByte(s.src[pos.Offset:], '\n'); idx >= 0 {
		end = pos.Offset + idx
	}
	return strings.TrimSuffix(s.src[start:end], "\r")
}

func (s *scanner) skipComment() {
	for {
		r := s.peek()
		if r == eof || r == '\n' {
			return
		}
		s.advance()
	}
}

func (s *scanner) scanNumber() {
	start := s.pos()
	dots := 0
	valid := true
	for {
		r := s.peek()
		if isDigit(r) {
			s.advance()
			continue
		}
		if r == '.' {
			dots++
			if dots > 1 {
				s.fail(ErrMultipleDecimalPoints, s.pos())
				valid = false
			}
			s.advance()
			continue
		}
		break
	}
	if !valid {
		return
	}

	lexeme := s.src[start.Offset:s.offset]
	value, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		s.fail(ErrInvalidNumber, start)
		return
	}
	s.emit(Token{
		Kind:   Number,
		Number: value,
		Pos:    start,
	})
}

// scanEscape is called with the cursor on the character following a
// backslash, which must not be the end of the line.
func (s *scanner) scanEscape() (rune, bool) {
	pos := s.pos()
	r := s.advance()
	decoded, ok := escapes[r]
	if !ok {
		s.fail(withChar(ErrInvalidEscapeSequence, r), pos)
		return 0, false
	}
	return decoded, true
}

func (s *scanner) scanChar() {
	start := s.pos()
	s.advance() // '

	r := s.peek()
	if r == eof || r == '\n' {
		s.fail(ErrExpectedApostrophe, start)
		return
	}

	var value rune
	valid := true
	if r == '\\' {
		s.advance()
		if r := s.peek(); r == eof || r == '\n' {
			s.fail(ErrExpectedApostrophe, start)
			return
		}
		value, valid = s.scanEscape()
	} else {
		value = s.advance()
	}

	switch r := s.peek(); r {
	case '\'':
		s.advance()
	case eof, '\n':
		s.fail(ErrExpectedApostrophe, start)
		return
	default:
		s.fail(ErrExpectedApostrophe, s.pos())
		s.advance()
		return
	}

	if valid {
		s.emit(Token{
			Kind: Char,
			Char: value,
			Pos:  start,
		})
	}
}

func (s *scanner) scanString() {
	start := s.pos()
	s.advance() // "

	var sb strings.Builder
	valid := true
	for {
		r := s.peek()
		switch r {

		case eof, '\n':
			s.fail(ErrExpectedQuote, start)
			return

		case '"':
			s.advance()
			if valid {
				s.emit(Token{
					Kind: String,
					Text: sb.String(),
					Pos:  start,
				})
			}
			return

		case '\\':
			s.advance()
			if r := s.peek(); r == eof || r == '\n' {
				continue
			}
			decoded, ok := s.scanEscape()
			if !ok {
				valid = false
				continue
			}
			sb.WriteRune(decoded)

		default:
			sb.WriteRune(s.advance())
		}
	}
}

func (s *scanner) scanWord() {
	start := s.pos()
	for isIdentifierChar(s.peek()) {
		s.advance()
	}
	word := s.src[start.Offset:s.offset]
	kind := Lookup(word)
	tok := Token{
		Kind: kind,
		Pos:  start,
	}
	if kind == Identifier {
		tok.Text = word
	}
	s.emit(tok)
}

func (s *scanner) scanOperator() {
	start := s.pos()
	r := s.advance()

	var kind Kind
	switch r {
	case '+':
		kind = Plus
	case '-':
		kind = Minus
	case '*':
		kind = Multiply
	case '/':
		kind = Divide
	case '%':
		kind = Modulo
	case '=':
		kind = Equals
	case '<':
		kind = Less
		switch s.peek() {
		case '=':
			kind = LessEqual
		case '>':
			kind = Different
		case '-':
			kind = Assignment
		}
		if kind != Less {
			s.advance()
		}
	case '>':
		kind = Greater
		if s.peek() == '=' {
			s.advance()
			kind = GreaterEqual
		}
	case '(':
		kind = ParenLeft
	case ')':
		kind = ParenRight
	case '[':
		kind = BracketLeft
	case ']':
		kind = BracketRight
	case '{':
		kind = CurlyLeft
	case '}':
		kind = CurlyRight
	case ',':
		kind = Comma
	case ':':
		kind = Colon
	default:
		s.fail(withChar(ErrUnknownCharacter, r), start)
		return
	}

	s.emit(Token{
		Kind: kind,
		Pos:  start,
	})
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentifierStart(r rune) bool {
	return r >= 'a' && r <= 'z' ||
		r >= 'A' && r <= 'Z' ||
		r == '_'
}

func isIdentifierChar(r rune) bool {
	return isIdentifierStart(r) || isDigit(r)
}
