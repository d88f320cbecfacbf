package tokens

import (
	"errors"
	"strings"
	"testing"
)

func TestScan(t *testing.T) {
	type TokenInfo struct {
		Kind Kind
		Text string
	}

	tests := []struct {
		input  string
		tokens []TokenInfo
	}{
		{
			input:  "",
			tokens: nil,
		},
		{
			input: "let x <- 42",
			tokens: []TokenInfo{
				{Let, ""},
				{Identifier, "x"},
				{Assignment, ""},
				{Number, ""},
			},
		},
		{
			input: "Foo_bar9 _x if iffy",
			tokens: []TokenInfo{
				{Identifier, "Foo_bar9"},
				{Identifier, "_x"},
				{If, ""},
				{Identifier, "iffy"},
			},
		},
		{
			input: "< <= <> <- > >= = + - * / %",
			tokens: []TokenInfo{
				{Less, ""},
				{LessEqual, ""},
				{Different, ""},
				{Assignment, ""},
				{Greater, ""},
				{GreaterEqual, ""},
				{Equals, ""},
				{Plus, ""},
				{Minus, ""},
				{Multiply, ""},
				{Divide, ""},
				{Modulo, ""},
			},
		},
		{
			input: "a<-b>=c",
			tokens: []TokenInfo{
				{Identifier, "a"},
				{Assignment, ""},
				{Identifier, "b"},
				{GreaterEqual, ""},
				{Identifier, "c"},
			},
		},
		{
			input: "( ) [ ] { } , :",
			tokens: []TokenInfo{
				{ParenLeft, ""},
				{ParenRight, ""},
				{BracketLeft, ""},
				{BracketRight, ""},
				{CurlyLeft, ""},
				{CurlyRight, ""},
				{Comma, ""},
				{Colon, ""},
			},
		},
		{
			input: "a\n\tb\r\n",
			tokens: []TokenInfo{
				{Identifier, "a"},
				{Endline, ""},
				{Identifier, "b"},
				{Endline, ""},
			},
		},
		{
			input: "x $ comment <- ~ \"\ny",
			tokens: []TokenInfo{
				{Identifier, "x"},
				{Endline, ""},
				{Identifier, "y"},
			},
		},
		{
			input: `"hello" "" "say \"hi\""`,
			tokens: []TokenInfo{
				{String, "hello"},
				{String, ""},
				{String, `say "hi"`},
			},
		},
		{
			input: "null true false and or",
			tokens: []TokenInfo{
				{Null, ""},
				{True, ""},
				{False, ""},
				{And, ""},
				{Or, ""},
			},
		},
	}

	for _, test := range tests {
		toks, err := Scan(test.input)
		if err != nil {
			t.Fatalf("%q: %v", test.input, err)
		}
		if len(toks) != len(test.tokens) {
			t.Fatalf("%q: got %v", test.input, toks)
		}
		for i, expected := range test.tokens {
			tok := toks[i]
			if tok.Kind != expected.Kind {
				t.Fatalf("%q: token %d: got %v, expected %v", test.input, i, tok.Kind, expected.Kind)
			}
			if tok.Text != expected.Text {
				t.Fatalf("%q: token %d: got %q, expected %q", test.input, i, tok.Text, expected.Text)
			}
		}
	}
}

func TestScanNumbers(t *testing.T) {
	toks, err := Scan("123 45.67 0.89 .42 7.")
	if err != nil {
		t.Fatal(err)
	}
	expected := []float64{123, 45.67, 0.89, 0.42, 7}
	if len(toks) != len(expected) {
		t.Fatalf("got %v", toks)
	}
	for i, tok := range toks {
		if tok.Kind != Number {
			t.Fatalf("got %v", tok)
		}
		if tok.Number != expected[i] {
			t.Fatalf("got %v, expected %v", tok.Number, expected[i])
		}
	}
}

func TestScanEscapes(t *testing.T) {
	toks, err := Scan(`"a\nb" "\0\r\t\\\'\""`)
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != 2 {
		t.Fatalf("got %v", toks)
	}
	if toks[0].Text != "a\nb" {
		t.Fatalf("got %q", toks[0].Text)
	}
	if toks[1].Text != "\x00\r\t\\'\"" {
		t.Fatalf("got %q", toks[1].Text)
	}
}

func TestScanChars(t *testing.T) {
	toks, err := Scan(`'a' '\n' '\'' '"' '''`)
	if err != nil {
		t.Fatal(err)
	}
	expected := []rune{'a', '\n', '\'', '"', '\''}
	if len(toks) != len(expected) {
		t.Fatalf("got %v", toks)
	}
	for i, tok := range toks {
		if tok.Kind != Char {
			t.Fatalf("got %v", tok)
		}
		if tok.Char != expected[i] {
			t.Fatalf("got %q, expected %q", tok.Char, expected[i])
		}
	}
}

func TestScanPositions(t *testing.T) {
	toks, err := Scan("let x\n  print  \"é\" y")
	if err != nil {
		t.Fatal(err)
	}
	expected := []Pos{
		{Offset: 0, Line: 1, Column: 1},
		{Offset: 4, Line: 1, Column: 5},
		{Offset: 5, Line: 1, Column: 6},
		{Offset: 8, Line: 2, Column: 3},
		{Offset: 15, Line: 2, Column: 10},
		{Offset: 20, Line: 2, Column: 14},
	}
	if len(toks) != len(expected) {
		t.Fatalf("got %v", toks)
	}
	for i, tok := range toks {
		if tok.Pos != expected[i] {
			t.Fatalf("token %d: got %+v, expected %+v", i, tok.Pos, expected[i])
		}
	}
}

func TestScanTokenCount(t *testing.T) {
	for _, input := range []string{
		"let x <- foo ( 1 , 2.5 , 'c' , \"s\" )",
		"if a <= b and c <> d then print x end",
		"for i <- 1 , 10 , 2 execute print i end",
		"let d <- { 1 : [ ] }",
	} {
		toks, err := Scan(input)
		if err != nil {
			t.Fatal(err)
		}
		if len(toks) != len(strings.Fields(input)) {
			t.Fatalf("%q: got %d tokens", input, len(toks))
		}
	}
}

func TestScanErrors(t *testing.T) {
	tests := []struct {
		input string
		errs  []error
		pos   []Pos
	}{
		{
			input: "123.45.67",
			errs:  []error{ErrMultipleDecimalPoints},
			pos:   []Pos{{Offset: 6, Line: 1, Column: 7}},
		},
		{
			input: "~",
			errs:  []error{ErrUnknownCharacter},
			pos:   []Pos{{Offset: 0, Line: 1, Column: 1}},
		},
		{
			input: "x\n  ~",
			errs:  []error{ErrUnknownCharacter},
			pos:   []Pos{{Offset: 4, Line: 2, Column: 3}},
		},
		{
			input: "1" + strings.Repeat("0", 400),
			errs:  []error{ErrInvalidNumber},
			pos:   []Pos{{Offset: 0, Line: 1, Column: 1}},
		},
		{
			input: `print "abc`,
			errs:  []error{ErrExpectedQuote},
			pos:   []Pos{{Offset: 6, Line: 1, Column: 7}},
		},
		{
			input: `"a\qb"`,
			errs:  []error{ErrInvalidEscapeSequence},
			pos:   []Pos{{Offset: 3, Line: 1, Column: 4}},
		},
		{
			input: `'\q'`,
			errs:  []error{ErrInvalidEscapeSequence},
			pos:   []Pos{{Offset: 2, Line: 1, Column: 3}},
		},
		{
			input: `'a`,
			errs:  []error{ErrExpectedApostrophe},
			pos:   []Pos{{Offset: 0, Line: 1, Column: 1}},
		},
		{
			input: `'ab' x`,
			errs:  []error{ErrExpectedApostrophe, ErrExpectedApostrophe},
			pos: []Pos{
				{Offset: 2, Line: 1, Column: 3},
				// the second apostrophe opens a new literal holding ' '
				{Offset: 5, Line: 1, Column: 6},
			},
		},
		{
			input: "~ 1.2.3 @\n\"open",
			errs: []error{
				ErrUnknownCharacter,
				ErrMultipleDecimalPoints,
				ErrUnknownCharacter,
				ErrExpectedQuote,
			},
			pos: []Pos{
				{Offset: 0, Line: 1, Column: 1},
				{Offset: 5, Line: 1, Column: 6},
				{Offset: 8, Line: 1, Column: 9},
				{Offset: 10, Line: 2, Column: 1},
			},
		},
		{
			input: ". é",
			errs:  []error{ErrUnknownCharacter, ErrUnknownCharacter},
			pos: []Pos{
				{Offset: 0, Line: 1, Column: 1},
				{Offset: 2, Line: 1, Column: 3},
			},
		},
	}

	for _, test := range tests {
		toks, err := Scan(test.input)
		if err == nil {
			t.Fatalf("%q: should fail", test.input)
		}
		if toks != nil {
			t.Fatalf("%q: got tokens %v", test.input, toks)
		}
		var errs LexicalErrors
		if !errors.As(err, &errs) {
			t.Fatalf("%q: got %T", test.input, err)
		}
		if len(errs) != len(test.errs) {
			t.Fatalf("%q: got %v", test.input, err)
		}
		for i, e := range errs {
			if !errors.Is(e, test.errs[i]) {
				t.Fatalf("%q: error %d: got %v", test.input, i, e.Err)
			}
			if e.Pos != test.pos[i] {
				t.Fatalf("%q: error %d: got %+v, expected %+v", test.input, i, e.Pos, test.pos[i])
			}
		}
		if !errors.Is(err, test.errs[0]) {
			t.Fatalf("%q: errors.Is on the set failed", test.input)
		}
	}
}

func TestScanErrorLine(t *testing.T) {
	_, err := Scan("let a <- 1\nlet b <- ~\r\nlet c <- 3")
	var errs LexicalErrors
	if !errors.As(err, &errs) {
		t.Fatalf("got %v", err)
	}
	if len(errs) != 1 {
		t.Fatalf("got %v", errs)
	}
	if errs[0].Line != "let b <- ~" {
		t.Fatalf("got %q", errs[0].Line)
	}
}
