package tokens

import (
	"errors"
	"strings"
	"testing"
)

func TestDiagnostic(t *testing.T) {
	_, err := Scan("x ~ y")
	if err == nil {
		t.Fatal("should fail")
	}
	expected := "Error: unknown character '~'\n" +
		"\n" +
		"   1 | x ~ y\n" +
		"         ^-- Here\n"
	if got := err.Error(); got != expected {
		t.Fatalf("got\n%s", got)
	}
}

func TestDiagnosticTabs(t *testing.T) {
	_, err := Scan("\tlet\t~")
	var errs LexicalErrors
	if !errors.As(err, &errs) {
		t.Fatalf("got %v", err)
	}
	lines := strings.Split(errs[0].Error(), "\n")
	if lines[2] != "   1 | \tlet\t~" {
		t.Fatalf("got %q", lines[2])
	}
	if lines[3] != "       \t   \t^-- Here" {
		t.Fatalf("got %q", lines[3])
	}
}

func TestDiagnosticMultiple(t *testing.T) {
	_, err := Scan("@\n\n\n\n\n\n\n\n\n#")
	if err == nil {
		t.Fatal("should fail")
	}
	str := err.Error()
	if strings.Count(str, "^-- Here") != 2 {
		t.Fatalf("got %s", str)
	}
	if !strings.Contains(str, "  10 | #\n") {
		t.Fatalf("got %s", str)
	}
}

func TestLineAt(t *testing.T) {
	source := "first\r\nsecond\nthird"
	for i, expected := range []string{"first", "second", "third", ""} {
		if got := LineAt(source, i+1); got != expected {
			t.Fatalf("line %d: got %q", i+1, got)
		}
	}
}

func TestDiagnosticWideRunes(t *testing.T) {
	_, err := Scan("中 ~")
	var errs LexicalErrors
	if !errors.As(err, &errs) {
		t.Fatalf("got %v", err)
	}
	if len(errs) != 2 {
		t.Fatalf("got %d", len(errs))
	}
	lines := strings.Split(errs[1].Error(), "\n")
	if lines[3] != strings.Repeat(" ", 10)+"^-- Here" {
		t.Fatalf("got %q", lines[3])
	}
}
