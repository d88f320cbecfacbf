package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/pseudo/dumps"
	"github.com/reusee/pseudo/modes"
)

func testScope(t *testing.T, format dumps.Format, buf *bytes.Buffer) dscope.Scope {
	return dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() Output {
			return buf
		},
		func() dumps.Format {
			return format
		},
	)
}

func TestProcess(t *testing.T) {
	buf := new(bytes.Buffer)
	testScope(t, dumps.FormatTree, buf).Call(func(
		process Process,
	) {
		if !process(t.Context(), buf, "test", "let x <- 1\nprint x\n") {
			t.Fatal()
		}
	})
	expected := `Expressions
  Assignment x
    value:
      Number 1
  Print
    Identifier x
`
	if buf.String() != expected {
		t.Fatalf("got\n%s", buf.String())
	}
}

func TestProcessJSON(t *testing.T) {
	buf := new(bytes.Buffer)
	testScope(t, dumps.FormatJSON, buf).Call(func(
		process Process,
	) {
		if !process(t.Context(), buf, "test", "print 1") {
			t.Fatal()
		}
	})
	if !strings.Contains(buf.String(), `"kind": "Print"`) {
		t.Fatalf("got %s", buf.String())
	}
}

func TestProcessTokens(t *testing.T) {
	*tokensFlag = true
	defer func() {
		*tokensFlag = false
	}()
	buf := new(bytes.Buffer)
	testScope(t, dumps.FormatTree, buf).Call(func(
		process Process,
	) {
		if !process(t.Context(), buf, "test", "print 1") {
			t.Fatal()
		}
	})
	if !strings.HasPrefix(buf.String(), "1:1\t'print'\n") {
		t.Fatalf("got %s", buf.String())
	}
}

func TestProcessSyntaxError(t *testing.T) {
	buf := new(bytes.Buffer)
	testScope(t, dumps.FormatTree, buf).Call(func(
		process Process,
	) {
		if process(t.Context(), buf, "test", `if x print "y" end`) {
			t.Fatal()
		}
	})
	if !strings.HasPrefix(buf.String(), "Error: expected 'then', found 'print'\n") {
		t.Fatalf("got %s", buf.String())
	}
	if !strings.HasSuffix(buf.String(), "^-- Here\n") {
		t.Fatalf("got %s", buf.String())
	}
}

func TestProcessLexicalErrors(t *testing.T) {
	buf := new(bytes.Buffer)
	testScope(t, dumps.FormatTree, buf).Call(func(
		process Process,
	) {
		if process(t.Context(), buf, "test", "x ~ y ~") {
			t.Fatal()
		}
	})
	if n := strings.Count(buf.String(), "Error: unknown character"); n != 2 {
		t.Fatalf("got %d\n%s", n, buf.String())
	}
}

func TestProcessLines(t *testing.T) {
	buf := new(bytes.Buffer)
	testScope(t, dumps.FormatTree, buf).Call(func(
		processLines ProcessLines,
	) {
		ok := processLines(t.Context(), strings.NewReader("print 1\n\n  \nprint 2\n"))
		if !ok {
			t.Fatal()
		}
		if n := strings.Count(buf.String(), "Expressions\n"); n != 2 {
			t.Fatalf("got %d", n)
		}

		buf.Reset()
		ok = processLines(t.Context(), strings.NewReader("print 1\nlet\nprint 2\n"))
		if ok {
			t.Fatal()
		}
		if n := strings.Count(buf.String(), "Expressions\n"); n != 2 {
			t.Fatalf("got %d", n)
		}
		if !strings.Contains(buf.String(), "Error: expected identifier, found end of input") {
			t.Fatalf("got %s", buf.String())
		}
	})
}

func TestProcessFiles(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for i := range 8 {
		path := filepath.Join(dir, fmt.Sprintf("%d.pseudo", i))
		if err := os.WriteFile(path, []byte(fmt.Sprintf("print %d\n", i)), 0644); err != nil {
			t.Fatal(err)
		}
		paths = append(paths, path)
	}

	for _, jobs := range []Jobs{1, 4} {
		buf := new(bytes.Buffer)
		testScope(t, dumps.FormatTree, buf).Fork(
			func() Jobs {
				return jobs
			},
		).Call(func(
			processFiles ProcessFiles,
		) {
			if !processFiles(t.Context(), paths) {
				t.Fatal()
			}
		})
		var expected strings.Builder
		for i := range 8 {
			fmt.Fprintf(&expected, "Expressions\n  Print\n    Number %d\n", i)
		}
		if buf.String() != expected.String() {
			t.Fatalf("jobs %d: got\n%s", jobs, buf.String())
		}
	}
}

func TestProcessFilesErrors(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.pseudo")
	if err := os.WriteFile(good, []byte("read <in> a, b\nprint a + b\n"), 0644); err != nil {
		t.Fatal(err)
	}
	bad := filepath.Join(dir, "bad.pseudo")
	if err := os.WriteFile(bad, []byte("print (1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	buf := new(bytes.Buffer)
	testScope(t, dumps.FormatYAML, buf).Call(func(
		processFiles ProcessFiles,
	) {
		if processFiles(t.Context(), []string{good, bad, filepath.Join(dir, "missing")}) {
			t.Fatal()
		}
	})
	if !strings.Contains(buf.String(), "kind: Read") {
		t.Fatalf("got %s", buf.String())
	}
	if !strings.Contains(buf.String(), "Error: expected ')', found end of line") {
		t.Fatalf("got %s", buf.String())
	}
}

func TestReportPlain(t *testing.T) {
	buf := new(bytes.Buffer)
	testScope(t, dumps.FormatTree, buf).Call(func(
		report Report,
	) {
		report(buf, "Error: foo")
	})
	if buf.String() != "Error: foo\n" {
		t.Fatalf("got %q", buf.String())
	}
}

func TestIncomplete(t *testing.T) {
	for _, c := range []struct {
		source   string
		expected bool
	}{
		{"if x then\n", true},
		{"while x execute\nprint x\n", true},
		{"let x <-", true},
		{"print 1\n", false},
		{"if x then print 1 end\n", false},
		{"if x print 1 end\n", false},
		{"x ~\n", false},
		{"\n", false},
	} {
		if got := incomplete(c.source); got != c.expected {
			t.Fatalf("%q: got %v", c.source, got)
		}
	}
}
