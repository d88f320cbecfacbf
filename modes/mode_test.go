package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestModeString(t *testing.T) {
	for mode, expected := range map[Mode]string{
		ModeProduction:  "production",
		ModeDevelopment: "development",
		Mode(0):         "unknown",
	} {
		if got := mode.String(); got != expected {
			t.Fatalf("got %s, expected %s", got, expected)
		}
	}
	if ModeProduction.Verbose() || !ModeDevelopment.Verbose() {
		t.Fatal()
	}
}

func TestForProduction(t *testing.T) {
	dscope.New(ForProduction()).Call(func(
		tt *testing.T,
		mode Mode,
	) {
		if tt != nil {
			t.Fatal()
		}
		if mode != ModeProduction {
			t.Fatalf("got %v", mode)
		}
	})
}

func TestForTest(t *testing.T) {
	dscope.New(ForTest(t)).Call(func(
		tt *testing.T,
		mode Mode,
	) {
		if tt != t {
			t.Fatal()
		}
		if mode != ModeDevelopment {
			t.Fatalf("got %v", mode)
		}
	})
}

func TestForDevelopment(t *testing.T) {
	dscope.New(ForDevelopment()).Call(func(
		tt *testing.T,
		mode Mode,
	) {
		if tt != nil {
			t.Fatal()
		}
		if mode != ModeDevelopment {
			t.Fatalf("got %v", mode)
		}
	})
}
