package maze

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/robber-runaway/internal/core"
	"github.com/vovakirdan/robber-runaway/internal/registry"
)

func TestParse(t *testing.T) {
	src := `X X X X
X P . X
X . C X
X X X X
`
	layout, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if layout.Width != 4 || layout.Height != 4 {
		t.Errorf("dimensions = %dx%d, expected 4x4", layout.Width, layout.Height)
	}
	if layout.Player != (core.Point{X: 1, Y: 1}) {
		t.Errorf("Player = %v, expected (1, 1)", layout.Player)
	}
	if len(layout.Chasers) != 1 || layout.Chasers[0] != (core.Point{X: 2, Y: 2}) {
		t.Errorf("Chasers = %v, expected [(2, 2)]", layout.Chasers)
	}
	if len(layout.Obstacles) != 12 {
		t.Errorf("len(Obstacles) = %d, expected 12", len(layout.Obstacles))
	}
}

func TestParseIgnoresUnknownTokensAndTrailingBlankLines(t *testing.T) {
	src := "\n. P ? Z\nfoo . . C\n\n\n"
	layout, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if layout.Width != 4 || layout.Height != 2 {
		t.Errorf("dimensions = %dx%d, expected 4x2", layout.Width, layout.Height)
	}
	if len(layout.Obstacles) != 0 {
		t.Errorf("unknown tokens should be floor, got obstacles %v", layout.Obstacles)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"empty", "", ErrEmpty},
		{"only blank lines", "\n  \n\n", ErrEmpty},
		{"no player", "X X\n. C\n", ErrNoPlayer},
		{"two players", "P .\n. P\n", ErrMultiplePlayers},
		{"short row", "P . .\n. .\n", ErrJagged},
		{"long row", "P .\n. . .\n", ErrJagged},
		{"blank row inside grid", "P .\n\n. .\n", ErrJagged},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			layout, err := Parse(strings.NewReader(tc.src))
			if !errors.Is(err, tc.want) {
				t.Errorf("Parse() error = %v, expected %v", err, tc.want)
			}
			if layout != nil {
				t.Error("Parse() should not return a layout on error")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.txt")
	if err := os.WriteFile(path, []byte("P . C\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	layout, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if layout.Name != path {
		t.Errorf("Name = %q, expected %q", layout.Name, path)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("Load() of a missing file should fail")
	}
}

func TestBuiltinMapsParse(t *testing.T) {
	list := registry.List()
	if len(list) == 0 {
		t.Fatal("no built-in maps registered")
	}
	if !registry.Exists(DefaultMap) {
		t.Fatalf("default map %q not registered", DefaultMap)
	}

	for _, info := range list {
		t.Run(info.Name, func(t *testing.T) {
			layout, err := Resolve(info.Name)
			if err != nil {
				t.Fatalf("Resolve(%q) failed: %v", info.Name, err)
			}
			if layout.Name != info.Name {
				t.Errorf("Name = %q, expected %q", layout.Name, info.Name)
			}
			if len(layout.Chasers) == 0 {
				t.Error("built-in maps should have a chaser")
			}
		})
	}
}
