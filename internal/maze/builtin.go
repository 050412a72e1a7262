package maze

import (
	"embed"
	"path"
	"strings"

	"github.com/vovakirdan/robber-runaway/internal/registry"
)

// DefaultMap is the built-in map used when none is configured.
const DefaultMap = "yard"

//go:embed maps/*.txt
var builtinFS embed.FS

var builtinTitles = map[string]string{
	"classic": "Classic Maze",
	"open":    "Open Field",
	"yard":    "Prison Yard",
}

func init() {
	entries, err := builtinFS.ReadDir("maps")
	if err != nil {
		panic("maze: cannot read embedded maps: " + err.Error())
	}
	for _, e := range entries {
		data, err := builtinFS.ReadFile(path.Join("maps", e.Name()))
		if err != nil {
			panic("maze: cannot read embedded map " + e.Name() + ": " + err.Error())
		}
		name := strings.TrimSuffix(e.Name(), path.Ext(e.Name()))
		title, ok := builtinTitles[name]
		if !ok {
			title = name
		}
		registry.Register(registry.Map{Name: name, Title: title, Data: data})
	}
}
