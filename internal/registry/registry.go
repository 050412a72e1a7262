// Package registry provides a global registry of built-in maps.
// Map packages register themselves in init() functions, allowing the CLI
// to discover and load maps without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Map is a named, embedded map source.
type Map struct {
	Name  string // Unique identifier used on the command line (e.g., "classic")
	Title string // Human-readable name for display
	Data  []byte // Raw map text
}

// MapInfo contains metadata about a registered map.
type MapInfo struct {
	Name  string
	Title string
}

var (
	maps = make(map[string]Map)
	mu   sync.RWMutex
)

// Register adds a map to the registry.
// Typically called from an init() function.
// Panics if a map with the same name is already registered.
func Register(m Map) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := maps[m.Name]; exists {
		panic(fmt.Sprintf("registry: map %q already registered", m.Name))
	}

	maps[m.Name] = m
}

// List returns information about all registered maps, sorted by name.
func List() []MapInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]MapInfo, 0, len(maps))
	for name, m := range maps {
		result = append(result, MapInfo{
			Name:  name,
			Title: m.Title,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Lookup returns a registered map by name.
// Returns an error if the name is not registered.
func Lookup(name string) (Map, error) {
	mu.RLock()
	defer mu.RUnlock()

	m, ok := maps[name]
	if !ok {
		return Map{}, fmt.Errorf("registry: unknown map %q", name)
	}

	return m, nil
}

// Exists checks if a map with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := maps[name]
	return ok
}
