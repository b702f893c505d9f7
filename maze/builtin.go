package maze

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"
)

//go:embed layouts/*.lay
var builtinLayouts embed.FS

// BuiltinNames lists the embedded layouts in alphabetical order.
func BuiltinNames() []string {
	entries, err := builtinLayouts.ReadDir("layouts")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), ".lay"))
	}
	sort.Strings(names)
	return names
}

// Builtin parses the embedded layout called name (without extension).
func Builtin(name string) (*Layout, error) {
	data, err := BuiltinText(name)
	if err != nil {
		return nil, err
	}
	return ParseLayout(data)
}

// BuiltinText returns the raw text of an embedded layout.
func BuiltinText(name string) (string, error) {
	data, err := builtinLayouts.ReadFile(path.Join("layouts", name+".lay"))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownLayout, name)
	}
	return string(data), nil
}

// Resolve returns the built-in layout called ref, or loads ref as a file path
// when no built-in layout has that name.
func Resolve(ref string) (*Layout, error) {
	if layout, err := Builtin(ref); err == nil {
		return layout, nil
	}
	return LoadLayout(ref)
}
