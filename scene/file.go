package scene

import (
	"embed"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v2"
)

//go:embed scenes/*.yaml
var builtin embed.FS

// File is the YAML layout of a scene. Materials is only a place to hang
// anchors that objects alias.
type File struct {
	Materials map[string]MaterialSpec `yaml:"materials,omitempty"`
	Objects   []Descriptor            `yaml:"objects"`
}

// Parse decodes and validates a scene file.
func Parse(data []byte) ([]Descriptor, error) {
	var f File
	if err := yaml.UnmarshalStrict(data, &f); err != nil {
		return nil, err
	}

	for i := range f.Objects {
		if err := f.Objects[i].Validate(); err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
	}
	return f.Objects, nil
}

// LoadFile reads a scene file from disk.
func LoadFile(scenePath string) ([]Descriptor, error) {
	data, err := os.ReadFile(scenePath)
	if err != nil {
		return nil, err
	}

	descriptors, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", scenePath, err)
	}
	return descriptors, nil
}

// Builtin returns one of the scenes compiled into the binary.
func Builtin(name string) ([]Descriptor, error) {
	data, err := builtin.ReadFile(path.Join("scenes", name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("no builtin scene %q", name)
	}
	return Parse(data)
}

// BuiltinNames lists the compiled-in scenes.
func BuiltinNames() []string {
	entries, _ := builtin.ReadDir("scenes")
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// Intro is the landing page's intro composition.
func Intro() []Descriptor {
	descriptors, err := Builtin("intro")
	if err != nil {
		panic(err)
	}
	return descriptors
}

// Load resolves ref as a builtin scene name, falling back to a file path.
// The empty ref is the intro.
func Load(ref string) ([]Descriptor, error) {
	if ref == "" {
		return Intro(), nil
	}
	for _, name := range BuiltinNames() {
		if name == ref {
			return Builtin(ref)
		}
	}
	return LoadFile(ref)
}
