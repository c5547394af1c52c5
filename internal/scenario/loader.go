package scenario

import (
	"embed"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/setanarut/phys2d"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Load loads a scenario file.
// Search order: customPath -> ~/.phys2d/scenarios/<name>.yaml -> ./scenarios/<name>.yaml -> embedded built-in
func Load(name, customPath string) (File, error) {
	// Try custom path first
	if customPath != "" {
		return LoadFile(customPath)
	}

	filename := name + ".yaml"

	// Try user scenario directory
	if userPath := userScenarioPath(filename); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			f, err := Parse(data)
			if err != nil {
				return File{}, fmt.Errorf("failed to parse scenario %s: %w", userPath, err)
			}
			return f, nil
		}
	}

	// Try local scenarios directory
	localPath := filepath.Join("scenarios", filename)
	if data, err := os.ReadFile(localPath); err == nil {
		f, err := Parse(data)
		if err != nil {
			return File{}, fmt.Errorf("failed to parse scenario %s: %w", localPath, err)
		}
		return f, nil
	}

	return LoadBuiltin(name)
}

// LoadFile reads and parses a scenario file.
func LoadFile(p string) (File, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return File{}, fmt.Errorf("failed to read scenario %s: %w", p, err)
	}
	f, err := Parse(data)
	if err != nil {
		return File{}, fmt.Errorf("failed to parse scenario %s: %w", p, err)
	}
	if f.Name == "" {
		f.Name = strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
	}
	return f, nil
}

// LoadBuiltin returns one of the embedded scenarios.
func LoadBuiltin(name string) (File, error) {
	data, err := builtinFS.ReadFile(path.Join("builtin", name+".yaml"))
	if err != nil {
		return File{}, fmt.Errorf("unknown scenario %q", name)
	}
	return Parse(data)
}

// Parse decodes a scenario. World settings absent from data keep the
// values of phys2d.DefaultWorldConfig.
func Parse(data []byte) (File, error) {
	f := File{World: phys2d.DefaultWorldConfig()}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, err
	}
	return f, f.Validate()
}

// Builtins returns the names of the embedded scenarios, sorted.
func Builtins() []string {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	slices.Sort(names)
	return names
}

// userScenarioPath returns the path to a user scenario file, or empty if home is unavailable.
func userScenarioPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".phys2d", "scenarios", filename)
}
