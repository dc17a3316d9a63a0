package replay

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// SheetPaths lists the *.yaml and *.yml files directly under dir, sorted by name.
func SheetPaths(dir string) ([]string, error) {
	var out []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		m, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, err
		}
		out = append(out, m...)
	}
	sort.Strings(out)
	return out, nil
}

// LoadSheet reads a single YAML score sheet.
func LoadSheet(path string) (Sheet, error) {
	s, err := readYAML(path)
	if err != nil {
		return Sheet{}, fmt.Errorf("read %s: %w", path, err)
	}
	return s, nil
}

// LoadSheets reads every path in order and merges them: later files replace
// games of the same name from earlier ones.
func LoadSheets(paths ...string) (Sheet, error) {
	var merged Sheet
	for _, p := range paths {
		s, err := LoadSheet(p)
		if err != nil {
			return Sheet{}, err
		}
		merged = mergeSheets(merged, s)
	}
	return merged, nil
}

func readYAML(path string) (Sheet, error) {
	var s Sheet
	b, err := os.ReadFile(path)
	if err != nil {
		return Sheet{}, err
	}
	if err := yaml.Unmarshal(b, &s); err != nil {
		return Sheet{}, err
	}
	return s, nil
}

// mergeSheets overlays b on a. Games keep the position of their first appearance;
// a game named again in b is replaced wholesale.
func mergeSheets(a, b Sheet) Sheet {
	out := Sheet{Version: a.Version, Notes: a.Notes}
	if b.Version != "" {
		out.Version = b.Version
	}
	if b.Notes != "" {
		out.Notes = b.Notes
	}

	index := make(map[string]int, len(a.Games)+len(b.Games))
	for _, g := range a.Games {
		index[g.Name] = len(out.Games)
		out.Games = append(out.Games, copyGame(g))
	}
	for _, g := range b.Games {
		if i, ok := index[g.Name]; ok && g.Name != "" {
			out.Games[i] = copyGame(g)
			continue
		}
		index[g.Name] = len(out.Games)
		out.Games = append(out.Games, copyGame(g))
	}
	return out
}

func copyGame(g GameSpec) GameSpec {
	c := g
	c.Rolls = append([]int(nil), g.Rolls...)
	if g.Expect != nil {
		e := *g.Expect
		c.Expect = &e
	}
	return c
}
