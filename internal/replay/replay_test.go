package replay

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xtding233/bowling-backend/internal/bowling"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func intp(n int) *int { return &n }

const baseSheet = `
version: "1"
notes: league night
games:
  - name: perfect
    rolls: [10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10]
    expect: 300
  - name: spare
    rolls: [6, 4, 3, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0]
    expect: 16
`

const overrideSheet = `
version: "2"
games:
  - name: spare
    rolls: [10, 5, 3, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0]
    expect: 26
  - name: tenth
    rolls: [0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 5, 5, 7]
`

func TestLoadSheets(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.yaml", baseSheet)
	b := writeFile(t, dir, "b.yml", overrideSheet)

	s, err := LoadSheets(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if s.Version != "2" {
		t.Errorf("Version = %q, want 2", s.Version)
	}
	if s.Notes != "league night" {
		t.Errorf("Notes = %q, want kept from first sheet", s.Notes)
	}
	var names []string
	for _, g := range s.Games {
		names = append(names, g.Name)
	}
	if got := strings.Join(names, ","); got != "perfect,spare,tenth" {
		t.Fatalf("games = %s, want perfect,spare,tenth", got)
	}
	if s.Games[1].Rolls[0] != 10 || *s.Games[1].Expect != 26 {
		t.Fatalf("spare should be replaced by the later sheet: %+v", s.Games[1])
	}
	if s.Games[2].Expect != nil {
		t.Fatalf("tenth has no expectation, got %d", *s.Games[2].Expect)
	}

	paths, err := SheetPaths(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 2 || paths[0] != a || paths[1] != b {
		t.Fatalf("SheetPaths = %v, want [%s %s]", paths, a, b)
	}
}

func TestLoadSheetErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadSheet(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file error = %v, want os.ErrNotExist", err)
	}
	bad := writeFile(t, dir, "bad.yaml", "games: [name: x")
	if _, err := LoadSheets(bad); err == nil {
		t.Fatalf("malformed yaml must error")
	}
}

func TestValidateSheet(t *testing.T) {
	ok := Sheet{Games: []GameSpec{{Name: "g", Rolls: []int{1}, Expect: intp(1)}}}
	if err := ValidateSheet(ok); err != nil {
		t.Fatalf("valid sheet: %v", err)
	}

	tests := []struct {
		name  string
		sheet Sheet
		want  string
	}{
		{"no games", Sheet{}, "games must not be empty"},
		{"missing name", Sheet{Games: []GameSpec{{Rolls: []int{1}}}}, "games[0].name is required"},
		{"duplicate", Sheet{Games: []GameSpec{{Name: "a", Rolls: []int{1}}, {Name: "a", Rolls: []int{1}}}}, `games[1].name "a" is duplicated`},
		{"no rolls", Sheet{Games: []GameSpec{{Name: "a"}}}, "games[0].rolls must not be empty"},
		{"pins out of range", Sheet{Games: []GameSpec{{Name: "a", Rolls: []int{3, 11}}}}, "games[0].rolls[1] must be in [0,10]"},
		{"negative pins", Sheet{Games: []GameSpec{{Name: "a", Rolls: []int{-1}}}}, "games[0].rolls[0] must be in [0,10]"},
		{"expect out of range", Sheet{Games: []GameSpec{{Name: "a", Rolls: []int{1}, Expect: intp(301)}}}, "games[0].expect must be in [0,300]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSheet(tt.sheet)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("ValidateSheet error = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestReplay(t *testing.T) {
	s := Sheet{Games: []GameSpec{
		{Name: "perfect", Rolls: []int{10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10}, Expect: intp(300)},
		{Name: "wrong expectation", Rolls: make([]int, 20), Expect: intp(5)},
		{Name: "unfinished", Rolls: []int{3, 4}},
		{Name: "too many pins", Rolls: []int{5, 6}},
		{Name: "extra roll", Rolls: make([]int, 21)},
	}}

	res := Replay(s)
	if len(res) != 5 {
		t.Fatalf("got %d results, want 5", len(res))
	}

	if r := res[0]; !r.Complete || r.Score != 300 || !r.Matched() || r.Err != nil {
		t.Errorf("perfect: %+v", r)
	}
	if got := strings.Join(res[0].Marks, ""); got != "XXXXXXXXXXXX" {
		t.Errorf("perfect marks = %s", got)
	}

	if r := res[1]; !r.Complete || r.Score != 0 || r.Matched() {
		t.Errorf("wrong expectation should not match: %+v", r)
	}

	if r := res[2]; r.Complete || r.Matched() || r.Err != nil {
		t.Errorf("unfinished: %+v", r)
	}
	if got := strings.Join(res[2].Marks, ""); got != "34" {
		t.Errorf("unfinished marks = %s", got)
	}

	if r := res[3]; !errors.Is(r.Err, bowling.ErrNotEnoughPinsLeft) || r.Matched() {
		t.Errorf("too many pins: %+v", r)
	}
	if !strings.Contains(res[3].Err.Error(), "roll 2 (6 pins)") {
		t.Errorf("error should name the roll: %v", res[3].Err)
	}

	if r := res[4]; !errors.Is(r.Err, bowling.ErrGameComplete) || !r.Complete || r.Matched() {
		t.Errorf("extra roll: %+v", r)
	}
}

func TestCanonicalSheet(t *testing.T) {
	s, err := LoadSheets(filepath.Join("testdata", "canonical.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if err := ValidateSheet(s); err != nil {
		t.Fatal(err)
	}
	for _, r := range Replay(s) {
		if !r.Matched() {
			t.Errorf("%s: score=%d complete=%v err=%v expect=%v", r.Name, r.Score, r.Complete, r.Err, r.Expect)
		}
	}
}
