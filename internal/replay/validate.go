package replay

import (
	"fmt"
	"strings"

	"github.com/xtding233/bowling-backend/internal/bowling"
)

// ValidateSheet checks the static shape of a sheet before anything is rolled.
// Whether a sequence is a legal game is left to the scorer during Replay.
func ValidateSheet(s Sheet) error {
	var errs []string

	if len(s.Games) == 0 {
		errs = append(errs, "games must not be empty")
	}

	seen := make(map[string]bool, len(s.Games))
	for i, g := range s.Games {
		if g.Name == "" {
			errs = append(errs, fmt.Sprintf("games[%d].name is required", i))
		} else if seen[g.Name] {
			errs = append(errs, fmt.Sprintf("games[%d].name %q is duplicated", i, g.Name))
		}
		seen[g.Name] = true

		if len(g.Rolls) == 0 {
			errs = append(errs, fmt.Sprintf("games[%d].rolls must not be empty", i))
		}
		for j, pins := range g.Rolls {
			if pins < 0 || pins > bowling.MaxPins {
				errs = append(errs, fmt.Sprintf("games[%d].rolls[%d] must be in [0,%d]", i, j, bowling.MaxPins))
			}
		}
		if g.Expect != nil && (*g.Expect < 0 || *g.Expect > bowling.MaxScore) {
			errs = append(errs, fmt.Sprintf("games[%d].expect must be in [0,%d]", i, bowling.MaxScore))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("sheet validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
