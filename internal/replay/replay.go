package replay

import (
	"fmt"

	"github.com/xtding233/bowling-backend/internal/bowling"
)

// Replay rolls every game of the sheet through a fresh bowling.Game.
// A game stops at its first rejected roll; the error says which roll it was.
func Replay(s Sheet) []Result {
	out := make([]Result, 0, len(s.Games))
	for _, g := range s.Games {
		out = append(out, replayGame(g))
	}
	return out
}

func replayGame(spec GameSpec) Result {
	res := Result{Name: spec.Name, Expect: spec.Expect}
	g := bowling.NewGame()
	for i, pins := range spec.Rolls {
		if err := g.Roll(pins); err != nil {
			res.Err = fmt.Errorf("roll %d (%d pins): %w", i+1, pins, err)
			break
		}
	}
	for _, t := range g.Throws() {
		res.Marks = append(res.Marks, t.String())
	}
	res.Score, res.Complete = g.Score()
	return res
}
