package bowling

import "errors"

const (
	MaxPins   = 10 // pins standing at the start of a frame
	MaxFrames = 10 // frames in a game
	MaxScore  = 300
)

var (
	ErrNotEnoughPinsLeft = errors.New("not enough pins left")
	ErrGameComplete      = errors.New("game complete")
	ErrInvalidPins       = errors.New("invalid pin count; must be >= 0")
)

type phase int

const (
	inFrame    phase = iota
	tenthBonus       // tenth frame cleared, owed bonus throws pending
)

const (
	window = 3          // consecutive throws the scorer looks at once
	lead   = window - 1 // synthetic zero throws ahead of the first roll
)

// Game scores one game of ten-pin bowling, one roll at a time.
//   - Roll either applies the whole throw or returns an error and changes nothing.
//   - Score is only available once the tenth frame and its bonus throws are done.
type Game struct {
	frame         int // 1-based; MaxFrames+1 once the game is over
	phase         phase
	owed          int // bonus throws still owed in the tenth frame
	throwsInFrame int
	pinsLeft      int
	throws        []Throw // two synthetic Normal(0) entries, then every roll
}

// NewGame starts a fresh game at frame 1 with all pins standing.
func NewGame() *Game {
	return &Game{
		frame:    1,
		phase:    inFrame,
		pinsLeft: MaxPins,
		throws:   []Throw{{Kind: Normal}, {Kind: Normal}},
	}
}

// Roll records a throw knocking down pins.
// It returns ErrGameComplete once the game is over and ErrNotEnoughPinsLeft when pins
// exceeds what is standing in the current frame. Negative counts are ErrInvalidPins.
// On any error the game is left as is.
func (g *Game) Roll(pins int) error {
	if g.Complete() {
		return ErrGameComplete
	}
	if pins < 0 {
		return ErrInvalidPins
	}
	if pins > g.pinsLeft {
		return ErrNotEnoughPinsLeft
	}

	g.pinsLeft -= pins
	g.throws = append(g.throws, g.classify(pins))
	g.throwsInFrame++

	if g.phase == tenthBonus {
		g.owed--
		if g.owed == 0 {
			g.nextFrame()
			return nil
		}
		// a cleared rack is reset for the remaining bonus throw
		if g.pinsLeft == 0 {
			g.pinsLeft = MaxPins
		}
		return nil
	}

	if g.frame == MaxFrames && g.pinsLeft == 0 {
		g.enterBonus()
		return nil
	}

	if g.pinsLeft == 0 || g.throwsInFrame == 2 {
		g.nextFrame()
	}
	return nil
}

// classify decides the kind of a throw. It runs after pinsLeft is reduced and
// before throwsInFrame counts the throw.
func (g *Game) classify(pins int) Throw {
	switch {
	case g.phase == tenthBonus:
		return Throw{Kind: Bonus, Pins: pins}
	case pins == MaxPins && g.throwsInFrame == 0:
		return Throw{Kind: Strike, Pins: pins}
	case g.pinsLeft == 0:
		return Throw{Kind: Spare, Pins: pins}
	default:
		return Throw{Kind: Normal, Pins: pins}
	}
}

// enterBonus starts the tenth-frame bonus: two throws for a strike, one for a spare.
func (g *Game) enterBonus() {
	g.phase = tenthBonus
	g.owed = 1
	if g.throws[len(g.throws)-1].Kind == Strike {
		g.owed = 2
	}
	g.pinsLeft = MaxPins
}

func (g *Game) nextFrame() {
	g.frame++
	g.phase = inFrame
	g.owed = 0
	g.throwsInFrame = 0
	g.pinsLeft = MaxPins
}

// Complete reports whether every frame, including owed bonus throws, has been rolled.
func (g *Game) Complete() bool {
	return g.frame > MaxFrames
}

// Frame returns the current 1-based frame, or MaxFrames+1 once the game is over.
func (g *Game) Frame() int {
	return g.frame
}

// PinsStanding returns how many pins the next roll can knock down.
// It is 0 once the game is over.
func (g *Game) PinsStanding() int {
	if g.Complete() {
		return 0
	}
	return g.pinsLeft
}

// Throws returns a copy of the recorded throws in order.
func (g *Game) Throws() []Throw {
	return append([]Throw(nil), g.throws[lead:]...)
}

// Score returns the total once the game is complete; ok is false before that.
func (g *Game) Score() (int, bool) {
	if !g.Complete() {
		return 0, false
	}
	total := 0
	for i := 0; i+window <= len(g.throws); i++ {
		total += scoreWindow(g.throws[i : i+window])
	}
	return total, true
}

// scoreWindow adds what a run of three throws contributes:
//   - a strike in front takes itself plus the next two throws
//   - a spare in the middle takes itself plus the throw after it
//   - a normal throw at the back takes its own pins
//
// Every throw lands in exactly one of these slots; bonus throws only ever count
// through a strike or spare ahead of them.
func scoreWindow(w []Throw) int {
	first, middle, last := w[0], w[1], w[2]
	n := 0
	if first.Kind == Strike {
		n += MaxPins + middle.Value() + last.Value()
	}
	if middle.Kind == Spare {
		n += middle.Value() + last.Value()
	}
	if last.Kind == Normal {
		n += last.Value()
	}
	return n
}
