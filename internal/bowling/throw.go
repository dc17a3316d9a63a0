package bowling

import "strconv"

// Kind classifies a throw at the moment it is taken.
// The same pin count can be a Normal, Spare or Bonus depending on when it happened,
// so the kind is recorded instead of being recomputed while scoring.
type Kind int

const (
	Normal Kind = iota
	Spare       // cleared the pins left by the previous throw of the frame
	Bonus       // extra throw owed by a tenth-frame strike or spare
	Strike      // all ten pins on the first throw of a frame
)

// Throw is one recorded roll.
type Throw struct {
	Kind Kind
	Pins int
}

// Value is the face value of the throw.
func (t Throw) Value() int {
	if t.Kind == Strike {
		return MaxPins
	}
	return t.Pins
}

// String renders the usual scorecard mark: X, / or - for a gutter ball.
func (t Throw) String() string {
	switch {
	case t.Kind == Strike:
		return "X"
	case t.Kind == Spare:
		return "/"
	case t.Kind == Bonus && t.Pins == MaxPins:
		return "X"
	case t.Pins == 0:
		return "-"
	default:
		return strconv.Itoa(t.Pins)
	}
}
