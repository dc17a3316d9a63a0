package sim

import (
	"fmt"
	"math"
	"sort"

	"github.com/xtding233/bowling-backend/internal/bowling"
)

// Stats summarizes final scores over many simulated games.
type Stats struct {
	Games  int
	Mean   float64
	Var    float64
	StdDev float64
	P50    float64
	P90    float64
	P99    float64
	Min    int
	Max    int

	// final score of every game, in the order played
	Samples []int
}

// PlayGame bowls one full game where every roll knocks down a uniform
// number of pins between 0 and what is standing.
func PlayGame(rng RandomSource) (*bowling.Game, error) {
	if rng == nil {
		rng = DefaultRNG()
	}
	g := bowling.NewGame()
	for !g.Complete() {
		pins := rng.IntN(g.PinsStanding() + 1)
		if err := g.Roll(pins); err != nil {
			return nil, fmt.Errorf("frame %d, %d pins: %w", g.Frame(), pins, err)
		}
	}
	return g, nil
}

// RunMonteCarlo plays trials random games and returns summary stats of the final scores.
func RunMonteCarlo(trials int, rng RandomSource) (Stats, error) {
	if trials <= 0 {
		return Stats{}, nil
	}
	if rng == nil {
		rng = DefaultRNG()
	}
	samples := make([]int, trials)
	for i := 0; i < trials; i++ {
		g, err := PlayGame(rng)
		if err != nil {
			return Stats{}, err
		}
		samples[i], _ = g.Score()
	}
	return calcStats(samples), nil
}

// calcStats summarizes final scores. Percentiles interpolate linearly between
// neighbouring sorted scores.
func calcStats(xs []int) Stats {
	n := len(xs)
	if n == 0 {
		return Stats{}
	}
	var sum float64
	for _, v := range xs {
		sum += float64(v)
	}
	mean := sum / float64(n)

	// population variance: every game played is in xs
	var acc float64
	for _, v := range xs {
		d := float64(v) - mean
		acc += d * d
	}
	variance := acc / float64(n)

	cp := append([]int(nil), xs...)
	sort.Ints(cp)
	percentile := func(p float64) float64 {
		if n == 1 || p <= 0 {
			return float64(cp[0])
		}
		if p >= 1 {
			return float64(cp[n-1])
		}
		pos := p * float64(n-1)
		i := int(math.Floor(pos))
		f := pos - float64(i)
		if i+1 >= n {
			return float64(cp[i])
		}
		return float64(cp[i])*(1-f) + float64(cp[i+1])*f
	}

	return Stats{
		Games:   n,
		Mean:    mean,
		Var:     variance,
		StdDev:  math.Sqrt(variance),
		P50:     percentile(0.50),
		P90:     percentile(0.90),
		P99:     percentile(0.99),
		Min:     cp[0],
		Max:     cp[n-1],
		Samples: xs,
	}
}
