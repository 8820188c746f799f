package barchart

import (
	"math"

	"popchart/internal/population"
)

// niceTicks builds Y axis ticks from zero to at least max, preferring
// steps of 1, 2, 2.5, 5 or 10 times a power of ten. Labels use the same
// compact format as the bar annotations.
func niceTicks(max float64, n int) []Tick {
	if n < 2 {
		n = 2
	}
	if max <= 0 {
		max = 1
	}

	mag := math.Pow(10, math.Floor(math.Log10(max/float64(n-1))))
	candidates := []float64{1, 2, 2.5, 5, 10}
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range candidates {
		step := c * mag
		count := math.Ceil(max / step)
		if count < 2 {
			count = 2
		}
		score := math.Abs(count - float64(n))
		if score < bestScore {
			bestScore = score
			bestStep = step
		}
	}
	if bestStep < 1 {
		bestStep = 1 // populations are whole counts
	}

	end := math.Ceil(max/bestStep) * bestStep
	var ticks []Tick
	for v := 0.0; v <= end+bestStep/2; v += bestStep {
		ticks = append(ticks, Tick{Value: v, Label: population.Format(int64(math.Round(v)))})
		if len(ticks) > n+2 {
			break
		}
	}
	return ticks
}
