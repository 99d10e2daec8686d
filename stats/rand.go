package stats

import (
	"math"
	"math/rand/v2"
)

// Rand is the source of randomness for all of the generated stats. Float64
// returns a value in [0, 1).
type Rand interface {
	Float64() float64
}

type systemRand struct{}

// NewRand returns a Rand backed by the runtime's random source. It is safe for
// concurrent use.
func NewRand() Rand {
	return systemRand{}
}

func (systemRand) Float64() float64 {
	return rand.Float64()
}

// intn returns min + floor(r*span).
func intn(r Rand, min, span int) int {
	return min + int(math.Floor(draw(r)*float64(span)))
}

// tenths returns a value on the one decimal grid in [min, min+span).
func tenths(r Rand, min, span float64) float64 {
	minT := int(math.Round(min * 10))
	spanT := int(math.Round(span * 10))
	return float64(minT+int(math.Floor(draw(r)*float64(spanT)))) / 10
}

// draw keeps values from a misbehaving source inside [0, 1).
func draw(r Rand) float64 {
	f := r.Float64()
	if f < 0 || math.IsNaN(f) {
		return 0
	}
	if f >= 1 {
		return math.Nextafter(1, 0)
	}
	return f
}
