package wave

import "math"

// Field is one time level of the wave amplitude, one value per domain
// sample.
type Field []float64

func (f Field) Clone() Field {
	c := make(Field, len(f))
	copy(c, f)
	return c
}

func (f Field) IsValid() bool {
	for _, v := range f {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// MaxAbs returns the largest absolute amplitude in the field.
func (f Field) MaxAbs() float64 {
	max := 0.0
	for _, v := range f {
		if a := math.Abs(v); a > max {
			max = a
		}
	}
	return max
}
