package store

import (
	"encoding/binary"
	"math"
)

func encodeColumn(xs []float64) []byte {
	buf := make([]byte, len(xs)*8)
	for i, x := range xs {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(x))
	}
	return buf
}

// decodeColumn returns false if b does not hold exactly n values.
func decodeColumn(b []byte, n int) ([]float64, bool) {
	if len(b) != n*8 {
		return nil, false
	}
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = math.Float64frombits(binary.LittleEndian.Uint64(b[i*8:]))
	}
	return xs, true
}
