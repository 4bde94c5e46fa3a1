package util

import (
	"encoding/binary"
	"math"
)

func Uint64ToBytes(i uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, i)

	return b
}

func Float64ToBytes(i float64) []byte {
	return Uint64ToBytes(math.Float64bits(i))
}

func BytesToFloat64(b []byte) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(b))
}
