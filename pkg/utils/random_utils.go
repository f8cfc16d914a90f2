package utils

import (
	"crypto/rand"
	"encoding/binary"
)

// RandomInt32 generates a secure random 32-bit integer
func RandomInt32() int32 {
	var num int32
	err := binary.Read(rand.Reader, binary.BigEndian, &num)
	if err != nil {
		panic("generate random int32 failed")
	}

	return num
}

// RandomIntn generates a secure random integer in [0, n)
func RandomIntn(n int) int {
	if n <= 0 {
		panic("invalid upper bound for RandomIntn")
	}
	v := RandomInt32()
	if v < 0 {
		v = -v
	}
	return int(v) % n
}
