package utils

import "math/rand"

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// RandBase36 returns n random base36 characters, matching the
// `Math.random().toString(36)` suffixes used in session and batch ids.
func RandBase36(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = base36[rand.Intn(len(base36))]
	}

	return string(b)
}
