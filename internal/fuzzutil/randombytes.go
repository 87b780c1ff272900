package fuzzutil

import "math/rand"

// MakeRandomTestCases returns a fixed, deterministic set of seed byte slices
// of varying lengths, used to seed a fuzz corpus the same way the teacher
// corpus seeds its own object-store fuzz tests.
func MakeRandomTestCases() [][]byte {
	r := rand.New(rand.NewSource(1))
	return [][]byte{
		{},
		randomBytes(r, 1),
		randomBytes(r, 10),
		randomBytes(r, 50),
		randomBytes(r, 100),
		randomBytes(r, 500),
		randomBytes(r, 1000),
	}
}

func randomBytes(r *rand.Rand, size int) []byte {
	bytes := make([]byte, size)
	r.Read(bytes)
	return bytes
}
