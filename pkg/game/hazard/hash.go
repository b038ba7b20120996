package hazard

import "derelict/pkg/engine/world"

// Hash salts keep unrelated draws from correlating when they share a
// seed and turn.
const (
	SaltIgnition      uint64 = 0xA1
	SaltMilestoneRoom uint64 = 0xB2
	SaltMilestoneCell uint64 = 0xB3
	SaltPlacement     uint64 = 0xC4
)

// splitmix is the splitmix64 finalizer. It is the only mixing
// primitive in the simulation.
func splitmix(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// Mix folds seed, turn, salt and one extra value into a single
// pseudo-random word. It is pure: the same inputs always produce the
// same output, which is what makes recorded runs replayable without
// ever serialising an RNG cursor.
func Mix(seed uint64, turn int, salt, extra uint64) uint64 {
	h := splitmix(seed)
	h = splitmix(h ^ uint64(turn))
	h = splitmix(h ^ salt)
	h = splitmix(h ^ extra)
	return h
}

// MixPoint is Mix with a grid position as the extra value.
func MixPoint(seed uint64, turn int, salt uint64, p world.Point) uint64 {
	packed := uint64(uint32(p.X)) | uint64(uint32(p.Y))<<32
	return Mix(seed, turn, salt, packed)
}

// Roll reduces a hash to the range [0, n). n must be positive.
func Roll(h uint64, n int) int {
	return int(h % uint64(n))
}
