// Package dice implements the six-sided ferry die and its weather adjustment.
package dice

import (
	"github.com/samdwyer/aegean/internal/random"
	"github.com/samdwyer/aegean/internal/weather"
)

// Sides is the number of faces on the die.
const Sides = 6

// JailBreak is the face that releases a docked player.
const JailBreak = 6

// Roll returns a uniform value in [1, Sides].
func Roll(src random.Source) int {
	return rollDie(src, Sides)
}

// RollBestOfTwo rolls twice and keeps the higher face.
func RollBestOfTwo(src random.Source) int {
	first := Roll(src)
	second := Roll(src)
	if second > first {
		return second
	}
	return first
}

// Effective converts a raw face into movement steps under mode. A gale halves
// the roll rounding up, so the result is always in [1, raw].
func Effective(raw int, mode weather.Mode) int {
	if mode.IsStorm() {
		return (raw + 1) / 2
	}
	return raw
}

// Releases reports whether a jailed player's raw roll frees them.
func Releases(raw int) bool {
	return raw == JailBreak
}

// rollDie rolls a die with the provided number of sides.
func rollDie(src random.Source, sides int) int {
	return src.Intn(sides) + 1
}
