// Package randomtest provides a scripted random source for tests.
package randomtest

import "github.com/samdwyer/aegean/internal/random"

// Scripted replays fixed values, then falls back to a seeded source once
// exhausted. It exists so tests can force exact dice faces and weather draws.
type Scripted struct {
	Ints     []int     // values returned by Intn, clamped into [0, n)
	Floats   []float64 // values returned by Float64
	Fallback random.Source
}

// Intn returns the next scripted int, or the fallback's value.
func (s *Scripted) Intn(n int) int {
	if len(s.Ints) == 0 {
		return s.fallback().Intn(n)
	}
	v := s.Ints[0]
	s.Ints = s.Ints[1:]
	if v < 0 {
		v = 0
	}
	if v >= n {
		v = n - 1
	}
	return v
}

// Float64 returns the next scripted float, or the fallback's value.
func (s *Scripted) Float64() float64 {
	if len(s.Floats) == 0 {
		return s.fallback().Float64()
	}
	v := s.Floats[0]
	s.Floats = s.Floats[1:]
	return v
}

func (s *Scripted) fallback() random.Source {
	if s.Fallback == nil {
		s.Fallback = random.New(1)
	}
	return s.Fallback
}
