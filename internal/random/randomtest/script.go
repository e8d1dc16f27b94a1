// Package randomtest provides scripted random sources for deterministic tests.
package randomtest

// Fixed always returns the same draws. Intn returns min(Int, n-1), clamped to 0.
type Fixed struct {
	Int   int
	Float float64
}

func (f Fixed) Intn(n int) int {
	if f.Int >= n {
		return n - 1
	}
	if f.Int < 0 {
		return 0
	}
	return f.Int
}

func (f Fixed) Float64() float64 { return f.Float }

// Script replays queued draws in order, then falls back to Fallback.
type Script struct {
	Ints     []int
	Floats   []float64
	Fallback Fixed
}

func (s *Script) Intn(n int) int {
	if len(s.Ints) == 0 {
		return s.Fallback.Intn(n)
	}
	v := s.Ints[0]
	s.Ints = s.Ints[1:]
	return Fixed{Int: v}.Intn(n)
}

func (s *Script) Float64() float64 {
	if len(s.Floats) == 0 {
		return s.Fallback.Float
	}
	v := s.Floats[0]
	s.Floats = s.Floats[1:]
	return v
}
