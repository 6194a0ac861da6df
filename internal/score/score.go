// Package score holds per-round scores and the persistent high-score table.
package score

import "fmt"

// MaxPoints is where a round score saturates: the widest value String
// renders in eight digits.
const MaxPoints = 99_999_999

// Score counts the points of one seat in one round.
type Score struct {
	points   int
	onChange []func(int)
}

// New creates a zeroed score.
func New() *Score {
	return &Score{}
}

// OnChange registers an observer called with the new value.
func (s *Score) OnChange(fn func(int)) {
	s.onChange = append(s.onChange, fn)
}

// AddPoint increments the score, saturating at MaxPoints.
func (s *Score) AddPoint() {
	if s.points >= MaxPoints {
		return
	}
	s.points++
	s.notify()
}

// Reset sets the score back to zero.
func (s *Score) Reset() {
	s.points = 0
	s.notify()
}

// Current returns the score.
func (s *Score) Current() int {
	return s.points
}

// String renders the score as eight zero-padded digits.
func (s *Score) String() string {
	return fmt.Sprintf("%08d", s.points)
}

func (s *Score) notify() {
	for _, fn := range s.onChange {
		fn(s.points)
	}
}
