package core

// Direction is a per-tick movement intent for a paddle.
// Up and Left share a value, as do Down and Right: a paddle only has one axis.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
)

// Aliases for horizontal paddles.
const (
	DirLeft  = DirUp
	DirRight = DirDown
)

// Sign returns -1 for Up/Left, 1 for Down/Right and 0 for None.
func (d Direction) Sign() float64 {
	switch d {
	case DirUp:
		return -1
	case DirDown:
		return 1
	default:
		return 0
	}
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up/Left"
	case DirDown:
		return "Down/Right"
	default:
		return "None"
	}
}
