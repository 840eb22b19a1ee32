package board

// Direction is a unit velocity with exactly one nonzero component.
type Direction struct {
	X, Y int
}

// The four movement directions. Screen coordinates grow downward.
var (
	Up    = Direction{X: 0, Y: -1}
	Down  = Direction{X: 0, Y: 1}
	Left  = Direction{X: -1, Y: 0}
	Right = Direction{X: 1, Y: 0}
)

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	return Direction{X: -d.X, Y: -d.Y}
}

// IsReverse reports whether d points exactly opposite to other.
func (d Direction) IsReverse(other Direction) bool {
	return d == other.Reverse()
}

// Valid reports whether d is one of Up, Down, Left or Right.
func (d Direction) Valid() bool {
	switch d {
	case Up, Down, Left, Right:
		return true
	}
	return false
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}
