// Package components defines ECS components for the board scene.
package components

// Kind identifies what occupies a cell.
type Kind uint8

const (
	KindObstacle Kind = iota
	KindFood
	KindBody
	KindHead
	NumKinds
)

func (k Kind) String() string {
	switch k {
	case KindObstacle:
		return "obstacle"
	case KindFood:
		return "food"
	case KindBody:
		return "body"
	case KindHead:
		return "head"
	}
	return "unknown"
}

// Cell is a board position in cell units.
type Cell struct {
	X, Y int
}

// Sprite marks what is drawn at a cell.
type Sprite struct {
	Kind    Kind
	Segment int // distance from the head for body segments, 0 otherwise
}
