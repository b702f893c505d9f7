package maze

// Direction is the action label of the grid world.
type Direction string

const (
	North Direction = "North"
	South Direction = "South"
	East  Direction = "East"
	West  Direction = "West"
	Stop  Direction = "Stop"
)

// moveOrder is the order successors are generated in.
var moveOrder = []Direction{North, South, East, West}

// Vector returns the unit displacement of d.
func (d Direction) Vector() (dx, dy int) {
	switch d {
	case North:
		return 0, 1
	case South:
		return 0, -1
	case East:
		return 1, 0
	case West:
		return -1, 0
	}
	return 0, 0
}

// Reverse returns the opposite direction. Stop is its own reverse.
func (d Direction) Reverse() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	return d
}

// TinyMazeSearch returns the fixed move sequence that solves tinyMaze and
// nothing else.
func TinyMazeSearch() []Direction {
	s, w := South, West
	return []Direction{s, s, w, s, w, w, s, w}
}
