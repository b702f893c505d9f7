package maze

import (
	"fmt"
	"os"
	"strings"
)

const (
	wallCell  = '%'
	startCell = 'P'
	foodCell  = '.'
	pathCell  = '*'
	openCell  = ' '
)

// Layout is an immutable parsed grid.
type Layout struct {
	Width  int
	Height int
	Start  Position
	// Food lists the pellets in reading order (top row first, left to right).
	Food  []Position
	walls [][]bool
}

// ParseLayout reads the text format. Blank lines around the grid are ignored.
func ParseLayout(text string) (*Layout, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, ErrNoStart
	}

	layout := &Layout{Width: len(lines[0]), Height: len(lines)}
	layout.walls = make([][]bool, layout.Width)
	for x := range layout.walls {
		layout.walls[x] = make([]bool, layout.Height)
	}

	hasStart := false
	for row, line := range lines {
		if len(line) != layout.Width {
			return nil, fmt.Errorf("%w: row %d is %d wide, expected %d", ErrRaggedLayout, row, len(line), layout.Width)
		}
		y := layout.Height - 1 - row
		for x, cell := range line {
			switch cell {
			case wallCell:
				layout.walls[x][y] = true
			case startCell:
				layout.Start = Position{X: x, Y: y}
				hasStart = true
			case foodCell:
				layout.Food = append(layout.Food, Position{X: x, Y: y})
			}
		}
	}
	if !hasStart {
		return nil, ErrNoStart
	}
	return layout, nil
}

// LoadLayout reads and parses a layout file.
func LoadLayout(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout: %w", err)
	}
	layout, err := ParseLayout(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return layout, nil
}

// InBounds reports whether p lies on the grid.
func (l *Layout) InBounds(p Position) bool {
	return p.X >= 0 && p.X < l.Width && p.Y >= 0 && p.Y < l.Height
}

// IsWall reports whether p is a wall. Cells off the grid count as walls.
func (l *Layout) IsWall(p Position) bool {
	return !l.InBounds(p) || l.walls[p.X][p.Y]
}

// Corners returns the four inner corners: bottom-left, top-left, bottom-right, top-right.
func (l *Layout) Corners() [4]Position {
	top, right := l.Height-2, l.Width-2
	return [4]Position{{1, 1}, {1, top}, {right, 1}, {right, top}}
}

// String renders the layout back to its text form.
func (l *Layout) String() string {
	return l.Render(nil)
}

// Render draws the layout with path marked by '*'. Start and food cells keep
// their own symbols.
func (l *Layout) Render(path []Position) string {
	onPath := make(map[Position]bool, len(path))
	for _, p := range path {
		onPath[p] = true
	}
	food := make(map[Position]bool, len(l.Food))
	for _, p := range l.Food {
		food[p] = true
	}

	var b strings.Builder
	for y := l.Height - 1; y >= 0; y-- {
		for x := 0; x < l.Width; x++ {
			p := Position{X: x, Y: y}
			switch {
			case l.walls[x][y]:
				b.WriteByte(wallCell)
			case p == l.Start:
				b.WriteByte(startCell)
			case food[p]:
				b.WriteByte(foodCell)
			case onPath[p]:
				b.WriteByte(pathCell)
			default:
				b.WriteByte(openCell)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Trace applies actions from the start and returns every position visited,
// start included. It stops with an error at the first move into a wall.
func (l *Layout) Trace(actions []Direction) ([]Position, error) {
	current := l.Start
	positions := []Position{current}
	for i, action := range actions {
		next := current.Move(action)
		if l.IsWall(next) {
			return positions, fmt.Errorf("move %d (%s) from %s hits a wall", i, action, current)
		}
		current = next
		positions = append(positions, current)
	}
	return positions, nil
}
