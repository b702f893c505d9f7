package maze

import (
	"math/rand"
	"time"
)

// MaxGenerateSize bounds both dimensions of a generated layout.
const MaxGenerateSize = 200

const (
	maxClusters = 100
	maxSteps    = 10000
)

// GenerateOptions controls Generate. Zero fields take the defaults and
// oversized ones are clamped.
type GenerateOptions struct {
	Width    int
	Height   int
	Clusters int
	Steps    int
	// Density is the chance a walk step lays a wall; nil means 0.25 and a
	// pointer to zero means no walls at all.
	Density *float64
	// Seed makes the layout reproducible; zero picks a time-based seed.
	Seed int64
}

func (o GenerateOptions) withDefaults() GenerateOptions {
	if o.Width < 5 {
		o.Width = 40
	}
	o.Width = min(o.Width, MaxGenerateSize)
	if o.Height < 5 {
		o.Height = 24
	}
	o.Height = min(o.Height, MaxGenerateSize)
	if o.Clusters <= 0 {
		o.Clusters = 8
	}
	o.Clusters = min(o.Clusters, maxClusters)
	if o.Steps <= 0 {
		o.Steps = 200
	}
	o.Steps = min(o.Steps, maxSteps)
	if o.Density == nil || *o.Density < 0 || *o.Density > 1 {
		density := 0.25
		o.Density = &density
	}
	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()
	}
	return o
}

// Generate builds a walled grid with clustered random walls laid by random
// walks. The start is the bottom-left inner corner and the single food the
// top-right one; a path between them is not guaranteed.
func Generate(options GenerateOptions) *Layout {
	options = options.withDefaults()
	r := rand.New(rand.NewSource(options.Seed))

	layout := &Layout{Width: options.Width, Height: options.Height}
	layout.walls = make([][]bool, layout.Width)
	for x := range layout.walls {
		layout.walls[x] = make([]bool, layout.Height)
		for y := range layout.walls[x] {
			layout.walls[x][y] = x == 0 || y == 0 || x == layout.Width-1 || y == layout.Height-1
		}
	}
	layout.Start = Position{X: 1, Y: 1}
	goal := Position{X: layout.Width - 2, Y: layout.Height - 2}
	layout.Food = []Position{goal}

	// clustered random walls via random walks
	for c := 0; c < options.Clusters; c++ {
		p := Position{X: 1 + r.Intn(layout.Width-2), Y: 1 + r.Intn(layout.Height-2)}
		for s := 0; s < options.Steps; s++ {
			if r.Float64() < *options.Density && p != layout.Start && p != goal {
				layout.walls[p.X][p.Y] = true
			}
			next := p.Move(moveOrder[r.Intn(len(moveOrder))])
			if next.X > 0 && next.X < layout.Width-1 && next.Y > 0 && next.Y < layout.Height-1 {
				p = next
			}
		}
	}
	return layout
}
