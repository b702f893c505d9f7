package maze

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLayout_TinyMaze(t *testing.T) {
	layout, err := Builtin("tinyMaze")
	require.NoError(t, err)

	assert.Equal(t, 7, layout.Width)
	assert.Equal(t, 7, layout.Height)
	assert.Equal(t, Position{5, 5}, layout.Start)
	assert.Equal(t, []Position{{1, 1}}, layout.Food)

	assert.True(t, layout.IsWall(Position{0, 0}))
	assert.True(t, layout.IsWall(Position{2, 4}))
	assert.False(t, layout.IsWall(Position{5, 4}))
	assert.True(t, layout.IsWall(Position{-1, 3}), "off-grid cells are walls")
	assert.True(t, layout.IsWall(Position{7, 3}))
}

func TestParseLayout_RoundTrip(t *testing.T) {
	text, err := BuiltinText("smallMaze")
	require.NoError(t, err)

	layout, err := ParseLayout(text)
	require.NoError(t, err)
	assert.Equal(t, text, layout.String())
}

func TestParseLayout_Errors(t *testing.T) {
	_, err := ParseLayout("%%%\n% %\n%%%\n")
	assert.ErrorIs(t, err, ErrNoStart)

	_, err = ParseLayout("%%%%\n%P%\n%%%%\n")
	assert.ErrorIs(t, err, ErrRaggedLayout)

	_, err = ParseLayout("\n\n")
	assert.ErrorIs(t, err, ErrNoStart)
}

func TestParseLayout_TrimsBlankLinesAndCRLF(t *testing.T) {
	layout, err := ParseLayout("\r\n%%%%\r\n%P.%\r\n%%%%\r\n\r\n")
	require.NoError(t, err)
	assert.Equal(t, 3, layout.Height)
	assert.Equal(t, Position{1, 1}, layout.Start)
	assert.Equal(t, []Position{{2, 1}}, layout.Food)
}

func TestLoadLayout(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.lay")
	require.NoError(t, os.WriteFile(path, []byte("%%%%\n%P.%\n%%%%\n"), 0o644))

	layout, err := LoadLayout(path)
	require.NoError(t, err)
	assert.Equal(t, 4, layout.Width)

	resolved, err := Resolve(path)
	require.NoError(t, err)
	assert.Equal(t, layout, resolved)

	_, err = LoadLayout(filepath.Join(dir, "missing.lay"))
	assert.Error(t, err)
}

func TestBuiltin(t *testing.T) {
	assert.Equal(t, []string{"openMaze", "smallMaze", "tinyCorners", "tinyMaze"}, BuiltinNames())

	for _, name := range BuiltinNames() {
		_, err := Builtin(name)
		assert.NoError(t, err, name)
	}

	_, err := Builtin("hugeMaze")
	assert.ErrorIs(t, err, ErrUnknownLayout)

	layout, err := Resolve("openMaze")
	require.NoError(t, err)
	assert.Equal(t, Position{1, 4}, layout.Start)
}

func TestLayout_Corners(t *testing.T) {
	layout, err := Builtin("tinyCorners")
	require.NoError(t, err)
	assert.Equal(t, [4]Position{{1, 1}, {1, 6}, {6, 1}, {6, 6}}, layout.Corners())
	for _, corner := range layout.Corners() {
		assert.False(t, layout.IsWall(corner), corner.String())
	}
}

func TestLayout_TraceAndRender(t *testing.T) {
	layout, err := Builtin("tinyMaze")
	require.NoError(t, err)

	positions, err := layout.Trace(TinyMazeSearch())
	require.NoError(t, err)
	assert.Equal(t, layout.Start, positions[0])
	assert.Equal(t, layout.Food[0], positions[len(positions)-1])

	rendered := layout.Render(positions)
	assert.Equal(t, "%%%%%%%\n%    P%\n% %%%*%\n%  %**%\n%%***%%\n%.*%%%%\n%%%%%%%\n", rendered)

	_, err = layout.Trace([]Direction{North})
	assert.Error(t, err)
}

func TestDirection(t *testing.T) {
	for _, d := range []Direction{North, South, East, West, Stop} {
		dx, dy := d.Vector()
		rx, ry := d.Reverse().Vector()
		assert.Equal(t, -dx, rx, d)
		assert.Equal(t, -dy, ry, d)
	}
	assert.Equal(t, Position{3, 5}, Position{3, 4}.Move(North))
	assert.Equal(t, "(3,4)", Position{3, 4}.String())
}

func TestGenerate(t *testing.T) {
	options := GenerateOptions{Width: 20, Height: 12, Seed: 42}
	first := Generate(options)
	second := Generate(options)

	assert.Equal(t, first.String(), second.String(), "same seed, same layout")
	assert.Equal(t, 20, first.Width)
	assert.Equal(t, 12, first.Height)
	assert.Equal(t, Position{1, 1}, first.Start)
	assert.Equal(t, []Position{{18, 10}}, first.Food)
	assert.False(t, first.IsWall(first.Start))
	assert.False(t, first.IsWall(first.Food[0]))

	for x := 0; x < first.Width; x++ {
		assert.True(t, first.IsWall(Position{x, 0}))
		assert.True(t, first.IsWall(Position{x, first.Height - 1}))
	}

	reparsed, err := ParseLayout(first.String())
	require.NoError(t, err)
	assert.Equal(t, first.String(), reparsed.String())
}

func TestGenerate_Defaults(t *testing.T) {
	layout := Generate(GenerateOptions{Seed: 7})
	assert.Equal(t, 40, layout.Width)
	assert.Equal(t, 24, layout.Height)
}

func TestGenerate_ClampsOversizedRequests(t *testing.T) {
	layout := Generate(GenerateOptions{Width: 100000, Height: 100000, Clusters: 1 << 30, Steps: 1 << 30, Seed: 3})
	assert.Equal(t, MaxGenerateSize, layout.Width)
	assert.Equal(t, MaxGenerateSize, layout.Height)
	assert.Equal(t, []Position{{MaxGenerateSize - 2, MaxGenerateSize - 2}}, layout.Food)
}

func TestGenerate_ZeroDensity(t *testing.T) {
	density := 0.0
	layout := Generate(GenerateOptions{Width: 12, Height: 8, Density: &density, Seed: 11})

	for x := 1; x < layout.Width-1; x++ {
		for y := 1; y < layout.Height-1; y++ {
			assert.False(t, layout.IsWall(Position{x, y}), "inner cell (%d,%d)", x, y)
		}
	}
}
