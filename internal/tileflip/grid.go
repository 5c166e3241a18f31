package tileflip

import "fmt"

// Grid size limits. Hosts may configure a lower maximum.
const (
	MinGridSize = 2
	MaxGridSize = 100
)

// Grid is the size×size matrix of two-colored tiles.
// Cells are stored in row-major order: index = y*size + x.
// A true cell is a dark tile, false is a light tile.
type Grid struct {
	size  int
	seed  int32
	cells []bool
}

// NewGrid generates a grid by drawing one value per cell from a fresh
// Random(seed) in row-major order. The same (size, seed) pair always yields
// the same grid.
func NewGrid(size int, seed int32) (*Grid, error) {
	if err := ValidateSize(size, MaxGridSize); err != nil {
		return nil, err
	}

	rng := NewRandom(seed)
	cells := make([]bool, size*size)
	for i := range cells {
		cells[i] = rng.Next() > 0.5
	}

	return &Grid{size: size, seed: seed, cells: cells}, nil
}

// ValidateSize checks size against MinGridSize and the given maximum.
// A maximum of 0 or one above MaxGridSize is treated as MaxGridSize.
func ValidateSize(size, maxSize int) error {
	if maxSize <= 0 || maxSize > MaxGridSize {
		maxSize = MaxGridSize
	}
	if size < MinGridSize || size > maxSize {
		return fmt.Errorf("%w: %d (must be between %d and %d)", ErrInvalidSize, size, MinGridSize, maxSize)
	}
	return nil
}

// Size returns the grid dimension.
func (g *Grid) Size() int {
	return g.size
}

// Seed returns the seed the grid was generated from.
func (g *Grid) Seed() int32 {
	return g.seed
}

// InBounds returns true if (x, y) addresses a cell of this grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.size && y >= 0 && y < g.size
}

func (g *Grid) index(x, y int) int {
	return y*g.size + x
}

// Cell returns the color of the cell at (x, y).
func (g *Grid) Cell(x, y int) (bool, error) {
	if !g.InBounds(x, y) {
		return false, g.coordError(x, y)
	}
	return g.cells[g.index(x, y)], nil
}

// Flip toggles exactly the cell at (x, y).
func (g *Grid) Flip(x, y int) error {
	if !g.InBounds(x, y) {
		return g.coordError(x, y)
	}
	i := g.index(x, y)
	g.cells[i] = !g.cells[i]
	return nil
}

// IsUniform returns true if every cell has the color of cell (0, 0).
func (g *Grid) IsUniform() bool {
	if len(g.cells) == 0 {
		return true
	}
	first := g.cells[0]
	for _, c := range g.cells[1:] {
		if c != first {
			return false
		}
	}
	return true
}

// CountDark returns the number of dark (true) cells.
func (g *Grid) CountDark() int {
	n := 0
	for _, c := range g.cells {
		if c {
			n++
		}
	}
	return n
}

// Cells returns a copy of the cells in row-major order.
func (g *Grid) Cells() []bool {
	out := make([]bool, len(g.cells))
	copy(out, g.cells)
	return out
}

// Equal returns true if both grids have the same size and cells.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.size != other.size {
		return false
	}
	for i, c := range g.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}

func (g *Grid) coordError(x, y int) error {
	return fmt.Errorf("%w: (%d, %d) outside %dx%d grid", ErrInvalidCoordinate, x, y, g.size, g.size)
}
