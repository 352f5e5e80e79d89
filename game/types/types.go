package types

// Point is a pixel position on the play area. Snake and food positions are
// always multiples of the grid cell size.
type Point struct {
	X, Y int
}

// Add returns p moved by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid represents the play area in pixels, split in square cells
type Grid struct {
	Width    int
	Height   int
	CellSize int
}

// NewGrid builds a grid of cols x rows cells.
func NewGrid(cols, rows, cellSize int) Grid {
	return Grid{
		Width:    cols * cellSize,
		Height:   rows * cellSize,
		CellSize: cellSize,
	}
}

func (g Grid) Cols() int { return g.Width / g.CellSize }
func (g Grid) Rows() int { return g.Height / g.CellSize }

// Cells is the number of cells on the play area.
func (g Grid) Cells() int { return g.Cols() * g.Rows() }

// CellAt converts cell coordinates to a pixel position.
func (g Grid) CellAt(col, row int) Point {
	return Point{X: col * g.CellSize, Y: row * g.CellSize}
}

// Contains reports whether p lies inside the play area.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Direction is one of the four headings the snake can take.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

var directionNames = [...]string{Up: "up", Down: "down", Left: "left", Right: "right"}

func (d Direction) String() string {
	if d < Up || d > Right {
		return "unknown"
	}
	return directionNames[d]
}

// Opposite returns the heading pointing back into the neck.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Step returns the one-cell offset for d.
func (d Direction) Step(cellSize int) Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -cellSize}
	case Down:
		return Point{X: 0, Y: cellSize}
	case Left:
		return Point{X: -cellSize, Y: 0}
	default:
		return Point{X: cellSize, Y: 0}
	}
}

// Segment is one cell of the snake. Facing is the heading the snake had when
// the segment became the head.
type Segment struct {
	Position Point
	IsHead   bool
	Facing   Direction
}

// FoodKind selects the sprite used for a food item.
type FoodKind int

const (
	Apple FoodKind = iota
	Chicken
	Fries
	Taco
	Hotdog
	Popcorn
)

// FastFoodKinds are the kinds served in fast food mode.
var FastFoodKinds = []FoodKind{Chicken, Fries, Taco, Hotdog, Popcorn}

// Food is the single item on the board.
type Food struct {
	Position Point
	Kind     FoodKind
}
