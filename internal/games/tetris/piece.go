package tetris

import (
	"strings"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Randomizer picks shape indices. *rand.Rand satisfies it; tests inject
// fixed sequences.
type Randomizer interface {
	Intn(n int) int
}

// Kind identifies one of the seven tetrominoes.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindL
	KindJ
	KindS
	KindZ
)

// KindCount is the number of canonical tetrominoes.
const KindCount = 7

// String returns the conventional one-letter name.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindL:
		return "L"
	case KindJ:
		return "J"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	default:
		return "?"
	}
}

// Shape is a rectangular occupancy matrix indexed [row][col].
type Shape [][]bool

// ParseShape builds a shape from rows of '#' (occupied) and '.' (empty).
func ParseShape(rows ...string) Shape {
	s := make(Shape, len(rows))
	for i, row := range rows {
		s[i] = make([]bool, len(row))
		for j, c := range row {
			s[i][j] = c == '#'
		}
	}
	return s
}

// Rows returns the number of rows.
func (s Shape) Rows() int {
	return len(s)
}

// Cols returns the number of columns.
func (s Shape) Cols() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Rotated returns a new matrix rotated 90° clockwise: row i of the result is
// column i of s read bottom to top. s is not modified.
func (s Shape) Rotated() Shape {
	rows, cols := s.Rows(), s.Cols()
	out := make(Shape, cols)
	for i := range out {
		out[i] = make([]bool, rows)
		for j := range out[i] {
			out[i][j] = s[rows-1-j][i]
		}
	}
	return out
}

// Clone returns a deep copy.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	for i := range s {
		out[i] = append([]bool(nil), s[i]...)
	}
	return out
}

// Equal reports whether both shapes have the same dimensions and cells.
func (s Shape) Equal(other Shape) bool {
	if s.Rows() != other.Rows() || s.Cols() != other.Cols() {
		return false
	}
	for i := range s {
		for j := range s[i] {
			if s[i][j] != other[i][j] {
				return false
			}
		}
	}
	return true
}

// String renders the shape with '#' and '.', rows separated by '/'.
func (s Shape) String() string {
	rows := make([]string, len(s))
	for i, row := range s {
		var b strings.Builder
		for _, c := range row {
			if c {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		rows[i] = b.String()
	}
	return strings.Join(rows, "/")
}

// shapeDef pairs a spawn orientation with its fixed color.
type shapeDef struct {
	shape Shape
	color core.Color
}

// shapeDefs is indexed by Kind.
var shapeDefs = [KindCount]shapeDef{
	KindI: {ParseShape("####"), core.ColorCyan},
	KindO: {ParseShape("##", "##"), core.ColorYellow},
	KindT: {ParseShape("###", ".#."), core.ColorMagenta},
	KindL: {ParseShape("###", "#.."), core.ColorOrange},
	KindJ: {ParseShape("###", "..#"), core.ColorBlue},
	KindS: {ParseShape(".##", "##."), core.ColorGreen},
	KindZ: {ParseShape("##.", ".##"), core.ColorRed},
}

// Piece is one tetromino instance on the board. X is the anchor column and Y
// the anchor row of the shape's top-left corner.
type Piece struct {
	Kind  Kind
	Shape Shape
	Color core.Color
	X, Y  int
}

// SpawnColumn returns the anchor column for new pieces: a 4-wide box
// centered on the board.
func SpawnColumn(boardWidth int) int {
	return (boardWidth - 4) / 2
}

// NewPiece creates a piece of the given kind at the spawn position.
func NewPiece(kind Kind, boardWidth int) Piece {
	def := shapeDefs[kind]
	return Piece{
		Kind:  kind,
		Shape: def.shape.Clone(),
		Color: def.color,
		X:     SpawnColumn(boardWidth),
		Y:     0,
	}
}

// Spawn picks a kind uniformly at random and creates it at the spawn position.
func Spawn(rng Randomizer, boardWidth int) Piece {
	return NewPiece(Kind(rng.Intn(KindCount)), boardWidth)
}

// RotatedShape returns the piece's shape rotated clockwise without changing
// the piece. The caller validates before committing.
func (p Piece) RotatedShape() Shape {
	return p.Shape.Rotated()
}

// Clone returns a copy that shares no shape storage with p.
func (p Piece) Clone() Piece {
	p.Shape = p.Shape.Clone()
	return p
}

// Cells calls fn with the absolute board coordinate of every occupied cell.
func (p Piece) Cells(fn func(x, y int)) {
	for i, row := range p.Shape {
		for j, filled := range row {
			if filled {
				fn(p.X+j, p.Y+i)
			}
		}
	}
}
