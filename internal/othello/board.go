package othello

// Size is the fixed board dimension.
const Size = 6

// Cell holds the state of one square of the board.
type Cell uint8

const (
	Empty Cell = iota
	Black      // moves first
	White
)

// Position addresses a square by row and column.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// directions lists the 8 compass vectors, row-major from the top-left neighbour.
var directions = [8]Position{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// IsPlayer reports whether the cell is one of the two player colours.
func (that Cell) IsPlayer() bool {
	return that == Black || that == White
}

// Opponent returns the other player's colour, or Empty for Empty.
func (that Cell) Opponent() Cell {
	switch that {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

func (that Cell) String() string {
	switch that {
	case Black:
		return "B"
	case White:
		return "W"
	default:
		return "."
	}
}

// Board is the 6x6 grid. The zero value is an empty board; call Initialize
// (or use NewBoard) to get the starting position.
type Board [Size][Size]Cell

// NewBoard returns a board set up with the starting position.
func NewBoard() Board {
	var board Board
	board.Initialize()

	return board
}

// Initialize clears the grid and places the four center pieces.
func (that *Board) Initialize() {
	*that = Board{}

	mid := Size / 2
	that[mid-1][mid-1], that[mid][mid] = White, White
	that[mid-1][mid], that[mid][mid-1] = Black, Black
}

func (that *Board) IsInBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// At returns the cell at (row, col), Empty when the coordinates are off the board.
func (that *Board) At(row, col int) Cell {
	if !that.IsInBounds(row, col) {
		return Empty
	}

	return that[row][col]
}

// capturedRun scans from the square next to (row, col) along dir and returns the
// maximal run of opponent pieces when it is closed by one of player's pieces.
// It returns nil when nothing would be captured in that direction.
func (that *Board) capturedRun(player Cell, row, col int, dir Position) []Position {
	opponent := player.Opponent()

	var run []Position

	r, c := row+dir.Row, col+dir.Col
	for that.IsInBounds(r, c) && that[r][c] == opponent {
		run = append(run, Position{Row: r, Col: c})
		r, c = r+dir.Row, c+dir.Col
	}

	if len(run) == 0 || !that.IsInBounds(r, c) || that[r][c] != player {
		return nil
	}

	return run
}

// IsValidMove reports whether player may place a piece at (row, col).
// It never panics: off-board coordinates are simply not valid.
func (that *Board) IsValidMove(player Cell, row, col int) bool {
	if !player.IsPlayer() || !that.IsInBounds(row, col) || that[row][col] != Empty {
		return false
	}

	for _, dir := range directions {
		if len(that.capturedRun(player, row, col, dir)) > 0 {
			return true
		}
	}

	return false
}

// ValidMoves lists every legal square for player in row-major order.
func (that *Board) ValidMoves(player Cell) []Position {
	var moves []Position

	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if that.IsValidMove(player, row, col) {
				moves = append(moves, Position{Row: row, Col: col})
			}
		}
	}

	return moves
}

// ApplyMove places player's piece at (row, col) and flips every captured run.
// An invalid move leaves the board untouched and returns nil; otherwise the
// flipped squares are returned in direction order.
func (that *Board) ApplyMove(player Cell, row, col int) []Position {
	if !that.IsValidMove(player, row, col) {
		return nil
	}

	// collect first: each direction is judged against the board as it was before the move
	var flipped []Position
	for _, dir := range directions {
		flipped = append(flipped, that.capturedRun(player, row, col, dir)...)
	}

	that[row][col] = player
	for _, pos := range flipped {
		that[pos.Row][pos.Col] = player
	}

	return flipped
}

func (that *Board) HasAnyValidMove(player Cell) bool {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if that.IsValidMove(player, row, col) {
				return true
			}
		}
	}

	return false
}

func (that *Board) IsFull() bool {
	for _, line := range that {
		for _, cell := range line {
			if cell == Empty {
				return false
			}
		}
	}

	return true
}

// IsGameOver is a global check: the board is full or neither colour can move.
func (that *Board) IsGameOver() bool {
	return that.IsFull() || (!that.HasAnyValidMove(Black) && !that.HasAnyValidMove(White))
}

// Score counts the pieces of each colour.
func (that *Board) Score() (int, int) {
	var black, white int

	for _, line := range that {
		for _, cell := range line {
			switch cell {
			case Black:
				black++
			case White:
				white++
			}
		}
	}

	return black, white
}

// Winner returns the colour with more pieces, or Empty on a tie.
func (that *Board) Winner() Cell {
	black, white := that.Score()

	switch {
	case black > white:
		return Black
	case white > black:
		return White
	default:
		return Empty
	}
}
