package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/othello6/internal/entity"
	"github.com/rocketscienceinc/othello6/internal/othello"
)

// renderBoard prints the grid with row and column indexes followed by the score.
func renderBoard(out io.Writer, board *othello.Board) {
	var sb strings.Builder

	sb.WriteString("   ")
	for col := 0; col < othello.Size; col++ {
		fmt.Fprintf(&sb, "%d ", col)
	}
	sb.WriteString("\n   ")
	sb.WriteString(strings.Repeat("--", othello.Size))
	sb.WriteString("\n")

	for row := 0; row < othello.Size; row++ {
		fmt.Fprintf(&sb, "%d| ", row)
		for col := 0; col < othello.Size; col++ {
			sb.WriteString(board.At(row, col).String())
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}

	black, white := board.Score()
	fmt.Fprintf(&sb, "\nScore -> Black: %d  White: %d\n\n", black, white)

	_, _ = io.WriteString(out, sb.String())
}

func renderMoves(out io.Writer, moves []othello.Position) {
	parts := make([]string, 0, len(moves))
	for _, move := range moves {
		parts = append(parts, fmt.Sprintf("[%d,%d]", move.Row, move.Col))
	}

	fmt.Fprintf(out, "Valid moves: %s\n", strings.Join(parts, " "))
}

func renderResult(out io.Writer, game *entity.Game) {
	black, white := game.Board.Score()

	fmt.Fprintln(out, "Game Over!")
	fmt.Fprintf(out, "Final Score -> Black: %d  White: %d\n", black, white)

	if game.IsDraw() {
		fmt.Fprintln(out, "It's a draw!")
		return
	}

	fmt.Fprintf(out, "%s wins!\n", playerLabel(game, game.Winner))
}

// playerLabel names a seat, e.g. "Alice (B)", or just the colour for unnamed seats.
func playerLabel(game *entity.Game, mark othello.Cell) string {
	color := entity.ColorName(mark)

	player := game.PlayerByMark(mark)
	if player == nil || player.Name == "" || player.Name == color {
		return color
	}

	return fmt.Sprintf("%s (%s)", player.Name, mark)
}
