package session

import (
	"strconv"

	"codeberg.org/tslocum/gotext"
	"codeberg.org/tslocum/ludo"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	turnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// pieceLabel returns H for pieces which are home, NP for pieces not in play
// and the absolute cell of all other pieces.
func pieceLabel(piece ludo.Piece) string {
	switch {
	case piece.Home():
		return "H"
	case piece.InPlay:
		return strconv.Itoa(piece.Position)
	default:
		return "NP"
	}
}

func renderBoard(domain string, s ludo.GameState) string {
	headers := []string{gotext.GetD(domain, "Player")}
	for i := 1; i <= ludo.NumPieces; i++ {
		headers = append(headers, gotext.GetD(domain, "Piece %d", i))
	}

	rows := make([][]string, 0, len(s.Players))
	for _, p := range s.Players {
		row := []string{strconv.Itoa(p.Number + 1)}
		for _, piece := range p.Pieces {
			row = append(row, pieceLabel(piece))
		}
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderHeader(true).
		BorderRow(false).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			} else if row == s.Turn && s.Winner == -1 {
				return turnStyle.Padding(0, 1)
			}
			return cellStyle
		})

	return gotext.GetD(domain, "Current Board:") + "\n" + t.Render() + "\n"
}
