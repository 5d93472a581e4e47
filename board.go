package ludo

// the track is stored as absolute cells 0-51
// each player walks the same track starting from its own entry cell
// step counts are always measured along the player's path, never in absolute cells

const (
	TrackSize  = 52
	NumPieces  = 4
	MinPlayers = 2
	MaxPlayers = 4
)

// Position values outside of the track.
const (
	PositionNone = -1  // Piece has not entered play.
	PositionHome = 100 // Piece has finished. Never changes afterwards.
)

var entryCells = [MaxPlayers]int{0, 13, 26, 39}

// Path is a player's rotation of the track. Path[0] is the player's entry cell.
type Path [TrackSize]int

var paths [MaxPlayers]Path

func init() {
	for player := range paths {
		for i := 0; i < TrackSize; i++ {
			paths[player][i] = (entryCells[player] + i) % TrackSize
		}
	}
}

// EntryCell returns the absolute cell where the player's pieces enter the track.
func EntryCell(player int) int {
	return entryCells[player]
}

// PlayerPath returns the path walked by the pieces of the specified player.
func PlayerPath(player int) Path {
	return paths[player]
}

// Offset returns the index within the path of the specified absolute cell.
func (p Path) Offset(cell int) (int, bool) {
	for i := range p {
		if p[i] == cell {
			return i, true
		}
	}
	return -1, false
}
