package ludo

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSelection = errors.New("invalid piece selection")
	ErrPathLookup       = errors.New("position not found in path")
)

type Piece struct {
	Position int
	InPlay   bool
}

// Home returns whether the piece has finished.
func (p Piece) Home() bool {
	return p.Position == PositionHome
}

// Movable returns whether the piece is on the track.
func (p Piece) Movable() bool {
	return p.InPlay && p.Position != PositionHome
}

type Player struct {
	Number int // 0-3, determines the entry cell.
	Pieces [NumPieces]Piece
}

func NewPlayer(number int) *Player {
	p := &Player{
		Number: number,
	}
	for i := range p.Pieces {
		p.Pieces[i].Position = PositionNone
	}
	return p
}

// Enter places the first piece which is not in play on the player's entry
// cell. Nothing happens when all pieces are already in play.
func (p *Player) Enter() (int, bool) {
	for i := range p.Pieces {
		if p.Pieces[i].InPlay {
			continue
		}
		p.Pieces[i].Position = EntryCell(p.Number)
		p.Pieces[i].InPlay = true
		return i, true
	}
	return -1, false
}

// ValidPiece returns an error when the specified piece may not be moved.
func (p *Player) ValidPiece(piece int) error {
	if piece < 0 || piece >= NumPieces {
		return fmt.Errorf("%w: piece %d out of range", ErrInvalidSelection, piece+1)
	} else if !p.Pieces[piece].InPlay {
		return fmt.Errorf("%w: piece %d is not in play", ErrInvalidSelection, piece+1)
	} else if p.Pieces[piece].Home() {
		return fmt.Errorf("%w: piece %d is home", ErrInvalidSelection, piece+1)
	}
	return nil
}

// Move advances a piece along the player's path. When finish is false the
// piece wraps around the path and never reaches home. When finish is true a
// piece which completes a lap is moved home.
func (p *Player) Move(piece int, steps int, finish bool) error {
	err := p.ValidPiece(piece)
	if err != nil {
		return err
	}

	path := PlayerPath(p.Number)
	current := p.Pieces[piece].Position
	offset, ok := path.Offset(current)
	if !ok {
		return fmt.Errorf("%w: player %d piece %d at %d", ErrPathLookup, p.Number+1, piece+1, current)
	}

	if finish && offset+steps >= TrackSize {
		p.Pieces[piece].Position = PositionHome
		return nil
	}
	p.Pieces[piece].Position = path[(offset+steps)%TrackSize]
	return nil
}

// Movable returns the number of pieces on the track.
func (p *Player) Movable() int {
	var n int
	for _, piece := range p.Pieces {
		if piece.Movable() {
			n++
		}
	}
	return n
}

// firstMovable returns the index of the first piece on the track.
func (p *Player) firstMovable() int {
	for i, piece := range p.Pieces {
		if piece.Movable() {
			return i
		}
	}
	return -1
}

// Won returns whether all of the player's pieces are home.
func (p *Player) Won() bool {
	for _, piece := range p.Pieces {
		if !piece.Home() {
			return false
		}
	}
	return true
}

func (p *Player) Copy() *Player {
	c := *p
	return &c
}
