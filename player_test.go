package ludo

import (
	"errors"
	"testing"
)

func TestNewPlayer(t *testing.T) {
	p := NewPlayer(2)
	if p.Number != 2 {
		t.Fatalf("Number = %d, want 2", p.Number)
	}
	for i, piece := range p.Pieces {
		if piece.InPlay || piece.Position != PositionNone {
			t.Errorf("piece %d = %+v, want not in play", i, piece)
		}
	}
}

func TestEnter(t *testing.T) {
	p := NewPlayer(1)
	for i := 0; i < NumPieces; i++ {
		piece, ok := p.Enter()
		if !ok || piece != i {
			t.Fatalf("Enter() = %d, %v, want %d, true", piece, ok, i)
		}
		if p.Pieces[i].Position != 13 {
			t.Errorf("piece %d entered at %d, want 13", i, p.Pieces[i].Position)
		}
	}

	p.Pieces[2].Position = 40
	before := p.Pieces
	piece, ok := p.Enter()
	if ok || piece != -1 {
		t.Fatalf("Enter() with all pieces in play = %d, %v, want -1, false", piece, ok)
	}
	if p.Pieces != before {
		t.Errorf("pieces changed: %+v, want %+v", p.Pieces, before)
	}
}

func TestMoveWraps(t *testing.T) {
	p := NewPlayer(3)
	p.Enter()

	err := p.Move(0, 12, false)
	if err != nil {
		t.Fatal(err)
	}
	if p.Pieces[0].Position != 51 {
		t.Fatalf("position = %d, want 51", p.Pieces[0].Position)
	}

	err = p.Move(0, 2, false)
	if err != nil {
		t.Fatal(err)
	}
	if p.Pieces[0].Position != 1 {
		t.Fatalf("position = %d, want 1", p.Pieces[0].Position)
	}

	err = p.Move(0, 38, false)
	if err != nil {
		t.Fatal(err)
	}
	if p.Pieces[0].Position != 39 {
		t.Fatalf("position = %d, want 39 after a full lap", p.Pieces[0].Position)
	}
}

func TestMoveComposition(t *testing.T) {
	for player := 0; player < MaxPlayers; player++ {
		for a := 1; a <= 60; a += 7 {
			for b := 1; b <= 60; b += 5 {
				split := NewPlayer(player)
				split.Enter()
				whole := split.Copy()

				if err := split.Move(0, a, false); err != nil {
					t.Fatal(err)
				}
				if err := split.Move(0, b, false); err != nil {
					t.Fatal(err)
				}
				if err := whole.Move(0, a+b, false); err != nil {
					t.Fatal(err)
				}
				if split.Pieces[0].Position != whole.Pieces[0].Position {
					t.Errorf("player %d: %d then %d = %d, %d at once = %d", player, a, b, split.Pieces[0].Position, a+b, whole.Pieces[0].Position)
				}
			}
		}
	}
}

func TestMoveFinish(t *testing.T) {
	p := NewPlayer(1)
	p.Enter()
	if err := p.Move(0, 50, true); err != nil {
		t.Fatal(err)
	}
	if p.Pieces[0].Position != 11 {
		t.Fatalf("position = %d, want 11", p.Pieces[0].Position)
	}
	if err := p.Move(0, 2, true); err != nil {
		t.Fatal(err)
	}
	if !p.Pieces[0].Home() {
		t.Fatalf("position = %d, want home", p.Pieces[0].Position)
	}

	err := p.Move(0, 1, true)
	if !errors.Is(err, ErrInvalidSelection) {
		t.Fatalf("moving a piece which is home: got %v, want %v", err, ErrInvalidSelection)
	}
	if !p.Pieces[0].Home() {
		t.Fatal("piece left home")
	}
}

func TestMoveInvalid(t *testing.T) {
	p := NewPlayer(0)
	p.Enter()
	for _, piece := range []int{-1, 1, NumPieces} {
		err := p.Move(piece, 3, false)
		if !errors.Is(err, ErrInvalidSelection) {
			t.Errorf("Move(%d) error = %v, want %v", piece, err, ErrInvalidSelection)
		}
	}
}

func TestMovePathLookupFailure(t *testing.T) {
	p := NewPlayer(0)
	p.Enter()
	p.Pieces[0].Position = 77

	err := p.Move(0, 3, false)
	if !errors.Is(err, ErrPathLookup) {
		t.Fatalf("error = %v, want %v", err, ErrPathLookup)
	}
	if p.Pieces[0].Position != 77 {
		t.Errorf("position = %d, want 77", p.Pieces[0].Position)
	}
}

func TestWon(t *testing.T) {
	tests := []struct {
		name      string
		positions [NumPieces]int
		won       bool
	}{
		{"all home", [NumPieces]int{PositionHome, PositionHome, PositionHome, PositionHome}, true},
		{"one on track", [NumPieces]int{PositionHome, PositionHome, PositionHome, 47}, false},
		{"one not entered", [NumPieces]int{PositionHome, PositionNone, PositionHome, PositionHome}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(0)
			for i, position := range tt.positions {
				p.Pieces[i] = Piece{Position: position, InPlay: position != PositionNone}
			}
			if p.Won() != tt.won {
				t.Errorf("Won() = %v, want %v", p.Won(), tt.won)
			}
		})
	}
}
