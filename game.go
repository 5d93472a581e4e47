package ludo

import (
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
)

// MaxChances is the number of rolls a player may take in one turn. Only
// rolling a 6 grants another roll.
const MaxChances = 3

type Rules struct {
	Finish bool // Pieces completing a lap of their path are moved home.
}

type Game struct {
	ID      string
	Players []*Player
	Turn    int
	Winner  int // -1 until a player wins.
	Rules

	dice     Dice
	input    Input
	listener func(e interface{})
}

func NewGame(numPlayers int, dice Dice, input Input) (*Game, error) {
	if numPlayers < MinPlayers || numPlayers > MaxPlayers {
		return nil, fmt.Errorf("invalid number of players %d: must be between %d and %d", numPlayers, MinPlayers, MaxPlayers)
	}
	g := &Game{
		ID:     uuid.NewString(),
		Winner: -1,
		dice:   dice,
		input:  input,
	}
	for i := 0; i < numPlayers; i++ {
		g.Players = append(g.Players, NewPlayer(i))
	}
	return g, nil
}

// SetListener sets a function which is called with every event emitted by the game.
func (g *Game) SetListener(f func(e interface{})) {
	g.listener = f
}

func (g *Game) emit(e interface{}) {
	switch ev := e.(type) {
	case *EventOpeningRoll:
		ev.Type = EventTypeOpeningRoll
	case *EventStarted:
		ev.Type = EventTypeStarted
	case *EventTurn:
		ev.Type = EventTypeTurn
	case *EventRolled:
		ev.Type = EventTypeRolled
	case *EventEntered:
		ev.Type = EventTypeEntered
	case *EventMoved:
		ev.Type = EventTypeMoved
	case *EventSkipped:
		ev.Type = EventTypeSkipped
	case *EventFailedMove:
		ev.Type = EventTypeFailedMove
	case *EventWin:
		ev.Type = EventTypeWin
	case *EventBoard:
		ev.Type = EventTypeBoard
	default:
		log.Panicf("unknown event type: %+v", ev)
	}
	if g.listener != nil {
		g.listener(e)
	}
}

// StartingPlayer returns the player who takes the first turn given the
// opening rolls in player order. The first 6 wins immediately, otherwise the
// first player with the highest roll starts.
func StartingPlayer(rolls []int) int {
	starting := -1
	var highest int
	for i, roll := range rolls {
		if roll == DieSides {
			return i
		}
		if roll > highest {
			highest = roll
			starting = i
		}
	}
	return starting
}

// RollForStart has each player roll once, in order, to decide who takes the
// first turn. Rolling stops as soon as a player rolls a 6.
func (g *Game) RollForStart() (int, error) {
	rolls := make([]int, 0, len(g.Players))
	for player := range g.Players {
		if g.input != nil {
			err := g.input.Ready(player)
			if err != nil {
				return -1, err
			}
		}

		roll := g.dice.Roll()
		rolls = append(rolls, roll)
		g.emit(&EventOpeningRoll{Event: Event{Player: player}, Roll: roll})
		if roll == DieSides {
			break
		}
	}

	g.Turn = StartingPlayer(rolls)
	g.emit(&EventStarted{Event: Event{Player: g.Turn}})
	return g.Turn, nil
}

// PlayTurn plays the turn of the current player. An error is only returned
// when the input fails.
func (g *Game) PlayTurn() error {
	if g.Winner != -1 {
		return nil
	}
	p := g.Players[g.Turn]
	g.emit(&EventTurn{Event: Event{Player: p.Number}})

	for chance := 1; chance <= MaxChances; chance++ {
		roll := g.dice.Roll()
		g.emit(&EventRolled{Event: Event{Player: p.Number}, Roll: roll, Chance: chance})

		if roll != DieSides {
			return g.playRoll(p, roll)
		}

		err := g.playSix(p)
		if err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) playSix(p *Player) error {
	if p.Movable() == 0 {
		g.enter(p, true)
		return nil
	}

	request := &ChoiceRequest{Type: ChoiceAction, Player: p.Number, Roll: DieSides}
	for {
		action, err := g.choose(request)
		if err != nil {
			return err
		}

		switch action {
		case ActionMove:
			piece, err := g.choosePiece(p, DieSides)
			if err != nil {
				return err
			}
			g.move(p, piece, DieSides, false)
			return nil
		case ActionEnter:
			g.enter(p, false)
			return nil
		default:
			request.Retry = fmt.Errorf("%w: unknown action %d", ErrInvalidSelection, action)
		}
	}
}

func (g *Game) playRoll(p *Player, roll int) error {
	switch p.Movable() {
	case 0:
		g.emit(&EventSkipped{Event: Event{Player: p.Number}, Roll: roll})
	case 1:
		g.move(p, p.firstMovable(), roll, true)
	default:
		piece, err := g.choosePiece(p, roll)
		if err != nil {
			return err
		}
		g.move(p, piece, roll, false)
	}
	return nil
}

func (g *Game) choose(request *ChoiceRequest) (int, error) {
	if g.input == nil {
		return 0, errors.New("no input available")
	}
	return g.input.Choose(request)
}

func (g *Game) choosePiece(p *Player, roll int) (int, error) {
	request := &ChoiceRequest{Type: ChoicePiece, Player: p.Number, Roll: roll}
	for {
		piece, err := g.choose(request)
		if err != nil {
			return -1, err
		}
		request.Retry = p.ValidPiece(piece)
		if request.Retry == nil {
			return piece, nil
		}
	}
}

func (g *Game) enter(p *Player, forced bool) {
	piece, ok := p.Enter()
	if !ok {
		return
	}
	g.emit(&EventEntered{Event: Event{Player: p.Number}, Piece: piece, Forced: forced})
}

// move moves a piece. A move which fails is reported and abandoned, leaving
// the piece where it was.
func (g *Game) move(p *Player, piece int, steps int, auto bool) {
	from := p.Pieces[piece].Position
	err := p.Move(piece, steps, g.Finish)
	if err != nil {
		log.Printf("failed to move piece: %s", err)
		g.emit(&EventFailedMove{Event: Event{Player: p.Number}, Piece: piece, Reason: err.Error()})
		return
	}
	g.emit(&EventMoved{Event: Event{Player: p.Number}, Piece: piece, From: from, To: p.Pieces[piece].Position, Steps: steps, Auto: auto})
}

// Won returns whether all pieces of the specified player are home.
func (g *Game) Won(player int) bool {
	return g.Players[player].Won()
}

// EndTurn records a win by the current player or passes the turn to the next
// player. It returns whether the game is over.
func (g *Game) EndTurn() bool {
	if g.Winner != -1 {
		return true
	}
	if g.Won(g.Turn) {
		g.Winner = g.Turn
		g.emit(&EventWin{Event: Event{Player: g.Turn}})
		return true
	}
	g.Turn = (g.Turn + 1) % len(g.Players)
	return false
}

// PublishState emits the current state of the board.
func (g *Game) PublishState() {
	g.emit(&EventBoard{Event: Event{Player: g.Turn}, GameState: g.State()})
}
