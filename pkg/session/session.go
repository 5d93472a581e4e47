package session

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"codeberg.org/tslocum/gotext"
	"codeberg.org/tslocum/ludo"
)

var _ ludo.Input = &Session{}

// Session plays a game on a text console.
type Session struct {
	options  Options
	language string
	in       *bufio.Reader
	out      io.Writer
	dice     ludo.Dice
	publish  func(e interface{})
}

func NewSession(op Options, in io.Reader, out io.Writer) *Session {
	s := &Session{
		options:  op,
		language: matchDomain(op.Language),
		in:       bufio.NewReader(in),
		out:      out,
	}
	if op.Seed != 0 {
		s.dice = ludo.NewSeededDice(op.Seed)
	} else {
		s.dice = ludo.RandomDice{}
	}
	return s
}

// SetDice replaces the dice used by the session.
func (s *Session) SetDice(d ludo.Dice) {
	s.dice = d
}

// SetPublisher sets a function which receives every game event.
func (s *Session) SetPublisher(f func(e interface{})) {
	s.publish = f
}

func (s *Session) printf(format string, a ...interface{}) {
	fmt.Fprint(s.out, gotext.GetD(s.language, format, a...))
}

func (s *Session) println(format string, a ...interface{}) {
	fmt.Fprintln(s.out, gotext.GetD(s.language, format, a...))
}

// readLine returns the next line of input without its trailing newline.
func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	return strings.TrimSpace(line), err
}

// readInt returns the next line of input as a number, or -1 when the line is not a number.
func (s *Session) readInt() (int, error) {
	line, err := s.readLine()
	if err != nil {
		return -1, err
	}
	v, err := strconv.Atoi(line)
	if err != nil {
		return -1, nil
	}
	return v, nil
}

func (s *Session) numPlayers() (int, error) {
	if s.options.Players != 0 {
		return s.options.Players, nil
	}
	for {
		s.printf("Enter the number of players (%d-%d): ", ludo.MinPlayers, ludo.MaxPlayers)
		n, err := s.readInt()
		if err != nil {
			return 0, err
		}
		if n >= ludo.MinPlayers && n <= ludo.MaxPlayers {
			return n, nil
		}
		s.println("Invalid number of players. Please enter a number between %d and %d.", ludo.MinPlayers, ludo.MaxPlayers)
	}
}

// Run plays a game until a player wins or the input ends.
func (s *Session) Run() error {
	numPlayers, err := s.numPlayers()
	if err != nil {
		return err
	}

	g, err := ludo.NewGame(numPlayers, s.dice, s)
	if err != nil {
		return err
	}
	g.Finish = s.options.Finish
	g.SetListener(s.handleEvent)

	_, err = g.RollForStart()
	if err != nil {
		return err
	}
	g.PublishState()

	for {
		err = g.PlayTurn()
		if err != nil {
			return err
		}
		fmt.Fprint(s.out, "\n"+renderBoard(s.language, g.State()))
		gameOver := g.EndTurn()
		g.PublishState()
		if gameOver {
			return nil
		}
	}
}

// Ready waits for the player to press Enter.
func (s *Session) Ready(player int) error {
	s.printf("Player %d's turn. Press Enter to roll the dice.", player+1)
	_, err := s.readLine()
	fmt.Fprintln(s.out)
	return err
}

// Choose prompts for a decision. Pieces are numbered from 1 on the console.
func (s *Session) Choose(request *ludo.ChoiceRequest) (int, error) {
	if request.Retry != nil {
		s.println("Invalid choice. Try again.")
		if s.options.Verbose {
			log.Printf("rejected choice: %s", request.Retry)
		}
	}

	switch request.Type {
	case ludo.ChoiceAction:
		s.println("You rolled a 6. Choose an option:")
		s.println("1. Move a piece 6 spaces.")
		s.println("2. Enter a new piece into play.")
		return s.readInt()
	case ludo.ChoicePiece:
		s.println("Choose a piece to move %d spaces (1-%d):", request.Roll, ludo.NumPieces)
		piece, err := s.readInt()
		if err != nil {
			return -1, err
		}
		return piece - 1, nil
	default:
		return -1, fmt.Errorf("unknown choice type %d", request.Type)
	}
}

func (s *Session) handleEvent(e interface{}) {
	if s.options.Verbose {
		log.Printf("event: %+v", e)
	}

	switch ev := e.(type) {
	case *ludo.EventOpeningRoll:
		s.println("Player %d rolled a %d", ev.Player+1, ev.Roll)
	case *ludo.EventStarted:
		s.println("Player %d starts the game!", ev.Player+1)
	case *ludo.EventTurn:
		fmt.Fprintln(s.out)
		s.println("Player %d's turn.", ev.Player+1)
	case *ludo.EventRolled:
		s.println("You rolled a %d", ev.Roll)
	case *ludo.EventEntered:
		if ev.Forced {
			s.println("You rolled a 6. No pieces are in play, so a piece enters play.")
		}
		s.println("Piece %d entered play.", ev.Piece+1)
	case *ludo.EventMoved:
		if ev.To == ludo.PositionHome {
			s.println("Piece %d reached home.", ev.Piece+1)
		} else {
			s.println("Piece %d moved %d spaces from %d to %d.", ev.Piece+1, ev.Steps, ev.From, ev.To)
		}
	case *ludo.EventSkipped:
		s.println("No pieces are in play and you did not roll a 6. Turn skipped.")
	case *ludo.EventFailedMove:
		s.println("Error: Current position not found in path.")
	case *ludo.EventWin:
		s.println("Player %d wins!", ev.Player+1)
	}

	if s.publish != nil {
		s.publish(e)
	}
}
