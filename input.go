package ludo

type ChoiceType int8

const (
	ChoiceAction ChoiceType = iota + 1 // Rolled a 6 with pieces in play. Answer with ActionMove or ActionEnter.
	ChoicePiece                        // Answer with a piece index (0-3).
)

const (
	ActionMove  = 1
	ActionEnter = 2
)

// ChoiceRequest is sent to the player whenever the game needs a decision.
type ChoiceRequest struct {
	Type   ChoiceType
	Player int
	Roll   int
	Retry  error // Why the previous answer was rejected, if it was.
}

// Input supplies the decisions of the players. Returning an error ends the
// game. Invalid answers are requested again indefinitely.
type Input interface {
	// Ready blocks until the player is ready to roll for the opening turn.
	Ready(player int) error

	// Choose answers a choice request.
	Choose(request *ChoiceRequest) (int, error)
}
