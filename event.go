package ludo

// events are emitted by the game as it changes state

const (
	EventTypeOpeningRoll = "openingroll"
	EventTypeStarted     = "started"
	EventTypeTurn        = "turn"
	EventTypeRolled      = "rolled"
	EventTypeEntered     = "entered"
	EventTypeMoved       = "moved"
	EventTypeSkipped     = "skipped"
	EventTypeFailedMove  = "failedmove"
	EventTypeWin         = "win"
	EventTypeBoard       = "board"
)

type Event struct {
	Type   string
	Player int
}

type EventOpeningRoll struct {
	Event
	Roll int
}

type EventStarted struct {
	Event
}

type EventTurn struct {
	Event
}

type EventRolled struct {
	Event
	Roll   int
	Chance int
}

type EventEntered struct {
	Event
	Piece  int
	Forced bool
}

type EventMoved struct {
	Event
	Piece int
	From  int
	To    int
	Steps int
	Auto  bool
}

type EventSkipped struct {
	Event
	Roll int
}

type EventFailedMove struct {
	Event
	Piece  int
	Reason string
}

type EventWin struct {
	Event
}

type EventBoard struct {
	Event
	GameState
}
