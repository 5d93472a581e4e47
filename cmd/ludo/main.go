package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"

	"codeberg.org/tslocum/ludo"
	"codeberg.org/tslocum/ludo/pkg/session"
	"codeberg.org/tslocum/ludo/pkg/spectator"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func main() {
	op := session.Options{}
	err := session.ParseEnv(&op)
	if err != nil {
		log.Fatalf("failed to load options: %s", err)
	}

	var rollStatistics bool
	flag.IntVar(&op.Players, "players", op.Players, "number of players (2-4), prompted for when not specified")
	flag.StringVar(&op.Language, "lang", op.Language, "language of the console text")
	flag.StringVar(&op.Spectate, "spectate", op.Spectate, "spectator feed listen address")
	flag.Int64Var(&op.Seed, "seed", op.Seed, "replay the rolls of the specified seed")
	flag.BoolVar(&op.Finish, "finish", op.Finish, "move pieces home after a lap of the board")
	flag.BoolVar(&op.Verbose, "verbose", op.Verbose, "log all game events")
	flag.BoolVar(&rollStatistics, "statistics", false, "print dice roll statistics and exit")
	flag.Parse()

	if rollStatistics {
		printRollStatistics()
		return
	}

	if op.Players != 0 && (op.Players < ludo.MinPlayers || op.Players > ludo.MaxPlayers) {
		log.Fatalf("Error: The number of players must be between %d and %d.", ludo.MinPlayers, ludo.MaxPlayers)
	}

	s := session.NewSession(op, os.Stdin, os.Stdout)
	if op.Spectate != "" {
		spectators := spectator.NewServer(op.Verbose)
		go spectators.Listen(op.Spectate)
		s.SetPublisher(spectators.Publish)
	}

	err = s.Run()
	if err != nil && !errors.Is(err, io.EOF) {
		log.Fatalf("failed to play game: %s", err)
	}
}

func printRollStatistics() {
	var sixes, opening, sameAsLast int
	var lastRoll int
	var rolls [ludo.DieSides]int

	const total = 10000000
	var dice ludo.RandomDice
	for i := 0; i < total; i++ {
		roll := dice.Roll()
		rolls[roll-1]++

		if roll == ludo.DieSides {
			sixes++
		}
		if roll == lastRoll {
			sameAsLast++
		}
		lastRoll = roll
	}

	// Chance that a round of four opening rolls contains a 6.
	const rounds = total / ludo.MaxPlayers
	for i := 0; i < rounds; i++ {
		for player := 0; player < ludo.MaxPlayers; player++ {
			if dice.Roll() == ludo.DieSides {
				opening++
				break
			}
		}
	}

	p := message.NewPrinter(language.English)
	p.Printf("Rolled %d dice.\nSixes: %d (%.1f%%). Same as last: %d (%.1f%%). Opening rounds decided by a 6: %d of %d (%.1f%%).\n", total, sixes, float64(sixes)/float64(total)*100, sameAsLast, float64(sameAsLast)/float64(total)*100, opening, rounds, float64(opening)/float64(rounds)*100)
	for face, count := range rolls {
		p.Printf("%ds: %d (%.1f%%)\n", face+1, count, float64(count)/float64(total)*100)
	}
}
