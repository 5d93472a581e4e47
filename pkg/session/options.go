package session

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Options struct {
	Players  int    `env:"LUDO_PLAYERS"`  // Prompted for when zero.
	Language string `env:"LUDO_LANG"`     // Language tag, such as es or en_US.
	Spectate string `env:"LUDO_SPECTATE"` // Spectator feed listen address.
	Seed     int64  `env:"LUDO_SEED"`     // Replay a sequence of rolls. Zero rolls randomly.
	Finish   bool   `env:"LUDO_FINISH"`   // Move pieces home after a lap.
	Verbose  bool   `env:"LUDO_VERBOSE"`  // Log every event.
}

// ParseEnv loads options from environment variables.
func ParseEnv(op *Options) error {
	if err := env.Parse(op); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
