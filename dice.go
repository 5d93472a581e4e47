package ludo

import (
	"crypto/rand"
	"math/big"
	mathrand "math/rand"
)

const DieSides = 6

// Dice is the only source of randomness used by a game.
type Dice interface {
	// Roll returns a value between 1 and 6.
	Roll() int
}

// RandomDice rolls using crypto/rand.
type RandomDice struct{}

func (RandomDice) Roll() int {
	return RandInt(DieSides) + 1
}

// SeededDice rolls a reproducible sequence.
type SeededDice struct {
	rng *mathrand.Rand
}

func NewSeededDice(seed int64) *SeededDice {
	return &SeededDice{
		rng: mathrand.New(mathrand.NewSource(seed)),
	}
}

func (d *SeededDice) Roll() int {
	return d.rng.Intn(DieSides) + 1
}

func RandInt(max int) int {
	i, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		panic(err)
	}
	return int(i.Int64())
}
