// Package blackjack implements Tectra Blackjack, a single-hand round engine
// bankrolled by the coins collected in Tectra Runner. The engine is pure
// state-machine logic; the platform layer drives it from user input.
package blackjack

import "math/rand"

// Suits, rendered directly in the TUI.
const (
	Spades   = "♠"
	Hearts   = "♥"
	Diamonds = "♦"
	Clubs    = "♣"
)

var suits = []string{Spades, Hearts, Diamonds, Clubs}

var ranks = []struct {
	Name  string
	Value int
}{
	{"A", 11},
	{"2", 2}, {"3", 3}, {"4", 4}, {"5", 5}, {"6", 6},
	{"7", 7}, {"8", 8}, {"9", 9}, {"10", 10},
	{"J", 10}, {"Q", 10}, {"K", 10},
}

// Card is a single playing card. Value carries the blackjack worth with
// aces counted high; Score demotes aces as needed.
type Card struct {
	Suit  string
	Rank  string
	Value int
}

// IsAce reports whether the card is an ace.
func (c Card) IsAce() bool {
	return c.Rank == "A"
}

// Red reports whether the card belongs to a red suit.
func (c Card) Red() bool {
	return c.Suit == Hearts || c.Suit == Diamonds
}

// String returns the card in compact display form, e.g. "A♠".
func (c Card) String() string {
	return c.Rank + c.Suit
}

// NewDeck builds a full 52-card deck shuffled with the given source.
// Cards are dealt from the end of the slice.
func NewDeck(rng *rand.Rand) []Card {
	deck := make([]Card, 0, 52)
	for _, s := range suits {
		for _, r := range ranks {
			deck = append(deck, Card{Suit: s, Rank: r.Name, Value: r.Value})
		}
	}

	// Fisher-Yates
	for i := len(deck) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		deck[i], deck[j] = deck[j], deck[i]
	}
	return deck
}

// Score computes the blackjack value of a hand. Aces start at 11 and are
// demoted to 1 one at a time while the hand is bust.
func Score(cards []Card) int {
	score := 0
	aces := 0
	for _, c := range cards {
		score += c.Value
		if c.IsAce() {
			aces++
		}
	}
	for score > 21 && aces > 0 {
		score -= 10
		aces--
	}
	return score
}
