package blackjack

import (
	"errors"
	"math/rand"

	"github.com/tectra-games/tectra-arcade/internal/config"
	"github.com/tectra-games/tectra-arcade/internal/wallet"
)

// Phase is the round state machine. Rounds move strictly
// Betting -> PlayerTurn -> Resolved (DealerTurn is internal to Stand),
// and NextRound returns to Betting.
type Phase int

const (
	PhaseBetting Phase = iota
	PhasePlayerTurn
	PhaseResolved
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseBetting:
		return "betting"
	case PhasePlayerTurn:
		return "playing"
	case PhaseResolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// Outcome is the result of a resolved round.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLose
	OutcomePush
)

var (
	// ErrWrongPhase is returned when an action is invalid in the current phase.
	ErrWrongPhase = errors.New("blackjack: action not allowed in this phase")

	// ErrInsufficientCoins is returned when the bankroll cannot cover the bet.
	ErrInsufficientCoins = errors.New("blackjack: not enough coins to place bet")

	// ErrNoWallet is returned when a table is created without a wallet identity.
	ErrNoWallet = errors.New("blackjack: a wallet identity is required to play")
)

// Table is a single blackjack table bound to one wallet. The bankroll is the
// wallet's persistent coin total; the bet is escrowed at deal time and paid
// back on win or push.
type Table struct {
	cfg      config.BlackjackConfig
	rng      *rand.Rand
	store    *wallet.Store
	walletID string

	deck    []Card
	player  []Card
	dealer  []Card
	phase   Phase
	bet     int
	outcome Outcome
	message string
}

// NewTable creates a table for the given wallet. A wallet with no coins at
// all receives a one-time starter grant so a fresh player can place a bet.
func NewTable(cfg config.BlackjackConfig, store *wallet.Store, walletID string, seed int64) (*Table, error) {
	if walletID == "" {
		return nil, ErrNoWallet
	}

	t := &Table{
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(seed)),
		store:    store,
		walletID: walletID,
		phase:    PhaseBetting,
		bet:      cfg.MinBet,
	}

	if t.TotalCoins() <= 0 {
		store.SetInt(walletID, wallet.KeyTotalCoins, cfg.StarterCoins)
	}
	return t, nil
}

// TotalCoins returns the wallet's current coin bankroll.
func (t *Table) TotalCoins() int {
	return t.store.GetInt(t.walletID, wallet.KeyTotalCoins, 0)
}

// Phase returns the current round phase.
func (t *Table) Phase() Phase {
	return t.phase
}

// Outcome returns the result of the last resolved round.
func (t *Table) Outcome() Outcome {
	return t.outcome
}

// Message returns the banner text for the last resolution.
func (t *Table) Message() string {
	return t.message
}

// Bet returns the current bet amount.
func (t *Table) Bet() int {
	return t.bet
}

// BetStep returns the configured bet increment.
func (t *Table) BetStep() int {
	return t.cfg.BetStep
}

// PlayerCards returns the player's hand.
func (t *Table) PlayerCards() []Card {
	return t.player
}

// PlayerScore returns the player's hand value.
func (t *Table) PlayerScore() int {
	return Score(t.player)
}

// DealerCards returns the dealer's full hand, hole card included.
func (t *Table) DealerCards() []Card {
	return t.dealer
}

// DealerScore returns the dealer's full hand value.
func (t *Table) DealerScore() int {
	return Score(t.dealer)
}

// HoleConcealed reports whether the dealer's hole card and score are hidden.
// The hole card stays face down for the whole of the player's turn.
func (t *Table) HoleConcealed() bool {
	return t.phase == PhasePlayerTurn
}

// VisibleDealerCards returns the dealer cards the player may see: only the
// up-card during the player's turn, the full hand otherwise.
func (t *Table) VisibleDealerCards() []Card {
	if t.HoleConcealed() && len(t.dealer) > 0 {
		return t.dealer[:1]
	}
	return t.dealer
}

// AdjustBet moves the bet by delta, clamped to [MinBet, bankroll].
// Only allowed while betting.
func (t *Table) AdjustBet(delta int) error {
	if t.phase != PhaseBetting {
		return ErrWrongPhase
	}
	bet := t.bet + delta
	if total := t.TotalCoins(); bet > total {
		bet = total
	}
	if bet < t.cfg.MinBet {
		bet = t.cfg.MinBet
	}
	t.bet = bet
	return nil
}

// Deal escrows the bet, shuffles a fresh deck and deals the opening hands in
// player, dealer, player, dealer order. Moves the round to the player's turn.
func (t *Table) Deal() error {
	if t.phase != PhaseBetting {
		return ErrWrongPhase
	}
	total := t.TotalCoins()
	if total < t.bet {
		return ErrInsufficientCoins
	}

	t.store.SetInt(t.walletID, wallet.KeyTotalCoins, total-t.bet)

	t.deck = NewDeck(t.rng)
	t.player = t.player[:0]
	t.dealer = t.dealer[:0]
	t.player = append(t.player, t.draw())
	t.dealer = append(t.dealer, t.draw())
	t.player = append(t.player, t.draw())
	t.dealer = append(t.dealer, t.draw())

	t.phase = PhasePlayerTurn
	t.outcome = OutcomeNone
	t.message = ""
	return nil
}

// Hit deals the player one more card. Going over 21 loses immediately
// without the dealer playing.
func (t *Table) Hit() error {
	if t.phase != PhasePlayerTurn {
		return ErrWrongPhase
	}
	t.player = append(t.player, t.draw())
	if Score(t.player) > 21 {
		t.phase = PhaseResolved
		t.outcome = OutcomeLose
		t.message = "Bust! You went over 21."
	}
	return nil
}

// Stand ends the player's turn. The dealer draws until reaching the stand
// threshold, then the round resolves and pays out.
func (t *Table) Stand() error {
	if t.phase != PhasePlayerTurn {
		return ErrWrongPhase
	}
	for Score(t.dealer) < t.cfg.DealerStand {
		t.dealer = append(t.dealer, t.draw())
	}
	t.resolve()
	return nil
}

// NextRound returns a resolved table to the betting phase. The previous
// hands stay visible until the next deal; the bet is re-clamped against the
// possibly smaller bankroll.
func (t *Table) NextRound() error {
	if t.phase != PhaseResolved {
		return ErrWrongPhase
	}
	t.phase = PhaseBetting
	return t.AdjustBet(0)
}

// draw takes the top card of the deck.
func (t *Table) draw() Card {
	c := t.deck[len(t.deck)-1]
	t.deck = t.deck[:len(t.deck)-1]
	return c
}

// resolve compares hands and settles the escrowed bet: a win pays the bet
// times the win multiple, a push returns the bet, a loss pays nothing.
func (t *Table) resolve() {
	t.phase = PhaseResolved

	playerScore := Score(t.player)
	dealerScore := Score(t.dealer)

	switch {
	case playerScore > 21:
		t.outcome = OutcomeLose
		t.message = "Bust! You went over 21."
	case dealerScore > 21:
		t.outcome = OutcomeWin
		t.message = "Dealer busts! You win!"
		t.payout(t.bet * t.cfg.WinMultiple)
	case playerScore > dealerScore:
		t.outcome = OutcomeWin
		t.message = "You win!"
		t.payout(t.bet * t.cfg.WinMultiple)
	case playerScore < dealerScore:
		t.outcome = OutcomeLose
		t.message = "Dealer wins!"
	default:
		t.outcome = OutcomePush
		t.message = "Push! It's a tie."
		t.payout(t.bet)
	}
}

// payout credits coins back to the wallet bankroll.
func (t *Table) payout(amount int) {
	t.store.SetInt(t.walletID, wallet.KeyTotalCoins, t.TotalCoins()+amount)
}
