package entity

import "errors"

var (
	// ErrExhaustedShoe means a deal asked for more cards than remain, which
	// only happens when replenishment upstream is broken.
	ErrExhaustedShoe = errors.New("shoe.deal.error-not-enough")
	ErrInvalidWager  = errors.New("wager.error-out-of-bounds")
	ErrIllegalAction = errors.New("action.error-not-allowed")
	ErrNoPlayers     = errors.New("table.error-no-players")
)
