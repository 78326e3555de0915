package engine

// PlayCardAction is the result of a play decision.
type PlayCardAction struct {
	Card Card
	// Belote marks that this play also declares the King+Queen marriage.
	Belote bool
	// Player is stamped by the caller that sequenced the turn.
	Player PlayerPosition
}

// NewPlayCardAction returns an action playing card without a declaration.
func NewPlayCardAction(card Card) PlayCardAction {
	return PlayCardAction{Card: card}
}

// PlayerPlayCardContext is the read-only view handed to a strategy when it
// must play a card. It is populated by the game engine that sequences turns.
type PlayerPlayCardContext struct {
	MyPosition PlayerPosition
	// Contract is the winning bid of the hand.
	Contract             Bid
	MyCards              CardCollection
	AvailableCardsToPlay CardCollection
	Bids                 []Bid
	CurrentTrickActions  []PlayCardAction
}

// LeadSuit returns the suit of the first card of the current trick.
func (ctx *PlayerPlayCardContext) LeadSuit() (Suit, bool) {
	if len(ctx.CurrentTrickActions) == 0 {
		return 0, false
	}
	return ctx.CurrentTrickActions[0].Card.Suit(), true
}

// TrickWinner returns the player whose card currently takes the trick.
// Under a single-suit contract the highest trump wins once any trump is on
// the table; otherwise the highest card of the led suit wins by the
// contract's ordering. An empty trick yields 0.
func TrickWinner(actions []PlayCardAction, contract BidType) PlayerPosition {
	if len(actions) == 0 {
		return 0
	}
	trump, hasTrump := contract.TrumpSuit()
	if contract.Has(BidAllTrumps) || contract.Has(BidNoTrumps) {
		hasTrump = false
	}

	best := actions[0]
	for _, a := range actions[1:] {
		c, b := a.Card, best.Card
		switch {
		case hasTrump && c.Suit() == trump && b.Suit() != trump:
			best = a
		case c.Suit() != b.Suit():
			// Neither a higher card of the same suit nor a first trump.
		case contract.OrderOf(c) > contract.OrderOf(b):
			best = a
		}
	}
	return best.Player
}
