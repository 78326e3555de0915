package agent

import (
	engine "github.com/sainbayarbattur/BelotGameEngine/engine"
)

// followLadder is the order in which ranks of the led suit are tried when
// following. A rank is only played once every rank before it has already
// been played this hand.
var followLadder = [...]engine.Rank{
	engine.RankJack,
	engine.RankNine,
	engine.RankAce,
	engine.RankTen,
	engine.RankKing,
	engine.RankQueen,
}

// AllTrumpsTheirsStrategy defends an all-trumps contract held by the
// opponents.
type AllTrumpsTheirsStrategy struct{}

var _ PlayStrategy = AllTrumpsTheirsStrategy{}

// PlayFirst leads a trick.
func (AllTrumpsTheirsStrategy) PlayFirst(ctx *engine.PlayerPlayCardContext, playedCards engine.CardCollection) engine.PlayCardAction {
	available := ctx.AvailableCardsToPlay

	if card := surelyWinningCard(available, ctx.MyCards, playedCards); card != engine.EmptyCard {
		return engine.NewPlayCardAction(card)
	}

	// Lead a suit the teammate asked for, keeping the strong cards back.
	bidSuits := teammateBidSuits(ctx.Bids, ctx.MyPosition.Teammate())
	for _, s := range engine.AllSuits {
		if bidSuits[s] && available.HasAnyOfSuit(s) {
			return engine.NewPlayCardAction(available.OfSuit(s).Lowest(engine.TrumpOrderKey))
		}
	}

	if q, ok := marriageQueen(available); ok {
		return engine.PlayCardAction{Card: q, Belote: true}
	}

	return lowestTrump(available)
}

// PlaySecond follows the led suit using the exhaustion ladder.
func (AllTrumpsTheirsStrategy) PlaySecond(ctx *engine.PlayerPlayCardContext, playedCards engine.CardCollection) engine.PlayCardAction {
	available := ctx.AvailableCardsToPlay
	led, _ := ctx.LeadSuit()

	for i, rank := range followLadder {
		card := engine.GetCard(led, rank)
		if available.Contains(card) && ladderExhausted(playedCards, led, i) {
			return engine.NewPlayCardAction(card)
		}
	}

	if q, ok := marriageQueenOf(available, led); ok {
		return engine.PlayCardAction{Card: q, Belote: true}
	}

	return lowestTrump(available)
}

// PlayThird ignores the trick winner.
func (s AllTrumpsTheirsStrategy) PlayThird(ctx *engine.PlayerPlayCardContext, playedCards engine.CardCollection, _ engine.PlayerPosition) engine.PlayCardAction {
	return s.PlaySecond(ctx, playedCards)
}

// PlayFourth ignores the trick winner.
func (s AllTrumpsTheirsStrategy) PlayFourth(ctx *engine.PlayerPlayCardContext, playedCards engine.CardCollection, _ engine.PlayerPosition) engine.PlayCardAction {
	return s.PlaySecond(ctx, playedCards)
}

// ladderExhausted reports whether the first n ladder ranks of suit have all
// been played.
func ladderExhausted(playedCards engine.CardCollection, suit engine.Suit, n int) bool {
	for _, rank := range followLadder[:n] {
		if !playedCards.Contains(engine.GetCard(suit, rank)) {
			return false
		}
	}
	return true
}
