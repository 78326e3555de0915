package agent

import (
	"errors"
	"fmt"

	engine "github.com/sainbayarbattur/BelotGameEngine/engine"
)

// ErrIllegalPlay is the sentinel wrapped by every IllegalPlayError.
var ErrIllegalPlay = errors.New("agent: illegal play")

// IllegalPlayError describes a strategy returning a card outside the legal
// subset, or a play requested on a completed trick.
type IllegalPlayError struct {
	Player    engine.PlayerPosition
	Card      engine.Card
	Available engine.CardCollection
	TrickSize int
}

func (e *IllegalPlayError) Error() string {
	if e.TrickSize >= engine.NumPlayers {
		return fmt.Sprintf("agent: %v asked to play into a trick of %d cards", e.Player, e.TrickSize)
	}
	return fmt.Sprintf("agent: %v played %v, available %v", e.Player, e.Card, e.Available)
}

func (e *IllegalPlayError) Unwrap() error { return ErrIllegalPlay }

// Play invokes the entry point of s that matches the acting player's seat
// order in the current trick and returns the action stamped with the
// player's position. A card outside ctx.AvailableCardsToPlay is a contract
// violation and panics with *IllegalPlayError.
func Play(s PlayStrategy, ctx *engine.PlayerPlayCardContext, playedCards engine.CardCollection) engine.PlayCardAction {
	var action engine.PlayCardAction
	switch n := len(ctx.CurrentTrickActions); n {
	case 0:
		action = s.PlayFirst(ctx, playedCards)
	case 1:
		action = s.PlaySecond(ctx, playedCards)
	case 2:
		winner := engine.TrickWinner(ctx.CurrentTrickActions, ctx.Contract.Type)
		action = s.PlayThird(ctx, playedCards, winner)
	case 3:
		winner := engine.TrickWinner(ctx.CurrentTrickActions, ctx.Contract.Type)
		action = s.PlayFourth(ctx, playedCards, winner)
	default:
		panic(&IllegalPlayError{Player: ctx.MyPosition, Card: engine.EmptyCard, Available: ctx.AvailableCardsToPlay, TrickSize: n})
	}

	if !ctx.AvailableCardsToPlay.Contains(action.Card) {
		panic(&IllegalPlayError{
			Player:    ctx.MyPosition,
			Card:      action.Card,
			Available: ctx.AvailableCardsToPlay,
			TrickSize: len(ctx.CurrentTrickActions),
		})
	}
	action.Player = ctx.MyPosition
	return action
}
