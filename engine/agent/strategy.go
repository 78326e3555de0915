// Package agent implements card-play strategies for the Belot engine.
//
// A strategy answers one question per seat order within a trick: which of
// the legally playable cards to put on the table. Strategies are selected by
// the shape of the contract and by which team holds it.
package agent

import (
	"errors"
	"fmt"

	engine "github.com/sainbayarbattur/BelotGameEngine/engine"
)

// ErrNoContract is wrapped by the panic KindOf raises on a context without a
// contract holder or without an acting seat.
var ErrNoContract = errors.New("agent: no contract to play under")

// PlayStrategy decides the card to play. playedCards holds every card played
// in the previous tricks of the current hand. Implementations must be pure:
// they must not block, retry or read the clock.
type PlayStrategy interface {
	PlayFirst(ctx *engine.PlayerPlayCardContext, playedCards engine.CardCollection) engine.PlayCardAction
	PlaySecond(ctx *engine.PlayerPlayCardContext, playedCards engine.CardCollection) engine.PlayCardAction
	PlayThird(ctx *engine.PlayerPlayCardContext, playedCards engine.CardCollection, trickWinner engine.PlayerPosition) engine.PlayCardAction
	PlayFourth(ctx *engine.PlayerPlayCardContext, playedCards engine.CardCollection, trickWinner engine.PlayerPosition) engine.PlayCardAction
}

// ContractKind classifies a contract by game type and by the holder's team.
type ContractKind uint8

const (
	AllTrumpsOurs ContractKind = iota
	AllTrumpsTheirs
	NoTrumpsOurs
	NoTrumpsTheirs
	TrumpOurs
	TrumpTheirs

	numContractKinds
)

// AllContractKinds lists every kind in declaration order.
var AllContractKinds = [numContractKinds]ContractKind{
	AllTrumpsOurs, AllTrumpsTheirs, NoTrumpsOurs, NoTrumpsTheirs, TrumpOurs, TrumpTheirs,
}

func (k ContractKind) String() string {
	switch k {
	case AllTrumpsOurs:
		return "AllTrumpsOurs"
	case AllTrumpsTheirs:
		return "AllTrumpsTheirs"
	case NoTrumpsOurs:
		return "NoTrumpsOurs"
	case NoTrumpsTheirs:
		return "NoTrumpsTheirs"
	case TrumpOurs:
		return "TrumpOurs"
	case TrumpTheirs:
		return "TrumpTheirs"
	}
	return "Unknown"
}

// KindOf derives the contract kind the acting player faces. Card play only
// happens under a contract, so a context whose holder or acting seat is not a
// seat panics.
func KindOf(ctx *engine.PlayerPlayCardContext) ContractKind {
	holder, me := ctx.Contract.Player.Team(), ctx.MyPosition.Team()
	if holder == 0 || me == 0 {
		panic(fmt.Errorf("%w: holder %v, acting %v", ErrNoContract, ctx.Contract.Player, ctx.MyPosition))
	}
	ours := holder == me

	var kind ContractKind
	switch {
	case ctx.Contract.Type.Has(engine.BidAllTrumps):
		kind = AllTrumpsOurs
	case ctx.Contract.Type.Has(engine.BidNoTrumps):
		kind = NoTrumpsOurs
	default:
		kind = TrumpOurs
	}
	if !ours {
		kind++
	}
	return kind
}
