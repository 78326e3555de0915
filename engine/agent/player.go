package agent

import (
	engine "github.com/sainbayarbattur/BelotGameEngine/engine"
)

// Player picks a strategy per contract kind and plays through Play.
// A Player holds no per-hand state and may be shared between workers once
// configured.
type Player struct {
	strategies [numContractKinds]PlayStrategy
}

// NewPlayer returns a player using AllTrumpsTheirsStrategy when defending an
// all-trumps contract and LowestCardStrategy otherwise.
func NewPlayer() *Player {
	p := &Player{}
	for _, k := range AllContractKinds {
		p.strategies[k] = LowestCardStrategy{}
	}
	p.strategies[AllTrumpsTheirs] = AllTrumpsTheirsStrategy{}
	return p
}

// WithStrategy replaces the strategy used for kind and returns p.
func (p *Player) WithStrategy(kind ContractKind, s PlayStrategy) *Player {
	p.strategies[kind] = s
	return p
}

// Strategy returns the strategy configured for kind.
func (p *Player) Strategy(kind ContractKind) PlayStrategy { return p.strategies[kind] }

// PlayCard plays one card for the acting player described by ctx.
func (p *Player) PlayCard(ctx *engine.PlayerPlayCardContext, playedCards engine.CardCollection) engine.PlayCardAction {
	return Play(p.strategies[KindOf(ctx)], ctx, playedCards)
}
