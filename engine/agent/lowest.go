package agent

import (
	engine "github.com/sainbayarbattur/BelotGameEngine/engine"
)

// LowestCardStrategy always plays the weakest available card under the
// current contract.
type LowestCardStrategy struct{}

var _ PlayStrategy = LowestCardStrategy{}

func (LowestCardStrategy) lowest(ctx *engine.PlayerPlayCardContext) engine.PlayCardAction {
	return engine.NewPlayCardAction(ctx.AvailableCardsToPlay.Lowest(ctx.Contract.Type.OrderOf))
}

func (s LowestCardStrategy) PlayFirst(ctx *engine.PlayerPlayCardContext, _ engine.CardCollection) engine.PlayCardAction {
	return s.lowest(ctx)
}

func (s LowestCardStrategy) PlaySecond(ctx *engine.PlayerPlayCardContext, _ engine.CardCollection) engine.PlayCardAction {
	return s.lowest(ctx)
}

func (s LowestCardStrategy) PlayThird(ctx *engine.PlayerPlayCardContext, _ engine.CardCollection, _ engine.PlayerPosition) engine.PlayCardAction {
	return s.lowest(ctx)
}

func (s LowestCardStrategy) PlayFourth(ctx *engine.PlayerPlayCardContext, _ engine.CardCollection, _ engine.PlayerPosition) engine.PlayCardAction {
	return s.lowest(ctx)
}
