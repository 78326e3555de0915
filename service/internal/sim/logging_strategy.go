// internal/sim/logging_strategy.go
package sim

import (
	"github.com/sirupsen/logrus"

	engine "github.com/sainbayarbattur/BelotGameEngine/engine"
	"github.com/sainbayarbattur/BelotGameEngine/engine/agent"
)

// LoggingStrategy wraps a strategy and logs each decision at debug level.
type LoggingStrategy struct {
	inner agent.PlayStrategy
	log   logrus.FieldLogger
}

var _ agent.PlayStrategy = (*LoggingStrategy)(nil)

// NewLoggingStrategy decorates inner.
func NewLoggingStrategy(inner agent.PlayStrategy, log logrus.FieldLogger) *LoggingStrategy {
	return &LoggingStrategy{inner: inner, log: log}
}

func (l *LoggingStrategy) PlayFirst(ctx *engine.PlayerPlayCardContext, played engine.CardCollection) engine.PlayCardAction {
	return l.logged(ctx, 1, l.inner.PlayFirst(ctx, played))
}

func (l *LoggingStrategy) PlaySecond(ctx *engine.PlayerPlayCardContext, played engine.CardCollection) engine.PlayCardAction {
	return l.logged(ctx, 2, l.inner.PlaySecond(ctx, played))
}

func (l *LoggingStrategy) PlayThird(ctx *engine.PlayerPlayCardContext, played engine.CardCollection, winner engine.PlayerPosition) engine.PlayCardAction {
	return l.logged(ctx, 3, l.inner.PlayThird(ctx, played, winner))
}

func (l *LoggingStrategy) PlayFourth(ctx *engine.PlayerPlayCardContext, played engine.CardCollection, winner engine.PlayerPosition) engine.PlayCardAction {
	return l.logged(ctx, 4, l.inner.PlayFourth(ctx, played, winner))
}

func (l *LoggingStrategy) logged(ctx *engine.PlayerPlayCardContext, order int, a engine.PlayCardAction) engine.PlayCardAction {
	l.log.WithFields(logrus.Fields{
		"seat":     ctx.MyPosition.String(),
		"order":    order,
		"contract": ctx.Contract.Type.String(),
		"card":     a.Card.String(),
		"belote":   a.Belote,
	}).Debug("card chosen")
	return a
}
