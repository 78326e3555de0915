package agent

import (
	engine "github.com/sainbayarbattur/BelotGameEngine/engine"
)

// surelyWinningCard returns an available card that no unseen card can beat
// when led under an all-trumps contract. Suits are scanned in suit order and
// the strongest available card of each suit is the candidate. Unseen cards
// are those neither in myCards nor in playedCards. Returns EmptyCard when no
// such card exists.
func surelyWinningCard(available, myCards, playedCards engine.CardCollection) engine.Card {
	unseen := engine.Unseen(myCards, playedCards)
	for _, suit := range engine.AllSuits {
		candidate := available.OfSuit(suit).Highest(engine.TrumpOrderKey)
		if candidate == engine.EmptyCard {
			continue
		}
		threat := unseen.OfSuit(suit).Highest(engine.TrumpOrderKey)
		if threat == engine.EmptyCard || threat.TrumpOrder() < candidate.TrumpOrder() {
			return candidate
		}
	}
	return engine.EmptyCard
}

// teammateBidSuits returns the suits bid by teammate as plain suit contracts.
func teammateBidSuits(bids []engine.Bid, teammate engine.PlayerPosition) (suits [engine.NumSuits]bool) {
	for _, b := range bids {
		if b.Player != teammate {
			continue
		}
		for _, s := range engine.AllSuits {
			if b.Type == s.BidType() {
				suits[s] = true
			}
		}
	}
	return suits
}

// marriageQueen returns the Queen of the first suit in which both King and
// Queen are available.
func marriageQueen(available engine.CardCollection) (engine.Card, bool) {
	for _, s := range engine.AllSuits {
		if q, ok := marriageQueenOf(available, s); ok {
			return q, true
		}
	}
	return engine.EmptyCard, false
}

func marriageQueenOf(available engine.CardCollection, s engine.Suit) (engine.Card, bool) {
	q := engine.GetCard(s, engine.RankQueen)
	if available.Contains(q) && available.Contains(engine.GetCard(s, engine.RankKing)) {
		return q, true
	}
	return engine.EmptyCard, false
}

func lowestTrump(available engine.CardCollection) engine.PlayCardAction {
	return engine.NewPlayCardAction(available.Lowest(engine.TrumpOrderKey))
}
