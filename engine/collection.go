package engine

import (
	"math/bits"
	"strings"
)

// CardCollection is a duplicate-free set of cards stored as a bitmask.
// Bit i is set when Card(i) is present, so iteration order is the canonical
// suit-major, rank-minor order. It is a value type: copying a collection
// yields an independent set.
type CardCollection uint32

// FullDeck contains all 32 cards.
const FullDeck CardCollection = 1<<DeckSize - 1

const suitBits = 0xFF

// NewCardCollection builds a collection from the given cards.
func NewCardCollection(cards ...Card) CardCollection {
	var c CardCollection
	for _, card := range cards {
		c.Add(card)
	}
	return c
}

// Unseen returns every card that is neither in mine nor in played.
func Unseen(mine, played CardCollection) CardCollection {
	return FullDeck &^ (mine | played)
}

// Contains reports whether card is in the collection. A value that is not a
// card is never contained, so membership checks on strategy output report
// EmptyCard as absent instead of panicking.
func (c CardCollection) Contains(card Card) bool {
	if !card.Valid() {
		return false
	}
	return c&(1<<card) != 0
}

// Add inserts card. Adding a present card is a no-op.
func (c *CardCollection) Add(card Card) {
	mustBeValid(card)
	*c |= 1 << card
}

// Remove deletes card. Removing an absent card is a no-op; removing a value
// that is not a card panics.
func (c *CardCollection) Remove(card Card) {
	mustBeValid(card)
	*c &^= 1 << card
}

// With returns a copy of c that also contains card.
func (c CardCollection) With(card Card) CardCollection {
	c.Add(card)
	return c
}

// Without returns a copy of c without card.
func (c CardCollection) Without(card Card) CardCollection {
	c.Remove(card)
	return c
}

// Union returns the cards present in c or other.
func (c CardCollection) Union(other CardCollection) CardCollection { return c | other }

// Minus returns the cards of c not present in other.
func (c CardCollection) Minus(other CardCollection) CardCollection { return c &^ other }

// OfSuit returns the subset of cards of suit s.
func (c CardCollection) OfSuit(s Suit) CardCollection {
	return c & (suitBits << (uint(s) * NumRanks))
}

// HasAnyOfSuit reports whether any card of suit s is present.
func (c CardCollection) HasAnyOfSuit(s Suit) bool { return c.OfSuit(s) != 0 }

// Len returns the number of cards.
func (c CardCollection) Len() int { return bits.OnesCount32(uint32(c)) }

// IsEmpty reports whether the collection holds no cards.
func (c CardCollection) IsEmpty() bool { return c == 0 }

// Cards returns the cards in canonical order (allocates).
func (c CardCollection) Cards() []Card {
	out := make([]Card, 0, c.Len())
	for m := uint32(c); m != 0; m &= m - 1 {
		out = append(out, Card(bits.TrailingZeros32(m)))
	}
	return out
}

// rankMask returns the 8-bit rank mask of suit s; bit r set means rank r held.
func (c CardCollection) rankMask(s Suit) uint8 {
	return uint8(uint32(c) >> (uint(s) * NumRanks))
}

// Lowest returns the card with the smallest key. Ties resolve to the first
// card in canonical order. An empty collection yields EmptyCard.
func (c CardCollection) Lowest(key func(Card) int) Card {
	best := EmptyCard
	bestKey := 0
	for m := uint32(c); m != 0; m &= m - 1 {
		card := Card(bits.TrailingZeros32(m))
		if k := key(card); best == EmptyCard || k < bestKey {
			best, bestKey = card, k
		}
	}
	return best
}

// Highest returns the card with the largest key. Ties resolve to the first
// card in canonical order. An empty collection yields EmptyCard.
func (c CardCollection) Highest(key func(Card) int) Card {
	best := EmptyCard
	bestKey := 0
	for m := uint32(c); m != 0; m &= m - 1 {
		card := Card(bits.TrailingZeros32(m))
		if k := key(card); best == EmptyCard || k > bestKey {
			best, bestKey = card, k
		}
	}
	return best
}

func (c CardCollection) String() string {
	cards := c.Cards()
	parts := make([]string, len(cards))
	for i, card := range cards {
		parts[i] = card.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Key functions for Lowest/Highest.
func TrumpOrderKey(c Card) int { return c.TrumpOrder() }
func PlainOrderKey(c Card) int { return c.PlainOrder() }
