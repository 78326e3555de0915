// Package engine implements the Belot card and announce rules.
//
// It holds the card model with its two rank orderings, the contract and seat
// types, the value-typed CardCollection, the read-only trick context handed
// to strategies, and announce detection. Everything here is allocation-light
// and free of shared mutable state so it can be called from many simulation
// workers at once.
package engine

const (
	NumSuits   = 4
	NumRanks   = 8
	DeckSize   = NumSuits * NumRanks
	NumPlayers = 4
	HandSize   = DeckSize / NumPlayers
)

// ---------------------------------------------------------------------------
// xorshift64 RNG
// ---------------------------------------------------------------------------

type xorshift uint64

func (x *xorshift) next() uint64 {
	v := uint64(*x)
	v ^= v << 13
	v ^= v >> 7
	v ^= v << 17
	*x = xorshift(v)
	return v
}

// ---------------------------------------------------------------------------
// Deal
// ---------------------------------------------------------------------------

// DealOrder is the seat order in which hands are returned by Deal.
var DealOrder = [NumPlayers]PlayerPosition{South, East, North, West}

// Deal shuffles the 32-card deck with the given seed and deals HandSize cards
// to each seat. hands[i] belongs to DealOrder[i]. The same seed always
// produces the same deal.
func Deal(seed uint64) [NumPlayers]CardCollection {
	rng := xorshift(seed)
	if rng == 0 {
		rng = 1 // xorshift can't start at 0
	}

	var deck [DeckSize]Card
	for i := range deck {
		deck[i] = Card(i)
	}
	// Fisher-Yates shuffle.
	for i := DeckSize - 1; i > 0; i-- {
		j := int(rng.next() % uint64(i+1))
		deck[i], deck[j] = deck[j], deck[i]
	}

	var hands [NumPlayers]CardCollection
	for i, c := range deck {
		hands[i%NumPlayers].Add(c)
	}
	return hands
}
