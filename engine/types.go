package engine

// Suit identifies one of the four suits. The numeric order is the fixed
// iteration order used everywhere output must be deterministic.
type Suit uint8

const (
	SuitClubs    Suit = 0
	SuitDiamonds Suit = 1
	SuitHearts   Suit = 2
	SuitSpades   Suit = 3
)

// Rank identifies a card rank. Ranks are numbered in natural sequence order,
// which is the order used to detect Tierce/Quarte/Quinte runs.
type Rank uint8

const (
	RankSeven Rank = 0
	RankEight Rank = 1
	RankNine  Rank = 2
	RankTen   Rank = 3
	RankJack  Rank = 4
	RankQueen Rank = 5
	RankKing  Rank = 6
	RankAce   Rank = 7
)

// AllSuits lists the suits in iteration order.
var AllSuits = [NumSuits]Suit{SuitClubs, SuitDiamonds, SuitHearts, SuitSpades}

// AllRanks lists the ranks in sequence order.
var AllRanks = [NumRanks]Rank{
	RankSeven, RankEight, RankNine, RankTen,
	RankJack, RankQueen, RankKing, RankAce,
}

func (s Suit) String() string {
	switch s {
	case SuitClubs:
		return "♣"
	case SuitDiamonds:
		return "♦"
	case SuitHearts:
		return "♥"
	case SuitSpades:
		return "♠"
	}
	return "?"
}

func (r Rank) String() string {
	switch r {
	case RankSeven:
		return "7"
	case RankEight:
		return "8"
	case RankNine:
		return "9"
	case RankTen:
		return "10"
	case RankJack:
		return "J"
	case RankQueen:
		return "Q"
	case RankKing:
		return "K"
	case RankAce:
		return "A"
	}
	return "?"
}

// ---------------------------------------------------------------------------
// Card
// ---------------------------------------------------------------------------

// Card is a packed uint8: bits 3-4 = suit, bits 0-2 = rank. The packed value
// is also the card's dense index 0..31, so every card has exactly one
// representation and == is identity.
type Card uint8

// EmptyCard represents the absence of a card.
const EmptyCard Card = 0xFF

// GetCard returns the canonical card for suit and rank.
// An out-of-range suit or rank is a programming error and panics.
func GetCard(suit Suit, rank Rank) Card {
	if suit >= NumSuits || rank >= NumRanks {
		panic("engine: invalid card suit/rank")
	}
	return Card(uint8(suit)<<3 | uint8(rank))
}

// Suit returns the suit bits.
func (c Card) Suit() Suit { return Suit(uint8(c) >> 3) }

// Rank returns the rank bits.
func (c Card) Rank() Rank { return Rank(uint8(c) & 0x07) }

// Valid reports whether c is one of the 32 cards of the deck.
func (c Card) Valid() bool { return uint8(c) < DeckSize }

// plainOrder and trumpOrder are indexed by Rank.
var (
	//                   7  8  9  10 J  Q  K  A
	plainOrder = [NumRanks]int{0, 1, 2, 6, 3, 4, 5, 7}
	trumpOrder = [NumRanks]int{0, 1, 6, 4, 7, 2, 3, 5}
)

// PlainOrder returns the strength of the card when its suit is not trump:
// 7 < 8 < 9 < J < Q < K < 10 < A.
func (c Card) PlainOrder() int { return plainOrder[c.Rank()] }

// TrumpOrder returns the strength of the card when its suit is trump:
// 7 < 8 < Q < K < 10 < A < 9 < J.
func (c Card) TrumpOrder() int { return trumpOrder[c.Rank()] }

func (c Card) String() string {
	if !c.Valid() {
		return "--"
	}
	return c.Rank().String() + c.Suit().String()
}

// mustBeValid panics when c does not denote a real card.
func mustBeValid(c Card) {
	if !c.Valid() {
		panic("engine: invalid card value")
	}
}
