package engine

import "strings"

// BidType is a flag set describing a bid or the contract for the current hand.
// A contract is exactly one of NoTrumps, AllTrumps or a single suit, optionally
// combined with Double or ReDouble.
type BidType uint16

const (
	BidPass      BidType = 0
	BidClubs     BidType = 1 << 0
	BidDiamonds  BidType = 1 << 1
	BidHearts    BidType = 1 << 2
	BidSpades    BidType = 1 << 3
	BidNoTrumps  BidType = 1 << 4
	BidAllTrumps BidType = 1 << 5
	BidDouble    BidType = 1 << 6
	BidReDouble  BidType = 1 << 7

	bidSuitMask = BidClubs | BidDiamonds | BidHearts | BidSpades
)

// BidType returns the single-suit contract flag for s.
func (s Suit) BidType() BidType { return BidType(1) << s }

// Has reports whether all bits of flag are set.
func (b BidType) Has(flag BidType) bool { return flag != 0 && b&flag == flag }

// TrumpSuit returns the trump suit of a single-suit contract.
func (b BidType) TrumpSuit() (Suit, bool) {
	for _, s := range AllSuits {
		if b.Has(s.BidType()) {
			return s, true
		}
	}
	return 0, false
}

// IsTrump reports whether suit s uses trump ordering under contract b.
func (b BidType) IsTrump(s Suit) bool {
	switch {
	case b.Has(BidAllTrumps):
		return true
	case b.Has(BidNoTrumps):
		return false
	default:
		return b.Has(s.BidType())
	}
}

// OrderOf returns the ordering key of c under contract b.
func (b BidType) OrderOf(c Card) int {
	if b.IsTrump(c.Suit()) {
		return c.TrumpOrder()
	}
	return c.PlainOrder()
}

// IsContract reports whether b names a game type (not a pass or a double).
func (b BidType) IsContract() bool {
	return b&(bidSuitMask|BidNoTrumps|BidAllTrumps) != 0
}

func (b BidType) String() string {
	if b == BidPass {
		return "Pass"
	}
	var parts []string
	names := []struct {
		flag BidType
		name string
	}{
		{BidClubs, "Clubs"},
		{BidDiamonds, "Diamonds"},
		{BidHearts, "Hearts"},
		{BidSpades, "Spades"},
		{BidNoTrumps, "NoTrumps"},
		{BidAllTrumps, "AllTrumps"},
		{BidDouble, "Double"},
		{BidReDouble, "ReDouble"},
	}
	for _, n := range names {
		if b.Has(n.flag) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// ---------------------------------------------------------------------------
// Seats
// ---------------------------------------------------------------------------

// PlayerPosition is a seat flag. Teams are unions of two seats.
type PlayerPosition uint8

const (
	South PlayerPosition = 1 << 0
	East  PlayerPosition = 1 << 1
	North PlayerPosition = 1 << 2
	West  PlayerPosition = 1 << 3

	SouthNorthTeam = South | North
	EastWestTeam   = East | West
)

// SeatForIteration returns the seat that acts first in simulated game i.
// Rotating the first seat removes seat-order bias across a batch.
func SeatForIteration(i int) PlayerPosition {
	return PlayerPosition(1 << (i % NumPlayers))
}

// Next returns the seat to the right, in play order South, East, North, West.
func (p PlayerPosition) Next() PlayerPosition {
	if p == West {
		return South
	}
	return p << 1
}

// Teammate returns the seat opposite p.
func (p PlayerPosition) Teammate() PlayerPosition {
	switch p {
	case South:
		return North
	case North:
		return South
	case East:
		return West
	case West:
		return East
	}
	return 0
}

// Team returns the team flag containing seat p.
func (p PlayerPosition) Team() PlayerPosition {
	if p&SouthNorthTeam != 0 {
		return SouthNorthTeam
	}
	if p&EastWestTeam != 0 {
		return EastWestTeam
	}
	return 0
}

func (p PlayerPosition) String() string {
	switch p {
	case South:
		return "South"
	case East:
		return "East"
	case North:
		return "North"
	case West:
		return "West"
	case SouthNorthTeam:
		return "SouthNorth"
	case EastWestTeam:
		return "EastWest"
	}
	return "None"
}

// Bid is one entry of the bidding stream.
type Bid struct {
	Player PlayerPosition
	Type   BidType
}
