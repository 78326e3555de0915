package engine

import "testing"

// TestGetCardRoundTrip verifies suit/rank packing for all 32 cards.
func TestGetCardRoundTrip(t *testing.T) {
	seen := make(map[Card]bool)
	for _, s := range AllSuits {
		for _, r := range AllRanks {
			c := GetCard(s, r)
			if c.Suit() != s || c.Rank() != r {
				t.Errorf("GetCard(%v,%v) unpacked to (%v,%v)", s, r, c.Suit(), c.Rank())
			}
			if !c.Valid() {
				t.Errorf("GetCard(%v,%v) = %d, not valid", s, r, c)
			}
			if seen[c] {
				t.Errorf("duplicate card %v", c)
			}
			seen[c] = true
		}
	}
	if len(seen) != DeckSize {
		t.Errorf("got %d distinct cards, want %d", len(seen), DeckSize)
	}
	if EmptyCard.Valid() {
		t.Error("EmptyCard must not be valid")
	}
}

func TestGetCardInvalidPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-range suit")
		}
	}()
	GetCard(Suit(4), RankAce)
}

// TestOrderingsAreTotal checks both orderings are permutations of 0..7.
func TestOrderingsAreTotal(t *testing.T) {
	for _, s := range AllSuits {
		plain := make(map[int]bool)
		trump := make(map[int]bool)
		for _, r := range AllRanks {
			c := GetCard(s, r)
			plain[c.PlainOrder()] = true
			trump[c.TrumpOrder()] = true
		}
		if len(plain) != NumRanks || len(trump) != NumRanks {
			t.Errorf("suit %v: orderings have ties (plain %d, trump %d distinct)", s, len(plain), len(trump))
		}
	}
}

func TestOrderingSequences(t *testing.T) {
	tests := []struct {
		name     string
		contract BidType
		want     []Rank // ascending
	}{
		{"all trumps", BidAllTrumps, []Rank{RankSeven, RankEight, RankQueen, RankKing, RankTen, RankAce, RankNine, RankJack}},
		{"no trumps", BidNoTrumps, []Rank{RankSeven, RankEight, RankNine, RankJack, RankQueen, RankKing, RankTen, RankAce}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, s := range AllSuits {
				for i := 1; i < len(tt.want); i++ {
					lo := tt.contract.OrderOf(GetCard(s, tt.want[i-1]))
					hi := tt.contract.OrderOf(GetCard(s, tt.want[i]))
					if lo >= hi {
						t.Errorf("%v: %v%v (%d) should rank below %v%v (%d)", tt.contract, tt.want[i-1], s, lo, tt.want[i], s, hi)
					}
				}
			}
		})
	}
}

func TestCardString(t *testing.T) {
	if got := GetCard(SuitSpades, RankQueen).String(); got != "Q♠" {
		t.Errorf("got %q, want %q", got, "Q♠")
	}
	if got := GetCard(SuitHearts, RankTen).String(); got != "10♥" {
		t.Errorf("got %q, want %q", got, "10♥")
	}
	if got := EmptyCard.String(); got != "--" {
		t.Errorf("got %q, want %q", got, "--")
	}
}
