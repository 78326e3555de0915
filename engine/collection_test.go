package engine

import "testing"

func TestCollectionAddRemove(t *testing.T) {
	qs := GetCard(SuitSpades, RankQueen)
	ks := GetCard(SuitSpades, RankKing)

	var hand CardCollection
	hand.Add(qs)
	hand.Add(qs)
	hand.Add(ks)
	if hand.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", hand.Len())
	}

	played := hand
	hand.Remove(qs)
	if hand.Contains(qs) {
		t.Error("Q♠ still in hand after Remove")
	}
	if !played.Contains(qs) {
		t.Error("removing from hand must not affect a copied collection")
	}
	hand.Remove(qs) // absent: no-op
	if hand.Len() != 1 {
		t.Errorf("Len() = %d, want 1", hand.Len())
	}
	if hand.Contains(EmptyCard) {
		t.Error("EmptyCard is never contained")
	}
}

func TestCollectionRejectsInvalidCard(t *testing.T) {
	for name, op := range map[string]func(*CardCollection){
		"Add":     func(c *CardCollection) { c.Add(EmptyCard) },
		"Remove":  func(c *CardCollection) { c.Remove(EmptyCard) },
		"Without": func(c *CardCollection) { _ = c.Without(Card(DeckSize)) },
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("%s accepted a value that is not a card", name)
				}
			}()
			hand := NewCardCollection(GetCard(SuitHearts, RankAce))
			op(&hand)
		})
	}
}

func TestCollectionCardsCanonicalOrder(t *testing.T) {
	c := NewCardCollection(
		GetCard(SuitSpades, RankSeven),
		GetCard(SuitClubs, RankAce),
		GetCard(SuitClubs, RankSeven),
		GetCard(SuitHearts, RankJack),
	)
	want := []Card{
		GetCard(SuitClubs, RankSeven),
		GetCard(SuitClubs, RankAce),
		GetCard(SuitHearts, RankJack),
		GetCard(SuitSpades, RankSeven),
	}
	got := c.Cards()
	if len(got) != len(want) {
		t.Fatalf("Cards() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Cards()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCollectionOfSuit(t *testing.T) {
	c := NewCardCollection(
		GetCard(SuitHearts, RankSeven),
		GetCard(SuitHearts, RankAce),
		GetCard(SuitDiamonds, RankAce),
	)
	hearts := c.OfSuit(SuitHearts)
	if hearts.Len() != 2 || hearts.HasAnyOfSuit(SuitDiamonds) {
		t.Errorf("OfSuit(♥) = %v", hearts)
	}
	if c.HasAnyOfSuit(SuitClubs) {
		t.Error("no clubs expected")
	}
	if FullDeck.OfSuit(SuitSpades).Len() != NumRanks {
		t.Errorf("full deck spades = %d", FullDeck.OfSuit(SuitSpades).Len())
	}
}

func TestCollectionLowestHighest(t *testing.T) {
	c := NewCardCollection(
		GetCard(SuitHearts, RankJack),
		GetCard(SuitHearts, RankSeven),
		GetCard(SuitClubs, RankSeven),
		GetCard(SuitHearts, RankNine),
	)
	// 7♣ and 7♥ tie; canonical order picks clubs.
	if got := c.Lowest(TrumpOrderKey); got != GetCard(SuitClubs, RankSeven) {
		t.Errorf("Lowest(trump) = %v, want 7♣", got)
	}
	if got := c.Highest(TrumpOrderKey); got != GetCard(SuitHearts, RankJack) {
		t.Errorf("Highest(trump) = %v, want J♥", got)
	}
	if got := c.OfSuit(SuitHearts).Highest(PlainOrderKey); got != GetCard(SuitHearts, RankJack) {
		t.Errorf("Highest(plain ♥) = %v, want J♥", got)
	}
	var empty CardCollection
	if got := empty.Lowest(TrumpOrderKey); got != EmptyCard {
		t.Errorf("Lowest on empty = %v, want EmptyCard", got)
	}
}

func TestUnseen(t *testing.T) {
	mine := NewCardCollection(GetCard(SuitClubs, RankJack))
	played := NewCardCollection(GetCard(SuitClubs, RankNine))
	u := Unseen(mine, played)
	if u.Len() != DeckSize-2 {
		t.Errorf("Unseen Len() = %d, want %d", u.Len(), DeckSize-2)
	}
	if u.Contains(GetCard(SuitClubs, RankJack)) || u.Contains(GetCard(SuitClubs, RankNine)) {
		t.Error("Unseen must exclude own and played cards")
	}
}

func TestCollectionString(t *testing.T) {
	c := NewCardCollection(GetCard(SuitSpades, RankQueen), GetCard(SuitClubs, RankTen))
	if got := c.String(); got != "[10♣ Q♠]" {
		t.Errorf("got %q", got)
	}
}
