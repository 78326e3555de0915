package engine

// AnnounceType identifies a declarable card combination.
type AnnounceType uint8

const (
	AnnounceFourJacks AnnounceType = iota
	AnnounceFourNines
	AnnounceFourOfAKind
	AnnounceTierce // 3 consecutive
	AnnounceQuarte // 4 consecutive
	AnnounceQuinte // 5 or more consecutive
)

func (t AnnounceType) String() string {
	switch t {
	case AnnounceFourJacks:
		return "FourJacks"
	case AnnounceFourNines:
		return "FourNines"
	case AnnounceFourOfAKind:
		return "FourOfAKind"
	case AnnounceTierce:
		return "Tierce"
	case AnnounceQuarte:
		return "Quarte"
	case AnnounceQuinte:
		return "Quinte"
	}
	return "Unknown"
}

// Announce is a declared combination together with its highest card, which
// breaks ties against an opponent's announce of the same type.
type Announce struct {
	Type AnnounceType
	Card Card
}

func (a Announce) String() string { return a.Type.String() + "(" + a.Card.String() + ")" }

// ---------------------------------------------------------------------------
// Belote
// ---------------------------------------------------------------------------

// IsBeloteAllowed reports whether playing playedCard may also declare the
// King+Queen marriage. currentTrickActions are the plays made before this one
// in the current trick. Under AllTrumps the rule only compares the played
// suit with the led suit; it does not check whether the player could have
// followed suit.
func IsBeloteAllowed(playerCards CardCollection, contract BidType, currentTrickActions []PlayCardAction, playedCard Card) bool {
	mustBeValid(playedCard)

	var partner Rank
	switch playedCard.Rank() {
	case RankQueen:
		partner = RankKing
	case RankKing:
		partner = RankQueen
	default:
		return false
	}

	if contract.Has(BidNoTrumps) {
		return false
	}

	if contract.Has(BidAllTrumps) {
		if len(currentTrickActions) > 0 && currentTrickActions[0].Card.Suit() != playedCard.Suit() {
			// Only shown while following the led suit.
			return false
		}
	} else if trump, ok := contract.TrumpSuit(); !ok || trump != playedCard.Suit() {
		return false
	}

	return playerCards.Contains(GetCard(playedCard.Suit(), partner))
}

// ---------------------------------------------------------------------------
// Hand combinations
// ---------------------------------------------------------------------------

// AvailableAnnounces returns every combination declarable from a dealt hand.
// Four-of-a-kind announces come first in rank order, then sequences per suit
// in suit order. A card never contributes to more than one announce.
func AvailableAnnounces(playerCards CardCollection) []Announce {
	cards := playerCards // owned working copy

	combinations := make([]Announce, 0, 2)
	cards = findFourOfAKindAnnounces(cards, &combinations)
	findSequentialAnnounces(cards, &combinations)
	return combinations
}

func findFourOfAKindAnnounces(cards CardCollection, combinations *[]Announce) CardCollection {
	for _, rank := range AllRanks {
		if rank == RankSeven || rank == RankEight {
			continue
		}

		var ofRank CardCollection
		for _, suit := range AllSuits {
			ofRank.Add(GetCard(suit, rank))
		}
		if cards&ofRank != ofRank {
			continue
		}

		announceType := AnnounceFourOfAKind
		switch rank {
		case RankJack:
			announceType = AnnounceFourJacks
		case RankNine:
			announceType = AnnounceFourNines
		}
		*combinations = append(*combinations, Announce{Type: announceType, Card: GetCard(SuitSpades, rank)})

		// Matched cards can't also seed a sequence.
		cards = cards.Minus(ofRank)
	}
	return cards
}

func findSequentialAnnounces(cards CardCollection, combinations *[]Announce) {
	for _, suit := range AllSuits {
		if cards.OfSuit(suit).Len() < 3 {
			continue
		}

		mask := cards.rankMask(suit)
		count := 0
		for r := 0; r <= NumRanks; r++ {
			if r < NumRanks && mask&(1<<r) != 0 {
				count++
				continue
			}
			if count >= 3 {
				highest := GetCard(suit, Rank(r-1))
				*combinations = append(*combinations, Announce{Type: sequenceType(count), Card: highest})
			}
			count = 0
		}
	}
}

func sequenceType(length int) AnnounceType {
	switch {
	case length >= 5:
		return AnnounceQuinte
	case length == 4:
		return AnnounceQuarte
	default:
		return AnnounceTierce
	}
}
