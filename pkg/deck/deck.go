package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"

	"bridge-server/internal/rng"
)

// Size is the number of cards in a full deck
const Size = len(Ranks) * len(Suits)

// AllCards returns every card in canonical order.
// Cards are ordered by rank (A through 2) and by suit (♤, ♡, ♢, ♧) within a rank
func AllCards() []Card {
	cards := make([]Card, 0, Size)
	for _, rank := range Ranks {
		for _, suit := range Suits {
			cards = append(cards, Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	return cards
}

// Shuffled returns a uniformly random permutation of AllCards()
func Shuffled(g rng.Generator) []Card {
	cards := AllCards()
	Shuffle(cards, g)

	return cards
}

// Shuffle will shuffle the cards in place using a Fisher-Yates shuffle
func Shuffle(cards []Card, g rng.Generator) {
	for j := len(cards) - 1; j > 0; j-- {
		i := g.Intn(j + 1)

		cards[i], cards[j] = cards[j], cards[i]
	}
}

// HashCode returns a SHA1 hash code of the card ordering
func HashCode(cards []Card) string {
	hash := sha1.New() // nolint:gosec
	for _, card := range cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil))
}
