package deck

import "strings"

// Hand represents an ordered collection of cards
type Hand []Card

// Len returns the number of cards
func (h Hand) Len() int {
	return len(h)
}

// AddCard adds a card to the end of the hand
func (h *Hand) AddCard(card Card) {
	*h = append(*h, card)
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card Card) bool {
	for _, c := range h {
		if c == card {
			return true
		}
	}

	return false
}

// Remove removes the card at index i and returns it
// The order of the remaining cards is preserved
func (h *Hand) Remove(i int) Card {
	cards := *h
	card := cards[i]

	newHand := make(Hand, 0, len(cards)-1)
	newHand = append(newHand, cards[:i]...)
	newHand = append(newHand, cards[i+1:]...)

	*h = newHand
	return card
}

// LastCard returns the last card in the hand and false if the hand is empty
func (h Hand) LastCard() (Card, bool) {
	n := len(h)
	if n == 0 {
		return Card{}, false
	}

	return h[n-1], true
}

// Chunks splits the hand into rows of at most size cards
func (h Hand) Chunks(size int) []Hand {
	if size <= 0 {
		panic("chunk size must be > 0")
	}

	chunks := make([]Hand, 0, (len(h)+size-1)/size)
	for start := 0; start < len(h); start += size {
		end := start + size
		if end > len(h) {
			end = len(h)
		}

		chunks = append(chunks, h[start:end])
	}

	return chunks
}

func (h Hand) String() string {
	c := make([]string, len(h))
	for i, card := range h {
		c[i] = card.String()
	}

	return strings.Join(c, " ")
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
