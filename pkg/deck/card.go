package deck

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidCard is an error when a string cannot be parsed as a card
var ErrInvalidCard = errors.New("invalid card")

// Suit represents a card suit
type Suit string

// suit constants
const (
	Spades   Suit = "spades"
	Hearts   Suit = "hearts"
	Diamonds Suit = "diamonds"
	Clubs    Suit = "clubs"
)

// Suits lists the suits in deal order
var Suits = [...]Suit{Spades, Hearts, Diamonds, Clubs}

// Glyph returns the single character used when displaying the suit
func (s Suit) Glyph() string {
	switch s {
	case Spades:
		return "♤"
	case Hearts:
		return "♡"
	case Diamonds:
		return "♢"
	case Clubs:
		return "♧"
	default:
		panic(fmt.Sprintf("unknown suit: %s", string(s)))
	}
}

func suitFromGlyph(glyph string) (Suit, bool) {
	for _, suit := range Suits {
		if suit.Glyph() == glyph {
			return suit, true
		}
	}

	return "", false
}

// Rank represents a card rank
type Rank string

// rank constants
const (
	Ace   Rank = "A"
	King  Rank = "K"
	Queen Rank = "Q"
	Jack  Rank = "J"
	Ten   Rank = "10"
	Nine  Rank = "9"
	Eight Rank = "8"
	Seven Rank = "7"
	Six   Rank = "6"
	Five  Rank = "5"
	Four  Rank = "4"
	Three Rank = "3"
	Two   Rank = "2"
)

// Ranks lists the ranks from highest to lowest
var Ranks = [...]Rank{Ace, King, Queen, Jack, Ten, Nine, Eight, Seven, Six, Five, Four, Three, Two}

// Card is an individual playing card
// Cards are values; two cards are equal when rank and suit match
type Card struct {
	Rank Rank
	Suit Suit
}

func (c Card) String() string {
	return string(c.Rank) + c.Suit.Glyph()
}

// MarshalText encodes the card in its display form (i.e., "10♡")
func (c Card) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes the display form of a card
func (c *Card) UnmarshalText(text []byte) error {
	card, err := CardFromString(string(text))
	if err != nil {
		return err
	}

	*c = card
	return nil
}

var cardRx = regexp.MustCompile(`^(10|[2-9AKQJ])(♤|♡|♢|♧)\z`)

// CardFromString returns a Card from its display form.
// The string must be a rank (A, K, Q, J, 10-2) followed by a suit glyph (♤, ♡, ♢, ♧)
func CardFromString(s string) (Card, error) {
	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	suit, ok := suitFromGlyph(match[2])
	if !ok {
		// should never be hit due to the regexp
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	return Card{Rank: Rank(match[1]), Suit: suit}, nil
}

// MustCardFromString is like CardFromString, but panics on an invalid card
// This should only be used by tests
func MustCardFromString(s string) Card {
	card, err := CardFromString(s)
	if err != nil {
		panic(err)
	}

	return card
}

// CardsFromString parses whitespace separated cards, i.e., "A♤ 10♡ 2♧"
func CardsFromString(s string) (Hand, error) {
	fields := strings.Fields(s)
	cards := make(Hand, len(fields))
	for i, field := range fields {
		card, err := CardFromString(field)
		if err != nil {
			return nil, err
		}

		cards[i] = card
	}

	return cards, nil
}
