package bridge

import (
	"fmt"

	"bridge-server/internal/rng"
	"bridge-server/pkg/deck"

	"github.com/sirupsen/logrus"
)

// firstTurn is the seat whose card is revealed first after a deal
const firstTurn = 1

// Game is a deck dealt to four players that is revealed one card at a time
type Game struct {
	options Options
	rng     rng.Generator
	logger  logrus.FieldLogger

	players  [playerCount]*Player
	played   deck.Hand
	turn     int
	revealed bool
	deckHash string

	logMessages []*LogMessage
}

// NewGame shuffles a new deck and deals it
func NewGame(logger logrus.FieldLogger, g rng.Generator, opts Options) *Game {
	return newGame(logger, g, opts, deck.Shuffled(g))
}

// newGame deals the cards in the order given
func newGame(logger logrus.FieldLogger, g rng.Generator, opts Options, cards []deck.Card) *Game {
	if len(cards) != deck.Size {
		panic(fmt.Sprintf("expected %d cards, got %d", deck.Size, len(cards)))
	}

	if opts.RowSize <= 0 {
		opts.RowSize = DefaultOptions().RowSize
	}

	if logger == nil {
		logger = logrus.StandardLogger()
	}

	game := &Game{
		options:  opts,
		rng:      g,
		logger:   logger,
		played:   make(deck.Hand, 0, deck.Size),
		turn:     firstTurn,
		deckHash: deck.HashCode(cards),
	}

	for i := range game.players {
		game.players[i] = newPlayer(i)
	}

	for i, card := range cards {
		game.players[i%playerCount].hand.AddCard(card)
	}

	game.logger.WithField("deck", game.deckHash).Debug("dealt new game")
	game.addLogMessage(newLogMessage("", nil, "New deal"))

	return game
}

// NextCard removes a random card from the hand of the player whose turn it is and adds it to the played cards
func (g *Game) NextCard() error {
	if g.IsComplete() {
		return ErrGameComplete
	}

	player := g.players[g.turn]
	if len(player.hand) == 0 {
		// the deal and the rotation guarantee the active player has cards until the game is complete
		panic(fmt.Sprintf("%s has no cards on their turn", player.Label()))
	}

	card := player.hand.Remove(g.rng.Intn(len(player.hand)))
	g.played = append(g.played, card)
	g.turn = (g.turn + 1) % playerCount

	g.logger.WithFields(logrus.Fields{
		"player": player.Label(),
		"card":   card.String(),
		"played": len(g.played),
	}).Debug("card revealed")
	g.addLogMessage(newLogMessage(player.Label(), &card, "%s played %s", player.Label(), card))

	if g.IsComplete() {
		g.logger.Debug("all cards played")
	}

	return nil
}

// RevealCards shows every hand and the played cards
func (g *Game) RevealCards() {
	g.revealed = true
}

// HideCards conceals the opponents' hands and the played cards
func (g *Game) HideCards() {
	g.revealed = false
}

// Restart returns a freshly dealt game with the same options
func (g *Game) Restart() *Game {
	return NewGame(g.logger, g.rng, g.options)
}

// IsComplete returns true once every hand is empty
func (g *Game) IsComplete() bool {
	for _, player := range g.players {
		if len(player.hand) > 0 {
			return false
		}
	}

	return true
}

// IsRevealed returns true if the cards are revealed
func (g *Game) IsRevealed() bool {
	return g.revealed
}

// Turn returns the seat whose card is revealed next
func (g *Game) Turn() int {
	return g.turn
}

// Player returns the player at the given seat
func (g *Game) Player(index int) *Player {
	return g.players[index]
}

// Played returns a clone of the played cards, oldest first
func (g *Game) Played() deck.Hand {
	return g.played.Clone()
}

// DeckHash returns the hash code of the dealt ordering
func (g *Game) DeckHash() string {
	return g.deckHash
}

// lastPlayer returns the seat that played the latest card
func (g *Game) lastPlayer() int {
	return (g.turn + playerCount - 1) % playerCount
}
