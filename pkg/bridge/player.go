package bridge

import (
	"fmt"

	"bridge-server/pkg/deck"
)

// playerCount is the number of seats at the table
const playerCount = 4

// humanPlayer is the seat of the viewer
const humanPlayer = 0

// Player is a seat at the table
type Player struct {
	index int
	hand  deck.Hand
}

func newPlayer(index int) *Player {
	return &Player{
		index: index,
		hand:  make(deck.Hand, 0, deck.Size/playerCount),
	}
}

// Label returns "you" for the viewer and "player N" for the opponents
func (p *Player) Label() string {
	return playerLabel(p.index)
}

// Hand returns a clone of the player's hand
func (p *Player) Hand() deck.Hand {
	return p.hand.Clone()
}

func playerLabel(index int) string {
	if index == humanPlayer {
		return "you"
	}

	return fmt.Sprintf("player %d", index)
}
