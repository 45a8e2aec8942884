package bridge

import "bridge-server/pkg/deck"

// Snapshot is a read-only view of the game
// Concealment applies to hands only; the played history is always included
type Snapshot struct {
	Players      []*PlayerSnapshot `json:"players"`
	Played       deck.Hand         `json:"played"`
	Latest       *deck.Card        `json:"latest"`
	LatestPlayer string            `json:"latestPlayer"`
	Turn         int               `json:"turn"`
	Revealed     bool              `json:"revealed"`
	Complete     bool              `json:"complete"`
	DeckHash     string            `json:"deckHash"`
	Board        string            `json:"board"`
}

// PlayerSnapshot is the view of a single seat
// Cards is nil while the seat is concealed
type PlayerSnapshot struct {
	Index     int       `json:"index"`
	Label     string    `json:"label"`
	Cards     deck.Hand `json:"cards,omitempty"`
	CardCount int       `json:"cardCount"`
	Concealed bool      `json:"concealed"`
}

// Snapshot returns the current state of the game, including the rendered board
func (g *Game) Snapshot() *Snapshot {
	players := make([]*PlayerSnapshot, playerCount)
	for i, player := range g.players {
		players[i] = &PlayerSnapshot{
			Index:     i,
			Label:     player.Label(),
			CardCount: len(player.hand),
			Concealed: g.isConcealed(i),
		}

		if !players[i].Concealed {
			players[i].Cards = player.Hand()
		}
	}

	s := &Snapshot{
		Players:  players,
		Played:   g.Played(),
		Turn:     g.turn,
		Revealed: g.revealed,
		Complete: g.IsComplete(),
		DeckHash: g.deckHash,
	}

	if card, ok := g.played.LastCard(); ok {
		s.Latest = &card
		s.LatestPlayer = playerLabel(g.lastPlayer())
	}

	s.Board = renderBoard(s, g.options.RowSize)
	return s
}

func (g *Game) isConcealed(index int) bool {
	if index == humanPlayer || g.revealed {
		return false
	}

	return !g.options.isAlwaysVisible(index)
}
