package bridge

import (
	"fmt"
	"strings"
)

const concealedCard = "▯"

// renderBoard renders the snapshot as text, opponents first and the viewer last
func renderBoard(s *Snapshot, rowSize int) string {
	var board strings.Builder

	for _, player := range s.Players {
		if player.Index == humanPlayer {
			continue
		}

		fmt.Fprintf(&board, "Player %d:\n", player.Index)
		fmt.Fprintf(&board, "%s\n\n", renderHand(player))
	}

	fmt.Fprint(&board, "You:\n")
	fmt.Fprintf(&board, "%s\n\n", renderHand(s.Players[humanPlayer]))

	fmt.Fprint(&board, "Latest:\n")
	if s.Latest != nil {
		fmt.Fprintf(&board, "%s (%s)\n", s.Latest, s.LatestPlayer)
	} else {
		fmt.Fprint(&board, "-\n")
	}

	if s.Revealed || s.Complete {
		fmt.Fprint(&board, "\n")

		if s.Complete {
			fmt.Fprint(&board, "Entire game:\n")
		} else {
			fmt.Fprint(&board, "Cards so far:\n")
		}

		if len(s.Played) == 0 {
			fmt.Fprint(&board, "-\n")
		}

		for _, row := range s.Played.Chunks(rowSize) {
			for _, card := range row {
				fmt.Fprintf(&board, "%s ", card)
			}

			fmt.Fprint(&board, "\n")
		}
	}

	return board.String()
}

func renderHand(player *PlayerSnapshot) string {
	if player.CardCount == 0 {
		return "-"
	}

	if player.Concealed {
		return strings.TrimSpace(strings.Repeat(concealedCard+" ", player.CardCount))
	}

	return player.Cards.String()
}
