package bridge

import (
	"fmt"
	"time"

	"bridge-server/pkg/deck"

	"github.com/google/uuid"
)

// LogMessage describes something that happened in the game
type LogMessage struct {
	UUID    string     `json:"uuid"`
	Player  string     `json:"player,omitempty"`
	Card    *deck.Card `json:"card,omitempty"`
	Message string     `json:"message"`
	Time    time.Time  `json:"time"`
}

func newLogMessage(player string, card *deck.Card, format string, a ...interface{}) *LogMessage {
	return &LogMessage{
		UUID:    uuid.New().String(),
		Player:  player,
		Card:    card,
		Message: fmt.Sprintf(format, a...),
		Time:    time.Now(),
	}
}

// TakeLogMessages returns the log messages recorded since the last call and clears them
func (g *Game) TakeLogMessages() []*LogMessage {
	messages := g.logMessages
	g.logMessages = nil

	return messages
}

func (g *Game) addLogMessage(msg *LogMessage) {
	g.logMessages = append(g.logMessages, msg)
}
