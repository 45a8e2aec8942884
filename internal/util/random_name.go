package util

import (
	"fmt"
	"math/rand"
	"time"
)

var random = rand.New(rand.NewSource(time.Now().UnixNano())) // nolint:gosec

var adjectives = []string{
	"Lucky", "Quiet", "Bold", "Sly", "Patient", "Clever", "Daring", "Gentle", "Grand", "Humble", "Jolly",
	"Merry", "Nimble", "Proud", "Quick", "Royal", "Shy", "Steady", "Swift", "Tricky", "Wise", "Wily",
}

var tables = []string{
	"Ace", "King", "Queen", "Jack", "Dealer", "Dummy", "Declarer", "Partner", "Trump", "Trick", "Slam",
	"Rubber", "Finesse", "Squeeze", "Kibitzer", "Deuce", "Spade", "Heart", "Diamond", "Club",
}

// GetRandomName returns a random name by combining an adjective with a card-table word
func GetRandomName() string {
	adjectivesIndex := random.Intn(len(adjectives))
	tablesIndex := random.Intn(len(tables))

	return fmt.Sprintf("%s %s", adjectives[adjectivesIndex], tables[tablesIndex])
}
