package bridge

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	a := assert.New(t)

	for _, action := range []string{"nextCard", "revealCards", "hideCards", "restart"} {
		cmd, err := ParseCommand(action)
		a.NoError(err)
		a.Equal(Command(action), cmd)
	}

	cmd, err := ParseCommand("shuffle")
	a.Equal(Command(""), cmd)
	a.EqualError(err, "unknown command: shuffle")

	var uce UnknownCommandError
	a.True(errors.As(err, &uce))
}

func TestApply(t *testing.T) {
	a := assert.New(t)

	g := orderedGame()

	g2, err := Apply(g, CommandNextCard)
	a.NoError(err)
	a.Same(g, g2)
	a.Equal(1, len(g.Played()))

	g2, err = Apply(g, CommandRevealCards)
	a.NoError(err)
	a.Same(g, g2)
	a.True(g.IsRevealed())

	g2, err = Apply(g, CommandHideCards)
	a.NoError(err)
	a.Same(g, g2)
	a.False(g.IsRevealed())

	g2, err = Apply(g, Command("deal"))
	a.Same(g, g2)
	a.EqualError(err, "unknown command: deal")

	g2, err = Apply(g, CommandRestart)
	a.NoError(err)
	a.NotSame(g, g2)
	a.Equal(0, len(g2.Played()))
	a.Equal(1, g2.Turn())
}

func TestApply_complete(t *testing.T) {
	a := assert.New(t)

	g := orderedGame()
	for i := 0; i < 52; i++ {
		_, err := Apply(g, CommandNextCard)
		a.NoError(err)
	}

	g2, err := Apply(g, CommandNextCard)
	a.Same(g, g2)
	a.True(errors.Is(err, ErrGameComplete))

	// reveal and hide remain available on a complete game
	_, err = Apply(g, CommandRevealCards)
	a.NoError(err)
	_, err = Apply(g, CommandHideCards)
	a.NoError(err)

	g2, err = Apply(g, CommandRestart)
	a.NoError(err)
	a.False(g2.IsComplete())
}
