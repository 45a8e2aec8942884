package bridge

// Command is an instruction from the view layer
type Command string

// command constants
const (
	CommandNextCard    Command = "nextCard"
	CommandRevealCards Command = "revealCards"
	CommandHideCards   Command = "hideCards"
	CommandRestart     Command = "restart"
)

// ParseCommand returns the command for the given action name
func ParseCommand(action string) (Command, error) {
	switch cmd := Command(action); cmd {
	case CommandNextCard, CommandRevealCards, CommandHideCards, CommandRestart:
		return cmd, nil
	default:
		return "", UnknownCommandError(action)
	}
}

// Apply executes the command against the game and returns the resulting game.
// Restart returns a brand-new game; every other command returns g after mutating it.
func Apply(g *Game, cmd Command) (*Game, error) {
	switch cmd {
	case CommandNextCard:
		if err := g.NextCard(); err != nil {
			return g, err
		}
	case CommandRevealCards:
		g.RevealCards()
	case CommandHideCards:
		g.HideCards()
	case CommandRestart:
		return g.Restart(), nil
	default:
		return g, UnknownCommandError(cmd)
	}

	return g, nil
}
