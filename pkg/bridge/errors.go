package bridge

import (
	"errors"
	"fmt"
)

// ErrGameComplete is an error when a card is requested after every hand is empty
var ErrGameComplete = errors.New("game is complete")

// UnknownCommandError is an error when a command is not one of the known commands
type UnknownCommandError string

func (u UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command: %s", string(u))
}
