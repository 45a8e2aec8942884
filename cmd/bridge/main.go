package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"bridge-server/internal/config"
	"bridge-server/internal/rng"
	"bridge-server/pkg/bridge"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

var seed = flag.Int64("seed", 0, "deal from a fixed seed (overrides the configuration)")

const clearScreen = "\x1b[H\x1b[2J"

func main() {
	flag.Parse()

	cfg := config.Instance()
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(logrus.WarnLevel)

	s := cfg.Game.Seed
	if *seed != 0 {
		s = *seed
	}

	game := bridge.NewGame(logrus.StandardLogger(), rng.New(s), cfg.GameOptions())

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		state, err := term.MakeRaw(fd)
		if err != nil {
			logrus.WithError(err).Fatal("could not switch the terminal to raw mode")
		}
		defer func() {
			_ = term.Restore(fd, state)
		}()
	}

	if err := play(game, bufio.NewReader(os.Stdin), os.Stdout); err != nil {
		logrus.WithError(err).Error("could not read input")
	}
}

// play renders the board and applies one command per key press until the player quits
func play(game *bridge.Game, in io.ByteReader, out io.Writer) error {
	var message string
	for {
		s := game.Snapshot()
		render(out, s, message)
		message = ""

		key, err := in.ReadByte()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}

		cmd, quit, ok := keyCommand(s, key)
		if quit {
			return nil
		}

		if !ok {
			continue
		}

		if game, err = bridge.Apply(game, cmd); err != nil {
			message = err.Error()
		}
	}
}

type action struct {
	key     byte
	label   string
	command bridge.Command
}

// actions returns the commands available for the snapshot
func actions(s *bridge.Snapshot) []action {
	if s.Complete {
		return []action{{'s', "Restart", bridge.CommandRestart}}
	}

	toggle := action{'r', "Reveal Cards", bridge.CommandRevealCards}
	if s.Revealed {
		toggle = action{'h', "Hide Cards", bridge.CommandHideCards}
	}

	return []action{{'n', "Next Card", bridge.CommandNextCard}, toggle}
}

// keyCommand maps a key press to a command
// Space and enter are aliases for the first available action
func keyCommand(s *bridge.Snapshot, key byte) (cmd bridge.Command, quit bool, ok bool) {
	if key == 'q' || key == 3 {
		return "", true, false
	}

	available := actions(s)
	if key == ' ' || key == '\r' || key == '\n' {
		return available[0].command, false, true
	}

	for _, a := range available {
		if a.key == key {
			return a.command, false, true
		}
	}

	return "", false, false
}

func render(out io.Writer, s *bridge.Snapshot, message string) {
	var b strings.Builder
	b.WriteString(clearScreen)
	b.WriteString(s.Board)
	b.WriteString("\n")

	labels := make([]string, 0, 3)
	for _, a := range actions(s) {
		labels = append(labels, fmt.Sprintf("[%c] %s", a.key, a.label))
	}
	labels = append(labels, "[q] Quit")
	b.WriteString(strings.Join(labels, "  "))
	b.WriteString("\n")

	if message != "" {
		b.WriteString(message)
		b.WriteString("\n")
	}

	// raw mode does not translate newlines
	_, _ = io.WriteString(out, strings.ReplaceAll(b.String(), "\n", "\r\n"))
}
