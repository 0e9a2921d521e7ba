package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper/internal/mines"
)

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	"g": 0, // get state
	"o": 2, // open x y
	"f": 2, // flag x y
	"c": 2, // chord x y
	"n": 0, // new game
	"d": 1, // difficulty key
	"s": 3, // custom width height mines
}

var ErrUnknownCommand = errors.New("unknown command")

func parseInts(ss []string) ([]int, error) {
	ints := make([]int, len(ss))
	for i, s := range ss {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("argument %d must be an int", i+1)
		}
		ints[i] = v
	}
	return ints, nil
}

func executeCommand(g *mines.Game, c string) error {
	parts := strings.Fields(c)
	if len(parts) == 0 {
		return nil
	}
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownCommand, parts[0])
	}
	if nargs != len(parts)-1 {
		return fmt.Errorf("%s: expected %d arguments, got %d", parts[0], nargs, len(parts)-1)
	}

	if parts[0] == "d" {
		d, ok := mines.DifficultyByName(parts[1])
		if !ok {
			return fmt.Errorf("unknown difficulty %q", parts[1])
		}
		return g.SetDifficulty(d)
	}

	args, err := parseInts(parts[1:])
	if err != nil {
		return err
	}

	switch parts[0] {
	case "g":
		return nil
	case "o":
		return g.OpenCell(args[0], args[1])
	case "f":
		return g.FlagCell(args[0], args[1])
	case "c":
		return g.ChordCell(args[0], args[1])
	case "n":
		g.NewGame()
		return nil
	case "s":
		return g.SetCustomGame(args[0], args[1], args[2])
	}
	return ErrUnknownCommand
}

// executeCommands runs newline-separated commands, stopping at the first
// error.
func executeCommands(g *mines.Game, text string) error {
	for _, c := range strings.Split(strings.TrimSpace(text), "\n") {
		if err := executeCommand(g, c); err != nil {
			return err
		}
	}
	return nil
}
