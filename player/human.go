package player

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"runes/game"

	"github.com/pkg/errors"
)

// ErrInputClosed is returned by a prompt whose input ended before a valid move.
var ErrInputClosed = errors.New("input closed")

// Prompt blocks until the given player picks a move in g.
type Prompt func(player int, g game.Game) (game.Move, error)

// HumanPlayer asks a prompt for every move.
type HumanPlayer struct {
	name   string
	symbol game.Field
	prompt Prompt
}

func NewHumanPlayer(name string, prompt Prompt) *HumanPlayer {
	return &HumanPlayer{name: name, prompt: prompt}
}

func (h *HumanPlayer) SetSymbol(symbol game.Field) {
	h.symbol = symbol
}

func (h *HumanPlayer) Symbol() game.Field {
	return h.symbol
}

func (h *HumanPlayer) Name() string {
	return h.name
}

func (h *HumanPlayer) MakeMove(g game.Game) (game.Move, error) {
	move, err := h.prompt(g.NextPlayer(), g)
	if err != nil {
		return game.Move{}, errors.WithMessagef(err, "%s", h.name)
	}
	if !g.IsValidMove(move) {
		return game.Move{}, errors.Wrapf(game.ErrInvalidMove, "%s chose %v", h.name, move)
	}
	return move, nil
}

// ConsolePrompt reads moves as "row col [symbol]" lines with 1-based
// coordinates. Without a symbol the best legal one is placed. Invalid lines
// are reported to out and read again.
func ConsolePrompt(in io.Reader, out io.Writer) Prompt {
	scanner := bufio.NewScanner(in)
	return func(player int, g game.Game) (game.Move, error) {
		for {
			fmt.Fprintf(out, "player %d (%s) move [row col [symbol]]: ", player+1, game.ClaimSymbol(player))
			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return game.Move{}, errors.Wrap(ErrInputClosed, err.Error())
				}
				return game.Move{}, ErrInputClosed
			}
			move, err := parseMove(scanner.Text(), &g)
			if err != nil {
				fmt.Fprintf(out, "%v\n", err)
				continue
			}
			return move, nil
		}
	}
}

func parseMove(line string, g *game.Game) (game.Move, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 || len(fields) > 3 {
		return game.Move{}, errors.Errorf("expected \"row col [symbol]\", got %q", line)
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return game.Move{}, errors.Wrapf(err, "row %q", fields[0])
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return game.Move{}, errors.Wrapf(err, "column %q", fields[1])
	}
	pos := game.Position{Row: row - 1, Col: col - 1}

	symbol := g.BestSymbolAt(pos)
	if len(fields) == 3 {
		if symbol, err = game.ParseField(fields[2]); err != nil {
			return game.Move{}, err
		}
	}
	move := game.NewMove(pos, symbol)
	if !g.IsValidMove(move) {
		return game.Move{}, errors.Wrapf(game.ErrInvalidMove, "%v", move)
	}
	return move, nil
}
