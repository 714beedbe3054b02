package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/math-arcade/internal/platform/tui"
	"github.com/vovakirdan/math-arcade/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Each game opens with its instructions. Answer before the clock runs out:
a run of correct answers moves you up a level, a miss or a timeout costs
a heart, and the game ends with the last heart. Speed games have no
hearts: correct answers add time and the game ends when the clock does.

Controls:
  Enter      - Start / submit answer
  Esc        - Leave the game (your score is still recorded)
  R          - Play again (after game over)
  Ctrl+C     - Quit

Difficulty options:
  easy   - 50% more time per question
  normal - Default timing
  hard   - 30% less time per question
  fixed  - Never level up

Examples:
  arcade play calculator
  arcade play square_root --difficulty hard
  arcade play number_pyramid --seed 42`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	b, err := openBackend(true, false)
	if err != nil {
		return err
	}
	defer b.Close()

	return tui.Run(b.services, gameID, b.userID(context.Background()), runtimeConfig())
}
