package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/math-arcade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play, Tab for the scoreboard.
After a game you return to the menu.

Examples:
  arcade menu
  arcade menu --difficulty easy
  arcade menu --remote http://arcade.local:8080`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	b, err := openBackend(true, false)
	if err != nil {
		return err
	}
	defer b.Close()

	return tui.RunMenu(b.services, b.scores, b.userID(context.Background()), runtimeConfig())
}
