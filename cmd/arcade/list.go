package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/math-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows the code, title and goal of every game in the arcade.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  CODE\tTITLE\tGOAL")
	for _, g := range games {
		goal, _, _ := strings.Cut(g.Instructions, "\n")
		fmt.Fprintf(w, "  %s\t%s\t%s\n", g.ID, g.Title, goal)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Run 'arcade play <code>' to play a game.")
}
