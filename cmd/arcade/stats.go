package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/math-arcade/internal/registry"
	"github.com/vovakirdan/math-arcade/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats [game]",
	Short: "Show play statistics from the local database",
	Long: `Summarizes recorded sessions per game: how many were played, the best
and average score and the gems they earned.

Examples:
  arcade stats
  arcade stats fast_calc`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStats,
}

func runStats(_ *cobra.Command, args []string) error {
	b, err := openBackend(false, true)
	if err != nil {
		return err
	}
	defer b.Close()

	ctx := context.Background()
	var rows []*storage.GameStats
	if len(args) == 1 {
		if !registry.Exists(args[0]) {
			return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", args[0])
		}
		st, err := b.store.GetGameStats(ctx, args[0])
		if err != nil {
			return err
		}
		rows = append(rows, st)
	} else {
		all, err := b.store.GetAllGamesStats(ctx)
		if err != nil {
			return err
		}
		for _, st := range all {
			rows = append(rows, st)
		}
		sort.Slice(rows, func(i, j int) bool { return rows[i].GameID < rows[j].GameID })
	}

	if len(rows) == 0 {
		fmt.Println("No games played yet.")
		return nil
	}

	fmt.Printf("  %-18s  %-6s  %-6s  %-7s  %-5s  %s\n", "Game", "Played", "Best", "Average", "Gems", "Last played")
	fmt.Printf("  %-18s  %-6s  %-6s  %-7s  %-5s  %s\n", "----", "------", "----", "-------", "----", "-----------")
	for _, st := range rows {
		last := "-"
		if !st.LastPlayed.IsZero() {
			last = st.LastPlayed.Local().Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-18s  %-6d  %-6d  %-7.1f  %-5d  %s\n", st.GameID, st.GamesCount, st.HighScore, st.AvgScore, st.TotalGems, last)
	}
	return nil
}
