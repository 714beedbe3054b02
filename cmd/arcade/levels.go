package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/math-arcade/internal/levels"
	"github.com/vovakirdan/math-arcade/internal/registry"
)

var levelsCmd = &cobra.Command{
	Use:   "levels <game>",
	Short: "Show the difficulty tiers of a game",
	Long: `Print the tiers a game plays through. Games without stored tiers use
their built-in defaults, marked as fallback.

Examples:
  arcade levels calculator
  arcade levels import calculator ./calculator-levels.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runLevels,
}

var levelsImportCmd = &cobra.Command{
	Use:   "import <game> <file.yaml>",
	Short: "Replace a game's stored tiers from a YAML file",
	Long: `Replace the stored tiers of a game. The file lists tiers under a
"levels" key:

  levels:
    - {level: 1, number_range_min: 1, number_range_max: 10, question_count: 10}
    - {level: 2, number_range_min: 5, number_range_max: 50, question_count: 10}`,
	Args: cobra.ExactArgs(2),
	RunE: runLevelsImport,
}

func init() {
	levelsCmd.AddCommand(levelsImportCmd)
}

func runLevels(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	b, err := openBackend(false, false)
	if err != nil {
		return err
	}
	defer b.Close()

	ctx := context.Background()
	tiers := levels.NewProvider(b.services.Tiers, b.logger).Fetch(ctx, gameID)
	source := "stored"
	if isFallback(tiers, gameID) {
		source = "fallback"
	}

	fmt.Printf("Levels - %s (%s)\n\n", gameID, source)
	fmt.Printf("  %-5s  %-12s  %s\n", "Level", "Range", "Questions")
	fmt.Printf("  %-5s  %-12s  %s\n", "-----", "-----", "---------")
	for _, t := range tiers {
		fmt.Printf("  %-5d  %-12s  %d\n", t.Level, fmt.Sprintf("%d-%d", t.NumberRangeMin, t.NumberRangeMax), t.QuestionCount)
	}
	return nil
}

func runLevelsImport(_ *cobra.Command, args []string) error {
	gameID, path := args[0], args[1]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	tiers, err := levels.LoadFile(path)
	if err != nil {
		return err
	}

	b, err := openBackend(false, true)
	if err != nil {
		return err
	}
	defer b.Close()
	if b.store == nil {
		return errors.New("levels can only be imported into a local database")
	}

	if err := b.store.ReplaceTiers(context.Background(), gameID, tiers); err != nil {
		return err
	}
	fmt.Printf("Imported %d levels for %s.\n", len(tiers), gameID)
	return nil
}

func isFallback(tiers []levels.LevelConfig, gameID string) bool {
	fb := levels.Fallback(gameID)
	return len(tiers) > 0 && len(fb) > 0 && tiers[0].ID == fb[0].ID
}
