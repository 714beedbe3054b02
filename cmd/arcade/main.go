// arcade is a terminal arcade of timed arithmetic games.
//
// Usage:
//
//	arcade list                        - List available games
//	arcade play <game>                 - Play a game
//	arcade menu                        - Start menu to pick games interactively
//	arcade scores <game>               - Show high scores for a game
//	arcade stats [game]                - Show play statistics
//	arcade levels <game>               - Show the difficulty tiers of a game
//	arcade levels import <game> <file> - Replace a game's tiers from YAML
//	arcade gems                        - Show your gem balance
//	arcade whoami                      - Print your player ID
//	arcade serve                       - Serve the arcade over SSH and HTTP
//
// Global flags:
//
//	--db <path>          - Database path (default: ~/.arcade/arcade.db)
//	--remote <url>       - Use an arcade HTTP API instead of the local database
//	--config <path>      - Custom games tuning YAML
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
//	--seed <value>       - RNG seed for reproducible puzzles
//	--log-level <level>  - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/math-arcade/internal/config"
	_ "github.com/vovakirdan/math-arcade/internal/games/all"
)

var (
	flagDBPath     string
	flagRemote     string
	flagConfig     string
	flagDifficulty string
	flagSeed       int64
	flagLogLevel   string
)

// env supplies flag defaults from the environment and .env.
var env = config.LoadEnv()

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Math Arcade - timed arithmetic games in your terminal",
	Long: `Math Arcade is a collection of short arithmetic games played against
the clock. Answer correctly in a row to level up, lose a heart for every
miss or timeout, and earn gems by beating your personal best.

Examples:
  arcade list
  arcade play calculator
  arcade play magic_triangle --difficulty easy
  arcade menu
  arcade scores math_grid
  arcade serve --ssh :2222 --http :8080
  arcade play fast_calc --remote http://arcade.local:8080`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if !config.ValidPreset(config.DifficultyPreset(flagDifficulty)) {
			return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagDBPath, "db", env.DBPath, "Path to the arcade database")
	pf.StringVar(&flagRemote, "remote", env.Remote, "Base URL of an arcade HTTP API to use instead of the local database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom games tuning YAML")
	pf.StringVar(&flagDifficulty, "difficulty", env.Difficulty, "Difficulty preset: easy, normal, hard, fixed")
	pf.Int64Var(&flagSeed, "seed", env.Seed, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagLogLevel, "log-level", env.LogLevel, "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(gemsCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(serveCmd)
}
