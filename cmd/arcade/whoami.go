package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Print your player ID",
	Long:  `Prints the ID your scores and gems are recorded under. It is created on first use.`,
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		logger, file := setupLogger(false)
		if file != nil {
			defer file.Close()
		}
		b := &backend{logger: logger}
		fmt.Println(b.userID(context.Background()))
	},
}
