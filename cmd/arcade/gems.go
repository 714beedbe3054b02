package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var gemsCmd = &cobra.Command{
	Use:   "gems",
	Short: "Show your gem balance",
	Args:  cobra.NoArgs,
	RunE:  runGems,
}

func runGems(_ *cobra.Command, _ []string) error {
	b, err := openBackend(false, false)
	if err != nil {
		return err
	}
	defer b.Close()

	ctx := context.Background()
	balance, ok := b.services.GemBalance(ctx, b.userID(ctx))
	if !ok {
		return errors.New("gem balance is unavailable")
	}
	fmt.Printf("Gems: %d\n", balance)
	return nil
}
