package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qbakra/escape-arcade/internal/config"
	"github.com/qbakra/escape-arcade/internal/core"
	"github.com/qbakra/escape-arcade/internal/games"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the campaign levels",
	Long:  "Show the four campaign trials in play order, with their instructions.",
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	levels := games.Campaign(core.DefaultConfig(), config.DefaultBundle())

	fmt.Println("Campaign levels, in order:")
	fmt.Println()
	for i, l := range levels {
		fmt.Printf("%d. %s\n", i+1, l.Name())
		for _, line := range l.Instructions() {
			fmt.Printf("     %s\n", line)
		}
		fmt.Println()
	}
}
