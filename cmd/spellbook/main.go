// Package main is the entry point for the spellbook CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath  string
	characterID string
)

var rootCmd = &cobra.Command{
	Use:   "spellbook",
	Short: "Spell preparation and search service CLI",
	Long:  `Spellbook manages per-character spell preparation rules and runs advanced spell searches against a Redis-backed store.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config file")
	rootCmd.PersistentFlags().StringVar(&characterID, "character", "", "character ID")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(syncCmd)
}
