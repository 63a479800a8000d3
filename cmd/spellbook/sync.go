package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/spellbook-api/internal/clients/external"
	"github.com/KirkDiggler/spellbook-api/internal/errors"
	"github.com/KirkDiggler/spellbook-api/internal/repositories/spells"
)

var (
	syncClassID string
	syncLevel   int
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Seed a character's spell list from the D&D 5e API",
	Long: `Fetch spells for a class from the D&D 5e API and create them as the
character's spell records. Existing records are left untouched.`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().StringVar(&syncClassID, "class", "", "class to fetch spells for")
	syncCmd.Flags().IntVar(&syncLevel, "level", -1, "only fetch spells of this level")
}

func runSync(cmd *cobra.Command, _ []string) error {
	if err := requireCharacter(); err != nil {
		return err
	}
	if syncClassID == "" {
		return errors.InvalidArgument("--class is required")
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	client, err := a.externalClient()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	input := &external.ListSpellsInput{ClassID: syncClassID}
	if syncLevel >= 0 {
		level := syncLevel
		input.Level = &level
	}

	listing, err := client.ListSpells(ctx, input)
	if err != nil {
		return err
	}
	if len(listing.Spells) == 0 {
		fmt.Println("no spells found")
		return nil
	}

	output, err := a.spellsRepo.CreateMany(ctx, spells.CreateManyInput{
		CharacterID: characterID,
		Spells:      listing.Spells,
	})
	if err != nil {
		return err
	}

	fmt.Printf("created %d spell(s) for %s\n", len(output.CreatedIDs), characterID)
	for _, failure := range output.Failures {
		fmt.Printf("skipped %s: %v\n", failure.SpellID, failure.Err)
	}
	return nil
}
