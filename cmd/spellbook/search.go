package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/spellbook-api/internal/entities"
	"github.com/KirkDiggler/spellbook-api/internal/orchestrators/search"
)

var searchRemember bool

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Execute a search against a character's spells",
	Long: `Execute a query against a character's spell list. A query starting
with ^ is an advanced boolean query (e.g. "^level:3 AND dmg:fire");
anything else filters by name.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchRemember, "remember", true, "record the query in recent searches")
}

func runSearch(cmd *cobra.Command, args []string) error {
	if err := requireCharacter(); err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	query := args[0]

	output, err := a.searchService.Search(ctx, &search.SearchInput{
		CharacterID: characterID,
		Query:       query,
	})
	if err != nil {
		return err
	}

	if searchRemember {
		if _, err := a.searchService.CommitSearch(ctx, &search.CommitSearchInput{
			CharacterID: characterID,
			Query:       query,
		}); err != nil {
			return err
		}
	}

	if len(output.Spells) == 0 {
		fmt.Println("no spells matched")
		return nil
	}

	for _, s := range output.Spells {
		fmt.Println(formatSpell(s))
	}
	fmt.Printf("%d spell(s)\n", len(output.Spells))
	return nil
}

func formatSpell(s *entities.SpellRecord) string {
	level := "cantrip"
	if s.Level > 0 {
		level = fmt.Sprintf("level %d", s.Level)
	}

	var tags []string
	if s.Prepared {
		tags = append(tags, "prepared")
	}
	if s.Mode == entities.PreparationRitual {
		tags = append(tags, "ritual")
	}
	if s.Concentration {
		tags = append(tags, "concentration")
	}

	line := fmt.Sprintf("%-28s %s %s", s.Name, level, s.School)
	if len(tags) > 0 {
		line += " [" + strings.Join(tags, ", ") + "]"
	}
	return line
}
