package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/spellbook-api/internal/orchestrators/search"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <input>",
	Short: "Show the suggestion list for a partial query",
	Long: `Show what the dropdown would offer for the given input: recent
searches for short input, fuzzy name matches, or field/value completions
for advanced input starting with ^.`,
	Args: cobra.ExactArgs(1),
	RunE: runSuggest,
}

func runSuggest(cmd *cobra.Command, args []string) error {
	if err := requireCharacter(); err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	output, err := a.searchService.Suggest(cmd.Context(), &search.SuggestInput{
		CharacterID: characterID,
		Query:       args[0],
	})
	if err != nil {
		return err
	}

	resp := output.Response
	for _, s := range resp.Suggestions {
		if s.Score > 0 {
			fmt.Printf("%-8s %s (%d)\n", s.Kind, s.Text, s.Score)
			continue
		}
		fmt.Printf("%-8s %s\n", s.Kind, s.Text)
	}

	if resp.Complete {
		fmt.Println("query is executable")
	}
	if resp.Hint != nil {
		fmt.Printf("hint: %s\n", resp.Hint.Error())
	}
	return nil
}
