package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/spellbook-api/internal/entities"
	"github.com/KirkDiggler/spellbook-api/internal/errors"
	"github.com/KirkDiggler/spellbook-api/internal/orchestrators/rules"
)

var classSpecs []string

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Inspect and change a character's preparation rules",
}

var rulesShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective rule set and per-class policies",
	RunE:  runRulesShow,
}

var rulesApplyCmd = &cobra.Command{
	Use:   "apply <legacy|modern>",
	Short: "Switch the character to a rule set, resetting class policies",
	Args:  cobra.ExactArgs(1),
	RunE:  runRulesApply,
}

var rulesEnforceCmd = &cobra.Command{
	Use:   "enforce <unenforced|notify|enforced>",
	Short: "Override how hard preparation rules are enforced",
	Args:  cobra.ExactArgs(1),
	RunE:  runRulesEnforce,
}

func init() {
	rulesCmd.PersistentFlags().StringArrayVar(&classSpecs, "class", nil,
		"class spec as id:level[:abilityMod], repeatable (e.g. wizard:5:3)")

	rulesCmd.AddCommand(rulesShowCmd)
	rulesCmd.AddCommand(rulesApplyCmd)
	rulesCmd.AddCommand(rulesEnforceCmd)
}

// parseClassSpec parses "wizard:5:3" into a class entry.
func parseClassSpec(spec string) (entities.CharacterClass, error) {
	parts := strings.Split(spec, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return entities.CharacterClass{}, errors.InvalidArgumentf(
			"class spec %q must be id:level[:abilityMod]", spec)
	}

	level, err := strconv.Atoi(parts[1])
	if err != nil || level < 1 {
		return entities.CharacterClass{}, errors.InvalidArgumentf(
			"class spec %q has an invalid level", spec)
	}

	class := entities.CharacterClass{ClassID: strings.ToLower(parts[0]), Level: level}
	if len(parts) == 3 {
		mod, err := strconv.Atoi(parts[2])
		if err != nil {
			return entities.CharacterClass{}, errors.InvalidArgumentf(
				"class spec %q has an invalid ability modifier", spec)
		}
		class.AbilityMod = mod
	}
	return class, nil
}

func buildCharacter() (*entities.Character, error) {
	if err := requireCharacter(); err != nil {
		return nil, err
	}
	if len(classSpecs) == 0 {
		return nil, errors.InvalidArgument("at least one --class is required")
	}

	character := &entities.Character{ID: characterID}
	for _, spec := range classSpecs {
		class, err := parseClassSpec(spec)
		if err != nil {
			return nil, err
		}
		character.Classes = append(character.Classes, class)
	}
	return character, nil
}

func runRulesShow(cmd *cobra.Command, _ []string) error {
	character, err := buildCharacter()
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	if _, err := a.rulesService.Init(ctx, &rules.InitInput{Character: character}); err != nil {
		return err
	}

	ruleSet, err := a.rulesService.EffectiveRuleSet(ctx, &rules.EffectiveRuleSetInput{
		CharacterID: characterID,
	})
	if err != nil {
		return err
	}
	behavior, err := a.rulesService.Enforcement(ctx, &rules.EnforcementInput{
		CharacterID: characterID,
	})
	if err != nil {
		return err
	}

	fmt.Printf("rule set:    %s\n", ruleSet.RuleSet)
	fmt.Printf("enforcement: %s\n", behavior.Behavior)

	for _, class := range character.Classes {
		output, err := a.rulesService.RulesFor(ctx, &rules.RulesForInput{
			CharacterID: characterID,
			ClassID:     class.ClassID,
		})
		if err != nil {
			return err
		}

		p := output.Policy
		fmt.Printf("\n%s (level %d)\n", class.ClassID, class.Level)
		fmt.Printf("  cantrip swapping: %s\n", p.CantripSwapping)
		fmt.Printf("  spell swapping:   %s\n", p.SpellSwapping)
		fmt.Printf("  ritual casting:   %s\n", p.RitualCasting)
		fmt.Printf("  show cantrips:    %t\n", p.ShowCantrips)
		if p.PreparationBonus != 0 {
			fmt.Printf("  preparation bonus: %+d\n", p.PreparationBonus)
		}
	}
	return nil
}

func runRulesApply(cmd *cobra.Command, args []string) error {
	character, err := buildCharacter()
	if err != nil {
		return err
	}

	ruleSet := entities.RuleSet(args[0])
	if !ruleSet.Valid() {
		return errors.InvalidArgumentf("unknown rule set %q", args[0])
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	if _, err := a.rulesService.ApplyRuleSet(cmd.Context(), &rules.ApplyRuleSetInput{
		Character: character,
		RuleSet:   ruleSet,
	}); err != nil {
		return err
	}

	fmt.Printf("applied %s rules to %s\n", ruleSet, characterID)
	return nil
}

func runRulesEnforce(cmd *cobra.Command, args []string) error {
	if err := requireCharacter(); err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	output, err := a.rulesService.SetEnforcement(cmd.Context(), &rules.SetEnforcementInput{
		CharacterID: characterID,
		Behavior:    entities.EnforcementBehavior(args[0]),
	})
	if err != nil {
		return err
	}

	fmt.Printf("enforcement for %s is now %s\n", characterID, output.Behavior)
	return nil
}
