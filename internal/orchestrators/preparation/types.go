package preparation

import (
	"github.com/KirkDiggler/spellbook-api/internal/entities"
)

// Reason is the stable machine-readable tag attached to a rejected or
// warned preparation change. The UI owns any localized text.
type Reason string

// Rejection reasons
const (
	ReasonMaxReached            Reason = "MaxReached"
	ReasonClassAtMax            Reason = "ClassAtMax"
	ReasonLockedLegacy          Reason = "LockedLegacy"
	ReasonLockedOutsideLevelUp  Reason = "LockedOutsideLevelUp"
	ReasonLockedOutsideLongRest Reason = "LockedOutsideLongRest"
	ReasonWizardOnly            Reason = "WizardOnly"
	ReasonOnlyOneSwap           Reason = "OnlyOneSwap"
	ReasonMustUnlearnFirst      Reason = "MustUnlearnFirst"
)

// Counts is the caller's view of how many spells are currently checked
// for the class, split by tier. The UI supplies it so a decision matches
// what the user sees mid-edit; when nil the engine derives it from the
// persisted state.
type Counts struct {
	Cantrips int
	Leveled  int
}

// Decision is the outcome of a single can-this-change question.
type Decision struct {
	Allowed bool
	// Reason is set when the change is rejected
	Reason Reason
	// Warning is set when the change is allowed under notify enforcement
	// but would have been rejected under enforced
	Warning Reason
}

// CanChangeInput defines the input for a preparation decision
type CanChangeInput struct {
	Character *entities.Character
	ClassID   string
	Spell     *entities.SpellRecord
	// Checked is the state the user is trying to reach
	Checked bool
	Context entities.SwapContext
	Counts  *Counts
}

// CanChangeOutput defines the output for a preparation decision
type CanChangeOutput struct {
	Decision Decision
}

// ApplyChangeInput defines the input for applying a preparation change
type ApplyChangeInput struct {
	Character *entities.Character
	ClassID   string
	Spell     *entities.SpellRecord
	Checked   bool
	Context   entities.SwapContext
	Counts    *Counts
}

// ApplyChangeOutput defines the output for applying a preparation change
type ApplyChangeOutput struct {
	Decision Decision
	// Ledger is the swap ledger after the change, nil when no window
	// tracking applied
	Ledger *entities.SwapLedger
}

// CommitInput defines the input for committing prepared state
type CommitInput struct {
	Character *entities.Character
	ClassID   string
}

// CommitOutput defines the output for committing prepared state
type CommitOutput struct {
	UpdatedIDs []string
	// FailedIDs lists records the repository could not apply; successful
	// writes are retained
	FailedIDs []string
}

// CompleteSwapWindowInput defines the input for closing a swap window
type CompleteSwapWindowInput struct {
	Character *entities.Character
	Context   entities.SwapContext
}

// CompleteSwapWindowOutput defines the output for closing a swap window
type CompleteSwapWindowOutput struct{}

// DetectLevelUpInput defines the input for level-up detection
type DetectLevelUpInput struct {
	Character *entities.Character
	ClassID   string
}

// DetectLevelUpOutput defines the output for level-up detection
type DetectLevelUpOutput struct {
	LevelUp bool
}
