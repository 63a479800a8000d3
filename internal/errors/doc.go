// Package errors provides structured error handling for spellbook-api.
//
// Errors carry a Code, a message, and optional metadata. Rule rejections
// from the preparation engine and parse failures from the query parser
// attach their stable machine-readable tag under Meta so callers can
// render them without string matching:
//
//	err := errors.FailedPrecondition("cantrip swap already used").
//	    WithMeta("reason", "OnlyOneSwap")
//
// Wrapping preserves the original code:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load class rules")
//	}
//
// Type checking goes through the helpers:
//
//	if errors.IsNotFound(err) { ... }
//
// Orchestrator constructors validate their dependencies with
// ValidationBuilder; see Config.Validate in the orchestrator packages.
package errors
