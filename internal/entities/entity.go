// Package entities holds the core data model: spell records, character
// views, and per-character rule state.
package entities

import "github.com/KirkDiggler/rpg-toolkit/core"

// Compile-time check that our entities implement core.Entity
var (
	_ core.Entity = (*Character)(nil)
	_ core.Entity = (*SpellRecord)(nil)
)
