package entities

// CharacterClass is one spellcasting class a character has levels in.
// CantripsKnown mirrors the system's cantrips-known scale value when the
// class sheet provides one; zero means "derive from the class family".
type CharacterClass struct {
	ClassID       string `json:"class_id"`
	Level         int    `json:"level"`
	AbilityMod    int    `json:"ability_mod"`
	CantripsKnown int    `json:"cantrips_known,omitempty"`
}

// Character is the minimal character view the core needs. The host owns
// the full sheet; only identity and class levels cross the boundary.
type Character struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	Classes []CharacterClass `json:"classes"`
}

// GetID returns the character's ID
func (c *Character) GetID() string {
	return c.ID
}

// GetType returns the entity type for rpg-toolkit
func (c *Character) GetType() string {
	return "character"
}

// Class returns the character's class entry for classID
func (c *Character) Class(classID string) (CharacterClass, bool) {
	for _, cc := range c.Classes {
		if cc.ClassID == classID {
			return cc, true
		}
	}
	return CharacterClass{}, false
}

// TotalLevel sums the character's class levels
func (c *Character) TotalLevel() int {
	total := 0
	for _, cc := range c.Classes {
		total += cc.Level
	}
	return total
}
