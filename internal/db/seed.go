package db

import (
	"context"
	"database/sql"
)

// seedRarities is the fixed rarity vocabulary inserted at initialization.
var seedRarities = []string{
	"Common",
	"Rare",
	"Super Rare",
	"Ultra Rare",
	"Secret Rare",
	"Quarter Century Rare",
}

// seedCardTypes is the fixed (main, sub) card-type vocabulary.
var seedCardTypes = [][2]string{
	{"Monster Card", "Normal"},
	{"Monster Card", "Effect"},
	{"Monster Card", "Fusion"},
	{"Monster Card", "Ritual"},
	{"Spell Card", "Normal"},
	{"Spell Card", "Continuous"},
	{"Spell Card", "Equip"},
	{"Spell Card", "Field"},
	{"Spell Card", "Quick-Play"},
	{"Spell Card", "Ritual"},
	{"Trap Card", "Normal"},
	{"Trap Card", "Continuous"},
	{"Trap Card", "Counter"},
}

// Seed inserts the standard rarities and card types. All inserts are
// idempotent, so Seed is safe to run on every startup.
func Seed(db *sql.DB) error {
	ctx := context.Background()

	for _, name := range seedRarities {
		if err := InsertRarity(ctx, db, name); err != nil {
			return err
		}
	}

	for _, ct := range seedCardTypes {
		if err := InsertCardType(ctx, db, ct[0], ct[1]); err != nil {
			return err
		}
	}

	return nil
}
