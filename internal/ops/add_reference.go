package ops

import (
	"context"
	"database/sql"
	"strings"

	"github.com/hpungsan/cardex/internal/db"
	"github.com/hpungsan/cardex/internal/errors"
)

// AddRarityInput contains parameters for the AddRarity operation.
type AddRarityInput struct {
	Name string // required
}

// AddRarityOutput contains the result of the AddRarity operation.
type AddRarityOutput struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// AddRarity inserts a rarity name. Idempotent; the existing id is
// returned when the name is already present.
func AddRarity(ctx context.Context, database *sql.DB, input AddRarityInput) (*AddRarityOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.NewInvalidRequest("rarity name is required")
	}

	if err := db.InsertRarity(ctx, database, name); err != nil {
		return nil, err
	}
	id, err := db.GetRarityID(ctx, database, name)
	if err != nil {
		return nil, err
	}

	return &AddRarityOutput{ID: id, Name: name}, nil
}

// AddCardTypeInput contains parameters for the AddCardType operation.
type AddCardTypeInput struct {
	Label string // "SUBTYPE MAINTYPE", split on the first space
}

// AddCardTypeOutput contains the result of the AddCardType operation.
type AddCardTypeOutput struct {
	ID   int64  `json:"id"`
	Main string `json:"main"`
	Sub  string `json:"sub"`
}

// AddCardType creates a card type from a free-text label. Idempotent on
// the (main, sub) pair.
func AddCardType(ctx context.Context, database *sql.DB, input AddCardTypeInput) (*AddCardTypeOutput, error) {
	sub, main, err := SplitTypeLabel(input.Label)
	if err != nil {
		return nil, err
	}

	if err := db.InsertCardType(ctx, database, main, sub); err != nil {
		return nil, err
	}
	id, err := db.GetCardTypeID(ctx, database, main, sub)
	if err != nil {
		return nil, err
	}

	return &AddCardTypeOutput{ID: id, Main: main, Sub: sub}, nil
}
