package ops

import (
	"context"
	"database/sql"
	"strings"

	"github.com/hpungsan/cardex/internal/card"
	"github.com/hpungsan/cardex/internal/db"
	"github.com/hpungsan/cardex/internal/errors"
)

// AddCardInput contains parameters for the AddCard operation.
type AddCardInput struct {
	Name             string // required
	Number           string // required, natural key ("LOB-001")
	SeriesID         int64  // required, must reference an existing series
	RarityID         int64
	CardTypeID       int64
	CollectionNumber int // derived from Number when 0
}

// AddCardOutput contains the result of the AddCard operation.
type AddCardOutput struct {
	ID       int64 `json:"id"`
	Inserted bool  `json:"inserted"`
}

// AddCard inserts a card with zero owned copies. A duplicate number is a
// benign no-op: Inserted is false and ID is the sentinel 0.
func AddCard(ctx context.Context, database *sql.DB, input AddCardInput) (*AddCardOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.NewInvalidRequest("card name is required")
	}
	if strings.TrimSpace(input.Number) == "" {
		return nil, errors.NewInvalidRequest("card number is required")
	}

	collectionNumber := input.CollectionNumber
	if collectionNumber == 0 {
		_, collectionNumber = card.ParseNumber(input.Number)
	}

	id, err := db.InsertCard(ctx, database, &card.Card{
		Name:             strings.TrimSpace(input.Name),
		Number:           strings.TrimSpace(input.Number),
		SeriesID:         input.SeriesID,
		CollectionNumber: collectionNumber,
		RarityID:         input.RarityID,
		CardTypeID:       input.CardTypeID,
	})
	if err != nil {
		return nil, err
	}

	return &AddCardOutput{ID: id, Inserted: id != 0}, nil
}
