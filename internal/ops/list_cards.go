package ops

import (
	"context"
	"database/sql"

	"github.com/hpungsan/cardex/internal/card"
	"github.com/hpungsan/cardex/internal/db"
)

// ListCardsInput contains parameters for the ListCards operation.
type ListCardsInput struct {
	Query string // optional case-insensitive name substring
}

// ListCardsOutput contains the result of the ListCards operation.
type ListCardsOutput struct {
	Items []card.Detail `json:"items"`
	Total int           `json:"total"`
}

// ListCards returns all cards with resolved series, rarity, and card
// type, optionally filtered by a name substring.
func ListCards(ctx context.Context, database *sql.DB, input ListCardsInput) (*ListCardsOutput, error) {
	items, err := db.GetCards(ctx, database, input.Query)
	if err != nil {
		return nil, err
	}

	if items == nil {
		items = []card.Detail{}
	}
	return &ListCardsOutput{Items: items, Total: len(items)}, nil
}
