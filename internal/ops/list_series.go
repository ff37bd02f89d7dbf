package ops

import (
	"context"
	"database/sql"

	"github.com/hpungsan/cardex/internal/card"
	"github.com/hpungsan/cardex/internal/db"
)

// ListSeriesOutput contains the result of the ListSeries operation.
type ListSeriesOutput struct {
	Items []card.Series `json:"items"`
	Total int           `json:"total"`
}

// ListSeries returns all series, ordered by release date ascending.
func ListSeries(ctx context.Context, database *sql.DB) (*ListSeriesOutput, error) {
	items, err := db.ListSeries(ctx, database)
	if err != nil {
		return nil, err
	}

	if items == nil {
		items = []card.Series{}
	}
	return &ListSeriesOutput{Items: items, Total: len(items)}, nil
}

// ListRaritiesOutput contains the result of the ListRarities operation.
type ListRaritiesOutput struct {
	Items []card.Rarity `json:"items"`
	Total int           `json:"total"`
}

// ListRarities returns the rarity vocabulary.
func ListRarities(ctx context.Context, database *sql.DB) (*ListRaritiesOutput, error) {
	items, err := db.ListRarities(ctx, database)
	if err != nil {
		return nil, err
	}

	if items == nil {
		items = []card.Rarity{}
	}
	return &ListRaritiesOutput{Items: items, Total: len(items)}, nil
}

// ListCardTypesOutput contains the result of the ListCardTypes operation.
type ListCardTypesOutput struct {
	Items []card.CardType `json:"items"`
	Total int             `json:"total"`
}

// ListCardTypes returns the card-type vocabulary.
func ListCardTypes(ctx context.Context, database *sql.DB) (*ListCardTypesOutput, error) {
	items, err := db.ListCardTypes(ctx, database)
	if err != nil {
		return nil, err
	}

	if items == nil {
		items = []card.CardType{}
	}
	return &ListCardTypesOutput{Items: items, Total: len(items)}, nil
}
