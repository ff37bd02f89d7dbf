package ops

import (
	"context"
	"database/sql"
	"strings"

	"github.com/hpungsan/cardex/internal/card"
	"github.com/hpungsan/cardex/internal/db"
	"github.com/hpungsan/cardex/internal/errors"
)

// SeriesCardsInput contains parameters for the SeriesCards operation.
type SeriesCardsInput struct {
	SeriesName    string // required, exact case-insensitive match
	HideCollected bool   // drop cards with at least one owned copy
}

// SeriesCardsOutput contains the result of the SeriesCards operation.
type SeriesCardsOutput struct {
	Items []card.Detail `json:"items"`
	Total int           `json:"total"`
}

// SeriesCards returns the joined cards of one series. An unknown series
// name (or a series with no cards) fails with unknown-series.
func SeriesCards(ctx context.Context, database *sql.DB, input SeriesCardsInput) (*SeriesCardsOutput, error) {
	if strings.TrimSpace(input.SeriesName) == "" {
		return nil, errors.NewInvalidRequest("series name is required")
	}

	items, err := db.GetCardsBySeriesName(ctx, database, input.SeriesName)
	if err != nil {
		return nil, err
	}

	if input.HideCollected {
		kept := items[:0]
		for _, d := range items {
			if d.Card.InCollection == 0 {
				kept = append(kept, d)
			}
		}
		items = kept
	}

	return &SeriesCardsOutput{Items: items, Total: len(items)}, nil
}
