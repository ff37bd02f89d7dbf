package ops

import (
	"context"
	"database/sql"
	"strings"

	"github.com/hpungsan/cardex/internal/card"
	"github.com/hpungsan/cardex/internal/db"
	"github.com/hpungsan/cardex/internal/errors"
)

// AddSeriesInput contains parameters for the AddSeries operation.
type AddSeriesInput struct {
	Name        string // required
	ReleaseDate string // human date string, e.g. "September 5, 2025"
	Prefix      string // short code used to build card numbers
	NCards      int
}

// AddSeriesOutput contains the result of the AddSeries operation.
type AddSeriesOutput struct {
	ID int64 `json:"id"`
}

// AddSeries inserts a series if absent and returns its id. Re-adding an
// existing name returns the existing row's id.
func AddSeries(ctx context.Context, database *sql.DB, input AddSeriesInput) (*AddSeriesOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.NewInvalidRequest("series name is required")
	}

	id, err := db.InsertSeries(ctx, database, &card.Series{
		Name:        strings.TrimSpace(input.Name),
		ReleaseDate: input.ReleaseDate,
		Prefix:      input.Prefix,
		NCards:      input.NCards,
	})
	if err != nil {
		return nil, err
	}

	return &AddSeriesOutput{ID: id}, nil
}
