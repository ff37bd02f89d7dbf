package ops

import (
	"strings"

	"github.com/hpungsan/cardex/internal/card"
	"github.com/hpungsan/cardex/internal/errors"
)

// FindSeriesInput contains parameters for the FindSeries operation.
type FindSeriesInput struct {
	Query string // required; series name to look up
}

// FindSeriesOutput contains the result of the FindSeries operation.
type FindSeriesOutput struct {
	URL string `json:"url"`
}

// FindSeries builds the wiki page URL for a series name. Opening a
// browser or touching the clipboard is left to the caller.
func FindSeries(input FindSeriesInput) (*FindSeriesOutput, error) {
	if strings.TrimSpace(input.Query) == "" {
		return nil, errors.NewInvalidRequest("query is required")
	}
	return &FindSeriesOutput{URL: card.WikiURL(input.Query)}, nil
}
