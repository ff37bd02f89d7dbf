package ops

import (
	"context"
	"database/sql"

	"github.com/hpungsan/cardex/internal/card"
	"github.com/hpungsan/cardex/internal/db"
	"github.com/hpungsan/cardex/internal/errors"
)

// CollectInput contains parameters for the Collect operation.
type CollectInput struct {
	IDs   []string // card numbers or range expressions; required
	Count *int     // copies to add per card; default 1
}

// CardCount pairs a card number with its copy count after an update.
type CardCount struct {
	Number string `json:"number"`
	Count  int    `json:"count"`
}

// CollectOutput contains the result of the Collect operation.
type CollectOutput struct {
	Cards []CardCount `json:"cards"`
	Total int         `json:"total"`
}

// Collect increments the owned-copy count of every card addressed by the
// inputs. Each identifier may be a single number or a range expression;
// ranges are expanded before the per-card updates. A number matching no
// row fails the call at that member; earlier members stay applied.
func Collect(ctx context.Context, database *sql.DB, input CollectInput) (*CollectOutput, error) {
	numbers, delta, err := resolveUpdate(input.IDs, input.Count)
	if err != nil {
		return nil, err
	}

	out := &CollectOutput{Cards: make([]CardCount, 0, len(numbers))}
	for _, number := range numbers {
		count, err := db.CollectCard(ctx, database, number, delta)
		if err != nil {
			return nil, err
		}
		out.Cards = append(out.Cards, CardCount{Number: number, Count: count})
		out.Total += count
	}
	return out, nil
}

// resolveUpdate validates a collect/sell request and expands its range
// expressions into concrete card numbers.
func resolveUpdate(ids []string, count *int) ([]string, int, error) {
	if len(ids) == 0 {
		return nil, 0, errors.NewInvalidRequest("at least one card number is required")
	}

	delta := 1
	if count != nil {
		if *count <= 0 {
			return nil, 0, errors.NewInvalidRequest("count must be a positive integer")
		}
		delta = *count
	}

	var numbers []string
	for _, id := range ids {
		numbers = append(numbers, card.ExpandRange(id)...)
	}
	return numbers, delta, nil
}
