package ops

import (
	"context"
	"database/sql"

	"github.com/hpungsan/cardex/internal/db"
)

// SellInput contains parameters for the Sell operation.
type SellInput struct {
	IDs   []string // card numbers or range expressions; required
	Count *int     // copies to remove per card; default 1
}

// SellOutput contains the result of the Sell operation.
type SellOutput struct {
	Cards []CardCount `json:"cards"`
	Total int         `json:"total"`
}

// Sell decrements the owned-copy count of every card addressed by the
// inputs. A sell that would drive a card below zero fails that member
// with an invalid-operation error and aborts the call; members already
// applied are not rolled back.
func Sell(ctx context.Context, database *sql.DB, input SellInput) (*SellOutput, error) {
	numbers, delta, err := resolveUpdate(input.IDs, input.Count)
	if err != nil {
		return nil, err
	}

	out := &SellOutput{Cards: make([]CardCount, 0, len(numbers))}
	for _, number := range numbers {
		count, err := db.SellCard(ctx, database, number, delta)
		if err != nil {
			return nil, err
		}
		out.Cards = append(out.Cards, CardCount{Number: number, Count: count})
		out.Total += count
	}
	return out, nil
}
