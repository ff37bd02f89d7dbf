package ops

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	"github.com/hpungsan/cardex/internal/card"
	"github.com/hpungsan/cardex/internal/db"
	"github.com/hpungsan/cardex/internal/errors"
)

// ImportInput contains parameters for the Import operation.
type ImportInput struct {
	Path string // required; JSON card list file
}

// ImportOutput contains the result of the Import operation.
type ImportOutput struct {
	SeriesID int64 `json:"series_id"`
	Inserted int   `json:"inserted"`
	Skipped  int   `json:"skipped"`
}

// Import bulk-loads a series and its cards from a JSON card list. Each
// record's rarity and card type are resolved by name; the first
// unresolved reference fails the whole import. The stored card number is
// rebuilt from the parsed series prefix and collection number, so
// "LOB-EN001" in the file becomes "LOB-001" in the store. Duplicate
// numbers are skipped and do not count toward the inserted total.
func Import(ctx context.Context, database *sql.DB, input ImportInput) (*ImportOutput, error) {
	if input.Path == "" {
		return nil, errors.NewInvalidRequest("path is required")
	}

	data, err := os.ReadFile(input.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewInvalidRequest(fmt.Sprintf("card list not found: %s", input.Path))
		}
		return nil, errors.NewInternal(err)
	}

	var file card.SeriesFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, errors.NewInvalidRequest(fmt.Sprintf("invalid card list: %v", err))
	}
	if file.Name == "" {
		return nil, errors.NewInvalidRequest("card list is missing the series name")
	}

	seriesID, err := db.InsertSeries(ctx, database, &card.Series{
		Name:        file.Name,
		ReleaseDate: file.ReleaseDate,
		Prefix:      file.Prefix,
		NCards:      file.NCards,
	})
	if err != nil {
		return nil, err
	}

	out := &ImportOutput{SeriesID: seriesID}
	for _, entry := range file.Cards {
		rarityID, err := db.GetRarityID(ctx, database, entry.Rarity)
		if err != nil {
			return nil, err
		}

		sub, main, err := SplitTypeLabel(entry.Category)
		if err != nil {
			return nil, err
		}
		typeID, err := db.GetCardTypeID(ctx, database, main, sub)
		if err != nil {
			return nil, err
		}

		prefix, collectionNumber := card.ParseNumber(entry.CardNumber)

		id, err := db.InsertCard(ctx, database, &card.Card{
			Name:             entry.Name,
			Number:           card.FormatNumber(prefix, collectionNumber),
			SeriesID:         seriesID,
			CollectionNumber: collectionNumber,
			RarityID:         rarityID,
			CardTypeID:       typeID,
		})
		if err != nil {
			return nil, err
		}
		if id != 0 {
			out.Inserted++
		} else {
			out.Skipped++
		}
	}

	return out, nil
}
