// Package card holds the domain model for a trading-card collection:
// series, rarities, card types, the cards themselves, and the string
// helpers that decompose card numbers and expand range expressions.
package card

import "fmt"

// Rarity is a fixed reference vocabulary entry (e.g. "Ultra Rare").
type Rarity struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CardType is a (main, sub) category pair, unique as a pair.
// Display form is "SUB MAIN", e.g. "Normal Spell Card".
type CardType struct {
	ID   int64  `json:"id"`
	Main string `json:"main"`
	Sub  string `json:"sub"`
}

// Display renders the card type in its conventional "SUB MAIN" form.
func (t CardType) Display() string {
	return fmt.Sprintf("%s %s", t.Sub, t.Main)
}

// Series is a named release set identified by a short prefix code.
type Series struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	ReleaseDate string `json:"release_date"` // stored as YYYY-MM-DD
	Prefix      string `json:"prefix"`
	NCards      int    `json:"n_cards"`
}

// Card is a single card row. Number is the natural key ("LOB-001");
// InCollection counts owned physical copies and never goes negative.
type Card struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	SeriesID         int64  `json:"series_id"`
	Number           string `json:"number"`
	CollectionNumber int    `json:"collection_number"`
	InCollection     int    `json:"in_collection"`
	RarityID         int64  `json:"rarity_id"`
	CardTypeID       int64  `json:"card_type_id"`
}

// Detail is a card joined with its resolved series, rarity, and card type.
type Detail struct {
	Card            Card     `json:"card"`
	Series          Series   `json:"series"`
	Rarity          Rarity   `json:"rarity"`
	CardType        CardType `json:"cardtype"`
	CardTypeDisplay string   `json:"cardtype_display"`
}
