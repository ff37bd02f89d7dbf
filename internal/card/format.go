package card

import (
	"strconv"
	"strings"
)

// DefaultFormatter is the list output template used when the caller does
// not supply one.
const DefaultFormatter = "|{series}|{number}|{name}|"

// Format renders a card detail through a placeholder template. Supported
// placeholders: {name}, {number}, {collection_number}, {rarity}, {series},
// {card_type}, {in_collection}. Unknown placeholders are left untouched.
func Format(d Detail, formatter string) string {
	r := strings.NewReplacer(
		"{name}", d.Card.Name,
		"{number}", d.Card.Number,
		"{collection_number}", strconv.Itoa(d.Card.CollectionNumber),
		"{rarity}", d.Rarity.Name,
		"{series}", d.Series.Name,
		"{card_type}", d.CardType.Display(),
		"{in_collection}", strconv.Itoa(d.Card.InCollection),
	)
	return r.Replace(formatter)
}
