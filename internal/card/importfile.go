package card

// CardEntry is one record of a bulk card list.
type CardEntry struct {
	CardNumber string `json:"card_number"`
	Name       string `json:"name"`
	Rarity     string `json:"rarity"`
	Category   string `json:"category"` // "SUBTYPE MAINTYPE" label
}

// SeriesFile is the import document shape: series metadata plus its
// full card list.
type SeriesFile struct {
	Name        string      `json:"name"`
	NCards      int         `json:"ncards"`
	ReleaseDate string      `json:"release_date"`
	Prefix      string      `json:"prefix"`
	Cards       []CardEntry `json:"cards"`
}
