package card

import "testing"

func testDetail() Detail {
	return Detail{
		Card: Card{
			Name:             "Dark Magician",
			Number:           "LOB-005",
			CollectionNumber: 5,
			InCollection:     2,
		},
		Series:   Series{Name: "Legend of Blue Eyes White Dragon"},
		Rarity:   Rarity{Name: "Ultra Rare"},
		CardType: CardType{Main: "Monster", Sub: "Normal"},
	}
}

func TestFormat_Default(t *testing.T) {
	got := Format(testDetail(), DefaultFormatter)
	want := "|Legend of Blue Eyes White Dragon|LOB-005|Dark Magician|"
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestFormat_AllPlaceholders(t *testing.T) {
	formatter := "{name} {number} {collection_number} {rarity} {series} {card_type} {in_collection}"
	got := Format(testDetail(), formatter)
	want := "Dark Magician LOB-005 5 Ultra Rare Legend of Blue Eyes White Dragon Normal Monster 2"
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestFormat_UnknownPlaceholderUntouched(t *testing.T) {
	got := Format(testDetail(), "{name} {bogus}")
	want := "Dark Magician {bogus}"
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestCardTypeDisplay(t *testing.T) {
	ct := CardType{Main: "Spell", Sub: "Continuous"}
	if got := ct.Display(); got != "Continuous Spell" {
		t.Errorf("Display() = %q, want %q", got, "Continuous Spell")
	}
}
