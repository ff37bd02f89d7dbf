package ops

import (
	"context"
	"database/sql"
	"testing"

	"github.com/hpungsan/cardex/internal/db"
	"github.com/hpungsan/cardex/internal/errors"
)

// setupTestDB creates an in-memory database with schema and seeds.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.Init(":memory:")
	if err != nil {
		t.Fatalf("failed to init test db: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

// seedSeries adds a series through the ops layer and returns its id.
func seedSeries(t *testing.T, database *sql.DB, name, prefix string) int64 {
	t.Helper()
	out, err := AddSeries(context.Background(), database, AddSeriesInput{
		Name:        name,
		ReleaseDate: "March 8, 2002",
		Prefix:      prefix,
		NCards:      126,
	})
	if err != nil {
		t.Fatalf("AddSeries() error = %v", err)
	}
	return out.ID
}

// seedCard adds a card through the ops layer with seed vocabulary refs.
func seedCard(t *testing.T, database *sql.DB, seriesID int64, name, number string) {
	t.Helper()
	ctx := context.Background()

	rarityID, err := db.GetRarityID(ctx, database, "Common")
	if err != nil {
		t.Fatalf("failed to resolve rarity: %v", err)
	}
	typeID, err := db.GetCardTypeID(ctx, database, "Monster Card", "Normal")
	if err != nil {
		t.Fatalf("failed to resolve card type: %v", err)
	}

	out, err := AddCard(ctx, database, AddCardInput{
		Name:       name,
		Number:     number,
		SeriesID:   seriesID,
		RarityID:   rarityID,
		CardTypeID: typeID,
	})
	if err != nil {
		t.Fatalf("AddCard() error = %v", err)
	}
	if !out.Inserted {
		t.Fatalf("AddCard(%s) not inserted", number)
	}
}

func TestSplitTypeLabel(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		wantSub  string
		wantMain string
		wantErr  bool
	}{
		{"monster", "Effect Monster Card", "Effect", "Monster Card", false},
		{"quick-play", "Quick-Play Spell Card", "Quick-Play", "Spell Card", false},
		{"trims", "  Counter Trap Card  ", "Counter", "Trap Card", false},
		{"no space", "Monster", "", "", true},
		{"empty", "", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub, main, err := SplitTypeLabel(tt.label)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SplitTypeLabel(%q) error = %v, wantErr %v", tt.label, err, tt.wantErr)
			}
			if sub != tt.wantSub || main != tt.wantMain {
				t.Errorf("SplitTypeLabel(%q) = (%q, %q), want (%q, %q)",
					tt.label, sub, main, tt.wantSub, tt.wantMain)
			}
		})
	}
}

func TestAddSeries_Validation(t *testing.T) {
	database := setupTestDB(t)

	_, err := AddSeries(context.Background(), database, AddSeriesInput{Name: "  "})
	if !errors.Is(err, errors.ErrInvalidRequest) {
		t.Errorf("AddSeries() error = %v, want INVALID_REQUEST", err)
	}
}

func TestAddCard_DerivesCollectionNumber(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	seriesID := seedSeries(t, database, "Legend of Blue Eyes White Dragon", "LOB")
	seedCard(t, database, seriesID, "Blue-Eyes White Dragon", "LOB-001")

	var collectionNumber int
	err := database.QueryRowContext(ctx,
		"SELECT collection_number FROM cards WHERE number = 'LOB-001'").Scan(&collectionNumber)
	if err != nil {
		t.Fatalf("failed to read card: %v", err)
	}
	if collectionNumber != 1 {
		t.Errorf("collection_number = %d, want 1 (derived from number)", collectionNumber)
	}
}

func TestAddCard_Validation(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	_, err := AddCard(ctx, database, AddCardInput{Number: "LOB-001"})
	if !errors.Is(err, errors.ErrInvalidRequest) {
		t.Errorf("missing name: error = %v, want INVALID_REQUEST", err)
	}

	_, err = AddCard(ctx, database, AddCardInput{Name: "Blue-Eyes White Dragon"})
	if !errors.Is(err, errors.ErrInvalidRequest) {
		t.Errorf("missing number: error = %v, want INVALID_REQUEST", err)
	}
}

func TestAddRarity_Idempotent(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	first, err := AddRarity(ctx, database, AddRarityInput{Name: "Ghost Rare"})
	if err != nil {
		t.Fatalf("AddRarity() error = %v", err)
	}
	second, err := AddRarity(ctx, database, AddRarityInput{Name: "Ghost Rare"})
	if err != nil {
		t.Fatalf("AddRarity() re-add error = %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("re-add returned id %d, want %d", second.ID, first.ID)
	}
}

func TestAddCardType_Idempotent(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	first, err := AddCardType(ctx, database, AddCardTypeInput{Label: "Ritual Trap Card"})
	if err != nil {
		t.Fatalf("AddCardType() error = %v", err)
	}
	if first.Sub != "Ritual" || first.Main != "Trap Card" {
		t.Errorf("AddCardType() = (%s, %s), want (Ritual, Trap Card)", first.Sub, first.Main)
	}

	second, err := AddCardType(ctx, database, AddCardTypeInput{Label: "Ritual Trap Card"})
	if err != nil {
		t.Fatalf("AddCardType() re-add error = %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("re-add returned id %d, want %d", second.ID, first.ID)
	}
}

func TestCollect(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	seriesID := seedSeries(t, database, "Legend of Blue Eyes White Dragon", "LOB")
	seedCard(t, database, seriesID, "Blue-Eyes White Dragon", "LOB-001")

	out, err := Collect(ctx, database, CollectInput{IDs: []string{"LOB-001"}})
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if len(out.Cards) != 1 {
		t.Fatalf("got %d cards, want 1", len(out.Cards))
	}
	if out.Cards[0].Count != 1 {
		t.Errorf("count = %d, want 1 (default delta)", out.Cards[0].Count)
	}
	if out.Total != 1 {
		t.Errorf("total = %d, want 1", out.Total)
	}
}

func TestCollect_Range(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	seriesID := seedSeries(t, database, "Legend of Blue Eyes White Dragon", "LOB")
	seedCard(t, database, seriesID, "Blue-Eyes White Dragon", "LOB-001")
	seedCard(t, database, seriesID, "Hitotsu-Me Giant", "LOB-002")
	seedCard(t, database, seriesID, "Flame Swordsman", "LOB-003")

	count := 2
	out, err := Collect(ctx, database, CollectInput{IDs: []string{"LOB-001-003"}, Count: &count})
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if len(out.Cards) != 3 {
		t.Fatalf("got %d cards, want 3 from expanded range", len(out.Cards))
	}
	for _, c := range out.Cards {
		if c.Count != 2 {
			t.Errorf("card %s count = %d, want 2", c.Number, c.Count)
		}
	}
	if out.Total != 6 {
		t.Errorf("total = %d, want 6", out.Total)
	}
}

func TestCollect_Validation(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	_, err := Collect(ctx, database, CollectInput{})
	if !errors.Is(err, errors.ErrInvalidRequest) {
		t.Errorf("empty ids: error = %v, want INVALID_REQUEST", err)
	}

	zero := 0
	_, err = Collect(ctx, database, CollectInput{IDs: []string{"LOB-001"}, Count: &zero})
	if !errors.Is(err, errors.ErrInvalidRequest) {
		t.Errorf("zero count: error = %v, want INVALID_REQUEST", err)
	}
}

func TestCollect_UnknownCardAborts(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	seriesID := seedSeries(t, database, "Legend of Blue Eyes White Dragon", "LOB")
	seedCard(t, database, seriesID, "Blue-Eyes White Dragon", "LOB-001")

	// LOB-002 does not exist; the range fails there but LOB-001 stays
	// applied.
	_, err := Collect(ctx, database, CollectInput{IDs: []string{"LOB-001-002"}})
	if !errors.Is(err, errors.ErrUnknownCard) {
		t.Fatalf("Collect() error = %v, want UNKNOWN_CARD", err)
	}

	var count int
	if err := database.QueryRowContext(ctx,
		"SELECT in_collection FROM cards WHERE number = 'LOB-001'").Scan(&count); err != nil {
		t.Fatalf("failed to read count: %v", err)
	}
	if count != 1 {
		t.Errorf("in_collection = %d, want 1 (earlier member applied)", count)
	}
}

func TestSell(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	seriesID := seedSeries(t, database, "Legend of Blue Eyes White Dragon", "LOB")
	seedCard(t, database, seriesID, "Blue-Eyes White Dragon", "LOB-001")

	three := 3
	if _, err := Collect(ctx, database, CollectInput{IDs: []string{"LOB-001"}, Count: &three}); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	out, err := Sell(ctx, database, SellInput{IDs: []string{"LOB-001"}})
	if err != nil {
		t.Fatalf("Sell() error = %v", err)
	}
	if out.Cards[0].Count != 2 {
		t.Errorf("count = %d, want 2", out.Cards[0].Count)
	}
}

func TestSell_BelowZero(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	seriesID := seedSeries(t, database, "Two Swords", "TS")
	seedCard(t, database, seriesID, "First Sword", "TS-001")

	if _, err := Collect(ctx, database, CollectInput{IDs: []string{"TS-001"}}); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	two := 2
	_, err := Sell(ctx, database, SellInput{IDs: []string{"TS-001"}, Count: &two})
	if !errors.Is(err, errors.ErrInvalidOperation) {
		t.Errorf("Sell() error = %v, want INVALID_OPERATION", err)
	}
}

func TestListCards(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	out, err := ListCards(ctx, database, ListCardsInput{})
	if err != nil {
		t.Fatalf("ListCards() error = %v", err)
	}
	if out.Items == nil {
		t.Error("Items is nil, want empty slice")
	}
	if out.Total != 0 {
		t.Errorf("Total = %d, want 0", out.Total)
	}

	seriesID := seedSeries(t, database, "Legend of Blue Eyes White Dragon", "LOB")
	seedCard(t, database, seriesID, "Blue-Eyes White Dragon", "LOB-001")
	seedCard(t, database, seriesID, "Dark Magician", "LOB-005")

	out, err = ListCards(ctx, database, ListCardsInput{Query: "magician"})
	if err != nil {
		t.Fatalf("ListCards() error = %v", err)
	}
	if out.Total != 1 {
		t.Fatalf("Total = %d, want 1", out.Total)
	}
	if out.Items[0].Card.Name != "Dark Magician" {
		t.Errorf("matched %s, want Dark Magician", out.Items[0].Card.Name)
	}
}

func TestSeriesCards_HideCollected(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	seriesID := seedSeries(t, database, "Legend of Blue Eyes White Dragon", "LOB")
	seedCard(t, database, seriesID, "Blue-Eyes White Dragon", "LOB-001")
	seedCard(t, database, seriesID, "Dark Magician", "LOB-005")

	if _, err := Collect(ctx, database, CollectInput{IDs: []string{"LOB-001"}}); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	out, err := SeriesCards(ctx, database, SeriesCardsInput{
		SeriesName:    "Legend of Blue Eyes White Dragon",
		HideCollected: true,
	})
	if err != nil {
		t.Fatalf("SeriesCards() error = %v", err)
	}
	if out.Total != 1 {
		t.Fatalf("Total = %d, want 1", out.Total)
	}
	if out.Items[0].Card.Number != "LOB-005" {
		t.Errorf("remaining card = %s, want LOB-005", out.Items[0].Card.Number)
	}
}

func TestSeriesCards_Unknown(t *testing.T) {
	database := setupTestDB(t)

	_, err := SeriesCards(context.Background(), database, SeriesCardsInput{SeriesName: "Ghost Set"})
	if !errors.Is(err, errors.ErrUnknownSeries) {
		t.Errorf("SeriesCards() error = %v, want UNKNOWN_SERIES", err)
	}
}

func TestListSeries(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	seedSeries(t, database, "Legend of Blue Eyes White Dragon", "LOB")

	out, err := ListSeries(ctx, database)
	if err != nil {
		t.Fatalf("ListSeries() error = %v", err)
	}
	if out.Total != 1 {
		t.Fatalf("Total = %d, want 1", out.Total)
	}
	if out.Items[0].Prefix != "LOB" {
		t.Errorf("Prefix = %s, want LOB", out.Items[0].Prefix)
	}
}

func TestListVocabularies(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	rarities, err := ListRarities(ctx, database)
	if err != nil {
		t.Fatalf("ListRarities() error = %v", err)
	}
	if rarities.Total == 0 {
		t.Error("no seeded rarities listed")
	}

	types, err := ListCardTypes(ctx, database)
	if err != nil {
		t.Fatalf("ListCardTypes() error = %v", err)
	}
	if types.Total == 0 {
		t.Error("no seeded card types listed")
	}
}

func TestFindSeries(t *testing.T) {
	out, err := FindSeries(FindSeriesInput{Query: "metal raiders"})
	if err != nil {
		t.Fatalf("FindSeries() error = %v", err)
	}
	if out.URL != "https://yugioh.fandom.com/wiki/Metal_Raiders" {
		t.Errorf("URL = %s", out.URL)
	}

	if _, err := FindSeries(FindSeriesInput{}); !errors.Is(err, errors.ErrInvalidRequest) {
		t.Errorf("empty query: error = %v, want INVALID_REQUEST", err)
	}
}
