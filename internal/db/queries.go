package db

import (
	"context"
	"database/sql"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/hpungsan/cardex/internal/card"
	"github.com/hpungsan/cardex/internal/errors"
)

// releaseDateEpoch is stored when a series release date cannot be parsed.
const releaseDateEpoch = "1970-01-01"

// releaseDateLayouts are the accepted input forms, tried in order.
var releaseDateLayouts = []string{
	"January 2, 2006",
	"2006-01-02",
}

// InsertRarity inserts a rarity name. Re-inserting an existing name is a
// silent no-op.
func InsertRarity(ctx context.Context, db *sql.DB, name string) error {
	_, err := db.ExecContext(ctx, "INSERT OR IGNORE INTO rarity (name) VALUES (?)", name)
	if err != nil {
		return errors.NewInternal(err)
	}
	return nil
}

// InsertCardType inserts a (main, sub) card-type pair. Idempotent on the
// compound key.
func InsertCardType(ctx context.Context, db *sql.DB, main, sub string) error {
	_, err := db.ExecContext(ctx,
		"INSERT OR IGNORE INTO card_type (maintype, subtype) VALUES (?, ?)", main, sub)
	if err != nil {
		return errors.NewInternal(err)
	}
	return nil
}

// InsertSeries inserts a series if absent and returns its id, covering
// both the fresh-insert and already-exists paths. The release date is
// parsed from a human string; unparseable dates fall back to 1970-01-01
// rather than failing.
func InsertSeries(ctx context.Context, db *sql.DB, s *card.Series) (int64, error) {
	releaseDate := parseReleaseDate(s.ReleaseDate)

	_, err := db.ExecContext(ctx,
		`INSERT OR IGNORE INTO series (name, release_date, prefix, n_cards)
		 VALUES (?, ?, ?, ?)`,
		s.Name, releaseDate, s.Prefix, s.NCards)
	if err != nil {
		return 0, errors.NewInternal(err)
	}

	// Always fetch the id (whether newly inserted or existing).
	return GetSeriesIDByName(ctx, db, s.Name)
}

// InsertCard inserts a card row with in_collection starting at 0. The
// referenced series must exist; rarity and card-type ids are assumed
// already resolved by the caller. A duplicate number is not an error:
// it logs a warning and returns the sentinel id 0 with no new row.
func InsertCard(ctx context.Context, db *sql.DB, c *card.Card) (int64, error) {
	series, err := GetSeriesByID(ctx, db, c.SeriesID)
	if err != nil {
		return 0, err
	}

	result, err := db.ExecContext(ctx,
		`INSERT INTO cards (name, series_id, number, collection_number, in_collection, rarity_id, card_type_id)
		 VALUES (?, ?, ?, ?, 0, ?, ?)`,
		c.Name, c.SeriesID, c.Number, c.CollectionNumber, c.RarityID, c.CardTypeID)
	if err != nil {
		if isUniqueConstraintError(err) {
			log.Printf("warning: card %q already exists in series %q", c.Number, series.Name)
			return 0, nil
		}
		return 0, errors.NewInternal(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, errors.NewInternal(err)
	}
	return id, nil
}

// CollectCard increments a card's copy count by delta and returns the
// new count. The update and read happen in a single statement. A number
// matching no row is an error, never a silent no-op.
func CollectCard(ctx context.Context, db *sql.DB, number string, delta int) (int, error) {
	var count int
	err := db.QueryRowContext(ctx,
		`UPDATE cards SET in_collection = in_collection + ?
		 WHERE number = ?
		 RETURNING in_collection`,
		delta, number).Scan(&count)
	if err == sql.ErrNoRows {
		return 0, errors.NewUnknownCard(number)
	}
	if err != nil {
		return 0, errors.NewInternal(err)
	}
	return count, nil
}

// SellCard decrements a card's copy count by delta and returns the new
// count. The guarded update only commits if the resulting count stays
// non-negative; a sell that would go below zero leaves the row unchanged
// and fails with an invalid-operation error.
func SellCard(ctx context.Context, db *sql.DB, number string, delta int) (int, error) {
	var count int
	err := db.QueryRowContext(ctx,
		`UPDATE cards SET in_collection = in_collection - ?
		 WHERE number = ? AND in_collection >= ?
		 RETURNING in_collection`,
		delta, number, delta).Scan(&count)
	if err == nil {
		return count, nil
	}
	if err != sql.ErrNoRows {
		return 0, errors.NewInternal(err)
	}

	// No row updated: distinguish a missing card from an underflow.
	var current int
	err = db.QueryRowContext(ctx,
		"SELECT in_collection FROM cards WHERE number = ?", number).Scan(&current)
	if err == sql.ErrNoRows {
		return 0, errors.NewUnknownCard(number)
	}
	if err != nil {
		return 0, errors.NewInternal(err)
	}
	return 0, errors.NewInvalidOperation(
		"cannot sell " + number + ": would reduce collection below zero")
}

const detailColumns = `
	c.id, c.name, c.series_id, c.number, c.collection_number, c.in_collection,
	c.rarity_id, c.card_type_id,
	s.id, s.name, s.release_date, s.prefix, s.n_cards,
	r.id, r.name,
	t.id, t.maintype, t.subtype`

const detailJoins = `
	FROM cards c
	JOIN series s ON c.series_id = s.id
	JOIN rarity r ON c.rarity_id = r.id
	JOIN card_type t ON c.card_type_id = t.id`

// GetCards returns every card joined with its resolved series, rarity,
// and card type. A non-empty nameFilter restricts to cards whose name
// contains the substring, case-insensitively.
func GetCards(ctx context.Context, db *sql.DB, nameFilter string) ([]card.Detail, error) {
	query := "SELECT" + detailColumns + detailJoins
	args := []any{}
	if nameFilter != "" {
		query += " WHERE c.name LIKE '%' || ? || '%' COLLATE NOCASE"
		args = append(args, nameFilter)
	}
	query += " ORDER BY c.number"

	return queryDetails(ctx, db, query, args...)
}

// GetCardsBySeriesName returns the joined cards of a series, matched by
// exact case-insensitive name. An empty result fails with unknown-series
// (a series with zero cards is indistinguishable from an absent one).
func GetCardsBySeriesName(ctx context.Context, db *sql.DB, seriesName string) ([]card.Detail, error) {
	query := "SELECT" + detailColumns + detailJoins +
		" WHERE s.name = ? COLLATE NOCASE ORDER BY c.collection_number"

	details, err := queryDetails(ctx, db, query, seriesName)
	if err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, errors.NewUnknownSeries(seriesName)
	}
	return details, nil
}

// GetRarityID resolves a rarity name to its id.
func GetRarityID(ctx context.Context, db *sql.DB, name string) (int64, error) {
	var id int64
	err := db.QueryRowContext(ctx, "SELECT id FROM rarity WHERE name = ?", name).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, errors.NewUnknownRarity(name)
	}
	if err != nil {
		return 0, errors.NewInternal(err)
	}
	return id, nil
}

// GetCardTypeID resolves a (main, sub) card-type pair to its id.
func GetCardTypeID(ctx context.Context, db *sql.DB, main, sub string) (int64, error) {
	var id int64
	err := db.QueryRowContext(ctx,
		"SELECT id FROM card_type WHERE maintype = ? AND subtype = ?", main, sub).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, errors.NewUnknownCardType(sub + " " + main)
	}
	if err != nil {
		return 0, errors.NewInternal(err)
	}
	return id, nil
}

// GetSeriesByID retrieves a series row by id.
func GetSeriesByID(ctx context.Context, db *sql.DB, id int64) (*card.Series, error) {
	var s card.Series
	var prefix sql.NullString
	err := db.QueryRowContext(ctx,
		"SELECT id, name, release_date, prefix, n_cards FROM series WHERE id = ?", id).
		Scan(&s.ID, &s.Name, &s.ReleaseDate, &prefix, &s.NCards)
	if err == sql.ErrNoRows {
		return nil, errors.NewUnknownSeries(strconv.FormatInt(id, 10))
	}
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	s.Prefix = prefix.String
	return &s, nil
}

// GetSeriesIDByName resolves a series name to its id.
func GetSeriesIDByName(ctx context.Context, db *sql.DB, name string) (int64, error) {
	var id int64
	err := db.QueryRowContext(ctx, "SELECT id FROM series WHERE name = ?", name).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, errors.NewUnknownSeries(name)
	}
	if err != nil {
		return 0, errors.NewInternal(err)
	}
	return id, nil
}

// ListSeries returns all series rows, ordered by release date ascending.
func ListSeries(ctx context.Context, db *sql.DB) ([]card.Series, error) {
	rows, err := db.QueryContext(ctx,
		"SELECT id, name, release_date, prefix, n_cards FROM series ORDER BY release_date ASC")
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	defer rows.Close()

	var list []card.Series
	for rows.Next() {
		var s card.Series
		var prefix sql.NullString
		if err := rows.Scan(&s.ID, &s.Name, &s.ReleaseDate, &prefix, &s.NCards); err != nil {
			return nil, errors.NewInternal(err)
		}
		s.Prefix = prefix.String
		list = append(list, s)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewInternal(err)
	}
	return list, nil
}

// ListRarities returns all rarity rows in insertion order.
func ListRarities(ctx context.Context, db *sql.DB) ([]card.Rarity, error) {
	rows, err := db.QueryContext(ctx, "SELECT id, name FROM rarity ORDER BY id")
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	defer rows.Close()

	var list []card.Rarity
	for rows.Next() {
		var r card.Rarity
		if err := rows.Scan(&r.ID, &r.Name); err != nil {
			return nil, errors.NewInternal(err)
		}
		list = append(list, r)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewInternal(err)
	}
	return list, nil
}

// ListCardTypes returns all card-type rows in insertion order.
func ListCardTypes(ctx context.Context, db *sql.DB) ([]card.CardType, error) {
	rows, err := db.QueryContext(ctx, "SELECT id, maintype, subtype FROM card_type ORDER BY id")
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	defer rows.Close()

	var list []card.CardType
	for rows.Next() {
		var t card.CardType
		if err := rows.Scan(&t.ID, &t.Main, &t.Sub); err != nil {
			return nil, errors.NewInternal(err)
		}
		list = append(list, t)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewInternal(err)
	}
	return list, nil
}

// queryDetails runs a detail join query and scans the result rows.
func queryDetails(ctx context.Context, db *sql.DB, query string, args ...any) ([]card.Detail, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	defer rows.Close()

	var details []card.Detail
	for rows.Next() {
		var d card.Detail
		var prefix sql.NullString
		err := rows.Scan(
			&d.Card.ID, &d.Card.Name, &d.Card.SeriesID, &d.Card.Number,
			&d.Card.CollectionNumber, &d.Card.InCollection,
			&d.Card.RarityID, &d.Card.CardTypeID,
			&d.Series.ID, &d.Series.Name, &d.Series.ReleaseDate, &prefix, &d.Series.NCards,
			&d.Rarity.ID, &d.Rarity.Name,
			&d.CardType.ID, &d.CardType.Main, &d.CardType.Sub,
		)
		if err != nil {
			return nil, errors.NewInternal(err)
		}
		d.Series.Prefix = prefix.String
		d.CardTypeDisplay = d.CardType.Display()
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewInternal(err)
	}
	return details, nil
}

// parseReleaseDate normalizes a human date string to YYYY-MM-DD, falling
// back to the epoch default instead of failing.
func parseReleaseDate(s string) string {
	for _, layout := range releaseDateLayouts {
		if t, err := time.Parse(layout, strings.TrimSpace(s)); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return releaseDateEpoch
}

// isUniqueConstraintError checks if the error is a SQLite UNIQUE
// constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
