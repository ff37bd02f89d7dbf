package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/hpungsan/cardex/internal/card"
	"github.com/hpungsan/cardex/internal/config"
	"github.com/hpungsan/cardex/internal/db"
	"github.com/hpungsan/cardex/internal/errors"
	"github.com/hpungsan/cardex/internal/mcp"
	"github.com/hpungsan/cardex/internal/ops"
	"github.com/hpungsan/cardex/internal/web"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(database *sql.DB, cfg *config.Config) *cli.App {
	app := &cli.App{
		Name:    "cardex",
		Usage:   "Personal trading card collection tracker",
		Version: Version,
		Commands: []*cli.Command{
			initCmd(cfg),
			addCmd(database),
			listCmd(database),
			collectCmd(database),
			sellCmd(database),
			findCmd(database),
			serveCmd(database, cfg),
			mcpCmd(database, cfg),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// initCmd creates the init command. Schema setup and seeding happen on
// every startup, so this only confirms the database location.
func initCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Initialize the card database",
		Action: func(_ *cli.Context) error {
			return outputJSON(map[string]any{
				"initialized": true,
				"db_path":     cfg.DBPath,
			})
		},
	}
}

// addCmd creates the add command with its subcommands.
func addCmd(database *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "add",
		Usage: "Add a series, card, rarity, card type, or JSON card list",
		Subcommands: []*cli.Command{
			addSeriesCmd(database),
			addCardCmd(database),
			addRarityCmd(database),
			addCardTypeCmd(database),
			addJSONCmd(database),
		},
	}
}

// addSeriesCmd creates the add series subcommand.
func addSeriesCmd(database *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "series",
		Usage: "Add a card series",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Required: true, Usage: "Series name"},
			&cli.StringFlag{Name: "release-date", Aliases: []string{"d"}, Usage: "Release date, e.g. \"March 8, 2002\""},
			&cli.StringFlag{Name: "prefix", Aliases: []string{"p"}, Usage: "Card number prefix, e.g. LOB"},
			&cli.IntFlag{Name: "ncards", Usage: "Number of cards in the series"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.AddSeries(c.Context, database, ops.AddSeriesInput{
				Name:        c.String("name"),
				ReleaseDate: c.String("release-date"),
				Prefix:      c.String("prefix"),
				NCards:      c.Int("ncards"),
			})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// addCardCmd creates the add card subcommand. Rarity and card type are
// given by name and resolved before insert.
func addCardCmd(database *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "card",
		Usage: "Add a single card",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Required: true, Usage: "Card name"},
			&cli.StringFlag{Name: "number", Required: true, Usage: "Card number, e.g. LOB-001"},
			&cli.Int64Flag{Name: "series-id", Required: true, Usage: "Series id"},
			&cli.StringFlag{Name: "rarity", Aliases: []string{"r"}, Required: true, Usage: "Rarity name, e.g. \"Ultra Rare\""},
			&cli.StringFlag{Name: "type", Aliases: []string{"t"}, Required: true, Usage: "Card type label, e.g. \"Effect Monster Card\""},
		},
		Action: func(c *cli.Context) error {
			rarityID, err := db.GetRarityID(c.Context, database, c.String("rarity"))
			if err != nil {
				return outputError(err)
			}
			sub, main, err := ops.SplitTypeLabel(c.String("type"))
			if err != nil {
				return outputError(err)
			}
			cardTypeID, err := db.GetCardTypeID(c.Context, database, main, sub)
			if err != nil {
				return outputError(err)
			}

			output, err := ops.AddCard(c.Context, database, ops.AddCardInput{
				Name:       c.String("name"),
				Number:     c.String("number"),
				SeriesID:   c.Int64("series-id"),
				RarityID:   rarityID,
				CardTypeID: cardTypeID,
			})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// addRarityCmd creates the add rarity subcommand.
func addRarityCmd(database *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "rarity",
		Usage: "Add a rarity to the vocabulary",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Required: true, Usage: "Rarity name"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.AddRarity(c.Context, database, ops.AddRarityInput{
				Name: c.String("name"),
			})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// addCardTypeCmd creates the add card-type subcommand.
func addCardTypeCmd(database *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "card-type",
		Usage: "Add a card type to the vocabulary",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "label", Aliases: []string{"l"}, Required: true, Usage: "Type label, e.g. \"Continuous Spell Card\""},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.AddCardType(c.Context, database, ops.AddCardTypeInput{
				Label: c.String("label"),
			})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// addJSONCmd creates the add json subcommand.
func addJSONCmd(database *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "json",
		Usage: "Bulk-load a series and its cards from a JSON card list",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "filename", Aliases: []string{"f"}, Required: true, Usage: "Path to the JSON card list"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.Import(c.Context, database, ops.ImportInput{
				Path: c.String("filename"),
			})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// listCmd creates the list command with its subcommands.
func listCmd(database *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List cards, series, rarities, or card types",
		Subcommands: []*cli.Command{
			listCardsCmd(database),
			listSerieCmd(database),
			listSeriesCmd(database),
			listRaritiesCmd(database),
			listCardTypesCmd(database),
		},
	}
}

// listCardsCmd creates the list cards subcommand.
func listCardsCmd(database *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "cards",
		Usage: "List all cards",
		Action: func(c *cli.Context) error {
			output, err := ops.ListCards(c.Context, database, ops.ListCardsInput{})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// listSerieCmd creates the list serie subcommand.
func listSerieCmd(database *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "serie",
		Usage: "List the cards of one series as formatted lines",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Required: true, Usage: "Series name"},
			&cli.BoolFlag{Name: "hide-collected", Usage: "Omit cards with at least one owned copy"},
			&cli.StringFlag{Name: "formatter", Aliases: []string{"f"}, Value: card.DefaultFormatter, Usage: "Line template with {name}, {number}, {rarity}, ... placeholders"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.SeriesCards(c.Context, database, ops.SeriesCardsInput{
				SeriesName:    c.String("name"),
				HideCollected: c.Bool("hide-collected"),
			})
			if err != nil {
				return outputError(err)
			}
			for _, d := range output.Items {
				fmt.Println(card.Format(d, c.String("formatter")))
			}
			return nil
		},
	}
}

// listSeriesCmd creates the list series subcommand.
func listSeriesCmd(database *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "series",
		Usage: "List all series in release-date order",
		Action: func(c *cli.Context) error {
			output, err := ops.ListSeries(c.Context, database)
			if err != nil {
				return outputError(err)
			}
			for _, s := range output.Items {
				fmt.Printf("%d. %s (%s) - %d cards\n", s.ID, s.Name, s.ReleaseDate, s.NCards)
			}
			return nil
		},
	}
}

// listRaritiesCmd creates the list rarities subcommand.
func listRaritiesCmd(database *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "rarities",
		Usage: "List the rarity vocabulary",
		Action: func(c *cli.Context) error {
			output, err := ops.ListRarities(c.Context, database)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// listCardTypesCmd creates the list card-types subcommand.
func listCardTypesCmd(database *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "card-types",
		Usage: "List the card-type vocabulary",
		Action: func(c *cli.Context) error {
			output, err := ops.ListCardTypes(c.Context, database)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// collectCmd creates the collect command.
func collectCmd(database *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "collect",
		Usage: "Add owned copies of one or more cards",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{Name: "id", Required: true, Usage: "Card number (LOB-001) or range (LOB-001-010); repeatable"},
			&cli.IntFlag{Name: "count", Aliases: []string{"c"}, Usage: "Copies to add per card (default 1)"},
		},
		Action: func(c *cli.Context) error {
			input := ops.CollectInput{IDs: c.StringSlice("id")}
			if c.IsSet("count") {
				count := c.Int("count")
				input.Count = &count
			}

			output, err := ops.Collect(c.Context, database, input)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// sellCmd creates the sell command.
func sellCmd(database *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "sell",
		Usage: "Remove owned copies of one or more cards",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{Name: "id", Required: true, Usage: "Card number (LOB-001) or range (LOB-001-010); repeatable"},
			&cli.IntFlag{Name: "count", Aliases: []string{"c"}, Usage: "Copies to remove per card (default 1)"},
		},
		Action: func(c *cli.Context) error {
			input := ops.SellInput{IDs: c.StringSlice("id")}
			if c.IsSet("count") {
				count := c.Int("count")
				input.Count = &count
			}

			output, err := ops.Sell(c.Context, database, input)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// findCmd creates the find command with its subcommands.
func findCmd(database *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "find",
		Usage: "Search cards by name or look up a series wiki page",
		Subcommands: []*cli.Command{
			findCardsCmd(database),
			findSerieCmd(),
		},
	}
}

// findCardsCmd creates the find cards subcommand.
func findCardsCmd(database *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "cards",
		Usage: "Search cards by a case-insensitive name substring",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "query", Aliases: []string{"q"}, Required: true, Usage: "Substring to match against card names"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.ListCards(c.Context, database, ops.ListCardsInput{
				Query: c.String("query"),
			})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// findSerieCmd creates the find serie subcommand.
func findSerieCmd() *cli.Command {
	return &cli.Command{
		Name:  "serie",
		Usage: "Print the wiki page URL for a series name",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "query", Aliases: []string{"q"}, Required: true, Usage: "Series name"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.FindSeries(ops.FindSeriesInput{Query: c.String("query")})
			if err != nil {
				return outputError(err)
			}
			fmt.Println(output.URL)
			return nil
		},
	}
}

// serveCmd creates the serve command.
func serveCmd(database *sql.DB, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP JSON API",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "bind", Usage: "Bind address (overrides config)"},
			&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Usage: "Port (overrides config)"},
		},
		Action: func(c *cli.Context) error {
			if c.IsSet("bind") {
				cfg.Bind = c.String("bind")
			}
			if c.IsSet("port") {
				cfg.Port = c.Int("port")
			}

			logger, err := zap.NewProduction()
			if err != nil {
				return outputError(err)
			}
			defer logger.Sync()

			srv := web.NewServer(database, cfg, logger)
			return web.Run(srv, logger)
		},
	}
}

// mcpCmd creates the mcp command.
func mcpCmd(database *sql.DB, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "mcp",
		Usage: "Run the MCP server over stdio",
		Action: func(_ *cli.Context) error {
			if unknown := mcp.ValidateDisabledTools(cfg.DisabledTools); len(unknown) > 0 {
				fmt.Fprintf(os.Stderr, "warning: unknown disabled tools in config: %v\n", unknown)
			}
			return mcp.Run(database, cfg, Version)
		},
	}
}

// outputJSON writes indented JSON to stdout.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if cErr, ok := err.(*errors.CardexError); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", cErr.Code, cErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}
