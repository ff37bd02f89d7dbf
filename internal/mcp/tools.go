package mcp

import "github.com/mark3labs/mcp-go/mcp"

var listToolDef = mcp.NewTool("card_list",
	mcp.WithDescription("List all cards in the collection with resolved series, rarity, and card type. Optionally restrict to one series by exact name."),
	mcp.WithString("series",
		mcp.Description("Exact series name to filter by (case-insensitive)"),
	),
	mcp.WithBoolean("hide_collected",
		mcp.Description("Omit cards that already have at least one owned copy (only with series)"),
	),
)

var searchToolDef = mcp.NewTool("card_search",
	mcp.WithDescription("Search cards by a case-insensitive name substring."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Substring to match against card names"),
	),
)

var collectToolDef = mcp.NewTool("card_collect",
	mcp.WithDescription("Add owned copies of one or more cards. Each id is a card number like LOB-001 or a range expression like LOB-001-010."),
	mcp.WithArray("ids",
		mcp.Required(),
		mcp.Description("Card numbers or range expressions"),
		mcp.Items(map[string]any{"type": "string"}),
	),
	mcp.WithNumber("count",
		mcp.Description("Copies to add per card (default 1)"),
	),
)

var sellToolDef = mcp.NewTool("card_sell",
	mcp.WithDescription("Remove owned copies of one or more cards. Fails if a card's count would go below zero."),
	mcp.WithArray("ids",
		mcp.Required(),
		mcp.Description("Card numbers or range expressions"),
		mcp.Items(map[string]any{"type": "string"}),
	),
	mcp.WithNumber("count",
		mcp.Description("Copies to remove per card (default 1)"),
	),
)

var seriesListToolDef = mcp.NewTool("card_series_list",
	mcp.WithDescription("List all series in release-date order."),
)

var importToolDef = mcp.NewTool("card_import",
	mcp.WithDescription("Bulk-load a series and its cards from a JSON card list file."),
	mcp.WithString("path",
		mcp.Required(),
		mcp.Description("Path to the JSON card list"),
	),
)
