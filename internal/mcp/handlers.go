package mcp

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hpungsan/cardex/internal/config"
	"github.com/hpungsan/cardex/internal/errors"
	"github.com/hpungsan/cardex/internal/ops"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	db  *sql.DB
	cfg *config.Config
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(db *sql.DB, cfg *config.Config) *Handlers {
	return &Handlers{db: db, cfg: cfg}
}

// Request types for each tool

// ListRequest represents the arguments for card_list.
type ListRequest struct {
	Series        string `json:"series,omitempty"`
	HideCollected bool   `json:"hide_collected,omitempty"`
}

// SearchRequest represents the arguments for card_search.
type SearchRequest struct {
	Query string `json:"query"`
}

// UpdateRequest represents the arguments for card_collect and card_sell.
type UpdateRequest struct {
	IDs   []string `json:"ids"`
	Count *int     `json:"count,omitempty"`
}

// ImportRequest represents the arguments for card_import.
type ImportRequest struct {
	Path string `json:"path"`
}

// Handler implementations

// HandleList handles the card_list tool call.
func (h *Handlers) HandleList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ListRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	if input.Series != "" {
		result, err := ops.SeriesCards(ctx, h.db, ops.SeriesCardsInput{
			SeriesName:    input.Series,
			HideCollected: input.HideCollected,
		})
		if err != nil {
			return errorResult(err), nil
		}
		return successResult(result)
	}

	result, err := ops.ListCards(ctx, h.db, ops.ListCardsInput{})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleSearch handles the card_search tool call.
func (h *Handlers) HandleSearch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[SearchRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}
	if input.Query == "" {
		return errorResult(errors.NewInvalidRequest("query is required")), nil
	}

	result, err := ops.ListCards(ctx, h.db, ops.ListCardsInput{Query: input.Query})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleCollect handles the card_collect tool call.
func (h *Handlers) HandleCollect(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[UpdateRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Collect(ctx, h.db, ops.CollectInput{
		IDs:   input.IDs,
		Count: input.Count,
	})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleSell handles the card_sell tool call.
func (h *Handlers) HandleSell(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[UpdateRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Sell(ctx, h.db, ops.SellInput{
		IDs:   input.IDs,
		Count: input.Count,
	})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleSeriesList handles the card_series_list tool call.
func (h *Handlers) HandleSeriesList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := ops.ListSeries(ctx, h.db)
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleImport handles the card_import tool call.
func (h *Handlers) HandleImport(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ImportRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Import(ctx, h.db, ops.ImportInput{Path: input.Path})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// Result helpers

// errorResult creates an MCP error result from any error.
// Uses IsError: true so MCP clients recognize failures properly.
// Note: Internal error details are not exposed to prevent leaking sensitive info.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	if cErr, ok := err.(*errors.CardexError); ok {
		errorObj := map[string]any{
			"code":    cErr.Code,
			"message": cErr.Message,
			"status":  cErr.Status,
		}
		if cErr.Code != errors.ErrInternal && cErr.Details != nil {
			errorObj["details"] = cErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    "INTERNAL",
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
