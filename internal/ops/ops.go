// Package ops implements the caller-facing operations of the collection
// tracker. Each operation takes a context, the shared database handle,
// and a typed input struct, and returns a typed output struct. The CLI,
// the HTTP API, and the MCP server are all thin wrappers over this
// package.
package ops

import (
	"strings"

	"github.com/hpungsan/cardex/internal/errors"
)

// SplitTypeLabel splits a free-text "SUBTYPE MAINTYPE" card-type label on
// its first space ("Quick-Play Spell Card" → "Quick-Play", "Spell Card").
func SplitTypeLabel(label string) (sub, main string, err error) {
	sub, main, ok := strings.Cut(strings.TrimSpace(label), " ")
	if !ok || sub == "" || main == "" {
		return "", "", errors.NewInvalidRequest("card-type label must be of the form \"SUBTYPE MAINTYPE\"")
	}
	return sub, main, nil
}
