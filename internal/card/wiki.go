package card

import "strings"

const wikiBaseURL = "https://yugioh.fandom.com/wiki/"

// WikiURL builds the fandom wiki page URL for a series name: each word
// is capitalized except short connectives ("the", "of"), and words are
// joined with underscores.
func WikiURL(query string) string {
	skip := map[string]bool{"the": true, "of": true}

	words := strings.Fields(query)
	parts := make([]string, 0, len(words))
	for _, w := range words {
		if skip[w] {
			parts = append(parts, w)
			continue
		}
		parts = append(parts, strings.ToUpper(w[:1])+w[1:])
	}
	return wikiBaseURL + strings.Join(parts, "_")
}
