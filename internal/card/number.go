package card

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseNumber splits a card identifier into its series prefix and
// collection number. The collection number is the trailing contiguous
// digit run ("LOB-EN001" → 1); everything before the run, truncated at
// its first hyphen, is the prefix ("LOB-EN001" → "LOB"). A string with
// no digits yields number 0 and the whole string as prefix; callers
// must treat 0 as "unknown", not as an error.
func ParseNumber(s string) (string, int) {
	end := len(s)
	for end > 0 && !isDigit(s[end-1]) {
		end--
	}

	start := end
	for start > 0 && isDigit(s[start-1]) {
		start--
	}

	number := 0
	if start < end {
		n, err := strconv.Atoi(s[start:end])
		if err == nil {
			number = n
		}
	}

	prefix, _, _ := strings.Cut(s[:start], "-")
	return prefix, number
}

// ExpandRange expands a "PREFIX-START-END" range expression into one
// zero-padded card number per integer in [start, end]. Each endpoint may
// carry a non-numeric sub-prefix before its digits (e.g. "EN"); the first
// endpoint's sub-prefix is reused for every generated number and the
// end's is ignored. Inputs not matching the three-segment shape, or with
// a non-numeric endpoint, are returned unchanged as a single literal
// card number.
func ExpandRange(s string) []string {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return []string{s}
	}

	prefix := parts[0]
	sub, start := splitEndpoint(parts[1])
	_, end := splitEndpoint(parts[2])
	if start < 0 || end < 0 || end < start {
		return []string{s}
	}

	numbers := make([]string, 0, end-start+1)
	for n := start; n <= end; n++ {
		numbers = append(numbers, fmt.Sprintf("%s-%s%03d", prefix, sub, n))
	}
	return numbers
}

// FormatNumber builds the canonical stored card number from a series
// prefix and a collection number: "LOB", 1 → "LOB-001".
func FormatNumber(prefix string, n int) string {
	return fmt.Sprintf("%s-%03d", prefix, n)
}

// splitEndpoint splits a range endpoint like "EN001" into its sub-prefix
// and numeric value. Returns -1 for the value if the endpoint has no
// trailing digits.
func splitEndpoint(s string) (string, int) {
	start := len(s)
	for start > 0 && isDigit(s[start-1]) {
		start--
	}
	if start == len(s) {
		return s, -1
	}
	n, err := strconv.Atoi(s[start:])
	if err != nil {
		return s, -1
	}
	return s[:start], n
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
