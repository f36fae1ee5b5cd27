package util

import (
	"regexp"
	"strings"
)

// SearchQuery represents the parsed components of a lead search string.
type SearchQuery struct {
	Status []string
	Text   []string
}

var statusRegex = regexp.MustCompile(`(?i)status:(\w+)`)

// ParseSearchQuery splits "status:hot acme corp" into its status tokens and free text.
func ParseSearchQuery(query string) SearchQuery {
	sq := SearchQuery{}

	matches := statusRegex.FindAllStringSubmatch(query, -1)
	for _, match := range matches {
		if len(match) > 1 {
			sq.Status = append(sq.Status, match[1])
		}
	}
	query = statusRegex.ReplaceAllString(query, "")
	sq.Text = strings.Fields(query)

	return sq
}

// Term joins the free-text part back into a single search term.
func (q SearchQuery) Term() string {
	return strings.Join(q.Text, " ")
}
