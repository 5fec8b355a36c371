package tools

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// SearchSuggestion is one search chip shown next to a grounded answer.
type SearchSuggestion struct {
	Query string `json:"query"`
	URL   string `json:"url"`
}

// ParseSearchSuggestions extracts the chips from the HTML snippet the backend
// renders for a grounded answer. Chips without text or link are skipped.
func ParseSearchSuggestions(renderedContent string) ([]SearchSuggestion, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(renderedContent))
	if err != nil {
		return nil, err
	}

	var suggestions []SearchSuggestion
	doc.Find("a.chip").Each(func(i int, s *goquery.Selection) {
		query := strings.Join(strings.Fields(s.Text()), " ")
		href, ok := s.Attr("href")
		if query == "" || !ok || strings.TrimSpace(href) == "" {
			return
		}
		suggestions = append(suggestions, SearchSuggestion{
			Query: query,
			URL:   strings.TrimSpace(href),
		})
	})
	return suggestions, nil
}
