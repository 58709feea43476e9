package models

// MAffectedStock ties a symbol to the sentiment a headline carries for it.
type MAffectedStock struct {
	Symbol    string `json:"symbol"`
	Sentiment string `json:"sentiment"` // positive, negative, neutral
}

// -----------------------------------------------------------------------------

// MNewsItem is a generated fake headline.
type MNewsItem struct {
	Source         string           `json:"source"`
	Headline       string           `json:"headline"`
	Excerpt        string           `json:"excerpt"`
	AffectedStocks []MAffectedStock `json:"affected_stocks"`
	Timestamp      string           `json:"timestamp"` // "N hours ago"
	Category       string           `json:"category"`
}
