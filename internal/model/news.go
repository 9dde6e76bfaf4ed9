package model

// NewsItem is a single company news article.
type NewsItem struct {
	Headline string `json:"headline"`
	URL      string `json:"url"`
	Source   string `json:"source"`
	Datetime int64  `json:"datetime"` // unix seconds
}

// Valid reports whether the item carries the required fields.
// Items without both a headline and a URL are discarded.
func (n NewsItem) Valid() bool {
	return n.Headline != "" && n.URL != ""
}
