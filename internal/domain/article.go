package domain

// Article is a content item filed under a category.
type Article struct {
	Record
	IntroText string            `json:"introtext"`
	FullText  string            `json:"fulltext"`
	CatID     int64             `json:"catid"`
	Featured  bool              `json:"featured"`
	Images    map[string]string `json:"images,omitempty"`
	// Fields maps custom field names to their values for this article.
	Fields map[string]string `json:"fields,omitempty"`
}
