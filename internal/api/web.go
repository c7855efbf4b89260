package api

type WebSearchRequest struct {
	// Required
	Query string

	// Optional
	Limit   int
	Options map[string]any
}

type ScoredDocument struct {
	// Required
	Content string
	Score   float64

	// Optional
	Title         string
	Url           string
	PublishedDate string
	Author        string
	Highlights    []string
}

func (d ScoredDocument) Copy() *ScoredDocument {
	c := d
	c.Highlights = append([]string(nil), d.Highlights...)
	return &c
}

type WebSearchResponse struct {
	Query     string
	RequestId string
	Results   []*ScoredDocument
}
