package exa

import "encoding/json"

type SearchResponse struct {
	RequestId          string          `json:"requestId"`
	ResolvedSearchType string          `json:"resolvedSearchType"`
	AutopromptString   string          `json:"autopromptString"`
	Results            []*SearchResult `json:"results"`
}

type SearchResult struct {
	Id              string    `json:"id"`
	Title           string    `json:"title"`
	Url             string    `json:"url"`
	Score           float64   `json:"score"`
	PublishedDate   string    `json:"publishedDate"`
	Author          string    `json:"author"`
	Text            string    `json:"text"`
	Summary         string    `json:"summary"`
	Highlights      []string  `json:"highlights"`
	HighlightScores []float64 `json:"highlightScores"`
	Image           string    `json:"image"`
}

// ParseSearchResponse maps a raw response body into the typed view. Fields
// the service added after this client was written are simply not visible
// here; the raw map stays authoritative.
func ParseSearchResponse(raw map[string]any) (*SearchResponse, error) {
	jsonData, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}

	var searchResponse SearchResponse
	err = json.Unmarshal(jsonData, &searchResponse)
	if err != nil {
		return nil, err
	}

	return &searchResponse, nil
}
