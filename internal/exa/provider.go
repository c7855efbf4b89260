package exa

import (
	"context"
	"fmt"

	"github.com/alan-mat/exago/internal/api"
)

// Provider adapts the client to the neutral web search surface. Document
// text is always requested so retrieval callers get usable content.
type Provider struct {
	client *Client
}

func NewProvider(apiKey string, opts ...Option) (*Provider, error) {
	c, err := New(apiKey, opts...)
	if err != nil {
		return nil, err
	}
	return &Provider{client: c}, nil
}

func (p Provider) Search(ctx context.Context, req api.WebSearchRequest) (*api.WebSearchResponse, error) {
	opts := SearchOptions{}
	for k, v := range req.Options {
		opts[k] = v
	}
	if req.Limit != 0 {
		opts["numResults"] = req.Limit
	}
	if _, ok := opts["text"]; !ok {
		opts["text"] = map[string]any{}
	}

	raw, err := p.client.SearchAndContents(ctx, req.Query, opts)
	if err != nil {
		return nil, fmt.Errorf("web search request failed: %w", err)
	}

	searchResponse, err := ParseSearchResponse(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize web search response: %w", err)
	}

	docs := make([]*api.ScoredDocument, 0, len(searchResponse.Results))
	for _, result := range searchResponse.Results {
		content := result.Text
		if content == "" {
			content = result.Summary
		}
		docs = append(docs, &api.ScoredDocument{
			Content:       content,
			Score:         result.Score,
			Title:         result.Title,
			Url:           result.Url,
			PublishedDate: result.PublishedDate,
			Author:        result.Author,
			Highlights:    result.Highlights,
		})
	}

	return &api.WebSearchResponse{
		Query:     req.Query,
		RequestId: searchResponse.RequestId,
		Results:   docs,
	}, nil
}
