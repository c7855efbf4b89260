package provider

import (
	"context"
	"errors"

	"github.com/alan-mat/exago/internal/api"
	"github.com/alan-mat/exago/internal/exa"
)

var ErrInvalidWebSearcherType = errors.New("no web searcher found for given type")

const (
	WebSearcherTypeExa = iota
)

type WebSearcherType int

type WebSearcher interface {
	Search(context.Context, api.WebSearchRequest) (*api.WebSearchResponse, error)
}

func NewWebSearcher(t WebSearcherType, apiKey string, opts ...exa.Option) (WebSearcher, error) {
	switch t {
	case WebSearcherTypeExa:
		return exa.NewProvider(apiKey, opts...)
	default:
		return nil, ErrInvalidWebSearcherType
	}
}
