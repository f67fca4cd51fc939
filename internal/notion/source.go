package notion

import (
	"context"

	v1 "github.com/dab97/stats-rgsu/internal/api/v1"
)

// Source adapts the Notion client into a storage.ApplicationSource.
type Source struct {
	client *Client
}

func NewSource(client *Client) *Source {
	return &Source{client: client}
}

// FetchApplications queries every page and normalizes it.
func (s *Source) FetchApplications(ctx context.Context) ([]v1.Application, error) {
	pages, err := s.client.QueryAll(ctx)
	if err != nil {
		return nil, err
	}
	return NormalizePages(pages), nil
}
