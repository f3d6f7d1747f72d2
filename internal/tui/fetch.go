package tui

import (
	"context"

	"github.com/javiermolinar/pagetable/internal/client"
	"github.com/javiermolinar/pagetable/internal/pager"
)

// clientFetcher adapts the HTTP client to the pagination controller.
func clientFetcher(c *client.Client) pager.Fetcher {
	return pager.FetcherFunc(func(ctx context.Context, page, limit int) (pager.Page, error) {
		res, err := c.FetchUsers(ctx, page, limit)
		if err != nil {
			return pager.Page{}, err
		}
		return pager.Page{Records: res.Data, Total: res.Total}, nil
	})
}
