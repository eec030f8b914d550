// Package bulk runs one operation per id and collects per-item outcomes. A failing item never
// stops the others.
package bulk

import (
	"context"

	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/i18n"

	"golang.org/x/sync/errgroup"
)

const DefaultConcurrency = 4

type ItemError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ItemResult struct {
	ID      string     `json:"id"`
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ItemError `json:"error,omitempty"`
}

type Summary struct {
	Total     int          `json:"total"`
	Succeeded int          `json:"succeeded"`
	Failed    int          `json:"failed"`
	Results   []ItemResult `json:"results"`
}

// Run calls fn for each id with at most concurrency calls in flight. Results keep input order.
func Run(ctx context.Context, ids []string, concurrency int, fn func(ctx context.Context, id string) (any, error)) Summary {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	results := make([]ItemResult, len(ids))
	var g errgroup.Group
	g.SetLimit(concurrency)

	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			data, err := fn(ctx, id)
			if err != nil {
				httpErr := apperror.ToHTTP(err)
				results[i] = ItemResult{
					ID: id,
					Error: &ItemError{
						Code:    httpErr.Code,
						Message: i18n.T(ctx, httpErr.MessageID, httpErr.Message, nil),
					},
				}
				return nil
			}
			results[i] = ItemResult{ID: id, Success: true, Data: data}
			return nil
		})
	}
	_ = g.Wait()

	summary := Summary{Total: len(ids), Results: results}
	for _, r := range results {
		if r.Success {
			summary.Succeeded++
		} else {
			summary.Failed++
		}
	}
	return summary
}
