package loader

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/resilience/core"
)

// Load reads a graph from src, which is either an http(s) URL or a path
// on the local file system.
func Load(ctx context.Context, src string, opts ...Option) (*core.Graph[int], error) {
	if isURL(src) {
		return fetch(ctx, src, opts...)
	}

	f, err := os.Open(src)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	defer f.Close()

	return Parse(f, opts...)
}

func isURL(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

func fetch(ctx context.Context, url string, opts ...Option) (*core.Graph[int], error) {
	o := newOptions(opts...)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	resp, err := o.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("loader: get %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s: %s", ErrFetch, url, resp.Status)
	}
	o.logger.Debug("graph fetched", zap.String("url", url))

	return Parse(resp.Body, opts...)
}
