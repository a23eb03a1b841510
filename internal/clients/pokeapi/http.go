package pokeapi

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/KirkDiggler/pokelookup/internal/errors"
	"github.com/KirkDiggler/pokelookup/internal/repositories/responsecache"
)

// maxBodyBytes bounds a single response; the largest PokeAPI documents
// (pokemon with full move lists) stay well under it.
const maxBodyBytes = 16 << 20

// get loads url into out, serving from the cache when possible. Only bodies
// that decode are written back to the cache.
func (c *client) get(ctx context.Context, url string, out any) error {
	if body, ok := c.cached(ctx, url); ok {
		if err := json.Unmarshal(body, out); err == nil {
			slog.Debug("pokeapi cache hit", "url", url)
			return nil
		}
		slog.Warn("discarding undecodable cached response", "url", url)
	}

	body, err := c.do(ctx, url)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.WrapWithCodef(err, errors.CodeDataLoss, "malformed response from %s", url)
	}

	c.store(ctx, url, body)
	return nil
}

func (c *client) do(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "invalid request url %s", url)
	}
	req.Header.Set("Accept", "application/json")

	slog.Debug("pokeapi request", "url", url)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.WrapWithCodef(err, errors.GetCode(ctx.Err()), "request for %s canceled", url)
		}
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to fetch %s", url)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errors.NotFoundf("resource not found: %s", url)
	case resp.StatusCode != http.StatusOK:
		return nil, errors.Unavailablef("unexpected status %d from %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to read response from %s", url)
	}

	return body, nil
}

func (c *client) cached(ctx context.Context, url string) ([]byte, bool) {
	if c.cache == nil {
		return nil, false
	}

	out, err := c.cache.Get(ctx, responsecache.GetInput{Key: url})
	if err != nil {
		if !errors.IsNotFound(err) {
			slog.Warn("response cache read failed", "url", url, "error", err)
		}
		return nil, false
	}
	return out.Body, true
}

func (c *client) store(ctx context.Context, url string, body []byte) {
	if c.cache == nil {
		return
	}

	if _, err := c.cache.Set(ctx, responsecache.SetInput{Key: url, Body: body}); err != nil {
		slog.Warn("response cache write failed", "url", url, "error", err)
	}
}
