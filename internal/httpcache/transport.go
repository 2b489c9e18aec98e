// Package httpcache provides a network-first http.RoundTripper that falls back
// to the last successful response stored on disk when the network fails.
package httpcache

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/ngmaloney/oahu-surf/internal/database"
	"github.com/ngmaloney/oahu-surf/internal/logger"
	"github.com/ngmaloney/oahu-surf/internal/observability"
)

// Headers set on responses served from the cache
const (
	HeaderCache    = "X-Oahu-Cache"
	HeaderCachedAt = "X-Oahu-Cached-At"
)

// Store is the persistence used by Transport
type Store interface {
	Get(ctx context.Context, key string) (*database.CachedResponse, error)
	Put(ctx context.Context, resp database.CachedResponse) error
}

// Transport tries the network first. Successful GET responses are stored;
// on a transport error the stored response for the same request is served
// instead. Non-2xx responses pass through untouched.
type Transport struct {
	Base    http.RoundTripper
	Store   Store
	Metrics *observability.Metrics
	Logger  *logger.Logger
}

// New returns a Transport over http.DefaultTransport
func New(store Store, metrics *observability.Metrics, log *logger.Logger) *Transport {
	return &Transport{
		Base:    http.DefaultTransport,
		Store:   store,
		Metrics: metrics,
		Logger:  log,
	}
}

// Key identifies a request in the cache
func Key(req *http.Request) string {
	return req.Method + " " + req.URL.String()
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	if req.Method != http.MethodGet {
		return base.RoundTrip(req)
	}

	resp, err := base.RoundTrip(req)
	if err != nil {
		return t.fallback(req, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp, nil
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return t.fallback(req, fmt.Errorf("failed to read response body: %w", err))
	}
	resp.Body = io.NopCloser(bytes.NewReader(body))

	// the request context may be near its deadline; the write must not be cut short
	ctx := context.WithoutCancel(req.Context())
	err = t.Store.Put(ctx, database.CachedResponse{
		Key:         Key(req),
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	})
	if err != nil {
		t.count("error")
		t.log().Warn("failed to store response", logger.Err(err), "url", req.URL.String())
	} else {
		t.count("store")
	}

	return resp, nil
}

func (t *Transport) fallback(req *http.Request, netErr error) (*http.Response, error) {
	cached, err := t.Store.Get(context.WithoutCancel(req.Context()), Key(req))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			t.count("miss")
		} else {
			t.count("error")
			t.log().Warn("failed to read cached response", logger.Err(err), "url", req.URL.String())
		}
		return nil, netErr
	}

	t.count("hit")
	t.log().Info("serving cached response", "url", req.URL.String(),
		"stored_at", cached.StoredAt, logger.Err(netErr))

	header := make(http.Header)
	if cached.ContentType != "" {
		header.Set("Content-Type", cached.ContentType)
	}
	header.Set(HeaderCache, "hit")
	header.Set(HeaderCachedAt, cached.StoredAt.UTC().Format(time.RFC3339))

	return &http.Response{
		Status:        strconv.Itoa(cached.StatusCode) + " " + http.StatusText(cached.StatusCode),
		StatusCode:    cached.StatusCode,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(cached.Body)),
		ContentLength: int64(len(cached.Body)),
		Request:       req,
	}, nil
}

func (t *Transport) log() *logger.Logger {
	if t.Logger == nil {
		return logger.Discard()
	}
	return t.Logger
}

func (t *Transport) count(result string) {
	if t.Metrics != nil {
		t.Metrics.CacheTotal.WithLabelValues(result).Inc()
	}
}

// Source describes where a response body came from
type Source struct {
	Cached   bool
	CachedAt time.Time
}

// SourceOf inspects the cache headers of resp
func SourceOf(resp *http.Response) Source {
	if resp == nil || resp.Header.Get(HeaderCache) != "hit" {
		return Source{}
	}
	src := Source{Cached: true}
	if at, err := time.Parse(time.RFC3339, resp.Header.Get(HeaderCachedAt)); err == nil {
		src.CachedAt = at
	}
	return src
}
