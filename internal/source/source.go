// Package source provides the transports the leaderboard reads raw player
// records from. Every implementation returns decoded JSON of whatever shape
// the upstream produced; shaping it is the caller's job.
package source

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/XavierBriggs/fortuna/services/goalkeeper-board/internal/config"
)

// Source fetches the JSON document published at a logical path
type Source interface {
	Request(ctx context.Context, path string) (interface{}, error)
}

// Pinger is implemented by sources backed by a long-lived connection
type Pinger interface {
	Ping(ctx context.Context) error
}

// New builds the source selected by cfg.Kind
func New(cfg config.SourceConfig) (Source, error) {
	switch cfg.Kind {
	case config.SourceHTTP:
		return NewHTTPSource(cfg.APIBaseURL, cfg.APIToken, cfg.APITimeout), nil
	case config.SourceRedis:
		return NewRedisSource(cfg.RedisURL, cfg.RedisPassword, cfg.RedisKeyPrefix)
	case config.SourcePostgres:
		return NewPostgresSource(cfg.PostgresDSN)
	default:
		return nil, fmt.Errorf("unknown source kind %q", cfg.Kind)
	}
}

// decodeJSON decodes a single JSON document, keeping numbers as json.Number
func decodeJSON(r io.Reader) (interface{}, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var result interface{}
	if err := dec.Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return result, nil
}

func decodeJSONBytes(b []byte) (interface{}, error) {
	return decodeJSON(bytes.NewReader(b))
}
