// Package loader runs the goalkeepers page pipeline: request, normalize,
// sort, render. One call to Load is one page load.
package loader

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/XavierBriggs/fortuna/services/goalkeeper-board/internal/leaderboard"
	"github.com/XavierBriggs/fortuna/services/goalkeeper-board/internal/render"
	"github.com/XavierBriggs/fortuna/services/goalkeeper-board/internal/scoring"
	"github.com/XavierBriggs/fortuna/services/goalkeeper-board/internal/source"
	"github.com/XavierBriggs/fortuna/services/goalkeeper-board/pkg/models"
)

// ErrLoadFailed wraps every failure of a load pass
var ErrLoadFailed = errors.New("load failed")

// Loader fetches, scores and renders the leaderboard
type Loader struct {
	source   source.Source
	scorer   scoring.Scorer
	renderer *render.Renderer
	path     string
}

// New creates a loader reading path from src
func New(src source.Source, scorer scoring.Scorer, renderer *render.Renderer, path string) *Loader {
	return &Loader{
		source:   src,
		scorer:   scorer,
		renderer: renderer,
		path:     path,
	}
}

// Load runs one pass and renders into whichever mounts are non-nil.
// On failure the table shows the fallback row, the cards mount is left as
// it was, and the returned error wraps ErrLoadFailed.
func (l *Loader) Load(ctx context.Context, table, cards *render.Mount) (players []models.Player, err error) {
	id := uuid.New().String()

	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic: %v", rec)
		}
		if err != nil {
			log.Printf("[Loader] load %s failed: %v", id, err)
			l.renderer.Fallback(table)
			players = nil
			err = fmt.Errorf("%w: %w", ErrLoadFailed, err)
		}
	}()

	raw, err := l.source.Request(ctx, l.path)
	if err != nil {
		return nil, fmt.Errorf("requesting %s: %w", l.path, err)
	}

	players = leaderboard.Normalize(raw, l.scorer)

	if err := l.renderer.Table(players, table); err != nil {
		return nil, err
	}
	if err := l.renderer.Cards(players, cards); err != nil {
		return nil, err
	}

	log.Printf("[Loader] load %s rendered %d goalkeepers", id, len(players))
	return players, nil
}
