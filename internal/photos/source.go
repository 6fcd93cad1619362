package photos

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pastlens/photoguessr/internal/gamestate"
	"github.com/pastlens/photoguessr/internal/photoguessr"
)

// Source routes the engine's deck requests: curated loads hit the catalog,
// plain loads hit the remote archive, falling back to the catalog when no
// archive is configured.
type Source struct {
	Remote  *Client
	Curated *CuratedStore
	Logger  *slog.Logger
}

var _ gamestate.PhotoSource = (*Source)(nil)

// FetchPhotos implements gamestate.PhotoSource.
func (s *Source) FetchPhotos(ctx context.Context, req gamestate.PhotoRequest) ([]photoguessr.Photo, error) {
	if req.Curated || s.Remote == nil {
		if s.Curated == nil {
			return nil, fmt.Errorf("photos: no photo source configured")
		}
		category := req.Category
		if category == "" {
			category = photoguessr.CategoryAll
		}
		return s.Curated.Deck(ctx, category)
	}
	return s.Remote.Fetch(ctx, req.ForceRefresh)
}
