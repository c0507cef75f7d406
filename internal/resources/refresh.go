package resources

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pruthviraj/career-compass/internal/fetch"
	"github.com/pruthviraj/career-compass/internal/types"
)

// refreshConcurrency bounds parallel page fetches during a bulk refresh.
const refreshConcurrency = 4

// Store is the persistence surface metadata refresh needs.
type Store interface {
	ListLearningResources(ctx context.Context, category string) ([]types.LearningResource, error)
	GetLearningResource(ctx context.Context, id uuid.UUID) (*types.LearningResource, error)
	UpdateResourceMetadata(ctx context.Context, id uuid.UUID, title, description string) error
}

// Fetcher retrieves a page, optionally falling back to browser rendering.
// It is an interface so tests can avoid the network.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// PageFetcher fetches over HTTP and retries with a headless browser when the
// plain response looks like an unrendered SPA shell.
type PageFetcher struct {
	Options        *fetch.Options
	BrowserTimeout time.Duration
}

// Fetch retrieves the HTML for a resource page.
func (p *PageFetcher) Fetch(ctx context.Context, url string) (string, error) {
	result, err := fetch.URL(ctx, url, p.Options)
	if err != nil {
		return "", err
	}
	if !fetch.ShouldUseBrowser(result.HTML) {
		return result.HTML, nil
	}

	timeout := p.BrowserTimeout
	if timeout == 0 {
		timeout = fetch.DefaultTimeout
	}
	return fetch.WithBrowser(ctx, url, timeout)
}

// Refresher updates stored resource metadata from live pages.
type Refresher struct {
	store   Store
	fetcher Fetcher
	logger  *zap.Logger
}

// NewRefresher creates a metadata refresher. A nil fetcher uses the default
// HTTP-with-browser-fallback fetcher.
func NewRefresher(store Store, fetcher Fetcher, logger *zap.Logger) *Refresher {
	if fetcher == nil {
		fetcher = &PageFetcher{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Refresher{store: store, fetcher: fetcher, logger: logger}
}

// RefreshOne updates one resource's metadata from its page.
func (r *Refresher) RefreshOne(ctx context.Context, id uuid.UUID) error {
	resource, err := r.store.GetLearningResource(ctx, id)
	if err != nil {
		return err
	}
	if resource == nil {
		return fmt.Errorf("learning resource not found: %s", id)
	}
	return r.refresh(ctx, resource)
}

// RefreshAll updates metadata for every stored resource, a few pages at a
// time. Individual page failures are logged and skipped; the refresh keeps
// going. Returns the number of resources updated.
func (r *Refresher) RefreshAll(ctx context.Context) (int, error) {
	list, err := r.store.ListLearningResources(ctx, "")
	if err != nil {
		return 0, err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(refreshConcurrency)

	updated := make(chan struct{}, len(list))
	for i := range list {
		resource := list[i]
		g.Go(func() error {
			if err := r.refresh(ctx, &resource); err != nil {
				r.logger.Warn("metadata refresh failed",
					zap.String("resource_id", resource.ID.String()),
					zap.String("url", resource.URL),
					zap.Error(err))
				return nil
			}
			updated <- struct{}{}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}
	close(updated)
	return len(updated), nil
}

func (r *Refresher) refresh(ctx context.Context, resource *types.LearningResource) error {
	html, err := r.fetcher.Fetch(ctx, resource.URL)
	if err != nil {
		return err
	}

	meta, err := ExtractMetadata(html)
	if err != nil {
		return fmt.Errorf("failed to extract metadata from %s: %w", resource.URL, err)
	}

	if err := r.store.UpdateResourceMetadata(ctx, resource.ID, meta.Title, meta.Description); err != nil {
		return err
	}

	r.logger.Debug("resource metadata refreshed",
		zap.String("resource_id", resource.ID.String()),
		zap.String("title", meta.Title))
	return nil
}
