package catalog

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/glamnails/salon-gateway/internal/integrations/salonapi"
	"github.com/glamnails/salon-gateway/internal/respcache"
)

// Cache keys, one per backend catalog resource.
const (
	KeyServices      = "services"
	KeyCategories    = "categories"
	KeyArtists       = "artists"
	KeyGallery       = "gallery"
	KeyGalleryStyles = "gallery-styles"
	KeyGalleryColors = "gallery-colors"
	KeySettings      = "settings"
)

// Service serves catalog reads through the shared response cache so that
// every page of the site reuses one fetch per resource instead of fetching
// independently.
type Service struct {
	cache  *respcache.Cache
	client BackendClient
	logger Logger
}

// BookingCatalog is the slice of the catalog the booking form needs.
type BookingCatalog struct {
	Services []salonapi.Service
	Artists  []salonapi.Artist
}

func NewService(cache *respcache.Cache, client BackendClient, logger Logger) *Service {
	return &Service{
		cache:  cache,
		client: client,
		logger: logger,
	}
}

func (s *Service) Services(ctx context.Context) ([]salonapi.Service, error) {
	return respcache.GetOrFetch(ctx, s.cache, KeyServices, s.client.GetServices)
}

func (s *Service) Categories(ctx context.Context) ([]salonapi.Category, error) {
	return respcache.GetOrFetch(ctx, s.cache, KeyCategories, s.client.GetCategories)
}

func (s *Service) Artists(ctx context.Context) ([]salonapi.Artist, error) {
	return respcache.GetOrFetch(ctx, s.cache, KeyArtists, s.client.GetArtists)
}

func (s *Service) Gallery(ctx context.Context) ([]salonapi.GalleryItem, error) {
	return respcache.GetOrFetch(ctx, s.cache, KeyGallery, s.client.GetGallery)
}

func (s *Service) GalleryStyles(ctx context.Context) ([]salonapi.GalleryStyle, error) {
	return respcache.GetOrFetch(ctx, s.cache, KeyGalleryStyles, s.client.GetGalleryStyles)
}

func (s *Service) GalleryColors(ctx context.Context) ([]salonapi.GalleryColor, error) {
	return respcache.GetOrFetch(ctx, s.cache, KeyGalleryColors, s.client.GetGalleryColors)
}

func (s *Service) Settings(ctx context.Context) (salonapi.Settings, error) {
	return respcache.GetOrFetch(ctx, s.cache, KeySettings, s.client.GetSettings)
}

// LoadBookingCatalog fetches services and artists concurrently through the
// cache. The two fetches complete in any order and fail independently; the
// first error wins and cancels nothing already cached.
func (s *Service) LoadBookingCatalog(ctx context.Context) (*BookingCatalog, error) {
	var result BookingCatalog

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		services, err := s.Services(gctx)
		if err != nil {
			s.logger.Error("catalog: failed to load services: %v", err)
			return err
		}
		result.Services = services
		return nil
	})
	g.Go(func() error {
		artists, err := s.Artists(gctx)
		if err != nil {
			s.logger.Error("catalog: failed to load artists: %v", err)
			return err
		}
		result.Artists = artists
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &result, nil
}

// Loading reports whether any booking-catalog resource has a fetch in
// flight; the combined flag stays true while either resource loads.
func (s *Service) Loading() bool {
	return s.cache.State(KeyServices).Loading || s.cache.State(KeyArtists).Loading
}

// Invalidate drops the given cache keys, forcing the next read of each to
// refetch. Used after admin writes that change catalog data.
func (s *Service) Invalidate(keys ...string) {
	for _, key := range keys {
		s.logger.Info("catalog: invalidating cache key %s", key)
		s.cache.Invalidate(key)
	}
}
