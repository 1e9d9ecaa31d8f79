package catalog

import (
	"context"

	"github.com/glamnails/salon-gateway/internal/integrations/salonapi"
)

// BackendClient is the slice of the salon backend the catalog service reads.
type BackendClient interface {
	GetServices(ctx context.Context) ([]salonapi.Service, error)
	GetCategories(ctx context.Context) ([]salonapi.Category, error)
	GetArtists(ctx context.Context) ([]salonapi.Artist, error)
	GetGallery(ctx context.Context) ([]salonapi.GalleryItem, error)
	GetGalleryStyles(ctx context.Context) ([]salonapi.GalleryStyle, error)
	GetGalleryColors(ctx context.Context) ([]salonapi.GalleryColor, error)
	GetSettings(ctx context.Context) (salonapi.Settings, error)
}

// Logger is the logging surface the catalog service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
