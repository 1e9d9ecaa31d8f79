package get_catalog

import (
	"context"

	"github.com/glamnails/salon-gateway/internal/integrations/salonapi"
)

// CatalogService is the cache-backed catalog read surface.
type CatalogService interface {
	Services(ctx context.Context) ([]salonapi.Service, error)
	Categories(ctx context.Context) ([]salonapi.Category, error)
	Artists(ctx context.Context) ([]salonapi.Artist, error)
	Gallery(ctx context.Context) ([]salonapi.GalleryItem, error)
	GalleryStyles(ctx context.Context) ([]salonapi.GalleryStyle, error)
	GalleryColors(ctx context.Context) ([]salonapi.GalleryColor, error)
	Settings(ctx context.Context) (salonapi.Settings, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
