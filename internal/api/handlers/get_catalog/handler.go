package get_catalog

import (
	"net/http"

	"github.com/glamnails/salon-gateway/internal/api/handlers"
	"github.com/glamnails/salon-gateway/internal/locale"
)

const msgCatalogUnavailable = "catalog temporarily unavailable, please try again"

// Handler serves the public catalog reads. Every endpoint takes an optional
// ?lang= parameter; localized fields resolve against it with English
// fallback, regional tags like de-CH behaving as their base language.
type Handler struct {
	catalog CatalogService
	logger  Logger
}

func NewHandler(catalog CatalogService, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

func requestLocale(r *http.Request) locale.Locale {
	return locale.Normalize(r.URL.Query().Get("lang"))
}

// HandleServices GET /api/services
func (h *Handler) HandleServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.catalog.Services(r.Context())
	if err != nil {
		h.logger.Error("GET /services - failed to load: %v", err)
		handlers.RespondBadGateway(w, msgCatalogUnavailable)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, toServiceOptions(services, requestLocale(r)))
}

// HandleCategories GET /api/categories
func (h *Handler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.Categories(r.Context())
	if err != nil {
		h.logger.Error("GET /categories - failed to load: %v", err)
		handlers.RespondBadGateway(w, msgCatalogUnavailable)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, toCategoryOptions(categories, requestLocale(r)))
}

// HandleArtists GET /api/artists
func (h *Handler) HandleArtists(w http.ResponseWriter, r *http.Request) {
	artists, err := h.catalog.Artists(r.Context())
	if err != nil {
		h.logger.Error("GET /artists - failed to load: %v", err)
		handlers.RespondBadGateway(w, msgCatalogUnavailable)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, toArtistOptions(artists, requestLocale(r)))
}

// HandleGallery GET /api/gallery
func (h *Handler) HandleGallery(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.Gallery(r.Context())
	if err != nil {
		h.logger.Error("GET /gallery - failed to load: %v", err)
		handlers.RespondBadGateway(w, msgCatalogUnavailable)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, toGalleryViews(items, requestLocale(r)))
}

// HandleGalleryStyles GET /api/gallery-styles
func (h *Handler) HandleGalleryStyles(w http.ResponseWriter, r *http.Request) {
	styles, err := h.catalog.GalleryStyles(r.Context())
	if err != nil {
		h.logger.Error("GET /gallery-styles - failed to load: %v", err)
		handlers.RespondBadGateway(w, msgCatalogUnavailable)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, stylesToTagViews(styles, requestLocale(r)))
}

// HandleGalleryColors GET /api/gallery-colors
func (h *Handler) HandleGalleryColors(w http.ResponseWriter, r *http.Request) {
	colors, err := h.catalog.GalleryColors(r.Context())
	if err != nil {
		h.logger.Error("GET /gallery-colors - failed to load: %v", err)
		handlers.RespondBadGateway(w, msgCatalogUnavailable)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, colorsToTagViews(colors, requestLocale(r)))
}

// HandleSettings GET /api/settings
func (h *Handler) HandleSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.catalog.Settings(r.Context())
	if err != nil {
		h.logger.Error("GET /settings - failed to load: %v", err)
		handlers.RespondBadGateway(w, msgCatalogUnavailable)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, settings)
}
