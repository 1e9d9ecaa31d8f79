package invalidate_cache

import (
	"net/http"

	"github.com/glamnails/salon-gateway/internal/api/handlers"
	"github.com/glamnails/salon-gateway/internal/service/catalog"
)

const msgUnknownKey = "unknown cache key"

var knownKeys = map[string]bool{
	catalog.KeyServices:      true,
	catalog.KeyCategories:    true,
	catalog.KeyArtists:       true,
	catalog.KeyGallery:       true,
	catalog.KeyGalleryStyles: true,
	catalog.KeyGalleryColors: true,
	catalog.KeySettings:      true,
}

func allKeys() []string {
	keys := make([]string, 0, len(knownKeys))
	for key := range knownKeys {
		keys = append(keys, key)
	}
	return keys
}

type Handler struct {
	invalidator CacheInvalidator
	logger      Logger
}

func NewHandler(invalidator CacheInvalidator, logger Logger) *Handler {
	return &Handler{
		invalidator: invalidator,
		logger:      logger,
	}
}

// Handle POST /api/admin/cache/invalidate?key=
//
// With no key every cached resource is dropped; with a key only that
// resource refetches on next read.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")

	var keys []string
	switch {
	case key == "":
		keys = allKeys()
	case knownKeys[key]:
		keys = []string{key}
	default:
		h.logger.Warn("POST /admin/cache/invalidate - unknown key %q", key)
		handlers.RespondBadRequest(w, msgUnknownKey)
		return
	}

	h.invalidator.Invalidate(keys...)
	h.logger.Info("POST /admin/cache/invalidate - dropped %d keys", len(keys))
	handlers.RespondJSON(w, http.StatusOK, map[string]any{"invalidated": keys})
}
