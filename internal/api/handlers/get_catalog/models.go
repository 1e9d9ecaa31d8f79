package get_catalog

import (
	"github.com/glamnails/salon-gateway/internal/integrations/salonapi"
	"github.com/glamnails/salon-gateway/internal/locale"
)

// ServiceOption is a service rendered for the requested locale, ready to
// show as a booking form option.
type ServiceOption struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price"`
	Duration    string `json:"duration,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	CategoryID  string `json:"category_id,omitempty"`
}

type CategoryOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ArtistOption struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty,omitempty"`
	PhotoURL  string `json:"photo_url,omitempty"`
}

type GalleryItemView struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	ImageURL   string   `json:"image_url"`
	ArtistName string   `json:"artist_name,omitempty"`
	Style      string   `json:"style,omitempty"`
	Colors     []string `json:"colors,omitempty"`
}

type TagView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func toServiceOptions(services []salonapi.Service, l locale.Locale) []ServiceOption {
	out := make([]ServiceOption, len(services))
	for i, s := range services {
		out[i] = ServiceOption{
			ID:          s.ID,
			Name:        s.Name().Resolve(l),
			Description: s.Description().Resolve(l),
			Price:       s.Price,
			Duration:    s.Duration,
			ImageURL:    s.ImageURL,
			CategoryID:  s.CategoryID,
		}
	}
	return out
}

func toCategoryOptions(categories []salonapi.Category, l locale.Locale) []CategoryOption {
	out := make([]CategoryOption, len(categories))
	for i, c := range categories {
		out[i] = CategoryOption{ID: c.ID, Name: c.Name().Resolve(l)}
	}
	return out
}

func toArtistOptions(artists []salonapi.Artist, l locale.Locale) []ArtistOption {
	out := make([]ArtistOption, len(artists))
	for i, a := range artists {
		out[i] = ArtistOption{
			ID:        a.ID,
			Name:      a.Name,
			Specialty: a.Specialty().Resolve(l),
			PhotoURL:  a.PhotoURL,
		}
	}
	return out
}

func toGalleryViews(items []salonapi.GalleryItem, l locale.Locale) []GalleryItemView {
	out := make([]GalleryItemView, len(items))
	for i, g := range items {
		out[i] = GalleryItemView{
			ID:         g.ID,
			Title:      g.Title().Resolve(l),
			ImageURL:   g.ImageURL,
			ArtistName: g.ArtistName,
			Style:      g.Style,
			Colors:     g.Colors,
		}
	}
	return out
}

func stylesToTagViews(styles []salonapi.GalleryStyle, l locale.Locale) []TagView {
	out := make([]TagView, len(styles))
	for i, s := range styles {
		out[i] = TagView{ID: s.ID, Name: s.Name().Resolve(l)}
	}
	return out
}

func colorsToTagViews(colors []salonapi.GalleryColor, l locale.Locale) []TagView {
	out := make([]TagView, len(colors))
	for i, c := range colors {
		out[i] = TagView{ID: c.ID, Name: c.Name().Resolve(l)}
	}
	return out
}
