// Package catalog joins the flat collections the backend exposes (properties,
// neighborhoods, types, photos) into the shapes the pages render. The backend
// does no server-side joining or photo filtering, so every view that needs a
// cover image funnels through ResolveCover against the full photo fetch.
package catalog

import (
	"sort"
	"strconv"
	"strings"

	"github.com/nipia/imobiliaria-dashboard/models"
)

// ResolveCover picks the photo representing a property: the first photo
// flagged as cover, else the first photo for the property, else nil. Input
// order is preserved and no sort is applied; the backend's fetch order is
// load-bearing here, matching how the listing views have always behaved.
func ResolveCover(propertyID int, photos []models.Photo) *models.Photo {
	var first *models.Photo
	for i := range photos {
		if photos[i].PropertyID() != propertyID {
			continue
		}
		if photos[i].Cover {
			return &photos[i]
		}
		if first == nil {
			first = &photos[i]
		}
	}
	return first
}

// PhotosFor returns the property's photos ordered by their ordem field,
// ties broken by input order. The detail gallery displays the field, so
// unlike cover resolution it cannot ignore it.
func PhotosFor(propertyID int, photos []models.Photo) []models.Photo {
	var own []models.Photo
	for _, f := range photos {
		if f.PropertyID() == propertyID {
			own = append(own, f)
		}
	}
	sort.SliceStable(own, func(i, j int) bool { return own[i].Order < own[j].Order })
	return own
}

// DisplayPrice renders the price for a property's purpose: rent purpose shows
// the monthly rent, everything else the sale price. A missing price shows 0.
func DisplayPrice(p models.Property) string {
	if p.Purpose == models.PurposeRent {
		return "R$ " + formatPrice(p.RentPrice) + "/mês"
	}
	return "R$ " + formatPrice(p.SalePrice)
}

func formatPrice(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Features splits the free-text caracteristicas field into tags.
func Features(p models.Property) []string {
	var tags []string
	for _, raw := range strings.Split(p.Features, ",") {
		if tag := strings.TrimSpace(raw); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// Summary is one property card: home page, admin grid and the JSON feed all
// render from this same join.
type Summary struct {
	Property   models.Property `json:"imovel"`
	Cover      *models.Photo   `json:"fotoCapa"`
	PriceLabel string          `json:"preco"`
	Location   string          `json:"localizacao"`
}

func Summarize(p models.Property, photos []models.Photo) Summary {
	return Summary{
		Property:   p,
		Cover:      ResolveCover(p.ID, photos),
		PriceLabel: DisplayPrice(p),
		Location:   Location(p),
	}
}

func Summaries(properties []models.Property, photos []models.Photo) []Summary {
	out := make([]Summary, 0, len(properties))
	for _, p := range properties {
		out = append(out, Summarize(p, photos))
	}
	return out
}

// Detail is the full property page: the summary plus the ordered gallery and
// parsed feature tags.
type Detail struct {
	Summary
	Gallery  []models.Photo
	Features []string
}

func BuildDetail(p models.Property, photos []models.Photo) Detail {
	return Detail{
		Summary:  Summarize(p, photos),
		Gallery:  PhotosFor(p.ID, photos),
		Features: Features(p),
	}
}

func Location(p models.Property) string {
	if p.Neighborhood == nil {
		return ""
	}
	parts := []string{}
	if p.Neighborhood.Name != "" {
		parts = append(parts, p.Neighborhood.Name)
	}
	if p.Neighborhood.City != "" {
		parts = append(parts, p.Neighborhood.City)
	}
	return strings.Join(parts, ", ")
}
