package usecase

import (
	"strings"

	"github.com/realty-catalog/internal/domain"
)

const legacyLayoutPhotosLimit = 5

// IsNewShape - документ в новой плоской форме: есть development и нет avito
func IsNewShape(doc domain.Document) bool {
	return doc.Has("development") && !doc.Has("avito")
}

// AdaptListing приводит документ любой формы к единому представлению.
// Функция не меняет вход и не делит с ним память; отсутствующие ключи дают пустые значения.
func AdaptListing(raw domain.Document) *domain.ListingView {
	doc := raw.Clone()

	view := &domain.ListingView{
		ID:                   documentID(doc),
		Photos:               []string{},
		Parameters:           map[string]string{},
		Korpuses:             []any{},
		ApartmentVariants:    []domain.ApartmentVariant{},
		ApartmentTypes:       []string{},
		ConstructionProgress: constructionProgress(doc),
	}

	if IsNewShape(doc) {
		adaptNew(doc, view)
	} else {
		adaptLegacy(doc, view)
	}

	if view.Name == "" {
		view.Name = domain.DefaultListingName
	}

	return view
}

func adaptNew(doc domain.Document, view *domain.ListingView) {
	dev := doc.Doc("development")

	view.Name = dev.String("name")
	view.Address = trimAddress(dev.String("address"))
	view.PriceRange = dev.String("price_range")
	view.Photos = stringList(dev.Array("photos"))
	view.Latitude, view.Longitude = coordinates(doc, "latitude", "longitude")
	view.Parameters = parameters(dev.Doc("parameters"))
	view.Korpuses = anyList(dev.Array("korpuses"))

	for _, group := range doc.Doc("apartment_types") {
		apartments := asArray(group.Value, "apartments")
		if len(apartments) == 0 {
			continue
		}
		view.ApartmentTypes = appendUnique(view.ApartmentTypes, group.Key)

		for _, a := range apartments {
			apt, _ := a.(domain.Document)
			photos := imageList(valueOf(apt, "image"))

			variant := domain.ApartmentVariant{
				Type:           group.Key,
				Title:          domain.ScalarString(valueOf(apt, "title")),
				Price:          domain.ScalarString(valueOf(apt, "price")),
				PricePerSquare: domain.ScalarString(valueOf(apt, "pricePerSquare")),
				CompletionDate: domain.ScalarString(valueOf(apt, "completionDate")),
				URL:            domain.ScalarString(valueOf(apt, "url")),
				LayoutPhotos:   photos,
			}
			if len(photos) > 0 {
				variant.Image = photos[0]
			}
			view.ApartmentVariants = append(view.ApartmentVariants, variant)
		}
	}
}

func adaptLegacy(doc domain.Document, view *domain.ListingView) {
	avito := doc.Doc("avito")
	domclick := doc.Doc("domclick")
	domrf := doc.Doc("domrf")
	avitoDev := avito.Doc("development")
	domclickDev := domclick.Doc("development")

	view.Name = firstNonEmpty(
		avitoDev.String("name"),
		domclickDev.String("complex_name"),
		domrf.String("name"),
	)
	view.Address = trimAddress(avitoDev.String("address"))
	view.PriceRange = avitoDev.String("price_range")
	view.Photos = stringList(domclickDev.Array("photos"))
	view.Latitude, view.Longitude = coordinates(domrf, "latitude", "longitude")
	view.Parameters = parameters(avitoDev.Doc("parameters"))
	view.Korpuses = anyList(avitoDev.Array("korpuses"))
	view.AvitoURL = avito.String("url")
	view.DomclickURL = domclick.String("url")
	if total, ok := avito.Number("total_apartments"); ok {
		view.TotalApartments = int(total)
	}

	domclickTypes := domclick.Doc("apartment_types")

	for _, group := range avito.Doc("apartment_types") {
		apartments := asArray(group.Value, "apartments")
		if len(apartments) > 0 {
			view.ApartmentTypes = appendUnique(view.ApartmentTypes, group.Key)
		}

		layouts := legacyLayoutPhotos(domclickTypes, group.Key)

		for _, a := range apartments {
			apt, _ := a.(domain.Document)
			view.ApartmentVariants = append(view.ApartmentVariants, domain.ApartmentVariant{
				Type:           group.Key,
				Title:          domain.ScalarString(valueOf(apt, "title")),
				Price:          domain.ScalarString(valueOf(apt, "price")),
				PricePerSquare: domain.ScalarString(valueOf(apt, "pricePerSquare")),
				CompletionDate: domain.ScalarString(valueOf(apt, "completionDate")),
				Image:          apt.String("image", "128x96"),
				URL:            domain.ScalarString(valueOf(apt, "urlPath")),
				LayoutPhotos:   append([]string{}, layouts...),
			})
		}
	}
}

// legacyLayoutPhotos собирает фото планировок domclick для типа, не больше пяти
func legacyLayoutPhotos(domclickTypes domain.Document, label string) []string {
	photos := []string{}
	v, ok := domclickTypes.Get(label)
	if !ok {
		return photos
	}
	for _, a := range asArray(v, "apartments") {
		apt, _ := a.(domain.Document)
		photos = append(photos, stringList(apt.Array("photos"))...)
	}
	if len(photos) > legacyLayoutPhotosLimit {
		photos = photos[:legacyLayoutPhotosLimit]
	}
	return photos
}

// ComplexShortName - название по правилу новой формы с запасными полями старой
func ComplexShortName(doc domain.Document, fallback string) string {
	name := firstNonEmpty(
		doc.String("development", "name"),
		doc.String("avito", "development", "name"),
		doc.String("domclick", "development", "complex_name"),
	)
	if name == "" {
		return fallback
	}
	return name
}

func documentID(doc domain.Document) string {
	v, _ := doc.Get("_id")
	return domain.ScalarString(v)
}

func trimAddress(address string) string {
	if i := strings.Index(address, "/"); i >= 0 {
		address = address[:i]
	}
	return strings.TrimSpace(address)
}

func coordinates(doc domain.Document, latKey, lonKey string) (*float64, *float64) {
	lat, ok := doc.Number(latKey)
	if !ok {
		return nil, nil
	}
	lon, ok := doc.Number(lonKey)
	if !ok {
		return nil, nil
	}
	return &lat, &lon
}

func parameters(doc domain.Document) map[string]string {
	out := make(map[string]string, len(doc))
	for _, f := range doc {
		if f.Value == nil {
			continue
		}
		out[f.Key] = domain.ScalarString(f.Value)
	}
	return out
}

func constructionProgress(doc domain.Document) any {
	v, ok := doc.Get("construction_progress")
	if !ok || v == nil {
		return domain.Document{}
	}
	return v
}

func valueOf(doc domain.Document, key string) any {
	v, _ := doc.Get(key)
	return v
}

func asArray(v any, key string) []any {
	doc, ok := v.(domain.Document)
	if !ok {
		return nil
	}
	return doc.Array(key)
}

// imageList: строка или массив строк, пустые значения отбрасываются
func imageList(v any) []string {
	switch t := v.(type) {
	case string:
		if t == "" {
			return []string{}
		}
		return []string{t}
	case []any:
		return stringList(t)
	default:
		return []string{}
	}
}

func stringList(arr []any) []string {
	out := make([]string, 0, len(arr))
	for _, v := range arr {
		if s, ok := v.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

func anyList(arr []any) []any {
	if arr == nil {
		return []any{}
	}
	return arr
}

func appendUnique(list []string, s string) []string {
	for _, e := range list {
		if e == s {
			return list
		}
	}
	return append(list, s)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
