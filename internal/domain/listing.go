package domain

const (
	DefaultListingName = "Без названия"
	NoPriceLabel       = "Цена не указана"
)

// ListingView - единое представление ЖК для обеих форм документа
type ListingView struct {
	ID                   string             `json:"id"`
	Name                 string             `json:"name"`
	Address              string             `json:"address"`
	PriceRange           string             `json:"price_range"`
	Photos               []string           `json:"photos"`
	Latitude             *float64           `json:"latitude"`
	Longitude            *float64           `json:"longitude"`
	Parameters           map[string]string  `json:"parameters"`
	Korpuses             []any              `json:"korpuses"`
	ApartmentVariants    []ApartmentVariant `json:"apartment_variants"`
	ApartmentTypes       []string           `json:"apartment_types"`
	TotalApartments      int                `json:"total_apartments"`
	AvitoURL             string             `json:"avito_url"`
	DomclickURL          string             `json:"domclick_url"`
	ConstructionProgress any                `json:"construction_progress"`
}

type ApartmentVariant struct {
	Type           string   `json:"type"`
	Title          string   `json:"title"`
	Price          string   `json:"price"`
	PricePerSquare string   `json:"price_per_square"`
	CompletionDate string   `json:"completion_date"`
	Image          string   `json:"image"`
	URL            string   `json:"url"`
	LayoutPhotos   []string `json:"layout_photos"`
}

// Названия параметров, которые выносятся в отдельные поля
const (
	ParamCompletionDate = "Срок сдачи"
	ParamHousingClass   = "Класс жилья"
	ParamHousingType    = "Тип жилья"
)

// HasCoordinates - обе координаты заданы
func (v *ListingView) HasCoordinates() bool {
	return v.Latitude != nil && v.Longitude != nil
}
