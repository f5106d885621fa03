package domain

// GeocodeTargetKind - таблица, координаты в которой заполняет геокодер
type GeocodeTargetKind string

const (
	GeocodeResidentialComplex GeocodeTargetKind = "residential_complex"
	GeocodeSecondaryProperty  GeocodeTargetKind = "secondary_property"
)

// GeocodeTarget - запись без координат
type GeocodeTarget struct {
	Kind     GeocodeTargetKind `json:"kind" db:"-"`
	ID       int64             `json:"id" db:"id"`
	Name     string            `json:"name" db:"name"`
	City     string            `json:"city" db:"city"`
	District string            `json:"district" db:"district"`
	Street   string            `json:"street" db:"street"`
}

// GeocodeResult - итог прогона геокодера
type GeocodeResult struct {
	Processed int `json:"processed"`
	Updated   int `json:"updated"`
	Missed    int `json:"missed"`
	CacheHits int `json:"cache_hits"`
}
