package cache

import (
	"encoding/json"
	"fmt"

	"github.com/realty-catalog/internal/domain"
)

// Координаты в кеше хранятся парой [lat, lon], промах хранится как null.
// Формат совпадает с geocode_cache.json, который уже лежит на серверах.

func encodePoint(p *domain.Point) ([]byte, error) {
	if p == nil {
		return []byte("null"), nil
	}
	return json.Marshal([2]float64{p.Lat, p.Lon})
}

func decodePoint(raw []byte) (*domain.Point, error) {
	var pair []float64
	if err := json.Unmarshal(raw, &pair); err != nil {
		return nil, err
	}
	if pair == nil {
		return nil, nil
	}
	if len(pair) != 2 {
		return nil, fmt.Errorf("unexpected coordinates %s", raw)
	}
	return &domain.Point{Lat: pair[0], Lon: pair[1]}, nil
}
