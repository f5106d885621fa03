package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/realty-catalog/internal/config"
	"github.com/realty-catalog/internal/domain"
	"github.com/realty-catalog/internal/domain/repository"
	"github.com/realty-catalog/internal/pkg/errors"
	"github.com/realty-catalog/internal/pkg/utils"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *zap.Logger
}

// place - нужная часть элемента ответа /search?format=json
type place struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// NewClient создает клиент Nominatim. Политика сервиса требует осмысленный User-Agent.
func NewClient(cfg *config.GeocoderConfig, logger *zap.Logger) repository.Geocoder {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:   cfg.URL,
		userAgent: cfg.UserAgent,
		logger:    logger,
	}
}

// Geocode возвращает координаты первого результата или nil, если ничего не найдено
func (c *client) Geocode(ctx context.Context, address string) (*domain.Point, error) {
	q := url.Values{}
	q.Set("q", address)
	q.Set("format", "json")
	q.Set("addressdetails", "0")
	q.Set("limit", "1")

	reqURL := c.baseURL + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, errors.ErrGeocoderError.Wrap(fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("Calling Nominatim search", zap.String("address", address))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.ErrGeocoderError.Wrap(fmt.Errorf("failed to execute request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Warn("Nominatim returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, errors.ErrGeocoderError.Wrap(fmt.Errorf("nominatim status %d", resp.StatusCode))
	}

	var places []place
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return nil, errors.ErrGeocoderError.Wrap(fmt.Errorf("failed to decode response: %w", err))
	}
	if len(places) == 0 {
		return nil, nil
	}

	lat, okLat := utils.ParseCoordinate(places[0].Lat)
	lon, okLon := utils.ParseCoordinate(places[0].Lon)
	if !okLat || !okLon || !utils.ValidateCoordinates(lat, lon) {
		c.logger.Warn("Nominatim returned invalid coordinates",
			zap.String("lat", places[0].Lat),
			zap.String("lon", places[0].Lon))
		return nil, nil
	}

	return &domain.Point{Lat: lat, Lon: lon}, nil
}
