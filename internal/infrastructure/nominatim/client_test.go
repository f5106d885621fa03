package nominatim

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/realty-catalog/internal/config"
	"github.com/realty-catalog/internal/pkg/errors"
)

func newTestClient(url string) *client {
	cfg := &config.GeocoderConfig{
		URL:       url,
		UserAgent: "catalog-test/1.0",
		Timeout:   2 * time.Second,
	}
	return NewClient(cfg, zap.NewNop()).(*client)
}

func TestClient_Geocode(t *testing.T) {
	t.Run("first result", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "catalog-test/1.0", r.Header.Get("User-Agent"))
			assert.Equal(t, "Уфа, Россия", r.URL.Query().Get("q"))
			assert.Equal(t, "json", r.URL.Query().Get("format"))
			assert.Equal(t, "1", r.URL.Query().Get("limit"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"lat":"54.7348","lon":"55.9579","display_name":"Уфа"}]`))
		}))
		defer server.Close()

		point, err := newTestClient(server.URL).Geocode(context.Background(), "Уфа, Россия")
		require.NoError(t, err)
		require.NotNil(t, point)
		assert.InDelta(t, 54.7348, point.Lat, 1e-9)
		assert.InDelta(t, 55.9579, point.Lon, 1e-9)
	})

	t.Run("nothing found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[]`))
		}))
		defer server.Close()

		point, err := newTestClient(server.URL).Geocode(context.Background(), "Нигде")
		require.NoError(t, err)
		assert.Nil(t, point)
	})

	t.Run("garbage coordinates", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[{"lat":"abc","lon":"55.9"}]`))
		}))
		defer server.Close()

		point, err := newTestClient(server.URL).Geocode(context.Background(), "Уфа")
		require.NoError(t, err)
		assert.Nil(t, point)
	})

	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).Geocode(context.Background(), "Уфа")
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrGeocoderError))
	})
}
