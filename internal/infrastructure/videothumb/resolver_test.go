package videothumb

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/realty-catalog/internal/config"
)

const placeholder = "/static/img/placeholder.png"

func newResolver(apiURL string) *resolver {
	cfg := &config.VideoConfig{ThumbnailTimeout: time.Second, RutubeAPIURL: apiURL}
	return NewResolver(cfg, placeholder, zap.NewNop()).(*resolver)
}

func TestResolver_YouTube(t *testing.T) {
	r := newResolver("http://127.0.0.1:0")
	ctx := context.Background()

	assert.Equal(t, "https://img.youtube.com/vi/abc123/maxresdefault.jpg",
		r.Thumbnail(ctx, "https://www.youtube.com/watch?v=abc123&t=10"))
	assert.Equal(t, "https://img.youtube.com/vi/xyz/maxresdefault.jpg",
		r.Thumbnail(ctx, "https://youtu.be/xyz?si=1"))
}

func TestResolver_Unknown(t *testing.T) {
	r := newResolver("http://127.0.0.1:0")

	assert.Empty(t, r.Thumbnail(context.Background(), ""))
	assert.Empty(t, r.Thumbnail(context.Background(), "https://vimeo.com/1"))
}

func TestResolver_Rutube(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, "/video/abcdef0123/", r.URL.Path)
		_, _ = w.Write([]byte(`{"thumbnail_url":"https://pic.rutube.ru/abc.jpg"}`))
	}))
	defer server.Close()

	r := newResolver(server.URL)
	url := "https://rutube.ru/video/abcdef0123/"

	assert.Equal(t, "https://pic.rutube.ru/abc.jpg", r.Thumbnail(context.Background(), url))
	assert.Equal(t, "https://pic.rutube.ru/abc.jpg", r.Thumbnail(context.Background(), url))
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestResolver_RutubeFailureFallsBackToPlaceholder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	r := newResolver(server.URL)
	assert.Equal(t, placeholder, r.Thumbnail(context.Background(), "https://rutube.ru/video/deadbeef/"))
}

func TestResolver_RutubeCacheIsBounded(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		_, _ = w.Write([]byte(`{"thumbnail_url":"https://pic.rutube.ru/x.jpg"}`))
	}))
	defer server.Close()

	r := newResolver(server.URL)
	r.maxCached = 3

	for i := 0; i < 10; i++ {
		r.remember(fmt.Sprintf("id%d", i), "thumb")
		assert.LessOrEqual(t, len(r.rutube), 3)
	}

	r.remember("id9", "thumb2")
	assert.Len(t, r.rutube, 3)
	assert.Equal(t, "thumb2", r.rutube["id9"])

	for _, id := range []string{"abcdef0001", "abcdef0002", "abcdef0003", "abcdef0004", "abcdef0005"} {
		assert.Equal(t, "https://pic.rutube.ru/x.jpg", r.Thumbnail(context.Background(), "https://rutube.ru/video/"+id+"/"))
	}
	assert.Len(t, r.rutube, 3)
	assert.Equal(t, int32(5), atomic.LoadInt32(&calls))
}
