package videothumb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/realty-catalog/internal/config"
	"github.com/realty-catalog/internal/domain/repository"
	"github.com/realty-catalog/internal/pkg/utils"
)

const youtubeThumbnailURL = "https://img.youtube.com/vi/%s/maxresdefault.jpg"

// maxCachedThumbnails ограничивает кэш превью Rutube
const maxCachedThumbnails = 4096

type resolver struct {
	httpClient  *http.Client
	rutubeAPI   string
	placeholder string
	logger      *zap.Logger

	mu        sync.RWMutex
	rutube    map[string]string
	maxCached int
}

// NewResolver - превью для YouTube строится по идентификатору,
// для Rutube запрашивается у API; при сбое отдаётся заглушка
func NewResolver(cfg *config.VideoConfig, placeholder string, logger *zap.Logger) repository.ThumbnailResolver {
	return &resolver{
		httpClient: &http.Client{
			Timeout: cfg.ThumbnailTimeout,
		},
		rutubeAPI:   strings.TrimRight(cfg.RutubeAPIURL, "/"),
		placeholder: placeholder,
		logger:      logger,
		rutube:      map[string]string{},
		maxCached:   maxCachedThumbnails,
	}
}

func (r *resolver) Thumbnail(ctx context.Context, videoURL string) string {
	videoURL = strings.TrimSpace(videoURL)
	if videoURL == "" {
		return ""
	}

	if id := utils.YouTubeID(videoURL); id != "" {
		return fmt.Sprintf(youtubeThumbnailURL, id)
	}

	if !strings.Contains(videoURL, "rutube.ru/video/") {
		return ""
	}
	id := utils.RutubeID(videoURL)
	if id == "" {
		return ""
	}

	r.mu.RLock()
	cached, ok := r.rutube[id]
	r.mu.RUnlock()
	if ok {
		return cached
	}

	thumb, err := r.fetchRutube(ctx, id)
	if err != nil || thumb == "" {
		r.logger.Debug("Rutube thumbnail unavailable", zap.String("video_id", id), zap.Error(err))
		return r.placeholder
	}

	r.remember(id, thumb)
	return thumb
}

// remember кладёт превью в кэш; на переполнении вытесняется произвольная запись
func (r *resolver) remember(id, thumb string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rutube[id]; !ok && len(r.rutube) >= r.maxCached {
		for k := range r.rutube {
			delete(r.rutube, k)
			break
		}
	}
	r.rutube[id] = thumb
}

func (r *resolver) fetchRutube(ctx context.Context, id string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/video/%s/", r.rutubeAPI, id), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("rutube status %d", resp.StatusCode)
	}

	var body struct {
		ThumbnailURL string `json:"thumbnail_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	return body.ThumbnailURL, nil
}
